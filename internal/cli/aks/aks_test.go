// Copyright 2025 Microsoft Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build unit

package aks

import (
	"testing"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Azure/aks-cli-plugin-preview/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type mockClusterStore struct {
	*mocks.MockManagedClusterDescriber
	*mocks.MockManagedClusterUpdater
	*mocks.MockClusterUpgradeLister
}

func newMockClusterStore(ctrl *gomock.Controller) *mockClusterStore {
	return &mockClusterStore{
		MockManagedClusterDescriber: mocks.NewMockManagedClusterDescriber(ctrl),
		MockManagedClusterUpdater:   mocks.NewMockManagedClusterUpdater(ctrl),
		MockClusterUpgradeLister:    mocks.NewMockClusterUpgradeLister(ctrl),
	}
}

func testCluster() *model.ManagedCluster {
	return &model.ManagedCluster{
		ID:                      "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.ContainerService/managedClusters/cluster",
		Name:                    "cluster",
		Location:                "westus2",
		ResourceGroup:           "rg",
		KubernetesVersion:       "1.28.5",
		ProvisioningState:       "Succeeded",
		ServicePrincipalProfile: &model.ServicePrincipalProfile{ClientID: model.MSIClientID},
		AgentPoolProfiles: []model.AgentPoolProfile{
			{Name: "system", Count: 1, Mode: "System", OrchestratorVersion: "1.28.5"},
			{Name: "user", Count: 3, Mode: "User", OrchestratorVersion: "1.28.5"},
		},
	}
}

func TestBuilder(t *testing.T) {
	cmd := Builder()
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{
		"addon",
		"enable-addons",
		"disable-addons",
		"nodepool",
		"scale",
		"upgrade",
		"get-upgrades",
		"rotate-certs",
		"operation-abort",
		"trustedaccess",
	}, names)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))
}

func TestRootOptsSetLogLevel(t *testing.T) {
	assert.NoError(t, (&rootOpts{debug: true, logLevel: "bogus"}).setLogLevel())
	assert.NoError(t, (&rootOpts{logLevel: "info"}).setLogLevel())
	assert.Error(t, (&rootOpts{logLevel: "bogus"}).setLogLevel())
	assert.NoError(t, (&rootOpts{logLevel: "warning"}).setLogLevel())
}
