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

package addon

import (
	"bytes"
	"context"
	"testing"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/addons"
	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/mocks"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateOpts_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newMockStore(ctrl)
	op := mocks.NewMockClusterOperation(ctrl)

	mc := testCluster(map[string]model.AddonProfile{
		addons.AzureKeyvaultSecretsProviderKey: {Enabled: true, Config: map[string]string{
			addons.SecretRotationEnabled: "true",
			addons.RotationPollInterval:  "2m",
		}},
	})
	s.MockManagedClusterDescriber.EXPECT().ManagedCluster(gomock.Any(), "rg", "cluster").Return(mc, nil).Times(2)
	s.MockManagedClusterUpdater.EXPECT().BeginUpdateManagedCluster(gomock.Any(), "rg", "cluster", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, updated *model.ManagedCluster) (store.ClusterOperation, error) {
			config := updated.AddonProfiles[addons.AzureKeyvaultSecretsProviderKey].Config
			assert.Equal(t, "false", config[addons.SecretRotationEnabled])
			assert.Equal(t, "5m", config[addons.RotationPollInterval])
			return op, nil
		}).Times(1)

	buf := new(bytes.Buffer)
	opts := &UpdateOpts{
		ClusterOpts: cli.ClusterOpts{ResourceGroup: "rg", Name: "cluster"},
		OutputOpts:  cli.OutputOpts{OutWriter: buf},
		addon:       addons.AzureKeyvaultSecretsProvider,
		options:     addons.Options{DisableSecretRotation: true, RotationPollInterval: "5m"},
		noWait:      true,
		manager:     newTestManager(s),
	}
	require.NoError(t, opts.Run(context.Background()))
	assert.Contains(t, buf.String(), "started")
}

func TestUpdateOpts_RunNotEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newMockStore(ctrl)
	s.MockManagedClusterDescriber.EXPECT().ManagedCluster(gomock.Any(), "rg", "cluster").Return(testCluster(nil), nil).Times(1)

	opts := &UpdateOpts{
		ClusterOpts: cli.ClusterOpts{ResourceGroup: "rg", Name: "cluster"},
		addon:       addons.OpenServiceMesh,
		manager:     newTestManager(s),
	}
	var target *addons.AddonNotEnabledError
	require.ErrorAs(t, opts.Run(context.Background()), &target)
}
