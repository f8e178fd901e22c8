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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/cluster"
	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/mocks"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpgradeOpts_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newMockClusterStore(ctrl)
	op := mocks.NewMockClusterOperation(ctrl)

	upgraded := testCluster()
	upgraded.KubernetesVersion = "1.29.2"

	s.MockManagedClusterDescriber.EXPECT().ManagedCluster(gomock.Any(), "rg", "cluster").Return(testCluster(), nil).Times(1)
	s.MockClusterUpgradeLister.EXPECT().ClusterUpgrades(gomock.Any(), "rg", "cluster").Return([]string{"1.29.0", "1.29.2"}, nil).Times(1)
	s.MockManagedClusterUpdater.EXPECT().BeginUpdateManagedCluster(gomock.Any(), "rg", "cluster", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, mc *model.ManagedCluster) (store.ClusterOperation, error) {
			assert.Equal(t, "1.29.2", mc.KubernetesVersion)
			assert.Equal(t, "1.28.5", mc.AgentPoolProfiles[0].OrchestratorVersion)
			return op, nil
		}).Times(1)
	op.EXPECT().Wait(gomock.Any()).Return(upgraded, nil).Times(1)

	buf := new(bytes.Buffer)
	prompt := new(bytes.Buffer)
	opts := &UpgradeOpts{
		ClusterOpts:       cli.ClusterOpts{ResourceGroup: "rg", Name: "cluster"},
		OutputOpts:        cli.OutputOpts{Query: "$.kubernetesVersion", OutWriter: buf},
		ConfirmOpts:       cli.ConfirmOpts{In: strings.NewReader("y\n"), Out: prompt},
		kubernetesVersion: "1.29.2",
		controlPlaneOnly:  true,
		store:             s,
	}
	require.NoError(t, opts.Run(context.Background()))
	assert.Equal(t, "1.29.2\n", buf.String())
	assert.Contains(t, prompt.String(), "Kubernetes may be unavailable during cluster upgrades.")
}

func TestUpgradeOpts_RunDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newMockClusterStore(ctrl)

	s.MockManagedClusterDescriber.EXPECT().ManagedCluster(gomock.Any(), "rg", "cluster").Return(testCluster(), nil).Times(1)
	s.MockClusterUpgradeLister.EXPECT().ClusterUpgrades(gomock.Any(), "rg", "cluster").Return([]string{"1.29.2"}, nil).Times(1)

	buf := new(bytes.Buffer)
	opts := &UpgradeOpts{
		ClusterOpts:       cli.ClusterOpts{ResourceGroup: "rg", Name: "cluster"},
		OutputOpts:        cli.OutputOpts{OutWriter: buf},
		ConfirmOpts:       cli.ConfirmOpts{In: strings.NewReader("n\n"), Out: new(bytes.Buffer)},
		kubernetesVersion: "1.29.2",
		store:             s,
	}
	require.NoError(t, opts.Run(context.Background()))
	assert.Empty(t, buf.String())
}

func TestUpgradeOpts_RunUnavailableVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newMockClusterStore(ctrl)

	s.MockManagedClusterDescriber.EXPECT().ManagedCluster(gomock.Any(), "rg", "cluster").Return(testCluster(), nil).Times(1)
	s.MockClusterUpgradeLister.EXPECT().ClusterUpgrades(gomock.Any(), "rg", "cluster").Return([]string{"1.29.2"}, nil).Times(1)

	opts := &UpgradeOpts{
		ClusterOpts:       cli.ClusterOpts{ResourceGroup: "rg", Name: "cluster"},
		ConfirmOpts:       cli.ConfirmOpts{Force: true},
		kubernetesVersion: "1.31.0",
		store:             s,
	}
	var target *cluster.VersionError
	require.ErrorAs(t, opts.Run(context.Background()), &target)
}

func TestUpgradeOpts_Validate(t *testing.T) {
	require.NoError(t, (&UpgradeOpts{kubernetesVersion: "1.29.2"}).validate())
	require.Error(t, (&UpgradeOpts{kubernetesVersion: "latest"}).validate())
}

func TestGetUpgradesOpts_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newMockClusterStore(ctrl)

	s.MockManagedClusterDescriber.EXPECT().ManagedCluster(gomock.Any(), "rg", "cluster").Return(testCluster(), nil).Times(1)
	s.MockClusterUpgradeLister.EXPECT().ClusterUpgrades(gomock.Any(), "rg", "cluster").Return(nil, nil).Times(1)

	buf := new(bytes.Buffer)
	opts := &GetUpgradesOpts{
		ClusterOpts: cli.ClusterOpts{ResourceGroup: "rg", Name: "cluster"},
		OutputOpts:  cli.OutputOpts{Output: "json", OutWriter: buf},
		store:       s,
	}
	require.NoError(t, opts.Run(context.Background()))
	assert.JSONEq(t, `{"kubernetesVersion":"1.28.5","upgrades":[]}`, buf.String())
}
