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
	"errors"
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

func TestEnableOpts_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newMockStore(ctrl)
	op := mocks.NewMockClusterOperation(ctrl)

	s.MockManagedClusterDescriber.EXPECT().ManagedCluster(gomock.Any(), "rg", "cluster").Return(testCluster(nil), nil).Times(1)
	s.MockManagedClusterUpdater.EXPECT().BeginUpdateManagedCluster(gomock.Any(), "rg", "cluster", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, mc *model.ManagedCluster) (store.ClusterOperation, error) {
			assert.True(t, mc.AddonEnabled(addons.AzurePolicyKey))
			assert.True(t, mc.AddonEnabled(addons.OpenServiceMeshKey))
			return op, nil
		}).Times(1)
	op.EXPECT().Wait(gomock.Any()).Return(testCluster(map[string]model.AddonProfile{
		addons.AzurePolicyKey:     {Enabled: true},
		addons.OpenServiceMeshKey: {Enabled: true, Config: map[string]string{}},
	}), nil).Times(1)

	buf := new(bytes.Buffer)
	opts := &EnableOpts{
		ClusterOpts: cli.ClusterOpts{ResourceGroup: "rg", Name: "cluster"},
		OutputOpts:  cli.OutputOpts{Output: "table", OutWriter: buf},
		addons:      "azure-policy,open-service-mesh",
		manager:     newTestManager(s),
	}
	require.NoError(t, opts.Run(context.Background()))
	assert.Contains(t, buf.String(), "KUBERNETES VERSION")
	assert.Contains(t, buf.String(), "Succeeded")
}

func TestEnableOpts_RunNoWait(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newMockStore(ctrl)
	op := mocks.NewMockClusterOperation(ctrl)

	s.MockManagedClusterDescriber.EXPECT().ManagedCluster(gomock.Any(), "rg", "cluster").Return(testCluster(nil), nil).Times(1)
	s.MockManagedClusterUpdater.EXPECT().BeginUpdateManagedCluster(gomock.Any(), "rg", "cluster", gomock.Any()).Return(op, nil).Times(1)

	buf := new(bytes.Buffer)
	opts := &EnableOpts{
		ClusterOpts: cli.ClusterOpts{ResourceGroup: "rg", Name: "cluster"},
		OutputOpts:  cli.OutputOpts{OutWriter: buf},
		addons:      addons.GitOps,
		noWait:      true,
		manager:     newTestManager(s),
	}
	require.NoError(t, opts.Run(context.Background()))
	assert.Equal(t, "Update of managed cluster 'cluster' in resource group 'rg' started.\n", buf.String())
}

func TestEnableOpts_RunAlreadyEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newMockStore(ctrl)

	mc := testCluster(map[string]model.AddonProfile{addons.AzurePolicyKey: {Enabled: true}})
	s.MockManagedClusterDescriber.EXPECT().ManagedCluster(gomock.Any(), "rg", "cluster").Return(mc, nil).Times(1)

	opts := &EnableOpts{
		ClusterOpts: cli.ClusterOpts{ResourceGroup: "rg", Name: "cluster"},
		OutputOpts:  cli.OutputOpts{OutWriter: new(bytes.Buffer)},
		addons:      addons.AzurePolicy,
		manager:     newTestManager(s),
	}
	var target *addons.AddonAlreadyEnabledError
	require.ErrorAs(t, opts.Run(context.Background()), &target)
}

func TestEnableOpts_RunRemoteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newMockStore(ctrl)

	remote := &store.RemoteError{StatusCode: 404, Code: "ResourceNotFound", Err: errors.New("not found")}
	s.MockManagedClusterDescriber.EXPECT().ManagedCluster(gomock.Any(), "rg", "cluster").Return(nil, remote).Times(1)

	opts := &EnableOpts{
		ClusterOpts: cli.ClusterOpts{ResourceGroup: "rg", Name: "cluster"},
		addons:      addons.AzurePolicy,
		manager:     newTestManager(s),
	}
	require.ErrorIs(t, opts.Run(context.Background()), remote)
}

func TestEnableOpts_Validate(t *testing.T) {
	tests := map[string]struct {
		opts    EnableOpts
		wantErr bool
	}{
		"single": {
			opts: EnableOpts{single: true, addons: addons.Monitoring},
		},
		"single with list": {
			opts:    EnableOpts{single: true, addons: "monitoring,gitops"},
			wantErr: true,
		},
		"list": {
			opts: EnableOpts{addons: "monitoring,gitops"},
		},
		"invalid workspace": {
			opts:    EnableOpts{addons: addons.Monitoring, options: addons.Options{WorkspaceResourceID: "workspace"}},
			wantErr: true,
		},
		"subnet id of another type": {
			opts: EnableOpts{addons: addons.IngressAppGateway, options: addons.Options{
				AppGatewaySubnetID: "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Network/applicationGateways/gw",
			}},
			wantErr: true,
		},
		"invalid cidr": {
			opts:    EnableOpts{addons: addons.IngressAppGateway, options: addons.Options{AppGatewaySubnetCIDR: "10.0.0.0"}},
			wantErr: true,
		},
		"invalid poll interval": {
			opts:    EnableOpts{addons: addons.AzureKeyvaultSecretsProvider, options: addons.Options{RotationPollInterval: "often"}},
			wantErr: true,
		},
		"both rotation flags": {
			opts: EnableOpts{addons: addons.AzureKeyvaultSecretsProvider, options: addons.Options{
				EnableSecretRotation:  true,
				DisableSecretRotation: true,
			}},
			wantErr: true,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.opts.validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
