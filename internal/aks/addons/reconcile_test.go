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

package addons

import (
	"context"
	"errors"
	"testing"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Azure/aks-cli-plugin-preview/internal/mocks"
	"github.com/go-test/deep"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workspaceID = "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.OperationalInsights/workspaces/ws1"

func testCluster(profiles map[string]model.AddonProfile) model.ManagedCluster {
	return model.ManagedCluster{
		Name:          "cluster",
		ResourceGroup: "rg",
		Location:      "eastus",
		AddonProfiles: profiles,
		ServicePrincipalProfile: &model.ServicePrincipalProfile{
			ClientID: model.MSIClientID,
		},
	}
}

func TestReconcileUnknownAddon(t *testing.T) {
	for _, addons := range []string{"foo", "monitoring,foo", "Monitoring", "gitops,"} {
		t.Run(addons, func(t *testing.T) {
			current := testCluster(map[string]model.AddonProfile{
				MonitoringKey: {Enabled: true, Config: map[string]string{"a": "b"}},
			})
			before := current.Clone()

			_, err := NewReconciler(nil).Reconcile(context.Background(), current, Request{Addons: addons, Enable: true})

			var target *UnknownAddonError
			require.ErrorAs(t, err, &target)
			if diff := deep.Equal(before, current); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestReconcileEmptyAddons(t *testing.T) {
	_, err := NewReconciler(nil).Reconcile(context.Background(), testCluster(nil), Request{Addons: " ", Enable: true})
	var target *MissingRequiredOptionError
	require.ErrorAs(t, err, &target)
}

func TestReconcileAlreadyEnabled(t *testing.T) {
	tests := map[string]struct {
		name string
		key  string
	}{
		"monitoring":        {name: Monitoring, key: MonitoringKey},
		"virtual-node":      {name: VirtualNode, key: "aciConnectorLinux"},
		"ingress-appgw":     {name: IngressAppGateway, key: IngressAppGatewayKey},
		"open-service-mesh": {name: OpenServiceMesh, key: OpenServiceMeshKey},
		"confcom":           {name: Confcom, key: ConfcomKey},
		"keyvault":          {name: AzureKeyvaultSecretsProvider, key: AzureKeyvaultSecretsProviderKey},
		"azure-policy":      {name: AzurePolicy, key: AzurePolicyKey},
		"kube-dashboard":    {name: KubeDashboard, key: KubeDashboardKey},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			current := testCluster(map[string]model.AddonProfile{
				tt.key: {Enabled: true},
			})
			_, err := NewReconciler(nil).Reconcile(context.Background(), current, Request{
				Addons:  tt.name,
				Enable:  true,
				Options: Options{WorkspaceResourceID: workspaceID, SubnetName: "aci"},
			})

			var target *AddonAlreadyEnabledError
			require.ErrorAs(t, err, &target)
			assert.Equal(t, tt.name, target.Name)
			assert.Contains(t, err.Error(), "disable-addons -a "+tt.name+" -n cluster -g rg")
		})
	}
}

func TestReconcileSkipEnabledCheck(t *testing.T) {
	current := testCluster(map[string]model.AddonProfile{
		ConfcomKey: {Enabled: true, Config: map[string]string{SGXQuoteHelperEnabled: "false"}},
	})
	got, err := NewReconciler(nil).Reconcile(context.Background(), current, Request{
		Addons:           Confcom,
		Enable:           true,
		SkipEnabledCheck: true,
		Options:          Options{EnableSGXQuoteHelper: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "true", got.AddonProfiles[ConfcomKey].Config[SGXQuoteHelperEnabled])
}

func TestReconcileDisable(t *testing.T) {
	t.Run("not installed", func(t *testing.T) {
		_, err := NewReconciler(nil).Reconcile(context.Background(), testCluster(nil), Request{Addons: Monitoring})
		var target *AddonNotInstalledError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, MonitoringKey, target.Key)
	})

	t.Run("kube-dashboard is created disabled", func(t *testing.T) {
		got, err := NewReconciler(nil).Reconcile(context.Background(), testCluster(nil), Request{Addons: KubeDashboard})
		require.NoError(t, err)
		assert.Equal(t, map[string]model.AddonProfile{
			KubeDashboardKey: {Enabled: false, Config: nil},
		}, got.AddonProfiles)
	})

	t.Run("disabling twice is idempotent", func(t *testing.T) {
		current := testCluster(map[string]model.AddonProfile{
			MonitoringKey: {Enabled: true, Config: map[string]string{MonitoringWorkspaceResourceID: workspaceID}},
		})
		r := NewReconciler(nil)
		first, err := r.Reconcile(context.Background(), current, Request{Addons: Monitoring})
		require.NoError(t, err)
		second, err := r.Reconcile(context.Background(), first, Request{Addons: Monitoring})
		require.NoError(t, err)

		want := map[string]model.AddonProfile{MonitoringKey: {Enabled: false, Config: nil}}
		assert.Equal(t, want, first.AddonProfiles)
		assert.Equal(t, want, second.AddonProfiles)
	})

	t.Run("canonical key wins over cased duplicate", func(t *testing.T) {
		current := testCluster(map[string]model.AddonProfile{
			MonitoringKey: {Enabled: true, Config: map[string]string{MonitoringWorkspaceResourceID: workspaceID}},
			"OMSAgent":    {Enabled: true},
		})
		got, err := NewReconciler(nil).Reconcile(context.Background(), current, Request{Addons: Monitoring})
		require.NoError(t, err)
		assert.Equal(t, map[string]model.AddonProfile{MonitoringKey: {Enabled: false, Config: nil}}, got.AddonProfiles)
		assert.Len(t, current.AddonProfiles, 2)
	})
}

func TestReconcileVirtualNode(t *testing.T) {
	t.Run("canonical key", func(t *testing.T) {
		got, err := NewReconciler(nil).Reconcile(context.Background(), testCluster(nil), Request{
			Addons:  VirtualNode,
			Enable:  true,
			Options: Options{SubnetName: "aci-subnet"},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]model.AddonProfile{
			"aciConnectorLinux": {Enabled: true, Config: map[string]string{VirtualNodeSubnetName: "aci-subnet"}},
		}, got.AddonProfiles)
	})

	t.Run("differently cased key is merged", func(t *testing.T) {
		current := testCluster(map[string]model.AddonProfile{
			"aciconnectorlinux": {Enabled: false},
		})
		got, err := NewReconciler(nil).Reconcile(context.Background(), current, Request{
			Addons:  VirtualNode,
			Enable:  true,
			Options: Options{SubnetName: "aci-subnet"},
		})
		require.NoError(t, err)
		assert.Len(t, got.AddonProfiles, 1)
		assert.True(t, got.AddonProfiles["aciConnectorLinux"].Enabled)
		assert.Contains(t, current.AddonProfiles, "aciconnectorlinux")
	})

	t.Run("subnet name required", func(t *testing.T) {
		_, err := NewReconciler(nil).Reconcile(context.Background(), testCluster(nil), Request{Addons: VirtualNode, Enable: true})
		var target *MissingRequiredOptionError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "--subnet-name", target.Option)
	})
}

func TestReconcileMonitoring(t *testing.T) {
	t.Run("workspace supplied", func(t *testing.T) {
		got, err := NewReconciler(nil).Reconcile(context.Background(), testCluster(map[string]model.AddonProfile{}), Request{
			Addons:  Monitoring,
			Enable:  true,
			Options: Options{WorkspaceResourceID: workspaceID},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]model.AddonProfile{
			MonitoringKey: {
				Enabled: true,
				Config: map[string]string{
					MonitoringWorkspaceResourceID: workspaceID,
					MonitoringUseAADAuth:          "false",
				},
			},
		}, got.AddonProfiles)
	})

	t.Run("default workspace is resolved", func(t *testing.T) {
		resolver := mocks.NewMockWorkspaceResolver(gomock.NewController(t))
		resolver.EXPECT().DefaultWorkspaceID(gomock.Any(), "rg").Return(" subscriptions/sub/ws/ ", nil).Times(1)

		got, err := NewReconciler(resolver).Reconcile(context.Background(), testCluster(nil), Request{
			Addons:  Monitoring,
			Enable:  true,
			Options: Options{EnableMSIAuthForMonitoring: true},
		})
		require.NoError(t, err)
		assert.Equal(t, "/subscriptions/sub/ws", got.AddonProfiles[MonitoringKey].Config[MonitoringWorkspaceResourceID])
		assert.Equal(t, "true", got.AddonProfiles[MonitoringKey].Config[MonitoringUseAADAuth])
	})

	t.Run("resolver failure", func(t *testing.T) {
		resolver := mocks.NewMockWorkspaceResolver(gomock.NewController(t))
		resolver.EXPECT().DefaultWorkspaceID(gomock.Any(), "rg").Return("", errors.New("boom")).Times(1)

		_, err := NewReconciler(resolver).Reconcile(context.Background(), testCluster(nil), Request{Addons: Monitoring, Enable: true})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestReconcileAddonDefaults(t *testing.T) {
	tests := map[string]struct {
		addons string
		opts   Options
		key    string
		config map[string]string
	}{
		"ingress-appgw merges supplied settings": {
			addons: IngressAppGateway,
			opts: Options{
				AppGatewayName:           "gw",
				AppGatewaySubnetPrefix:   "10.1.0.0/16",
				AppGatewaySubnetCIDR:     "10.2.0.0/16",
				AppGatewayWatchNamespace: "default",
			},
			key: IngressAppGatewayKey,
			config: map[string]string{
				AppGatewayName:           "gw",
				AppGatewaySubnetCIDR:     "10.2.0.0/16",
				AppGatewayWatchNamespace: "default",
			},
		},
		"confcom defaults": {
			addons: Confcom,
			key:    ConfcomKey,
			config: map[string]string{SGXQuoteHelperEnabled: "false"},
		},
		"keyvault defaults": {
			addons: AzureKeyvaultSecretsProvider,
			key:    AzureKeyvaultSecretsProviderKey,
			config: map[string]string{SecretRotationEnabled: "false", RotationPollInterval: "2m"},
		},
		"keyvault rotation": {
			addons: AzureKeyvaultSecretsProvider,
			opts:   Options{EnableSecretRotation: true, RotationPollInterval: "5m"},
			key:    AzureKeyvaultSecretsProviderKey,
			config: map[string]string{SecretRotationEnabled: "true", RotationPollInterval: "5m"},
		},
		"open-service-mesh": {
			addons: OpenServiceMesh,
			key:    OpenServiceMeshKey,
			config: map[string]string{},
		},
		"azure-policy keeps no config": {
			addons: AzurePolicy,
			key:    AzurePolicyKey,
			config: nil,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := NewReconciler(nil).Reconcile(context.Background(), testCluster(nil), Request{
				Addons:  tt.addons,
				Enable:  true,
				Options: tt.opts,
			})
			require.NoError(t, err)
			profile, ok := got.AddonProfiles[tt.key]
			require.True(t, ok)
			assert.True(t, profile.Enabled)
			assert.Equal(t, tt.config, profile.Config)
		})
	}
}

func TestReconcileMultipleAddons(t *testing.T) {
	current := testCluster(map[string]model.AddonProfile{
		HTTPApplicationRoutingKey: {Enabled: true},
	})
	got, err := NewReconciler(nil).Reconcile(context.Background(), current, Request{
		Addons: "azure-policy,gitops",
		Enable: true,
	})
	require.NoError(t, err)
	assert.Len(t, got.AddonProfiles, 3)
	assert.True(t, got.AddonEnabled(AzurePolicyKey))
	assert.True(t, got.AddonEnabled(GitOpsKey))
	assert.True(t, got.AddonEnabled(HTTPApplicationRoutingKey))
}

func TestReconcileWebAppRouting(t *testing.T) {
	r := NewReconciler(nil)
	enabled, err := r.Reconcile(context.Background(), testCluster(nil), Request{
		Addons:  WebApplicationRouting,
		Enable:  true,
		Options: Options{DNSZoneResourceID: "/zones/contoso.com"},
	})
	require.NoError(t, err)
	assert.True(t, enabled.WebAppRoutingEnabled())
	assert.Equal(t, []string{"/zones/contoso.com"}, enabled.IngressProfile.WebAppRouting.DNSZoneResourceIDs)
	assert.Empty(t, enabled.AddonProfiles)

	disabled, err := r.Reconcile(context.Background(), enabled, Request{Addons: WebApplicationRouting})
	require.NoError(t, err)
	assert.False(t, disabled.WebAppRoutingEnabled())
}

func TestReconcileClearsServicePrincipal(t *testing.T) {
	current := testCluster(nil)
	got, err := NewReconciler(nil).Reconcile(context.Background(), current, Request{Addons: GitOps, Enable: true})
	require.NoError(t, err)
	assert.Nil(t, got.ServicePrincipalProfile)
	assert.NotNil(t, current.ServicePrincipalProfile)
}

func TestSanitizeWorkspaceResourceID(t *testing.T) {
	tests := map[string]string{
		"/subscriptions/a/ws":   "/subscriptions/a/ws",
		"subscriptions/a/ws":    "/subscriptions/a/ws",
		" /subscriptions/a/ws/": "/subscriptions/a/ws",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeWorkspaceResourceID(in))
	}
}
