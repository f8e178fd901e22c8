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

package roleassignment

import (
	"strings"
	"testing"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/addons"
	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	clusterID = "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.ContainerService/managedClusters/cluster"
	subnetID  = "/subscriptions/sub/resourceGroups/net/providers/Microsoft.Network/virtualNetworks/vnet/subnets/nodes"
	vnetID    = "/subscriptions/sub/resourceGroups/net/providers/Microsoft.Network/virtualNetworks/vnet"
)

func identity(objectID string) *model.UserAssignedIdentity {
	return &model.UserAssignedIdentity{ObjectID: objectID}
}

func TestPostCreationRequestsMonitoring(t *testing.T) {
	mc := model.ManagedCluster{
		ID: clusterID,
		AddonProfiles: map[string]model.AddonProfile{
			addons.MonitoringKey: {Enabled: true, Identity: identity("oms")},
		},
	}

	got := PostCreationRequests(mc, true)
	assert.Equal(t, []model.RoleAssignmentRequest{
		{Role: MonitoringMetricsPublisherRoleID, Principal: "oms", Scope: clusterID},
	}, got)

	assert.Empty(t, PostCreationRequests(mc, false))
}

func TestPostCreationRequestsAppGateway(t *testing.T) {
	mc := model.ManagedCluster{
		ID:                clusterID,
		AgentPoolProfiles: []model.AgentPoolProfile{{Name: "nodepool1", VnetSubnetID: subnetID}},
		AddonProfiles: map[string]model.AddonProfile{
			addons.IngressAppGatewayKey: {
				Enabled:  true,
				Identity: identity("agic"),
				Config: map[string]string{
					addons.AppGatewayID:         "/subscriptions/sub2/resourceGroups/gw-rg/providers/Microsoft.Network/applicationGateways/gw",
					addons.AppGatewaySubnetID:   "/subscriptions/sub/resourceGroups/net/providers/Microsoft.Network/virtualNetworks/vnet/subnets/gw",
					addons.AppGatewaySubnetCIDR: "10.2.0.0/16",
				},
			},
		},
	}

	got := PostCreationRequests(mc, true)
	require.Len(t, got, 3)
	assert.Equal(t, ContributorRoleID, got[0].Role)
	assert.Equal(t, "/subscriptions/sub2/resourceGroups/gw-rg", got[0].Scope)
	assert.Equal(t, NetworkContributorRoleID, got[1].Role)
	assert.Equal(t, ContributorRoleID, got[2].Role)
	assert.True(t, strings.EqualFold(vnetID, got[2].Scope), got[2].Scope)
	for _, r := range got {
		assert.Equal(t, "agic", r.Principal)
	}
}

func TestPostCreationRequestsVirtualNode(t *testing.T) {
	mc := model.ManagedCluster{
		ID:                clusterID,
		AgentPoolProfiles: []model.AgentPoolProfile{{Name: "nodepool1", VnetSubnetID: subnetID}},
		AddonProfiles: map[string]model.AddonProfile{
			"aciConnectorLinux": {Enabled: true, Identity: identity("aci")},
		},
	}
	got := PostCreationRequests(mc, true)
	require.Len(t, got, 1)
	assert.Equal(t, ContributorRoleID, got[0].Role)
	assert.Equal(t, "aci", got[0].Principal)

	mc.AgentPoolProfiles[0].VnetSubnetID = ""
	assert.Empty(t, PostCreationRequests(mc, true))
}

func TestVirtualNetworkID(t *testing.T) {
	assert.True(t, strings.EqualFold(vnetID, VirtualNetworkID(subnetID)))
	assert.Empty(t, VirtualNetworkID(""))
	assert.Empty(t, VirtualNetworkID("not-an-id"))
	assert.Empty(t, VirtualNetworkID(vnetID))
}
