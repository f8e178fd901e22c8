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

package roleassignment

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/addons"
	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Azure/aks-cli-plugin-preview/internal/log"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
)

// Built-in role definition ids.
const (
	MonitoringMetricsPublisherRoleID = "3913510d-42f4-4e42-8a64-420c390055eb"
	ContributorRoleID                = "b24988ac-6180-42a0-ab88-20f7382dd24c"
	NetworkContributorRoleID         = "4d97b98b-1d4f-4787-a291-c67834d212e7"
)

// MonitoringRequest is the metrics publisher assignment of the monitoring
// add-on identity on the cluster. ok is false when the add-on has no
// identity yet.
func MonitoringRequest(mc model.ManagedCluster) (req model.RoleAssignmentRequest, ok bool) {
	p, found := mc.Addon(addons.MonitoringKey)
	if !found || p.Identity == nil || p.Identity.ObjectID == "" {
		return req, false
	}
	return model.RoleAssignmentRequest{
		Role:      MonitoringMetricsPublisherRoleID,
		Principal: p.Identity.ObjectID,
		Scope:     mc.ID,
	}, true
}

// PostCreationRequests lists the role assignments the add-ons of a freshly
// updated cluster need. Metrics publishing only exists in the public cloud.
func PostCreationRequests(mc model.ManagedCluster, publicCloud bool) []model.RoleAssignmentRequest {
	var out []model.RoleAssignmentRequest

	if mc.AddonEnabled(addons.MonitoringKey) && publicCloud {
		if req, ok := MonitoringRequest(mc); ok {
			out = append(out, req)
		} else {
			log.Warningln("the monitoring addon has no identity, skipping the Monitoring Metrics Publisher role assignment")
		}
	}

	if p, ok := mc.Addon(addons.IngressAppGatewayKey); ok && p.Enabled {
		out = append(out, appGatewayRequests(mc, p)...)
	}

	virtualNodeKey, _ := addons.CanonicalKey(addons.VirtualNode)
	if p, ok := mc.Addon(virtualNodeKey); ok {
		if vnet := clusterVirtualNetwork(mc); vnet != "" && p.Identity != nil && p.Identity.ObjectID != "" {
			out = append(out, model.RoleAssignmentRequest{
				Role:      ContributorRoleID,
				Principal: p.Identity.ObjectID,
				Scope:     vnet,
			})
		}
	}
	return out
}

func appGatewayRequests(mc model.ManagedCluster, p model.AddonProfile) []model.RoleAssignmentRequest {
	if p.Identity == nil || p.Identity.ObjectID == "" {
		log.Warningln("the ingress-appgw addon has no identity, skipping its role assignments")
		return nil
	}
	principal := p.Identity.ObjectID

	var out []model.RoleAssignmentRequest
	if gatewayID := p.Config[addons.AppGatewayID]; gatewayID != "" {
		if id, err := arm.ParseResourceID(gatewayID); err == nil {
			out = append(out, model.RoleAssignmentRequest{
				Role:      ContributorRoleID,
				Principal: principal,
				Scope:     fmt.Sprintf("/subscriptions/%s/resourceGroups/%s", id.SubscriptionID, id.ResourceGroupName),
			})
		}
	}
	if subnetID := p.Config[addons.AppGatewaySubnetID]; subnetID != "" {
		out = append(out, model.RoleAssignmentRequest{
			Role:      NetworkContributorRoleID,
			Principal: principal,
			Scope:     subnetID,
		})
	}
	if p.Config[addons.AppGatewaySubnetCIDR] != "" {
		if vnet := clusterVirtualNetwork(mc); vnet != "" {
			out = append(out, model.RoleAssignmentRequest{
				Role:      ContributorRoleID,
				Principal: principal,
				Scope:     vnet,
			})
		}
	}
	return out
}

// clusterVirtualNetwork returns the virtual network of the first agent pool.
// All pools share it, and clusters without a custom network return "".
func clusterVirtualNetwork(mc model.ManagedCluster) string {
	if len(mc.AgentPoolProfiles) == 0 {
		return ""
	}
	return VirtualNetworkID(mc.AgentPoolProfiles[0].VnetSubnetID)
}

// VirtualNetworkID returns the parent virtual network of a subnet id.
func VirtualNetworkID(subnetID string) string {
	if subnetID == "" {
		return ""
	}
	id, err := arm.ParseResourceID(subnetID)
	if err != nil || id.Parent == nil || !strings.EqualFold(id.ResourceType.Type, "virtualNetworks/subnets") {
		return ""
	}
	return id.Parent.String()
}

// CreateAll makes each assignment. Failures are reported as warnings since
// the cluster update itself already succeeded.
func (w *Waiter) CreateAll(ctx context.Context, reqs []model.RoleAssignmentRequest) []model.RoleAssignment {
	var out []model.RoleAssignment
	for _, req := range reqs {
		created, err := w.WaitForCreation(ctx, req)
		if err != nil {
			log.Warningf("Could not create a role assignment for %s at %s. Are you an Owner on this subscription? %v\n", req.Principal, req.Scope, err)
			continue
		}
		out = append(out, *created)
	}
	return out
}
