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

package store

import (
	"encoding/json"
	"fmt"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Azure/aks-cli-plugin-preview/internal/pointer"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice/v6"
)

func managedClusterToModel(mc *armcontainerservice.ManagedCluster) (*model.ManagedCluster, error) {
	raw, err := json.Marshal(mc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode managed cluster: %w", err)
	}

	out := &model.ManagedCluster{
		ID:       str(mc.ID),
		Name:     str(mc.Name),
		Location: str(mc.Location),
		Raw:      raw,
	}
	if id, err := arm.ParseResourceID(out.ID); err == nil {
		out.ResourceGroup = id.ResourceGroupName
	}
	if mc.Identity != nil {
		out.Identity = &model.ClusterIdentity{
			PrincipalID: str(mc.Identity.PrincipalID),
			TenantID:    str(mc.Identity.TenantID),
		}
		if mc.Identity.Type != nil {
			out.Identity.Type = string(*mc.Identity.Type)
		}
	}

	p := mc.Properties
	if p == nil {
		return out, nil
	}
	out.KubernetesVersion = str(p.KubernetesVersion)
	out.ProvisioningState = str(p.ProvisioningState)
	if p.AddonProfiles != nil {
		out.AddonProfiles = make(map[string]model.AddonProfile, len(p.AddonProfiles))
		for key, profile := range p.AddonProfiles {
			if profile == nil {
				continue
			}
			out.AddonProfiles[key] = addonProfileToModel(profile)
		}
	}
	if p.IngressProfile != nil && p.IngressProfile.WebAppRouting != nil {
		war := p.IngressProfile.WebAppRouting
		out.IngressProfile = &model.IngressProfile{
			WebAppRouting: &model.WebAppRouting{
				Enabled:            pointer.GetOrDefault(war.Enabled, false),
				DNSZoneResourceIDs: strs(war.DNSZoneResourceIDs),
			},
		}
	}
	if p.ServicePrincipalProfile != nil {
		out.ServicePrincipalProfile = &model.ServicePrincipalProfile{
			ClientID: str(p.ServicePrincipalProfile.ClientID),
		}
	}
	for _, pool := range p.AgentPoolProfiles {
		if pool == nil {
			continue
		}
		out.AgentPoolProfiles = append(out.AgentPoolProfiles, agentPoolProfileToModel(pool))
	}
	return out, nil
}

func addonProfileToModel(p *armcontainerservice.ManagedClusterAddonProfile) model.AddonProfile {
	out := model.AddonProfile{Enabled: pointer.GetOrDefault(p.Enabled, false)}
	if p.Config != nil {
		out.Config = make(map[string]string, len(p.Config))
		for k, v := range p.Config {
			out.Config[k] = str(v)
		}
	}
	if p.Identity != nil {
		out.Identity = &model.UserAssignedIdentity{
			ResourceID: str(p.Identity.ResourceID),
			ClientID:   str(p.Identity.ClientID),
			ObjectID:   str(p.Identity.ObjectID),
		}
	}
	return out
}

func agentPoolProfileToModel(p *armcontainerservice.ManagedClusterAgentPoolProfile) model.AgentPoolProfile {
	out := model.AgentPoolProfile{
		Name:                str(p.Name),
		Count:               pointer.GetOrDefault(p.Count, 0),
		VMSize:              str(p.VMSize),
		VnetSubnetID:        str(p.VnetSubnetID),
		OrchestratorVersion: str(p.OrchestratorVersion),
		EnableAutoScaling:   pointer.GetOrDefault(p.EnableAutoScaling, false),
		ProvisioningState:   str(p.ProvisioningState),
	}
	if p.Mode != nil {
		out.Mode = string(*p.Mode)
	}
	if p.OSType != nil {
		out.OSType = string(*p.OSType)
	}
	if p.PowerState != nil && p.PowerState.Code != nil {
		out.PowerState = string(*p.PowerState.Code)
	}
	return out
}

func agentPoolToModel(p *armcontainerservice.AgentPool) model.AgentPoolProfile {
	out := model.AgentPoolProfile{Name: str(p.Name)}
	props := p.Properties
	if props == nil {
		return out
	}
	out.Count = pointer.GetOrDefault(props.Count, 0)
	out.VMSize = str(props.VMSize)
	out.VnetSubnetID = str(props.VnetSubnetID)
	out.OrchestratorVersion = str(props.OrchestratorVersion)
	out.EnableAutoScaling = pointer.GetOrDefault(props.EnableAutoScaling, false)
	out.ProvisioningState = str(props.ProvisioningState)
	if props.Mode != nil {
		out.Mode = string(*props.Mode)
	}
	if props.OSType != nil {
		out.OSType = string(*props.OSType)
	}
	if props.PowerState != nil && props.PowerState.Code != nil {
		out.PowerState = string(*props.PowerState.Code)
	}
	return out
}

// managedClusterFromModel rebuilds the ARM document for a PUT. The fields the
// plugin manages are written over the raw document the snapshot came from.
func managedClusterFromModel(mc *model.ManagedCluster) (armcontainerservice.ManagedCluster, error) {
	var out armcontainerservice.ManagedCluster
	if len(mc.Raw) > 0 {
		if err := json.Unmarshal(mc.Raw, &out); err != nil {
			return out, fmt.Errorf("failed to decode managed cluster: %w", err)
		}
	}
	if mc.Location != "" {
		out.Location = to.Ptr(mc.Location)
	}
	if out.Properties == nil {
		out.Properties = &armcontainerservice.ManagedClusterProperties{}
	}
	p := out.Properties

	if mc.KubernetesVersion != "" {
		p.KubernetesVersion = to.Ptr(mc.KubernetesVersion)
	}

	p.AddonProfiles = nil
	if mc.AddonProfiles != nil {
		p.AddonProfiles = make(map[string]*armcontainerservice.ManagedClusterAddonProfile, len(mc.AddonProfiles))
		for key, profile := range mc.AddonProfiles {
			p.AddonProfiles[key] = addonProfileFromModel(profile)
		}
	}

	if mc.IngressProfile != nil && mc.IngressProfile.WebAppRouting != nil {
		if p.IngressProfile == nil {
			p.IngressProfile = &armcontainerservice.ManagedClusterIngressProfile{}
		}
		if p.IngressProfile.WebAppRouting == nil {
			p.IngressProfile.WebAppRouting = &armcontainerservice.ManagedClusterIngressProfileWebAppRouting{}
		}
		war := mc.IngressProfile.WebAppRouting
		p.IngressProfile.WebAppRouting.Enabled = to.Ptr(war.Enabled)
		if len(war.DNSZoneResourceIDs) > 0 {
			p.IngressProfile.WebAppRouting.DNSZoneResourceIDs = to.SliceOfPtrs(war.DNSZoneResourceIDs...)
		}
	}

	if mc.ServicePrincipalProfile == nil {
		p.ServicePrincipalProfile = nil
	} else {
		p.ServicePrincipalProfile = &armcontainerservice.ManagedClusterServicePrincipalProfile{
			ClientID: to.Ptr(mc.ServicePrincipalProfile.ClientID),
			Secret:   pointer.GetNonZeroValue(mc.ServicePrincipalProfile.Secret),
		}
	}

	for _, pool := range p.AgentPoolProfiles {
		if pool == nil {
			continue
		}
		for _, want := range mc.AgentPoolProfiles {
			if want.Name != str(pool.Name) {
				continue
			}
			if pool.Count != nil || want.Count != 0 {
				pool.Count = to.Ptr(want.Count)
			}
			if want.OrchestratorVersion != "" {
				pool.OrchestratorVersion = to.Ptr(want.OrchestratorVersion)
			}
		}
	}
	return out, nil
}

func addonProfileFromModel(p model.AddonProfile) *armcontainerservice.ManagedClusterAddonProfile {
	out := &armcontainerservice.ManagedClusterAddonProfile{Enabled: to.Ptr(p.Enabled)}
	if p.Config != nil {
		out.Config = make(map[string]*string, len(p.Config))
		for k, v := range p.Config {
			out.Config[k] = to.Ptr(v)
		}
	}
	return out
}

func str(s *string) string {
	return pointer.GetOrDefault(s, "")
}

func strs(in []*string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}
