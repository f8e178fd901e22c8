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

package model

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// ManagedCluster is a snapshot of an AKS managed cluster as read from ARM.
// Snapshots are treated as values: functions that change one return a new
// snapshot built with Clone.
type ManagedCluster struct {
	ID                      string                   `json:"id,omitempty"`
	Name                    string                   `json:"name,omitempty"`
	Location                string                   `json:"location,omitempty"`
	ResourceGroup           string                   `json:"resourceGroup,omitempty"`
	KubernetesVersion       string                   `json:"kubernetesVersion,omitempty"`
	ProvisioningState       string                   `json:"provisioningState,omitempty"`
	AddonProfiles           map[string]AddonProfile  `json:"addonProfiles"`
	IngressProfile          *IngressProfile          `json:"ingressProfile,omitempty"`
	ServicePrincipalProfile *ServicePrincipalProfile `json:"servicePrincipalProfile,omitempty"`
	AgentPoolProfiles       []AgentPoolProfile       `json:"agentPoolProfiles,omitempty"`
	Identity                *ClusterIdentity         `json:"identity,omitempty"`

	// Raw is the ARM document the snapshot was read from. Submission overlays
	// the managed fields on top of it so unrelated properties survive a PUT.
	Raw json.RawMessage `json:"-"`
}

type AddonProfile struct {
	Enabled  bool                  `json:"enabled"`
	Config   map[string]string     `json:"config"`
	Identity *UserAssignedIdentity `json:"identity,omitempty"`
}

type UserAssignedIdentity struct {
	ResourceID string `json:"resourceId,omitempty"`
	ClientID   string `json:"clientId,omitempty"`
	ObjectID   string `json:"objectId,omitempty"`
}

type IngressProfile struct {
	WebAppRouting *WebAppRouting `json:"webAppRouting,omitempty"`
}

type WebAppRouting struct {
	Enabled            bool     `json:"enabled"`
	DNSZoneResourceIDs []string `json:"dnsZoneResourceIds,omitempty"`
}

type ServicePrincipalProfile struct {
	ClientID string `json:"clientId,omitempty"`
	Secret   string `json:"-"`
}

type AgentPoolProfile struct {
	Name                string `json:"name"`
	Count               int32  `json:"count"`
	VMSize              string `json:"vmSize,omitempty"`
	Mode                string `json:"mode,omitempty"`
	OSType              string `json:"osType,omitempty"`
	VnetSubnetID        string `json:"vnetSubnetId,omitempty"`
	OrchestratorVersion string `json:"orchestratorVersion,omitempty"`
	EnableAutoScaling   bool   `json:"enableAutoScaling"`
	PowerState          string `json:"powerState,omitempty"`
	ProvisioningState   string `json:"provisioningState,omitempty"`
}

type ClusterIdentity struct {
	Type        string `json:"type,omitempty"`
	PrincipalID string `json:"principalId,omitempty"`
	TenantID    string `json:"tenantId,omitempty"`
}

// UsesManagedIdentity reports whether the cluster authenticates with a managed
// identity instead of a service principal.
func (mc *ManagedCluster) UsesManagedIdentity() bool {
	return mc.ServicePrincipalProfile != nil && mc.ServicePrincipalProfile.ClientID == MSIClientID
}

// Addon returns the profile stored under key. ARM keys are matched case
// insensitively; an exact match wins, then the first variant in sorted order.
func (mc *ManagedCluster) Addon(key string) (AddonProfile, bool) {
	if p, ok := mc.AddonProfiles[key]; ok {
		return p, true
	}
	for _, k := range slices.Sorted(maps.Keys(mc.AddonProfiles)) {
		if strings.EqualFold(k, key) {
			return mc.AddonProfiles[k], true
		}
	}
	return AddonProfile{}, false
}

// AddonEnabled reports whether key is present and enabled.
func (mc *ManagedCluster) AddonEnabled(key string) bool {
	p, ok := mc.Addon(key)
	return ok && p.Enabled
}

// WebAppRoutingEnabled reports whether the ingress web app routing toggle is on.
func (mc *ManagedCluster) WebAppRoutingEnabled() bool {
	return mc.IngressProfile != nil && mc.IngressProfile.WebAppRouting != nil && mc.IngressProfile.WebAppRouting.Enabled
}

// Clone returns a deep copy of the snapshot.
func (mc ManagedCluster) Clone() ManagedCluster {
	out := mc
	if mc.AddonProfiles != nil {
		out.AddonProfiles = make(map[string]AddonProfile, len(mc.AddonProfiles))
		for k, v := range mc.AddonProfiles {
			out.AddonProfiles[k] = v.Clone()
		}
	}
	if mc.IngressProfile != nil {
		ip := *mc.IngressProfile
		if ip.WebAppRouting != nil {
			war := *ip.WebAppRouting
			war.DNSZoneResourceIDs = slices.Clone(war.DNSZoneResourceIDs)
			ip.WebAppRouting = &war
		}
		out.IngressProfile = &ip
	}
	if mc.ServicePrincipalProfile != nil {
		sp := *mc.ServicePrincipalProfile
		out.ServicePrincipalProfile = &sp
	}
	if mc.Identity != nil {
		id := *mc.Identity
		out.Identity = &id
	}
	out.AgentPoolProfiles = slices.Clone(mc.AgentPoolProfiles)
	out.Raw = slices.Clone(mc.Raw)
	return out
}

func (p AddonProfile) Clone() AddonProfile {
	out := p
	if p.Config != nil {
		out.Config = maps.Clone(p.Config)
	}
	if p.Identity != nil {
		id := *p.Identity
		out.Identity = &id
	}
	return out
}
