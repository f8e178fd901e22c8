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

package addons

import (
	"slices"
)

// Canonical add-on profile keys as stored in the managed cluster's addonProfiles.
const (
	HTTPApplicationRoutingKey       = "httpApplicationRouting"
	MonitoringKey                   = "omsagent"
	VirtualNodeKey                  = "aciConnector"
	KubeDashboardKey                = "kubeDashboard"
	AzurePolicyKey                  = "azurepolicy"
	IngressAppGatewayKey            = "ingressApplicationGateway"
	ConfcomKey                      = "ACCSGXDevicePlugin"
	OpenServiceMeshKey              = "openServiceMesh"
	AzureKeyvaultSecretsProviderKey = "azureKeyvaultSecretsProvider"
	GitOpsKey                       = "gitops"
	WebAppRoutingKey                = "ingressProfile.webAppRouting"
)

// CLI names accepted by --addons.
const (
	HTTPApplicationRouting       = "http_application_routing"
	Monitoring                   = "monitoring"
	VirtualNode                  = "virtual-node"
	KubeDashboard                = "kube-dashboard"
	AzurePolicy                  = "azure-policy"
	IngressAppGateway            = "ingress-appgw"
	Confcom                      = "confcom"
	OpenServiceMesh              = "open-service-mesh"
	AzureKeyvaultSecretsProvider = "azure-keyvault-secrets-provider"
	GitOps                       = "gitops"
	WebApplicationRouting        = "web_application_routing"
)

// Config keys written into add-on profiles.
const (
	MonitoringWorkspaceResourceID = "logAnalyticsWorkspaceResourceID"
	MonitoringUseAADAuth          = "useAADAuth"
	VirtualNodeSubnetName         = "SubnetName"
	AppGatewayName                = "applicationGatewayName"
	AppGatewayID                  = "applicationGatewayId"
	AppGatewaySubnetID            = "subnetId"
	AppGatewaySubnetCIDR          = "subnetCIDR"
	AppGatewayWatchNamespace      = "watchNamespace"
	SGXQuoteHelperEnabled         = "ACCSGXQuoteHelperEnabled"
	SecretRotationEnabled         = "enableSecretRotation"
	RotationPollInterval          = "rotationPollInterval"

	DefaultRotationPollInterval = "2m"
)

// VirtualNodeOSType is appended to the virtual-node key. Only Linux is
// supported by the service.
const VirtualNodeOSType = "Linux"

// Descriptor describes one entry of the add-on catalog.
type Descriptor struct {
	Name        string `json:"name"`
	Key         string `json:"apiKey"`
	Description string `json:"description"`
}

var catalog = map[string]Descriptor{}

func init() {
	for _, d := range []Descriptor{
		{HTTPApplicationRouting, HTTPApplicationRoutingKey, "Configure ingress with automatic public DNS name creation."},
		{Monitoring, MonitoringKey, "Turn on Log Analytics monitoring. Uses the Log Analytics Default Workspace if it exists, else creates one. Specify \"--workspace-resource-id\" to use an existing workspace. If monitoring addon is enabled --no-wait argument will have no effect."},
		{VirtualNode, VirtualNodeKey, "Enable AKS Virtual Node. Requires --subnet-name to provide the name of an existing subnet for the Virtual Node to use."},
		{KubeDashboard, KubeDashboardKey, "Enable the Kubernetes dashboard on the cluster."},
		{AzurePolicy, AzurePolicyKey, "Enable Azure policy. The Azure Policy add-on for AKS enables at-scale enforcements and safeguards on your clusters in a centralized, consistent manner."},
		{IngressAppGateway, IngressAppGatewayKey, "Enable Application Gateway Ingress Controller addon."},
		{Confcom, ConfcomKey, "Enable confcom addon, this will enable SGX device plugin by default."},
		{OpenServiceMesh, OpenServiceMeshKey, "Enable Open Service Mesh addon."},
		{AzureKeyvaultSecretsProvider, AzureKeyvaultSecretsProviderKey, "Enable Azure Keyvault Secrets Provider addon."},
		{GitOps, GitOpsKey, "Enable GitOps (PREVIEW)."},
		{WebApplicationRouting, WebAppRoutingKey, "Enable Web Application Routing addon (PREVIEW). Specify \"--dns-zone-resource-id\" to configure DNS."},
	} {
		catalog[d.Name] = d
	}
}

// Lookup returns the catalog entry for a CLI add-on name.
func Lookup(name string) (Descriptor, bool) {
	d, ok := catalog[name]
	return d, ok
}

// Available returns the catalog sorted by name.
func Available() []Descriptor {
	out := make([]Descriptor, 0, len(catalog))
	for _, d := range catalog {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b Descriptor) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	return out
}

// CanonicalKey resolves the addonProfiles key for a CLI add-on name.
func CanonicalKey(name string) (string, error) {
	d, ok := catalog[name]
	if !ok {
		return "", &UnknownAddonError{Name: name}
	}
	if d.Key == VirtualNodeKey {
		return d.Key + VirtualNodeOSType, nil
	}
	return d.Key, nil
}
