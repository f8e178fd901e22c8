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

package usage

const (
	Subscription               = "Subscription ID to use. This option overrides the settings in the configuration file or environment variable."
	ResourceGroup              = "Name of the resource group of the cluster."
	Name                       = "Name of the managed cluster."
	ClusterName                = "Name of the managed cluster that owns the node pool."
	NodePoolNameArg            = "Name of the node pool."
	Addons                     = "Comma-separated list of add-ons. Run 'aks addon list-available' for the supported add-ons."
	Addon                      = "Name of the add-on. Run 'aks addon list-available' for the supported add-ons."
	WorkspaceResourceID        = "Resource ID of an existing Log Analytics workspace to store monitoring data. When omitted, a default workspace is created in the region of the cluster resource group."
	EnableMSIAuthForMonitoring = "Flag that indicates whether to send monitoring data to Log Analytics with the add-on managed identity. Requires a cluster that uses managed identity."
	SubnetName                 = "Name of an existing subnet in the cluster virtual network to use for virtual nodes."
	AppGatewayName             = "Name of the application gateway to create or use in the node resource group."
	AppGatewaySubnetPrefix     = "Subnet prefix to use for a new subnet created to deploy the application gateway. Deprecated, use --appgw-subnet-cidr."
	AppGatewaySubnetCIDR       = "Subnet CIDR to use for a new subnet created to deploy the application gateway."
	AppGatewayID               = "Resource ID of an existing application gateway to use with AGIC."
	AppGatewaySubnetID         = "Resource ID of an existing subnet used to deploy the application gateway."
	AppGatewayWatchNamespace   = "Comma-separated namespaces that AGIC should watch. Watches all namespaces when omitted."
	EnableSGXQuoteHelper       = "Flag that enables the SGX quote helper for the confcom add-on."
	EnableSecretRotation       = "Flag that enables secret rotation for the azure-keyvault-secrets-provider add-on."
	DisableSecretRotation      = "Flag that disables secret rotation for the azure-keyvault-secrets-provider add-on."
	RotationPollInterval       = "Interval between secret rotation polls, for example 2m. Used with --enable-secret-rotation."
	DNSZoneResourceID          = "Resource ID of the DNS zone to use with web_application_routing."
	NoWait                     = "Flag that indicates whether to return without waiting for the long-running operation to finish."
	Force                      = "Flag that indicates whether to skip the confirmation prompt."
	NodeCount                  = "Number of nodes in the node pool."
	NodePoolName               = "Name of the node pool to scale. Required when the cluster has more than one node pool."
	KubernetesVersion          = "Version of Kubernetes to upgrade the cluster to, for example 1.29.2."
	ControlPlaneOnly           = "Flag that indicates whether to upgrade only the control plane, leaving the node pools on their current version."
	Location                   = "Location of the trusted access roles, for example eastus."
	RoleBindingName            = "Name of the trusted access role binding."
	SourceResourceID           = "Resource ID of the Azure resource granted access to the cluster."
	Roles                      = "Comma-separated list of trusted access roles, for example Microsoft.MachineLearningServices/workspaces/reader."
	Output                     = "Output format. Valid values are json, yaml or table."
	Query                      = "JSONPath query to apply to the output, for example $.addonProfiles."
	Debug                      = "Debug log level."
	LogLevel                   = "Log level. Valid values are debug, info, warning or error."
)
