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

package flag

const (
	Subscription               = "subscription"                   // Subscription flag to override the configured subscription
	ResourceGroup              = "resource-group"                 // ResourceGroup flag
	ResourceGroupShort         = "g"                              // ResourceGroupShort flag
	Name                       = "name"                           // Name flag
	NameShort                  = "n"                              // NameShort flag
	ClusterName                = "cluster-name"                   // ClusterName flag
	Addons                     = "addons"                         // Addons flag
	AddonsShort                = "a"                              // AddonsShort flag
	Addon                      = "addon"                          // Addon flag
	WorkspaceResourceID        = "workspace-resource-id"          // WorkspaceResourceID flag
	EnableMSIAuthForMonitoring = "enable-msi-auth-for-monitoring" // EnableMSIAuthForMonitoring flag
	SubnetName                 = "subnet-name"                    // SubnetName flag
	SubnetNameShort            = "s"                              // SubnetNameShort flag
	AppGatewayName             = "appgw-name"                     // AppGatewayName flag
	AppGatewaySubnetPrefix     = "appgw-subnet-prefix"            // AppGatewaySubnetPrefix flag
	AppGatewaySubnetCIDR       = "appgw-subnet-cidr"              // AppGatewaySubnetCIDR flag
	AppGatewayID               = "appgw-id"                       // AppGatewayID flag
	AppGatewaySubnetID         = "appgw-subnet-id"                // AppGatewaySubnetID flag
	AppGatewayWatchNamespace   = "appgw-watch-namespace"          // AppGatewayWatchNamespace flag
	EnableSGXQuoteHelper       = "enable-sgxquotehelper"          // EnableSGXQuoteHelper flag
	EnableSecretRotation       = "enable-secret-rotation"         // EnableSecretRotation flag
	DisableSecretRotation      = "disable-secret-rotation"        // DisableSecretRotation flag
	RotationPollInterval       = "rotation-poll-interval"         // RotationPollInterval flag
	DNSZoneResourceID          = "dns-zone-resource-id"           // DNSZoneResourceID flag
	NoWait                     = "no-wait"                        // NoWait flag
	Yes                        = "yes"                            // Yes flag
	YesShort                   = "y"                              // YesShort flag
	NodeCount                  = "node-count"                     // NodeCount flag
	NodeCountShort             = "c"                              // NodeCountShort flag
	NodePoolName               = "nodepool-name"                  // NodePoolName flag
	KubernetesVersion          = "kubernetes-version"             // KubernetesVersion flag
	KubernetesVersionShort     = "k"                              // KubernetesVersionShort flag
	ControlPlaneOnly           = "control-plane-only"             // ControlPlaneOnly flag
	Location                   = "location"                       // Location flag
	LocationShort              = "l"                              // LocationShort flag
	SourceResourceID           = "source-resource-id"             // SourceResourceID flag
	Roles                      = "roles"                          // Roles flag
	Output                     = "output"                         // Output flag
	OutputShort                = "o"                              // OutputShort flag
	Query                      = "query"                          // Query flag
	Debug                      = "debug"                          // Debug flag
	DebugShort                 = "D"                              // DebugShort flag
	LogLevel                   = "log-level"                      // LogLevel flag
)
