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
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
)

//go:generate mockgen -destination=../../mocks/mock_workspace_resolver.go -package=mocks github.com/Azure/aks-cli-plugin-preview/internal/aks/addons WorkspaceResolver

// WorkspaceResolver returns the resource id of the Log Analytics workspace
// monitoring should use when none was given, creating it if needed.
type WorkspaceResolver interface {
	DefaultWorkspaceID(ctx context.Context, resourceGroup string) (string, error)
}

// Options carries the per add-on settings accepted by enable and update.
// Empty strings mean "not set".
type Options struct {
	WorkspaceResourceID        string
	EnableMSIAuthForMonitoring bool
	SubnetName                 string
	AppGatewayName             string
	AppGatewaySubnetPrefix     string
	AppGatewaySubnetCIDR       string
	AppGatewayID               string
	AppGatewaySubnetID         string
	AppGatewayWatchNamespace   string
	EnableSGXQuoteHelper       bool
	EnableSecretRotation       bool
	DisableSecretRotation      bool
	RotationPollInterval       string
	DNSZoneResourceID          string
}

type Request struct {
	// Addons is a comma-separated list of CLI add-on names.
	Addons string
	Enable bool
	// SkipEnabledCheck lets enable rewrite the configuration of an add-on that
	// is already enabled. Used by "addon update".
	SkipEnabledCheck bool
	Options          Options
}

type Reconciler struct {
	workspaces WorkspaceResolver
}

func NewReconciler(workspaces WorkspaceResolver) *Reconciler {
	return &Reconciler{workspaces: workspaces}
}

// Reconcile returns a copy of current whose add-on profiles match the
// requested enabled or disabled state. current is never modified.
func (r *Reconciler) Reconcile(ctx context.Context, current model.ManagedCluster, req Request) (model.ManagedCluster, error) {
	names, err := ParseAddons(req.Addons)
	if err != nil {
		return model.ManagedCluster{}, err
	}

	out := current.Clone()
	if out.AddonProfiles == nil {
		out.AddonProfiles = map[string]model.AddonProfile{}
	}

	for _, name := range names {
		if name == WebApplicationRouting {
			setWebAppRouting(&out, req.Enable, req.Options.DNSZoneResourceID)
			continue
		}

		key, err := CanonicalKey(name)
		if err != nil {
			return model.ManagedCluster{}, err
		}
		coalesceKey(out.AddonProfiles, key)

		if req.Enable {
			err = r.enable(ctx, &out, name, key, req)
		} else {
			err = disable(&out, key)
		}
		if err != nil {
			return model.ManagedCluster{}, err
		}
	}

	// ARM rejects the update when the service principal profile read back
	// from GET is sent again unchanged.
	out.ServicePrincipalProfile = nil

	return out, nil
}

// ParseAddons splits a comma-separated add-on list and checks every name
// against the catalog.
func ParseAddons(addons string) ([]string, error) {
	if strings.TrimSpace(addons) == "" {
		return nil, &MissingRequiredOptionError{Option: "--addons"}
	}
	names := strings.Split(addons, ",")
	for i, name := range names {
		name = strings.TrimSpace(name)
		if _, ok := Lookup(name); !ok {
			return nil, &UnknownAddonError{Name: name}
		}
		names[i] = name
	}
	return names, nil
}

func (r *Reconciler) enable(ctx context.Context, mc *model.ManagedCluster, name, key string, req Request) error {
	profile, ok := mc.AddonProfiles[key]
	if !ok {
		profile = model.AddonProfile{Enabled: false}
	}
	if profile.Enabled && !req.SkipEnabledCheck {
		return &AddonAlreadyEnabledError{Name: name, ResourceGroup: mc.ResourceGroup, Cluster: mc.Name}
	}

	opts := req.Options
	switch key {
	case MonitoringKey:
		workspaceID := opts.WorkspaceResourceID
		if workspaceID == "" {
			if r.workspaces == nil {
				return &MissingRequiredOptionError{Addon: name, Option: "--workspace-resource-id"}
			}
			var err error
			workspaceID, err = r.workspaces.DefaultWorkspaceID(ctx, mc.ResourceGroup)
			if err != nil {
				return fmt.Errorf("failed to resolve the default Log Analytics workspace: %w", err)
			}
		}
		profile.Config = map[string]string{
			MonitoringWorkspaceResourceID: SanitizeWorkspaceResourceID(workspaceID),
			MonitoringUseAADAuth:          strconv.FormatBool(opts.EnableMSIAuthForMonitoring),
		}
	case VirtualNodeKey + VirtualNodeOSType:
		if opts.SubnetName == "" {
			return &MissingRequiredOptionError{Addon: name, Option: "--subnet-name"}
		}
		profile.Config = map[string]string{VirtualNodeSubnetName: opts.SubnetName}
	case IngressAppGatewayKey:
		profile = model.AddonProfile{Config: appGatewayConfig(opts)}
	case OpenServiceMeshKey:
		profile = model.AddonProfile{Config: map[string]string{}}
	case ConfcomKey:
		profile = model.AddonProfile{Config: map[string]string{
			SGXQuoteHelperEnabled: strconv.FormatBool(opts.EnableSGXQuoteHelper),
		}}
	case AzureKeyvaultSecretsProviderKey:
		profile = model.AddonProfile{Config: secretsProviderConfig(opts)}
	}

	profile.Enabled = true
	mc.AddonProfiles[key] = profile
	return nil
}

func disable(mc *model.ManagedCluster, key string) error {
	profile, ok := mc.AddonProfiles[key]
	if !ok {
		// kube-dashboard is disabled implicitly for older clusters that never
		// reported the profile.
		if key != KubeDashboardKey {
			return &AddonNotInstalledError{Key: key}
		}
		profile = model.AddonProfile{}
	}
	profile.Config = nil
	profile.Enabled = false
	mc.AddonProfiles[key] = profile
	return nil
}

func appGatewayConfig(opts Options) map[string]string {
	config := map[string]string{}
	if opts.AppGatewayName != "" {
		config[AppGatewayName] = opts.AppGatewayName
	}
	if opts.AppGatewaySubnetPrefix != "" {
		config[AppGatewaySubnetCIDR] = opts.AppGatewaySubnetPrefix
	}
	if opts.AppGatewaySubnetCIDR != "" {
		config[AppGatewaySubnetCIDR] = opts.AppGatewaySubnetCIDR
	}
	if opts.AppGatewayID != "" {
		config[AppGatewayID] = opts.AppGatewayID
	}
	if opts.AppGatewaySubnetID != "" {
		config[AppGatewaySubnetID] = opts.AppGatewaySubnetID
	}
	if opts.AppGatewayWatchNamespace != "" {
		config[AppGatewayWatchNamespace] = opts.AppGatewayWatchNamespace
	}
	return config
}

func secretsProviderConfig(opts Options) map[string]string {
	config := map[string]string{
		SecretRotationEnabled: "false",
		RotationPollInterval:  DefaultRotationPollInterval,
	}
	if opts.EnableSecretRotation {
		config[SecretRotationEnabled] = "true"
	}
	if opts.DisableSecretRotation {
		config[SecretRotationEnabled] = "false"
	}
	if opts.RotationPollInterval != "" {
		config[RotationPollInterval] = opts.RotationPollInterval
	}
	return config
}

func setWebAppRouting(mc *model.ManagedCluster, enable bool, dnsZoneResourceID string) {
	if mc.IngressProfile == nil {
		mc.IngressProfile = &model.IngressProfile{}
	}
	if mc.IngressProfile.WebAppRouting == nil {
		mc.IngressProfile.WebAppRouting = &model.WebAppRouting{}
	}
	mc.IngressProfile.WebAppRouting.Enabled = enable
	if dnsZoneResourceID != "" {
		mc.IngressProfile.WebAppRouting.DNSZoneResourceIDs = []string{dnsZoneResourceID}
	}
}

// coalesceKey moves profiles stored under a differently cased spelling of key
// onto key itself.
func coalesceKey(profiles map[string]model.AddonProfile, key string) {
	existing := make([]string, 0, len(profiles))
	for k := range profiles {
		existing = append(existing, k)
	}
	slices.Sort(existing)
	for _, k := range existing {
		if k == key || !strings.EqualFold(k, key) {
			continue
		}
		if _, ok := profiles[key]; !ok {
			profiles[key] = profiles[k]
		}
		delete(profiles, k)
	}
}

// SanitizeWorkspaceResourceID trims whitespace, ensures a leading slash and
// drops trailing slashes.
func SanitizeWorkspaceResourceID(id string) string {
	id = strings.TrimSpace(id)
	if !strings.HasPrefix(id, "/") {
		id = "/" + id
	}
	return strings.TrimRight(id, "/")
}
