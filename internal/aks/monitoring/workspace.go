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

package monitoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/aks-cli-plugin-preview/internal/log"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
)

type Region struct {
	WorkspaceLocation string
	Code              string
}

// Log Analytics is not available in every region. Clusters elsewhere get
// their default workspace in the fallback region of their cloud.
var (
	publicRegions = map[string]Region{
		"australiacentral":   {"australiacentral", "CAU"},
		"australiaeast":      {"australiaeast", "EAU"},
		"australiasoutheast": {"australiasoutheast", "SEAU"},
		"brazilsouth":        {"brazilsouth", "CQ"},
		"canadacentral":      {"canadacentral", "CCA"},
		"centralindia":       {"centralindia", "CIN"},
		"centralus":          {"centralus", "CUS"},
		"eastasia":           {"eastasia", "EA"},
		"eastus":             {"eastus", "EUS"},
		"eastus2":            {"eastus2", "EUS2"},
		"francecentral":      {"francecentral", "PAR"},
		"germanywestcentral": {"germanywestcentral", "DEWC"},
		"japaneast":          {"japaneast", "EJP"},
		"koreacentral":       {"koreacentral", "SE"},
		"northcentralus":     {"northcentralus", "NCUS"},
		"northeurope":        {"northeurope", "NEU"},
		"norwayeast":         {"norwayeast", "NOE"},
		"southcentralus":     {"southcentralus", "SCUS"},
		"southeastasia":      {"southeastasia", "SEA"},
		"swedencentral":      {"swedencentral", "SEC"},
		"switzerlandnorth":   {"switzerlandnorth", "CHN"},
		"uaenorth":           {"uaenorth", "DXB"},
		"uksouth":            {"uksouth", "SUK"},
		"westcentralus":      {"westcentralus", "WCUS"},
		"westeurope":         {"westeurope", "WEU"},
		"westus":             {"westus", "WUS"},
		"westus2":            {"westus2", "WUS2"},
		"westus3":            {"westus3", "USW3"},
	}
	chinaRegions = map[string]Region{
		"chinaeast":   {"chinaeast2", "EAST2"},
		"chinaeast2":  {"chinaeast2", "EAST2"},
		"chinanorth":  {"chinaeast2", "EAST2"},
		"chinanorth2": {"chinaeast2", "EAST2"},
	}
	governmentRegions = map[string]Region{
		"usgovvirginia": {"usgovvirginia", "USGV"},
		"usgovarizona":  {"usgovarizona", "PHX"},
	}
)

// DefaultWorkspaceResolver finds, or creates, the per-region default Log
// Analytics workspace of a subscription.
type DefaultWorkspaceResolver struct {
	subscriptionID string
	cloudName      string
	groups         store.ResourceGroupDescriber
	ensureGroup    store.ResourceGroupEnsurer
	workspaces     store.WorkspaceEnsurer
}

type Store interface {
	store.ResourceGroupDescriber
	store.ResourceGroupEnsurer
	store.WorkspaceEnsurer
}

func NewDefaultWorkspaceResolver(s Store, subscriptionID, cloudName string) *DefaultWorkspaceResolver {
	return &DefaultWorkspaceResolver{
		subscriptionID: subscriptionID,
		cloudName:      cloudName,
		groups:         s,
		ensureGroup:    s,
		workspaces:     s,
	}
}

// DefaultWorkspaceID returns the id of the default workspace for the region
// of resourceGroup.
func (r *DefaultWorkspaceResolver) DefaultWorkspaceID(ctx context.Context, resourceGroup string) (string, error) {
	location, err := r.groups.ResourceGroupLocation(ctx, resourceGroup)
	if err != nil {
		return "", fmt.Errorf("failed to read resource group %s: %w", resourceGroup, err)
	}

	reg := RegionFor(r.cloudName, location)
	groupName := "DefaultResourceGroup-" + reg.Code
	workspaceName := fmt.Sprintf("DefaultWorkspace-%s-%s", r.subscriptionID, reg.Code)
	log.Debugf("using default workspace %s in %s\n", workspaceName, reg.WorkspaceLocation)

	if err := r.ensureGroup.EnsureResourceGroup(ctx, groupName, reg.WorkspaceLocation); err != nil {
		return "", fmt.Errorf("failed to ensure resource group %s: %w", groupName, err)
	}
	return r.workspaces.EnsureWorkspace(ctx, groupName, workspaceName, reg.WorkspaceLocation)
}

// RegionFor maps a cluster location to the workspace location and region
// code used to name the default workspace.
func RegionFor(cloudName, location string) Region {
	location = strings.ToLower(strings.ReplaceAll(location, " ", ""))
	switch strings.ToLower(cloudName) {
	case strings.ToLower(store.AzureChinaCloud):
		return lookup(chinaRegions, location, Region{"chinaeast2", "EAST2"})
	case strings.ToLower(store.AzureUSGovernment):
		return lookup(governmentRegions, location, Region{"usgovvirginia", "USGV"})
	}
	return lookup(publicRegions, location, Region{"eastus", "EUS"})
}

func lookup(regions map[string]Region, location string, fallback Region) Region {
	if r, ok := regions[location]; ok {
		return r
	}
	return fallback
}
