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

package addon

import (
	"context"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/addons"
	"github.com/Azure/aks-cli-plugin-preview/internal/aks/cluster"
	"github.com/Azure/aks-cli-plugin-preview/internal/aks/monitoring"
	"github.com/Azure/aks-cli-plugin-preview/internal/aks/submit"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
)

// Manager applies add-on changes to a managed cluster.
type Manager interface {
	Enable(ctx context.Context, resourceGroup, name string, req addons.Request, noWait bool) (*submit.Submission, error)
	Disable(ctx context.Context, resourceGroup, name, addonList string, noWait bool) (*submit.Submission, error)
	Update(ctx context.Context, resourceGroup, name string, req addons.Request, noWait bool) (*submit.Submission, error)
}

// NewManager wires the add-on manager to the Azure store.
func NewManager(s *store.Store) *cluster.AddonManager {
	workspaces := monitoring.NewDefaultWorkspaceResolver(s, s.SubscriptionID(), s.CloudName())
	return cluster.NewAddonManager(s, workspaces, nil, s.CloudName() == store.AzureCloud)
}

func validateAddonName(name string) error {
	if _, ok := addons.Lookup(name); !ok {
		return &addons.UnknownAddonError{Name: name}
	}
	return nil
}
