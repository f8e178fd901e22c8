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

package cluster

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/addons"
	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Azure/aks-cli-plugin-preview/internal/aks/roleassignment"
	"github.com/Azure/aks-cli-plugin-preview/internal/aks/submit"
	"github.com/Azure/aks-cli-plugin-preview/internal/log"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
)

var ErrMSIAuthWithServicePrincipal = errors.New("--enable-msi-auth-for-monitoring can not be used on clusters with service principal auth")

// AddonStore is the remote surface the add-on commands need.
type AddonStore interface {
	store.ManagedClusterDescriber
	store.ManagedClusterUpdater
	store.RoleAssignmentCreator
	store.RoleAssignmentDeleter
	store.SubnetDescriber
	store.ApplicationGatewayDescriber
}

// AddonManager loads a cluster, reconciles its add-ons and submits the
// result, handling the role assignments some add-ons depend on.
type AddonManager struct {
	clusters    store.ManagedClusterDescriber
	subnets     store.SubnetDescriber
	gateways    store.ApplicationGatewayDescriber
	reconciler  *addons.Reconciler
	submitter   *submit.Submitter
	waiter      *roleassignment.Waiter
	publicCloud bool
}

func NewAddonManager(s AddonStore, workspaces addons.WorkspaceResolver, waiter *roleassignment.Waiter, publicCloud bool) *AddonManager {
	if waiter == nil {
		waiter = roleassignment.NewWaiter(s, s)
	}
	return &AddonManager{
		clusters:    s,
		subnets:     s,
		gateways:    s,
		reconciler:  addons.NewReconciler(workspaces),
		submitter:   submit.NewSubmitter(s),
		waiter:      waiter,
		publicCloud: publicCloud,
	}
}

// Cluster reads the current snapshot.
func (m *AddonManager) Cluster(ctx context.Context, resourceGroup, name string) (*model.ManagedCluster, error) {
	return m.clusters.ManagedCluster(ctx, resourceGroup, name)
}

// Enable turns on the requested add-ons. When monitoring, ingress-appgw or
// virtual-node ends up on, the update is awaited so their identities can be
// granted roles.
func (m *AddonManager) Enable(ctx context.Context, resourceGroup, name string, req addons.Request, noWait bool) (*submit.Submission, error) {
	req.Enable = true
	names, err := addons.ParseAddons(req.Addons)
	if err != nil {
		return nil, err
	}

	current, err := m.clusters.ManagedCluster(ctx, resourceGroup, name)
	if err != nil {
		return nil, err
	}
	// Reconcile clears the service principal profile, read it first.
	msiAuth := current.UsesManagedIdentity()

	if err := m.checkReferences(ctx, *current, names, req.Options); err != nil {
		return nil, err
	}

	updated, err := m.reconciler.Reconcile(ctx, *current, req)
	if err != nil {
		return nil, err
	}

	monitoring, monitoringOn := updated.Addon(addons.MonitoringKey)
	monitoringOn = monitoringOn && monitoring.Enabled
	if monitoringOn && monitoring.Config[addons.MonitoringUseAADAuth] == "true" && !msiAuth {
		return nil, ErrMSIAuthWithServicePrincipal
	}

	virtualNodeKey, _ := addons.CanonicalKey(addons.VirtualNode)
	_, virtualNode := updated.Addon(virtualNodeKey)
	needRoles := monitoringOn || updated.AddonEnabled(addons.IngressAppGatewayKey) || virtualNode

	sub, err := m.submitter.Submit(ctx, submit.Request{
		ResourceGroup: resourceGroup,
		Name:          name,
		Cluster:       &updated,
		NoWait:        noWait,
		NeedResult:    needRoles,
	})
	if err != nil {
		return nil, err
	}
	if needRoles {
		m.waiter.CreateAll(ctx, roleassignment.PostCreationRequests(*sub.Cluster, m.publicCloud))
	}
	return sub, nil
}

// Disable turns off the requested add-ons. Once the request reconciles,
// disabling monitoring removes the metrics publisher role of its identity and
// aborts before submitting when that doesn't propagate.
func (m *AddonManager) Disable(ctx context.Context, resourceGroup, name, addonList string, noWait bool) (*submit.Submission, error) {
	names, err := addons.ParseAddons(addonList)
	if err != nil {
		return nil, err
	}
	current, err := m.clusters.ManagedCluster(ctx, resourceGroup, name)
	if err != nil {
		return nil, err
	}

	updated, err := m.reconciler.Reconcile(ctx, *current, addons.Request{Addons: addonList})
	if err != nil {
		return nil, err
	}

	if slices.Contains(names, addons.Monitoring) && current.AddonEnabled(addons.MonitoringKey) && m.publicCloud {
		if req, ok := roleassignment.MonitoringRequest(*current); ok {
			if err := m.waiter.WaitForDeletion(ctx, req); err != nil {
				return nil, fmt.Errorf("could not delete the monitoring role assignment, are you an Owner on this subscription? %w", err)
			}
		}
	}
	return m.submitter.Submit(ctx, submit.Request{
		ResourceGroup: resourceGroup,
		Name:          name,
		Cluster:       &updated,
		NoWait:        noWait,
	})
}

// Update rewrites the configuration of an add-on that is already enabled.
func (m *AddonManager) Update(ctx context.Context, resourceGroup, name string, req addons.Request, noWait bool) (*submit.Submission, error) {
	names, err := addons.ParseAddons(req.Addons)
	if err != nil {
		return nil, err
	}
	current, err := m.clusters.ManagedCluster(ctx, resourceGroup, name)
	if err != nil {
		return nil, err
	}
	for _, n := range names {
		if err := addons.EnsureEnabled(*current, n); err != nil {
			return nil, err
		}
	}
	req.SkipEnabledCheck = true
	return m.Enable(ctx, resourceGroup, name, req, noWait)
}

// checkReferences verifies that the remote resources named by the options
// exist before anything is submitted.
func (m *AddonManager) checkReferences(ctx context.Context, mc model.ManagedCluster, names []string, opts addons.Options) error {
	if slices.Contains(names, addons.IngressAppGateway) && opts.AppGatewayID != "" {
		if _, err := m.gateways.ApplicationGateway(ctx, opts.AppGatewayID); err != nil {
			return fmt.Errorf("application gateway %s: %w", opts.AppGatewayID, err)
		}
	}
	if slices.Contains(names, addons.IngressAppGateway) && opts.AppGatewaySubnetID != "" {
		if _, err := m.subnets.Subnet(ctx, opts.AppGatewaySubnetID); err != nil {
			return fmt.Errorf("application gateway subnet %s: %w", opts.AppGatewaySubnetID, err)
		}
	}
	if slices.Contains(names, addons.VirtualNode) && opts.SubnetName != "" && len(mc.AgentPoolProfiles) > 0 {
		vnet := roleassignment.VirtualNetworkID(mc.AgentPoolProfiles[0].VnetSubnetID)
		if vnet == "" {
			log.Debugln("cluster uses the managed virtual network, skipping the virtual node subnet check")
			return nil
		}
		subnetID := vnet + "/subnets/" + opts.SubnetName
		if _, err := m.subnets.Subnet(ctx, subnetID); err != nil {
			return fmt.Errorf("virtual node subnet %s: %w", opts.SubnetName, err)
		}
	}
	return nil
}
