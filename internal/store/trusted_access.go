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
	"context"
	"fmt"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Azure/aks-cli-plugin-preview/internal/log"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice/v6"
)

//go:generate mockgen -destination=../mocks/mock_trusted_access.go -package=mocks github.com/Azure/aks-cli-plugin-preview/internal/store TrustedAccessRoleLister,TrustedAccessRoleBindingLister,TrustedAccessRoleBindingDescriber,TrustedAccessRoleBindingUpdater,TrustedAccessRoleBindingDeleter

type TrustedAccessRoleLister interface {
	TrustedAccessRoles(ctx context.Context, location string) ([]model.TrustedAccessRole, error)
}

type TrustedAccessRoleBindingLister interface {
	TrustedAccessRoleBindings(ctx context.Context, resourceGroup, cluster string) ([]model.TrustedAccessRoleBinding, error)
}

type TrustedAccessRoleBindingDescriber interface {
	TrustedAccessRoleBinding(ctx context.Context, resourceGroup, cluster, name string) (*model.TrustedAccessRoleBinding, error)
}

type TrustedAccessRoleBindingUpdater interface {
	BeginCreateOrUpdateTrustedAccessRoleBinding(ctx context.Context, resourceGroup, cluster string, binding *model.TrustedAccessRoleBinding) (TrustedAccessRoleBindingOperation, error)
}

type TrustedAccessRoleBindingDeleter interface {
	BeginDeleteTrustedAccessRoleBinding(ctx context.Context, resourceGroup, cluster, name string) (Operation, error)
}

// TrustedAccessRoles lists the roles source resources can be bound to in a region.
func (s *Store) TrustedAccessRoles(ctx context.Context, location string) ([]model.TrustedAccessRole, error) {
	var out []model.TrustedAccessRole
	pager := s.trustedAccessRoles.NewListPager(location, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list trusted access roles: %w", wrapError(err))
		}
		for _, r := range page.Value {
			if r != nil {
				out = append(out, trustedAccessRoleToModel(r))
			}
		}
	}
	return out, nil
}

func (s *Store) TrustedAccessRoleBindings(ctx context.Context, resourceGroup, cluster string) ([]model.TrustedAccessRoleBinding, error) {
	var out []model.TrustedAccessRoleBinding
	pager := s.trustedAccessRoleBindings.NewListPager(resourceGroup, cluster, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list trusted access role bindings: %w", wrapError(err))
		}
		for _, b := range page.Value {
			if b != nil {
				out = append(out, trustedAccessRoleBindingToModel(b))
			}
		}
	}
	return out, nil
}

func (s *Store) TrustedAccessRoleBinding(ctx context.Context, resourceGroup, cluster, name string) (*model.TrustedAccessRoleBinding, error) {
	resp, err := s.trustedAccessRoleBindings.Get(ctx, resourceGroup, cluster, name, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	b := trustedAccessRoleBindingToModel(&resp.TrustedAccessRoleBinding)
	return &b, nil
}

// BeginCreateOrUpdateTrustedAccessRoleBinding writes the binding under binding.Name.
func (s *Store) BeginCreateOrUpdateTrustedAccessRoleBinding(ctx context.Context, resourceGroup, cluster string, binding *model.TrustedAccessRoleBinding) (TrustedAccessRoleBindingOperation, error) {
	log.Debugf("writing trusted access role binding %s of %s/%s\n", binding.Name, resourceGroup, cluster)
	params := armcontainerservice.TrustedAccessRoleBinding{
		Properties: &armcontainerservice.TrustedAccessRoleBindingProperties{
			SourceResourceID: to.Ptr(binding.SourceResourceID),
			Roles:            to.SliceOfPtrs(binding.Roles...),
		},
	}
	poller, err := s.trustedAccessRoleBindings.BeginCreateOrUpdate(ctx, resourceGroup, cluster, binding.Name, params, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	return newPollerOperation(poller, s.pollFrequency, func(resp armcontainerservice.TrustedAccessRoleBindingsClientCreateOrUpdateResponse) (*model.TrustedAccessRoleBinding, error) {
		b := trustedAccessRoleBindingToModel(&resp.TrustedAccessRoleBinding)
		return &b, nil
	}), nil
}

func (s *Store) BeginDeleteTrustedAccessRoleBinding(ctx context.Context, resourceGroup, cluster, name string) (Operation, error) {
	poller, err := s.trustedAccessRoleBindings.BeginDelete(ctx, resourceGroup, cluster, name, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	return newEmptyOperation(poller, s.pollFrequency), nil
}

func trustedAccessRoleBindingToModel(b *armcontainerservice.TrustedAccessRoleBinding) model.TrustedAccessRoleBinding {
	out := model.TrustedAccessRoleBinding{
		ID:   str(b.ID),
		Name: str(b.Name),
	}
	if p := b.Properties; p != nil {
		out.SourceResourceID = str(p.SourceResourceID)
		out.Roles = strs(p.Roles)
		if p.ProvisioningState != nil {
			out.ProvisioningState = string(*p.ProvisioningState)
		}
	}
	return out
}

func trustedAccessRoleToModel(r *armcontainerservice.TrustedAccessRole) model.TrustedAccessRole {
	out := model.TrustedAccessRole{
		SourceResourceType: str(r.SourceResourceType),
		Name:               str(r.Name),
	}
	for _, rule := range r.Rules {
		if rule == nil {
			continue
		}
		out.Rules = append(out.Rules, model.TrustedAccessRoleRule{
			Verbs:           strs(rule.Verbs),
			APIGroups:       strs(rule.APIGroups),
			Resources:       strs(rule.Resources),
			ResourceNames:   strs(rule.ResourceNames),
			NonResourceURLs: strs(rule.NonResourceURLs),
		})
	}
	return out
}
