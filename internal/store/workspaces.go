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

	"github.com/Azure/aks-cli-plugin-preview/internal/log"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/operationalinsights/armoperationalinsights/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

//go:generate mockgen -destination=../mocks/mock_workspaces.go -package=mocks github.com/Azure/aks-cli-plugin-preview/internal/store ResourceGroupDescriber,ResourceGroupEnsurer,WorkspaceEnsurer

type ResourceGroupDescriber interface {
	ResourceGroupLocation(ctx context.Context, name string) (string, error)
}

type ResourceGroupEnsurer interface {
	EnsureResourceGroup(ctx context.Context, name, location string) error
}

type WorkspaceEnsurer interface {
	EnsureWorkspace(ctx context.Context, resourceGroup, name, location string) (string, error)
}

func (s *Store) ResourceGroupLocation(ctx context.Context, name string) (string, error) {
	resp, err := s.resourceGroups.Get(ctx, name, nil)
	if err != nil {
		return "", wrapError(err)
	}
	return str(resp.Location), nil
}

// EnsureResourceGroup creates the resource group when it doesn't exist.
func (s *Store) EnsureResourceGroup(ctx context.Context, name, location string) error {
	exists, err := s.resourceGroups.CheckExistence(ctx, name, nil)
	if err != nil {
		return wrapError(err)
	}
	if exists.Success {
		return nil
	}
	log.Infof("creating resource group %s in %s\n", name, location)
	_, err = s.resourceGroups.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(location),
	}, nil)
	return wrapError(err)
}

// EnsureWorkspace returns the id of the Log Analytics workspace, creating it
// on the PerGB2018 tier when it doesn't exist.
func (s *Store) EnsureWorkspace(ctx context.Context, resourceGroup, name, location string) (string, error) {
	resp, err := s.workspaces.Get(ctx, resourceGroup, name, nil)
	if err == nil {
		return str(resp.ID), nil
	}
	if err = wrapError(err); !IsNotFound(err) {
		return "", err
	}

	log.Infof("creating Log Analytics workspace %s in %s\n", name, location)
	poller, err := s.workspaces.BeginCreateOrUpdate(ctx, resourceGroup, name, armoperationalinsights.Workspace{
		Location: to.Ptr(location),
		Properties: &armoperationalinsights.WorkspaceProperties{
			SKU: &armoperationalinsights.WorkspaceSKU{
				Name: to.Ptr(armoperationalinsights.WorkspaceSKUNameEnumPerGB2018),
			},
		},
	}, nil)
	if err != nil {
		return "", wrapError(err)
	}
	created, err := newPollerOperation(poller, s.pollFrequency, func(r armoperationalinsights.WorkspacesClientCreateOrUpdateResponse) (string, error) {
		return str(r.ID), nil
	}).Wait(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create workspace %s: %w", name, err)
	}
	return created, nil
}
