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
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice/v6"
)

//go:generate mockgen -destination=../mocks/mock_managed_clusters.go -package=mocks github.com/Azure/aks-cli-plugin-preview/internal/store ManagedClusterDescriber,ManagedClusterUpdater,ClusterCertificateRotator,ClusterUpgradeLister,ClusterOperationAborter

type ManagedClusterDescriber interface {
	ManagedCluster(ctx context.Context, resourceGroup, name string) (*model.ManagedCluster, error)
}

type ManagedClusterUpdater interface {
	BeginUpdateManagedCluster(ctx context.Context, resourceGroup, name string, mc *model.ManagedCluster) (ClusterOperation, error)
}

type ClusterCertificateRotator interface {
	BeginRotateClusterCertificates(ctx context.Context, resourceGroup, name string) (Operation, error)
}

type ClusterUpgradeLister interface {
	ClusterUpgrades(ctx context.Context, resourceGroup, name string) ([]string, error)
}

type ClusterOperationAborter interface {
	BeginAbortClusterOperation(ctx context.Context, resourceGroup, name string) (Operation, error)
}

// ManagedCluster reads the cluster snapshot.
func (s *Store) ManagedCluster(ctx context.Context, resourceGroup, name string) (*model.ManagedCluster, error) {
	resp, err := s.managedClusters.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	mc, err := managedClusterToModel(&resp.ManagedCluster)
	if err != nil {
		return nil, err
	}
	if mc.ResourceGroup == "" {
		mc.ResourceGroup = resourceGroup
	}
	return mc, nil
}

// BeginUpdateManagedCluster sends the snapshot as a create-or-update request.
func (s *Store) BeginUpdateManagedCluster(ctx context.Context, resourceGroup, name string, mc *model.ManagedCluster) (ClusterOperation, error) {
	params, err := managedClusterFromModel(mc)
	if err != nil {
		return nil, err
	}
	log.Debugf("updating managed cluster %s/%s\n", resourceGroup, name)
	poller, err := s.managedClusters.BeginCreateOrUpdate(ctx, resourceGroup, name, params, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	return newPollerOperation(poller, s.pollFrequency, func(resp armcontainerservice.ManagedClustersClientCreateOrUpdateResponse) (*model.ManagedCluster, error) {
		out, err := managedClusterToModel(&resp.ManagedCluster)
		if err != nil {
			return nil, err
		}
		if out.ResourceGroup == "" {
			out.ResourceGroup = resourceGroup
		}
		return out, nil
	}), nil
}

func (s *Store) BeginRotateClusterCertificates(ctx context.Context, resourceGroup, name string) (Operation, error) {
	poller, err := s.managedClusters.BeginRotateClusterCertificates(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	return newEmptyOperation(poller, s.pollFrequency), nil
}

// BeginAbortClusterOperation aborts the operation currently running on the
// cluster. The aborted operation ends in the Canceled state.
func (s *Store) BeginAbortClusterOperation(ctx context.Context, resourceGroup, name string) (Operation, error) {
	log.Debugf("aborting the latest operation of managed cluster %s/%s\n", resourceGroup, name)
	poller, err := s.managedClusters.BeginAbortLatestOperation(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	return newEmptyOperation(poller, s.pollFrequency), nil
}

// ClusterUpgrades lists the Kubernetes versions the control plane can move to.
func (s *Store) ClusterUpgrades(ctx context.Context, resourceGroup, name string) ([]string, error) {
	resp, err := s.managedClusters.GetUpgradeProfile(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get upgrade profile: %w", wrapError(err))
	}
	props := resp.Properties
	if props == nil || props.ControlPlaneProfile == nil {
		return nil, nil
	}
	versions := make([]string, 0, len(props.ControlPlaneProfile.Upgrades))
	for _, u := range props.ControlPlaneProfile.Upgrades {
		if u != nil && u.KubernetesVersion != nil {
			versions = append(versions, *u.KubernetesVersion)
		}
	}
	return versions, nil
}
