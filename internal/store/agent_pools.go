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
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice/v6"
)

//go:generate mockgen -destination=../mocks/mock_agent_pools.go -package=mocks github.com/Azure/aks-cli-plugin-preview/internal/store AgentPoolLister,AgentPoolDescriber,AgentPoolScaler,AgentPoolDeleter,AgentPoolOperationAborter

type AgentPoolLister interface {
	AgentPools(ctx context.Context, resourceGroup, cluster string) ([]model.AgentPoolProfile, error)
}

type AgentPoolDescriber interface {
	AgentPool(ctx context.Context, resourceGroup, cluster, name string) (*model.AgentPoolProfile, error)
}

type AgentPoolScaler interface {
	BeginScaleAgentPool(ctx context.Context, resourceGroup, cluster, name string, count int32) (AgentPoolOperation, error)
}

type AgentPoolDeleter interface {
	BeginDeleteAgentPool(ctx context.Context, resourceGroup, cluster, name string) (Operation, error)
}

type AgentPoolOperationAborter interface {
	BeginAbortAgentPoolOperation(ctx context.Context, resourceGroup, cluster, name string) (Operation, error)
}

// AgentPools lists every node pool of the cluster.
func (s *Store) AgentPools(ctx context.Context, resourceGroup, cluster string) ([]model.AgentPoolProfile, error) {
	var out []model.AgentPoolProfile
	pager := s.agentPools.NewListPager(resourceGroup, cluster, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list node pools: %w", wrapError(err))
		}
		for _, p := range page.Value {
			if p != nil {
				out = append(out, agentPoolToModel(p))
			}
		}
	}
	return out, nil
}

func (s *Store) AgentPool(ctx context.Context, resourceGroup, cluster, name string) (*model.AgentPoolProfile, error) {
	resp, err := s.agentPools.Get(ctx, resourceGroup, cluster, name, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	p := agentPoolToModel(&resp.AgentPool)
	return &p, nil
}

// BeginScaleAgentPool reads the pool and writes it back with a new node count.
func (s *Store) BeginScaleAgentPool(ctx context.Context, resourceGroup, cluster, name string, count int32) (AgentPoolOperation, error) {
	resp, err := s.agentPools.Get(ctx, resourceGroup, cluster, name, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	pool := resp.AgentPool
	if pool.Properties == nil {
		pool.Properties = &armcontainerservice.ManagedClusterAgentPoolProfileProperties{}
	}
	pool.Properties.Count = to.Ptr(count)

	poller, err := s.agentPools.BeginCreateOrUpdate(ctx, resourceGroup, cluster, name, pool, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	return newPollerOperation(poller, s.pollFrequency, func(resp armcontainerservice.AgentPoolsClientCreateOrUpdateResponse) (*model.AgentPoolProfile, error) {
		p := agentPoolToModel(&resp.AgentPool)
		return &p, nil
	}), nil
}

func (s *Store) BeginDeleteAgentPool(ctx context.Context, resourceGroup, cluster, name string) (Operation, error) {
	poller, err := s.agentPools.BeginDelete(ctx, resourceGroup, cluster, name, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	return newEmptyOperation(poller, s.pollFrequency), nil
}

func (s *Store) BeginAbortAgentPoolOperation(ctx context.Context, resourceGroup, cluster, name string) (Operation, error) {
	poller, err := s.agentPools.BeginAbortLatestOperation(ctx, resourceGroup, cluster, name, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	return newEmptyOperation(poller, s.pollFrequency), nil
}
