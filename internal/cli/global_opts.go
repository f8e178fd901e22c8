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

package cli

import (
	"context"
	"fmt"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/Azure/aks-cli-plugin-preview/internal/validate"
)

// GlobalOpts are the options every command accepts.
type GlobalOpts struct {
	Subscription string
}

// StoreOptions returns the store options implied by the command line.
func (opts *GlobalOpts) StoreOptions() []store.Option {
	if opts.Subscription == "" {
		return nil
	}
	return []store.Option{store.WithSubscription(opts.Subscription)}
}

func (opts *GlobalOpts) ValidateSubscription() error {
	if opts.Subscription == "" {
		return nil
	}
	return validate.SubscriptionID(opts.Subscription)
}

// PreRunE runs the given functions in order, stopping at the first error.
func (*GlobalOpts) PreRunE(fns ...func() error) error {
	for _, fn := range fns {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

// ClusterOpts identify the managed cluster a command targets.
type ClusterOpts struct {
	ResourceGroup string
	Name          string
}

// ClusterDescriber is satisfied by the store and its mocks.
type ClusterDescriber interface {
	ManagedCluster(ctx context.Context, resourceGroup, name string) (*model.ManagedCluster, error)
}

func (opts *ClusterOpts) Cluster(ctx context.Context, s ClusterDescriber) (*model.ManagedCluster, error) {
	mc, err := s.ManagedCluster(ctx, opts.ResourceGroup, opts.Name)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, fmt.Errorf("managed cluster %s not found in resource group %s: %w", opts.Name, opts.ResourceGroup, err)
		}
		return nil, err
	}
	return mc, nil
}
