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

package nodepool

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/submit"
	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/spf13/cobra"
)

type OperationAbortStore interface {
	store.AgentPoolLister
	store.AgentPoolOperationAborter
}

type OperationAbortOpts struct {
	cli.GlobalOpts
	cli.OutputOpts
	PoolOpts
	noWait bool
	store  OperationAbortStore
}

func (opts *OperationAbortOpts) initStore() error {
	var err error
	opts.store, err = store.New(opts.StoreOptions()...)
	return err
}

// poolName returns the name of the pool matching opts.Name, ignoring case.
func (opts *OperationAbortOpts) poolName(ctx context.Context) (string, error) {
	pools, err := opts.store.AgentPools(ctx, opts.ResourceGroup, opts.ClusterName)
	if err != nil {
		return "", err
	}
	for _, p := range pools {
		if strings.EqualFold(p.Name, opts.Name) {
			return p.Name, nil
		}
	}
	return "", fmt.Errorf("node pool %s doesn't exist, use 'aks nodepool list' to get the current node pools", opts.Name)
}

func (opts *OperationAbortOpts) Run(ctx context.Context) error {
	name, err := opts.poolName(ctx)
	if err != nil {
		return err
	}
	op, err := opts.store.BeginAbortAgentPoolOperation(ctx, opts.ResourceGroup, opts.ClusterName, name)
	if err != nil {
		return err
	}
	if err := submit.Wait(ctx, op, opts.noWait); err != nil {
		return err
	}
	if opts.noWait {
		return opts.Printf("Abort of the latest operation on node pool '%s' started.\n", name)
	}
	return opts.Printf("Latest operation on node pool '%s' aborted.\n", name)
}

// OperationAbortBuilder builds "aks nodepool operation-abort".
func OperationAbortBuilder() *cobra.Command {
	opts := &OperationAbortOpts{}
	cmd := &cobra.Command{
		Use:   "operation-abort",
		Short: "Abort the last running operation on a node pool.",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.OutWriter = cmd.OutOrStdout()
			return opts.PreRunE(
				opts.ValidateSubscription,
				opts.initStore,
			)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.Run(cmd.Context())
		},
	}
	opts.GlobalOpts.AddFlags(cmd)
	opts.addFlags(cmd, true)
	cli.AddNoWaitFlag(cmd, &opts.noWait)
	return cmd
}
