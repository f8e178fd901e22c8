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

package aks

import (
	"context"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/submit"
	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/spf13/cobra"
)

type OperationAbortStore interface {
	store.ManagedClusterDescriber
	store.ClusterOperationAborter
}

type OperationAbortOpts struct {
	cli.GlobalOpts
	cli.ClusterOpts
	cli.OutputOpts
	noWait bool
	store  OperationAbortStore
}

func (opts *OperationAbortOpts) initStore() error {
	var err error
	opts.store, err = store.New(opts.StoreOptions()...)
	return err
}

func (opts *OperationAbortOpts) Run(ctx context.Context) error {
	if _, err := opts.Cluster(ctx, opts.store); err != nil {
		return err
	}
	op, err := opts.store.BeginAbortClusterOperation(ctx, opts.ResourceGroup, opts.Name)
	if err != nil {
		return err
	}
	if err := submit.Wait(ctx, op, opts.noWait); err != nil {
		return err
	}
	if opts.noWait {
		return opts.Printf("Abort of the latest operation on managed cluster '%s' started.\n", opts.Name)
	}
	return opts.Printf("Latest operation on managed cluster '%s' aborted.\n", opts.Name)
}

// OperationAbortBuilder builds "aks operation-abort".
func OperationAbortBuilder() *cobra.Command {
	opts := &OperationAbortOpts{}
	cmd := &cobra.Command{
		Use:   "operation-abort",
		Short: "Abort the last running operation on a managed cluster.",
		Long:  `Aborts the operation currently running on the cluster. The cluster keeps the state reached so far and the aborted operation ends as Canceled.`,
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
	opts.ClusterOpts.AddFlags(cmd)
	cli.AddNoWaitFlag(cmd, &opts.noWait)
	return cmd
}
