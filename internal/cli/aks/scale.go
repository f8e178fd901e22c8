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

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/cluster"
	"github.com/Azure/aks-cli-plugin-preview/internal/aks/submit"
	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/flag"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/Azure/aks-cli-plugin-preview/internal/usage"
	"github.com/Azure/aks-cli-plugin-preview/internal/validate"
	"github.com/spf13/cobra"
)

type ClusterUpdateStore interface {
	store.ManagedClusterDescriber
	store.ManagedClusterUpdater
}

type ScaleOpts struct {
	cli.GlobalOpts
	cli.ClusterOpts
	cli.OutputOpts
	nodePool  string
	nodeCount int
	noWait    bool
	store     ClusterUpdateStore
}

func (opts *ScaleOpts) initStore() error {
	var err error
	opts.store, err = store.New(opts.StoreOptions()...)
	return err
}

func (opts *ScaleOpts) validate() error {
	return validate.NodeCount(opts.nodeCount)
}

func (opts *ScaleOpts) Run(ctx context.Context) error {
	mc, err := opts.Cluster(ctx, opts.store)
	if err != nil {
		return err
	}
	scaled, err := cluster.Scale(*mc, opts.nodePool, int32(opts.nodeCount))
	if err != nil {
		return err
	}
	sub, err := submit.NewSubmitter(opts.store).Submit(ctx, submit.Request{
		ResourceGroup: opts.ResourceGroup,
		Name:          opts.Name,
		Cluster:       &scaled,
		NoWait:        opts.noWait,
	})
	if err != nil {
		return err
	}
	return opts.PrintSubmission(opts.ResourceGroup, opts.Name, sub)
}

// ScaleBuilder builds "aks scale".
func ScaleBuilder() *cobra.Command {
	opts := &ScaleOpts{}
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Scale the node pool of a managed cluster.",
		Example: `  # Scale the only node pool of a cluster to five nodes:
  aks scale -g MyResourceGroup -n MyCluster --node-count 5`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.OutWriter = cmd.OutOrStdout()
			return opts.PreRunE(
				opts.ValidateSubscription,
				opts.ValidateOutput,
				opts.validate,
				opts.initStore,
			)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.Run(cmd.Context())
		},
	}
	opts.GlobalOpts.AddFlags(cmd)
	opts.ClusterOpts.AddFlags(cmd)
	opts.OutputOpts.AddFlags(cmd)
	cli.AddNoWaitFlag(cmd, &opts.noWait)
	cmd.Flags().IntVarP(&opts.nodeCount, flag.NodeCount, flag.NodeCountShort, 0, usage.NodeCount)
	cmd.Flags().StringVar(&opts.nodePool, flag.NodePoolName, "", usage.NodePoolName)
	_ = cmd.MarkFlagRequired(flag.NodeCount)
	return cmd
}
