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
	"errors"

	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/flag"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/Azure/aks-cli-plugin-preview/internal/usage"
	"github.com/Azure/aks-cli-plugin-preview/internal/validate"
	"github.com/spf13/cobra"
)

var ErrAutoscalerEnabled = errors.New("cannot scale cluster autoscaler enabled node pool")

type ScaleStore interface {
	store.AgentPoolDescriber
	store.AgentPoolScaler
}

type ScaleOpts struct {
	cli.GlobalOpts
	cli.OutputOpts
	PoolOpts
	nodeCount int
	noWait    bool
	store     ScaleStore
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
	current, err := opts.store.AgentPool(ctx, opts.ResourceGroup, opts.ClusterName, opts.Name)
	if err != nil {
		return err
	}
	if current.EnableAutoScaling {
		return ErrAutoscalerEnabled
	}

	op, err := opts.store.BeginScaleAgentPool(ctx, opts.ResourceGroup, opts.ClusterName, opts.Name, int32(opts.nodeCount))
	if err != nil {
		return err
	}
	if opts.noWait {
		return opts.Printf("Scaling of node pool '%s' started.\n", opts.Name)
	}
	pool, err := op.Wait(ctx)
	if err != nil {
		return err
	}
	return opts.Print(pool, cli.AgentPoolsTable(*pool))
}

// ScaleBuilder builds "aks nodepool scale".
func ScaleBuilder() *cobra.Command {
	opts := &ScaleOpts{}
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Scale a node pool.",
		Args:  cobra.NoArgs,
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
	opts.OutputOpts.AddFlags(cmd)
	opts.addFlags(cmd, true)
	cli.AddNoWaitFlag(cmd, &opts.noWait)
	cmd.Flags().IntVarP(&opts.nodeCount, flag.NodeCount, flag.NodeCountShort, 0, usage.NodeCount)
	_ = cmd.MarkFlagRequired(flag.NodeCount)
	return cmd
}
