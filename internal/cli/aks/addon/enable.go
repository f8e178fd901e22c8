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

package addon

import (
	"context"
	"strings"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/addons"
	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/flag"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/Azure/aks-cli-plugin-preview/internal/telemetry"
	"github.com/Azure/aks-cli-plugin-preview/internal/usage"
	"github.com/spf13/cobra"
)

type EnableOpts struct {
	cli.GlobalOpts
	cli.ClusterOpts
	cli.OutputOpts
	addons  string
	single  bool
	options addons.Options
	noWait  bool
	manager Manager
}

func (opts *EnableOpts) initStore() error {
	s, err := store.New(opts.StoreOptions()...)
	if err != nil {
		return err
	}
	opts.manager = NewManager(s)
	return nil
}

func (opts *EnableOpts) validate() error {
	if opts.single {
		if err := validateAddonName(strings.TrimSpace(opts.addons)); err != nil {
			return err
		}
	}
	return validateOptions(opts.options)
}

func (opts *EnableOpts) Run(ctx context.Context) error {
	telemetry.AppendOption(telemetry.WithAddons(opts.addons))
	sub, err := opts.manager.Enable(ctx, opts.ResourceGroup, opts.Name, addons.Request{
		Addons:  opts.addons,
		Options: opts.options,
	}, opts.noWait)
	if err != nil {
		return err
	}
	return opts.PrintSubmission(opts.ResourceGroup, opts.Name, sub)
}

func newEnableCmd(opts *EnableOpts) *cobra.Command {
	return &cobra.Command{
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
}

func addEnableFlags(cmd *cobra.Command, opts *EnableOpts) {
	opts.GlobalOpts.AddFlags(cmd)
	opts.ClusterOpts.AddFlags(cmd)
	opts.OutputOpts.AddFlags(cmd)
	addOptionFlags(cmd, &opts.options)
	cli.AddNoWaitFlag(cmd, &opts.noWait)
}

// EnableBuilder builds "aks addon enable".
func EnableBuilder() *cobra.Command {
	opts := &EnableOpts{single: true}
	cmd := newEnableCmd(opts)
	cmd.Use = "enable"
	cmd.Short = "Enable a Kubernetes add-on."
	cmd.Example = `  # Enable monitoring with an existing Log Analytics workspace:
  aks addon enable -g MyResourceGroup -n MyCluster -a monitoring --workspace-resource-id <id>`
	addEnableFlags(cmd, opts)
	cmd.Flags().StringVarP(&opts.addons, flag.Addon, flag.AddonsShort, "", usage.Addon)
	_ = cmd.MarkFlagRequired(flag.Addon)
	return cmd
}

// EnableAddonsBuilder builds "aks enable-addons".
func EnableAddonsBuilder() *cobra.Command {
	opts := &EnableOpts{}
	cmd := newEnableCmd(opts)
	cmd.Use = "enable-addons"
	cmd.Short = "Enable Kubernetes add-ons."
	cmd.Example = `  # Enable Kubernetes add-ons:
  aks enable-addons -g MyResourceGroup -n MyCluster -a virtual-node,azure-policy --subnet-name VirtualNodeSubnet`
	addEnableFlags(cmd, opts)
	cmd.Flags().StringVarP(&opts.addons, flag.Addons, flag.AddonsShort, "", usage.Addons)
	_ = cmd.MarkFlagRequired(flag.Addons)
	return cmd
}
