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

	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/flag"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/Azure/aks-cli-plugin-preview/internal/telemetry"
	"github.com/Azure/aks-cli-plugin-preview/internal/usage"
	"github.com/spf13/cobra"
)

type DisableOpts struct {
	cli.GlobalOpts
	cli.ClusterOpts
	cli.OutputOpts
	addons  string
	single  bool
	noWait  bool
	manager Manager
}

func (opts *DisableOpts) initStore() error {
	s, err := store.New(opts.StoreOptions()...)
	if err != nil {
		return err
	}
	opts.manager = NewManager(s)
	return nil
}

func (opts *DisableOpts) validate() error {
	if opts.single {
		return validateAddonName(strings.TrimSpace(opts.addons))
	}
	return nil
}

func (opts *DisableOpts) Run(ctx context.Context) error {
	telemetry.AppendOption(telemetry.WithAddons(opts.addons))
	sub, err := opts.manager.Disable(ctx, opts.ResourceGroup, opts.Name, opts.addons, opts.noWait)
	if err != nil {
		return err
	}
	return opts.PrintSubmission(opts.ResourceGroup, opts.Name, sub)
}

func newDisableCmd(opts *DisableOpts) *cobra.Command {
	cmd := &cobra.Command{
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
	return cmd
}

// DisableBuilder builds "aks addon disable".
func DisableBuilder() *cobra.Command {
	opts := &DisableOpts{single: true}
	cmd := newDisableCmd(opts)
	cmd.Use = "disable"
	cmd.Short = "Disable a Kubernetes add-on."
	cmd.Flags().StringVarP(&opts.addons, flag.Addon, flag.AddonsShort, "", usage.Addon)
	_ = cmd.MarkFlagRequired(flag.Addon)
	return cmd
}

// DisableAddonsBuilder builds "aks disable-addons".
func DisableAddonsBuilder() *cobra.Command {
	opts := &DisableOpts{}
	cmd := newDisableCmd(opts)
	cmd.Use = "disable-addons"
	cmd.Short = "Disable Kubernetes add-ons."
	cmd.Example = `  # Disable the monitoring and virtual-node add-ons:
  aks disable-addons -g MyResourceGroup -n MyCluster -a monitoring,virtual-node`
	cmd.Flags().StringVarP(&opts.addons, flag.Addons, flag.AddonsShort, "", usage.Addons)
	_ = cmd.MarkFlagRequired(flag.Addons)
	return cmd
}
