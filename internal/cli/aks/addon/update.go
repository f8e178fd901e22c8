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

type UpdateOpts struct {
	cli.GlobalOpts
	cli.ClusterOpts
	cli.OutputOpts
	addon   string
	options addons.Options
	noWait  bool
	manager Manager
}

func (opts *UpdateOpts) initStore() error {
	s, err := store.New(opts.StoreOptions()...)
	if err != nil {
		return err
	}
	opts.manager = NewManager(s)
	return nil
}

func (opts *UpdateOpts) validate() error {
	if err := validateAddonName(strings.TrimSpace(opts.addon)); err != nil {
		return err
	}
	return validateOptions(opts.options)
}

func (opts *UpdateOpts) Run(ctx context.Context) error {
	telemetry.AppendOption(telemetry.WithAddons(opts.addon))
	sub, err := opts.manager.Update(ctx, opts.ResourceGroup, opts.Name, addons.Request{
		Addons:  opts.addon,
		Options: opts.options,
	}, opts.noWait)
	if err != nil {
		return err
	}
	return opts.PrintSubmission(opts.ResourceGroup, opts.Name, sub)
}

// UpdateBuilder builds "aks addon update".
func UpdateBuilder() *cobra.Command {
	opts := &UpdateOpts{}
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the configuration of an enabled add-on.",
		Example: `  # Turn on secret rotation for the Key Vault secrets provider:
  aks addon update -g MyResourceGroup -n MyCluster -a azure-keyvault-secrets-provider --enable-secret-rotation`,
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
	addOptionFlags(cmd, &opts.options)
	cli.AddNoWaitFlag(cmd, &opts.noWait)
	cmd.Flags().StringVarP(&opts.addon, flag.Addon, flag.AddonsShort, "", usage.Addon)
	_ = cmd.MarkFlagRequired(flag.Addon)
	return cmd
}
