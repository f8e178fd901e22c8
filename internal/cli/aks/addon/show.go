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
	"fmt"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/addons"
	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/flag"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/Azure/aks-cli-plugin-preview/internal/usage"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

type ShowOpts struct {
	cli.GlobalOpts
	cli.ClusterOpts
	cli.OutputOpts
	addon string
	store cli.ClusterDescriber
}

func (opts *ShowOpts) initStore() error {
	var err error
	opts.store, err = store.New(opts.StoreOptions()...)
	return err
}

func (opts *ShowOpts) validateAddon() error {
	return validateAddonName(opts.addon)
}

func (opts *ShowOpts) Run(ctx context.Context) error {
	mc, err := opts.Cluster(ctx, opts.store)
	if err != nil {
		return err
	}
	detail, err := addons.Show(*mc, opts.addon)
	if err != nil {
		return err
	}
	return opts.Print(detail, func(t *uitable.Table) {
		t.AddRow("NAME", "API KEY", "CONFIG")
		t.AddRow(detail.Name, detail.Key, fmt.Sprint(detail.Config))
	})
}

// ShowBuilder builds "aks addon show".
func ShowBuilder() *cobra.Command {
	opts := &ShowOpts{}
	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"describe"},
		Short:   "Show the configuration of an enabled add-on.",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.OutWriter = cmd.OutOrStdout()
			return opts.PreRunE(
				opts.ValidateSubscription,
				opts.ValidateOutput,
				opts.validateAddon,
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
	cmd.Flags().StringVarP(&opts.addon, flag.Addon, flag.AddonsShort, "", usage.Addon)
	_ = cmd.MarkFlagRequired(flag.Addon)
	return cmd
}
