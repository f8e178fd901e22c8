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

package trustedaccess

import (
	"context"

	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/flag"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/Azure/aks-cli-plugin-preview/internal/usage"
	"github.com/spf13/cobra"
)

type RoleListOpts struct {
	cli.GlobalOpts
	cli.OutputOpts
	location string
	store    store.TrustedAccessRoleLister
}

func (opts *RoleListOpts) initStore() error {
	var err error
	opts.store, err = store.New(opts.StoreOptions()...)
	return err
}

func (opts *RoleListOpts) Run(ctx context.Context) error {
	roles, err := opts.store.TrustedAccessRoles(ctx, opts.location)
	if err != nil {
		return err
	}
	return opts.Print(roles, cli.TrustedAccessRolesTable(roles...))
}

// RoleListBuilder builds "aks trustedaccess role list".
func RoleListBuilder() *cobra.Command {
	opts := &RoleListOpts{}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the trusted access roles of a region.",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.OutWriter = cmd.OutOrStdout()
			return opts.PreRunE(
				opts.ValidateSubscription,
				opts.ValidateOutput,
				opts.initStore,
			)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.Run(cmd.Context())
		},
	}
	opts.GlobalOpts.AddFlags(cmd)
	opts.OutputOpts.AddFlags(cmd)
	cmd.Flags().StringVarP(&opts.location, flag.Location, flag.LocationShort, "", usage.Location)
	_ = cmd.MarkFlagRequired(flag.Location)
	return cmd
}
