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
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/spf13/cobra"
)

type ShowOpts struct {
	cli.GlobalOpts
	cli.OutputOpts
	BindingOpts
	store store.TrustedAccessRoleBindingDescriber
}

func (opts *ShowOpts) initStore() error {
	var err error
	opts.store, err = store.New(opts.StoreOptions()...)
	return err
}

func (opts *ShowOpts) Run(ctx context.Context) error {
	binding, err := opts.store.TrustedAccessRoleBinding(ctx, opts.ResourceGroup, opts.ClusterName, opts.Name)
	if err != nil {
		return err
	}
	return opts.Print(binding, cli.TrustedAccessRoleBindingsTable(*binding))
}

// ShowBuilder builds "aks trustedaccess rolebinding show".
func ShowBuilder() *cobra.Command {
	opts := &ShowOpts{}
	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"get"},
		Short:   "Show a trusted access role binding.",
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
	opts.addFlags(cmd, true)
	return cmd
}
