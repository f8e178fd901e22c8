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
	"fmt"

	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/flag"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/Azure/aks-cli-plugin-preview/internal/usage"
	"github.com/spf13/cobra"
)

type UpdateOpts struct {
	cli.GlobalOpts
	cli.OutputOpts
	BindingOpts
	roles  string
	noWait bool
	store  CreateStore
}

func (opts *UpdateOpts) initStore() error {
	var err error
	opts.store, err = store.New(opts.StoreOptions()...)
	return err
}

func (opts *UpdateOpts) validate() error {
	_, err := parseRoles(opts.roles)
	return err
}

// Run replaces the roles of an existing binding. The source resource can't change.
func (opts *UpdateOpts) Run(ctx context.Context) error {
	roles, err := parseRoles(opts.roles)
	if err != nil {
		return err
	}
	binding, err := opts.store.TrustedAccessRoleBinding(ctx, opts.ResourceGroup, opts.ClusterName, opts.Name)
	if err != nil {
		if store.IsNotFound(err) {
			return fmt.Errorf("trusted access role binding %s not found on managed cluster %s: %w", opts.Name, opts.ClusterName, err)
		}
		return err
	}
	binding.Name = opts.Name
	binding.Roles = roles

	op, err := opts.store.BeginCreateOrUpdateTrustedAccessRoleBinding(ctx, opts.ResourceGroup, opts.ClusterName, binding)
	if err != nil {
		return err
	}
	if opts.noWait {
		return opts.Printf("Update of trusted access role binding '%s' started.\n", opts.Name)
	}
	updated, err := op.Wait(ctx)
	if err != nil {
		return err
	}
	return opts.Print(updated, cli.TrustedAccessRoleBindingsTable(*updated))
}

// UpdateBuilder builds "aks trustedaccess rolebinding update".
func UpdateBuilder() *cobra.Command {
	opts := &UpdateOpts{}
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace the roles of a trusted access role binding.",
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
	cmd.Flags().StringVar(&opts.roles, flag.Roles, "", usage.Roles)
	_ = cmd.MarkFlagRequired(flag.Roles)
	return cmd
}
