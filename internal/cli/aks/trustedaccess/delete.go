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

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/submit"
	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/spf13/cobra"
)

type DeleteOpts struct {
	cli.GlobalOpts
	cli.OutputOpts
	cli.ConfirmOpts
	BindingOpts
	noWait bool
	store  store.TrustedAccessRoleBindingDeleter
}

func (opts *DeleteOpts) initStore() error {
	var err error
	opts.store, err = store.New(opts.StoreOptions()...)
	return err
}

func (opts *DeleteOpts) Run(ctx context.Context) error {
	ok, err := opts.Confirm(fmt.Sprintf("Are you sure you want to delete trusted access role binding '%s' of managed cluster '%s'?", opts.Name, opts.ClusterName))
	if err != nil || !ok {
		return err
	}
	op, err := opts.store.BeginDeleteTrustedAccessRoleBinding(ctx, opts.ResourceGroup, opts.ClusterName, opts.Name)
	if err != nil {
		return err
	}
	if err := submit.Wait(ctx, op, opts.noWait); err != nil {
		return err
	}
	if opts.noWait {
		return opts.Printf("Deletion of trusted access role binding '%s' started.\n", opts.Name)
	}
	return opts.Printf("Trusted access role binding '%s' deleted.\n", opts.Name)
}

// DeleteBuilder builds "aks trustedaccess rolebinding delete".
func DeleteBuilder() *cobra.Command {
	opts := &DeleteOpts{}
	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Delete a trusted access role binding.",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.OutWriter = cmd.OutOrStdout()
			opts.In = cmd.InOrStdin()
			opts.Out = cmd.ErrOrStderr()
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
	opts.ConfirmOpts.AddFlags(cmd)
	opts.addFlags(cmd, true)
	cli.AddNoWaitFlag(cmd, &opts.noWait)
	return cmd
}
