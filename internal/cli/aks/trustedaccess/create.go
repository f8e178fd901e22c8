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

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/flag"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/Azure/aks-cli-plugin-preview/internal/usage"
	"github.com/Azure/aks-cli-plugin-preview/internal/validate"
	"github.com/spf13/cobra"
)

type CreateStore interface {
	store.TrustedAccessRoleBindingDescriber
	store.TrustedAccessRoleBindingUpdater
}

type CreateOpts struct {
	cli.GlobalOpts
	cli.OutputOpts
	BindingOpts
	sourceResourceID string
	roles            string
	noWait           bool
	store            CreateStore
}

func (opts *CreateOpts) initStore() error {
	var err error
	opts.store, err = store.New(opts.StoreOptions()...)
	return err
}

func (opts *CreateOpts) validate() error {
	if err := validate.ResourceID(opts.sourceResourceID); err != nil {
		return fmt.Errorf("--%s: %w", flag.SourceResourceID, err)
	}
	_, err := parseRoles(opts.roles)
	return err
}

func (opts *CreateOpts) Run(ctx context.Context) error {
	roles, err := parseRoles(opts.roles)
	if err != nil {
		return err
	}
	// create never overwrites, update is the only way to change roles
	_, err = opts.store.TrustedAccessRoleBinding(ctx, opts.ResourceGroup, opts.ClusterName, opts.Name)
	if err == nil {
		return fmt.Errorf("trusted access role binding %s already exists, use 'aks trustedaccess rolebinding update' to change its roles", opts.Name)
	}
	if !store.IsNotFound(err) {
		return err
	}

	op, err := opts.store.BeginCreateOrUpdateTrustedAccessRoleBinding(ctx, opts.ResourceGroup, opts.ClusterName, &model.TrustedAccessRoleBinding{
		Name:             opts.Name,
		SourceResourceID: opts.sourceResourceID,
		Roles:            roles,
	})
	if err != nil {
		return err
	}
	if opts.noWait {
		return opts.Printf("Creation of trusted access role binding '%s' started.\n", opts.Name)
	}
	binding, err := op.Wait(ctx)
	if err != nil {
		return err
	}
	return opts.Print(binding, cli.TrustedAccessRoleBindingsTable(*binding))
}

// CreateBuilder builds "aks trustedaccess rolebinding create".
func CreateBuilder() *cobra.Command {
	opts := &CreateOpts{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Bind a source resource to trusted access roles on a managed cluster.",
		Example: `  # Let an Azure Machine Learning workspace read the cluster
  aks trustedaccess rolebinding create -g myResourceGroup --cluster-name myCluster -n myBinding \
    --source-resource-id /subscriptions/<subscription>/resourceGroups/myResourceGroup/providers/Microsoft.MachineLearningServices/workspaces/myWorkspace \
    --roles Microsoft.MachineLearningServices/workspaces/reader`,
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
	opts.OutputOpts.AddFlags(cmd)
	opts.addFlags(cmd, true)
	cli.AddNoWaitFlag(cmd, &opts.noWait)
	cmd.Flags().StringVar(&opts.sourceResourceID, flag.SourceResourceID, "", usage.SourceResourceID)
	cmd.Flags().StringVar(&opts.roles, flag.Roles, "", usage.Roles)
	_ = cmd.MarkFlagRequired(flag.SourceResourceID)
	_ = cmd.MarkFlagRequired(flag.Roles)
	return cmd
}
