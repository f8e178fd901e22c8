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

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/addons"
	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

type ListOpts struct {
	cli.GlobalOpts
	cli.ClusterOpts
	cli.OutputOpts
	store cli.ClusterDescriber
}

func (opts *ListOpts) initStore() error {
	var err error
	opts.store, err = store.New(opts.StoreOptions()...)
	return err
}

func (opts *ListOpts) Run(ctx context.Context) error {
	mc, err := opts.Cluster(ctx, opts.store)
	if err != nil {
		return err
	}
	statuses := addons.List(*mc)
	return opts.Print(statuses, func(t *uitable.Table) {
		t.AddRow("NAME", "API KEY", "ENABLED")
		for _, s := range statuses {
			t.AddRow(s.Name, s.Key, s.Enabled)
		}
	})
}

// ListBuilder builds "aks addon list".
func ListBuilder() *cobra.Command {
	opts := &ListOpts{}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the add-ons of a managed cluster and whether they are enabled.",
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
	opts.ClusterOpts.AddFlags(cmd)
	opts.OutputOpts.AddFlags(cmd)
	return cmd
}
