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

package aks

import (
	"context"
	"strings"

	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

type UpgradeProfile struct {
	KubernetesVersion string   `json:"kubernetesVersion"`
	Upgrades          []string `json:"upgrades"`
}

type GetUpgradesOpts struct {
	cli.GlobalOpts
	cli.ClusterOpts
	cli.OutputOpts
	store UpgradeStore
}

func (opts *GetUpgradesOpts) initStore() error {
	var err error
	opts.store, err = store.New(opts.StoreOptions()...)
	return err
}

func (opts *GetUpgradesOpts) Run(ctx context.Context) error {
	mc, err := opts.Cluster(ctx, opts.store)
	if err != nil {
		return err
	}
	upgrades, err := opts.store.ClusterUpgrades(ctx, opts.ResourceGroup, opts.Name)
	if err != nil {
		return err
	}
	if upgrades == nil {
		upgrades = []string{}
	}
	profile := UpgradeProfile{KubernetesVersion: mc.KubernetesVersion, Upgrades: upgrades}
	return opts.Print(profile, func(t *uitable.Table) {
		t.AddRow("CURRENT VERSION", "UPGRADES")
		t.AddRow(profile.KubernetesVersion, strings.Join(profile.Upgrades, ", "))
	})
}

// GetUpgradesBuilder builds "aks get-upgrades".
func GetUpgradesBuilder() *cobra.Command {
	opts := &GetUpgradesOpts{}
	cmd := &cobra.Command{
		Use:   "get-upgrades",
		Short: "Get the versions of Kubernetes a managed cluster can upgrade to.",
		Args:  cobra.NoArgs,
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
