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

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/cluster"
	"github.com/Azure/aks-cli-plugin-preview/internal/aks/submit"
	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/flag"
	"github.com/Azure/aks-cli-plugin-preview/internal/log"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/Azure/aks-cli-plugin-preview/internal/usage"
	"github.com/Azure/aks-cli-plugin-preview/internal/validate"
	"github.com/spf13/cobra"
)

const upgradePrompt = "Kubernetes may be unavailable during cluster upgrades.\nAre you sure you want to perform this operation?"

type UpgradeStore interface {
	ClusterUpdateStore
	store.ClusterUpgradeLister
}

type UpgradeOpts struct {
	cli.GlobalOpts
	cli.ClusterOpts
	cli.OutputOpts
	cli.ConfirmOpts
	kubernetesVersion string
	controlPlaneOnly  bool
	noWait            bool
	store             UpgradeStore
}

func (opts *UpgradeOpts) initStore() error {
	var err error
	opts.store, err = store.New(opts.StoreOptions()...)
	return err
}

func (opts *UpgradeOpts) validate() error {
	return validate.KubernetesVersion(opts.kubernetesVersion)
}

func (opts *UpgradeOpts) Run(ctx context.Context) error {
	mc, err := opts.Cluster(ctx, opts.store)
	if err != nil {
		return err
	}
	if mc.KubernetesVersion == opts.kubernetesVersion && mc.ProvisioningState == "Succeeded" {
		log.Warningf("The cluster is already on version %s and is not in a failed state. No operations will occur when upgrading to the same version if the cluster is not in a failed state.\n", mc.KubernetesVersion)
	}

	available, err := opts.store.ClusterUpgrades(ctx, opts.ResourceGroup, opts.Name)
	if err != nil {
		return err
	}
	upgraded, err := cluster.Upgrade(*mc, opts.kubernetesVersion, opts.controlPlaneOnly, available)
	if err != nil {
		return err
	}

	ok, err := opts.Confirm(upgradePrompt)
	if err != nil || !ok {
		return err
	}

	sub, err := submit.NewSubmitter(opts.store).Submit(ctx, submit.Request{
		ResourceGroup: opts.ResourceGroup,
		Name:          opts.Name,
		Cluster:       &upgraded,
		NoWait:        opts.noWait,
	})
	if err != nil {
		return err
	}
	return opts.PrintSubmission(opts.ResourceGroup, opts.Name, sub)
}

// UpgradeBuilder builds "aks upgrade".
func UpgradeBuilder() *cobra.Command {
	opts := &UpgradeOpts{}
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade a managed cluster to a newer version of Kubernetes.",
		Example: `  # Upgrade the control plane and every node pool:
  aks upgrade -g MyResourceGroup -n MyCluster -k 1.29.2 --yes`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.OutWriter = cmd.OutOrStdout()
			opts.In = cmd.InOrStdin()
			opts.Out = cmd.ErrOrStderr()
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
	opts.ConfirmOpts.AddFlags(cmd)
	cli.AddNoWaitFlag(cmd, &opts.noWait)
	cmd.Flags().StringVarP(&opts.kubernetesVersion, flag.KubernetesVersion, flag.KubernetesVersionShort, "", usage.KubernetesVersion)
	cmd.Flags().BoolVar(&opts.controlPlaneOnly, flag.ControlPlaneOnly, false, usage.ControlPlaneOnly)
	_ = cmd.MarkFlagRequired(flag.KubernetesVersion)
	return cmd
}
