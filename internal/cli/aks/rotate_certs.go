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

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/submit"
	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
	"github.com/spf13/cobra"
)

const rotateCertsPrompt = "Kubernetes will be unavailable during certificate rotation process.\nAre you sure you want to perform this operation?"

type RotateCertsOpts struct {
	cli.GlobalOpts
	cli.ClusterOpts
	cli.OutputOpts
	cli.ConfirmOpts
	noWait bool
	store  store.ClusterCertificateRotator
}

func (opts *RotateCertsOpts) initStore() error {
	var err error
	opts.store, err = store.New(opts.StoreOptions()...)
	return err
}

func (opts *RotateCertsOpts) Run(ctx context.Context) error {
	ok, err := opts.Confirm(rotateCertsPrompt)
	if err != nil || !ok {
		return err
	}
	op, err := opts.store.BeginRotateClusterCertificates(ctx, opts.ResourceGroup, opts.Name)
	if err != nil {
		return err
	}
	if err := submit.Wait(ctx, op, opts.noWait); err != nil {
		return err
	}
	if opts.noWait {
		return opts.Printf("Certificate rotation of managed cluster '%s' started.\n", opts.Name)
	}
	return opts.Printf("Certificates of managed cluster '%s' rotated.\n", opts.Name)
}

// RotateCertsBuilder builds "aks rotate-certs".
func RotateCertsBuilder() *cobra.Command {
	opts := &RotateCertsOpts{}
	cmd := &cobra.Command{
		Use:   "rotate-certs",
		Short: "Rotate certificates and keys on a managed cluster.",
		Long:  `Rotates the cluster certificates. Nodes are reimaged and the cluster is unavailable for up to 30 minutes.`,
		Args:  cobra.NoArgs,
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
	opts.ClusterOpts.AddFlags(cmd)
	opts.ConfirmOpts.AddFlags(cmd)
	cli.AddNoWaitFlag(cmd, &opts.noWait)
	return cmd
}
