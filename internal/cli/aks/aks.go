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
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/Azure/aks-cli-plugin-preview/internal/cli/aks/addon"
	"github.com/Azure/aks-cli-plugin-preview/internal/cli/aks/nodepool"
	"github.com/Azure/aks-cli-plugin-preview/internal/cli/aks/trustedaccess"
	"github.com/Azure/aks-cli-plugin-preview/internal/config"
	"github.com/Azure/aks-cli-plugin-preview/internal/flag"
	"github.com/Azure/aks-cli-plugin-preview/internal/log"
	"github.com/Azure/aks-cli-plugin-preview/internal/sighandle"
	"github.com/Azure/aks-cli-plugin-preview/internal/telemetry"
	"github.com/Azure/aks-cli-plugin-preview/internal/usage"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	debug    bool
	logLevel string
}

func (opts *rootOpts) setLogLevel() error {
	if opts.debug {
		log.SetLevel(log.DebugLevel)
		return nil
	}
	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

func Builder() *cobra.Command {
	const use = "aks"
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   use,
		Short: "Manage Azure Kubernetes Services.",
		Long:  `This command provides access to the preview features of Azure Kubernetes Service managed clusters.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.setLogLevel(); err != nil {
				return err
			}
			if err := config.Load(); err != nil {
				return fmt.Errorf("failed to load the aks-preview configuration: %w", err)
			}
			telemetry.StartTrackingCommand(cmd, args)
			handleSignal()
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			telemetry.FinishTrackingCommand(telemetry.TrackOptions{})
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.debug, flag.Debug, flag.DebugShort, false, usage.Debug)
	cmd.PersistentFlags().StringVar(&opts.logLevel, flag.LogLevel, "warning", usage.LogLevel)

	cmd.AddCommand(
		addon.Builder(),
		addon.EnableAddonsBuilder(),
		addon.DisableAddonsBuilder(),
		nodepool.Builder(),
		ScaleBuilder(),
		UpgradeBuilder(),
		GetUpgradesBuilder(),
		RotateCertsBuilder(),
		OperationAbortBuilder(),
		trustedaccess.Builder(),
	)
	return cmd
}

func handleSignal() {
	sighandle.Notify(func(sig os.Signal) {
		telemetry.FinishTrackingCommand(telemetry.TrackOptions{
			Err:    errors.New(sig.String()),
			Signal: sig.String(),
		})
		os.Exit(1)
	}, os.Interrupt, syscall.SIGTERM)
}
