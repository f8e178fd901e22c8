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

package cli

import (
	"github.com/Azure/aks-cli-plugin-preview/internal/flag"
	"github.com/Azure/aks-cli-plugin-preview/internal/usage"
	"github.com/spf13/cobra"
)

func (opts *GlobalOpts) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.Subscription, flag.Subscription, "", usage.Subscription)
}

func (opts *ClusterOpts) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&opts.ResourceGroup, flag.ResourceGroup, flag.ResourceGroupShort, "", usage.ResourceGroup)
	cmd.Flags().StringVarP(&opts.Name, flag.Name, flag.NameShort, "", usage.Name)
	_ = cmd.MarkFlagRequired(flag.ResourceGroup)
	_ = cmd.MarkFlagRequired(flag.Name)
}

func (opts *OutputOpts) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&opts.Output, flag.Output, flag.OutputShort, "", usage.Output)
	cmd.Flags().StringVar(&opts.Query, flag.Query, "", usage.Query)
}

func (opts *ConfirmOpts) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&opts.Force, flag.Yes, flag.YesShort, false, usage.Force)
}

// AddNoWaitFlag binds --no-wait.
func AddNoWaitFlag(cmd *cobra.Command, noWait *bool) {
	cmd.Flags().BoolVar(noWait, flag.NoWait, false, usage.NoWait)
}
