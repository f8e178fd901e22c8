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

package nodepool

import (
	"github.com/Azure/aks-cli-plugin-preview/internal/flag"
	"github.com/Azure/aks-cli-plugin-preview/internal/usage"
	"github.com/spf13/cobra"
)

func Builder() *cobra.Command {
	const use = "nodepool"
	cmd := &cobra.Command{
		Use:   use,
		Short: "Manage the node pools of a managed cluster.",
	}

	cmd.AddCommand(
		ListBuilder(),
		ShowBuilder(),
		ScaleBuilder(),
		DeleteBuilder(),
		OperationAbortBuilder(),
	)
	return cmd
}

// PoolOpts identify a node pool.
type PoolOpts struct {
	ResourceGroup string
	ClusterName   string
	Name          string
}

func (opts *PoolOpts) addFlags(cmd *cobra.Command, withName bool) {
	cmd.Flags().StringVarP(&opts.ResourceGroup, flag.ResourceGroup, flag.ResourceGroupShort, "", usage.ResourceGroup)
	cmd.Flags().StringVar(&opts.ClusterName, flag.ClusterName, "", usage.ClusterName)
	_ = cmd.MarkFlagRequired(flag.ResourceGroup)
	_ = cmd.MarkFlagRequired(flag.ClusterName)
	if withName {
		cmd.Flags().StringVarP(&opts.Name, flag.Name, flag.NameShort, "", usage.NodePoolNameArg)
		_ = cmd.MarkFlagRequired(flag.Name)
	}
}
