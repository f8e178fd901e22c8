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
	"github.com/Azure/aks-cli-plugin-preview/internal/aks/addons"
	"github.com/Azure/aks-cli-plugin-preview/internal/cli"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

type ListAvailableOpts struct {
	cli.OutputOpts
}

func (opts *ListAvailableOpts) Run() error {
	available := addons.Available()
	return opts.Print(available, func(t *uitable.Table) {
		t.AddRow("NAME", "DESCRIPTION")
		for _, d := range available {
			t.AddRow(d.Name, d.Description)
		}
	})
}

// ListAvailableBuilder builds "aks addon list-available".
func ListAvailableBuilder() *cobra.Command {
	opts := &ListAvailableOpts{}
	cmd := &cobra.Command{
		Use:   "list-available",
		Short: "List the add-ons that can be enabled on a managed cluster.",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.OutWriter = cmd.OutOrStdout()
			return opts.ValidateOutput()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return opts.Run()
		},
	}
	opts.OutputOpts.AddFlags(cmd)
	return cmd
}
