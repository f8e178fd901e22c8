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
	"github.com/spf13/cobra"
)

func Builder() *cobra.Command {
	const use = "addon"
	cmd := &cobra.Command{
		Use:   use,
		Short: "Manage the add-ons of a managed cluster.",
		Long:  `Enable, disable, update and inspect the add-ons of an Azure Kubernetes Service cluster.`,
	}

	cmd.AddCommand(
		ListAvailableBuilder(),
		ListBuilder(),
		ShowBuilder(),
		EnableBuilder(),
		DisableBuilder(),
		UpdateBuilder(),
	)
	return cmd
}
