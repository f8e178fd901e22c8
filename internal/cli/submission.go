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
	"github.com/Azure/aks-cli-plugin-preview/internal/aks/submit"
)

// PrintSubmission prints the updated cluster, or a progress note when the
// update is still running.
func (opts *OutputOpts) PrintSubmission(resourceGroup, name string, sub *submit.Submission) error {
	if sub.Cluster == nil {
		return opts.Printf("Update of managed cluster '%s' in resource group '%s' started.\n", name, resourceGroup)
	}
	return opts.Print(sub.Cluster, ClusterTable(sub.Cluster))
}
