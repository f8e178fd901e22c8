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
	"strings"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/gosuri/uitable"
)

func ClusterTable(mc *model.ManagedCluster) TableRenderer {
	return func(t *uitable.Table) {
		t.AddRow("NAME", "LOCATION", "RESOURCE GROUP", "KUBERNETES VERSION", "PROVISIONING STATE")
		t.AddRow(mc.Name, mc.Location, mc.ResourceGroup, mc.KubernetesVersion, mc.ProvisioningState)
	}
}

func AgentPoolsTable(pools ...model.AgentPoolProfile) TableRenderer {
	return func(t *uitable.Table) {
		t.AddRow("NAME", "MODE", "COUNT", "VM SIZE", "VERSION", "AUTOSCALING", "PROVISIONING STATE")
		for _, p := range pools {
			t.AddRow(p.Name, p.Mode, p.Count, p.VMSize, p.OrchestratorVersion, p.EnableAutoScaling, p.ProvisioningState)
		}
	}
}

func TrustedAccessRolesTable(roles ...model.TrustedAccessRole) TableRenderer {
	return func(t *uitable.Table) {
		t.AddRow("SOURCE RESOURCE TYPE", "NAME")
		for _, r := range roles {
			t.AddRow(r.SourceResourceType, r.Name)
		}
	}
}

func TrustedAccessRoleBindingsTable(bindings ...model.TrustedAccessRoleBinding) TableRenderer {
	return func(t *uitable.Table) {
		t.AddRow("NAME", "SOURCE RESOURCE ID", "ROLES", "PROVISIONING STATE")
		for _, b := range bindings {
			t.AddRow(b.Name, b.SourceResourceID, strings.Join(b.Roles, ","), b.ProvisioningState)
		}
	}
}
