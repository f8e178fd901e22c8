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

package model

// TrustedAccessRoleBinding grants a source resource, such as an Azure Machine
// Learning workspace, a set of trusted access roles on the cluster.
type TrustedAccessRoleBinding struct {
	ID                string   `json:"id,omitempty"`
	Name              string   `json:"name"`
	SourceResourceID  string   `json:"sourceResourceId"`
	Roles             []string `json:"roles"`
	ProvisioningState string   `json:"provisioningState,omitempty"`
}

type TrustedAccessRole struct {
	SourceResourceType string                  `json:"sourceResourceType"`
	Name               string                  `json:"name"`
	Rules              []TrustedAccessRoleRule `json:"rules,omitempty"`
}

// TrustedAccessRoleRule mirrors a Kubernetes RBAC policy rule.
type TrustedAccessRoleRule struct {
	Verbs           []string `json:"verbs,omitempty"`
	APIGroups       []string `json:"apiGroups,omitempty"`
	Resources       []string `json:"resources,omitempty"`
	ResourceNames   []string `json:"resourceNames,omitempty"`
	NonResourceURLs []string `json:"nonResourceURLs,omitempty"`
}
