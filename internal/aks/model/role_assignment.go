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

// MSIClientID is the placeholder client id ARM reports for clusters that use a
// managed identity instead of a service principal.
const MSIClientID = "msi"

// RoleAssignmentRequest identifies the role assignments to create or delete.
// Role is a role name, a role definition GUID or a full role definition id.
type RoleAssignmentRequest struct {
	Role      string
	Principal string
	Scope     string
}

type RoleAssignment struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	PrincipalID      string `json:"principalId"`
	RoleDefinitionID string `json:"roleDefinitionId"`
	Scope            string `json:"scope"`
}

type Subnet struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	VirtualNetwork string `json:"virtualNetwork"`
	AddressPrefix  string `json:"addressPrefix,omitempty"`
}

type ApplicationGateway struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ResourceGroup string `json:"resourceGroup"`
	Location      string `json:"location,omitempty"`
}
