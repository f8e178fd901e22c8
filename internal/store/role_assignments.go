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

package store

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Azure/aks-cli-plugin-preview/internal/log"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
	"github.com/google/uuid"
)

const (
	roleDefinitionsPath = "/providers/Microsoft.Authorization/roleDefinitions/"

	RoleAssignmentNotFound     = "RoleAssignmentNotFound"
	PrincipalNotFound          = "PrincipalNotFound"
	RoleDefinitionDoesNotExist = "RoleDefinitionDoesNotExist"
)

//go:generate mockgen -destination=../mocks/mock_role_assignments.go -package=mocks github.com/Azure/aks-cli-plugin-preview/internal/store RoleAssignmentLister,RoleAssignmentCreator,RoleAssignmentDeleter

type RoleAssignmentLister interface {
	RoleAssignments(ctx context.Context, req model.RoleAssignmentRequest) ([]model.RoleAssignment, error)
}

type RoleAssignmentCreator interface {
	CreateRoleAssignment(ctx context.Context, req model.RoleAssignmentRequest) (*model.RoleAssignment, error)
}

type RoleAssignmentDeleter interface {
	DeleteRoleAssignments(ctx context.Context, req model.RoleAssignmentRequest) error
}

// RoleAssignments lists the assignments made directly at the request scope,
// narrowed to the request role and principal when they are set.
func (s *Store) RoleAssignments(ctx context.Context, req model.RoleAssignmentRequest) ([]model.RoleAssignment, error) {
	roleID := ""
	if req.Role != "" {
		var err error
		if roleID, err = s.resolveRoleID(ctx, req.Role, req.Scope); err != nil {
			return nil, err
		}
	}

	var out []model.RoleAssignment
	pager := s.roleAssignments.NewListForScopePager(req.Scope, &armauthorization.RoleAssignmentsClientListForScopeOptions{
		Filter: to.Ptr("atScope()"),
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, wrapError(err)
		}
		for _, a := range page.Value {
			ra := roleAssignmentToModel(a)
			if ra == nil || !strings.EqualFold(ra.Scope, req.Scope) {
				continue
			}
			if roleID != "" && !sameRoleDefinition(ra.RoleDefinitionID, roleID) {
				continue
			}
			if req.Principal != "" && !strings.EqualFold(ra.PrincipalID, req.Principal) {
				continue
			}
			out = append(out, *ra)
		}
	}
	return out, nil
}

// CreateRoleAssignment assigns the role to a service principal at scope.
func (s *Store) CreateRoleAssignment(ctx context.Context, req model.RoleAssignmentRequest) (*model.RoleAssignment, error) {
	roleID, err := s.resolveRoleID(ctx, req.Role, req.Scope)
	if err != nil {
		return nil, err
	}
	resp, err := s.roleAssignments.Create(ctx, req.Scope, uuid.NewString(), armauthorization.RoleAssignmentCreateParameters{
		Properties: &armauthorization.RoleAssignmentProperties{
			PrincipalID:      to.Ptr(req.Principal),
			RoleDefinitionID: to.Ptr(roleID),
			PrincipalType:    to.Ptr(armauthorization.PrincipalTypeServicePrincipal),
		},
	}, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	return roleAssignmentToModel(&resp.RoleAssignment), nil
}

// DeleteRoleAssignments removes every matching assignment. A request that
// matches nothing is a no-op.
func (s *Store) DeleteRoleAssignments(ctx context.Context, req model.RoleAssignmentRequest) error {
	assignments, err := s.RoleAssignments(ctx, req)
	if err != nil {
		return err
	}
	if len(assignments) == 0 {
		log.Debugf("no role assignment of %s for %s found at %s\n", req.Role, req.Principal, req.Scope)
		return nil
	}
	for _, a := range assignments {
		log.Debugf("deleting role assignment %s\n", a.ID)
		if _, err := s.roleAssignments.DeleteByID(ctx, a.ID, nil); err != nil {
			return wrapError(err)
		}
	}
	return nil
}

// resolveRoleID accepts a full role definition id, a role definition GUID or
// a role name.
func (s *Store) resolveRoleID(ctx context.Context, role, scope string) (string, error) {
	if strings.Contains(strings.ToLower(role), strings.ToLower(roleDefinitionsPath)) {
		return role, nil
	}
	if _, err := uuid.Parse(role); err == nil {
		return "/subscriptions/" + s.subscriptionID + roleDefinitionsPath + role, nil
	}

	pager := s.roleDefinitions.NewListPager(scope, &armauthorization.RoleDefinitionsClientListOptions{
		Filter: to.Ptr(fmt.Sprintf("roleName eq '%s'", role)),
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return "", wrapError(err)
		}
		for _, d := range page.Value {
			if d != nil && d.ID != nil {
				return *d.ID, nil
			}
		}
	}
	return "", &UnknownRoleError{Role: role, Scope: scope}
}

func sameRoleDefinition(a, b string) bool {
	return strings.EqualFold(path.Base(a), path.Base(b))
}

func roleAssignmentToModel(a *armauthorization.RoleAssignment) *model.RoleAssignment {
	if a == nil {
		return nil
	}
	out := &model.RoleAssignment{
		ID:   str(a.ID),
		Name: str(a.Name),
	}
	if p := a.Properties; p != nil {
		out.PrincipalID = str(p.PrincipalID)
		out.RoleDefinitionID = str(p.RoleDefinitionID)
		out.Scope = str(p.Scope)
	}
	return out
}
