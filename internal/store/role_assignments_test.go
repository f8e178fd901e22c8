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

//go:build unit

package store

import (
	"context"
	"net/http"
	"testing"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testScope  = "/subscriptions/00000000-0000-0000-0000-000000000001/resourceGroups/rg"
	readerRole = "/subscriptions/00000000-0000-0000-0000-000000000001/providers/Microsoft.Authorization/roleDefinitions/acdd72a7-3385-48ef-bd42-f606fba81ae7"
)

func TestResolveRoleID(t *testing.T) {
	s, transport := newStubStore(t, map[string]stubResponse{
		"/providers/Microsoft.Authorization/roleDefinitions": {
			status: http.StatusOK,
			body:   `{"value":[{"id":"` + readerRole + `","name":"acdd72a7-3385-48ef-bd42-f606fba81ae7"}]}`,
		},
	})

	id, err := s.resolveRoleID(context.Background(), "Reader", testScope)
	require.NoError(t, err)
	assert.Equal(t, readerRole, id)
	require.Len(t, transport.requests, 1)
	assert.Contains(t, transport.requests[0].URL.RawQuery, "Reader")

	id, err = s.resolveRoleID(context.Background(), "acdd72a7-3385-48ef-bd42-f606fba81ae7", testScope)
	require.NoError(t, err)
	assert.Equal(t, readerRole, id)

	id, err = s.resolveRoleID(context.Background(), readerRole, testScope)
	require.NoError(t, err)
	assert.Equal(t, readerRole, id)
	assert.Len(t, transport.requests, 1)
}

func TestDeleteRoleAssignmentsUnknownRole(t *testing.T) {
	s, transport := newStubStore(t, map[string]stubResponse{
		"/providers/Microsoft.Authorization/roleDefinitions": {status: http.StatusOK, body: `{"value":[]}`},
	})

	err := s.DeleteRoleAssignments(context.Background(), model.RoleAssignmentRequest{
		Role:      "Monitoring Metrics Publisherr",
		Principal: "oms",
		Scope:     testScope,
	})
	var target *UnknownRoleError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "Monitoring Metrics Publisherr", target.Role)
	assert.False(t, IsNotFound(err))
	assert.False(t, HasCode(err, RoleDefinitionDoesNotExist))
	assert.Len(t, transport.requests, 1)
}
