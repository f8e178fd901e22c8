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
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	clusterPath = "/resourceGroups/rg/providers/Microsoft.ContainerService/managedClusters/cluster"
	workspaceID = "/subscriptions/00000000-0000-0000-0000-000000000001/resourceGroups/rg/providers/Microsoft.MachineLearningServices/workspaces/ws"
	bindingBody = `{
		"id": "` + clusterPath + `/trustedAccessRoleBindings/binding",
		"name": "binding",
		"properties": {
			"sourceResourceId": "` + workspaceID + `",
			"roles": ["Microsoft.MachineLearningServices/workspaces/reader"],
			"provisioningState": "Succeeded"
		}
	}`
)

var wantBinding = model.TrustedAccessRoleBinding{
	ID:                clusterPath + "/trustedAccessRoleBindings/binding",
	Name:              "binding",
	SourceResourceID:  workspaceID,
	Roles:             []string{"Microsoft.MachineLearningServices/workspaces/reader"},
	ProvisioningState: "Succeeded",
}

func TestTrustedAccessRoles(t *testing.T) {
	s, transport := newStubStore(t, map[string]stubResponse{
		"/locations/eastus/trustedAccessRoles": {
			status: http.StatusOK,
			body: `{"value":[{
				"sourceResourceType": "Microsoft.MachineLearningServices/workspaces",
				"name": "inference-v1",
				"rules": [{"verbs": ["get", "list"], "apiGroups": [""], "resources": ["pods"]}]
			}]}`,
		},
	})

	roles, err := s.TrustedAccessRoles(context.Background(), "eastus")
	require.NoError(t, err)
	want := []model.TrustedAccessRole{{
		SourceResourceType: "Microsoft.MachineLearningServices/workspaces",
		Name:               "inference-v1",
		Rules: []model.TrustedAccessRoleRule{
			{Verbs: []string{"get", "list"}, APIGroups: []string{""}, Resources: []string{"pods"}},
		},
	}}
	if diff := deep.Equal(want, roles); diff != nil {
		t.Error(diff)
	}
	require.Len(t, transport.requests, 1)
	assert.Equal(t, http.MethodGet, transport.requests[0].Method)
}

func TestTrustedAccessRoleBindings(t *testing.T) {
	s, _ := newStubStore(t, map[string]stubResponse{
		clusterPath + "/trustedAccessRoleBindings": {status: http.StatusOK, body: `{"value":[` + bindingBody + `]}`},
	})

	bindings, err := s.TrustedAccessRoleBindings(context.Background(), "rg", "cluster")
	require.NoError(t, err)
	if diff := deep.Equal([]model.TrustedAccessRoleBinding{wantBinding}, bindings); diff != nil {
		t.Error(diff)
	}
}

func TestTrustedAccessRoleBinding(t *testing.T) {
	s, _ := newStubStore(t, map[string]stubResponse{
		clusterPath + "/trustedAccessRoleBindings/binding": {status: http.StatusOK, body: bindingBody},
	})

	got, err := s.TrustedAccessRoleBinding(context.Background(), "rg", "cluster", "binding")
	require.NoError(t, err)
	if diff := deep.Equal(wantBinding, *got); diff != nil {
		t.Error(diff)
	}

	_, err = s.TrustedAccessRoleBinding(context.Background(), "rg", "cluster", "missing")
	assert.True(t, IsNotFound(err))
}

func TestBeginCreateOrUpdateTrustedAccessRoleBinding(t *testing.T) {
	s, transport := newStubStore(t, map[string]stubResponse{
		clusterPath + "/trustedAccessRoleBindings/binding": {status: http.StatusOK, body: bindingBody},
	})

	op, err := s.BeginCreateOrUpdateTrustedAccessRoleBinding(context.Background(), "rg", "cluster", &model.TrustedAccessRoleBinding{
		Name:             "binding",
		SourceResourceID: workspaceID,
		Roles:            []string{"Microsoft.MachineLearningServices/workspaces/reader"},
	})
	require.NoError(t, err)
	got, err := op.Wait(context.Background())
	require.NoError(t, err)
	if diff := deep.Equal(wantBinding, *got); diff != nil {
		t.Error(diff)
	}

	require.NotEmpty(t, transport.requests)
	assert.Equal(t, http.MethodPut, transport.requests[0].Method)
	var sent struct {
		Properties struct {
			SourceResourceID string   `json:"sourceResourceId"`
			Roles            []string `json:"roles"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal([]byte(transport.bodies[0]), &sent))
	assert.Equal(t, workspaceID, sent.Properties.SourceResourceID)
	assert.Equal(t, []string{"Microsoft.MachineLearningServices/workspaces/reader"}, sent.Properties.Roles)
}

func TestBeginAbortOperations(t *testing.T) {
	s, transport := newStubStore(t, map[string]stubResponse{
		clusterPath + "/abort":                 {status: http.StatusNoContent},
		clusterPath + "/agentPools/user/abort": {status: http.StatusNoContent},
	})

	op, err := s.BeginAbortClusterOperation(context.Background(), "rg", "cluster")
	require.NoError(t, err)
	require.NoError(t, op.Wait(context.Background()))

	op, err = s.BeginAbortAgentPoolOperation(context.Background(), "rg", "cluster", "user")
	require.NoError(t, err)
	require.NoError(t, op.Wait(context.Background()))

	require.Len(t, transport.requests, 2)
	for _, req := range transport.requests {
		assert.Equal(t, http.MethodPost, req.Method)
	}

	_, err = s.BeginAbortAgentPoolOperation(context.Background(), "rg", "cluster", "missing")
	assert.True(t, IsNotFound(err))
}
