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

//go:build e2e || trustedaccess

package e2e

import (
	"os"
	"testing"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrustedAccess(t *testing.T) {
	rg, name := cluster(t)
	location := os.Getenv("E2E_LOCATION")
	if location == "" {
		location = "eastus"
	}

	t.Run("Role list", func(t *testing.T) {
		out := runPlugin(t, trustedAccessEntity, "role", "list", "-l", location, "-o", "json")
		roles := decode[[]model.TrustedAccessRole](t, out)
		require.NotEmpty(t, roles)
		for _, r := range roles {
			assert.NotEmpty(t, r.SourceResourceType)
		}
	})

	t.Run("Role binding list", func(t *testing.T) {
		out := runPlugin(t, trustedAccessEntity, "rolebinding", "list", "-g", rg, "--cluster-name", name, "-o", "json")
		_ = decode[[]model.TrustedAccessRoleBinding](t, out)
	})

	t.Run("Update missing binding", func(t *testing.T) {
		out, err := runPluginErr(t, trustedAccessEntity, "rolebinding", "update", "-g", rg, "--cluster-name", name,
			"-n", "e2e-missing-binding", "--roles", "Microsoft.MachineLearningServices/workspaces/reader")
		require.Error(t, err)
		assert.Contains(t, string(out), "not found")
	})
}
