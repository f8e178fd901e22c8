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

//go:build e2e || addon

package e2e

import (
	"testing"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/addons"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddonListAvailable(t *testing.T) {
	out := runPlugin(t, addonEntity, "list-available", "-o", "json")
	available := decode[[]addons.Descriptor](t, out)
	assert.Len(t, available, len(addons.Available()))
}

func TestAddonLifecycle(t *testing.T) {
	rg, name := cluster(t)
	clusterFlags := []string{"-g", rg, "-n", name, "-o", "json"}

	t.Run("List", func(t *testing.T) {
		out := runPlugin(t, append([]string{addonEntity, "list"}, clusterFlags...)...)
		statuses := decode[[]addons.Status](t, out)
		for _, s := range statuses {
			require.False(t, s.Name == addons.AzurePolicy && s.Enabled, "azure-policy must be disabled before the test")
		}
	})

	t.Run("Enable", func(t *testing.T) {
		runPlugin(t, append([]string{"enable-addons", "-a", addons.AzurePolicy}, clusterFlags...)...)
	})

	t.Run("Enable again", func(t *testing.T) {
		out, err := runPluginErr(t, append([]string{addonEntity, "enable", "-a", addons.AzurePolicy}, clusterFlags...)...)
		require.Error(t, err)
		assert.Contains(t, string(out), "disable-addons -a azure-policy")
	})

	t.Run("Show", func(t *testing.T) {
		out := runPlugin(t, append([]string{addonEntity, "show", "-a", addons.AzurePolicy}, clusterFlags...)...)
		detail := decode[addons.Detail](t, out)
		assert.Equal(t, addons.AzurePolicyKey, detail.Key)
	})

	t.Run("Disable", func(t *testing.T) {
		runPlugin(t, append([]string{"disable-addons", "-a", addons.AzurePolicy}, clusterFlags...)...)
	})

	t.Run("Show disabled", func(t *testing.T) {
		_, err := runPluginErr(t, append([]string{addonEntity, "show", "-a", addons.AzurePolicy}, clusterFlags...)...)
		require.Error(t, err)
	})
}

func TestAddonUnknown(t *testing.T) {
	rg, name := cluster(t)
	out, err := runPluginErr(t, "enable-addons", "-g", rg, "-n", name, "-a", "monitoring,bogus")
	require.Error(t, err)
	assert.Contains(t, string(out), "bogus")
}
