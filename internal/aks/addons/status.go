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

package addons

import (
	"fmt"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
)

type Status struct {
	Name    string `json:"name"`
	Key     string `json:"apiKey"`
	Enabled bool   `json:"enabled"`
}

type Detail struct {
	Name     string                      `json:"name"`
	Key      string                      `json:"apiKey"`
	Config   any                         `json:"config"`
	Identity *model.UserAssignedIdentity `json:"identity,omitempty"`
}

type AddonNotEnabledError struct {
	Name string
}

func (e *AddonNotEnabledError) Error() string {
	return fmt.Sprintf("addon %q is not enabled in this cluster", e.Name)
}

// List reports the enabled state of every catalog add-on on mc.
func List(mc model.ManagedCluster) []Status {
	available := Available()
	out := make([]Status, 0, len(available))
	for _, d := range available {
		s := Status{Name: d.Name, Key: d.Key}
		if d.Name == WebApplicationRouting {
			s.Enabled = mc.WebAppRoutingEnabled()
		} else {
			key, _ := CanonicalKey(d.Name)
			s.Key = key
			s.Enabled = mc.AddonEnabled(key)
		}
		out = append(out, s)
	}
	return out
}

// Show returns the configuration of an enabled add-on.
func Show(mc model.ManagedCluster, name string) (*Detail, error) {
	if err := EnsureEnabled(mc, name); err != nil {
		return nil, err
	}
	if name == WebApplicationRouting {
		return &Detail{Name: name, Key: WebAppRoutingKey, Config: mc.IngressProfile.WebAppRouting}, nil
	}
	key, _ := CanonicalKey(name)
	p, _ := mc.Addon(key)
	return &Detail{Name: name, Key: key, Config: p.Config, Identity: p.Identity}, nil
}

// EnsureEnabled fails unless the named add-on is enabled on mc.
func EnsureEnabled(mc model.ManagedCluster, name string) error {
	if name == WebApplicationRouting {
		if !mc.WebAppRoutingEnabled() {
			return &AddonNotEnabledError{Name: name}
		}
		return nil
	}
	key, err := CanonicalKey(name)
	if err != nil {
		return err
	}
	if !mc.AddonEnabled(key) {
		return &AddonNotEnabledError{Name: name}
	}
	return nil
}
