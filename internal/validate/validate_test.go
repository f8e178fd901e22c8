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

package validate

import (
	"testing"
)

func TestSubscriptionID(t *testing.T) {
	tests := []struct {
		name    string
		val     string
		wantErr bool
	}{
		{
			name:    "Empty value",
			val:     "",
			wantErr: true,
		},
		{
			name:    "Valid subscription",
			val:     "0b1f6471-1bf0-4dda-aec3-cb9272f09590",
			wantErr: false,
		},
		{
			name:    "Short subscription",
			val:     "0b1f6471-1bf0-4dda-aec3-cb9272f0959",
			wantErr: true,
		},
		{
			name:    "Invalid subscription",
			val:     "my-subscription",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		val := tt.val
		wantErr := tt.wantErr
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := SubscriptionID(val); (err != nil) != wantErr {
				t.Errorf("SubscriptionID() error = %v, wantErr %v", err, wantErr)
			}
		})
	}
}

func TestResourceID(t *testing.T) {
	tests := []struct {
		name    string
		val     string
		wantErr bool
	}{
		{
			name:    "Empty value",
			val:     "",
			wantErr: true,
		},
		{
			name:    "Workspace",
			val:     "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.OperationalInsights/workspaces/ws",
			wantErr: false,
		},
		{
			name:    "Resource group",
			val:     "/subscriptions/sub/resourceGroups/rg",
			wantErr: false,
		},
		{
			name:    "Not an id",
			val:     "workspace",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		val := tt.val
		wantErr := tt.wantErr
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ResourceID(val); (err != nil) != wantErr {
				t.Errorf("ResourceID() error = %v, wantErr %v", err, wantErr)
			}
		})
	}
}

func TestOptionalResourceID(t *testing.T) {
	if err := OptionalResourceID(""); err != nil {
		t.Errorf("OptionalResourceID() error = %v", err)
	}
	if err := OptionalResourceID("nope"); err == nil {
		t.Error("OptionalResourceID() expected an error")
	}
}

func TestResourceIDOfType(t *testing.T) {
	const subnet = "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Network/virtualNetworks/vnet/subnets/default"
	tests := []struct {
		name    string
		val     string
		typ     string
		wantErr bool
	}{
		{
			name:    "Empty value",
			val:     "",
			typ:     "Microsoft.Network/virtualNetworks/subnets",
			wantErr: false,
		},
		{
			name:    "Subnet",
			val:     subnet,
			typ:     "Microsoft.Network/virtualNetworks/subnets",
			wantErr: false,
		},
		{
			name:    "Case insensitive",
			val:     subnet,
			typ:     "microsoft.network/virtualnetworks/subnets",
			wantErr: false,
		},
		{
			name:    "Wrong type",
			val:     subnet,
			typ:     "Microsoft.Network/applicationGateways",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ResourceIDOfType(tt.val, tt.typ); (err != nil) != tt.wantErr {
				t.Errorf("ResourceIDOfType() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKubernetesVersion(t *testing.T) {
	tests := []struct {
		val     string
		wantErr bool
	}{
		{val: "", wantErr: true},
		{val: "1.29.2", wantErr: false},
		{val: "1.29", wantErr: false},
		{val: "v1.30.0", wantErr: false},
		{val: "latest", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.val, func(t *testing.T) {
			t.Parallel()
			if err := KubernetesVersion(tt.val); (err != nil) != tt.wantErr {
				t.Errorf("KubernetesVersion() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNodeCount(t *testing.T) {
	for _, n := range []int{0, 3, 1000} {
		if err := NodeCount(n); err != nil {
			t.Errorf("NodeCount(%d) error = %v", n, err)
		}
	}
	for _, n := range []int{-1, 1001} {
		if err := NodeCount(n); err == nil {
			t.Errorf("NodeCount(%d) expected an error", n)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		val     string
		wantErr bool
	}{
		{val: "", wantErr: false},
		{val: "2m", wantErr: false},
		{val: "90s", wantErr: false},
		{val: "0s", wantErr: true},
		{val: "two minutes", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.val, func(t *testing.T) {
			t.Parallel()
			if err := Duration(tt.val); (err != nil) != tt.wantErr {
				t.Errorf("Duration() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCIDR(t *testing.T) {
	if err := CIDR("10.225.0.0/16"); err != nil {
		t.Errorf("CIDR() error = %v", err)
	}
	if err := CIDR("10.225.0.0"); err == nil {
		t.Error("CIDR() expected an error")
	}
}

func TestFlagInSlice(t *testing.T) {
	if err := FlagInSlice("json", "output", []string{"json", "yaml", "table"}); err != nil {
		t.Errorf("FlagInSlice() error = %v", err)
	}
	if err := FlagInSlice("xml", "output", []string{"json", "yaml", "table"}); err == nil {
		t.Error("FlagInSlice() expected an error")
	}
}
