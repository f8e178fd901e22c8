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

package validate

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

var (
	ErrMissingSubscription = errors.New("no subscription configured, set AZURE_SUBSCRIPTION_ID or subscription_id in the configuration file")
	ErrEmptyValue          = errors.New("value can't be empty")
)

// SubscriptionID validates a value is a subscription GUID.
func SubscriptionID(s string) error {
	if s == "" {
		return ErrMissingSubscription
	}
	if _, err := uuid.Parse(s); err != nil {
		return fmt.Errorf("invalid subscription id %q: %w", s, err)
	}
	return nil
}

// ResourceID validates a value is a fully qualified ARM resource id.
func ResourceID(s string) error {
	if s == "" {
		return ErrEmptyValue
	}
	if _, err := arm.ParseResourceID(s); err != nil {
		return fmt.Errorf("invalid resource id %q: %w", s, err)
	}
	return nil
}

func OptionalResourceID(s string) error {
	if s == "" {
		return nil
	}
	return ResourceID(s)
}

// ResourceIDOfType validates a resource id and its provider resource type,
// for example "Microsoft.Network/virtualNetworks/subnets".
func ResourceIDOfType(s, resourceType string) error {
	if s == "" {
		return nil
	}
	id, err := arm.ParseResourceID(s)
	if err != nil {
		return fmt.Errorf("invalid resource id %q: %w", s, err)
	}
	if !strings.EqualFold(id.ResourceType.String(), resourceType) {
		return fmt.Errorf("%q is a %s, expected a %s", s, id.ResourceType.String(), resourceType)
	}
	return nil
}

func KubernetesVersion(s string) error {
	if s == "" {
		return ErrEmptyValue
	}
	if _, err := semver.NewVersion(s); err != nil {
		return fmt.Errorf("invalid Kubernetes version %q: %w", s, err)
	}
	return nil
}

func NodeCount(n int) error {
	if n < 0 || n > 1000 {
		return fmt.Errorf("invalid node count %d, must be between 0 and 1000", n)
	}
	return nil
}

// Duration validates a Go duration such as "2m" or "30s".
func Duration(s string) error {
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d <= 0 {
		return fmt.Errorf("invalid duration %q, must be positive", s)
	}
	return nil
}

func CIDR(s string) error {
	if s == "" {
		return nil
	}
	if _, _, err := net.ParseCIDR(s); err != nil {
		return fmt.Errorf("invalid CIDR %q: %w", s, err)
	}
	return nil
}

func FlagInSlice(value, flag string, validValues []string) error {
	for _, v := range validValues {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf(`invalid value for "%s", allowed values: "%s"`, flag, strings.Join(validValues, `", "`))
}
