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
)

type UnknownAddonError struct {
	Name string
}

func (e *UnknownAddonError) Error() string {
	return fmt.Sprintf("invalid addon name: %s", e.Name)
}

// AddonAlreadyEnabledError is returned when enabling an add-on that is already
// enabled. Its configuration can only change after disabling it.
type AddonAlreadyEnabledError struct {
	Name          string
	ResourceGroup string
	Cluster       string
}

func (e *AddonAlreadyEnabledError) Error() string {
	return fmt.Sprintf("the %s addon is already enabled for this managed cluster.\n"+
		"To change %s configuration, run \"az aks disable-addons -a %s -n %s -g %s\" before enabling it again",
		e.Name, e.Name, e.Name, e.Cluster, e.ResourceGroup)
}

type AddonNotInstalledError struct {
	Key string
}

func (e *AddonNotInstalledError) Error() string {
	return fmt.Sprintf("the addon %s is not installed", e.Key)
}

type MissingRequiredOptionError struct {
	Addon  string
	Option string
}

func (e *MissingRequiredOptionError) Error() string {
	if e.Addon == "" {
		return fmt.Sprintf("%s is required", e.Option)
	}
	return fmt.Sprintf("the %s addon requires setting %s", e.Addon, e.Option)
}
