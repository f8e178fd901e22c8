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

package cluster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Masterminds/semver/v3"
)

var (
	ErrNodePoolRequired  = errors.New("there are more than one node pool in the cluster, please specify the node pool name or use the nodepool command to scale a node pool")
	ErrAutoscalerEnabled = errors.New("cannot scale cluster autoscaler enabled node pool")
	ErrNoAgentPools      = errors.New("the cluster has no node pools")
	ErrInvalidNodeCount  = errors.New("--node-count must be zero or greater")
)

// Scale returns a copy of mc with the node count of one pool changed. An
// empty pool name is only allowed when the cluster has a single pool.
func Scale(mc model.ManagedCluster, pool string, count int32) (model.ManagedCluster, error) {
	if count < 0 {
		return model.ManagedCluster{}, ErrInvalidNodeCount
	}
	out := mc.Clone()
	switch {
	case len(out.AgentPoolProfiles) == 0:
		return model.ManagedCluster{}, ErrNoAgentPools
	case pool == "" && len(out.AgentPoolProfiles) > 1:
		return model.ManagedCluster{}, ErrNodePoolRequired
	case pool == "":
		pool = out.AgentPoolProfiles[0].Name
	}

	for i := range out.AgentPoolProfiles {
		p := &out.AgentPoolProfiles[i]
		if p.Name != pool {
			continue
		}
		if p.EnableAutoScaling {
			return model.ManagedCluster{}, ErrAutoscalerEnabled
		}
		p.Count = count
		out.ServicePrincipalProfile = nil
		return out, nil
	}
	return model.ManagedCluster{}, fmt.Errorf("node pool %q doesn't exist", pool)
}

// VersionError is returned for an upgrade the control plane can't take.
type VersionError struct {
	Current   string
	Requested string
	Reason    string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("cannot upgrade from %s to %s: %s", e.Current, e.Requested, e.Reason)
}

// Upgrade returns a copy of mc moved to version. Unless controlPlaneOnly is
// set every node pool follows the control plane. When available is not
// empty the version must be one of the listed upgrades.
func Upgrade(mc model.ManagedCluster, version string, controlPlaneOnly bool, available []string) (model.ManagedCluster, error) {
	requested, err := semver.NewVersion(version)
	if err != nil {
		return model.ManagedCluster{}, fmt.Errorf("invalid Kubernetes version %q: %w", version, err)
	}
	if mc.KubernetesVersion != "" {
		current, err := semver.NewVersion(mc.KubernetesVersion)
		if err != nil {
			return model.ManagedCluster{}, fmt.Errorf("invalid current Kubernetes version %q: %w", mc.KubernetesVersion, err)
		}
		if requested.LessThan(current) {
			return model.ManagedCluster{}, &VersionError{Current: mc.KubernetesVersion, Requested: version, Reason: "downgrading is not supported"}
		}
		if !requested.Equal(current) && len(available) > 0 && !containsVersion(available, requested) {
			return model.ManagedCluster{}, &VersionError{
				Current:   mc.KubernetesVersion,
				Requested: version,
				Reason:    "available upgrades are " + strings.Join(available, ", "),
			}
		}
	}

	out := mc.Clone()
	out.KubernetesVersion = version
	if !controlPlaneOnly {
		for i := range out.AgentPoolProfiles {
			out.AgentPoolProfiles[i].OrchestratorVersion = version
		}
	}
	out.ServicePrincipalProfile = nil
	return out, nil
}

func containsVersion(versions []string, v *semver.Version) bool {
	for _, s := range versions {
		if candidate, err := semver.NewVersion(s); err == nil && candidate.Equal(v) {
			return true
		}
	}
	return false
}
