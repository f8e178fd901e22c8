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

package submit

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Azure/aks-cli-plugin-preview/internal/log"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
)

var errMissingCluster = errors.New("no managed cluster to submit")

type Request struct {
	ResourceGroup string
	Name          string
	Cluster       *model.ManagedCluster
	// NoWait returns as soon as ARM accepts the update.
	NoWait bool
	// NeedResult blocks until the update finishes, even with NoWait, so the
	// caller can read server computed fields.
	NeedResult bool
}

// Submission holds either the updated cluster or the in-flight operation.
type Submission struct {
	Cluster   *model.ManagedCluster
	Operation store.ClusterOperation
}

// Done reports whether the update has finished.
func (s *Submission) Done() bool {
	return s.Cluster != nil || (s.Operation != nil && s.Operation.Done())
}

type Submitter struct {
	updater store.ManagedClusterUpdater
}

func NewSubmitter(updater store.ManagedClusterUpdater) *Submitter {
	return &Submitter{updater: updater}
}

// Submit sends the snapshot as a create-or-update request.
func (s *Submitter) Submit(ctx context.Context, req Request) (*Submission, error) {
	if req.Cluster == nil {
		return nil, errMissingCluster
	}
	op, err := s.updater.BeginUpdateManagedCluster(ctx, req.ResourceGroup, req.Name, req.Cluster)
	if err != nil {
		return nil, fmt.Errorf("failed to update managed cluster %s: %w", req.Name, err)
	}

	if req.NoWait && !req.NeedResult {
		return &Submission{Operation: op}, nil
	}
	if req.NoWait {
		log.Warningln("--no-wait is ignored because the result is needed to finish the command")
	}

	mc, err := op.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for managed cluster %s: %w", req.Name, err)
	}
	return &Submission{Cluster: mc}, nil
}

// Wait finishes op unless noWait is set.
func Wait(ctx context.Context, op store.Operation, noWait bool) error {
	if noWait {
		return nil
	}
	return op.Wait(ctx)
}
