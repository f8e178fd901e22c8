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

package store

import (
	"context"
	"time"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

//go:generate mockgen -destination=../mocks/mock_operations.go -package=mocks github.com/Azure/aks-cli-plugin-preview/internal/store Operation,ClusterOperation,AgentPoolOperation,TrustedAccessRoleBindingOperation

// Operation is an accepted long-running ARM operation.
type Operation interface {
	Done() bool
	ResumeToken() (string, error)
	Wait(ctx context.Context) error
}

type ClusterOperation interface {
	Done() bool
	ResumeToken() (string, error)
	Wait(ctx context.Context) (*model.ManagedCluster, error)
}

type AgentPoolOperation interface {
	Done() bool
	ResumeToken() (string, error)
	Wait(ctx context.Context) (*model.AgentPoolProfile, error)
}

type TrustedAccessRoleBindingOperation interface {
	Done() bool
	ResumeToken() (string, error)
	Wait(ctx context.Context) (*model.TrustedAccessRoleBinding, error)
}

// pollerOperation adapts an SDK poller, converting its final response.
type pollerOperation[T, R any] struct {
	poller    *runtime.Poller[T]
	frequency time.Duration
	convert   func(T) (R, error)
}

func newPollerOperation[T, R any](p *runtime.Poller[T], frequency time.Duration, convert func(T) (R, error)) *pollerOperation[T, R] {
	return &pollerOperation[T, R]{poller: p, frequency: frequency, convert: convert}
}

func (o *pollerOperation[T, R]) Done() bool {
	return o.poller.Done()
}

func (o *pollerOperation[T, R]) ResumeToken() (string, error) {
	return o.poller.ResumeToken()
}

func (o *pollerOperation[T, R]) Wait(ctx context.Context) (R, error) {
	resp, err := o.poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{
		Frequency: o.frequency,
	})
	if err != nil {
		var zero R
		return zero, wrapError(err)
	}
	return o.convert(resp)
}

type emptyOperation[T any] struct {
	*pollerOperation[T, struct{}]
}

func newEmptyOperation[T any](p *runtime.Poller[T], frequency time.Duration) *emptyOperation[T] {
	return &emptyOperation[T]{
		pollerOperation: newPollerOperation(p, frequency, func(T) (struct{}, error) { return struct{}{}, nil }),
	}
}

func (o *emptyOperation[T]) Wait(ctx context.Context) error {
	_, err := o.pollerOperation.Wait(ctx)
	return err
}
