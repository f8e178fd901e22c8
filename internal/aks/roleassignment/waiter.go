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

package roleassignment

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/aks-cli-plugin-preview/internal/aks/model"
	"github.com/Azure/aks-cli-plugin-preview/internal/log"
	"github.com/Azure/aks-cli-plugin-preview/internal/store"
)

const (
	DefaultMaxAttempts  = 10
	DefaultInitialDelay = 2 * time.Second
)

// PropagationTimeoutError is returned when a role assignment change is still
// not visible after every attempt.
type PropagationTimeoutError struct {
	Action   string
	Request  model.RoleAssignmentRequest
	Attempts int
	Err      error
}

func (e *PropagationTimeoutError) Error() string {
	return fmt.Sprintf("timed out waiting for role assignment %s of %q for %s at %s after %d attempts: %v",
		e.Action, e.Request.Role, e.Request.Principal, e.Request.Scope, e.Attempts, e.Err)
}

func (e *PropagationTimeoutError) Unwrap() error {
	return e.Err
}

// Waiter retries role assignment changes while Azure AD propagates the
// principal and the assignment.
type Waiter struct {
	MaxAttempts  int
	InitialDelay time.Duration

	deleter store.RoleAssignmentDeleter
	creator store.RoleAssignmentCreator
	sleep   func(ctx context.Context, d time.Duration) error
}

type WaiterOption func(*Waiter)

// WithSleeper replaces the pause between attempts.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) WaiterOption {
	return func(w *Waiter) {
		w.sleep = sleep
	}
}

func NewWaiter(deleter store.RoleAssignmentDeleter, creator store.RoleAssignmentCreator, opts ...WaiterOption) *Waiter {
	w := &Waiter{
		MaxAttempts:  DefaultMaxAttempts,
		InitialDelay: DefaultInitialDelay,
		deleter:      deleter,
		creator:      creator,
		sleep:        sleepContext,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WaitForDeletion deletes the matching role assignments, retrying while the
// assignment or its principal can't be found yet.
func (w *Waiter) WaitForDeletion(ctx context.Context, req model.RoleAssignmentRequest) error {
	log.Infoln("Waiting for AAD role to delete")
	err := w.retry(ctx, "deletion", req, func() error {
		return w.deleter.DeleteRoleAssignments(ctx, req)
	})
	if err == nil {
		log.Infoln("AAD role deletion done")
	}
	return err
}

// WaitForCreation creates the role assignment with the same retry schedule as
// WaitForDeletion.
func (w *Waiter) WaitForCreation(ctx context.Context, req model.RoleAssignmentRequest) (*model.RoleAssignment, error) {
	var created *model.RoleAssignment
	log.Infoln("Waiting for AAD role to propagate")
	err := w.retry(ctx, "creation", req, func() error {
		var err error
		created, err = w.creator.CreateRoleAssignment(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Infoln("AAD role propagation done")
	return created, nil
}

func (w *Waiter) retry(ctx context.Context, action string, req model.RoleAssignmentRequest, fn func() error) error {
	attempts := w.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isPropagationError(lastErr) {
			return lastErr
		}
		log.Debugf("role assignment %s attempt %d/%d: %v\n", action, attempt+1, attempts, lastErr)
		if err := w.sleep(ctx, w.delay(attempt)); err != nil {
			return err
		}
	}
	return &PropagationTimeoutError{Action: action, Request: req, Attempts: attempts, Err: lastErr}
}

// delay grows linearly: InitialDelay, 2*InitialDelay, 3*InitialDelay...
func (w *Waiter) delay(attempt int) time.Duration {
	return w.InitialDelay + w.InitialDelay*time.Duration(attempt)
}

// isPropagationError reports whether err is the not-found family Azure
// returns until a principal or assignment has replicated.
func isPropagationError(err error) bool {
	return store.IsNotFound(err) ||
		store.HasCode(err, store.RoleAssignmentNotFound, store.PrincipalNotFound, store.RoleDefinitionDoesNotExist)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
