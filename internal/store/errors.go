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
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// RemoteError is a failed ARM call. Code is the ARM error code when the
// service returned one.
type RemoteError struct {
	StatusCode int
	Code       string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("remote call failed with status %d (%s)", e.StatusCode, e.Code)
	}
	return e.Err.Error()
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func wrapError(err error) error {
	if err == nil {
		return nil
	}
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return &RemoteError{StatusCode: respErr.StatusCode, Code: respErr.ErrorCode, Err: err}
	}
	return err
}

// UnknownRoleError is returned when a role name matches no role definition.
// It is a local lookup failure, not a propagation delay.
type UnknownRoleError struct {
	Role  string
	Scope string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("role %q doesn't exist at scope %s", e.Role, e.Scope)
}

// IsNotFound reports whether err is a remote 404.
func IsNotFound(err error) bool {
	var target *RemoteError
	return errors.As(err, &target) && target.StatusCode == http.StatusNotFound
}

// HasCode reports whether err is a remote error with one of the ARM codes.
func HasCode(err error, codes ...string) bool {
	var target *RemoteError
	if !errors.As(err, &target) {
		return false
	}
	for _, c := range codes {
		if target.Code == c {
			return true
		}
	}
	return false
}
