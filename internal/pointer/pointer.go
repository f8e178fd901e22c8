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

package pointer

func Get[T any](val T) *T {
	return &val
}

// GetOrDefault returns the value pointed to by ptr, or defaultValue when ptr is nil.
func GetOrDefault[T any](ptr *T, defaultValue T) T {
	if ptr != nil {
		return *ptr
	}
	return defaultValue
}

// GetNonZeroValue returns a pointer to val, or nil when val is the zero value.
func GetNonZeroValue[T comparable](val T) *T {
	var zero T
	if val == zero {
		return nil
	}
	return &val
}
