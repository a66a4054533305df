// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package math

import "golang.org/x/exp/constraints"

// Succ returns the successor of a given value, provided this does not exceed
// the given ceiling.  The second return is false when no successor exists.
func Succ[T constraints.Integer](value T, ceiling T) (T, bool) {
	if value >= ceiling {
		return value, false
	}
	//
	return value + 1, true
}

// Pred returns the predecessor of a given value, provided this does not go
// below the given floor.  The second return is false when no predecessor exists.
func Pred[T constraints.Integer](value T, floor T) (T, bool) {
	if value <= floor {
		return value, false
	}
	//
	return value - 1, true
}
