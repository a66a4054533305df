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
package asn1c

import (
	"github.com/consensys/go-asn1c/pkg/asn1c/constraint"
)

// DEFAULT_CACHE_SIZE is the default number of compiled types memoised by a
// context.
const DEFAULT_CACHE_SIZE = 1024

// Options determines how a context compiles types.
type Options struct {
	constraint.Config
	// CacheSize bounds the number of compiled types memoised between
	// compilations.
	CacheSize int
}

// DefaultOptions returns the options used when none are given: constraint
// trees are optimised, generated checks accept the values of extensions, and
// compiled types are memoised.
func DefaultOptions() Options {
	return Options{
		Config:    constraint.Config{Optimise: true, CheckExtensions: true},
		CacheSize: DEFAULT_CACHE_SIZE,
	}
}
