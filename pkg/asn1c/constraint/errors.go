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
package constraint

import (
	"fmt"
	"strings"
)

// ErrorKind classifies the errors which can arise when compiling constraints.
type ErrorKind uint8

const (
	// UNSUPPORTED indicates a constraint element (or combination of elements)
	// which is not supported for the type being constrained.
	UNSUPPORTED ErrorKind = iota
	// SEMANTIC indicates a constraint which is well formed, but meaningless.
	// For example, a constraint which excludes all values, or which excludes a
	// value not permitted by its parent.
	SEMANTIC
	// INTERNAL indicates a bug in the compiler itself.
	INTERNAL
)

func (k ErrorKind) String() string {
	switch k {
	case UNSUPPORTED:
		return "unsupported"
	case SEMANTIC:
		return "semantic"
	case INTERNAL:
		return "internal"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// CompileError describes a failure to compile the constraint of a given type.
type CompileError struct {
	Kind ErrorKind
	// Name of the type being compiled
	Type string
	// Kind of constraint element responsible, if known.
	Element string
	// Description of the error.
	Msg string
}

func (p *CompileError) Error() string {
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("%s error", p.Kind.String()))
	//
	if p.Type != "" {
		builder.WriteString(fmt.Sprintf(" in %s", p.Type))
	}
	//
	if p.Element != "" {
		builder.WriteString(fmt.Sprintf(" (%s)", p.Element))
	}
	//
	builder.WriteString(": ")
	builder.WriteString(p.Msg)
	//
	return builder.String()
}

// Unsupported constructs an error for an element kind which is not supported
// by the given type.
func Unsupported(t *CompiledType, element string, format string, args ...any) *CompileError {
	return &CompileError{UNSUPPORTED, typeName(t), element, fmt.Sprintf(format, args...)}
}

// Semantic constructs an error for a meaningless constraint on the given type.
func Semantic(t *CompiledType, format string, args ...any) *CompileError {
	return &CompileError{SEMANTIC, typeName(t), "", fmt.Sprintf(format, args...)}
}

// Internal constructs an error for an internal failure whilst compiling the
// given type.
func Internal(t *CompiledType, format string, args ...any) *CompileError {
	return &CompileError{INTERNAL, typeName(t), "", fmt.Sprintf(format, args...)}
}

// IllegalStateError signals that an internal invariant of the compiler does
// not hold.  This is never caused by user input.
type IllegalStateError struct {
	Msg string
}

func (p *IllegalStateError) Error() string {
	return "illegal compiler state: " + p.Msg
}

// IllegalState panics with an IllegalStateError.
func IllegalState(format string, args ...any) {
	panic(&IllegalStateError{fmt.Sprintf(format, args...)})
}

func typeName(t *CompiledType) string {
	if t == nil {
		return ""
	}
	//
	return t.Name
}
