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
	"github.com/consensys/go-asn1c/pkg/asn1/ast"
)

// TypeResolver is the capability through which constraint compilation resolves
// the types and values it refers to.  Resolution may itself trigger the
// compilation of further constraints (e.g. for contained subtypes).
type TypeResolver interface {
	// Resolve returns the compiled form of a given type, following any type
	// references.
	Resolve(t ast.Type) (*CompiledType, error)
	// ResolveValue returns the value assignment with a given name.
	ResolveValue(name string) (*ast.ValueAssignment, error)
}

const (
	pending uint8 = iota
	compiling
	compiled
)

// CompiledType holds the metadata of a type needed for constraint
// compilation.  A type defined by reference to another (e.g. B ::= A (1..50))
// has the referenced type as its base, and its own constraints are applied
// serially to those of the base.
type CompiledType struct {
	// Name of this type, used for generated modules and error reporting.
	Name string
	// Type is the underlying (i.e. non-reference) type.
	Type ast.Type
	// Base is the type this type is derived from, or nil if none.
	Base *CompiledType
	// Constraints written directly against this type.
	Constraints []*ast.SubtypeConstraint
	// Memoised definition
	definition *Definition
	state      uint8
}

// NewCompiledType constructs a compiled type.
func NewCompiledType(name string, t ast.Type, base *CompiledType, constraints []*ast.SubtypeConstraint) *CompiledType {
	if t.Kind() == ast.REFERENCE {
		IllegalState("compiled type %s has unresolved underlying type %s", name, t.String())
	}
	//
	return &CompiledType{Name: name, Type: t, Base: base, Constraints: constraints}
}

// Kind returns the kind of the underlying type.
func (p *CompiledType) Kind() ast.TypeKind {
	return p.Type.Kind()
}

