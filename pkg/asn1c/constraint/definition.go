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

import "fmt"

// Definition is the result of compiling the full constraint of a type.  The
// roots are the values permitted unconditionally, whilst the extensions are
// those additionally known to be permitted because the constraint is
// extensible.  Neither is ever nil: an absent set is represented by Empty().
// Definitions are immutable; combining two definitions always produces a new
// one.
type Definition struct {
	Roots      Node
	Extensions Node
	Extensible bool
}

// NewDefinition constructs a non-extensible definition with the given roots.
func NewDefinition(roots Node) *Definition {
	return &Definition{roots, Empty(), false}
}

// NewExtensibleDefinition constructs an extensible definition.
func NewExtensibleDefinition(roots Node, extensions Node) *Definition {
	return &Definition{roots, extensions, true}
}

// Unconstrained constructs the definition of a type without any constraint.
func Unconstrained() *Definition {
	return NewDefinition(All())
}

// Full returns the node permitting every value known to this definition,
// namely the roots and (if extensible) the extensions.
func (p *Definition) Full() Node {
	if !p.Extensible || IsEmpty(p.Extensions) {
		return p.Roots
	}
	//
	return BinOp(UNION, p.Roots, p.Extensions)
}

// Union combines two definitions such that the result permits the values of
// either.  The result is extensible if either is.
func (p *Definition) Union(other *Definition) *Definition {
	var (
		roots = BinOp(UNION, p.Roots, other.Roots)
		full  = BinOp(UNION, p.Full(), other.Full())
	)
	//
	return combine(roots, full, p.Extensible || other.Extensible)
}

// Intersection combines two definitions such that the result permits only the
// values of both.  The result is extensible only if both are.
func (p *Definition) Intersection(other *Definition) *Definition {
	var (
		roots = BinOp(INTERSECTION, p.Roots, other.Roots)
		full  = BinOp(INTERSECTION, p.Full(), other.Full())
	)
	//
	return combine(roots, full, p.Extensible && other.Extensible)
}

// SerialApplication applies a child constraint to a type already constrained
// by a parent.  Following X.680, the parent's extensibility is not inherited:
// the child's root values are restricted to everything the parent permits,
// and the result is extensible only if the child is.
func SerialApplication(parent *Definition, child *Definition) *Definition {
	var (
		roots = BinOp(INTERSECTION, parent.Full(), child.Roots)
		full  = BinOp(INTERSECTION, parent.Full(), child.Full())
	)
	//
	return combine(roots, full, child.Extensible)
}

func combine(roots Node, full Node, extensible bool) *Definition {
	if !extensible {
		return NewDefinition(roots)
	}
	//
	return NewExtensibleDefinition(roots, BinOp(INTERSECTION, full, Negate(roots)))
}

// Optimise returns a copy of this definition whose nodes have been optimised.
func (p *Definition) Optimise() (*Definition, error) {
	roots, err := Optimise(p.Roots)
	//
	if err != nil {
		return nil, err
	}
	//
	extensions, err := Optimise(p.Extensions)
	//
	if err != nil {
		return nil, err
	}
	//
	return &Definition{roots, extensions, p.Extensible}, nil
}

func (p *Definition) String() string {
	if p.Extensible {
		return fmt.Sprintf("%s, ..., %s", p.Roots.String(), p.Extensions.String())
	}
	//
	return p.Roots.String()
}
