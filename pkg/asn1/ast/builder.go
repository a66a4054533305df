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
package ast

// Int constructs an integer value.
func Int(value int64) *IntegerValue {
	return &IntegerValue{value}
}

// Str constructs a character string value.
func Str(value string) *StringValue {
	return &StringValue{value}
}

// Ref constructs a defined value.
func Ref(name string) *DefinedValue {
	return &DefinedValue{name}
}

// Single constructs a single value constraint.
func Single(value Value) *SingleValueConstraint {
	return &SingleValueConstraint{value}
}

// At constructs an inclusive endpoint at a given value.
func At(value Value) EndpointNode {
	return EndpointNode{Kind: VALUE, Value: value}
}

// Above constructs an exclusive lower endpoint at a given value (v<..).
func Above(value Value) EndpointNode {
	return EndpointNode{Kind: VALUE, Value: value, Exclusive: true}
}

// Below constructs an exclusive upper endpoint at a given value (..<v).
func Below(value Value) EndpointNode {
	return EndpointNode{Kind: VALUE, Value: value, Exclusive: true}
}

// Min constructs the MIN endpoint.
func Min() EndpointNode {
	return EndpointNode{Kind: MIN}
}

// Max constructs the MAX endpoint.
func Max() EndpointNode {
	return EndpointNode{Kind: MAX}
}

// Between constructs a range between two endpoints.
func Between(lower EndpointNode, upper EndpointNode) *RangeNode {
	return &RangeNode{lower, upper}
}

// IntRange constructs an inclusive range between two integers.
func IntRange(lower int64, upper int64) *RangeNode {
	return &RangeNode{At(Int(lower)), At(Int(upper))}
}

// Union constructs the union of one or more elements.
func Union(operands ...Elements) *ElementSet {
	return &ElementSet{UNION, operands}
}

// Intersection constructs the intersection of one or more elements.
func Intersection(operands ...Elements) *ElementSet {
	return &ElementSet{INTERSECTION, operands}
}

// Except constructs lhs EXCEPT rhs.
func Except(lhs Elements, rhs Elements) *ElementSet {
	return &ElementSet{EXCLUDE, []Elements{lhs, rhs}}
}

// AllExcept constructs ALL EXCEPT operand.
func AllExcept(operand Elements) *ElementSet {
	return &ElementSet{ALL, []Elements{operand}}
}

// Size constructs a size constraint.
func Size(root Elements) *SizeConstraint {
	return &SizeConstraint{Spec(root)}
}

// From constructs a permitted alphabet constraint.
func From(root Elements) *PermittedAlphabetConstraint {
	return &PermittedAlphabetConstraint{Spec(root)}
}

// Includes constructs a contained subtype constraint.
func Includes(t Type) *ContainedSubtype {
	return &ContainedSubtype{t, true}
}

// WithComponent constructs an inner type constraint on collection elements.
func WithComponent(root Elements) *SingleTypeConstraint {
	return &SingleTypeConstraint{Spec(root)}
}

// WithComponents constructs an inner type constraint on named components.
func WithComponents(partial bool, components ...*NamedConstraint) *MultipleTypeConstraints {
	return &MultipleTypeConstraints{partial, components}
}

// Spec constructs a non-extensible set specification.
func Spec(root Elements) *SetSpecs {
	return &SetSpecs{Root: root}
}

// ExtensibleSpec constructs an extensible set specification with optional
// additions (which may be nil).
func ExtensibleSpec(root Elements, additions Elements) *SetSpecs {
	return &SetSpecs{Root: root, Extensible: true, Additions: additions}
}

// Constrain constructs a subtype constraint from a root element set.
func Constrain(root Elements) *SubtypeConstraint {
	return &SubtypeConstraint{Spec(root)}
}
