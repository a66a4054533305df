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

import (
	"fmt"
	"strings"
)

// ElementKind identifies the kind of a constraint element.  Constraint
// compilers dispatch on this kind.
type ElementKind uint8

const (
	// ELEMENT_SET is a set operation over other elements (see SetOp).
	ELEMENT_SET ElementKind = iota
	// SINGLE_VALUE is a single value constraint.
	SINGLE_VALUE
	// VALUE_RANGE is a value range constraint.
	VALUE_RANGE
	// SIZE is a size constraint.
	SIZE
	// PERMITTED_ALPHABET is a permitted alphabet (FROM) constraint.
	PERMITTED_ALPHABET
	// CONTAINED_SUBTYPE is a contained subtype (INCLUDES) constraint.
	CONTAINED_SUBTYPE
	// SINGLE_TYPE is an inner type constraint on the elements of a collection
	// (WITH COMPONENT).
	SINGLE_TYPE
	// MULTIPLE_TYPE is an inner type constraint on the components of a
	// structured type (WITH COMPONENTS).
	MULTIPLE_TYPE
	// PATTERN is a pattern constraint.
	PATTERN
	// CONTENTS is a contents constraint (CONTAINING / ENCODED BY).
	CONTENTS
)

func (k ElementKind) String() string {
	switch k {
	case ELEMENT_SET:
		return "ElementSet"
	case SINGLE_VALUE:
		return "SingleValueConstraint"
	case VALUE_RANGE:
		return "RangeNode"
	case SIZE:
		return "SizeConstraint"
	case PERMITTED_ALPHABET:
		return "PermittedAlphabetConstraint"
	case CONTAINED_SUBTYPE:
		return "ContainedSubtype"
	case SINGLE_TYPE:
		return "SingleTypeConstraint"
	case MULTIPLE_TYPE:
		return "MultipleTypeConstraints"
	case PATTERN:
		return "PatternConstraint"
	case CONTENTS:
		return "ContentsConstraint"
	default:
		return fmt.Sprintf("element(%d)", k)
	}
}

// SubtypeConstraint represents one parenthesised constraint written against a
// type.  Several such constraints may be juxtaposed on the same type.
type SubtypeConstraint struct {
	Spec *SetSpecs
}

func (p *SubtypeConstraint) String() string {
	return fmt.Sprintf("(%s)", p.Spec.String())
}

// SetSpecs represents a root element set, optionally followed by an extension
// marker and additional elements.
type SetSpecs struct {
	Root Elements
	// Extensible indicates an extension marker ("...") is present.
	Extensible bool
	// Additions holds the additional elements following the extension marker,
	// or nil if there are none.
	Additions Elements
}

func (p *SetSpecs) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Root.String())
	//
	if p.Extensible {
		builder.WriteString(", ...")
	}
	//
	if p.Additions != nil {
		builder.WriteString(", ")
		builder.WriteString(p.Additions.String())
	}
	//
	return builder.String()
}

// Elements represents a node of an element set specification.
type Elements interface {
	// Kind determines the kind of this element.
	Kind() ElementKind
	// String returns a human readable form of this element.
	String() string
}

// SetOp identifies the operator of an ElementSet.
type SetOp uint8

const (
	// UNION of all operands.
	UNION SetOp = iota
	// INTERSECTION of all operands.
	INTERSECTION
	// EXCLUDE removes the second operand from the first.  With a single operand
	// this denotes ALL EXCEPT operand.
	EXCLUDE
	// ALL denotes the whole value universe of the type.  With a single operand
	// this denotes ALL EXCEPT operand.
	ALL
)

// ElementSet represents a set operation over a list of operands.
type ElementSet struct {
	Op       SetOp
	Operands []Elements
}

// Kind implementation for the Elements interface.
func (p *ElementSet) Kind() ElementKind { return ELEMENT_SET }

func (p *ElementSet) String() string {
	var (
		operator string
		operands = make([]string, len(p.Operands))
	)
	//
	for i, o := range p.Operands {
		operands[i] = o.String()
	}
	//
	switch p.Op {
	case UNION:
		operator = " | "
	case INTERSECTION:
		operator = " ^ "
	case EXCLUDE:
		if len(operands) == 1 {
			return "ALL EXCEPT " + operands[0]
		}
		//
		operator = " EXCEPT "
	case ALL:
		if len(operands) == 1 {
			return "ALL EXCEPT " + operands[0]
		}
		//
		return "ALL"
	}
	//
	return "(" + strings.Join(operands, operator) + ")"
}

// SingleValueConstraint represents a constraint permitting exactly one value.
type SingleValueConstraint struct {
	Value Value
}

// Kind implementation for the Elements interface.
func (p *SingleValueConstraint) Kind() ElementKind { return SINGLE_VALUE }

func (p *SingleValueConstraint) String() string { return p.Value.String() }

// EndpointKind identifies the form of a range endpoint.
type EndpointKind uint8

const (
	// VALUE endpoint given by an explicit value.
	VALUE EndpointKind = iota
	// MIN endpoint.
	MIN
	// MAX endpoint.
	MAX
)

// EndpointNode represents one end of a value range.
type EndpointNode struct {
	Kind EndpointKind
	// Value of this endpoint when Kind is VALUE.
	Value Value
	// Exclusive indicates this endpoint is written with "<".
	Exclusive bool
}

func (p *EndpointNode) String() string {
	switch p.Kind {
	case MIN:
		return "MIN"
	case MAX:
		return "MAX"
	default:
		return p.Value.String()
	}
}

// RangeNode represents a value range constraint.
type RangeNode struct {
	Lower EndpointNode
	Upper EndpointNode
}

// Kind implementation for the Elements interface.
func (p *RangeNode) Kind() ElementKind { return VALUE_RANGE }

func (p *RangeNode) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Lower.String())
	//
	if p.Lower.Exclusive {
		builder.WriteString("<")
	}
	//
	builder.WriteString("..")
	//
	if p.Upper.Exclusive {
		builder.WriteString("<")
	}
	//
	builder.WriteString(p.Upper.String())
	//
	return builder.String()
}

// SizeConstraint represents a SIZE constraint.
type SizeConstraint struct {
	Constraint *SetSpecs
}

// Kind implementation for the Elements interface.
func (p *SizeConstraint) Kind() ElementKind { return SIZE }

func (p *SizeConstraint) String() string { return fmt.Sprintf("SIZE(%s)", p.Constraint.String()) }

// PermittedAlphabetConstraint represents a permitted alphabet (FROM) constraint.
type PermittedAlphabetConstraint struct {
	Constraint *SetSpecs
}

// Kind implementation for the Elements interface.
func (p *PermittedAlphabetConstraint) Kind() ElementKind { return PERMITTED_ALPHABET }

func (p *PermittedAlphabetConstraint) String() string {
	return fmt.Sprintf("FROM(%s)", p.Constraint.String())
}

// ContainedSubtype represents a constraint which permits the values of another
// type.
type ContainedSubtype struct {
	Type Type
	// Includes indicates the INCLUDES keyword was written.
	Includes bool
}

// Kind implementation for the Elements interface.
func (p *ContainedSubtype) Kind() ElementKind { return CONTAINED_SUBTYPE }

func (p *ContainedSubtype) String() string {
	if p.Includes {
		return "INCLUDES " + p.Type.String()
	}
	//
	return p.Type.String()
}

// SingleTypeConstraint represents a WITH COMPONENT constraint, which constrains
// every element of a SEQUENCE OF or SET OF.
type SingleTypeConstraint struct {
	Constraint *SetSpecs
}

// Kind implementation for the Elements interface.
func (p *SingleTypeConstraint) Kind() ElementKind { return SINGLE_TYPE }

func (p *SingleTypeConstraint) String() string {
	return fmt.Sprintf("WITH COMPONENT (%s)", p.Constraint.String())
}

// Presence identifies the presence constraint of a named component.
type Presence uint8

const (
	// NO_PRESENCE indicates no presence constraint was given.
	NO_PRESENCE Presence = iota
	// PRESENT requires the component is present.
	PRESENT
	// ABSENT requires the component is absent.
	ABSENT
	// OPTIONAL permits the component to be present or absent.
	OPTIONAL
)

func (p Presence) String() string {
	switch p {
	case PRESENT:
		return "PRESENT"
	case ABSENT:
		return "ABSENT"
	case OPTIONAL:
		return "OPTIONAL"
	default:
		return ""
	}
}

// NamedConstraint constrains one named component within a WITH COMPONENTS
// constraint.
type NamedConstraint struct {
	Name string
	// Value constraint on the component, or nil if none.
	Value    *SetSpecs
	Presence Presence
}

func (p *NamedConstraint) String() string {
	var parts = []string{p.Name}
	//
	if p.Value != nil {
		parts = append(parts, fmt.Sprintf("(%s)", p.Value.String()))
	}
	//
	if p.Presence != NO_PRESENCE {
		parts = append(parts, p.Presence.String())
	}
	//
	return strings.Join(parts, " ")
}

// MultipleTypeConstraints represents a WITH COMPONENTS constraint.  A partial
// specification starts with "...", meaning unlisted components are left
// unconstrained.
type MultipleTypeConstraints struct {
	Partial    bool
	Components []*NamedConstraint
}

// Kind implementation for the Elements interface.
func (p *MultipleTypeConstraints) Kind() ElementKind { return MULTIPLE_TYPE }

func (p *MultipleTypeConstraints) String() string {
	var parts []string
	//
	if p.Partial {
		parts = append(parts, "...")
	}
	//
	for _, c := range p.Components {
		parts = append(parts, c.String())
	}
	//
	return fmt.Sprintf("WITH COMPONENTS {%s}", strings.Join(parts, ", "))
}

// PatternConstraint represents a PATTERN constraint.
type PatternConstraint struct {
	Pattern Value
}

// Kind implementation for the Elements interface.
func (p *PatternConstraint) Kind() ElementKind { return PATTERN }

func (p *PatternConstraint) String() string { return "PATTERN " + p.Pattern.String() }

// ContentsConstraint represents a CONTAINING constraint.
type ContentsConstraint struct {
	Type Type
}

// Kind implementation for the Elements interface.
func (p *ContentsConstraint) Kind() ElementKind { return CONTENTS }

func (p *ContentsConstraint) String() string { return "CONTAINING " + p.Type.String() }
