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

// TypeKind identifies the family of a given ASN.1 type.
type TypeKind uint8

const (
	// INTEGER type
	INTEGER TypeKind = iota
	// BOOLEAN type
	BOOLEAN
	// NULL type
	NULL
	// BIT_STRING type
	BIT_STRING
	// OCTET_STRING type
	OCTET_STRING
	// CHARACTER_STRING covers all restricted character string types (see
	// StringKind).
	CHARACTER_STRING
	// OBJECT_IDENTIFIER type
	OBJECT_IDENTIFIER
	// RELATIVE_OID type
	RELATIVE_OID
	// OID_IRI type
	OID_IRI
	// RELATIVE_OID_IRI type
	RELATIVE_OID_IRI
	// ENUMERATED type
	ENUMERATED
	// CHOICE type
	CHOICE
	// SEQUENCE type
	SEQUENCE
	// SET type
	SET
	// SEQUENCE_OF type
	SEQUENCE_OF
	// SET_OF type
	SET_OF
	// REFERENCE identifies a reference to a named type.
	REFERENCE
)

func (k TypeKind) String() string {
	switch k {
	case INTEGER:
		return "INTEGER"
	case BOOLEAN:
		return "BOOLEAN"
	case NULL:
		return "NULL"
	case BIT_STRING:
		return "BIT STRING"
	case OCTET_STRING:
		return "OCTET STRING"
	case CHARACTER_STRING:
		return "CharacterString"
	case OBJECT_IDENTIFIER:
		return "OBJECT IDENTIFIER"
	case RELATIVE_OID:
		return "RELATIVE-OID"
	case OID_IRI:
		return "OID-IRI"
	case RELATIVE_OID_IRI:
		return "RELATIVE-OID-IRI"
	case ENUMERATED:
		return "ENUMERATED"
	case CHOICE:
		return "CHOICE"
	case SEQUENCE:
		return "SEQUENCE"
	case SET:
		return "SET"
	case SEQUENCE_OF:
		return "SEQUENCE OF"
	case SET_OF:
		return "SET OF"
	case REFERENCE:
		return "reference"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Type represents an ASN.1 type together with any subtype constraints written
// directly against it.
type Type interface {
	// Kind returns the family of this type.
	Kind() TypeKind
	// Constraints returns the subtype constraints juxtaposed on this type, in
	// the order written.
	Constraints() []*SubtypeConstraint
	// String returns a human readable form of this type.
	String() string
}

// Subtypes holds the constraints written against a type.  This is embedded in
// every concrete type.
type Subtypes struct {
	Subtypes []*SubtypeConstraint
}

// Constraints implementation for the Type interface.
func (p *Subtypes) Constraints() []*SubtypeConstraint {
	return p.Subtypes
}

func (p *Subtypes) constraintsString() string {
	var builder strings.Builder
	//
	for _, c := range p.Subtypes {
		builder.WriteString(" ")
		builder.WriteString(c.String())
	}
	//
	return builder.String()
}

// NamedNumber associates an identifier with a number, as used for named
// numbers of INTEGER, named bits of BIT STRING and items of ENUMERATED.
type NamedNumber struct {
	Name   string
	Number int64
}

// IntegerType represents the INTEGER type.
type IntegerType struct {
	Subtypes
	NamedNumbers []NamedNumber
}

// Kind implementation for the Type interface.
func (p *IntegerType) Kind() TypeKind { return INTEGER }

func (p *IntegerType) String() string { return "INTEGER" + p.constraintsString() }

// BooleanType represents the BOOLEAN type.
type BooleanType struct {
	Subtypes
}

// Kind implementation for the Type interface.
func (p *BooleanType) Kind() TypeKind { return BOOLEAN }

func (p *BooleanType) String() string { return "BOOLEAN" + p.constraintsString() }

// NullType represents the NULL type.
type NullType struct {
	Subtypes
}

// Kind implementation for the Type interface.
func (p *NullType) Kind() TypeKind { return NULL }

func (p *NullType) String() string { return "NULL" + p.constraintsString() }

// BitStringType represents the BIT STRING type.
type BitStringType struct {
	Subtypes
	NamedBits []NamedNumber
}

// Kind implementation for the Type interface.
func (p *BitStringType) Kind() TypeKind { return BIT_STRING }

func (p *BitStringType) String() string { return "BIT STRING" + p.constraintsString() }

// OctetStringType represents the OCTET STRING type.
type OctetStringType struct {
	Subtypes
}

// Kind implementation for the Type interface.
func (p *OctetStringType) Kind() TypeKind { return OCTET_STRING }

func (p *OctetStringType) String() string { return "OCTET STRING" + p.constraintsString() }

// CharacterStringType represents one of the restricted character string types.
type CharacterStringType struct {
	Subtypes
	StringKind StringKind
}

// Kind implementation for the Type interface.
func (p *CharacterStringType) Kind() TypeKind { return CHARACTER_STRING }

func (p *CharacterStringType) String() string { return p.StringKind.String() + p.constraintsString() }

// ObjectIdentifierType represents the OBJECT IDENTIFIER and RELATIVE-OID types.
type ObjectIdentifierType struct {
	Subtypes
	Relative bool
}

// Kind implementation for the Type interface.
func (p *ObjectIdentifierType) Kind() TypeKind {
	if p.Relative {
		return RELATIVE_OID
	}
	//
	return OBJECT_IDENTIFIER
}

func (p *ObjectIdentifierType) String() string { return p.Kind().String() + p.constraintsString() }

// IRIType represents the OID-IRI and RELATIVE-OID-IRI types.
type IRIType struct {
	Subtypes
	Relative bool
}

// Kind implementation for the Type interface.
func (p *IRIType) Kind() TypeKind {
	if p.Relative {
		return RELATIVE_OID_IRI
	}
	//
	return OID_IRI
}

func (p *IRIType) String() string { return p.Kind().String() + p.constraintsString() }

// EnumeratedType represents the ENUMERATED type.
type EnumeratedType struct {
	Subtypes
	// Root enumeration items
	Items []NamedNumber
	// Extension additions (only when Extensible)
	Additions []NamedNumber
	// Extensible indicates an extension marker is present.
	Extensible bool
}

// Kind implementation for the Type interface.
func (p *EnumeratedType) Kind() TypeKind { return ENUMERATED }

func (p *EnumeratedType) String() string { return "ENUMERATED" + p.constraintsString() }

// AllItems returns the root items followed by the extension additions.
func (p *EnumeratedType) AllItems() []NamedNumber {
	items := make([]NamedNumber, 0, len(p.Items)+len(p.Additions))
	items = append(items, p.Items...)
	//
	return append(items, p.Additions...)
}

// Component represents a named component of a SEQUENCE or SET, or a named
// alternative of a CHOICE.
type Component struct {
	Name     string
	Type     Type
	Optional bool
	// Default value, or nil if none.
	Default Value
}

// ChoiceType represents the CHOICE type.
type ChoiceType struct {
	Subtypes
	Alternatives []*Component
	Extensible   bool
}

// Kind implementation for the Type interface.
func (p *ChoiceType) Kind() TypeKind { return CHOICE }

func (p *ChoiceType) String() string { return "CHOICE" + p.constraintsString() }

// CollectionType represents the SEQUENCE and SET types.
type CollectionType struct {
	Subtypes
	Set        bool
	Components []*Component
	Extensible bool
}

// Kind implementation for the Type interface.
func (p *CollectionType) Kind() TypeKind {
	if p.Set {
		return SET
	}
	//
	return SEQUENCE
}

func (p *CollectionType) String() string { return p.Kind().String() + p.constraintsString() }

// CollectionOfType represents the SEQUENCE OF and SET OF types.  Constraints
// written between the keywords (e.g. SEQUENCE SIZE(1..5) OF) are held as
// subtypes of the collection.
type CollectionOfType struct {
	Subtypes
	Set     bool
	Element Type
}

// Kind implementation for the Type interface.
func (p *CollectionOfType) Kind() TypeKind {
	if p.Set {
		return SET_OF
	}
	//
	return SEQUENCE_OF
}

func (p *CollectionOfType) String() string {
	return fmt.Sprintf("%s%s %s", p.Kind().String(), p.constraintsString(), p.Element.String())
}

// TypeReference represents a reference to a type assignment.
type TypeReference struct {
	Subtypes
	Name string
}

// Kind implementation for the Type interface.
func (p *TypeReference) Kind() TypeKind { return REFERENCE }

func (p *TypeReference) String() string { return p.Name + p.constraintsString() }

// FindComponent returns the named component from a list of components, or nil
// if no such component exists.
func FindComponent(components []*Component, name string) *Component {
	for _, c := range components {
		if c.Name == name {
			return c
		}
	}
	//
	return nil
}
