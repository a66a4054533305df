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
package schema

import (
	"github.com/segmentio/encoding/json"
)

// The JSON encoding of a module mirrors the AST.  Each kind of type, value and
// constraint element is an object distinguished by which of its (optional)
// fields is set.

// Module is the JSON encoding of an ASN.1 module.
type Module struct {
	Name   string   `json:"name"`
	Types  []Assign `json:"types"`
	Values []Assign `json:"values"`
}

// Assign is the JSON encoding of a type or value assignment.
type Assign struct {
	Name  string `json:"name"`
	Type  *Type  `json:"type"`
	Value *Value `json:"value,omitempty"`
}

// Type is the JSON encoding of a type.  Kind holds the ASN.1 name of the type
// (e.g. "INTEGER", "SEQUENCE OF", "VisibleString"), or is empty for a
// reference.
type Type struct {
	Kind        string      `json:"kind,omitempty"`
	Ref         string      `json:"ref,omitempty"`
	Named       []Named     `json:"named,omitempty"`
	Items       []Named     `json:"items,omitempty"`
	Additions   []Named     `json:"additions,omitempty"`
	Components  []Component `json:"components,omitempty"`
	Element     *Type       `json:"element,omitempty"`
	Extensible  bool        `json:"extensible,omitempty"`
	Constraints []*SetSpecs `json:"constraints,omitempty"`
}

// Named is the JSON encoding of a named number, named bit or enumeration
// item.
type Named struct {
	Name   string `json:"name"`
	Number int64  `json:"number"`
}

// Component is the JSON encoding of a component of a SEQUENCE or SET, or an
// alternative of a CHOICE.
type Component struct {
	Name     string `json:"name"`
	Type     *Type  `json:"type"`
	Optional bool   `json:"optional,omitempty"`
	Default  *Value `json:"default,omitempty"`
}

// SetSpecs is the JSON encoding of a (possibly extensible) element set.
type SetSpecs struct {
	Root       *Element `json:"root"`
	Extensible bool     `json:"extensible,omitempty"`
	Additions  *Element `json:"additions,omitempty"`
}

// Element is the JSON encoding of a constraint element.
type Element struct {
	Value          *Value          `json:"value,omitempty"`
	Range          *Range          `json:"range,omitempty"`
	Union          []*Element      `json:"union,omitempty"`
	Intersection   []*Element      `json:"intersection,omitempty"`
	Except         []*Element      `json:"except,omitempty"`
	AllExcept      *Element        `json:"allExcept,omitempty"`
	Size           *SetSpecs       `json:"size,omitempty"`
	From           *SetSpecs       `json:"from,omitempty"`
	Includes       *Type           `json:"includes,omitempty"`
	WithComponent  *SetSpecs       `json:"withComponent,omitempty"`
	WithComponents *WithComponents `json:"withComponents,omitempty"`
	Pattern        *Value          `json:"pattern,omitempty"`
	Containing     *Type           `json:"containing,omitempty"`
}

// Range is the JSON encoding of a value range.
type Range struct {
	Lower Endpoint `json:"lower"`
	Upper Endpoint `json:"upper"`
}

// Endpoint is the JSON encoding of one end of a value range.  An endpoint
// without a value is MIN (for a lower bound) or MAX (for an upper bound).
type Endpoint struct {
	Value     *Value `json:"value,omitempty"`
	Exclusive bool   `json:"exclusive,omitempty"`
}

// WithComponents is the JSON encoding of a WITH COMPONENTS constraint.
type WithComponents struct {
	Partial    bool              `json:"partial,omitempty"`
	Components []NamedConstraint `json:"components"`
}

// NamedConstraint is the JSON encoding of a constraint on one component.
type NamedConstraint struct {
	Name     string    `json:"name"`
	Value    *SetSpecs `json:"value,omitempty"`
	Presence string    `json:"presence,omitempty"`
}

// Value is the JSON encoding of a value.
type Value struct {
	Integer *int64         `json:"integer,omitempty"`
	Boolean *bool          `json:"boolean,omitempty"`
	Null    bool           `json:"null,omitempty"`
	BString *string        `json:"bstring,omitempty"`
	HString *string        `json:"hstring,omitempty"`
	Bits    []string       `json:"bits,omitempty"`
	String  *string        `json:"string,omitempty"`
	OID     []OIDComponent `json:"oid,omitempty"`
	IRI     *string        `json:"iri,omitempty"`
	Ref     string         `json:"ref,omitempty"`
}

// OIDComponent is the JSON encoding of one arc of an object identifier.
type OIDComponent struct {
	Name   string `json:"name,omitempty"`
	Number *int64 `json:"number,omitempty"`
}

// ParseModule reads a module from its JSON encoding.
func ParseModule(bytes []byte) (*Module, error) {
	var module Module
	//
	if err := json.Unmarshal(bytes, &module); err != nil {
		return nil, err
	}
	//
	return &module, nil
}
