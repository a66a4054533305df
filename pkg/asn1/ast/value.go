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
	"strconv"
	"strings"
)

// Value represents an ASN.1 value written in value notation.
type Value interface {
	// String returns this value in ASN.1 value notation.
	String() string
}

// IntegerValue represents a number.
type IntegerValue struct {
	Value int64
}

func (p *IntegerValue) String() string { return strconv.FormatInt(p.Value, 10) }

// BooleanValue represents TRUE or FALSE.
type BooleanValue struct {
	Value bool
}

func (p *BooleanValue) String() string {
	if p.Value {
		return "TRUE"
	}
	//
	return "FALSE"
}

// NullValue represents NULL.
type NullValue struct{}

func (p *NullValue) String() string { return "NULL" }

// BinaryStringValue represents a bstring such as '0101'B.
type BinaryStringValue struct {
	Bits string
}

func (p *BinaryStringValue) String() string { return fmt.Sprintf("'%s'B", p.Bits) }

// HexStringValue represents an hstring such as 'AF'H.
type HexStringValue struct {
	Hex string
}

func (p *HexStringValue) String() string { return fmt.Sprintf("'%s'H", p.Hex) }

// NamedBitsValue represents a list of named bits, such as { read, write }.
type NamedBitsValue struct {
	Names []string
}

func (p *NamedBitsValue) String() string { return "{" + strings.Join(p.Names, ", ") + "}" }

// StringValue represents a cstring such as "abc".
type StringValue struct {
	Value string
}

func (p *StringValue) String() string { return strconv.Quote(p.Value) }

// OIDComponent represents one arc of an object identifier value.  An arc is
// written either as a number, a name, or name(number).
type OIDComponent struct {
	Name      string
	Number    int64
	HasNumber bool
}

func (p OIDComponent) String() string {
	switch {
	case p.Name != "" && p.HasNumber:
		return fmt.Sprintf("%s(%d)", p.Name, p.Number)
	case p.HasNumber:
		return strconv.FormatInt(p.Number, 10)
	default:
		return p.Name
	}
}

// ObjectIdentifierValue represents an OBJECT IDENTIFIER or RELATIVE-OID value.
type ObjectIdentifierValue struct {
	Components []OIDComponent
}

func (p *ObjectIdentifierValue) String() string {
	var parts = make([]string, len(p.Components))
	//
	for i, c := range p.Components {
		parts[i] = c.String()
	}
	//
	return "{ " + strings.Join(parts, " ") + " }"
}

// IRIValue represents an OID-IRI or RELATIVE-OID-IRI value, such as
// "/ISO/Registration_Authority".
type IRIValue struct {
	Value string
}

func (p *IRIValue) String() string { return strconv.Quote(p.Value) }

// Arcs splits this IRI into its arc labels, ignoring any leading separator.
func (p *IRIValue) Arcs() []string {
	trimmed := strings.TrimPrefix(p.Value, "/")
	//
	if trimmed == "" {
		return nil
	}
	//
	return strings.Split(trimmed, "/")
}

// DefinedValue represents a reference to a value assignment, a named number,
// a named bit or an enumeration item.
type DefinedValue struct {
	Name string
}

func (p *DefinedValue) String() string { return p.Name }
