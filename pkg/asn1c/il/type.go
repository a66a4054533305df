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
package il

import "fmt"

// Type identifies the type of an IL value, variable or function result.
type Type uint8

const (
	// VOID is the type of functions returning nothing.
	VOID Type = iota
	// BOOLEAN values (bool).
	BOOLEAN
	// INTEGER values (int64).
	INTEGER
	// NULL values (nil).
	NULL
	// BIT_STRING values (encoding/asn1.BitString).
	BIT_STRING
	// OCTETS values ([]byte).
	OCTETS
	// STRING values (string).
	STRING
	// OID values ([]int64).
	OID
	// IRI values ([]string).
	IRI
	// STRUCT values (Struct or Choice).
	STRUCT
	// LIST values ([]any).
	LIST
	// SET literals, which are lists of values used for membership tests.
	SET
	// RANGES literals, which are lists of inclusive code point ranges.
	RANGES
)

func (t Type) String() string {
	switch t {
	case VOID:
		return "void"
	case BOOLEAN:
		return "bool"
	case INTEGER:
		return "int"
	case NULL:
		return "null"
	case BIT_STRING:
		return "bits"
	case OCTETS:
		return "bytes"
	case STRING:
		return "string"
	case OID:
		return "oid"
	case IRI:
		return "iri"
	case STRUCT:
		return "struct"
	case LIST:
		return "list"
	case SET:
		return "set"
	case RANGES:
		return "ranges"
	default:
		return fmt.Sprintf("type(%d)", t)
	}
}

// Visibility determines the visibility of a generated function.
type Visibility uint8

const (
	// PRIVATE functions are only visible within the generated class.
	PRIVATE Visibility = iota
	// PROTECTED functions are visible to subclasses.
	PROTECTED
	// PUBLIC functions are visible everywhere.
	PUBLIC
)

func (v Visibility) String() string {
	switch v {
	case PUBLIC:
		return "public"
	case PROTECTED:
		return "protected"
	default:
		return "private"
	}
}
