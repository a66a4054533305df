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

	"github.com/consensys/go-asn1c/pkg/util/math"
)

// StringKind identifies one of the restricted character string types.
type StringKind uint8

const (
	// VISIBLE_STRING (also ISO646String)
	VISIBLE_STRING StringKind = iota
	// IA5_STRING type
	IA5_STRING
	// PRINTABLE_STRING type
	PRINTABLE_STRING
	// NUMERIC_STRING type
	NUMERIC_STRING
	// UTF8_STRING type
	UTF8_STRING
	// BMP_STRING type
	BMP_STRING
	// UNIVERSAL_STRING type
	UNIVERSAL_STRING
	// TELETEX_STRING (also T61String)
	TELETEX_STRING
	// VIDEOTEX_STRING type
	VIDEOTEX_STRING
	// GRAPHIC_STRING type
	GRAPHIC_STRING
	// GENERAL_STRING type
	GENERAL_STRING
)

var stringKindNames = []string{
	"VisibleString", "IA5String", "PrintableString", "NumericString", "UTF8String", "BMPString",
	"UniversalString", "TeletexString", "VideotexString", "GraphicString", "GeneralString",
}

func (k StringKind) String() string {
	if int(k) < len(stringKindNames) {
		return stringKindNames[k]
	}
	//
	return fmt.Sprintf("string(%d)", k)
}

// ParseStringKind returns the string kind corresponding to a given type name,
// including the aliases ISO646String and T61String.
func ParseStringKind(name string) (StringKind, bool) {
	switch name {
	case "ISO646String":
		return VISIBLE_STRING, true
	case "T61String":
		return TELETEX_STRING, true
	}
	//
	for i, n := range stringKindNames {
		if n == name {
			return StringKind(i), true
		}
	}
	//
	return 0, false
}

// Alphabet returns the canonical code point ranges which make up the character
// universe of this string kind.  Kinds whose repertoire is defined by external
// registers (Teletex, Videotex, Graphic, General) are approximated by the whole
// of Unicode.
func (k StringKind) Alphabet() []math.Range {
	switch k {
	case VISIBLE_STRING:
		return []math.Range{{Lower: 0x20, Upper: 0x7e}}
	case IA5_STRING:
		return []math.Range{{Lower: 0x00, Upper: 0x7f}}
	case NUMERIC_STRING:
		return []math.Range{{Lower: ' ', Upper: ' '}, {Lower: '0', Upper: '9'}}
	case PRINTABLE_STRING:
		return math.Canonicalize([]math.Range{
			math.Point(' '), math.Point('\''), {Lower: '(', Upper: ')'}, {Lower: '+', Upper: '/'},
			{Lower: '0', Upper: '9'}, math.Point(':'), math.Point('='), math.Point('?'),
			{Lower: 'A', Upper: 'Z'}, {Lower: 'a', Upper: 'z'},
		})
	case BMP_STRING:
		return []math.Range{{Lower: 0, Upper: 0xffff}}
	default:
		return []math.Range{{Lower: 0, Upper: 0x10ffff}}
	}
}
