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
package values

import (
	"encoding/hex"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/consensys/go-asn1c/pkg/asn1c/il"
	"github.com/consensys/go-asn1c/pkg/util/math"
)

// Bits is a BIT STRING value, held as a sequence of '0' and '1' characters.
// Trailing zero bits are significant.
type Bits string

// Cmp implementation for the Comparable interface.
func (p Bits) Cmp(other Bits) int { return strings.Compare(string(p), string(other)) }

// Size returns the number of bits.
func (p Bits) Size() int64 { return int64(len(p)) }

// Literal implementation for the Element interface.
func (p Bits) Literal() *il.Value { return il.Lit(il.BIT_STRING, il.BitStringOf(string(p))) }

func (p Bits) String() string { return "'" + string(p) + "'B" }

// Octets is an OCTET STRING value.  The underlying string holds raw bytes.
type Octets string

// Cmp implementation for the Comparable interface.
func (p Octets) Cmp(other Octets) int { return strings.Compare(string(p), string(other)) }

// Size returns the number of octets.
func (p Octets) Size() int64 { return int64(len(p)) }

// Literal implementation for the Element interface.
func (p Octets) Literal() *il.Value { return il.Lit(il.OCTETS, []byte(p)) }

func (p Octets) String() string { return "'" + strings.ToUpper(hex.EncodeToString([]byte(p))) + "'H" }

// Chars is a character string value.
type Chars string

// Cmp implementation for the Comparable interface.
func (p Chars) Cmp(other Chars) int { return strings.Compare(string(p), string(other)) }

// Size returns the number of characters.
func (p Chars) Size() int64 { return int64(utf8.RuneCountInString(string(p))) }

// Within checks whether every character lies within the given code point
// ranges.
func (p Chars) Within(alphabet []math.Range) bool {
	for _, c := range string(p) {
		if !math.Contains(alphabet, int64(c)) {
			return false
		}
	}
	//
	return true
}

// Literal implementation for the Element interface.
func (p Chars) Literal() *il.Value { return il.Lit(il.STRING, string(p)) }

func (p Chars) String() string { return strconv.Quote(string(p)) }

// OID is an OBJECT IDENTIFIER or RELATIVE-OID value, held as its arcs.
type OID []int64

// Cmp implementation for the Comparable interface.
func (p OID) Cmp(other OID) int { return slices.Compare(p, other) }

// Literal implementation for the Element interface.
func (p OID) Literal() *il.Value { return il.Lit(il.OID, []int64(p)) }

func (p OID) String() string {
	var arcs = make([]string, len(p))
	//
	for i, arc := range p {
		arcs[i] = strconv.FormatInt(arc, 10)
	}
	//
	return "{ " + strings.Join(arcs, " ") + " }"
}

// IRI is an OID-IRI or RELATIVE-OID-IRI value, held as its arc labels.
type IRI []string

// Cmp implementation for the Comparable interface.
func (p IRI) Cmp(other IRI) int { return slices.Compare(p, other) }

// Literal implementation for the Element interface.
func (p IRI) Literal() *il.Value { return il.Lit(il.IRI, []string(p)) }

func (p IRI) String() string { return strconv.Quote("/" + strings.Join(p, "/")) }
