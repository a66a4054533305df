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

import (
	"bytes"
	"encoding/asn1"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/consensys/go-asn1c/pkg/util/math"
)

// Struct is the runtime representation of SEQUENCE and SET values.  Absent
// components have no entry.
type Struct map[string]any

// Choice is the runtime representation of CHOICE values.
type Choice struct {
	Alternative string
	Value       any
}

// BitStringOf constructs a bit string from a sequence of '0' and '1'
// characters.
func BitStringOf(bits string) asn1.BitString {
	var data = make([]byte, (len(bits)+7)/8)
	//
	for i, c := range bits {
		if c == '1' {
			data[i/8] |= 0x80 >> (i % 8)
		}
	}
	//
	return asn1.BitString{Bytes: data, BitLength: len(bits)}
}

// BitsOf returns a bit string as a sequence of '0' and '1' characters.
func BitsOf(bs asn1.BitString) string {
	var builder strings.Builder
	//
	for i := 0; i < bs.BitLength; i++ {
		builder.WriteByte(byte('0' + bs.At(i)))
	}
	//
	return builder.String()
}

// Equal determines whether two runtime values are equal.
func Equal(lhs any, rhs any) bool {
	switch l := lhs.(type) {
	case nil:
		return rhs == nil
	case asn1.BitString:
		r, ok := rhs.(asn1.BitString)
		return ok && BitsOf(l) == BitsOf(r)
	case []byte:
		r, ok := rhs.([]byte)
		return ok && bytes.Equal(l, r)
	case []int64:
		r, ok := rhs.([]int64)
		return ok && slices.Equal(l, r)
	case []string:
		r, ok := rhs.([]string)
		return ok && slices.Equal(l, r)
	case int:
		return Equal(int64(l), rhs)
	case int64:
		switch r := rhs.(type) {
		case int:
			return l == int64(r)
		case int64:
			return l == r
		}
		//
		return false
	case bool, string:
		return lhs == rhs
	default:
		return false
	}
}

// Length returns the length of a runtime value: characters for strings, bits
// for bit strings, octets for octet strings and elements for lists.
func Length(value any) (int64, error) {
	switch v := value.(type) {
	case string:
		return int64(utf8.RuneCountInString(v)), nil
	case []byte:
		return int64(len(v)), nil
	case asn1.BitString:
		return int64(v.BitLength), nil
	case []any:
		return int64(len(v)), nil
	default:
		return 0, fmt.Errorf("value %v has no length", value)
	}
}

func formatValue(t Type, value any) string {
	switch t {
	case NULL:
		return "null"
	case BOOLEAN:
		return fmt.Sprintf("%t", value)
	case INTEGER:
		return strconv.FormatInt(value.(int64), 10)
	case STRING:
		return strconv.Quote(value.(string))
	case OCTETS:
		return fmt.Sprintf("'%X'H", value.([]byte))
	case BIT_STRING:
		return fmt.Sprintf("'%s'B", BitsOf(value.(asn1.BitString)))
	case OID:
		var arcs []string
		//
		for _, arc := range value.([]int64) {
			arcs = append(arcs, strconv.FormatInt(arc, 10))
		}
		//
		return "{" + strings.Join(arcs, " ") + "}"
	case IRI:
		return strconv.Quote("/" + strings.Join(value.([]string), "/"))
	case SET:
		var items []string
		//
		for _, item := range value.([]*Value) {
			items = append(items, item.String())
		}
		//
		return "{" + strings.Join(items, ", ") + "}"
	case RANGES:
		var items []string
		//
		for _, r := range value.([]math.Range) {
			items = append(items, r.String())
		}
		//
		return "[" + strings.Join(items, ", ") + "]"
	default:
		return fmt.Sprintf("%v", value)
	}
}
