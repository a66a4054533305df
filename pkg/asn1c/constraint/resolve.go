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

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/consensys/go-asn1c/pkg/asn1/ast"
	"github.com/consensys/go-asn1c/pkg/asn1c/constraint/values"
	"github.com/consensys/go-asn1c/pkg/util/math"
)

// MAX_REFERENCE_DEPTH bounds the length of a chain of value references, and the
// nesting of element types compared for contained subtypes.
const MAX_REFERENCE_DEPTH = 64

// dereference follows references to module values until a concrete value is
// reached.  Names local to the constrained type (e.g. named numbers) are tried
// first, using the given lookup (which may be nil).
func (c *elementCompiler) dereference(v ast.Value, local func(string) (ast.Value, bool)) (ast.Value, error) {
	for depth := 0; depth < MAX_REFERENCE_DEPTH; depth++ {
		ref, ok := v.(*ast.DefinedValue)
		//
		if !ok {
			return v, nil
		} else if local != nil {
			if value, ok := local(ref.Name); ok {
				return value, nil
			}
		}
		//
		assignment, err := c.compiler.resolver.ResolveValue(ref.Name)
		//
		if err != nil {
			return nil, err
		}
		//
		v = assignment.Value
	}
	//
	return nil, Semantic(c.ctype, "value %s cannot be resolved", v.String())
}

func namedNumber(named []ast.NamedNumber) func(string) (ast.Value, bool) {
	return func(name string) (ast.Value, bool) {
		for _, n := range named {
			if n.Name == name {
				return &ast.IntegerValue{Value: n.Number}, true
			}
		}
		//
		return nil, false
	}
}

func (c *elementCompiler) resolveInteger(v ast.Value) (int64, error) {
	var local func(string) (ast.Value, bool)
	//
	if t, ok := c.ctype.Type.(*ast.IntegerType); ok && c.family == c.compiler.families[ast.INTEGER] {
		local = namedNumber(t.NamedNumbers)
	}
	//
	v, err := c.dereference(v, local)
	//
	if err != nil {
		return 0, err
	} else if i, ok := v.(*ast.IntegerValue); ok {
		return i.Value, nil
	}
	//
	return 0, Semantic(c.ctype, "expected integer value, found %s", v.String())
}

// resolveItem resolves an enumeration item to its number.
func (c *elementCompiler) resolveItem(v ast.Value) (int64, error) {
	var t = c.ctype.Type.(*ast.EnumeratedType)
	//
	v, err := c.dereference(v, namedNumber(t.AllItems()))
	//
	if err != nil {
		return 0, err
	} else if i, ok := v.(*ast.IntegerValue); ok {
		return i.Value, nil
	}
	//
	return 0, Semantic(c.ctype, "expected enumeration item, found %s", v.String())
}

func (c *elementCompiler) resolveString(v ast.Value) (string, error) {
	v, err := c.dereference(v, nil)
	//
	if err != nil {
		return "", err
	}
	//
	str, ok := v.(*ast.StringValue)
	//
	if !ok {
		return "", Semantic(c.ctype, "expected character string, found %s", v.String())
	}
	// Check characters are drawn from the string type's character set
	if t, ok := c.ctype.Type.(*ast.CharacterStringType); ok {
		var alphabet = t.StringKind.Alphabet()
		//
		for _, ch := range str.Value {
			if !math.Contains(alphabet, int64(ch)) {
				return "", Semantic(c.ctype, "character %q is not permitted in %s", ch, t.StringKind.String())
			}
		}
	}
	//
	return str.Value, nil
}

// resolveCharacter resolves a string holding exactly one character to its code
// point.
func (c *elementCompiler) resolveCharacter(v ast.Value) (int64, error) {
	str, err := c.resolveString(v)
	//
	if err != nil {
		return 0, err
	} else if utf8.RuneCountInString(str) != 1 {
		return 0, Semantic(c.ctype, "expected a single character, found %q", str)
	}
	//
	ch, _ := utf8.DecodeRuneInString(str)
	//
	return int64(ch), nil
}

func (c *elementCompiler) resolveBits(v ast.Value) (values.Bits, error) {
	v, err := c.dereference(v, nil)
	//
	if err != nil {
		return "", err
	}
	//
	switch v := v.(type) {
	case *ast.BinaryStringValue:
		if strings.Trim(v.Bits, "01") != "" {
			return "", Semantic(c.ctype, "invalid binary string %s", v.String())
		}
		//
		return values.Bits(v.Bits), nil
	case *ast.HexStringValue:
		bytes, err := decodeHex(v.Hex)
		//
		if err != nil {
			return "", Semantic(c.ctype, "invalid hexadecimal string %s", v.String())
		}
		// Each hex digit contributes exactly four bits
		return values.Bits(bitsOf(bytes)[:4*len(v.Hex)]), nil
	case *ast.NamedBitsValue:
		return c.resolveNamedBits(v)
	default:
		return "", Semantic(c.ctype, "expected bit string, found %s", v.String())
	}
}

func (c *elementCompiler) resolveNamedBits(v *ast.NamedBitsValue) (values.Bits, error) {
	var (
		t, _      = c.ctype.Type.(*ast.BitStringType)
		positions []int64
		length    int64
	)
	//
	for _, name := range v.Names {
		var found = false
		//
		if t != nil {
			for _, bit := range t.NamedBits {
				if bit.Name == name && bit.Number < 0 {
					return "", Semantic(c.ctype, "named bit %s has negative position %d", name, bit.Number)
				} else if bit.Name == name {
					positions = append(positions, bit.Number)
					length = max(length, bit.Number+1)
					found = true
				}
			}
		}
		//
		if !found {
			return "", Semantic(c.ctype, "unknown named bit %s", name)
		}
	}
	//
	var bits = []byte(strings.Repeat("0", int(length)))
	//
	for _, position := range positions {
		bits[position] = '1'
	}
	//
	return values.Bits(bits), nil
}

func (c *elementCompiler) resolveOctets(v ast.Value) (values.Octets, error) {
	v, err := c.dereference(v, nil)
	//
	if err != nil {
		return "", err
	}
	//
	switch v := v.(type) {
	case *ast.HexStringValue:
		bytes, err := decodeHex(v.Hex)
		//
		if err != nil {
			return "", Semantic(c.ctype, "invalid hexadecimal string %s", v.String())
		}
		//
		return values.Octets(bytes), nil
	case *ast.BinaryStringValue:
		if strings.Trim(v.Bits, "01") != "" {
			return "", Semantic(c.ctype, "invalid binary string %s", v.String())
		}
		// Pad with trailing zeros to a whole number of octets
		var (
			bits  = v.Bits + strings.Repeat("0", (8-len(v.Bits)%8)%8)
			bytes = make([]byte, len(bits)/8)
		)
		//
		for i, b := range bits {
			if b == '1' {
				bytes[i/8] |= 0x80 >> (i % 8)
			}
		}
		//
		return values.Octets(bytes), nil
	default:
		return "", Semantic(c.ctype, "expected octet string, found %s", v.String())
	}
}

// resolveOID resolves an object identifier value into its arcs.  The first
// component of a value may name one of the well-known root arcs, or another
// object identifier value whose arcs form a prefix.
func (c *elementCompiler) resolveOID(v ast.Value, relative bool, depth int) ([]int64, error) {
	v, err := c.dereference(v, nil)
	//
	if err != nil {
		return nil, err
	} else if depth >= MAX_REFERENCE_DEPTH {
		return nil, Semantic(c.ctype, "value %s cannot be resolved", v.String())
	}
	//
	oid, ok := v.(*ast.ObjectIdentifierValue)
	//
	if !ok {
		return nil, Semantic(c.ctype, "expected object identifier, found %s", v.String())
	}
	//
	var arcs []int64
	//
	for i, component := range oid.Components {
		number, known := WELL_KNOWN_ARCS[component.Name]
		//
		switch {
		case component.HasNumber && component.Number < 0:
			return nil, Semantic(c.ctype, "arc %s is negative", component.String())
		case component.HasNumber:
			arcs = append(arcs, component.Number)
		case i == 0 && known && !relative:
			arcs = append(arcs, number)
		case i == 0:
			prefix, err := c.resolveOID(&ast.DefinedValue{Name: component.Name}, relative, depth+1)
			//
			if err != nil {
				return nil, err
			}
			//
			arcs = append(arcs, prefix...)
		default:
			return nil, Semantic(c.ctype, "arc %s has no number", component.Name)
		}
	}
	//
	if !relative && len(arcs) > 0 && arcs[0] > 2 {
		return nil, Semantic(c.ctype, "root arc %d of %s is invalid", arcs[0], oid.String())
	}
	//
	return arcs, nil
}

func decodeHex(digits string) ([]byte, error) {
	if len(digits)%2 != 0 {
		digits += "0"
	}
	//
	return hex.DecodeString(digits)
}

func bitsOf(bytes []byte) string {
	var builder strings.Builder
	//
	for _, b := range bytes {
		for i := 7; i >= 0; i-- {
			builder.WriteByte('0' + (b>>i)&1)
		}
	}
	//
	return builder.String()
}
