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
	"github.com/consensys/go-asn1c/pkg/asn1/ast"
	"github.com/consensys/go-asn1c/pkg/asn1c/constraint/values"
	"github.com/consensys/go-asn1c/pkg/util/math"
)

func integerFamily() *family {
	return &family{
		name: "INTEGER",
		handlers: map[ast.ElementKind]handler{
			ast.SINGLE_VALUE:      integerValue,
			ast.VALUE_RANGE:       integerRange,
			ast.CONTAINED_SUBTYPE: containedSubtype,
		},
		bounds: math.FULL,
		point:  (*elementCompiler).resolveInteger,
	}
}

// sizeFamily compiles the inner constraint of a SIZE element, whose values are
// non-negative integers.
func sizeFamily() *family {
	return &family{
		name: "SIZE",
		handlers: map[ast.ElementKind]handler{
			ast.SINGLE_VALUE: integerValue,
			ast.VALUE_RANGE:  integerRange,
		},
		bounds: SIZE_BOUNDS,
		point:  (*elementCompiler).resolveInteger,
	}
}

// alphabetFamily compiles the inner constraint of a FROM element, whose values
// are code points.
func alphabetFamily() *family {
	return &family{
		name: "FROM",
		handlers: map[ast.ElementKind]handler{
			ast.SINGLE_VALUE: alphabetValue,
			ast.VALUE_RANGE:  integerRange,
		},
		bounds: math.Range{Lower: 0, Upper: 0x10ffff},
		point:  (*elementCompiler).resolveCharacter,
	}
}

func enumeratedFamily() *family {
	return &family{
		name: "ENUMERATED",
		handlers: map[ast.ElementKind]handler{
			ast.SINGLE_VALUE:      integerValue,
			ast.CONTAINED_SUBTYPE: containedSubtype,
		},
		bounds: math.FULL,
		point:  (*elementCompiler).resolveItem,
	}
}

func booleanFamily() *family {
	return &family{
		name: "BOOLEAN",
		handlers: map[ast.ElementKind]handler{
			ast.SINGLE_VALUE:      booleanValue,
			ast.CONTAINED_SUBTYPE: containedSubtype,
		},
	}
}

func nullFamily() *family {
	return &family{
		name: "NULL",
		handlers: map[ast.ElementKind]handler{
			ast.SINGLE_VALUE:      nullValue,
			ast.CONTAINED_SUBTYPE: containedSubtype,
		},
	}
}

func booleanValue(c *elementCompiler, element ast.Elements, _ math.Range) (Node, error) {
	v, err := c.dereference(element.(*ast.SingleValueConstraint).Value, nil)
	//
	if err != nil {
		return nil, err
	} else if b, ok := v.(*ast.BooleanValue); ok {
		return Value(values.NewBooleanValues(b.Value)), nil
	}
	//
	return nil, Semantic(c.ctype, "expected boolean value, found %s", v.String())
}

func nullValue(c *elementCompiler, element ast.Elements, _ math.Range) (Node, error) {
	v, err := c.dereference(element.(*ast.SingleValueConstraint).Value, nil)
	//
	if err != nil {
		return nil, err
	} else if _, ok := v.(*ast.NullValue); ok {
		return Value(values.NewNullValues(true)), nil
	}
	//
	return nil, Semantic(c.ctype, "expected NULL, found %s", v.String())
}

// alphabetValue compiles a string within a FROM constraint into the set of its
// characters.
func alphabetValue(c *elementCompiler, element ast.Elements, _ math.Range) (Node, error) {
	str, err := c.resolveString(element.(*ast.SingleValueConstraint).Value)
	//
	if err != nil {
		return nil, err
	}
	//
	var chars []math.Range
	//
	for _, ch := range str {
		chars = append(chars, math.Point(int64(ch)))
	}
	//
	return Value(c.integers(chars...)), nil
}
