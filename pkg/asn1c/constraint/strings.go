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

func bitStringFamily() *family {
	return &family{
		name: "BIT STRING",
		handlers: map[ast.ElementKind]handler{
			ast.SINGLE_VALUE:      bitStringValue,
			ast.SIZE:              sizeConstraint,
			ast.CONTAINED_SUBTYPE: containedSubtype,
		},
	}
}

func octetStringFamily() *family {
	return &family{
		name: "OCTET STRING",
		handlers: map[ast.ElementKind]handler{
			ast.SINGLE_VALUE:      octetStringValue,
			ast.SIZE:              sizeConstraint,
			ast.CONTAINED_SUBTYPE: containedSubtype,
		},
	}
}

func characterStringFamily() *family {
	return &family{
		name: "character string",
		handlers: map[ast.ElementKind]handler{
			ast.SINGLE_VALUE:       characterStringValue,
			ast.SIZE:               sizeConstraint,
			ast.PERMITTED_ALPHABET: permittedAlphabet,
			ast.CONTAINED_SUBTYPE:  containedSubtype,
		},
	}
}

func bitStringValue(c *elementCompiler, element ast.Elements, _ math.Range) (Node, error) {
	bits, err := c.resolveBits(element.(*ast.SingleValueConstraint).Value)
	//
	if err != nil {
		return nil, err
	}
	//
	return Value(values.NewOrderedValues(bits)), nil
}

func octetStringValue(c *elementCompiler, element ast.Elements, _ math.Range) (Node, error) {
	octets, err := c.resolveOctets(element.(*ast.SingleValueConstraint).Value)
	//
	if err != nil {
		return nil, err
	}
	//
	return Value(values.NewOrderedValues(octets)), nil
}

func characterStringValue(c *elementCompiler, element ast.Elements, _ math.Range) (Node, error) {
	str, err := c.resolveString(element.(*ast.SingleValueConstraint).Value)
	//
	if err != nil {
		return nil, err
	}
	//
	return Value(values.NewOrderedValues(values.Chars(str))), nil
}

// sizeConstraint compiles a SIZE element.  The inner constraint is compiled
// over the non-negative integers.
func sizeConstraint(c *elementCompiler, element ast.Elements, _ math.Range) (Node, error) {
	sizes, err := c.nested(c.compiler.sizes, []math.Range{SIZE_BOUNDS}, element.(*ast.SizeConstraint).Constraint)
	//
	if err != nil {
		return nil, err
	}
	//
	return &SizeNode{sizes}, nil
}

// permittedAlphabet compiles a FROM element.  The inner constraint is compiled
// over the code points of the string type's character set.
func permittedAlphabet(c *elementCompiler, element ast.Elements, _ math.Range) (Node, error) {
	var kind = c.ctype.Type.(*ast.CharacterStringType).StringKind
	//
	alphabet, err := c.nested(c.compiler.alphabet, kind.Alphabet(), element.(*ast.PermittedAlphabetConstraint).Constraint)
	//
	if err != nil {
		return nil, err
	}
	//
	return &PermittedAlphabetNode{alphabet}, nil
}
