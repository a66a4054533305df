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

// WELL_KNOWN_ARCS maps the names of the root arcs of the object identifier
// tree onto their numbers.
var WELL_KNOWN_ARCS = map[string]int64{
	"itu-t":           0,
	"ccitt":           0,
	"iso":             1,
	"joint-iso-itu-t": 2,
	"joint-iso-ccitt": 2,
}

func oidFamily() *family {
	return &family{
		name: "OBJECT IDENTIFIER",
		handlers: map[ast.ElementKind]handler{
			ast.SINGLE_VALUE:      oidValue,
			ast.CONTAINED_SUBTYPE: containedSubtype,
		},
	}
}

func iriFamily() *family {
	return &family{
		name: "OID-IRI",
		handlers: map[ast.ElementKind]handler{
			ast.SINGLE_VALUE:      iriValue,
			ast.CONTAINED_SUBTYPE: containedSubtype,
		},
	}
}

func oidValue(c *elementCompiler, element ast.Elements, _ math.Range) (Node, error) {
	var relative = c.ctype.Kind() == ast.RELATIVE_OID
	//
	arcs, err := c.resolveOID(element.(*ast.SingleValueConstraint).Value, relative, 0)
	//
	if err != nil {
		return nil, err
	}
	//
	return Value(values.NewOrderedValues(values.OID(arcs))), nil
}

func iriValue(c *elementCompiler, element ast.Elements, _ math.Range) (Node, error) {
	v, err := c.dereference(element.(*ast.SingleValueConstraint).Value, nil)
	//
	if err != nil {
		return nil, err
	}
	//
	iri, ok := v.(*ast.IRIValue)
	//
	switch {
	case !ok:
		return nil, Semantic(c.ctype, "expected IRI value, found %s", v.String())
	case c.ctype.Kind() == ast.OID_IRI && (len(iri.Value) == 0 || iri.Value[0] != '/'):
		return nil, Semantic(c.ctype, "absolute IRI %s must begin with \"/\"", iri.String())
	case c.ctype.Kind() == ast.RELATIVE_OID_IRI && len(iri.Value) > 0 && iri.Value[0] == '/':
		return nil, Semantic(c.ctype, "relative IRI %s cannot begin with \"/\"", iri.String())
	}
	//
	return Value(values.NewOrderedValues(values.IRI(iri.Arcs()))), nil
}
