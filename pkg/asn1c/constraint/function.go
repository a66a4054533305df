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
	"fmt"

	"github.com/consensys/go-asn1c/pkg/asn1/ast"
	"github.com/consensys/go-asn1c/pkg/asn1c/il"
	"github.com/consensys/go-asn1c/pkg/util"
	"github.com/consensys/go-asn1c/pkg/util/math"
	log "github.com/sirupsen/logrus"
)

const (
	// CHECK_CONSTRAINT is the name of the function overridden by every
	// generated module.
	CHECK_CONSTRAINT = "doCheckConstraint"
	// CHECK_VALUE is the name of the function checking a value against the
	// constraint of a type.  Nested functions append a numeric suffix.
	CHECK_VALUE = "checkConstraintValue"
)

// Builder assembles the functions of the IL module generated for one type.
type Builder struct {
	module *il.Module
	// Counter for naming nested functions
	next uint
}

// Build compiles the constraint of a given type into an IL module.  The module
// contains a public doCheckConstraint function, delegating to a function
// checkConstraintValue which accepts the type's natural value.  Nested
// constraints (e.g. on components) give rise to further functions.
func (c *Compiler) Build(ct *CompiledType) (*il.Module, error) {
	def, err := c.Definition(ct)
	//
	if err != nil {
		return nil, err
	}
	//
	node, err := c.checked(ct, def)
	//
	if err != nil {
		return nil, err
	}
	//
	var (
		builder  = &Builder{module: il.NewModule(ct.Name), next: 1}
		receiver = il.Expr(il.Call(il.GET_VALUE))
	)
	//
	if paramType(ct.Kind()) == il.STRUCT {
		receiver = il.Var(il.THIS)
	}
	//
	builder.module.Function(CHECK_CONSTRAINT).Visibility(il.PUBLIC).Override().Body().
		Return(il.Call(CHECK_VALUE, receiver)).
		Build()
	builder.function(CHECK_VALUE, ct, node)
	//
	log.Debugf("generated %d functions for %s", len(builder.module.Functions()), ct.Name)
	//
	return builder.module, nil
}

// checked returns the node which generated checks test values against.  This
// is the root of a definition or, when extensions are checked, every value the
// definition knows to be permitted.
func (c *Compiler) checked(ct *CompiledType, def *Definition) (Node, error) {
	if c.config.CheckExtensions && def.Extensible {
		return c.optimise(ct, def.Full())
	}
	//
	return def.Roots, nil
}

func (c *Compiler) optimise(ct *CompiledType, node Node) (Node, error) {
	if !c.config.Optimise {
		return node, nil
	}
	//
	optimised, err := Optimise(node)
	//
	if err != nil {
		return nil, semanticError(ct, err)
	}
	//
	return optimised, nil
}

// function builds a named function checking a value against a given node.
// For strings and collections, a length pre-check is emitted whenever the
// permitted lengths are bounded (and not already checked directly).
func (b *Builder) function(name string, ct *CompiledType, node Node) {
	var (
		param = paramType(ct.Kind())
		value = il.Var("value")
		expr  = b.BuildExpr(ct, node, value)
		body  = b.module.Function(name).Param("value", param).Body()
	)
	//
	if hull, ok := SizeBounds(node); ok && sized(param) && node.Type() != SIZE && hull != SIZE_BOUNDS {
		length := il.Call(il.LENGTH, value)
		//
		body.If(il.Not(rangesExpr([]math.Range{hull}, length, SIZE_BOUNDS))).
			Return(il.FALSE).
			End()
	}
	//
	body.Return(expr.UnwrapOr(il.TRUE)).Build()
}

// nested builds a fresh function checking a component against a given node,
// returning its name.  Nothing is built when the node imposes no restriction.
func (b *Builder) nested(ct *CompiledType, node Node) util.Option[string] {
	if IsAll(node) {
		return util.None[string]()
	}
	//
	name := b.fresh()
	b.function(name, ct, node)
	//
	return util.Some(name)
}

func (b *Builder) fresh() string {
	name := fmt.Sprintf("%s_%d", CHECK_VALUE, b.next)
	b.next++
	//
	return name
}

// paramType determines the IL type of the natural value of a type.
func paramType(kind ast.TypeKind) il.Type {
	switch kind {
	case ast.INTEGER, ast.ENUMERATED:
		return il.INTEGER
	case ast.BOOLEAN:
		return il.BOOLEAN
	case ast.NULL:
		return il.NULL
	case ast.BIT_STRING:
		return il.BIT_STRING
	case ast.OCTET_STRING:
		return il.OCTETS
	case ast.CHARACTER_STRING:
		return il.STRING
	case ast.OBJECT_IDENTIFIER, ast.RELATIVE_OID:
		return il.OID
	case ast.OID_IRI, ast.RELATIVE_OID_IRI:
		return il.IRI
	case ast.CHOICE, ast.SEQUENCE, ast.SET:
		return il.STRUCT
	case ast.SEQUENCE_OF, ast.SET_OF:
		return il.LIST
	default:
		IllegalState("no IL type for %s", kind.String())
		return il.VOID
	}
}

func sized(t il.Type) bool {
	return t == il.BIT_STRING || t == il.OCTETS || t == il.STRING || t == il.LIST
}
