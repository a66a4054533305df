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
	"github.com/consensys/go-asn1c/pkg/asn1c/il"
	"github.com/consensys/go-asn1c/pkg/util"
	"github.com/consensys/go-asn1c/pkg/util/math"
)

// BuildExpr translates a constraint node into a boolean IL expression over a
// given argument, registering any helper functions this requires with the
// builder's module.  The result is empty when the node imposes no
// restriction.
func (b *Builder) BuildExpr(ct *CompiledType, node Node, arg il.Expr) util.Option[il.Expr] {
	switch n := node.(type) {
	case *AllValuesNode:
		return util.None[il.Expr]()
	case *ValueNode:
		return valueExpr(ct, n.Values, arg)
	case *SizeNode:
		return sizeExpr(n.Sizes, arg)
	case *PermittedAlphabetNode:
		return util.Some[il.Expr](il.Call(il.PERMITTED_ALPHABET, arg, il.Lit(il.RANGES, n.Alphabet)))
	case *NegationNode:
		if inner := b.BuildExpr(ct, n.Node, arg); inner.HasValue() {
			return util.Some(il.Not(inner.Unwrap()))
		}
		// Negating no restriction leaves nothing
		return util.Some[il.Expr](il.FALSE)
	case *BinOpNode:
		return b.binOpExpr(ct, n, arg)
	case *WithComponentNode:
		return b.withComponentExpr(n, arg)
	case *WithComponentsNode:
		return b.withComponentsExpr(n, arg)
	default:
		IllegalState("unknown constraint node %s", node.String())
		return util.None[il.Expr]()
	}
}

func (b *Builder) binOpExpr(ct *CompiledType, node *BinOpNode, arg il.Expr) util.Option[il.Expr] {
	var (
		lhs = b.BuildExpr(ct, node.Left, arg)
		rhs = b.BuildExpr(ct, node.Right, arg)
	)
	//
	switch node.Op {
	case UNION:
		if lhs.IsEmpty() || rhs.IsEmpty() {
			return util.None[il.Expr]()
		}
		//
		return util.Some(il.Or(lhs.Unwrap(), rhs.Unwrap()))
	case INTERSECTION:
		switch {
		case lhs.IsEmpty():
			return rhs
		case rhs.IsEmpty():
			return lhs
		}
		//
		return util.Some(il.And(lhs.Unwrap(), rhs.Unwrap()))
	case COMPLEMENT:
		if rhs.IsEmpty() {
			return util.Some[il.Expr](il.FALSE)
		}
		//
		return util.Some(il.And(lhs.UnwrapOr(il.TRUE), il.Not(rhs.Unwrap())))
	default:
		IllegalState("unknown binary operator %s", node.Op.String())
		return util.None[il.Expr]()
	}
}

// valueExpr renders a set of values.  Integer-like sets become comparisons,
// whilst other sets become equality or membership checks.
func valueExpr(ct *CompiledType, vals values.Values, arg il.Expr) util.Option[il.Expr] {
	if vals.IsFull() {
		return util.None[il.Expr]()
	} else if vals.IsEmpty() {
		return util.Some[il.Expr](il.FALSE)
	}
	//
	switch v := vals.(type) {
	case *values.IntegerValues:
		return util.Some(rangesExpr(v.Ranges(), arg, math.FULL))
	case *values.BooleanValues:
		return util.Some[il.Expr](il.Compare(il.EQ, arg, il.Bool(v.Contains(true))))
	case *values.NullValues:
		// Not empty and not full is impossible
		IllegalState("invalid NULL values %s", v.String())
	case values.ListedValues:
		var (
			literals = v.Literals()
			expr     il.Expr
		)
		//
		if len(literals) == 1 {
			expr = il.Call(il.EQUALS, arg, literals[0])
		} else {
			expr = il.Call(il.MEMBER_OF, arg, il.Lit(il.SET, literals))
		}
		//
		if v.Inverted() {
			expr = il.Not(expr)
		}
		//
		return util.Some(expr)
	}
	//
	IllegalState("values %s unsupported for %s", vals.String(), ct.Name)
	//
	return util.None[il.Expr]()
}

func sizeExpr(sizes []math.Range, arg il.Expr) util.Option[il.Expr] {
	if math.Equal(sizes, []math.Range{SIZE_BOUNDS}) {
		return util.None[il.Expr]()
	}
	//
	return util.Some(rangesExpr(sizes, il.Call(il.LENGTH, arg), SIZE_BOUNDS))
}

// rangesExpr renders a disjunction of ranges as comparisons against a given
// argument.  Bounds at (or beyond) the edge of the universe are open and need
// no comparison.
func rangesExpr(ranges []math.Range, arg il.Expr, universe math.Range) il.Expr {
	var disjuncts []il.Expr
	//
	for _, r := range ranges {
		var (
			openLower = r.Lower <= universe.Lower
			openUpper = r.Upper >= universe.Upper
		)
		//
		switch {
		case openLower && openUpper:
			return il.TRUE
		case r.IsPoint():
			disjuncts = append(disjuncts, il.Compare(il.EQ, arg, il.Int(r.Lower)))
		case openLower:
			disjuncts = append(disjuncts, il.Compare(il.LTEQ, arg, il.Int(r.Upper)))
		case openUpper:
			disjuncts = append(disjuncts, il.Compare(il.GTEQ, arg, il.Int(r.Lower)))
		default:
			disjuncts = append(disjuncts, il.And(
				il.Compare(il.GTEQ, arg, il.Int(r.Lower)),
				il.Compare(il.LTEQ, arg, il.Int(r.Upper))))
		}
	}
	//
	return il.Or(disjuncts...)
}

// withComponentExpr renders a constraint on every element of a collection as a
// helper function iterating over the elements.
func (b *Builder) withComponentExpr(node *WithComponentNode, arg il.Expr) util.Option[il.Expr] {
	var element = b.nested(node.Element, node.Constraint)
	//
	if element.IsEmpty() {
		return util.None[il.Expr]()
	}
	//
	name := b.fresh()
	//
	b.module.Function(name).Param("value", il.LIST).Body().
		Foreach("element", il.Var("value")).
		If(il.Not(il.Call(element.Unwrap(), il.Var("element")))).Return(il.FALSE).End().
		End().
		Return(il.TRUE).
		Build()
	//
	return util.Some[il.Expr](il.Call(name, arg))
}

// withComponentsExpr renders constraints on the named components of a
// structure.
func (b *Builder) withComponentsExpr(node *WithComponentsNode, arg il.Expr) util.Option[il.Expr] {
	var conjuncts []il.Expr
	//
	for _, c := range node.Components {
		var (
			name    = il.Lit(il.STRING, c.Name)
			present il.Expr
		)
		//
		if node.Choice {
			present = il.Compare(il.EQ, il.Call(il.SELECTED, arg), name)
		} else {
			present = il.Call(il.IS_PRESENT, arg, name)
		}
		//
		switch c.Presence {
		case ast.PRESENT:
			conjuncts = append(conjuncts, present)
		case ast.ABSENT:
			conjuncts = append(conjuncts, il.Not(present))
			// An absent component has no value to check
			continue
		}
		//
		if c.Constraint == nil {
			continue
		}
		//
		if fn := b.nested(c.Type, c.Constraint); fn.HasValue() {
			check := il.Expr(il.Call(fn.Unwrap(), il.Call(il.FIELD, arg, name)))
			//
			if c.Optional && c.Presence != ast.PRESENT {
				check = il.Or(il.Not(present), check)
			}
			//
			conjuncts = append(conjuncts, check)
		}
	}
	//
	if len(conjuncts) == 0 {
		return util.None[il.Expr]()
	}
	//
	return util.Some(il.And(conjuncts...))
}
