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
	"fmt"
	"strings"
)

// Expr represents an arbitrary expression used within a statement.
type Expr interface {
	// String returns a human readable form of this expression.
	String() string
}

const (
	// EQ indicates an equality condition
	EQ CmpOp = 0
	// NEQ indicates a non-equality condition
	NEQ CmpOp = 1
	// LT indicates a less-than condition
	LT CmpOp = 2
	// GT indicates a greater-than condition
	GT CmpOp = 3
	// LTEQ indicates a less-than-or-equals condition
	LTEQ CmpOp = 4
	// GTEQ indicates a greater-than-or-equals condition
	GTEQ CmpOp = 5
)

// CmpOp represents the set of possible operators for a comparison.
type CmpOp uint8

func (op CmpOp) String() string {
	switch op {
	case EQ:
		return "=="
	case NEQ:
		return "!="
	case LT:
		return "<"
	case LTEQ:
		return "<="
	case GT:
		return ">"
	case GTEQ:
		return ">="
	default:
		panic("unreachable")
	}
}

// Negate returns the operator which holds exactly when this one does not.
func (op CmpOp) Negate() CmpOp {
	switch op {
	case EQ:
		return NEQ
	case NEQ:
		return EQ
	case LT:
		return GTEQ
	case LTEQ:
		return GT
	case GT:
		return LTEQ
	case GTEQ:
		return LT
	default:
		panic("unreachable")
	}
}

// Comparison represents a comparison, such as "==", ">=", etc.
type Comparison struct {
	// Operator indicates the condition
	Operator CmpOp
	// Left-hand side
	Left Expr
	// Right-hand side
	Right Expr
}

func (p *Comparison) String() string {
	return fmt.Sprintf("%s %s %s", bracket(p.Left), p.Operator.String(), bracket(p.Right))
}

const (
	// AND is logical conjunction.
	AND BoolOp = 0
	// OR is logical disjunction.
	OR BoolOp = 1
)

// BoolOp represents the operators of a binary boolean expression.
type BoolOp uint8

// BinaryBoolean represents the conjunction or disjunction of two boolean
// expressions, evaluated left to right with short-circuiting.
type BinaryBoolean struct {
	Operator BoolOp
	Left     Expr
	Right    Expr
}

func (p *BinaryBoolean) String() string {
	var op = "&&"
	//
	if p.Operator == OR {
		op = "||"
	}
	//
	return fmt.Sprintf("%s %s %s", bracket(p.Left), op, bracket(p.Right))
}

// Negation represents the logical negation of a boolean expression.
type Negation struct {
	Expr Expr
}

func (p *Negation) String() string {
	return "!" + bracket(p.Expr)
}

// FunctionCall represents a call to either a function of the enclosing module,
// or to an intrinsic helper.
type FunctionCall struct {
	Name string
	Args []Expr
}

func (p *FunctionCall) String() string {
	var args = make([]string, len(p.Args))
	//
	for i, arg := range p.Args {
		args[i] = arg.String()
	}
	//
	return fmt.Sprintf("%s(%s)", p.Name, strings.Join(args, ", "))
}

// Value represents a typed literal.
type Value struct {
	Type  Type
	Value any
}

func (p *Value) String() string {
	return formatValue(p.Type, p.Value)
}

// Variable represents a reference to a parameter or loop variable.
type Variable struct {
	Name string
}

func (p *Variable) String() string {
	return p.Name
}

func bracket(e Expr) string {
	switch e.(type) {
	case *Comparison, *BinaryBoolean:
		return "(" + e.String() + ")"
	default:
		return e.String()
	}
}

// ============================================================================
// Constructors
// ============================================================================

// TRUE is the boolean literal true.
var TRUE = &Value{BOOLEAN, true}

// FALSE is the boolean literal false.
var FALSE = &Value{BOOLEAN, false}

// Var constructs a variable reference.
func Var(name string) *Variable {
	return &Variable{name}
}

// Call constructs a function call.
func Call(name string, args ...Expr) *FunctionCall {
	return &FunctionCall{name, args}
}

// Lit constructs a literal of the given type.
func Lit(t Type, value any) *Value {
	return &Value{t, value}
}

// Int constructs an integer literal.
func Int(value int64) *Value {
	return &Value{INTEGER, value}
}

// Bool constructs a boolean literal.
func Bool(value bool) *Value {
	if value {
		return TRUE
	}
	//
	return FALSE
}

// Compare constructs a comparison.
func Compare(op CmpOp, lhs Expr, rhs Expr) *Comparison {
	return &Comparison{op, lhs, rhs}
}

// IsTrue checks whether an expression is the literal true.
func IsTrue(e Expr) bool {
	v, ok := e.(*Value)
	return ok && v.Type == BOOLEAN && v.Value == true
}

// IsFalse checks whether an expression is the literal false.
func IsFalse(e Expr) bool {
	v, ok := e.(*Value)
	return ok && v.Type == BOOLEAN && v.Value == false
}

// And constructs the conjunction of zero or more expressions, folding away
// literal operands.  The empty conjunction is true.
func And(exprs ...Expr) Expr {
	var result Expr
	//
	for _, e := range exprs {
		switch {
		case IsTrue(e):
			continue
		case IsFalse(e):
			return FALSE
		case result == nil:
			result = e
		default:
			result = &BinaryBoolean{AND, result, e}
		}
	}
	//
	if result == nil {
		return TRUE
	}
	//
	return result
}

// Or constructs the disjunction of zero or more expressions, folding away
// literal operands.  The empty disjunction is false.
func Or(exprs ...Expr) Expr {
	var result Expr
	//
	for _, e := range exprs {
		switch {
		case IsFalse(e):
			continue
		case IsTrue(e):
			return TRUE
		case result == nil:
			result = e
		default:
			result = &BinaryBoolean{OR, result, e}
		}
	}
	//
	if result == nil {
		return FALSE
	}
	//
	return result
}

// Not constructs the negation of an expression, pushing the negation into
// literals, comparisons and other negations.
func Not(e Expr) Expr {
	switch e := e.(type) {
	case *Value:
		if e.Type == BOOLEAN {
			return Bool(e.Value != true)
		}
	case *Negation:
		return e.Expr
	case *Comparison:
		return &Comparison{e.Operator.Negate(), e.Left, e.Right}
	}
	//
	return &Negation{e}
}
