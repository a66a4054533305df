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
	"errors"
	"fmt"

	"github.com/consensys/go-asn1c/pkg/util/math"
)

const (
	// THIS is the variable bound to the receiver of an overriding function.
	THIS = "this"
	// GET_VALUE returns the natural value held by the receiver.
	GET_VALUE = "getValue"
	// LENGTH returns the length of a string, bit string, octet string or list.
	LENGTH = "length"
	// EQUALS compares two values of the same (non-scalar) type.
	EQUALS = "equals"
	// MEMBER_OF checks whether a value is an element of a SET literal.
	MEMBER_OF = "memberOf"
	// PERMITTED_ALPHABET checks whether every character of a string lies within
	// a RANGES literal.
	PERMITTED_ALPHABET = "permittedAlphabet"
	// IS_PRESENT checks whether a named component of a structure is present.
	IS_PRESENT = "isPresent"
	// FIELD returns the value of a named component of a structure, or of the
	// selected alternative of a choice.
	FIELD = "field"
	// SELECTED returns the name of the selected alternative of a choice.
	SELECTED = "selected"
)

// ErrNoReturn is reported when a function finishes without returning a value.
var ErrNoReturn = errors.New("function finished without returning")

// Interpreter evaluates the functions of a module against runtime values.
// This provides a reference semantics for generated checks, independent of
// any particular emission target.
type Interpreter struct {
	module   *Module
	receiver any
	depth    uint
}

// NewInterpreter constructs an interpreter for a given module.
func NewInterpreter(module *Module) *Interpreter {
	return &Interpreter{module: module}
}

// WithReceiver returns an interpreter whose receiver (i.e. the instance of the
// generated class) holds the given value.
func (p *Interpreter) WithReceiver(value any) *Interpreter {
	return &Interpreter{p.module, value, 0}
}

// Check evaluates the doCheckConstraint function of a module, using the given
// value as receiver.
func (p *Module) Check(value any) (bool, error) {
	result, err := NewInterpreter(p).WithReceiver(value).Call("doCheckConstraint")
	//
	if err != nil {
		return false, err
	}
	//
	return asBool(result)
}

// Call invokes a named function of the module with the given arguments.
func (p *Interpreter) Call(name string, args ...any) (any, error) {
	var fn = p.module.Lookup(name)
	//
	if fn == nil {
		return nil, fmt.Errorf("unknown function %s", name)
	} else if len(fn.Params) != len(args) {
		return nil, fmt.Errorf("function %s expects %d arguments, given %d", name, len(fn.Params), len(args))
	} else if p.depth > 256 {
		return nil, fmt.Errorf("call depth exceeded in %s", name)
	}
	//
	var env = map[string]any{THIS: p.receiver}
	//
	for i, param := range fn.Params {
		env[param.Name] = args[i]
	}
	//
	p.depth++
	defer func() { p.depth-- }()
	//
	result, returned, err := p.execute(fn.Body, env)
	//
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	} else if !returned && fn.Returns != VOID {
		return nil, fmt.Errorf("%s: %w", name, ErrNoReturn)
	}
	//
	return result, nil
}

func (p *Interpreter) execute(stmts []Statement, env map[string]any) (any, bool, error) {
	for _, stmt := range stmts {
		var (
			result   any
			returned bool
			err      error
		)
		//
		switch s := stmt.(type) {
		case *Return:
			if s.Value == nil {
				return nil, true, nil
			}
			//
			result, err = p.eval(s.Value, env)
			//
			return result, err == nil, err
		case *Condition:
			result, returned, err = p.executeCondition(s, env)
		case *Foreach:
			result, returned, err = p.executeForeach(s, env)
		default:
			panic("unreachable")
		}
		//
		if err != nil || returned {
			return result, returned, err
		}
	}
	//
	return nil, false, nil
}

func (p *Interpreter) executeCondition(s *Condition, env map[string]any) (any, bool, error) {
	cond, err := p.evalBool(s.Cond, env)
	//
	if err != nil {
		return nil, false, err
	} else if cond {
		return p.execute(s.Then, env)
	}
	//
	return p.execute(s.Else, env)
}

func (p *Interpreter) executeForeach(s *Foreach, env map[string]any) (any, bool, error) {
	over, err := p.eval(s.Over, env)
	//
	if err != nil {
		return nil, false, err
	}
	//
	items, ok := over.([]any)
	//
	if !ok {
		return nil, false, fmt.Errorf("cannot iterate over %v", over)
	}
	//
	for _, item := range items {
		env[s.Variable] = item
		//
		if result, returned, err := p.execute(s.Body, env); err != nil || returned {
			return result, returned, err
		}
	}
	//
	delete(env, s.Variable)
	//
	return nil, false, nil
}

func (p *Interpreter) eval(e Expr, env map[string]any) (any, error) {
	switch e := e.(type) {
	case *Value:
		return literal(e), nil
	case *Variable:
		if value, ok := env[e.Name]; ok {
			return value, nil
		}
		//
		return nil, fmt.Errorf("unknown variable %s", e.Name)
	case *Negation:
		b, err := p.evalBool(e.Expr, env)
		return !b, err
	case *BinaryBoolean:
		return p.evalBinary(e, env)
	case *Comparison:
		return p.evalComparison(e, env)
	case *FunctionCall:
		return p.evalCall(e, env)
	default:
		panic("unreachable")
	}
}

func (p *Interpreter) evalBool(e Expr, env map[string]any) (bool, error) {
	value, err := p.eval(e, env)
	//
	if err != nil {
		return false, err
	}
	//
	return asBool(value)
}

func (p *Interpreter) evalBinary(e *BinaryBoolean, env map[string]any) (any, error) {
	lhs, err := p.evalBool(e.Left, env)
	//
	switch {
	case err != nil:
		return nil, err
	case e.Operator == AND && !lhs:
		return false, nil
	case e.Operator == OR && lhs:
		return true, nil
	}
	//
	return p.evalBool(e.Right, env)
}

func (p *Interpreter) evalComparison(e *Comparison, env map[string]any) (any, error) {
	lhs, err := p.eval(e.Left, env)
	if err != nil {
		return nil, err
	}
	//
	rhs, err := p.eval(e.Right, env)
	if err != nil {
		return nil, err
	}
	//
	switch e.Operator {
	case EQ:
		return Equal(lhs, rhs), nil
	case NEQ:
		return !Equal(lhs, rhs), nil
	}
	//
	l, err := asInt(lhs)
	if err != nil {
		return nil, err
	}
	//
	r, err := asInt(rhs)
	if err != nil {
		return nil, err
	}
	//
	switch e.Operator {
	case LT:
		return l < r, nil
	case LTEQ:
		return l <= r, nil
	case GT:
		return l > r, nil
	case GTEQ:
		return l >= r, nil
	default:
		panic("unreachable")
	}
}

func (p *Interpreter) evalCall(e *FunctionCall, env map[string]any) (any, error) {
	var args = make([]any, len(e.Args))
	//
	for i, arg := range e.Args {
		value, err := p.eval(arg, env)
		if err != nil {
			return nil, err
		}
		//
		args[i] = value
	}
	//
	if intrinsic, ok := intrinsics[e.Name]; ok {
		if intrinsic.arity >= 0 && intrinsic.arity != len(args) {
			return nil, fmt.Errorf("intrinsic %s expects %d arguments, given %d", e.Name, intrinsic.arity, len(args))
		}
		//
		return intrinsic.fn(p, args)
	}
	//
	return p.Call(e.Name, args...)
}

func literal(v *Value) any {
	if v.Type == SET {
		var items []any
		//
		for _, item := range v.Value.([]*Value) {
			items = append(items, literal(item))
		}
		//
		return items
	}
	//
	return v.Value
}

func asBool(value any) (bool, error) {
	if b, ok := value.(bool); ok {
		return b, nil
	}
	//
	return false, fmt.Errorf("expected boolean, found %v", value)
}

func asInt(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("expected integer, found %v", value)
	}
}

// ============================================================================
// Intrinsics
// ============================================================================

type intrinsic struct {
	arity int
	fn    func(*Interpreter, []any) (any, error)
}

var intrinsics map[string]intrinsic

func init() {
	intrinsics = map[string]intrinsic{
		GET_VALUE:          {0, func(p *Interpreter, _ []any) (any, error) { return p.receiver, nil }},
		LENGTH:             {1, func(_ *Interpreter, args []any) (any, error) { return Length(args[0]) }},
		EQUALS:             {2, func(_ *Interpreter, args []any) (any, error) { return Equal(args[0], args[1]), nil }},
		MEMBER_OF:          {2, memberOf},
		PERMITTED_ALPHABET: {2, permittedAlphabet},
		IS_PRESENT:         {2, isPresent},
		FIELD:              {2, field},
		SELECTED:           {1, selected},
	}
}

func memberOf(_ *Interpreter, args []any) (any, error) {
	items, ok := args[1].([]any)
	//
	if !ok {
		return nil, fmt.Errorf("expected set, found %v", args[1])
	}
	//
	for _, item := range items {
		if Equal(args[0], item) {
			return true, nil
		}
	}
	//
	return false, nil
}

func permittedAlphabet(_ *Interpreter, args []any) (any, error) {
	str, ok := args[0].(string)
	//
	if !ok {
		return nil, fmt.Errorf("expected string, found %v", args[0])
	}
	//
	ranges, ok := args[1].([]math.Range)
	//
	if !ok {
		return nil, fmt.Errorf("expected ranges, found %v", args[1])
	}
	//
	for _, c := range str {
		if !math.Contains(ranges, int64(c)) {
			return false, nil
		}
	}
	//
	return true, nil
}

func isPresent(_ *Interpreter, args []any) (any, error) {
	name, _ := args[1].(string)
	//
	switch v := args[0].(type) {
	case Struct:
		_, ok := v[name]
		return ok, nil
	case Choice:
		return v.Alternative == name, nil
	default:
		return nil, fmt.Errorf("expected structure, found %v", args[0])
	}
}

func field(_ *Interpreter, args []any) (any, error) {
	name, _ := args[1].(string)
	//
	switch v := args[0].(type) {
	case Struct:
		if value, ok := v[name]; ok {
			return value, nil
		}
		//
		return nil, fmt.Errorf("component %s is absent", name)
	case Choice:
		if v.Alternative == name {
			return v.Value, nil
		}
		//
		return nil, fmt.Errorf("alternative %s is not selected", name)
	default:
		return nil, fmt.Errorf("expected structure, found %v", args[0])
	}
}

func selected(_ *Interpreter, args []any) (any, error) {
	if v, ok := args[0].(Choice); ok {
		return v.Alternative, nil
	}
	//
	return nil, fmt.Errorf("expected choice, found %v", args[0])
}
