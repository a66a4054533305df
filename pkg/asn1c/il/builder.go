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

	"github.com/consensys/go-asn1c/pkg/util/collection/stack"
)

// FunctionBuilder provides a fluent interface for constructing a function
// within a module.  The function is only added to the module when its body is
// built.
type FunctionBuilder struct {
	module   *Module
	function Function
}

// Function begins construction of a new function with the given name.
// Functions are private by default, and return BOOLEAN.
func (p *Module) Function(name string) *FunctionBuilder {
	return &FunctionBuilder{p, Function{Name: name, Returns: BOOLEAN}}
}

// Visibility sets the visibility of the function being built.
func (p *FunctionBuilder) Visibility(visibility Visibility) *FunctionBuilder {
	p.function.Visibility = visibility
	return p
}

// Override marks the function being built as overriding an inherited one.
func (p *FunctionBuilder) Override() *FunctionBuilder {
	p.function.Override = true
	return p
}

// Param appends a parameter to the function being built.
func (p *FunctionBuilder) Param(name string, t Type) *FunctionBuilder {
	p.function.Params = append(p.function.Params, Parameter{name, t})
	return p
}

// Body begins construction of the function's body.
func (p *FunctionBuilder) Body() *BodyBuilder {
	var blocks = stack.NewStack[*block]()
	//
	blocks.Push(&block{kind: bodyBlock})
	//
	return &BodyBuilder{p, blocks}
}

const (
	bodyBlock = iota
	thenBlock
	elseBlock
	loopBlock
)

// block is a statement list under construction.  Conditions and loops push a
// new block which, once ended, is folded into a statement of the enclosing
// block.
type block struct {
	kind  int
	stmts []Statement
	// condition or loop being constructed
	cond     *Condition
	loop     *Foreach
	previous []Statement
}

// BodyBuilder provides a fluent interface for constructing the statements of a
// function body, including nested conditions and loops.
type BodyBuilder struct {
	function *FunctionBuilder
	blocks   *stack.Stack[*block]
}

// Return appends a return statement to the current block.
func (p *BodyBuilder) Return(value Expr) *BodyBuilder {
	return p.append(&Return{value})
}

// If begins a conditional whose then-branch becomes the current block.
func (p *BodyBuilder) If(cond Expr) *BodyBuilder {
	p.blocks.Push(&block{kind: thenBlock, cond: &Condition{Cond: cond}})
	return p
}

// Else switches the current conditional to its else-branch.
func (p *BodyBuilder) Else() *BodyBuilder {
	top := p.blocks.Peek(0)
	//
	if top.kind != thenBlock {
		panic("else without if")
	}
	//
	top.kind = elseBlock
	top.previous = top.stmts
	top.stmts = nil
	//
	return p
}

// Foreach begins a loop over a list, whose body becomes the current block.
func (p *BodyBuilder) Foreach(variable string, over Expr) *BodyBuilder {
	p.blocks.Push(&block{kind: loopBlock, loop: &Foreach{Variable: variable, Over: over}})
	return p
}

// End closes the current conditional or loop, appending it to the enclosing
// block.
func (p *BodyBuilder) End() *BodyBuilder {
	var top = p.blocks.Pop()
	//
	switch top.kind {
	case thenBlock:
		top.cond.Then = top.stmts
		return p.append(top.cond)
	case elseBlock:
		top.cond.Then = top.previous
		top.cond.Else = top.stmts
		//
		return p.append(top.cond)
	case loopBlock:
		top.loop.Body = top.stmts
		return p.append(top.loop)
	default:
		panic("unbalanced end")
	}
}

// Build finalises the function, adding it to the enclosing module.
func (p *BodyBuilder) Build() *Function {
	if p.blocks.Len() != 1 {
		panic(fmt.Sprintf("function %s has %d unterminated blocks", p.function.function.Name, p.blocks.Len()-1))
	}
	//
	var fn = p.function.function
	//
	fn.Body = p.blocks.Pop().stmts
	p.function.module.add(&fn)
	//
	return &fn
}

func (p *BodyBuilder) append(stmt Statement) *BodyBuilder {
	top := p.blocks.Peek(0)
	top.stmts = append(top.stmts, stmt)
	//
	return p
}
