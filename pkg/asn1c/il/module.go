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

// Parameter describes a named and typed function parameter.
type Parameter struct {
	Name string
	Type Type
}

// Function represents a generated function.
type Function struct {
	Name       string
	Visibility Visibility
	// Override indicates this function overrides one inherited by the
	// generated class.
	Override bool
	Returns  Type
	Params   []Parameter
	Body     []Statement
}

// Module represents the collection of functions generated for a single type.
// Functions are kept in the order they were built.
type Module struct {
	Name      string
	functions []*Function
}

// NewModule constructs an empty module.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// Functions returns the functions of this module, in the order they were
// built.
func (p *Module) Functions() []*Function {
	return p.functions
}

// Lookup returns the function with the given name, or nil if no such function
// exists.
func (p *Module) Lookup(name string) *Function {
	for _, f := range p.functions {
		if f.Name == name {
			return f
		}
	}
	//
	return nil
}

func (p *Module) add(fn *Function) {
	if p.Lookup(fn.Name) != nil {
		panic(fmt.Sprintf("duplicate function %s in module %s", fn.Name, p.Name))
	}
	//
	p.functions = append(p.functions, fn)
}

func (p *Module) String() string {
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("module %s {\n", p.Name))
	//
	for i, f := range p.functions {
		if i != 0 {
			builder.WriteString("\n")
		}
		//
		writeFunction(&builder, f)
	}
	//
	builder.WriteString("}\n")
	//
	return builder.String()
}

func (p *Function) String() string {
	var builder strings.Builder
	//
	writeFunction(&builder, p)
	//
	return builder.String()
}

func writeFunction(builder *strings.Builder, f *Function) {
	var params = make([]string, len(f.Params))
	//
	for i, p := range f.Params {
		params[i] = fmt.Sprintf("%s %s", p.Name, p.Type.String())
	}
	//
	builder.WriteString("\t")
	//
	if f.Override {
		builder.WriteString("override ")
	}
	//
	builder.WriteString(fmt.Sprintf("%s fn %s(%s) -> %s {\n", f.Visibility.String(), f.Name,
		strings.Join(params, ", "), f.Returns.String()))
	writeStatements(builder, f.Body, 2)
	builder.WriteString("\t}\n")
}

func writeStatements(builder *strings.Builder, stmts []Statement, depth int) {
	var indent = strings.Repeat("\t", depth)
	//
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *Condition:
			builder.WriteString(fmt.Sprintf("%sif %s {\n", indent, s.Cond.String()))
			writeStatements(builder, s.Then, depth+1)
			//
			if len(s.Else) > 0 {
				builder.WriteString(indent + "} else {\n")
				writeStatements(builder, s.Else, depth+1)
			}
			//
			builder.WriteString(indent + "}\n")
		case *Foreach:
			builder.WriteString(fmt.Sprintf("%sforeach %s in %s {\n", indent, s.Variable, s.Over.String()))
			writeStatements(builder, s.Body, depth+1)
			builder.WriteString(indent + "}\n")
		case *Return:
			if s.Value == nil {
				builder.WriteString(indent + "return\n")
			} else {
				builder.WriteString(fmt.Sprintf("%sreturn %s\n", indent, s.Value.String()))
			}
		default:
			panic("unreachable")
		}
	}
}
