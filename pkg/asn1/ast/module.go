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
package ast

// TypeAssignment binds a name to a type.
type TypeAssignment struct {
	Name string
	Type Type
}

// ValueAssignment binds a name to a value of a given type.
type ValueAssignment struct {
	Name  string
	Type  Type
	Value Value
}

// Module represents an ASN.1 module.
type Module struct {
	Name   string
	Types  []*TypeAssignment
	Values []*ValueAssignment
}

// Type returns the type assignment with the given name, or nil if no such
// assignment exists.
func (p *Module) Type(name string) *TypeAssignment {
	for _, t := range p.Types {
		if t.Name == name {
			return t
		}
	}
	//
	return nil
}

// Value returns the value assignment with the given name, or nil if no such
// assignment exists.
func (p *Module) Value(name string) *ValueAssignment {
	for _, v := range p.Values {
		if v.Name == name {
			return v
		}
	}
	//
	return nil
}
