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

// Statement represents a statement within the body of a function.
type Statement interface {
	// Returns true if execution of this statement never falls through to the
	// following statement.
	Terminates() bool
}

// Condition represents an if/else statement.  The else branch may be empty.
type Condition struct {
	Cond Expr
	Then []Statement
	Else []Statement
}

// Terminates implementation for the Statement interface.
func (p *Condition) Terminates() bool {
	return terminates(p.Then) && terminates(p.Else)
}

// Foreach represents iteration over the elements of a list, binding each in
// turn to a named variable.
type Foreach struct {
	Variable string
	Over     Expr
	Body     []Statement
}

// Terminates implementation for the Statement interface.  A loop may execute
// zero times, hence never terminates.
func (p *Foreach) Terminates() bool {
	return false
}

// Return represents a return statement.  The value is nil for functions
// returning VOID.
type Return struct {
	Value Expr
}

// Terminates implementation for the Statement interface.
func (p *Return) Terminates() bool {
	return true
}

func terminates(stmts []Statement) bool {
	return len(stmts) > 0 && stmts[len(stmts)-1].Terminates()
}
