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
	"strings"
	"testing"

	"github.com/consensys/go-asn1c/pkg/util/assert"
	"github.com/consensys/go-asn1c/pkg/util/math"
)

func Test_Expr_01(t *testing.T) {
	x := Var("value")
	//
	assert.Equal(t, "value >= 1", Compare(GTEQ, x, Int(1)).String())
	assert.Equal(t, "(value >= 1) && (value <= 10)",
		And(Compare(GTEQ, x, Int(1)), Compare(LTEQ, x, Int(10))).String())
}

func Test_Expr_02(t *testing.T) {
	x := Var("value")
	// literal folding
	assert.Equal(t, TRUE, And())
	assert.Equal(t, FALSE, Or())
	assert.Equal(t, FALSE, And(x, FALSE, x))
	assert.Equal(t, TRUE, Or(FALSE, TRUE))
	assert.Equal(t, Expr(x), And(TRUE, x))
}

func Test_Expr_03(t *testing.T) {
	x := Var("value")
	//
	assert.Equal(t, "value < 5", Not(Compare(GTEQ, x, Int(5))).String())
	assert.Equal(t, FALSE, Not(TRUE))
	assert.Equal(t, Expr(x), Not(Not(x)))
	assert.Equal(t, "!isPresent(this, \"a\")", Not(Call(IS_PRESENT, Var(THIS), Lit(STRING, "a"))).String())
}

func Test_Literal_01(t *testing.T) {
	set := Lit(SET, []*Value{Lit(STRING, "a"), Lit(OCTETS, []byte{0xAB})})
	//
	assert.Equal(t, "{\"a\", 'AB'H}", set.String())
	assert.Equal(t, "[65..90, 97]", Lit(RANGES, []math.Range{{65, 90}, {97, 97}}).String())
	assert.Equal(t, "'1010'B", Lit(BIT_STRING, BitStringOf("1010")).String())
	assert.Equal(t, "{1 3 6}", Lit(OID, []int64{1, 3, 6}).String())
	assert.Equal(t, "\"/a/b\"", Lit(IRI, []string{"a", "b"}).String())
}

func Test_Builder_01(t *testing.T) {
	m := rangeModule()
	//
	assert.Equal(t, 2, len(m.Functions()))
	assert.True(t, m.Lookup("checkConstraintValue") != nil)
	assert.True(t, m.Lookup("missing") == nil)
	//
	text := m.String()
	assert.True(t, strings.Contains(text, "override public fn doCheckConstraint() -> bool"), text)
	assert.True(t, strings.Contains(text, "private fn checkConstraintValue(value int) -> bool"), text)
}

func Test_Builder_02(t *testing.T) {
	m := NewModule("T")
	body := m.Function("f").Body().If(TRUE).Return(TRUE)
	// unterminated block
	defer func() {
		assert.True(t, recover() != nil)
	}()
	//
	body.Build()
}

func Test_Builder_03(t *testing.T) {
	m := NewModule("T")
	m.Function("f").Body().Return(TRUE).Build()
	//
	defer func() {
		assert.True(t, recover() != nil)
	}()
	// duplicate
	m.Function("f").Body().Return(TRUE).Build()
}

func Test_Terminates_01(t *testing.T) {
	var (
		ret  = &Return{TRUE}
		cond = &Condition{TRUE, []Statement{ret}, nil}
		full = &Condition{TRUE, []Statement{ret}, []Statement{ret}}
	)
	//
	assert.True(t, ret.Terminates())
	assert.False(t, cond.Terminates())
	assert.True(t, full.Terminates())
	assert.False(t, (&Foreach{"x", Var("xs"), []Statement{ret}}).Terminates())
}

func Test_Interpreter_01(t *testing.T) {
	m := rangeModule()
	//
	for v := int64(-5); v < 40; v++ {
		ok, err := m.Check(v)
		//
		assert.NoError(t, err)
		assert.Equal(t, (v >= 1 && v <= 10) || (v >= 20 && v <= 30), ok, "value %d", v)
	}
}

func Test_Interpreter_02(t *testing.T) {
	m := NewModule("T")
	// every element of a list must be positive
	m.Function("checkElement").Param("e", INTEGER).Body().
		Return(Compare(GT, Var("e"), Int(0))).Build()
	m.Function("checkConstraintValue").Param("value", LIST).Body().
		Foreach("e", Var("value")).
		If(Not(Call("checkElement", Var("e")))).Return(FALSE).End().
		End().
		Return(Compare(LTEQ, Call(LENGTH, Var("value")), Int(3))).Build()
	m.Function("doCheckConstraint").Override().Visibility(PUBLIC).Body().
		Return(Call("checkConstraintValue", Call(GET_VALUE))).Build()
	//
	check_Interpreter(t, m, []any{int64(1), int64(2)}, true)
	check_Interpreter(t, m, []any{int64(1), int64(0)}, false)
	check_Interpreter(t, m, []any{int64(1), int64(1), int64(1), int64(1)}, false)
	check_Interpreter(t, m, []any{}, true)
}

func Test_Interpreter_03(t *testing.T) {
	m := NewModule("T")
	m.Function("doCheckConstraint").Override().Visibility(PUBLIC).Body().
		If(Call(IS_PRESENT, Var(THIS), Lit(STRING, "a"))).
		Return(Call(MEMBER_OF, Call(FIELD, Var(THIS), Lit(STRING, "a")),
			Lit(SET, []*Value{Lit(STRING, "x"), Lit(STRING, "y")}))).
		Else().
		Return(TRUE).
		End().
		Build()
	//
	check_Interpreter(t, m, Struct{"a": "x"}, true)
	check_Interpreter(t, m, Struct{"a": "z"}, false)
	check_Interpreter(t, m, Struct{}, true)
}

func Test_Interpreter_04(t *testing.T) {
	m := NewModule("T")
	m.Function("doCheckConstraint").Override().Visibility(PUBLIC).Body().
		Return(Or(
			Compare(NEQ, Call(SELECTED, Var(THIS)), Lit(STRING, "name")),
			Call(PERMITTED_ALPHABET, Call(FIELD, Var(THIS), Lit(STRING, "name")),
				Lit(RANGES, []math.Range{{'a', 'z'}})))).
		Build()
	//
	check_Interpreter(t, m, Choice{"name", "abc"}, true)
	check_Interpreter(t, m, Choice{"name", "aBc"}, false)
	check_Interpreter(t, m, Choice{"number", int64(5)}, true)
}

func Test_Interpreter_05(t *testing.T) {
	m := NewModule("T")
	m.Function("doCheckConstraint").Override().Visibility(PUBLIC).Body().
		If(TRUE).Return(TRUE).End().Build()
	m.Function("f").Param("x", INTEGER).Body().Return(Var("x")).Build()
	//
	_, err := NewInterpreter(m).Call("f")
	assert.True(t, err != nil)
	//
	_, err = NewInterpreter(m).Call("g")
	assert.True(t, err != nil)
	//
	_, err = m.Check(int64(1))
	assert.NoError(t, err)
}

func Test_Runtime_01(t *testing.T) {
	assert.Equal(t, "0110", BitsOf(BitStringOf("0110")))
	assert.True(t, Equal(BitStringOf("01"), BitStringOf("01")))
	assert.False(t, Equal(BitStringOf("01"), BitStringOf("010")))
	assert.True(t, Equal(1, int64(1)))
	assert.True(t, Equal([]int64{1, 2}, []int64{1, 2}))
	assert.False(t, Equal("1", int64(1)))
	//
	n, err := Length("héllo")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), n)
	//
	n, err = Length(BitStringOf("101"))
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
	//
	_, err = Length(int64(1))
	assert.True(t, err != nil)
}

// ===================================================================
// Test Helpers
// ===================================================================

func rangeModule() *Module {
	var (
		m = NewModule("T")
		x = Var("value")
	)
	//
	m.Function("doCheckConstraint").Override().Visibility(PUBLIC).Body().
		Return(Call("checkConstraintValue", Call(GET_VALUE))).Build()
	m.Function("checkConstraintValue").Param("value", INTEGER).Body().
		Return(Or(
			And(Compare(GTEQ, x, Int(1)), Compare(LTEQ, x, Int(10))),
			And(Compare(GTEQ, x, Int(20)), Compare(LTEQ, x, Int(30))))).
		Build()
	//
	return m
}

func check_Interpreter(t *testing.T, m *Module, value any, expected bool) {
	actual, err := m.Check(value)
	//
	assert.NoError(t, err)
	assert.Equal(t, expected, actual, "value %v", value)
}
