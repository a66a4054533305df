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
package values

import (
	"testing"

	"github.com/consensys/go-asn1c/pkg/util/assert"
	"github.com/consensys/go-asn1c/pkg/util/math"
)

func Test_Integer_01(t *testing.T) {
	a := NewIntegerValues(math.NewRange(1, 10))
	b := NewIntegerValues(math.NewRange(20, 30))
	//
	union := a.Union(b).(*IntegerValues)
	assert.Equal(t, []math.Range{{1, 10}, {20, 30}}, union.Ranges())
	assert.True(t, a.Intersection(b).IsEmpty())
}

func Test_Integer_02(t *testing.T) {
	a := NewIntegerValues(math.NewRange(1, 10))
	//
	_, err := a.Exclude(NewIntegerValues(math.Point(20)))
	assert.ErrorAs[*math.ExclusionError](t, err)
	//
	r, err := a.Exclude(NewIntegerValues(math.Point(5)))
	assert.NoError(t, err)
	assert.Equal(t, "(1..4 | 6..10)", r.String())
}

func Test_Integer_03(t *testing.T) {
	empty := NewIntegerValues()
	// The empty set inverts to the universe
	assert.True(t, empty.Invert().IsFull())
	assert.True(t, empty.Invert().Invert().IsEmpty())
	//
	a := NewIntegerValues(math.NewRange(-1, 1))
	assert.Equal(t, []math.Range{{math.MIN, -2}, {2, math.MAX}}, a.Invert().(*IntegerValues).Ranges())
}

func Test_Integer_04(t *testing.T) {
	// enumeration universe {0, 1, 2, 5}
	universe := []math.Range{{0, 2}, {5, 5}}
	a := NewIntegerValuesWithin(universe, math.Point(1), math.Point(7))
	//
	assert.Equal(t, []math.Range{{1, 1}}, a.Ranges())
	assert.Equal(t, universe, a.Universe())
	assert.Equal(t, []math.Range{{0, 0}, {2, 2}, {5, 5}}, a.Invert().(*IntegerValues).Ranges())
	assert.False(t, a.IsFull())
	assert.True(t, a.Union(a.Invert()).IsFull())
}

func Test_Copy_01(t *testing.T) {
	a := NewIntegerValues(math.NewRange(1, 10))
	b := a.Copy().(*IntegerValues)
	// Copies do not share their ranges
	b.Ranges()[0].Upper = 5
	assert.Equal(t, "(1..10)", a.String())
	assert.Equal(t, "(1..5)", b.String())
}

func Test_Copy_02(t *testing.T) {
	a := AllExcept[Chars]("x", "y")
	b := a.Copy().(*OrderedValues[Chars])
	//
	assert.Equal(t, a.String(), b.String())
	assert.True(t, b.Inverted())
	assert.Equal(t, []Chars{"x", "y"}, b.Items())
	assert.True(t, NewBooleanValues(true).Copy().(*BooleanValues).Contains(true))
	assert.True(t, NewNullValues(true).Copy().IsFull())
}

func Test_Boolean_01(t *testing.T) {
	tt := NewBooleanValues(true)
	ff := NewBooleanValues(false)
	//
	assert.True(t, tt.Union(ff).IsFull())
	assert.True(t, tt.Intersection(ff).IsEmpty())
	assert.Equal(t, "{FALSE}", tt.Invert().String())
	//
	_, err := tt.Exclude(ff)
	assert.ErrorAs[*ExclusionError](t, err)
	//
	r, err := tt.Union(ff).Exclude(ff)
	assert.NoError(t, err)
	assert.True(t, r.(*BooleanValues).Contains(true))
	assert.False(t, r.(*BooleanValues).Contains(false))
}

func Test_Null_01(t *testing.T) {
	null := NewNullValues(true)
	//
	assert.True(t, null.IsFull())
	assert.True(t, null.Invert().IsEmpty())
	//
	_, err := null.Invert().Exclude(null)
	assert.ErrorAs[*ExclusionError](t, err)
}

func Test_Ordered_01(t *testing.T) {
	a := NewOrderedValues[Chars]("a", "b", "c")
	b := NewOrderedValues[Chars]("b", "d")
	//
	assert.Equal(t, `{"a", "b", "c", "d"}`, a.Union(b).String())
	assert.Equal(t, `{"b"}`, a.Intersection(b).String())
	//
	_, err := a.Exclude(b)
	assert.ErrorAs[*ExclusionError](t, err)
	//
	r, err := a.Exclude(NewOrderedValues[Chars]("b"))
	assert.NoError(t, err)
	assert.Equal(t, `{"a", "c"}`, r.String())
}

func Test_Ordered_02(t *testing.T) {
	a := NewOrderedValues[Chars]("a", "b", "c")
	notB := AllExcept[Chars]("b")
	//
	assert.Equal(t, `{"a", "c"}`, a.Intersection(notB).String())
	assert.Equal(t, `{"a", "c"}`, notB.Intersection(a).String())
	assert.True(t, a.Union(notB).IsFull())
	assert.Equal(t, `ALL EXCEPT {"b"}`, notB.Union(NewOrderedValues[Chars]("a")).String())
	// exclusion from an inverted set
	r, err := notB.Exclude(NewOrderedValues[Chars]("a"))
	assert.NoError(t, err)
	assert.Equal(t, `ALL EXCEPT {"a", "b"}`, r.String())
	//
	_, err = notB.Exclude(NewOrderedValues[Chars]("b"))
	assert.ErrorAs[*ExclusionError](t, err)
	//
	_, err = a.Exclude(notB)
	assert.ErrorAs[*ExclusionError](t, err)
	//
	r, err = notB.Exclude(AllExcept[Chars]("a", "b"))
	assert.NoError(t, err)
	assert.Equal(t, `{"a"}`, r.String())
}

func Test_Ordered_03(t *testing.T) {
	a := NewOrderedValues[Chars]("a", "bb", "ccc", "dddd")
	sizes := []math.Range{{2, 3}}
	//
	inside, ok := a.FilterSize(sizes, true)
	assert.True(t, ok)
	assert.Equal(t, `{"bb", "ccc"}`, inside.String())
	//
	outside, ok := a.FilterSize(sizes, false)
	assert.True(t, ok)
	assert.Equal(t, `{"a", "dddd"}`, outside.String())
	//
	_, ok = a.Invert().(*OrderedValues[Chars]).FilterSize(sizes, true)
	assert.False(t, ok)
	// object identifiers have no size
	_, ok = NewOrderedValues(OID{1, 2}).FilterSize(sizes, true)
	assert.False(t, ok)
}

func Test_Ordered_04(t *testing.T) {
	a := NewOrderedValues[Chars]("abc", "aBc", "")
	//
	r, ok := a.FilterAlphabet([]math.Range{{'a', 'z'}})
	assert.True(t, ok)
	assert.Equal(t, `{"", "abc"}`, r.String())
	//
	_, ok = NewOrderedValues[Octets]("\x01").FilterAlphabet([]math.Range{{0, 255}})
	assert.False(t, ok)
}

func Test_Elements_01(t *testing.T) {
	assert.Equal(t, "'0101'B", Bits("0101").String())
	assert.Equal(t, int64(4), Bits("0101").Size())
	assert.Equal(t, "'0AFF'H", Octets("\x0a\xff").String())
	assert.Equal(t, int64(2), Octets("\x0a\xff").Size())
	assert.Equal(t, int64(3), Chars("héé").Size())
	assert.Equal(t, "{ 1 3 6 }", OID{1, 3, 6}.String())
	assert.Equal(t, `"/ISO/A"`, IRI{"ISO", "A"}.String())
	//
	assert.True(t, OID{1, 2}.Cmp(OID{1, 2, 3}) < 0)
	assert.True(t, IRI{"b"}.Cmp(IRI{"a", "z"}) > 0)
	assert.True(t, NewOrderedValues(OID{1, 2}, OID{1, 2}).Contains(OID{1, 2}))
}

func Test_Ordered_05(t *testing.T) {
	a := NewOrderedValues[Bits]("1", "0110", "01")
	//
	hull, ok := a.SizeHull()
	assert.True(t, ok)
	assert.Equal(t, math.NewRange(1, 4), hull)
	//
	_, ok = AllExcept[Bits]("1").SizeHull()
	assert.False(t, ok)
	//
	literals := a.Literals()
	assert.Equal(t, 3, len(literals))
	assert.Equal(t, "'01'B", literals[0].String())
}
