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
	"testing"

	"github.com/consensys/go-asn1c/pkg/asn1c/constraint/values"
	"github.com/consensys/go-asn1c/pkg/util/math"
	"github.com/stretchr/testify/require"
)

func Test_Optimise_01(t *testing.T) {
	check_Optimise(t, BinOp(UNION, ints(1, 5), ints(6, 10)), "(1..10)")
}

func Test_Optimise_02(t *testing.T) {
	check_Optimise(t, BinOp(INTERSECTION, ints(1, 10), ints(5, 20)), "(5..10)")
}

func Test_Optimise_03(t *testing.T) {
	check_Optimise(t, Negate(Negate(ints(1, 10))), "(1..10)")
}

func Test_Optimise_04(t *testing.T) {
	check_Optimise(t, BinOp(INTERSECTION, All(), ints(1, 10)), "(1..10)")
	check_Optimise(t, BinOp(UNION, ints(1, 10), All()), "ALL")
}

func Test_Optimise_05(t *testing.T) {
	check_Optimise(t, BinOp(COMPLEMENT, ints(1, 10), ints(5, 5)), "(1..4 | 6..10)")
}

func Test_Optimise_06(t *testing.T) {
	check_Optimise(t, Negate(Size(math.NewRange(1, 5))), "SIZE(0 | 6..MAX)")
}

func Test_Optimise_07(t *testing.T) {
	check_Optimise(t, BinOp(INTERSECTION, Size(math.NewRange(1, 10)), Size(math.NewRange(5, 20))), "SIZE(5..10)")
	check_Optimise(t, BinOp(UNION, Size(math.NewRange(1, 4)), Size(math.NewRange(5, 20))), "SIZE(1..20)")
}

func Test_Optimise_08(t *testing.T) {
	// Intersection of a value with a negated value
	check_Optimise(t, BinOp(INTERSECTION, ints(1, 10), Negate(ints(3, 10))), "(1..2)")
}

func Test_Optimise_09(t *testing.T) {
	// Strings filtered by size
	var strings = Value(values.NewOrderedValues[values.Chars]("a", "abc", "abcdef"))
	//
	check_Optimise(t, BinOp(INTERSECTION, strings, Size(math.NewRange(1, 3))), `{"a", "abc"}`)
}

func Test_Optimise_10(t *testing.T) {
	// Strings filtered by alphabet
	var strings = Value(values.NewOrderedValues[values.Chars]("ab", "aB"))
	//
	check_Optimise(t, BinOp(INTERSECTION, strings, PermittedAlphabet(math.NewRange('a', 'z'))), `{"ab"}`)
}

func Test_Optimise_11(t *testing.T) {
	check_Optimise(t, BinOp(INTERSECTION, PermittedAlphabet(math.NewRange('a', 'z')), PermittedAlphabet(math.NewRange('x', 200))),
		"FROM(120..122)")
}

func Test_Optimise_Invalid_01(t *testing.T) {
	_, err := Optimise(BinOp(COMPLEMENT, ints(1, 10), ints(20, 20)))
	require.Error(t, err)
}

func Test_Optimise_Invalid_02(t *testing.T) {
	_, err := Optimise(BinOp(COMPLEMENT, Size(math.NewRange(1, 10)), Size(math.NewRange(5, 20))))
	require.Error(t, err)
}

func Test_Optimise_Invalid_03(t *testing.T) {
	// Excluded string is longer than any permitted by the size
	var strings = Value(values.NewOrderedValues[values.Chars]("abc", "abcdefgh"))
	//
	_, err := Optimise(BinOp(COMPLEMENT, Size(math.NewRange(1, 5)), strings))
	require.Error(t, err)
	require.Contains(t, err.Error(), "abcdefgh")
}

func Test_Optimise_12(t *testing.T) {
	// Excluded strings within the size remain as an exclusion
	var strings = Value(values.NewOrderedValues[values.Chars]("abc"))
	//
	actual, err := Optimise(BinOp(COMPLEMENT, Size(math.NewRange(1, 5)), strings))
	require.NoError(t, err)
	except := Value(values.AllExcept[values.Chars]("abc"))
	require.Equal(t, BinOp(INTERSECTION, Size(math.NewRange(1, 5)), except).String(), actual.String())
}

func Test_SizeBounds_01(t *testing.T) {
	check_SizeBounds(t, Size(math.NewRange(1, 3), math.NewRange(5, 10)), math.NewRange(1, 10))
	check_SizeBounds(t, BinOp(INTERSECTION, Size(math.NewRange(1, 10)), PermittedAlphabet(math.NewRange('a', 'z'))),
		math.NewRange(1, 10))
	check_SizeBounds(t, BinOp(UNION, Size(math.NewRange(1, 3)), Value(values.NewOrderedValues[values.Chars]("abcde"))),
		math.NewRange(1, 5))
}

func Test_SizeBounds_02(t *testing.T) {
	_, ok := SizeBounds(PermittedAlphabet(math.NewRange('a', 'z')))
	require.False(t, ok)
	//
	_, ok = SizeBounds(BinOp(UNION, Size(math.NewRange(1, 3)), All()))
	require.False(t, ok)
}

func Test_Definition_01(t *testing.T) {
	var (
		lhs = NewExtensibleDefinition(ints(1, 10), ints(20, 20))
		rhs = NewDefinition(ints(5, 30))
	)
	// Union is extensible if either is
	union, err := lhs.Union(rhs).Optimise()
	require.NoError(t, err)
	require.True(t, union.Extensible)
	require.Equal(t, "(1..30)", union.Roots.String())
	// Intersection only if both are
	inter, err := lhs.Intersection(rhs).Optimise()
	require.NoError(t, err)
	require.False(t, inter.Extensible)
	require.Equal(t, "(5..10)", inter.Roots.String())
}

func Test_Definition_02(t *testing.T) {
	var (
		parent = NewExtensibleDefinition(ints(1, 10), ints(20, 20))
		child  = NewExtensibleDefinition(ints(5, 25), Empty())
	)
	//
	def, err := SerialApplication(parent, child).Optimise()
	require.NoError(t, err)
	require.True(t, def.Extensible)
	require.Equal(t, "(5..10 | 20)", def.Roots.String())
	require.True(t, IsEmpty(def.Extensions))
}

func Test_Definition_03(t *testing.T) {
	def := Unconstrained()
	//
	require.True(t, IsAll(def.Full()))
	require.False(t, def.Extensible)
}

// ===================================================================
// Test Helpers
// ===================================================================

func ints(lower int64, upper int64) Node {
	return Value(values.NewIntegerValues(math.NewRange(lower, upper)))
}

func check_Optimise(t *testing.T, node Node, expected string) {
	t.Helper()
	//
	actual, err := Optimise(node)
	//
	require.NoError(t, err)
	require.Equal(t, expected, actual.String())
}

func check_SizeBounds(t *testing.T, node Node, expected math.Range) {
	t.Helper()
	//
	actual, ok := SizeBounds(node)
	//
	require.True(t, ok)
	require.Equal(t, expected, actual)
}
