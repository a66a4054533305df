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
package math

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/consensys/go-asn1c/pkg/util/assert"
)

func Test_Canonicalize_01(t *testing.T) {
	check_Canonicalize(t, ranges(1, 5, 6, 10), ranges(1, 10))
}

func Test_Canonicalize_02(t *testing.T) {
	check_Canonicalize(t, ranges(1, 5, 7, 10), ranges(1, 5, 7, 10))
}

func Test_Canonicalize_03(t *testing.T) {
	check_Canonicalize(t, ranges(7, 10, 1, 5, 3, 8), ranges(1, 10))
}

func Test_Canonicalize_04(t *testing.T) {
	check_Canonicalize(t, ranges(MIN, 0, 1, MAX), ranges(MIN, MAX))
}

func Test_Canonicalize_05(t *testing.T) {
	check_Canonicalize(t, ranges(5, MAX, MAX, MAX), ranges(5, MAX))
}

func Test_Canonicalize_06(t *testing.T) {
	check_Canonicalize(t, ranges(), nil)
}

func Test_Union_01(t *testing.T) {
	assert.Equal(t, ranges(1, 10, 20, 30), Union(ranges(20, 30), ranges(1, 10)))
	assert.Equal(t, ranges(1, 30), Union(ranges(1, 19), ranges(20, 30)))
}

func Test_Intersection_01(t *testing.T) {
	assert.Equal(t, ranges(5, 10), Intersection(ranges(1, 10), ranges(5, 20)))
}

func Test_Intersection_02(t *testing.T) {
	assert.Equal(t, 0, len(Intersection(ranges(1, 5), ranges(10, 20))))
}

func Test_Intersection_03(t *testing.T) {
	// a single range split across multiple ranges on the other side
	assert.Equal(t, ranges(2, 3, 5, 6, 9, 9), Intersection(ranges(2, 9), ranges(1, 3, 5, 6, 9, 12)))
}

func Test_Intersection_04(t *testing.T) {
	assert.Equal(t, ranges(MIN, -1, 1, MAX), Intersection(ranges(MIN, MAX), ranges(MIN, -1, 1, MAX)))
}

func Test_Invert_01(t *testing.T) {
	assert.Equal(t, ranges(MIN, 0, 11, MAX), Invert(ranges(1, 10)))
}

func Test_Invert_02(t *testing.T) {
	assert.Equal(t, ranges(MIN, 0, 6, 9, 21, MAX), Invert(ranges(1, 5, 10, 20)))
}

func Test_Invert_03(t *testing.T) {
	assert.Equal(t, 0, len(Invert(ranges(MIN, MAX))))
	assert.Equal(t, 0, len(Invert(nil)))
	assert.Equal(t, ranges(1, MAX), Invert(ranges(MIN, 0)))
}

func Test_Exclude_01(t *testing.T) {
	check_Exclude(t, ranges(1, 10), ranges(5, 5), ranges(1, 4, 6, 10))
}

func Test_Exclude_02(t *testing.T) {
	check_Exclude(t, ranges(1, 10), ranges(1, 10), nil)
}

func Test_Exclude_03(t *testing.T) {
	check_Exclude(t, ranges(1, 10, 20, 30), ranges(1, 2, 25, 30), ranges(3, 10, 20, 24))
}

func Test_Exclude_04(t *testing.T) {
	check_Exclude(t, ranges(MIN, MAX), ranges(0, 0), ranges(MIN, -1, 1, MAX))
}

func Test_Exclude_Invalid_01(t *testing.T) {
	check_ExcludeFails(t, ranges(1, 10), ranges(20, 20))
}

func Test_Exclude_Invalid_02(t *testing.T) {
	// Spans two ranges, hence not contained in either.
	check_ExcludeFails(t, ranges(1, 10, 20, 30), ranges(5, 25))
}

func Test_Exclude_Invalid_03(t *testing.T) {
	check_ExcludeFails(t, nil, ranges(0, 0))
}

func Test_Complement_01(t *testing.T) {
	universe := NewRange(0, MAX)
	//
	assert.Equal(t, []Range{universe}, Complement(nil, universe))
	assert.Equal(t, ranges(0, 0, 11, MAX), Complement(ranges(1, 10), universe))
}

func Test_Succ_Pred_01(t *testing.T) {
	_, ok := Succ(MAX, MAX)
	assert.False(t, ok)
	_, ok = Pred(MIN, MIN)
	assert.False(t, ok)
	//
	v, ok := Succ[int64](5, MAX)
	assert.True(t, ok)
	assert.Equal(t, int64(6), v)
}

// ===================================================================
// Property Tests
// ===================================================================

func Test_Canonicalize_Idempotent(t *testing.T) {
	for i := 0; i < 1000; i++ {
		r := randomRanges(rand.Intn(8), 64)
		once := Canonicalize(r)
		//
		assert.Equal(t, once, Canonicalize(once), fmt.Sprintf("ranges %s", RangesString(r)))
		assert.True(t, IsCanonical(once))
	}
}

func Test_DeMorgan(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a := Canonicalize(randomRanges(1+rand.Intn(6), 64))
		b := Canonicalize(randomRanges(1+rand.Intn(6), 64))
		//
		lhs := Invert(Union(a, b))
		rhs := Intersection(Invert(a), Invert(b))
		//
		assert.Equal(t, lhs, rhs, fmt.Sprintf("A=%s, B=%s", RangesString(a), RangesString(b)))
	}
}

func Test_ExcludeInclude_RoundTrip(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a := Canonicalize(randomRanges(1+rand.Intn(6), 64))
		// pick a sub-range of some range in a
		r := a[rand.Intn(len(a))]
		lower := r.Lower + rand.Int63n(r.Upper-r.Lower+1)
		upper := lower + rand.Int63n(r.Upper-lower+1)
		b := []Range{{lower, upper}}
		//
		excluded, err := Exclude(a, b)
		assert.True(t, err == nil)
		assert.Equal(t, a, Union(excluded, b))
		assert.Equal(t, 0, len(Intersection(excluded, b)))
	}
}

func Test_Difference_Agrees_Exclude(t *testing.T) {
	a := ranges(1, 10, 20, 30)
	b := ranges(5, 6)
	excluded, err := Exclude(a, b)
	//
	assert.True(t, err == nil)
	assert.Equal(t, excluded, Difference(a, b))
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Canonicalize(t *testing.T, input []Range, expected []Range) {
	actual := Canonicalize(input)
	//
	assert.Equal(t, expected, actual)
	assert.True(t, IsCanonical(actual))
}

func check_Exclude(t *testing.T, from []Range, excluded []Range, expected []Range) {
	actual, err := Exclude(from, excluded)
	//
	assert.True(t, err == nil, "unexpected error: %v", err)
	assert.Equal(t, expected, actual)
}

func check_ExcludeFails(t *testing.T, from []Range, excluded []Range) {
	_, err := Exclude(from, excluded)
	//
	assert.True(t, err != nil)
	//
	_, ok := err.(*ExclusionError)
	assert.True(t, ok)
}

func ranges(bounds ...int64) []Range {
	var result []Range
	//
	for i := 0; i+1 < len(bounds); i += 2 {
		result = append(result, NewRange(bounds[i], bounds[i+1]))
	}
	//
	return result
}

func randomRanges(n int, limit int64) []Range {
	var result []Range
	//
	for i := 0; i < n; i++ {
		lower := rand.Int63n(limit)
		upper := lower + rand.Int63n(limit/4+1)
		result = append(result, Range{lower, upper})
	}
	//
	return result
}
