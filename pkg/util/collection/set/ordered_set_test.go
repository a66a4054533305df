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
package set

import (
	"cmp"
	"fmt"
	"math/rand"
	"testing"

	"github.com/consensys/go-asn1c/pkg/util/assert"
)

type item int

func (lhs item) Cmp(rhs item) int {
	return cmp.Compare(lhs, rhs)
}

func Test_OrderedSet_01(t *testing.T) {
	set := NewOrderedSet[item](3, 1, 2, 3, 1)
	//
	assert.Equal(t, OrderedSet[item]{1, 2, 3}, set)
	assert.True(t, set.Contains(2))
	assert.False(t, set.Contains(4))
	assert.Equal(t, -1, set.Find(0))
}

func Test_OrderedSet_02(t *testing.T) {
	lhs := NewOrderedSet[item](1, 3, 5)
	rhs := NewOrderedSet[item](2, 3, 4)
	//
	assert.Equal(t, OrderedSet[item]{1, 2, 3, 4, 5}, lhs.Union(rhs))
	assert.Equal(t, OrderedSet[item]{3}, lhs.Intersection(rhs))
	assert.Equal(t, OrderedSet[item]{1, 5}, lhs.Difference(rhs))
	assert.False(t, lhs.ContainsAll(rhs))
	assert.True(t, lhs.ContainsAll(NewOrderedSet[item](5, 1)))
}

func Test_OrderedSet_03(t *testing.T) {
	for i := 0; i < 1000; i++ {
		t.Run(fmt.Sprintf("i=%d", i), func(t *testing.T) {
			check_OrderedSet_Algebra(t, 10, 32)
		})
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_OrderedSet_Algebra(t *testing.T, n int, m int) {
	var (
		lhs = randomSet(n, m)
		rhs = randomSet(n, m)
		un  = lhs.Union(rhs)
		in  = lhs.Intersection(rhs)
	)
	// Union and intersection must remain sets
	assert.Equal(t, NewOrderedSet(un...), un)
	assert.Equal(t, NewOrderedSet(in...), in)
	//
	for v := range item(m) {
		assert.Equal(t, lhs.Contains(v) || rhs.Contains(v), un.Contains(v))
		assert.Equal(t, lhs.Contains(v) && rhs.Contains(v), in.Contains(v))
		assert.Equal(t, lhs.Contains(v) && !rhs.Contains(v), lhs.Difference(rhs).Contains(v))
	}
}

func randomSet(n int, m int) OrderedSet[item] {
	items := make([]item, n)
	//
	for i := range items {
		items[i] = item(rand.Intn(m))
	}
	//
	return NewOrderedSet(items...)
}
