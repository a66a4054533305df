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
	"slices"
	"sort"
	"strings"
)

// Comparable provides an interface which types used in an OrderedSet must
// implement.  This is the pluggable ordering strategy for a set.
type Comparable[T any] interface {
	// Cmp returns < 0 if this is less than other, or 0 if they are equal, or >
	// 0 if this is greater than other.
	Cmp(other T) int
}

// OrderedSet is an array of unique sorted values (i.e. no duplicates).  All
// operations return fresh sets, leaving their operands untouched.
type OrderedSet[T Comparable[T]] []T

// NewOrderedSet creates a sorted set from a given array by first cloning that
// array, and then sorting it appropriately, etc.  This means the given array
// will not be mutated by this function, or any subsequent calls on the
// resulting set.
func NewOrderedSet[T Comparable[T]](items ...T) OrderedSet[T] {
	var nitems = slices.Clone(items)
	// Sort incoming data
	slices.SortFunc(nitems, func(a, b T) int {
		return a.Cmp(b)
	})
	// Remove duplicates
	nitems = slices.CompactFunc(nitems, func(a, b T) bool {
		return a.Cmp(b) == 0
	})
	//
	return nitems
}

// Len returns the number of elements in this set.
func (p OrderedSet[T]) Len() int {
	return len(p)
}

// IsEmpty checks whether this set has no elements.
func (p OrderedSet[T]) IsEmpty() bool {
	return len(p) == 0
}

// Find returns the index of the matching element in this set, or -1 if no such
// element exists.
func (p OrderedSet[T]) Find(element T) int {
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(p), func(i int) bool {
		// element <= data[i]
		return element.Cmp(p[i]) <= 0
	})
	// Check whether item existed or not.
	if i < len(p) && p[i].Cmp(element) == 0 {
		return i
	}
	// not found
	return -1
}

// Contains returns true if a given element is in the set.
func (p OrderedSet[T]) Contains(element T) bool {
	return p.Find(element) >= 0
}

// ContainsAll returns true if every element of a given set is in this set.
func (p OrderedSet[T]) ContainsAll(other OrderedSet[T]) bool {
	return countDuplicates(p, other) == len(other)
}

// Union returns the set of elements in either this set or the other.
func (p OrderedSet[T]) Union(other OrderedSet[T]) OrderedSet[T] {
	var (
		n      = countDuplicates(p, other)
		target = make([]T, len(p)+len(other)-n)
		i, j   int
	)
	//
	for k := range target {
		switch {
		case j >= len(other) || (i < len(p) && p[i].Cmp(other[j]) < 0):
			target[k] = p[i]
			i++
		case i >= len(p) || p[i].Cmp(other[j]) > 0:
			target[k] = other[j]
			j++
		default:
			target[k] = p[i]
			i++
			j++
		}
	}
	//
	return target
}

// Intersection returns the set of elements in both this set and the other.
func (p OrderedSet[T]) Intersection(other OrderedSet[T]) OrderedSet[T] {
	var (
		target OrderedSet[T]
		i, j   int
	)
	//
	for i < len(p) && j < len(other) {
		if c := p[i].Cmp(other[j]); c < 0 {
			i++
		} else if c > 0 {
			j++
		} else {
			target = append(target, p[i])
			i++
			j++
		}
	}
	//
	return target
}

// Difference returns the set of elements in this set which are not in the
// other.
func (p OrderedSet[T]) Difference(other OrderedSet[T]) OrderedSet[T] {
	return p.Filter(func(item T) bool {
		return !other.Contains(item)
	})
}

// Filter returns the set of elements in this set matching a given predicate.
func (p OrderedSet[T]) Filter(predicate func(T) bool) OrderedSet[T] {
	var target OrderedSet[T]
	//
	for _, item := range p {
		if predicate(item) {
			target = append(target, item)
		}
	}
	//
	return target
}

// String renders this set using a given function for each element.
func (p OrderedSet[T]) String(fn func(T) string) string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, item := range p {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fn(item))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

// Determine number of duplicate elements
func countDuplicates[T Comparable[T]](left []T, right []T) int {
	// Check containment
	i := 0
	j := 0
	n := 0

	for i < len(left) && j < len(right) {
		if c := left[i].Cmp(right[j]); c == 0 {
			i++
			j++
			n++ // duplicate detected
		} else if c < 0 {
			i++
		} else {
			j++
		}
	}

	return n
}
