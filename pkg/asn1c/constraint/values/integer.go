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
	"slices"

	"github.com/consensys/go-asn1c/pkg/util/math"
)

// IntegerValues represents a set of integers as canonical ranges, drawn from a
// given universe.  For INTEGER types the universe is MIN..MAX, whilst for
// ENUMERATED types it is the set of item numbers, and for SIZE constraints it
// is 0..MAX.
type IntegerValues struct {
	ranges   []math.Range
	universe []math.Range
}

// NewIntegerValues constructs a set of integers drawn from MIN..MAX.
func NewIntegerValues(ranges ...math.Range) *IntegerValues {
	return &IntegerValues{math.Canonicalize(ranges), []math.Range{math.FULL}}
}

// NewIntegerValuesWithin constructs a set of integers drawn from a given
// universe.  Any values outside the universe are discarded.
func NewIntegerValuesWithin(universe []math.Range, ranges ...math.Range) *IntegerValues {
	return &IntegerValues{math.Intersection(ranges, universe), math.Canonicalize(universe)}
}

// Ranges returns the canonical ranges of this set.
func (p *IntegerValues) Ranges() []math.Range {
	return p.ranges
}

// Universe returns the canonical ranges of the universe this set is drawn
// from.
func (p *IntegerValues) Universe() []math.Range {
	return p.universe
}

// Contains checks whether a given value is in this set.
func (p *IntegerValues) Contains(value int64) bool {
	return math.Contains(p.ranges, value)
}

// Union implementation for the Values interface.
func (p *IntegerValues) Union(other Values) Values {
	o := cast[*IntegerValues](other)
	//
	return &IntegerValues{math.Union(p.ranges, o.ranges), math.Union(p.universe, o.universe)}
}

// Intersection implementation for the Values interface.
func (p *IntegerValues) Intersection(other Values) Values {
	o := cast[*IntegerValues](other)
	//
	return &IntegerValues{math.Intersection(p.ranges, o.ranges), p.universe}
}

// Exclude implementation for the Values interface.
func (p *IntegerValues) Exclude(other Values) (Values, error) {
	o := cast[*IntegerValues](other)
	//
	ranges, err := math.Exclude(p.ranges, o.ranges)
	//
	if err != nil {
		return nil, err
	}
	//
	return &IntegerValues{ranges, p.universe}, nil
}

// Invert implementation for the Values interface.  Observe that, unlike
// math.Invert, the empty set inverts to the whole universe.
func (p *IntegerValues) Invert() Values {
	return &IntegerValues{math.Difference(p.universe, p.ranges), p.universe}
}

// Copy implementation for the Values interface.
func (p *IntegerValues) Copy() Values {
	return &IntegerValues{slices.Clone(p.ranges), slices.Clone(p.universe)}
}

// IsEmpty implementation for the Values interface.
func (p *IntegerValues) IsEmpty() bool {
	return len(p.ranges) == 0
}

// IsFull implementation for the Values interface.
func (p *IntegerValues) IsFull() bool {
	return math.Equal(p.ranges, p.universe)
}

func (p *IntegerValues) String() string {
	return math.RangesString(p.ranges)
}
