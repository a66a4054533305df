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
	"slices"
	"strings"
)

// MIN is the sentinel used to represent the ASN.1 MIN keyword.  Any range whose
// lower bound is MIN is unbounded below.
const MIN int64 = -1 << 63

// MAX is the sentinel used to represent the ASN.1 MAX keyword.  Any range whose
// upper bound is MAX is unbounded above.
const MAX int64 = 1<<63 - 1

// FULL is the range which encloses all other ranges.
var FULL = Range{MIN, MAX}

// Range provides a discrete (inclusive) range of integers, such as 0..1,
// 1..18, MIN..5, etc.  Ranges are used both for the values of INTEGER types and
// for the permitted sizes of strings and collections.  The bounds MIN and MAX
// act as sentinels for the corresponding ASN.1 keywords.
type Range struct {
	Lower int64
	Upper int64
}

// NewRange creates a range representing a given (inclusive) interval.  This
// will panic if the lower bound is above the upper bound.
func NewRange(lower int64, upper int64) Range {
	// sanity check
	if lower > upper {
		panic(fmt.Sprintf("invalid range (%d > %d)", lower, upper))
	}
	//
	return Range{lower, upper}
}

// Point creates a range holding exactly one value.
func Point(value int64) Range {
	return Range{value, value}
}

// IsPoint determines whether this range holds exactly one value.
func (p Range) IsPoint() bool {
	return p.Lower == p.Upper
}

// Contains checks whether a given value is contained with this range.
func (p Range) Contains(value int64) bool {
	return p.Lower <= value && value <= p.Upper
}

// Within checks whether this range is contained within the given range.
func (p Range) Within(other Range) bool {
	return other.Lower <= p.Lower && p.Upper <= other.Upper
}

// Overlaps checks whether this range shares at least one value with the given
// range.
func (p Range) Overlaps(other Range) bool {
	return p.Lower <= other.Upper && other.Lower <= p.Upper
}

// Cmp orders ranges by lower bound and then upper bound.
func (p Range) Cmp(other Range) int {
	switch {
	case p.Lower < other.Lower:
		return -1
	case p.Lower > other.Lower:
		return 1
	case p.Upper < other.Upper:
		return -1
	case p.Upper > other.Upper:
		return 1
	default:
		return 0
	}
}

func (p Range) String() string {
	if p.IsPoint() {
		return endpointString(p.Lower)
	}
	//
	return fmt.Sprintf("%s..%s", endpointString(p.Lower), endpointString(p.Upper))
}

func endpointString(value int64) string {
	switch value {
	case MIN:
		return "MIN"
	case MAX:
		return "MAX"
	default:
		return fmt.Sprintf("%d", value)
	}
}

// RangesString renders a list of ranges in ASN.1 union notation.
func RangesString(ranges []Range) string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, r := range ranges {
		if i != 0 {
			builder.WriteString(" | ")
		}
		//
		builder.WriteString(r.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// ExclusionError reports an attempt to exclude a range which is not enclosed
// by the ranges it is being excluded from.
type ExclusionError struct {
	// Range which could not be excluded.
	Excluded Range
	// Ranges from which exclusion was attempted.
	From []Range
}

func (p *ExclusionError) Error() string {
	return fmt.Sprintf("range %s is not contained in %s", p.Excluded.String(), RangesString(p.From))
}

// endpointGap classifies the distance between the lower bound of one range and
// the upper bound of the preceding range: -1 means they overlap, 1 means they
// are adjacent (differ by exactly one) and 2 means at least one value lies
// between them.  This avoids computing lower - upper, which can overflow.
func endpointGap(lower int64, upper int64) int {
	switch {
	case lower <= upper:
		return -1
	case upper != MAX && lower == upper+1:
		return 1
	default:
		return 2
	}
}

// Canonicalize sorts a given list of ranges and merges any which overlap or are
// adjacent.  The result is sorted in ascending order, and any two consecutive
// ranges have a gap of at least one value between them.  The given list is not
// modified.
func Canonicalize(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}
	//
	var (
		sorted = slices.Clone(ranges)
		result []Range
	)
	//
	slices.SortFunc(sorted, Range.Cmp)
	//
	current := sorted[0]
	//
	for _, next := range sorted[1:] {
		if endpointGap(next.Lower, current.Upper) <= 1 {
			current.Upper = max(current.Upper, next.Upper)
		} else {
			result = append(result, current)
			current = next
		}
	}
	//
	return append(result, current)
}

// IsCanonical checks whether a list of ranges is already in canonical form.
func IsCanonical(ranges []Range) bool {
	for i := range ranges {
		if ranges[i].Lower > ranges[i].Upper {
			return false
		} else if i > 0 && endpointGap(ranges[i].Lower, ranges[i-1].Upper) <= 1 {
			return false
		}
	}
	//
	return true
}

// Union returns the canonical union of two lists of ranges.
func Union(lhs []Range, rhs []Range) []Range {
	all := make([]Range, 0, len(lhs)+len(rhs))
	all = append(all, lhs...)
	all = append(all, rhs...)
	//
	return Canonicalize(all)
}

// Intersection returns the canonical intersection of two lists of ranges.  This
// sweeps both canonical lists in tandem, advancing whichever range ends first
// and emitting the overlap whenever the current ranges intersect.
func Intersection(lhs []Range, rhs []Range) []Range {
	var (
		left   = Canonicalize(lhs)
		right  = Canonicalize(rhs)
		result []Range
		i, j   int
	)
	//
	for i < len(left) && j < len(right) {
		lower := max(left[i].Lower, right[j].Lower)
		upper := min(left[i].Upper, right[j].Upper)
		//
		if lower <= upper {
			result = append(result, Range{lower, upper})
		}
		// Advance whichever finishes first.  The other may still overlap with
		// subsequent ranges.
		if left[i].Upper < right[j].Upper {
			i++
		} else {
			j++
		}
	}
	//
	return Canonicalize(result)
}

// Invert returns the gaps not covered by a given list of ranges, with respect
// to the universe MIN..MAX.  Observe that an empty list inverts to an empty
// list: an absent restriction remains absent under inversion.
func Invert(ranges []Range) []Range {
	var (
		canonical = Canonicalize(ranges)
		result    []Range
	)
	//
	if len(canonical) == 0 {
		return nil
	}
	// Gap before first range
	if first := canonical[0]; first.Lower > MIN {
		result = append(result, Range{MIN, first.Lower - 1})
	}
	// Gaps between ranges.  Since ranges are canonical, there is always at
	// least one value between consecutive ranges.
	for i := 1; i < len(canonical); i++ {
		result = append(result, Range{canonical[i-1].Upper + 1, canonical[i].Lower - 1})
	}
	// Gap after last range
	if last := canonical[len(canonical)-1]; last.Upper < MAX {
		result = append(result, Range{last.Upper + 1, MAX})
	}
	//
	return result
}

// Complement returns the set of values within a given universe which are not
// covered by the given ranges.  Unlike Invert, an empty list complements to the
// whole universe.
func Complement(ranges []Range, universe Range) []Range {
	if len(ranges) == 0 {
		return []Range{universe}
	}
	//
	return Intersection(Invert(ranges), []Range{universe})
}

// Difference returns those values of lhs which are not in rhs.  Unlike Exclude,
// values of rhs need not be contained in lhs.
func Difference(lhs []Range, rhs []Range) []Range {
	if len(rhs) == 0 {
		return Canonicalize(lhs)
	}
	//
	return Intersection(lhs, Invert(rhs))
}

// Exclude removes every range of the second list from the first.  Every
// excluded range must be fully contained within a single range of the first
// list, otherwise an ExclusionError is returned.  This reflects the ASN.1
// requirement that values excluded from a type are actually values of that
// type.
func Exclude(from []Range, excluded []Range) ([]Range, error) {
	var (
		result = Canonicalize(from)
		parent = result
	)
	//
	for _, ex := range Canonicalize(excluded) {
		index := slices.IndexFunc(result, func(r Range) bool {
			return ex.Within(r)
		})
		//
		if index < 0 {
			return nil, &ExclusionError{ex, parent}
		}
		//
		var (
			enclosing = result[index]
			split     []Range
		)
		//
		if ex.Lower > enclosing.Lower {
			split = append(split, Range{enclosing.Lower, ex.Lower - 1})
		}
		//
		if ex.Upper < enclosing.Upper {
			split = append(split, Range{ex.Upper + 1, enclosing.Upper})
		}
		//
		result = slices.Concat(result[:index], split, result[index+1:])
	}
	//
	return result, nil
}

// Contains checks whether a given value lies in any of the given ranges.
func Contains(ranges []Range, value int64) bool {
	for _, r := range ranges {
		if r.Contains(value) {
			return true
		}
	}
	//
	return false
}

// Hull returns the smallest single range enclosing every given range.  The
// second return indicates whether any range was given.
func Hull(ranges []Range) (Range, bool) {
	if len(ranges) == 0 {
		return Range{}, false
	}
	//
	hull := ranges[0]
	//
	for _, r := range ranges[1:] {
		hull.Lower = min(hull.Lower, r.Lower)
		hull.Upper = max(hull.Upper, r.Upper)
	}
	//
	return hull, true
}

// IsFull checks whether a list of ranges covers every value between MIN and
// MAX.
func IsFull(ranges []Range) bool {
	canonical := Canonicalize(ranges)
	//
	return len(canonical) == 1 && canonical[0] == FULL
}

// Equal checks whether two lists of ranges denote the same set of values.
func Equal(lhs []Range, rhs []Range) bool {
	return slices.Equal(Canonicalize(lhs), Canonicalize(rhs))
}
