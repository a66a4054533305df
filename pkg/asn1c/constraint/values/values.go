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
	"fmt"

	"github.com/consensys/go-asn1c/pkg/asn1c/il"
	"github.com/consensys/go-asn1c/pkg/util/math"
)

// Values represents a set of permitted values drawn from the universe of a
// single domain (e.g. the integers, the character strings, etc).  A set of
// values may be "inverted", meaning it holds every value of the universe
// except those listed.  Implementations are immutable: every operation returns
// a fresh set.
type Values interface {
	// Union returns the set of values in this set or the other.
	Union(other Values) Values
	// Intersection returns the set of values in both this set and the other.
	Intersection(other Values) Values
	// Exclude removes the values of the other set from this set.  Every
	// excluded value must be a member of this set, otherwise an error is
	// returned.
	Exclude(other Values) (Values, error)
	// Invert returns the set of values in the universe which are not in this
	// set.
	Invert() Values
	// Copy returns a copy of this set.
	Copy() Values
	// IsEmpty checks whether this set permits no values at all.
	IsEmpty() bool
	// IsFull checks whether this set permits every value of its universe.
	IsFull() bool
	// String returns a human readable form of this set.
	String() string
}

// SizedValues is implemented by sets whose values have a length, such as
// strings and bit strings.  This allows a set of values to be combined with a
// SIZE constraint.
type SizedValues interface {
	Values
	// FilterSize returns those values whose length is inside (or outside) the
	// given ranges.  The second return is false if the result cannot be
	// expressed as a set of values (e.g. because this set is inverted).
	FilterSize(sizes []math.Range, inside bool) (Values, bool)
	// SizeHull returns the smallest range enclosing the lengths of every value
	// in this set.  The second return is false if no such range exists.
	SizeHull() (math.Range, bool)
}

// AlphabetValues is implemented by sets of character strings.  This allows a
// set of values to be combined with a permitted alphabet.
type AlphabetValues interface {
	Values
	// FilterAlphabet returns those values whose characters all lie within the
	// given code point ranges.  The second return is false if the result
	// cannot be expressed as a set of values.
	FilterAlphabet(alphabet []math.Range) (Values, bool)
}

// ListedValues is implemented by sets held as a (possibly inverted) list of
// values, such as strings and object identifiers.
type ListedValues interface {
	Values
	// Literals returns the listed values as IL literals.
	Literals() []*il.Value
	// Inverted indicates whether the set holds every value except those
	// listed.
	Inverted() bool
}

// ExclusionError reports an attempt to exclude values which are not all
// members of the set they are being excluded from.
type ExclusionError struct {
	Excluded string
	From     string
}

func (p *ExclusionError) Error() string {
	return fmt.Sprintf("%s is not contained in %s", p.Excluded, p.From)
}

func cast[V Values](value Values) V {
	if v, ok := value.(V); ok {
		return v
	}
	//
	var expected V
	//
	panic(fmt.Sprintf("incompatible value sets (%T vs %T)", value, expected))
}
