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
	"github.com/consensys/go-asn1c/pkg/asn1c/il"
	"github.com/consensys/go-asn1c/pkg/util/collection/set"
	"github.com/consensys/go-asn1c/pkg/util/math"
)

// Element is implemented by the values of domains whose universe is unbounded
// (e.g. bit strings, character strings, object identifiers).  Such values are
// held in an OrderedSet, using Cmp as the ordering strategy.
type Element[T any] interface {
	set.Comparable[T]
	// Literal returns this value as an IL literal.
	Literal() *il.Value
	// String returns this value in ASN.1 value notation.
	String() string
}

// Sized is implemented by elements which have a length.
type Sized interface {
	Size() int64
}

// OrderedValues represents a finite set of values, or (when inverted) every
// value except a finite set.
type OrderedValues[T Element[T]] struct {
	items    set.OrderedSet[T]
	inverted bool
}

// NewOrderedValues constructs a set holding exactly the given values.
func NewOrderedValues[T Element[T]](items ...T) *OrderedValues[T] {
	return &OrderedValues[T]{set.NewOrderedSet(items...), false}
}

// AllExcept constructs a set holding every value except those given.
func AllExcept[T Element[T]](items ...T) *OrderedValues[T] {
	return &OrderedValues[T]{set.NewOrderedSet(items...), true}
}

// Items returns the values listed by this set.  When the set is inverted,
// these are the values which are excluded.
func (p *OrderedValues[T]) Items() []T {
	return p.items
}

// Inverted indicates whether this set holds every value except its items.
func (p *OrderedValues[T]) Inverted() bool {
	return p.inverted
}

// Contains checks whether a given value is in this set.
func (p *OrderedValues[T]) Contains(item T) bool {
	return p.items.Contains(item) != p.inverted
}

// Union implementation for the Values interface.
func (p *OrderedValues[T]) Union(other Values) Values {
	o := cast[*OrderedValues[T]](other)
	//
	switch {
	case !p.inverted && !o.inverted:
		return &OrderedValues[T]{p.items.Union(o.items), false}
	case p.inverted && o.inverted:
		return &OrderedValues[T]{p.items.Intersection(o.items), true}
	case p.inverted:
		return &OrderedValues[T]{p.items.Difference(o.items), true}
	default:
		return &OrderedValues[T]{o.items.Difference(p.items), true}
	}
}

// Intersection implementation for the Values interface.
func (p *OrderedValues[T]) Intersection(other Values) Values {
	o := cast[*OrderedValues[T]](other)
	//
	switch {
	case !p.inverted && !o.inverted:
		return &OrderedValues[T]{p.items.Intersection(o.items), false}
	case p.inverted && o.inverted:
		return &OrderedValues[T]{p.items.Union(o.items), true}
	case p.inverted:
		return &OrderedValues[T]{o.items.Difference(p.items), false}
	default:
		return &OrderedValues[T]{p.items.Difference(o.items), false}
	}
}

// Exclude implementation for the Values interface.  The excluded values must
// all be members of this set.  An inverted set can only be excluded from
// another inverted set, since otherwise infinitely many excluded values lie
// outside.
func (p *OrderedValues[T]) Exclude(other Values) (Values, error) {
	o := cast[*OrderedValues[T]](other)
	//
	switch {
	case !p.inverted && !o.inverted:
		if !p.items.ContainsAll(o.items) {
			return nil, &ExclusionError{o.String(), p.String()}
		}
		//
		return &OrderedValues[T]{p.items.Difference(o.items), false}, nil
	case p.inverted && !o.inverted:
		if !o.items.Intersection(p.items).IsEmpty() {
			return nil, &ExclusionError{o.String(), p.String()}
		}
		//
		return &OrderedValues[T]{p.items.Union(o.items), true}, nil
	case p.inverted && o.inverted:
		// (U - a) - (U - b) = b - a, which requires a to be within b.
		if !o.items.ContainsAll(p.items) {
			return nil, &ExclusionError{o.String(), p.String()}
		}
		//
		return &OrderedValues[T]{o.items.Difference(p.items), false}, nil
	default:
		return nil, &ExclusionError{o.String(), p.String()}
	}
}

// Invert implementation for the Values interface.
func (p *OrderedValues[T]) Invert() Values {
	return &OrderedValues[T]{p.items, !p.inverted}
}

// Copy implementation for the Values interface.
func (p *OrderedValues[T]) Copy() Values {
	return &OrderedValues[T]{set.NewOrderedSet(p.items...), p.inverted}
}

// IsEmpty implementation for the Values interface.
func (p *OrderedValues[T]) IsEmpty() bool {
	return !p.inverted && p.items.IsEmpty()
}

// IsFull implementation for the Values interface.
func (p *OrderedValues[T]) IsFull() bool {
	return p.inverted && p.items.IsEmpty()
}

// FilterSize implementation for the SizedValues interface.
func (p *OrderedValues[T]) FilterSize(sizes []math.Range, inside bool) (Values, bool) {
	if p.inverted {
		return nil, false
	}
	//
	for _, item := range p.items {
		if _, ok := any(item).(Sized); !ok {
			return nil, false
		}
	}
	//
	items := p.items.Filter(func(item T) bool {
		return math.Contains(sizes, any(item).(Sized).Size()) == inside
	})
	//
	return &OrderedValues[T]{items, false}, true
}

// SizeHull implementation for the SizedValues interface.
func (p *OrderedValues[T]) SizeHull() (math.Range, bool) {
	var sizes []math.Range
	//
	if p.inverted {
		return math.FULL, false
	}
	//
	for _, item := range p.items {
		sized, ok := any(item).(Sized)
		//
		if !ok {
			return math.FULL, false
		}
		//
		sizes = append(sizes, math.Point(sized.Size()))
	}
	//
	return math.Hull(sizes)
}

// Literals implementation for the ListedValues interface.
func (p *OrderedValues[T]) Literals() []*il.Value {
	var literals = make([]*il.Value, len(p.items))
	//
	for i, item := range p.items {
		literals[i] = item.Literal()
	}
	//
	return literals
}

// FilterAlphabet implementation for the AlphabetValues interface.
func (p *OrderedValues[T]) FilterAlphabet(alphabet []math.Range) (Values, bool) {
	if p.inverted {
		return nil, false
	}
	//
	var items = make(set.OrderedSet[T], 0, len(p.items))
	//
	for _, item := range p.items {
		chars, ok := any(item).(Chars)
		//
		if !ok {
			return nil, false
		} else if chars.Within(alphabet) {
			items = append(items, item)
		}
	}
	//
	return &OrderedValues[T]{items, false}, true
}

func (p *OrderedValues[T]) String() string {
	str := p.items.String(func(item T) string { return item.String() })
	//
	if p.inverted {
		return "ALL EXCEPT " + str
	}
	//
	return str
}
