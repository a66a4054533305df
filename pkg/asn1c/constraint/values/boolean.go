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

import "strings"

const (
	falseBit uint8 = 1
	trueBit  uint8 = 2
	allBits        = falseBit | trueBit
)

// BooleanValues represents a subset of {FALSE, TRUE}.
type BooleanValues struct {
	mask uint8
}

// NewBooleanValues constructs a set holding the given booleans.
func NewBooleanValues(values ...bool) *BooleanValues {
	var mask uint8
	//
	for _, v := range values {
		mask |= booleanBit(v)
	}
	//
	return &BooleanValues{mask}
}

// Contains checks whether a given boolean is in this set.
func (p *BooleanValues) Contains(value bool) bool {
	return p.mask&booleanBit(value) != 0
}

// Union implementation for the Values interface.
func (p *BooleanValues) Union(other Values) Values {
	return &BooleanValues{p.mask | cast[*BooleanValues](other).mask}
}

// Intersection implementation for the Values interface.
func (p *BooleanValues) Intersection(other Values) Values {
	return &BooleanValues{p.mask & cast[*BooleanValues](other).mask}
}

// Exclude implementation for the Values interface.
func (p *BooleanValues) Exclude(other Values) (Values, error) {
	o := cast[*BooleanValues](other)
	//
	if o.mask&^p.mask != 0 {
		return nil, &ExclusionError{o.String(), p.String()}
	}
	//
	return &BooleanValues{p.mask &^ o.mask}, nil
}

// Invert implementation for the Values interface.
func (p *BooleanValues) Invert() Values {
	return &BooleanValues{p.mask ^ allBits}
}

// Copy implementation for the Values interface.
func (p *BooleanValues) Copy() Values {
	return &BooleanValues{p.mask}
}

// IsEmpty implementation for the Values interface.
func (p *BooleanValues) IsEmpty() bool {
	return p.mask == 0
}

// IsFull implementation for the Values interface.
func (p *BooleanValues) IsFull() bool {
	return p.mask == allBits
}

func (p *BooleanValues) String() string {
	var items []string
	//
	if p.Contains(false) {
		items = append(items, "FALSE")
	}
	//
	if p.Contains(true) {
		items = append(items, "TRUE")
	}
	//
	return "{" + strings.Join(items, ", ") + "}"
}

func booleanBit(value bool) uint8 {
	if value {
		return trueBit
	}
	//
	return falseBit
}

// NullValues represents a subset of {NULL}.
type NullValues struct {
	null bool
}

// NewNullValues constructs a set which either holds NULL or is empty.
func NewNullValues(null bool) *NullValues {
	return &NullValues{null}
}

// Union implementation for the Values interface.
func (p *NullValues) Union(other Values) Values {
	return &NullValues{p.null || cast[*NullValues](other).null}
}

// Intersection implementation for the Values interface.
func (p *NullValues) Intersection(other Values) Values {
	return &NullValues{p.null && cast[*NullValues](other).null}
}

// Exclude implementation for the Values interface.
func (p *NullValues) Exclude(other Values) (Values, error) {
	o := cast[*NullValues](other)
	//
	if o.null && !p.null {
		return nil, &ExclusionError{o.String(), p.String()}
	}
	//
	return &NullValues{p.null && !o.null}, nil
}

// Invert implementation for the Values interface.
func (p *NullValues) Invert() Values {
	return &NullValues{!p.null}
}

// Copy implementation for the Values interface.
func (p *NullValues) Copy() Values {
	return &NullValues{p.null}
}

// IsEmpty implementation for the Values interface.
func (p *NullValues) IsEmpty() bool {
	return !p.null
}

// IsFull implementation for the Values interface.
func (p *NullValues) IsFull() bool {
	return p.null
}

func (p *NullValues) String() string {
	if p.null {
		return "{NULL}"
	}
	//
	return "{}"
}
