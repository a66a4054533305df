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
	"github.com/consensys/go-asn1c/pkg/asn1c/constraint/values"
	"github.com/consensys/go-asn1c/pkg/util/math"
)

// SizeBounds derives a single range enclosing the length of every value
// permitted by a node, without evaluating the node.  This is used to generate
// length pre-checks for strings and collections.  The second return is false
// when no bound can be determined.
func SizeBounds(node Node) (math.Range, bool) {
	switch n := node.(type) {
	case *SizeNode:
		return math.Hull(n.Sizes)
	case *ValueNode:
		if sized, ok := n.Values.(values.SizedValues); ok {
			return sized.SizeHull()
		}
	case *BinOpNode:
		var (
			lhs, lok = SizeBounds(n.Left)
			rhs, rok = SizeBounds(n.Right)
		)
		//
		switch {
		case n.Op == COMPLEMENT:
			return lhs, lok
		case n.Op == UNION && lok && rok:
			return math.Hull([]math.Range{lhs, rhs})
		case n.Op == INTERSECTION && lok && rok:
			if lhs.Overlaps(rhs) {
				return math.Range{Lower: max(lhs.Lower, rhs.Lower), Upper: min(lhs.Upper, rhs.Upper)}, true
			}
		case n.Op == INTERSECTION && lok:
			return lhs, true
		case n.Op == INTERSECTION && rok:
			return rhs, true
		}
	}
	//
	return math.FULL, false
}
