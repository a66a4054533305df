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
	"slices"

	"github.com/consensys/go-asn1c/pkg/asn1c/constraint/values"
	"github.com/consensys/go-asn1c/pkg/util/math"
)

// SIZE_BOUNDS is the universe of lengths, used when resolving MIN and MAX
// within a SIZE constraint and when negating a SIZE node.
var SIZE_BOUNDS = math.Range{Lower: 0, Upper: math.MAX}

// pairing classifies two sibling nodes, determining which fusion rule (if any)
// applies to them.
type pairing uint8

const (
	OTHER pairing = iota
	VALUE_VALUE
	VALUE_NEGATION
	NEGATION_VALUE
	SIZE_SIZE
	SIZE_NEGATION
	NEGATION_SIZE
	VALUE_SIZE
	SIZE_VALUE
	ALPHABET_ALPHABET
	VALUE_ALPHABET
	ALPHABET_VALUE
)

func classify(lhs Node, rhs Node) pairing {
	var (
		l = lhs.Type()
		r = rhs.Type()
	)
	//
	switch {
	case l == VALUE && r == VALUE:
		return VALUE_VALUE
	case l == SIZE && r == SIZE:
		return SIZE_SIZE
	case l == VALUE && r == SIZE:
		return VALUE_SIZE
	case l == SIZE && r == VALUE:
		return SIZE_VALUE
	case l == PERMITTED_ALPHABET && r == PERMITTED_ALPHABET:
		return ALPHABET_ALPHABET
	case l == VALUE && r == PERMITTED_ALPHABET:
		return VALUE_ALPHABET
	case l == PERMITTED_ALPHABET && r == VALUE:
		return ALPHABET_VALUE
	case l == VALUE && negationOf(rhs) == VALUE:
		return VALUE_NEGATION
	case negationOf(lhs) == VALUE && r == VALUE:
		return NEGATION_VALUE
	case l == SIZE && negationOf(rhs) == SIZE:
		return SIZE_NEGATION
	case negationOf(lhs) == SIZE && r == SIZE:
		return NEGATION_SIZE
	default:
		return OTHER
	}
}

// negationOf returns the type of the node wrapped by a negation, or NEGATION
// if the given node is not a negation.
func negationOf(node Node) NodeType {
	if n, ok := node.(*NegationNode); ok {
		return n.Node.Type()
	}
	//
	return NEGATION
}

// Optimise rewrites a constraint tree into an equivalent tree, fusing sibling
// nodes into single canonical nodes wherever possible.  This is a post-order
// traversal: children are optimised before their parents.  Combinations which
// cannot be fused are left unchanged.  An error is returned when a COMPLEMENT
// attempts to exclude values not permitted by its left operand.
func Optimise(node Node) (Node, error) {
	switch n := node.(type) {
	case *NegationNode:
		child, err := Optimise(n.Node)
		//
		if err != nil {
			return nil, err
		}
		//
		return negate(child), nil
	case *BinOpNode:
		lhs, err := Optimise(n.Left)
		if err != nil {
			return nil, err
		}
		//
		rhs, err := Optimise(n.Right)
		if err != nil {
			return nil, err
		}
		//
		if n.Op == COMPLEMENT {
			return complement(lhs, rhs)
		}
		//
		return fuseAll(n.Op, flatten(n.Op, lhs, rhs))
	case *WithComponentNode:
		inner, err := Optimise(n.Constraint)
		//
		if err != nil {
			return nil, err
		}
		//
		return &WithComponentNode{n.Element, inner}, nil
	case *WithComponentsNode:
		var components = make([]*ComponentConstraint, len(n.Components))
		//
		for i, c := range n.Components {
			component := *c
			//
			if c.Constraint != nil {
				inner, err := Optimise(c.Constraint)
				if err != nil {
					return nil, err
				}
				//
				component.Constraint = inner
			}
			//
			components[i] = &component
		}
		//
		return &WithComponentsNode{n.Choice, components}, nil
	default:
		return node, nil
	}
}

// negate pushes a negation into its (optimised) operand where possible.
func negate(node Node) Node {
	switch n := node.(type) {
	case *NegationNode:
		return n.Node
	case *ValueNode:
		return Value(n.Values.Invert())
	case *SizeNode:
		return &SizeNode{math.Complement(n.Sizes, SIZE_BOUNDS)}
	default:
		return Negate(node)
	}
}

// flatten collects the operands of a chain of unions (or intersections).
func flatten(op NodeType, nodes ...Node) []Node {
	var operands []Node
	//
	for _, node := range nodes {
		if n, ok := node.(*BinOpNode); ok && n.Op == op {
			operands = append(operands, flatten(op, n.Left, n.Right)...)
		} else {
			operands = append(operands, node)
		}
	}
	//
	return operands
}

// fuseAll repeatedly fuses pairs of operands until no more fusions apply, and
// then rebuilds the (left-associative) chain from what remains.
func fuseAll(op NodeType, operands []Node) (Node, error) {
	for {
		next, changed, err := fuseOnce(op, operands)
		//
		if err != nil {
			return nil, err
		} else if !changed {
			break
		}
		//
		operands = next
	}
	//
	result := operands[0]
	//
	for _, operand := range operands[1:] {
		result = BinOp(op, result, operand)
	}
	//
	return result, nil
}

func fuseOnce(op NodeType, operands []Node) ([]Node, bool, error) {
	for i := 0; i < len(operands); i++ {
		for j := i + 1; j < len(operands); j++ {
			fused, ok, err := fuse(op, operands[i], operands[j])
			//
			if err != nil {
				return nil, false, err
			} else if ok {
				// Replace the pair with whatever they fused into.
				return slices.Concat(operands[:i], fused, operands[i+1:j], operands[j+1:]), true, nil
			}
		}
	}
	//
	return operands, false, nil
}

// fuse attempts to combine two sibling operands of a union or intersection.
// The result usually holds a single node, but can hold two when a union
// removes redundant values from one operand.
func fuse(op NodeType, lhs Node, rhs Node) ([]Node, bool, error) {
	var union = op == UNION
	// Universe and empty set
	switch {
	case IsAll(lhs):
		return pick(union, lhs, rhs)
	case IsAll(rhs):
		return pick(union, rhs, lhs)
	case IsEmpty(lhs):
		return pick(!union, lhs, rhs)
	case IsEmpty(rhs):
		return pick(!union, rhs, lhs)
	}
	//
	switch classify(lhs, rhs) {
	case VALUE_VALUE:
		return fuseValues(union, lhs.(*ValueNode), rhs.(*ValueNode))
	case VALUE_NEGATION, SIZE_NEGATION:
		return fuse(op, lhs, negate(rhs.(*NegationNode).Node))
	case NEGATION_VALUE, NEGATION_SIZE:
		return fuse(op, negate(lhs.(*NegationNode).Node), rhs)
	case SIZE_SIZE:
		return fuseSizes(union, lhs.(*SizeNode), rhs.(*SizeNode))
	case VALUE_SIZE:
		return fuseValueSize(union, lhs.(*ValueNode), rhs.(*SizeNode))
	case SIZE_VALUE:
		return fuseValueSize(union, rhs.(*ValueNode), lhs.(*SizeNode))
	case ALPHABET_ALPHABET:
		return fuseAlphabets(union, lhs.(*PermittedAlphabetNode), rhs.(*PermittedAlphabetNode))
	case VALUE_ALPHABET:
		return fuseValueAlphabet(union, lhs.(*ValueNode), rhs.(*PermittedAlphabetNode))
	case ALPHABET_VALUE:
		return fuseValueAlphabet(union, rhs.(*ValueNode), lhs.(*PermittedAlphabetNode))
	case OTHER:
		return nil, false, nil
	default:
		panic("unreachable")
	}
}

// pick returns the first node if the condition holds, or the second otherwise.
func pick(cond bool, first Node, second Node) ([]Node, bool, error) {
	if cond {
		return []Node{first}, true, nil
	}
	//
	return []Node{second}, true, nil
}

func fuseValues(union bool, lhs *ValueNode, rhs *ValueNode) ([]Node, bool, error) {
	if union {
		return []Node{Value(lhs.Values.Union(rhs.Values))}, true, nil
	}
	//
	return []Node{Value(lhs.Values.Intersection(rhs.Values))}, true, nil
}

func fuseSizes(union bool, lhs *SizeNode, rhs *SizeNode) ([]Node, bool, error) {
	if union {
		return []Node{&SizeNode{math.Union(lhs.Sizes, rhs.Sizes)}}, true, nil
	}
	//
	return []Node{&SizeNode{math.Intersection(lhs.Sizes, rhs.Sizes)}}, true, nil
}

// fuseValueSize combines a set of values with a SIZE constraint.  For an
// intersection, only those values of a permitted length survive.  For a union,
// values of a permitted length are redundant and are removed.
func fuseValueSize(union bool, value *ValueNode, size *SizeNode) ([]Node, bool, error) {
	sized, ok := value.Values.(values.SizedValues)
	//
	if !ok {
		return nil, false, nil
	} else if !union {
		filtered, ok := sized.FilterSize(size.Sizes, true)
		//
		if !ok {
			return nil, false, nil
		}
		//
		return []Node{Value(filtered)}, true, nil
	}
	//
	redundant, ok := sized.FilterSize(size.Sizes, true)
	//
	if !ok || redundant.IsEmpty() {
		return nil, false, nil
	}
	//
	remaining, _ := sized.FilterSize(size.Sizes, false)
	//
	if remaining.IsEmpty() {
		return []Node{size}, true, nil
	}
	//
	return []Node{Value(remaining), size}, true, nil
}

func fuseAlphabets(union bool, lhs *PermittedAlphabetNode, rhs *PermittedAlphabetNode) ([]Node, bool, error) {
	// Strings drawn from either alphabet are not the strings drawn from the
	// combined alphabet.
	if union {
		return nil, false, nil
	}
	//
	return []Node{&PermittedAlphabetNode{math.Intersection(lhs.Alphabet, rhs.Alphabet)}}, true, nil
}

func fuseValueAlphabet(union bool, value *ValueNode, alphabet *PermittedAlphabetNode) ([]Node, bool, error) {
	strings, ok := value.Values.(values.AlphabetValues)
	//
	if union || !ok {
		return nil, false, nil
	}
	//
	filtered, ok := strings.FilterAlphabet(alphabet.Alphabet)
	//
	if !ok {
		return nil, false, nil
	}
	//
	return []Node{Value(filtered)}, true, nil
}

// complement removes the right node from the left node.  Exclusions between
// two VALUE or two SIZE nodes, and of values from a SIZE node, are strict:
// every excluded value must be permitted by the left node.  Anything else is
// rewritten as the intersection with the negated right node.
func complement(lhs Node, rhs Node) (Node, error) {
	switch {
	case IsAll(rhs):
		return Empty(), nil
	case IsAll(lhs):
		return negate(rhs), nil
	case IsEmpty(lhs):
		return lhs, nil
	}
	//
	switch classify(lhs, rhs) {
	case VALUE_VALUE:
		result, err := lhs.(*ValueNode).Values.Exclude(rhs.(*ValueNode).Values)
		//
		if err != nil {
			return nil, err
		}
		//
		return Value(result), nil
	case SIZE_SIZE:
		sizes, err := math.Exclude(lhs.(*SizeNode).Sizes, rhs.(*SizeNode).Sizes)
		//
		if err != nil {
			return nil, err
		}
		//
		return &SizeNode{sizes}, nil
	case SIZE_VALUE:
		if sized, ok := rhs.(*ValueNode).Values.(values.SizedValues); ok {
			sizes := lhs.(*SizeNode).Sizes
			//
			if outside, ok := sized.FilterSize(sizes, false); ok && !outside.IsEmpty() {
				return nil, &values.ExclusionError{Excluded: outside.String(), From: "SIZE" + math.RangesString(sizes)}
			}
		}
	case VALUE_SIZE:
		if sized, ok := lhs.(*ValueNode).Values.(values.SizedValues); ok {
			if remaining, ok := sized.FilterSize(rhs.(*SizeNode).Sizes, false); ok {
				return Value(remaining), nil
			}
		}
	}
	//
	return fuseAll(INTERSECTION, flatten(INTERSECTION, lhs, negate(rhs)))
}
