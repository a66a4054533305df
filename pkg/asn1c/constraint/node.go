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
	"fmt"
	"strings"

	"github.com/consensys/go-asn1c/pkg/asn1/ast"
	"github.com/consensys/go-asn1c/pkg/asn1c/constraint/values"
	"github.com/consensys/go-asn1c/pkg/util/math"
)

// NodeType identifies the variant of a constraint node.
type NodeType uint8

const (
	// VALUE is a set of permitted values (see ValueNode).
	VALUE NodeType = iota
	// SIZE is a set of permitted lengths (see SizeNode).
	SIZE
	// PERMITTED_ALPHABET is a set of permitted characters (see
	// PermittedAlphabetNode).
	PERMITTED_ALPHABET
	// WITH_COMPONENT constrains every element of a collection.
	WITH_COMPONENT
	// WITH_COMPONENTS constrains the named components of a structure.
	WITH_COMPONENTS
	// ALL_VALUES permits every value.
	ALL_VALUES
	// UNION of two nodes.
	UNION
	// INTERSECTION of two nodes.
	INTERSECTION
	// COMPLEMENT removes the right node from the left node.
	COMPLEMENT
	// NEGATION permits exactly the values not permitted by a node.
	NEGATION
)

func (t NodeType) String() string {
	switch t {
	case VALUE:
		return "VALUE"
	case SIZE:
		return "SIZE"
	case PERMITTED_ALPHABET:
		return "PERMITTED_ALPHABET"
	case WITH_COMPONENT:
		return "WITH_COMPONENT"
	case WITH_COMPONENTS:
		return "WITH_COMPONENTS"
	case ALL_VALUES:
		return "ALL_VALUES"
	case UNION:
		return "UNION"
	case INTERSECTION:
		return "INTERSECTION"
	case COMPLEMENT:
		return "COMPLEMENT"
	case NEGATION:
		return "NEGATION"
	default:
		return fmt.Sprintf("node(%d)", t)
	}
}

// Node represents a term of the constraint tree built for a type.  Nodes are
// immutable once built.
type Node interface {
	// Type returns the variant of this node.
	Type() NodeType
	// String returns a human readable form of this node.
	String() string
}

// ValueNode permits a concrete set of domain values.
type ValueNode struct {
	Values values.Values
}

// Type implementation for the Node interface.
func (p *ValueNode) Type() NodeType { return VALUE }

func (p *ValueNode) String() string { return p.Values.String() }

// SizeNode permits those values whose length lies within canonical ranges.
type SizeNode struct {
	Sizes []math.Range
}

// Type implementation for the Node interface.
func (p *SizeNode) Type() NodeType { return SIZE }

func (p *SizeNode) String() string { return "SIZE" + math.RangesString(p.Sizes) }

// PermittedAlphabetNode permits those strings whose characters all lie within
// canonical code point ranges.
type PermittedAlphabetNode struct {
	Alphabet []math.Range
}

// Type implementation for the Node interface.
func (p *PermittedAlphabetNode) Type() NodeType { return PERMITTED_ALPHABET }

func (p *PermittedAlphabetNode) String() string { return "FROM" + math.RangesString(p.Alphabet) }

// WithComponentNode constrains every element of a SEQUENCE OF or SET OF.
type WithComponentNode struct {
	// Element type of the collection.
	Element *CompiledType
	// Constraint applied to each element.
	Constraint Node
}

// Type implementation for the Node interface.
func (p *WithComponentNode) Type() NodeType { return WITH_COMPONENT }

func (p *WithComponentNode) String() string {
	return fmt.Sprintf("WITH COMPONENT (%s)", p.Constraint.String())
}

// ComponentConstraint constrains a single named component of a SEQUENCE or
// SET, or a single alternative of a CHOICE.
type ComponentConstraint struct {
	Name string
	Type *CompiledType
	// Optional indicates the component may be absent (i.e. is OPTIONAL or has
	// a DEFAULT).
	Optional bool
	Presence ast.Presence
	// Constraint on the component's value, or nil if there is none.
	Constraint Node
}

func (p *ComponentConstraint) String() string {
	var parts = []string{p.Name}
	//
	if p.Constraint != nil {
		parts = append(parts, "("+p.Constraint.String()+")")
	}
	//
	if p.Presence != ast.NO_PRESENCE {
		parts = append(parts, p.Presence.String())
	}
	//
	return strings.Join(parts, " ")
}

// WithComponentsNode constrains the named components of a SEQUENCE or SET, or
// the alternatives of a CHOICE.
type WithComponentsNode struct {
	Choice     bool
	Components []*ComponentConstraint
}

// Type implementation for the Node interface.
func (p *WithComponentsNode) Type() NodeType { return WITH_COMPONENTS }

func (p *WithComponentsNode) String() string {
	var parts = make([]string, len(p.Components))
	//
	for i, c := range p.Components {
		parts[i] = c.String()
	}
	//
	return fmt.Sprintf("WITH COMPONENTS {%s}", strings.Join(parts, ", "))
}

// AllValuesNode permits every value of the type being constrained.
type AllValuesNode struct{}

// Type implementation for the Node interface.
func (p *AllValuesNode) Type() NodeType { return ALL_VALUES }

func (p *AllValuesNode) String() string { return "ALL" }

// BinOpNode combines two nodes using UNION, INTERSECTION or COMPLEMENT.  For
// COMPLEMENT, the left node is the set being restricted and the right node is
// the set being removed.
type BinOpNode struct {
	Op    NodeType
	Left  Node
	Right Node
}

// Type implementation for the Node interface.
func (p *BinOpNode) Type() NodeType { return p.Op }

func (p *BinOpNode) String() string {
	var op string
	//
	switch p.Op {
	case UNION:
		op = " | "
	case INTERSECTION:
		op = " ^ "
	case COMPLEMENT:
		op = " EXCEPT "
	default:
		IllegalState("invalid binary operator %s", p.Op.String())
	}
	//
	return "(" + p.Left.String() + op + p.Right.String() + ")"
}

// NegationNode permits exactly those values not permitted by its child.
type NegationNode struct {
	Node Node
}

// Type implementation for the Node interface.
func (p *NegationNode) Type() NodeType { return NEGATION }

func (p *NegationNode) String() string {
	if p.Node.Type() == ALL_VALUES {
		return "EMPTY"
	}
	//
	return "NOT " + p.Node.String()
}

// ============================================================================
// Constructors
// ============================================================================

// Value constructs a node permitting a given set of values.
func Value(values values.Values) Node {
	return &ValueNode{values}
}

// Size constructs a node permitting values whose length is within the given
// ranges.
func Size(sizes ...math.Range) Node {
	return &SizeNode{math.Canonicalize(sizes)}
}

// PermittedAlphabet constructs a node permitting strings whose characters are
// within the given ranges.
func PermittedAlphabet(alphabet ...math.Range) Node {
	return &PermittedAlphabetNode{math.Canonicalize(alphabet)}
}

// All constructs a node permitting every value.
func All() Node {
	return &AllValuesNode{}
}

// Empty constructs a node permitting no values at all.
func Empty() Node {
	return &NegationNode{All()}
}

// Negate constructs a node permitting exactly those values not permitted by
// a given node.
func Negate(node Node) Node {
	return &NegationNode{node}
}

// BinOp constructs the union, intersection or complement of two nodes.
func BinOp(op NodeType, lhs Node, rhs Node) Node {
	if op != UNION && op != INTERSECTION && op != COMPLEMENT {
		IllegalState("invalid binary operator %s", op.String())
	}
	//
	return &BinOpNode{op, lhs, rhs}
}

// IsAll checks whether a node is the ALL_VALUES node.
func IsAll(node Node) bool {
	return node.Type() == ALL_VALUES
}

// IsEmpty checks whether a node evidently permits no values.  This is exact
// for optimised VALUE and SIZE nodes, but conservative otherwise: a node for
// which this returns false may still permit no values.
func IsEmpty(node Node) bool {
	switch n := node.(type) {
	case *ValueNode:
		return n.Values.IsEmpty()
	case *SizeNode:
		return len(n.Sizes) == 0
	case *NegationNode:
		return IsAll(n.Node)
	case *BinOpNode:
		switch n.Op {
		case UNION:
			return IsEmpty(n.Left) && IsEmpty(n.Right)
		case INTERSECTION:
			return IsEmpty(n.Left) || IsEmpty(n.Right)
		default:
			return IsEmpty(n.Left)
		}
	default:
		return false
	}
}
