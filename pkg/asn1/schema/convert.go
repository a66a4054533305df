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
package schema

import (
	"errors"
	"fmt"

	"github.com/consensys/go-asn1c/pkg/asn1/ast"
)

// Load reads a module from its JSON encoding and converts it into an AST.
func Load(bytes []byte) (*ast.Module, error) {
	module, err := ParseModule(bytes)
	//
	if err != nil {
		return nil, err
	}
	//
	return module.ToAST()
}

// ToAST converts this module into an AST.  Errors arising from malformed
// assignments are aggregated.
func (p *Module) ToAST() (*ast.Module, error) {
	var (
		module = &ast.Module{Name: p.Name}
		errs   []error
	)
	//
	for _, assign := range p.Types {
		t, err := assign.Type.ToAST()
		//
		if err != nil {
			errs = append(errs, fmt.Errorf("type %s: %w", assign.Name, err))
		} else {
			module.Types = append(module.Types, &ast.TypeAssignment{Name: assign.Name, Type: t})
		}
	}
	//
	for _, assign := range p.Values {
		t, err := assign.Type.ToAST()
		//
		if err != nil {
			errs = append(errs, fmt.Errorf("value %s: %w", assign.Name, err))
			continue
		}
		//
		v, err := assign.Value.ToAST()
		//
		if err != nil {
			errs = append(errs, fmt.Errorf("value %s: %w", assign.Name, err))
		} else {
			module.Values = append(module.Values, &ast.ValueAssignment{Name: assign.Name, Type: t, Value: v})
		}
	}
	//
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	//
	return module, nil
}

// ToAST converts this type into an AST.
func (p *Type) ToAST() (ast.Type, error) {
	if p == nil {
		return nil, errors.New("missing type")
	}
	//
	constraints, err := p.constraints()
	//
	if err != nil {
		return nil, err
	}
	//
	var subtypes = ast.Subtypes{Subtypes: constraints}
	//
	if p.Ref != "" {
		return &ast.TypeReference{Subtypes: subtypes, Name: p.Ref}, nil
	}
	//
	switch p.Kind {
	case "INTEGER":
		return &ast.IntegerType{Subtypes: subtypes, NamedNumbers: named(p.Named)}, nil
	case "BOOLEAN":
		return &ast.BooleanType{Subtypes: subtypes}, nil
	case "NULL":
		return &ast.NullType{Subtypes: subtypes}, nil
	case "BIT STRING":
		return &ast.BitStringType{Subtypes: subtypes, NamedBits: named(p.Named)}, nil
	case "OCTET STRING":
		return &ast.OctetStringType{Subtypes: subtypes}, nil
	case "OBJECT IDENTIFIER", "RELATIVE-OID":
		return &ast.ObjectIdentifierType{Subtypes: subtypes, Relative: p.Kind == "RELATIVE-OID"}, nil
	case "OID-IRI", "RELATIVE-OID-IRI":
		return &ast.IRIType{Subtypes: subtypes, Relative: p.Kind == "RELATIVE-OID-IRI"}, nil
	case "ENUMERATED":
		return &ast.EnumeratedType{Subtypes: subtypes, Items: named(p.Items), Additions: named(p.Additions),
			Extensible: p.Extensible || len(p.Additions) > 0}, nil
	case "CHOICE":
		components, err := toComponents(p.Components)
		//
		return &ast.ChoiceType{Subtypes: subtypes, Alternatives: components, Extensible: p.Extensible}, err
	case "SEQUENCE", "SET":
		components, err := toComponents(p.Components)
		//
		return &ast.CollectionType{Subtypes: subtypes, Set: p.Kind == "SET", Components: components,
			Extensible: p.Extensible}, err
	case "SEQUENCE OF", "SET OF":
		element, err := p.Element.ToAST()
		//
		if err != nil {
			return nil, fmt.Errorf("%s element: %w", p.Kind, err)
		}
		//
		return &ast.CollectionOfType{Subtypes: subtypes, Set: p.Kind == "SET OF", Element: element}, nil
	}
	//
	if kind, ok := ast.ParseStringKind(p.Kind); ok {
		return &ast.CharacterStringType{Subtypes: subtypes, StringKind: kind}, nil
	}
	//
	return nil, fmt.Errorf("unknown type kind %q", p.Kind)
}

func (p *Type) constraints() ([]*ast.SubtypeConstraint, error) {
	var constraints []*ast.SubtypeConstraint
	//
	for _, c := range p.Constraints {
		spec, err := c.ToAST()
		//
		if err != nil {
			return nil, err
		}
		//
		constraints = append(constraints, &ast.SubtypeConstraint{Spec: spec})
	}
	//
	return constraints, nil
}

func named(items []Named) []ast.NamedNumber {
	var result = make([]ast.NamedNumber, len(items))
	//
	for i, item := range items {
		result[i] = ast.NamedNumber{Name: item.Name, Number: item.Number}
	}
	//
	return result
}

func toComponents(components []Component) ([]*ast.Component, error) {
	var result = make([]*ast.Component, len(components))
	//
	for i, c := range components {
		t, err := c.Type.ToAST()
		//
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", c.Name, err)
		}
		//
		result[i] = &ast.Component{Name: c.Name, Type: t, Optional: c.Optional}
		//
		if c.Default != nil {
			if result[i].Default, err = c.Default.ToAST(); err != nil {
				return nil, fmt.Errorf("component %s: %w", c.Name, err)
			}
		}
	}
	//
	return result, nil
}

// ToAST converts this element set specification into an AST.
func (p *SetSpecs) ToAST() (*ast.SetSpecs, error) {
	if p == nil {
		return nil, errors.New("missing constraint")
	}
	//
	root, err := p.Root.ToAST()
	//
	if err != nil {
		return nil, err
	}
	//
	var spec = &ast.SetSpecs{Root: root, Extensible: p.Extensible || p.Additions != nil}
	//
	if p.Additions != nil {
		if spec.Additions, err = p.Additions.ToAST(); err != nil {
			return nil, err
		}
	}
	//
	return spec, nil
}

// ToAST converts this constraint element into an AST.  Exactly one field of
// the element should be set.
func (p *Element) ToAST() (ast.Elements, error) {
	switch {
	case p == nil:
		return nil, errors.New("missing constraint element")
	case p.Value != nil:
		v, err := p.Value.ToAST()
		return &ast.SingleValueConstraint{Value: v}, err
	case p.Range != nil:
		return p.Range.ToAST()
	case p.Union != nil:
		return toElementSet(ast.UNION, p.Union...)
	case p.Intersection != nil:
		return toElementSet(ast.INTERSECTION, p.Intersection...)
	case p.Except != nil:
		if len(p.Except) != 2 {
			return nil, fmt.Errorf("EXCEPT requires two operands, given %d", len(p.Except))
		}
		//
		return toElementSet(ast.EXCLUDE, p.Except...)
	case p.AllExcept != nil:
		return toElementSet(ast.ALL, p.AllExcept)
	case p.Size != nil:
		spec, err := p.Size.ToAST()
		return &ast.SizeConstraint{Constraint: spec}, err
	case p.From != nil:
		spec, err := p.From.ToAST()
		return &ast.PermittedAlphabetConstraint{Constraint: spec}, err
	case p.Includes != nil:
		t, err := p.Includes.ToAST()
		return &ast.ContainedSubtype{Type: t, Includes: true}, err
	case p.WithComponent != nil:
		spec, err := p.WithComponent.ToAST()
		return &ast.SingleTypeConstraint{Constraint: spec}, err
	case p.WithComponents != nil:
		return p.WithComponents.ToAST()
	case p.Pattern != nil:
		v, err := p.Pattern.ToAST()
		return &ast.PatternConstraint{Pattern: v}, err
	case p.Containing != nil:
		t, err := p.Containing.ToAST()
		return &ast.ContentsConstraint{Type: t}, err
	default:
		// An empty element denotes ALL
		return &ast.ElementSet{Op: ast.ALL}, nil
	}
}

func toElementSet(op ast.SetOp, operands ...*Element) (*ast.ElementSet, error) {
	var set = &ast.ElementSet{Op: op, Operands: make([]ast.Elements, len(operands))}
	//
	for i, operand := range operands {
		element, err := operand.ToAST()
		//
		if err != nil {
			return nil, err
		}
		//
		set.Operands[i] = element
	}
	//
	return set, nil
}

// ToAST converts this range into an AST.
func (p *Range) ToAST() (*ast.RangeNode, error) {
	lower, err := p.Lower.toAST(ast.MIN)
	//
	if err != nil {
		return nil, err
	}
	//
	upper, err := p.Upper.toAST(ast.MAX)
	//
	if err != nil {
		return nil, err
	}
	//
	return &ast.RangeNode{Lower: lower, Upper: upper}, nil
}

func (p *Endpoint) toAST(open ast.EndpointKind) (ast.EndpointNode, error) {
	if p.Value == nil {
		return ast.EndpointNode{Kind: open, Exclusive: p.Exclusive}, nil
	}
	//
	v, err := p.Value.ToAST()
	//
	return ast.EndpointNode{Kind: ast.VALUE, Value: v, Exclusive: p.Exclusive}, err
}

// ToAST converts this WITH COMPONENTS constraint into an AST.
func (p *WithComponents) ToAST() (*ast.MultipleTypeConstraints, error) {
	var result = &ast.MultipleTypeConstraints{Partial: p.Partial}
	//
	for _, c := range p.Components {
		var nc = &ast.NamedConstraint{Name: c.Name}
		//
		switch c.Presence {
		case "":
			nc.Presence = ast.NO_PRESENCE
		case "PRESENT":
			nc.Presence = ast.PRESENT
		case "ABSENT":
			nc.Presence = ast.ABSENT
		case "OPTIONAL":
			nc.Presence = ast.OPTIONAL
		default:
			return nil, fmt.Errorf("unknown presence %q for component %s", c.Presence, c.Name)
		}
		//
		if c.Value != nil {
			spec, err := c.Value.ToAST()
			//
			if err != nil {
				return nil, err
			}
			//
			nc.Value = spec
		}
		//
		result.Components = append(result.Components, nc)
	}
	//
	return result, nil
}

// ToAST converts this value into an AST.  Exactly one field of the value
// should be set.
func (p *Value) ToAST() (ast.Value, error) {
	switch {
	case p == nil:
		return nil, errors.New("missing value")
	case p.Integer != nil:
		return &ast.IntegerValue{Value: *p.Integer}, nil
	case p.Boolean != nil:
		return &ast.BooleanValue{Value: *p.Boolean}, nil
	case p.Null:
		return &ast.NullValue{}, nil
	case p.BString != nil:
		return &ast.BinaryStringValue{Bits: *p.BString}, nil
	case p.HString != nil:
		return &ast.HexStringValue{Hex: *p.HString}, nil
	case p.Bits != nil:
		return &ast.NamedBitsValue{Names: p.Bits}, nil
	case p.String != nil:
		return &ast.StringValue{Value: *p.String}, nil
	case p.OID != nil:
		var oid ast.ObjectIdentifierValue
		//
		for _, arc := range p.OID {
			component := ast.OIDComponent{Name: arc.Name}
			//
			if arc.Number != nil {
				component.Number, component.HasNumber = *arc.Number, true
			} else if arc.Name == "" {
				return nil, errors.New("empty object identifier arc")
			}
			//
			oid.Components = append(oid.Components, component)
		}
		//
		return &oid, nil
	case p.IRI != nil:
		return &ast.IRIValue{Value: *p.IRI}, nil
	case p.Ref != "":
		return &ast.DefinedValue{Name: p.Ref}, nil
	default:
		return nil, errors.New("empty value")
	}
}
