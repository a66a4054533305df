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
	"github.com/consensys/go-asn1c/pkg/asn1/ast"
	"github.com/consensys/go-asn1c/pkg/util/math"
)

// structureFamily handles CHOICE, SEQUENCE and SET types, which are
// constrained through their components.
func structureFamily(kind ast.TypeKind) *family {
	return &family{
		name: kind.String(),
		handlers: map[ast.ElementKind]handler{
			ast.MULTIPLE_TYPE:     withComponents,
			ast.CONTAINED_SUBTYPE: containedSubtype,
		},
	}
}

// collectionFamily handles SEQUENCE OF and SET OF types, which are constrained
// through their size and their elements.
func collectionFamily(kind ast.TypeKind) *family {
	return &family{
		name: kind.String(),
		handlers: map[ast.ElementKind]handler{
			ast.SIZE:              sizeConstraint,
			ast.SINGLE_TYPE:       withComponent,
			ast.CONTAINED_SUBTYPE: containedSubtype,
		},
	}
}

// withComponent compiles a constraint applied to every element of a
// collection.
func withComponent(c *elementCompiler, element ast.Elements, _ math.Range) (Node, error) {
	var t = c.ctype.Type.(*ast.CollectionOfType)
	//
	inner, err := c.compileComponent(t.Element, element.(*ast.SingleTypeConstraint).Constraint)
	//
	if err != nil {
		return nil, err
	}
	//
	return &WithComponentNode{inner.Type, inner.Constraint}, nil
}

// withComponents compiles constraints on the named components of a structure.
// For a full specification, any component not listed which could be absent is
// required to be absent.
func withComponents(c *elementCompiler, element ast.Elements, _ math.Range) (Node, error) {
	var (
		e          = element.(*ast.MultipleTypeConstraints)
		choice     = c.ctype.Kind() == ast.CHOICE
		components []*ast.Component
		result     []*ComponentConstraint
		listed     = make(map[string]bool)
	)
	//
	switch t := c.ctype.Type.(type) {
	case *ast.ChoiceType:
		components = t.Alternatives
	case *ast.CollectionType:
		components = t.Components
	}
	//
	for _, named := range e.Components {
		component := ast.FindComponent(components, named.Name)
		//
		switch {
		case component == nil:
			return nil, Semantic(c.ctype, "unknown component %s", named.Name)
		case listed[named.Name]:
			return nil, Semantic(c.ctype, "component %s constrained more than once", named.Name)
		case !choice && named.Presence == ast.ABSENT && !optional(component):
			return nil, Semantic(c.ctype, "mandatory component %s cannot be ABSENT", named.Name)
		}
		//
		listed[named.Name] = true
		//
		cc := &ComponentConstraint{Name: named.Name, Optional: choice || optional(component), Presence: named.Presence}
		//
		if named.Value != nil {
			inner, err := c.compileComponent(component.Type, named.Value)
			//
			if err != nil {
				return nil, err
			}
			//
			cc.Type, cc.Constraint = inner.Type, inner.Constraint
		}
		//
		result = append(result, cc)
	}
	//
	if !e.Partial {
		for _, component := range components {
			if !listed[component.Name] && (choice || optional(component)) {
				result = append(result, &ComponentConstraint{Name: component.Name, Optional: true, Presence: ast.ABSENT})
			}
		}
	}
	//
	return &WithComponentsNode{choice, result}, nil
}

func optional(component *ast.Component) bool {
	return component.Optional || component.Default != nil
}

// compiledComponent is the outcome of compiling an inner type constraint.
type compiledComponent struct {
	Type       *CompiledType
	Constraint Node
}

// compileComponent compiles a constraint written against a component (or
// element) type.  The constraint is applied serially to the component type's
// own constraint, and validated as for any other type.
func (c *elementCompiler) compileComponent(t ast.Type, spec *ast.SetSpecs) (*compiledComponent, error) {
	ctype, err := c.compiler.resolver.Resolve(t)
	//
	if err != nil {
		return nil, err
	}
	//
	parent, err := c.compiler.Definition(ctype)
	//
	if err != nil {
		return nil, err
	}
	//
	inner, err := c.compiler.elementCompiler(ctype)
	//
	if err != nil {
		return nil, err
	}
	//
	def, err := inner.compileSpecs(spec)
	//
	if err != nil {
		return nil, err
	}
	//
	if def, err = c.compiler.validate(ctype, SerialApplication(parent, def)); err != nil {
		return nil, err
	}
	//
	node, err := c.compiler.checked(ctype, def)
	//
	if err != nil {
		return nil, err
	}
	//
	return &compiledComponent{ctype, node}, nil
}
