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
	"errors"

	"github.com/consensys/go-asn1c/pkg/asn1/ast"
	"github.com/consensys/go-asn1c/pkg/asn1c/constraint/values"
	"github.com/consensys/go-asn1c/pkg/util/math"
	log "github.com/sirupsen/logrus"
)

// Config determines how constraints are compiled.
type Config struct {
	// Optimise determines whether the constraint trees attached to compiled
	// types (and used for generating checks) are optimised.  Semantic errors
	// are reported regardless.
	Optimise bool
	// CheckExtensions determines whether generated checks accept the values
	// of an extensible constraint's extensions, as well as its roots.
	CheckExtensions bool
}

// handler compiles a single constraint element into a node.  The bounds
// determine the values of MIN and MAX.
type handler func(c *elementCompiler, element ast.Elements, bounds math.Range) (Node, error)

// family determines how constraint elements are compiled for a family of
// types.
type family struct {
	name     string
	handlers map[ast.ElementKind]handler
	// Default bounds for MIN and MAX
	bounds math.Range
	// Resolves the endpoints of a value range
	point func(c *elementCompiler, value ast.Value) (int64, error)
}

// Compiler compiles the constraints of types into definitions, and from there
// into IL modules implementing checks.  The handler tables are constructed
// once per compiler.
type Compiler struct {
	resolver TypeResolver
	config   Config
	families map[ast.TypeKind]*family
	// Families for the inner constraints of SIZE and FROM
	sizes    *family
	alphabet *family
}

// NewCompiler constructs a compiler which resolves types and values through
// the given resolver.
func NewCompiler(resolver TypeResolver, config Config) *Compiler {
	var (
		integer = integerFamily()
		iri     = iriFamily()
		oid     = oidFamily()
		choice  = structureFamily(ast.CHOICE)
	)
	//
	families := map[ast.TypeKind]*family{
		ast.INTEGER:           integer,
		ast.BOOLEAN:           booleanFamily(),
		ast.NULL:              nullFamily(),
		ast.BIT_STRING:        bitStringFamily(),
		ast.OCTET_STRING:      octetStringFamily(),
		ast.CHARACTER_STRING:  characterStringFamily(),
		ast.OBJECT_IDENTIFIER: oid,
		ast.RELATIVE_OID:      oid,
		ast.OID_IRI:           iri,
		ast.RELATIVE_OID_IRI:  iri,
		ast.ENUMERATED:        enumeratedFamily(),
		ast.CHOICE:            choice,
		ast.SEQUENCE:          structureFamily(ast.SEQUENCE),
		ast.SET:               structureFamily(ast.SET),
		ast.SEQUENCE_OF:       collectionFamily(ast.SEQUENCE_OF),
		ast.SET_OF:            collectionFamily(ast.SET_OF),
	}
	//
	return &Compiler{resolver, config, families, sizeFamily(), alphabetFamily()}
}

// Config returns the configuration of this compiler.
func (c *Compiler) Config() Config {
	return c.config
}

// Definition returns the definition of a compiled type, compiling it (and any
// types it depends upon) if necessary.  The result is memoised on the type.
func (c *Compiler) Definition(ct *CompiledType) (*Definition, error) {
	switch ct.state {
	case compiled:
		return ct.definition, nil
	case compiling:
		return nil, Semantic(ct, "constraint of %s depends on itself", ct.Name)
	}
	//
	ct.state = compiling
	//
	def, err := c.compileDefinition(ct)
	//
	if err != nil {
		ct.state = pending
		return nil, err
	}
	//
	ct.definition, ct.state = def, compiled
	//
	log.Debugf("compiled constraint of %s: %s", ct.Name, def.String())
	//
	return def, nil
}

func (c *Compiler) compileDefinition(ct *CompiledType) (*Definition, error) {
	var (
		def *Definition
		err error
	)
	//
	if ct.Base != nil {
		if def, err = c.Definition(ct.Base); err != nil {
			return nil, err
		}
	}
	//
	compiler, err := c.elementCompiler(ct)
	//
	if err != nil {
		return nil, err
	}
	//
	own, err := compiler.compileConstraints(ct.Constraints)
	//
	switch {
	case err != nil:
		return nil, err
	case def == nil && own == nil:
		def = Unconstrained()
	case def == nil:
		def = own
	case own != nil:
		def = SerialApplication(def, own)
	}
	//
	return c.validate(ct, def)
}

// validate optimises a definition, reporting any semantic errors this
// uncovers, such as a constraint which excludes all values.  The optimised
// definition is returned if optimisation is enabled.
func (c *Compiler) validate(ct *CompiledType, def *Definition) (*Definition, error) {
	optimised, err := def.Optimise()
	//
	if err != nil {
		return nil, semanticError(ct, err)
	} else if IsEmpty(optimised.Roots) {
		return nil, Semantic(ct, "constraint %s excludes all values", def.Roots.String())
	} else if c.config.Optimise {
		return optimised, nil
	}
	//
	return def, nil
}

func (c *Compiler) elementCompiler(ct *CompiledType) (*elementCompiler, error) {
	var (
		fam, ok  = c.families[ct.Kind()]
		universe []math.Range
	)
	//
	if !ok {
		return nil, Unsupported(ct, "", "constraints on %s are not supported", ct.Kind().String())
	}
	//
	switch t := ct.Type.(type) {
	case *ast.IntegerType:
		universe = []math.Range{math.FULL}
	case *ast.EnumeratedType:
		for _, item := range t.AllItems() {
			universe = append(universe, math.Point(item.Number))
		}
		//
		universe = math.Canonicalize(universe)
	}
	//
	return &elementCompiler{c, ct, fam, universe, fam.bounds}, nil
}

func semanticError(ct *CompiledType, err error) error {
	var cerr *CompileError
	//
	if errors.As(err, &cerr) {
		return err
	}
	//
	return Semantic(ct, "%s", err.Error())
}

// ============================================================================
// Element Compilation
// ============================================================================

// elementCompiler compiles the constraint elements written against one type,
// using the handlers of a given family.
type elementCompiler struct {
	compiler *Compiler
	ctype    *CompiledType
	family   *family
	// Universe of integer-like values (INTEGER, ENUMERATED, SIZE and FROM).
	universe []math.Range
	// Bounds for MIN and MAX
	bounds math.Range
}

// compileConstraints compiles the subtype constraints juxtaposed on a type.
// Following X.680, these are combined by intersection.  The result is nil if
// there are no constraints.
func (c *elementCompiler) compileConstraints(constraints []*ast.SubtypeConstraint) (*Definition, error) {
	var result *Definition
	//
	for _, constraint := range constraints {
		def, err := c.compileSpecs(constraint.Spec)
		//
		if err != nil {
			return nil, err
		} else if result == nil {
			result = def
		} else {
			result = result.Intersection(def)
		}
	}
	//
	return result, nil
}

// compileSpecs compiles a root element set, along with any extension marker
// and additional elements.
func (c *elementCompiler) compileSpecs(spec *ast.SetSpecs) (*Definition, error) {
	roots, err := c.compileElements(spec.Root)
	//
	if err != nil {
		return nil, err
	} else if !spec.Extensible && spec.Additions == nil {
		return NewDefinition(roots), nil
	}
	//
	var extensions = Empty()
	//
	if spec.Additions != nil {
		if extensions, err = c.compileElements(spec.Additions); err != nil {
			return nil, err
		}
	}
	//
	return NewExtensibleDefinition(roots, extensions), nil
}

// compileElements compiles an element set into a node, dispatching terminal
// elements to the handler registered for their kind.
func (c *elementCompiler) compileElements(element ast.Elements) (Node, error) {
	if set, ok := element.(*ast.ElementSet); ok {
		return c.compileSet(set)
	}
	//
	handler, ok := c.family.handlers[element.Kind()]
	//
	if !ok {
		return nil, Unsupported(c.ctype, element.Kind().String(), "%s not supported for %s", element.String(),
			c.family.name)
	}
	//
	return handler(c, element, c.bounds)
}

func (c *elementCompiler) compileSet(set *ast.ElementSet) (Node, error) {
	var operands = make([]Node, len(set.Operands))
	//
	for i, operand := range set.Operands {
		node, err := c.compileElements(operand)
		//
		if err != nil {
			return nil, err
		}
		//
		operands[i] = node
	}
	//
	switch {
	case set.Op == ast.ALL && len(operands) == 0:
		return All(), nil
	case (set.Op == ast.ALL || set.Op == ast.EXCLUDE) && len(operands) == 1:
		return BinOp(COMPLEMENT, All(), operands[0]), nil
	case set.Op == ast.EXCLUDE && len(operands) == 2:
		return BinOp(COMPLEMENT, operands[0], operands[1]), nil
	case set.Op == ast.UNION && len(operands) > 0:
		return fold(UNION, operands), nil
	case set.Op == ast.INTERSECTION && len(operands) > 0:
		return fold(INTERSECTION, operands), nil
	default:
		return nil, Unsupported(c.ctype, ast.ELEMENT_SET.String(), "malformed element set %s", set.String())
	}
}

func fold(op NodeType, operands []Node) Node {
	var result = operands[0]
	//
	for _, operand := range operands[1:] {
		result = BinOp(op, result, operand)
	}
	//
	return result
}

// nested compiles the inner constraint of a SIZE or FROM element into a list of
// ranges, using a given family and universe.  Any extension additions are
// folded into the result.
func (c *elementCompiler) nested(fam *family, universe []math.Range, spec *ast.SetSpecs) ([]math.Range, error) {
	var bounds, _ = math.Hull(universe)
	//
	inner := &elementCompiler{c.compiler, c.ctype, fam, universe, bounds}
	//
	def, err := inner.compileSpecs(spec)
	//
	if err != nil {
		return nil, err
	}
	//
	node, err := Optimise(def.Full())
	//
	if err != nil {
		return nil, semanticError(c.ctype, err)
	}
	//
	switch n := node.(type) {
	case *AllValuesNode:
		return universe, nil
	case *ValueNode:
		return n.Values.(*values.IntegerValues).Ranges(), nil
	case *NegationNode:
		if IsAll(n.Node) {
			return nil, nil
		}
	}
	//
	IllegalState("irreducible %s constraint %s", fam.name, node.String())
	//
	return nil, nil
}

// integers constructs a set of integers drawn from the current universe.
func (c *elementCompiler) integers(ranges ...math.Range) values.Values {
	return values.NewIntegerValuesWithin(c.universe, ranges...)
}

// ============================================================================
// Common Handlers
// ============================================================================

// containedSubtype compiles a reference to another type, which contributes
// every value known to be permitted by that type.  Extensibility is not
// inherited.
func containedSubtype(c *elementCompiler, element ast.Elements, _ math.Range) (Node, error) {
	var e = element.(*ast.ContainedSubtype)
	//
	ref, err := c.compiler.resolver.Resolve(e.Type)
	//
	if err != nil {
		return nil, err
	}
	//
	if ok, err := c.compatible(c.ctype.Type, ref.Type, 0); err != nil {
		return nil, err
	} else if !ok {
		return nil, Semantic(c.ctype, "%s is not compatible with %s", ref.Name, c.ctype.Type.String())
	}
	//
	def, err := c.compiler.Definition(ref)
	//
	if err != nil {
		return nil, err
	}
	//
	return def.Full(), nil
}

// compatible checks whether values of one type can be values of another.  The
// element types of collections are compared after resolving any references.
func (c *elementCompiler) compatible(lhs ast.Type, rhs ast.Type, depth uint) (bool, error) {
	if lhs.Kind() != rhs.Kind() {
		return false, nil
	}
	//
	switch l := lhs.(type) {
	case *ast.CharacterStringType:
		return l.StringKind == rhs.(*ast.CharacterStringType).StringKind, nil
	case *ast.EnumeratedType, *ast.ChoiceType, *ast.CollectionType:
		// structured types must be the same declared type
		return lhs == rhs, nil
	case *ast.CollectionOfType:
		var r = rhs.(*ast.CollectionOfType)
		// recursive collections are assumed compatible beyond a fixed depth
		if l == r || depth >= MAX_REFERENCE_DEPTH {
			return true, nil
		}
		//
		lelem, err := c.compiler.resolver.Resolve(l.Element)
		if err != nil {
			return false, err
		}
		//
		relem, err := c.compiler.resolver.Resolve(r.Element)
		if err != nil {
			return false, err
		}
		//
		return c.compatible(lelem.Type, relem.Type, depth+1)
	default:
		return true, nil
	}
}

// integerValue compiles a single value into a set of integers.
func integerValue(c *elementCompiler, element ast.Elements, bounds math.Range) (Node, error) {
	v, err := c.family.point(c, element.(*ast.SingleValueConstraint).Value)
	//
	if err != nil {
		return nil, err
	} else if !bounds.Contains(v) {
		return nil, Semantic(c.ctype, "value %d is outside %s", v, bounds.String())
	}
	//
	return Value(c.integers(math.Point(v))), nil
}

// integerRange compiles a value range into a set of integers, adjusting
// exclusive endpoints.
func integerRange(c *elementCompiler, element ast.Elements, bounds math.Range) (Node, error) {
	var e = element.(*ast.RangeNode)
	//
	lower, err := c.endpoint(e.Lower, bounds, true)
	if err != nil {
		return nil, err
	}
	//
	upper, err := c.endpoint(e.Upper, bounds, false)
	if err != nil {
		return nil, err
	}
	//
	if lower > upper {
		return nil, Semantic(c.ctype, "range %s excludes all values", e.String())
	}
	//
	return Value(c.integers(math.NewRange(lower, upper))), nil
}

func (c *elementCompiler) endpoint(e ast.EndpointNode, bounds math.Range, lower bool) (int64, error) {
	switch e.Kind {
	case ast.MIN:
		return bounds.Lower, nil
	case ast.MAX:
		return bounds.Upper, nil
	}
	//
	v, err := c.family.point(c, e.Value)
	//
	switch {
	case err != nil:
		return 0, err
	case !bounds.Contains(v):
		return 0, Semantic(c.ctype, "endpoint %d is outside %s", v, bounds.String())
	case !e.Exclusive:
		return v, nil
	}
	//
	var ok bool
	//
	if lower {
		v, ok = math.Succ(v, bounds.Upper)
	} else {
		v, ok = math.Pred(v, bounds.Lower)
	}
	//
	if !ok {
		return 0, Semantic(c.ctype, "exclusive endpoint %s excludes all values", e.String())
	}
	//
	return v, nil
}
