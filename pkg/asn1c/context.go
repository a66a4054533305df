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
package asn1c

import (
	"errors"
	"fmt"

	"github.com/consensys/go-asn1c/pkg/asn1/ast"
	"github.com/consensys/go-asn1c/pkg/asn1c/constraint"
	"github.com/consensys/go-asn1c/pkg/asn1c/il"
	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
)

// Class is the outcome of compiling the constraint of a named type.
type Class struct {
	// Type which was compiled
	Type *constraint.CompiledType
	// Definition of its constraint
	Definition *constraint.Definition
	// Module implementing the constraint check
	Module *il.Module
}

// Name returns the name of the compiled type.
func (p *Class) Name() string {
	return p.Type.Name
}

// Check evaluates the constraint check of this class against a given value.
func (p *Class) Check(value any) (bool, error) {
	return p.Module.Check(value)
}

// Context compiles the types of a single ASN.1 module.  It acts as the type
// resolver for constraint compilation, memoising the compiled form of named
// types.  A context is not safe for concurrent use.
type Context struct {
	module   *ast.Module
	options  Options
	compiler *constraint.Compiler
	// Memoised named types, shared across compilations.
	cache *lru.Cache[string, *constraint.CompiledType]
	// Named types in use by the current compilation.  These are pinned so that
	// eviction from the cache cannot break cycle detection.
	pinned map[string]*constraint.CompiledType
	// Names of type references currently being resolved
	resolving map[string]bool
}

// NewContext constructs a context for compiling the types of a given module.
func NewContext(module *ast.Module, options Options) (*Context, error) {
	cache, err := lru.New[string, *constraint.CompiledType](max(options.CacheSize, 1))
	//
	if err != nil {
		return nil, err
	}
	//
	ctx := &Context{
		module:    module,
		options:   options,
		cache:     cache,
		pinned:    make(map[string]*constraint.CompiledType),
		resolving: make(map[string]bool),
	}
	ctx.compiler = constraint.NewCompiler(ctx, options.Config)
	//
	return ctx, nil
}

// Module returns the module being compiled by this context.
func (p *Context) Module() *ast.Module {
	return p.module
}

// CompileModule compiles every type assignment of the module.  Compilation is
// all or nothing: if any type fails to compile then no classes are returned,
// and the error reports every failure.
func (p *Context) CompileModule() ([]*Class, error) {
	var (
		classes []*Class
		errs    []error
	)
	//
	for _, assignment := range p.module.Types {
		class, err := p.CompileType(assignment.Name)
		//
		if err != nil {
			errs = append(errs, err)
		} else {
			classes = append(classes, class)
		}
	}
	//
	if len(errs) > 0 {
		log.Debugf("module %s failed with %d errors", p.module.Name, len(errs))
		return nil, errors.Join(errs...)
	}
	//
	return classes, nil
}

// CompileType compiles the constraint of a named type into a class.  Internal
// failures of the compiler are reported as INTERNAL errors rather than
// propagated as panics.
func (p *Context) CompileType(name string) (class *Class, err error) {
	defer func() {
		if r := recover(); r != nil {
			class, err = nil, internalError(name, r)
		}
		// Release pinned types
		clear(p.pinned)
	}()
	//
	log.Debugf("compiling type %s", name)
	//
	ct, err := p.lookup(name)
	//
	if err != nil {
		return nil, err
	}
	//
	def, err := p.compiler.Definition(ct)
	//
	if err != nil {
		return nil, err
	}
	//
	module, err := p.compiler.Build(ct)
	//
	if err != nil {
		return nil, err
	}
	//
	log.Debugf("generated %s", module.String())
	//
	return &Class{ct, def, module}, nil
}

// Check compiles a named type and evaluates its constraint check against a
// given value.
func (p *Context) Check(name string, value any) (bool, error) {
	class, err := p.CompileType(name)
	//
	if err != nil {
		return false, err
	}
	//
	return class.Check(value)
}

// Resolve implementation for the TypeResolver interface.  Named types are
// memoised, whilst anonymous types (e.g. the type of a component) are compiled
// afresh.  A reference with its own constraints gives rise to an anonymous
// type whose base is the referenced type.
func (p *Context) Resolve(t ast.Type) (*constraint.CompiledType, error) {
	ref, ok := t.(*ast.TypeReference)
	//
	if !ok {
		return constraint.NewCompiledType(t.String(), t, nil, t.Constraints()), nil
	}
	//
	base, err := p.lookup(ref.Name)
	//
	if err != nil || len(ref.Constraints()) == 0 {
		return base, err
	}
	//
	return constraint.NewCompiledType(ref.String(), base.Type, base, ref.Constraints()), nil
}

// ResolveValue implementation for the TypeResolver interface.
func (p *Context) ResolveValue(name string) (*ast.ValueAssignment, error) {
	if value := p.module.Value(name); value != nil {
		return value, nil
	}
	//
	return nil, constraint.Semantic(nil, "unknown value %s", name)
}

// lookup returns the compiled form of a named type, following (and checking
// for cycles in) chains of type references.
func (p *Context) lookup(name string) (*constraint.CompiledType, error) {
	if ct, ok := p.pinned[name]; ok {
		return ct, nil
	} else if ct, ok := p.cache.Get(name); ok {
		p.pinned[name] = ct
		return ct, nil
	} else if p.resolving[name] {
		return nil, constraint.Semantic(nil, "type %s is defined in terms of itself", name)
	}
	//
	assignment := p.module.Type(name)
	//
	if assignment == nil {
		return nil, constraint.Semantic(nil, "unknown type %s", name)
	}
	//
	p.resolving[name] = true
	defer delete(p.resolving, name)
	//
	var ct *constraint.CompiledType
	//
	if ref, ok := assignment.Type.(*ast.TypeReference); ok {
		base, err := p.lookup(ref.Name)
		//
		if err != nil {
			return nil, err
		}
		//
		ct = constraint.NewCompiledType(name, base.Type, base, ref.Constraints())
	} else {
		ct = constraint.NewCompiledType(name, assignment.Type, nil, assignment.Type.Constraints())
	}
	//
	log.Debugf("resolved type %s as %s", name, ct.Type.String())
	//
	p.pinned[name] = ct
	p.cache.Add(name, ct)
	//
	return ct, nil
}

func internalError(name string, r any) error {
	var msg string
	//
	switch e := r.(type) {
	case *constraint.IllegalStateError:
		msg = e.Msg
	case error:
		msg = e.Error()
	default:
		msg = fmt.Sprintf("%v", r)
	}
	//
	cerr := constraint.Internal(nil, "%s", msg)
	cerr.Type = name
	//
	return cerr
}
