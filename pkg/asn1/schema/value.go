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
	"encoding/hex"
	"fmt"

	"github.com/consensys/go-asn1c/pkg/asn1/ast"
	"github.com/consensys/go-asn1c/pkg/asn1c/il"
	"github.com/segmentio/encoding/json"
)

// MAX_DEPTH bounds the nesting of decoded values and type references.
const MAX_DEPTH = 128

// DecodeValue decodes the JSON encoding of a value of a given type into its
// runtime representation, as accepted by generated constraint checks.  The
// encodings are:
//
//	INTEGER              number
//	ENUMERATED           number, or the name of an item
//	BOOLEAN              true or false
//	NULL                 null
//	BIT STRING           string of '0' and '1' characters
//	OCTET STRING         string of hex digits
//	character strings    string
//	OBJECT IDENTIFIER    array of numbers
//	OID-IRI              string, e.g. "/ISO/Registration_Authority"
//	SEQUENCE, SET        object with a field per present component
//	CHOICE               object with exactly one field
//	SEQUENCE OF, SET OF  array
func DecodeValue(module *ast.Module, t ast.Type, bytes []byte) (any, error) {
	return (&decoder{module}).decode(t, json.RawMessage(bytes), 0)
}

type decoder struct {
	module *ast.Module
}

func (p *decoder) decode(t ast.Type, raw json.RawMessage, depth int) (any, error) {
	if depth > MAX_DEPTH {
		return nil, fmt.Errorf("value nested too deeply")
	}
	//
	switch t := t.(type) {
	case *ast.TypeReference:
		assignment := p.module.Type(t.Name)
		//
		if assignment == nil {
			return nil, fmt.Errorf("unknown type %s", t.Name)
		}
		//
		return p.decode(assignment.Type, raw, depth+1)
	case *ast.IntegerType:
		return decodeAs[int64](raw, t)
	case *ast.EnumeratedType:
		return p.decodeEnumerated(t, raw)
	case *ast.BooleanType:
		return decodeAs[bool](raw, t)
	case *ast.NullType:
		if string(raw) != "null" {
			return nil, fmt.Errorf("expected null, found %s", string(raw))
		}
		//
		return nil, nil
	case *ast.BitStringType:
		var bits string
		//
		if err := unmarshal(raw, &bits, t); err != nil {
			return nil, err
		}
		//
		for _, c := range bits {
			if c != '0' && c != '1' {
				return nil, fmt.Errorf("invalid bit string %q", bits)
			}
		}
		//
		return il.BitStringOf(bits), nil
	case *ast.OctetStringType:
		var digits string
		//
		if err := unmarshal(raw, &digits, t); err != nil {
			return nil, err
		}
		//
		return hex.DecodeString(digits)
	case *ast.CharacterStringType:
		return decodeAs[string](raw, t)
	case *ast.ObjectIdentifierType:
		return decodeAs[[]int64](raw, t)
	case *ast.IRIType:
		var iri string
		//
		if err := unmarshal(raw, &iri, t); err != nil {
			return nil, err
		}
		//
		return (&ast.IRIValue{Value: iri}).Arcs(), nil
	case *ast.CollectionType:
		return p.decodeStruct(t, raw, depth)
	case *ast.ChoiceType:
		return p.decodeChoice(t, raw, depth)
	case *ast.CollectionOfType:
		var items []json.RawMessage
		//
		if err := unmarshal(raw, &items, t); err != nil {
			return nil, err
		}
		//
		var values = make([]any, len(items))
		//
		for i, item := range items {
			value, err := p.decode(t.Element, item, depth+1)
			//
			if err != nil {
				return nil, err
			}
			//
			values[i] = value
		}
		//
		return values, nil
	default:
		return nil, fmt.Errorf("cannot decode values of %s", t.String())
	}
}

func (p *decoder) decodeEnumerated(t *ast.EnumeratedType, raw json.RawMessage) (any, error) {
	var (
		number int64
		name   string
	)
	//
	if json.Unmarshal(raw, &number) == nil {
		return number, nil
	} else if err := unmarshal(raw, &name, t); err != nil {
		return nil, err
	}
	//
	for _, item := range t.AllItems() {
		if item.Name == name {
			return item.Number, nil
		}
	}
	//
	return nil, fmt.Errorf("unknown enumeration item %s", name)
}

func (p *decoder) decodeStruct(t *ast.CollectionType, raw json.RawMessage, depth int) (any, error) {
	var (
		fields map[string]json.RawMessage
		value  = make(il.Struct)
	)
	//
	if err := unmarshal(raw, &fields, t); err != nil {
		return nil, err
	}
	//
	for name, field := range fields {
		component := ast.FindComponent(t.Components, name)
		//
		if component == nil {
			return nil, fmt.Errorf("unknown component %s", name)
		}
		//
		v, err := p.decode(component.Type, field, depth+1)
		//
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", name, err)
		}
		//
		value[name] = v
	}
	//
	return value, nil
}

func (p *decoder) decodeChoice(t *ast.ChoiceType, raw json.RawMessage, depth int) (any, error) {
	var fields map[string]json.RawMessage
	//
	if err := unmarshal(raw, &fields, t); err != nil {
		return nil, err
	} else if len(fields) != 1 {
		return nil, fmt.Errorf("expected exactly one alternative, found %d", len(fields))
	}
	//
	for name, field := range fields {
		alternative := ast.FindComponent(t.Alternatives, name)
		//
		if alternative == nil {
			return nil, fmt.Errorf("unknown alternative %s", name)
		}
		//
		v, err := p.decode(alternative.Type, field, depth+1)
		//
		if err != nil {
			return nil, fmt.Errorf("alternative %s: %w", name, err)
		}
		//
		return il.Choice{Alternative: name, Value: v}, nil
	}
	//
	panic("unreachable")
}

func decodeAs[T any](raw json.RawMessage, t ast.Type) (any, error) {
	var value T
	//
	if err := unmarshal(raw, &value, t); err != nil {
		return nil, err
	}
	//
	return value, nil
}

func unmarshal(raw json.RawMessage, v any, t ast.Type) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid value %s for %s", string(raw), t.String())
	}
	//
	return nil
}
