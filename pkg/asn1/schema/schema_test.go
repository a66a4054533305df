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
	"os"
	"testing"

	"github.com/consensys/go-asn1c/pkg/asn1/ast"
	"github.com/consensys/go-asn1c/pkg/asn1c"
	"github.com/stretchr/testify/require"
)

func Test_Load_01(t *testing.T) {
	module := check_Load(t)
	//
	require.Equal(t, "Example", module.Name)
	require.Len(t, module.Types, 11)
	require.Len(t, module.Values, 1)
	require.Equal(t, ast.CHARACTER_STRING, module.Type("Name").Type.Kind())
	require.Equal(t, ast.REFERENCE, module.Type("Small").Type.Kind())
	require.Equal(t, ast.SEQUENCE_OF, module.Type("Names").Type.Kind())
}

func Test_Load_02(t *testing.T) {
	module := check_Load(t)
	//
	require.Equal(t, "INTEGER (0..hundred)", module.Type("Percent").Type.String())
	require.Equal(t, "Percent (MIN..10)", module.Type("Small").Type.String())
}

func Test_Load_Invalid_01(t *testing.T) {
	_, err := Load([]byte(`{"name": "M", "types": [{"name": "T", "type": {"kind": "REAL"}}]}`))
	require.ErrorContains(t, err, "REAL")
}

func Test_Load_Invalid_02(t *testing.T) {
	_, err := Load([]byte(`{"name": "M", "types": [{"name": "T", "type": {"kind": "INTEGER", "constraints": [
		{"root": {"except": [{"value": {"integer": 1}}]}}]}}]}`))
	require.ErrorContains(t, err, "EXCEPT")
}

func Test_Load_Invalid_03(t *testing.T) {
	_, err := Load([]byte(`{"name": "M", "types": [`))
	require.Error(t, err)
}

func Test_Compile_01(t *testing.T) {
	ctx, err := asn1c.NewContext(check_Load(t), asn1c.DefaultOptions())
	require.NoError(t, err)
	//
	classes, err := ctx.CompileModule()
	require.NoError(t, err)
	require.Len(t, classes, 11)
}

func Test_Check_01(t *testing.T) {
	check_Value(t, "Percent", `100`, true)
	check_Value(t, "Percent", `101`, false)
	check_Value(t, "Small", `10`, true)
	check_Value(t, "Small", `11`, false)
	check_Value(t, "Small", `-1`, false)
}

func Test_Check_02(t *testing.T) {
	check_Value(t, "Codes", `5`, true)
	check_Value(t, "Codes", `15`, false)
	check_Value(t, "Codes", `40`, true)
}

func Test_Check_03(t *testing.T) {
	check_Value(t, "Name", `"abc"`, true)
	check_Value(t, "Name", `"abcdef"`, false)
	check_Value(t, "Name", `"aBc"`, false)
}

func Test_Check_04(t *testing.T) {
	check_Value(t, "Colour", `"red"`, true)
	check_Value(t, "Colour", `"green"`, false)
	check_Value(t, "Colour", `2`, true)
}

func Test_Check_05(t *testing.T) {
	check_Value(t, "Flags", `"01000000"`, true)
	check_Value(t, "Flags", `"01"`, false)
	check_Value(t, "Digest", `"0aff"`, true)
	check_Value(t, "Digest", `"0a"`, false)
	check_Value(t, "Arc", `[1, 3, 6]`, true)
	check_Value(t, "Arc", `[1, 3]`, false)
}

func Test_Check_06(t *testing.T) {
	check_Value(t, "Names", `["abc", "de"]`, true)
	check_Value(t, "Names", `[]`, false)
	check_Value(t, "Record", `{"id": 3}`, true)
	check_Value(t, "Record", `{"id": 0}`, false)
	check_Value(t, "Record", `{"id": 3, "note": "hi"}`, false)
	check_Value(t, "Shape", `{"circle": 20}`, true)
	check_Value(t, "Shape", `{"circle": 60}`, false)
	check_Value(t, "Shape", `{"square": 20}`, false)
}

func Test_DecodeValue_Invalid_01(t *testing.T) {
	module := check_Load(t)
	//
	_, err := DecodeValue(module, module.Type("Percent").Type, []byte(`"ten"`))
	require.Error(t, err)
	//
	_, err = DecodeValue(module, module.Type("Flags").Type, []byte(`"012"`))
	require.Error(t, err)
	//
	_, err = DecodeValue(module, module.Type("Shape").Type, []byte(`{"circle": 1, "square": 2}`))
	require.Error(t, err)
	//
	_, err = DecodeValue(module, module.Type("Record").Type, []byte(`{"name": 1}`))
	require.Error(t, err)
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Load(t *testing.T) *ast.Module {
	t.Helper()
	//
	bytes, err := os.ReadFile("testdata/example.json")
	require.NoError(t, err)
	//
	module, err := Load(bytes)
	require.NoError(t, err)
	//
	return module
}

func check_Value(t *testing.T, name string, value string, expected bool) {
	t.Helper()
	//
	module := check_Load(t)
	ctx, err := asn1c.NewContext(module, asn1c.DefaultOptions())
	require.NoError(t, err)
	//
	decoded, err := DecodeValue(module, module.Type(name).Type, []byte(value))
	require.NoError(t, err)
	//
	actual, err := ctx.Check(name, decoded)
	require.NoError(t, err)
	require.Equal(t, expected, actual, "checking %s against %s", value, name)
}
