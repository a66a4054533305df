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
package cmd

import (
	"testing"

	"github.com/consensys/go-asn1c/pkg/asn1c"
	"github.com/stretchr/testify/require"
)

const exampleSchema = "../asn1/schema/testdata/example.json"

func Test_Truncate_01(t *testing.T) {
	require.Equal(t, "Percent: (0..100)", truncate("Percent: (0..100)", 80))
}

func Test_Truncate_02(t *testing.T) {
	require.Equal(t, "Perc...", truncate("Percent: (0..100)", 7))
}

func Test_Truncate_03(t *testing.T) {
	// Widths too small to hold an ellipsis are ignored
	require.Equal(t, "Percent", truncate("Percent", 3))
}

func Test_CompileTypes_01(t *testing.T) {
	ctx := newContext(readSchemaFile(exampleSchema), asn1c.DefaultOptions())
	classes, err := compileTypes(ctx, []string{"Percent", "Small"})
	//
	require.NoError(t, err)
	require.Len(t, classes, 2)
	require.Equal(t, "Percent", classes[0].Name())
	require.Equal(t, "Small", classes[1].Name())
}

func Test_CompileTypes_02(t *testing.T) {
	ctx := newContext(readSchemaFile(exampleSchema), asn1c.DefaultOptions())
	_, err := compileTypes(ctx, []string{"Percent", "Missing", "Unknown"})
	//
	require.Error(t, err)
	require.Contains(t, err.Error(), "Missing")
	require.Contains(t, err.Error(), "Unknown")
}
