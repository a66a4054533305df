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
	"errors"
	"fmt"
	"os"

	"github.com/consensys/go-asn1c/pkg/asn1c"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] schema_file [type...]",
	Short: "compile the constraints of a module.",
	Long: `Compile the subtype constraints of every type in a module (or only the
	given types), reporting the permitted values of each type or the
	generated checking functions.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			classes []*asn1c.Class
			err     error
		)
		//
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		options := getOptions(cmd)
		ir := GetFlag(cmd, "ir")
		width := GetUint(cmd, "textwidth")
		//
		if width == 0 {
			width = terminalWidth(80)
		}
		//
		ctx := newContext(readSchemaFile(args[0]), options)
		// Compile requested types
		if len(args) == 1 {
			classes, err = ctx.CompileModule()
		} else {
			classes, err = compileTypes(ctx, args[1:])
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		for _, class := range classes {
			if ir {
				fmt.Print(class.Module.String())
			} else {
				fmt.Println(truncate(fmt.Sprintf("%s: %s", class.Name(), class.Definition.String()), width))
			}
		}
	},
}

// Compile a given set of types, aggregating any errors which arise.
func compileTypes(ctx *asn1c.Context, names []string) ([]*asn1c.Class, error) {
	var (
		classes []*asn1c.Class
		errs    []error
	)
	//
	for _, name := range names {
		class, err := ctx.CompileType(name)
		//
		if err != nil {
			errs = append(errs, err)
		} else {
			classes = append(classes, class)
		}
	}
	//
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	//
	return classes, nil
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().Bool("ir", false, "print the generated checking functions")
	compileCmd.Flags().Uint("textwidth", 0, "set maximum textwidth to use (0 detects the terminal width)")
}
