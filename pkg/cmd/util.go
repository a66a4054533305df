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
	"fmt"
	"os"

	"github.com/consensys/go-asn1c/pkg/asn1/ast"
	"github.com/consensys/go-asn1c/pkg/asn1/schema"
	"github.com/consensys/go-asn1c/pkg/asn1c"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Determine compilation options from the persistent flags.
func getOptions(cmd *cobra.Command) asn1c.Options {
	var options = asn1c.DefaultOptions()
	//
	options.Optimise = !GetFlag(cmd, "no-opt")
	options.CheckExtensions = !GetFlag(cmd, "roots-only")
	options.CacheSize = int(GetUint(cmd, "cache-size"))
	//
	return options
}

// Read a module from a JSON schema file, exiting if this fails.
func readSchemaFile(filename string) *ast.Module {
	bytes, err := os.ReadFile(filename)
	//
	if err == nil {
		var module *ast.Module
		//
		if module, err = schema.Load(bytes); err == nil {
			log.Debugf("read module %s with %d types from %s", module.Name, len(module.Types), filename)
			return module
		}
	}
	// Handle error
	fmt.Printf("%s: %s\n", filename, err)
	os.Exit(2)
	// unreachable
	return nil
}

// Construct a compilation context, exiting if this fails.
func newContext(module *ast.Module, options asn1c.Options) *asn1c.Context {
	ctx, err := asn1c.NewContext(module, options)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return ctx
}

// Determine the width of the terminal, falling back to a given default when
// output is not a terminal.
func terminalWidth(fallback uint) uint {
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return uint(width)
		}
	}
	//
	return fallback
}

// Truncate a line of text to a given width.
func truncate(text string, width uint) string {
	var runes = []rune(text)
	//
	if width < 4 || uint(len(runes)) <= width {
		return text
	}
	//
	return string(runes[:width-3]) + "..."
}
