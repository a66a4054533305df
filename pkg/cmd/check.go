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

	"github.com/consensys/go-asn1c/pkg/asn1/schema"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] schema_file type value",
	Short: "check a value against the constraint of a type.",
	Long: `Check whether a given value is permitted by the constraint of a given
	type.  The value is given in JSON, e.g. 42, "abc", [1, 2, 3] or
	{"id": 1}.  The exit code is 1 if the value is rejected.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 3 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			options = getOptions(cmd)
			module  = readSchemaFile(args[0])
			name    = args[1]
		)
		//
		assignment := module.Type(name)
		//
		if assignment == nil {
			fmt.Printf("unknown type %s\n", name)
			os.Exit(2)
		}
		//
		value, err := schema.DecodeValue(module, assignment.Type, []byte(args[2]))
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		log.Debugf("decoded value %v", value)
		//
		ok, err := newContext(module, options).Check(name, value)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		} else if !ok {
			fmt.Printf("%s rejected by %s\n", args[2], name)
			os.Exit(1)
		}
		//
		fmt.Printf("%s accepted by %s\n", args[2], name)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
