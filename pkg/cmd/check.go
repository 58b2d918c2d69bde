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
	"io"
	"os"

	"github.com/consensys/go-starkkey/pkg/key"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] public_key...",
	Short: "check public keys identify points on the curve.",
	Long: `Check that each given public key is well-formed and identifies a point on
	the curve.  With --verbose, the full point is reported.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		//
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(exitUsage)
		}
		//
		if code := check(os.Stdout, args, cfg.Verbose); code != 0 {
			os.Exit(code)
		}
	},
}

// check reports on each public key, returning the exit code.
func check(out io.Writer, keys []string, verbose bool) int {
	code := 0
	//
	for _, k := range keys {
		p, err := key.ValidatePublicKey(k)
		//
		switch {
		case err != nil:
			fmt.Fprintf(out, "%s: %s\n", k, err)
			code = exitRejected
		case verbose:
			fmt.Fprintf(out, "%s: %s\n", k, p)
		default:
			fmt.Fprintf(out, "%s: ok\n", k)
		}
	}
	//
	return code
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
