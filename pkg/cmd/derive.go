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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-starkkey/pkg/key"
	"github.com/consensys/go-starkkey/pkg/util"
	"github.com/spf13/cobra"
)

var deriveCmd = &cobra.Command{
	Use:   "derive [flags] [private_key...]",
	Short: "derive public keys from private keys.",
	Long: `Derive the public key for each given private key, printing one per line.
	Private keys are given as hex (optionally 0x-prefixed) either as arguments, in
	a file (one per line), on stdin or, when stdin is a terminal, at a prompt.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		expect := GetString(cmd, "expect")
		//
		keys, err := readPrivateKeys(cmd, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(exitUsage)
		} else if len(keys) == 0 {
			fmt.Println("no private keys given")
			os.Exit(exitUsage)
		} else if expect != "" && len(keys) != 1 {
			fmt.Println("--expect requires exactly one private key")
			os.Exit(exitUsage)
		}
		//
		if code := derive(cmd.Context(), os.Stdout, keys, cfg.Workers, expect); code != 0 {
			os.Exit(code)
		}
	},
}

// derive writes the public key for each private key, returning the exit code.
// When expect is non-empty, the (single) derived key is compared against it.
func derive(ctx context.Context, out io.Writer, keys []string, workers int, expect string) int {
	stats := util.NewPerfStats()
	//
	public, err := key.DeriveBatch(ctx, keys, workers)
	if err != nil {
		fmt.Fprintln(out, err)
		return exitRejected
	}
	//
	stats.Log(fmt.Sprintf("Deriving %d key(s)", len(keys)))
	//
	for _, k := range public {
		fmt.Fprintln(out, k)
	}
	//
	if expect == "" {
		return 0
	}
	// Normalise the expected key
	p, err := key.ValidatePublicKey(expect)
	if err != nil {
		fmt.Fprintf(out, "invalid expected key: %s\n", err)
		return exitUsage
	}
	//
	if expected, err := key.EncodePoint(p); err != nil || expected != public[0] {
		fmt.Fprintf(out, "mismatch: expected %s\n", expect)
		return exitMismatch
	}
	//
	return 0
}

func init() {
	rootCmd.AddCommand(deriveCmd)
	deriveCmd.Flags().StringP("file", "f", "", "read private keys from file (one per line)")
	deriveCmd.Flags().IntP("workers", "j", 0, "maximum number of concurrent derivations")
	deriveCmd.Flags().String("expect", "", "fail unless the derived public key matches this")
}
