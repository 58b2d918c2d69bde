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
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(exitUsage)
	}

	return r
}

// GetInt gets an expected int, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(exitUsage)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(exitUsage)
	}

	return r
}

// readPrivateKeys gathers the private keys for a command.  Keys given as
// arguments come first, followed by those in the file given by --file.  When
// neither are given, keys are read from stdin or, if that is a terminal,
// prompted for without echo.
func readPrivateKeys(cmd *cobra.Command, args []string) ([]string, error) {
	keys := slices.Clone(args)
	//
	if filename := GetString(cmd, "file"); filename != "" {
		file, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		//
		defer file.Close()
		//
		fileKeys, err := parseKeys(file)
		if err != nil {
			return nil, err
		}
		//
		keys = append(keys, fileKeys...)
	} else if len(keys) > 0 {
		return keys, nil
	} else if fd := int(os.Stdin.Fd()); !term.IsTerminal(fd) {
		return parseKeys(os.Stdin)
	} else {
		key, err := promptKey(fd)
		if err != nil {
			return nil, err
		}
		//
		keys = []string{key}
	}
	//
	return keys, nil
}

// promptKey reads a single private key from the terminal without echoing it.
func promptKey(fd int) (string, error) {
	fmt.Fprint(os.Stderr, "Private key: ")
	//
	bytes, err := term.ReadPassword(fd)
	//
	fmt.Fprintln(os.Stderr)
	//
	return strings.TrimSpace(string(bytes)), err
}

// parseKeys reads one key per line, skipping blank lines and those starting
// with '#'.
func parseKeys(reader io.Reader) ([]string, error) {
	var (
		keys    []string
		scanner = bufio.NewScanner(reader)
	)
	//
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		//
		if line != "" && !strings.HasPrefix(line, "#") {
			keys = append(keys, line)
		}
	}
	//
	return keys, scanner.Err()
}
