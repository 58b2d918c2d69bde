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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/consensys/go-starkkey/pkg/server"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	privateKey = "0x03c1e9550e66958296d11b60f8e8e7a7ad990d07fa65d5f7652c4a6c87d4e3cc"
	publicKey  = "0x077a3b314db07c45076d11f62b6f9e748a39790441823307743cf00d6597ea43"
)

// ============================================================================
// Key input
// ============================================================================

func Test_ParseKeys(t *testing.T) {
	input := "# test keys\n\n  0x1  \n0x2\n\t# indented comment\n0x3"
	//
	keys, err := parseKeys(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"0x1", "0x2", "0x3"}, keys)
}

func Test_ParseKeys_Empty(t *testing.T) {
	keys, err := parseKeys(strings.NewReader("\n# nothing\n"))
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func Test_ReadPrivateKeys_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "keys.txt")
	require.NoError(t, os.WriteFile(file, []byte("0x2\n0x3\n"), 0o600))
	//
	cmd := newCommand(t, "--file", file)
	//
	keys, err := readPrivateKeys(cmd, []string{"0x1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"0x1", "0x2", "0x3"}, keys)
}

func Test_ReadPrivateKeys_MissingFile(t *testing.T) {
	cmd := newCommand(t, "--file", filepath.Join(t.TempDir(), "missing.txt"))
	//
	_, err := readPrivateKeys(cmd, nil)
	assert.Error(t, err)
}

// ============================================================================
// Derive / Check
// ============================================================================

func Test_Derive(t *testing.T) {
	var out bytes.Buffer
	//
	code := derive(context.Background(), &out, []string{privateKey, "0x12"}, 2, "")
	//
	assert.Equal(t, 0, code)
	assert.Equal(t, publicKey+"\n0x019661066e96a8b9f06a1d136881ee924dfb6a885239caa5fd3f87a54c6b25c4\n", out.String())
}

func Test_Derive_Expect(t *testing.T) {
	var out bytes.Buffer
	// Non-canonical spelling of the expected key is accepted
	code := derive(context.Background(), &out, []string{privateKey}, 1, strings.ToUpper(publicKey[2:]))
	//
	assert.Equal(t, 0, code)
	assert.Equal(t, publicKey+"\n", out.String())
}

func Test_Derive_Mismatch(t *testing.T) {
	var out bytes.Buffer
	// 0x1 derives G.x
	code := derive(context.Background(), &out, []string{"0x1"}, 1, publicKey)
	//
	assert.Equal(t, exitMismatch, code)
	assert.Contains(t, out.String(), "mismatch")
}

func Test_Derive_InvalidExpect(t *testing.T) {
	var out bytes.Buffer
	//
	code := derive(context.Background(), &out, []string{"0x1"}, 1, "0xzz")
	//
	assert.Equal(t, exitUsage, code)
}

func Test_Derive_Rejected(t *testing.T) {
	var out bytes.Buffer
	//
	code := derive(context.Background(), &out, []string{privateKey, "0x0"}, 1, "")
	//
	assert.Equal(t, exitRejected, code)
	assert.Contains(t, out.String(), "key 1")
	assert.Contains(t, out.String(), "OutOfRange")
	assert.NotContains(t, out.String(), publicKey)
}

func Test_Check(t *testing.T) {
	var out bytes.Buffer
	//
	code := check(&out, []string{publicKey}, false)
	//
	assert.Equal(t, 0, code)
	assert.Equal(t, publicKey+": ok\n", out.String())
}

func Test_Check_Verbose(t *testing.T) {
	var out bytes.Buffer
	//
	code := check(&out, []string{publicKey}, true)
	//
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out.String(), publicKey+": (0x77a3b314db07c45076d11f62b6f9e748a39790441823307743cf00d6597ea43, 0x"))
}

func Test_Check_Rejected(t *testing.T) {
	var out bytes.Buffer
	//
	code := check(&out, []string{"0x0", publicKey, "0xzz"}, false)
	//
	assert.Equal(t, exitRejected, code)
	//
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "InvalidPoint")
	assert.Equal(t, publicKey+": ok", lines[1])
	assert.Contains(t, lines[2], "InvalidEncoding")
}

// ============================================================================
// Configuration
// ============================================================================

func newCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	//
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("verbose", false, "")
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("file", "", "")
	cmd.Flags().Int("workers", 0, "")
	cmd.Flags().String("listen", DefaultListen, "")
	require.NoError(t, cmd.ParseFlags(args))
	//
	return cmd
}

func isolate(t *testing.T) string {
	t.Helper()
	//
	home := t.TempDir()
	t.Setenv("HOME", home)
	//
	for _, key := range configKeys {
		t.Setenv("STARKKEY_"+strings.ToUpper(key), "")
		os.Unsetenv("STARKKEY_" + strings.ToUpper(key))
	}
	//
	return home
}

func writeConfig(t *testing.T, dir string, name string, contents string) string {
	t.Helper()
	//
	file := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(file, []byte(contents), 0o600))
	//
	return file
}

func Test_Config_Defaults(t *testing.T) {
	isolate(t)
	//
	cfg, file, err := readConfig(newCommand(t))
	require.NoError(t, err)
	assert.Empty(t, file)
	assert.Equal(t, Config{Workers: runtime.NumCPU(), Listen: DefaultListen}, cfg)
}

func Test_Config_File(t *testing.T) {
	file := writeConfig(t, isolate(t), "custom.yaml", "workers: 3\nlisten: 0.0.0.0:9000\nverbose: true\n")
	//
	cfg, used, err := readConfig(newCommand(t, "--config", file))
	require.NoError(t, err)
	assert.Equal(t, file, used)
	assert.Equal(t, Config{Workers: 3, Listen: "0.0.0.0:9000", Verbose: true}, cfg)
}

func Test_Config_HomeFile(t *testing.T) {
	home := isolate(t)
	file := writeConfig(t, home, ".starkkey.yaml", "workers: 4\n")
	//
	cfg, used, err := readConfig(newCommand(t))
	require.NoError(t, err)
	assert.Equal(t, file, used)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, DefaultListen, cfg.Listen)
}

func Test_Config_Precedence(t *testing.T) {
	file := writeConfig(t, isolate(t), "custom.yaml", "workers: 3\nlisten: 0.0.0.0:9000\n")
	// Environment overrides file
	t.Setenv("STARKKEY_WORKERS", "5")
	//
	cfg, _, err := readConfig(newCommand(t, "--config", file))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Workers)
	assert.Equal(t, "0.0.0.0:9000", cfg.Listen)
	// Flags override environment
	cfg, _, err = readConfig(newCommand(t, "--config", file, "--workers", "9", "--listen", "localhost:1234"))
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Workers)
	assert.Equal(t, "localhost:1234", cfg.Listen)
}

func Test_Config_MissingFile(t *testing.T) {
	home := isolate(t)
	//
	_, _, err := readConfig(newCommand(t, "--config", filepath.Join(home, "missing.yaml")))
	assert.Error(t, err)
}

// ============================================================================
// Serve
// ============================================================================

func Test_Serve_Shutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	//
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()
	//
	assert.NoError(t, serve(ctx, server.New(1), "127.0.0.1:0"))
}
