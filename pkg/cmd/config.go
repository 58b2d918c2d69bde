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
	"path/filepath"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the settings shared by all subcommands.  Settings are resolved
// from (in increasing order of precedence) defaults, the config file, STARKKEY_*
// environment variables and command-line flags.
type Config struct {
	// Maximum number of concurrent derivations.
	Workers int `mapstructure:"workers"`
	// Address on which to serve HTTP requests.
	Listen string `mapstructure:"listen"`
	// Enable debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// DefaultListen is the default address for the HTTP service.
const DefaultListen = "127.0.0.1:8080"

var configKeys = []string{"workers", "listen", "verbose"}

// loadConfig reads the configuration for a command and configures the log
// level accordingly, exiting if the configuration is malformed.
func loadConfig(cmd *cobra.Command) Config {
	cfg, file, err := readConfig(cmd)
	if err != nil {
		fmt.Println(err)
		os.Exit(exitUsage)
	}
	// Configure log level
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	//
	if file != "" {
		log.Debugf("using config file %s", file)
	}
	//
	return cfg
}

// readConfig resolves the configuration for a command, returning the config
// file used (if any).
func readConfig(cmd *cobra.Command) (Config, string, error) {
	var (
		cfg Config
		v   = viper.New()
	)
	//
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("listen", DefaultListen)
	v.SetDefault("verbose", false)
	v.SetEnvPrefix("STARKKEY")
	v.AutomaticEnv()
	// Only explicitly given flags override other sources
	for _, key := range configKeys {
		if flag := cmd.Flags().Lookup(key); flag != nil && flag.Changed {
			if err := v.BindPFlag(key, flag); err != nil {
				return cfg, "", err
			}
		}
	}
	//
	file := configFile(cmd)
	//
	if file != "" {
		v.SetConfigFile(file)
		//
		if err := v.ReadInConfig(); err != nil {
			return cfg, "", fmt.Errorf("error reading config file %s: %w", file, err)
		}
	}
	//
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, "", fmt.Errorf("malformed configuration: %w", err)
	}
	//
	return cfg, file, nil
}

// configFile determines which config file to use.  This is either given
// explicitly, or the first of ./starkkey.yaml and $HOME/.starkkey.yaml which
// exists.
func configFile(cmd *cobra.Command) string {
	if file := GetString(cmd, "config"); file != "" {
		return file
	}
	//
	candidates := []string{"starkkey.yaml"}
	//
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".starkkey.yaml"))
	}
	//
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	//
	return ""
}
