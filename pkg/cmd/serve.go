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
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/consensys/go-starkkey/pkg/server"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Time allowed for in-flight requests to complete on shutdown.
const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve [flags]",
	Short: "serve public key derivation over HTTP.",
	Long: `Serve public key derivation over HTTP until interrupted.
	Endpoints:
	  POST /v1/public-key                {"private_key": ...}
	  POST /v1/public-keys               {"private_keys": [...]}
	  GET  /v1/public-key/:key/validate
	  GET  /healthz`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		//
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		//
		if err := serve(ctx, server.New(cfg.Workers), cfg.Listen); err != nil {
			fmt.Println(err)
			os.Exit(exitUsage)
		}
	},
}

// serve runs the server until either it fails, or the context is cancelled.
func serve(ctx context.Context, s *server.Server, address string) error {
	g, ctx := errgroup.WithContext(ctx)
	//
	g.Go(func() error {
		return s.Start(address)
	})
	//
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		//
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		//
		return s.Shutdown(shutdownCtx)
	})
	//
	return g.Wait()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", DefaultListen, "address to listen on")
	serveCmd.Flags().IntP("workers", "j", 0, "maximum number of concurrent derivations per batch request")
}
