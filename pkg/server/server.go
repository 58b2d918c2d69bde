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
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/consensys/go-starkkey/pkg/fault"
	"github.com/consensys/go-starkkey/pkg/key"
	"github.com/consensys/go-starkkey/pkg/util"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// Server exposes public key derivation over HTTP.  Request bodies carry private
// keys and are therefore never logged.
type Server struct {
	echo *echo.Echo
	// Bound on concurrent multiplications for batch requests.
	workers int
}

// PublicKeyRequest is the body of a single derivation request.
type PublicKeyRequest struct {
	PrivateKey string `json:"private_key"`
}

// PublicKeyResponse is the result of a single derivation request.
type PublicKeyResponse struct {
	PublicKey string `json:"public_key"`
}

// PublicKeysRequest is the body of a batch derivation request.
type PublicKeysRequest struct {
	PrivateKeys []string `json:"private_keys"`
}

// PublicKeysResponse is the result of a batch derivation request, in the same
// order as the request.
type PublicKeysResponse struct {
	PublicKeys []string `json:"public_keys"`
}

// PointResponse describes a validated public key as a full affine point.
type PointResponse struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// ErrorResponse describes a rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	// Offending input for batch requests.
	Index *int `json:"index,omitempty"`
}

// New constructs a server whose batch requests use at most the given number of
// workers.
func New(workers int) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	//
	s := &Server{e, workers}
	//
	e.Use(s.logRequests)
	e.GET("/healthz", s.health)
	e.POST("/v1/public-key", s.publicKey)
	e.POST("/v1/public-keys", s.publicKeys)
	e.GET("/v1/public-key/:key/validate", s.validate)
	//
	return s
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on the given address, blocking until the server stops.
func (s *Server) Start(address string) error {
	log.Infof("listening on %s", address)
	//
	if err := s.echo.Start(address); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	//
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) publicKey(c echo.Context) error {
	var req PublicKeyRequest
	//
	if err := c.Bind(&req); err != nil {
		return err
	}
	//
	public, err := key.GetPublicKey(req.PrivateKey)
	if err != nil {
		return reject(c, err)
	}
	//
	return c.JSON(http.StatusOK, PublicKeyResponse{public})
}

func (s *Server) publicKeys(c echo.Context) error {
	var req PublicKeysRequest
	//
	if err := c.Bind(&req); err != nil {
		return err
	}
	//
	public, err := key.DeriveBatch(c.Request().Context(), req.PrivateKeys, s.workers)
	if err != nil {
		return reject(c, err)
	}
	//
	return c.JSON(http.StatusOK, PublicKeysResponse{public})
}

func (s *Server) validate(c echo.Context) error {
	p, err := key.ValidatePublicKey(c.Param("key"))
	if err != nil {
		return reject(c, err)
	}
	//
	x, y := p.X(), p.Y()
	//
	return c.JSON(http.StatusOK, PointResponse{"0x" + x.Text(16), "0x" + y.Text(16)})
}

// reject reports a derivation failure as a bad request.  Anything other than a
// classified failure (e.g. cancellation) is left to echo's error handler.
func reject(c echo.Context, err error) error {
	kind, ok := fault.KindOf(err)
	if !ok {
		return err
	}
	//
	resp := ErrorResponse{Error: err.Error(), Kind: kind.String()}
	//
	var batchErr *key.BatchError
	if errors.As(err, &batchErr) {
		resp.Index = &batchErr.Index
	}
	//
	return c.JSON(http.StatusBadRequest, resp)
}

// logRequests logs the route, status and latency of every request at debug
// level.
func (s *Server) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats := util.NewPerfStats()
		//
		if err := next(c); err != nil {
			c.Error(err)
		}
		//
		log.WithFields(log.Fields{
			"method": c.Request().Method,
			"route":  c.Path(),
			"status": c.Response().Status,
		}).Debugf("handled in %v", stats.Elapsed())
		//
		return nil
	}
}
