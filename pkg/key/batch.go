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
package key

import (
	"context"
	"fmt"

	"github.com/consensys/go-starkkey/pkg/curve"
	"github.com/consensys/go-starkkey/pkg/util"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// BatchError identifies the input of a batch which was rejected.
type BatchError struct {
	// Index of the offending input.
	Index int
	// Underlying failure.
	Err error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("key %d: %s", e.Index, e.Err.Error())
}

// Unwrap provides access to the underlying failure.
func (e *BatchError) Unwrap() error {
	return e.Err
}

// DeriveBatch derives public keys for many private keys at once.  All keys are
// decoded first, such that a *BatchError for the lowest offending index is
// returned if any is rejected.  Scalar multiplications are then executed on at
// most the given number of goroutines (unbounded when workers <= 0), and all
// products are normalised with a single field inversion.  Cancelling the context
// aborts any multiplications not yet started.
func DeriveBatch(ctx context.Context, keys []string, workers int) ([]string, error) {
	var (
		stats    = util.NewPerfStats()
		scalars  = make([]Scalar, len(keys))
		products = make([]curve.Projective, len(keys))
		public   = make([]string, len(keys))
		err      error
	)
	// Decode
	for i, key := range keys {
		if scalars[i], err = DecodeScalar(key); err != nil {
			return nil, &BatchError{i, err}
		}
	}
	// Multiply
	g, ctx := errgroup.WithContext(ctx)
	//
	if workers > 0 {
		g.SetLimit(workers)
	}
	//
	for i, k := range scalars {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			//
			products[i] = curve.ScalarMultiplyProjective(curve.Generator(), k.Limbs())
			//
			return nil
		})
	}
	//
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Normalise and encode
	for i, p := range curve.BatchToAffine(products) {
		if public[i], err = EncodePoint(p); err != nil {
			return nil, &BatchError{i, err}
		}
	}
	//
	log.Debugf("derived %d public keys using %d workers", len(keys), workers)
	stats.Log("Batch derivation")
	//
	return public, nil
}
