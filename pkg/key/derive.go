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
	"github.com/consensys/go-starkkey/pkg/curve"
	"github.com/consensys/go-starkkey/pkg/fault"
)

// GetPublicKey derives the encoded public key for an encoded private key.  This
// decodes the private key k, computes k·G and encodes the x-coordinate of the
// result.  Nothing is returned unless every step succeeds.
func GetPublicKey(privateKey string) (string, error) {
	k, err := DecodeScalar(privateKey)
	if err != nil {
		return "", err
	}
	//
	p, err := Derive(k)
	if err != nil {
		return "", err
	}
	//
	return EncodePoint(p)
}

// Derive computes the public key point k·G for a private key k.
func Derive(k Scalar) (curve.Point, error) {
	p := curve.ScalarBaseMultiply(k.Limbs())
	// Only possible for k ≡ 0 (mod N)
	if p.IsInfinity() {
		return curve.Point{}, fault.New(fault.InvalidPoint, "public key is the point at infinity")
	}
	//
	return p, nil
}

// ValidatePublicKey checks that an encoded public key identifies a point on the
// curve, returning that point.
func ValidatePublicKey(publicKey string) (curve.Point, error) {
	return DecodePoint(publicKey)
}
