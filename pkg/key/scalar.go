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
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"
)

// Scalar is a private key, i.e. an integer k with 1 <= k < N where N is the
// order of the curve's generator.  Scalars are only constructed by
// DecodeScalar, which enforces this range.
type Scalar struct {
	fr.Element
}

// Limbs returns the (regular, non-Montgomery) value of this scalar as
// little-endian 64-bit limbs, suitable for scalar multiplication.
func (k Scalar) Limbs() [4]uint64 {
	return k.Element.Bits()
}

// Equals checks whether two scalars hold the same value.
func (k Scalar) Equals(o Scalar) bool {
	return k.Element.Equal(&o.Element)
}
