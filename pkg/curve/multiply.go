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
package curve

// ScalarBits is the number of bits scanned by scalar multiplication.
const ScalarBits = 256

// ScalarMultiply computes the k-fold sum k·P, where k is an unsigned 256-bit
// integer given as little-endian 64-bit limbs.  The result is the identity
// whenever k ≡ 0 (mod N) and P lies in the group generated by G.
func ScalarMultiply(p Point, k [4]uint64) Point {
	return ScalarMultiplyProjective(p, k).ToAffine()
}

// ScalarBaseMultiply computes k·G for the curve's generator G.
func ScalarBaseMultiply(k [4]uint64) Point {
	return ScalarMultiply(generator, k)
}

// ScalarMultiplyProjective computes k·P, leaving the result in Jacobian
// coordinates.  This uses left-to-right double-and-add, scanning every bit of k
// from the most significant down.
func ScalarMultiplyProjective(p Point, k [4]uint64) Projective {
	acc := ProjectiveInfinity()
	//
	for i := ScalarBits - 1; i >= 0; i-- {
		acc = acc.Double()
		//
		if (k[i/64]>>(i%64))&1 == 1 {
			acc = acc.AddMixed(p)
		}
	}
	//
	return acc
}
