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
package stark

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/consensys/go-starkkey/pkg/fault"
)

// Bytes is the number of bytes in the big-endian encoding of an Element.
const Bytes = fp.Bytes

// Element wraps fp.Element to conform to the field.Element interface.  The
// underlying value is held as four 64-bit limbs in Montgomery form and is
// always reduced modulo P = 2²⁵¹ + 17·2¹⁹² + 1.
type Element struct {
	fp.Element
}

// FromBigEndian constructs an element from exactly Bytes big-endian bytes.  An
// error is returned if the encoded integer is not below the field modulus.
func FromBigEndian(bytes [Bytes]byte) (Element, error) {
	elem, err := fp.BigEndian.Element(&bytes)
	if err != nil {
		return Element{}, fault.New(fault.OutOfRange, "value not below field modulus")
	}
	//
	return Element{elem}, nil
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fp.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var elem fp.Element
	//
	elem.Sub(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var elem fp.Element
	//
	elem.Mul(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Neg -x
func (x Element) Neg() Element {
	var elem fp.Element
	//
	elem.Neg(&x.Element)
	//
	return Element{elem}
}

// Double 2x
func (x Element) Double() Element {
	elem := new(fp.Element).Double(&x.Element)
	return Element{*elem}
}

// Square x²
func (x Element) Square() Element {
	var elem fp.Element
	//
	elem.Square(&x.Element)
	//
	return Element{elem}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var elem fp.Element
	//
	elem.Inverse(&x.Element)
	//
	return Element{elem}
}

// Invert x⁻¹, failing when x = 0 since zero has no inverse.
func (x Element) Invert() (Element, error) {
	if x.IsZero() {
		return Element{}, fault.ErrDivisionByZero
	}
	//
	return x.Inverse(), nil
}

// Sqrt returns a square root of x, and whether one exists.  Of the two roots,
// the one which is not lexicographically largest is always returned.
func (x Element) Sqrt() (Element, bool) {
	var elem fp.Element
	//
	if elem.Sqrt(&x.Element) == nil {
		return Element{}, false
	} else if elem.LexicographicallyLargest() {
		elem.Neg(&elem)
	}
	//
	return Element{elem}, true
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

// Equals returns true if x and y hold the same value.
func (x Element) Equals(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// Modulus implementation for the Element interface
func (x Element) Modulus() *big.Int {
	return fp.Modulus()
}

// SetUint64 implementation for Element.
func (x Element) SetUint64(val uint64) Element {
	x.Element.SetUint64(val)
	//
	return x
}

// SetBytes implementation for Element.  Values larger than the modulus are
// reduced.
func (x Element) SetBytes(bytes []byte) Element {
	x.Element.SetBytes(bytes)
	//
	return x
}

// Bytes returns the big-endian encoded value of the Element, with leading zeros.
func (x Element) Bytes() [Bytes]byte {
	return x.Element.Bytes()
}

func (x Element) String() string {
	return x.Element.String()
}

// Text implementation for the Element interface
func (x Element) Text(base int) string {
	return x.Element.Text(base)
}
