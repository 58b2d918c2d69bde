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
	"encoding/hex"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"
	"github.com/consensys/go-starkkey/pkg/curve"
	"github.com/consensys/go-starkkey/pkg/fault"
	"github.com/consensys/go-starkkey/pkg/util/field/stark"
)

// Digits is the number of hex digits in a canonical encoding.
const Digits = 2 * fr.Bytes

// DecodeScalar parses a private key given as (optionally 0x-prefixed) hex.  Both
// upper and lower case digits are accepted, and leading zeros may be omitted.
// The value must lie in [1, N-1].
func DecodeScalar(s string) (Scalar, error) {
	bytes, err := decodeHex(s)
	if err != nil {
		return Scalar{}, err
	}
	//
	elem, err := fr.BigEndian.Element(&bytes)
	//
	if err != nil {
		return Scalar{}, fault.New(fault.OutOfRange, "private key not below curve order")
	} else if elem.IsZero() {
		return Scalar{}, fault.New(fault.OutOfRange, "private key is zero")
	}
	//
	return Scalar{elem}, nil
}

// EncodeScalar produces the canonical encoding of a scalar: "0x" followed by 64
// lowercase hex digits.
func EncodeScalar(k Scalar) string {
	bytes := k.Element.Bytes()
	//
	return "0x" + hex.EncodeToString(bytes[:])
}

// EncodePoint produces the canonical encoding of a public key, which consists of
// its x-coordinate only: "0x" followed by 64 lowercase hex digits.  The point at
// infinity has no encoding.
func EncodePoint(p curve.Point) (string, error) {
	if p.IsInfinity() {
		return "", fault.New(fault.InvalidPoint, "point at infinity has no encoding")
	}
	//
	bytes := p.X().Bytes()
	//
	return "0x" + hex.EncodeToString(bytes[:]), nil
}

// DecodePoint parses an encoded public key, recovering the full point.  The
// x-coordinate must be below the field modulus and must correspond to a point on
// the curve.
func DecodePoint(s string) (curve.Point, error) {
	bytes, err := decodeHex(s)
	if err != nil {
		return curve.Point{}, err
	}
	//
	x, err := stark.FromBigEndian(bytes)
	if err != nil {
		return curve.Point{}, err
	}
	//
	p, err := curve.FromX(x)
	//
	if err != nil {
		return curve.Point{}, err
	} else if !p.IsOnCurve() {
		return curve.Point{}, fault.New(fault.InvalidPoint, "decoded point not on curve")
	}
	//
	return p, nil
}

// decodeHex strips an optional 0x prefix and decodes at most 64 hex digits into
// a left-padded big-endian byte array.
func decodeHex(s string) ([fr.Bytes]byte, error) {
	var (
		bytes  [fr.Bytes]byte
		digits = s
	)
	//
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	//
	switch {
	case len(digits) == 0:
		return bytes, fault.New(fault.InvalidEncoding, "no hex digits in \"%s\"", s)
	case len(digits) > Digits:
		return bytes, fault.New(fault.InvalidEncoding, "more than %d hex digits", Digits)
	}
	// Left pad to a whole number of bytes
	digits = strings.Repeat("0", Digits-len(digits)) + digits
	//
	if _, err := hex.Decode(bytes[:], []byte(digits)); err != nil {
		return bytes, fault.New(fault.InvalidEncoding, "%s", err.Error())
	}
	//
	return bytes, nil
}
