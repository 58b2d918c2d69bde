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

import (
	"fmt"

	"github.com/consensys/go-starkkey/pkg/fault"
	"github.com/consensys/go-starkkey/pkg/util/field"
	"github.com/consensys/go-starkkey/pkg/util/field/stark"
)

// Point is an immutable affine point on the STARK curve y² = x³ + α·x + β, or
// the point at infinity (the group identity).  Every Point produced by this
// package either is the identity or satisfies the curve equation.
type Point struct {
	x stark.Element
	y stark.Element
	// Indicates the point at infinity, in which case x and y are zero.
	infinity bool
}

// Infinity returns the identity element of the group.
func Infinity() Point {
	return Point{infinity: true}
}

// Generator returns the fixed base point G of the curve.
func Generator() Point {
	return generator
}

// Order returns the order N of the group generated by G, as little-endian
// 64-bit limbs.
func Order() [4]uint64 {
	return order
}

// Coefficients returns the coefficients α and β of the curve equation.
func Coefficients() (stark.Element, stark.Element) {
	return alpha, beta
}

// NewPoint constructs a point from its affine coordinates, failing if they do
// not satisfy the curve equation.
func NewPoint(x, y stark.Element) (Point, error) {
	p := Point{x, y, false}
	//
	if !p.IsOnCurve() {
		return Point{}, fault.New(fault.InvalidPoint, "(0x%s, 0x%s) is not on the curve", x.Text(16), y.Text(16))
	}
	//
	return p, nil
}

// FromX recovers a point from its x-coordinate.  Since both (x, y) and (x, -y)
// lie on the curve, the y-coordinate returned is the root which is not
// lexicographically largest.  An error is returned if no point with the given
// x-coordinate exists.
func FromX(x stark.Element) (Point, error) {
	y, ok := rhs(x).Sqrt()
	//
	if !ok {
		return Point{}, fault.New(fault.InvalidPoint, "no point with x-coordinate 0x%s", x.Text(16))
	}
	//
	return Point{x, y, false}, nil
}

// rhs evaluates x³ + α·x + β.
func rhs(x stark.Element) stark.Element {
	return field.Polynomial(x, beta, alpha, stark.Element{}, stark.Element{}.SetUint64(1))
}

// X returns the x-coordinate of this point, which is zero for the identity.
func (p Point) X() stark.Element {
	return p.x
}

// Y returns the y-coordinate of this point, which is zero for the identity.
func (p Point) Y() stark.Element {
	return p.y
}

// IsInfinity checks whether this is the identity element.
func (p Point) IsInfinity() bool {
	return p.infinity
}

// IsOnCurve checks whether this point satisfies the curve equation.  The
// identity is considered on the curve.
func (p Point) IsOnCurve() bool {
	if p.infinity {
		return true
	}
	//
	return p.y.Square().Equals(rhs(p.x))
}

// Equals checks whether two points are the same group element.
func (p Point) Equals(q Point) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	//
	return p.x.Equals(q.x) && p.y.Equals(q.y)
}

// Neg returns the additive inverse -P = (x, -y).
func (p Point) Neg() Point {
	if p.infinity {
		return p
	}
	//
	return Point{p.x, p.y.Neg(), false}
}

// Add returns P + Q under the group law.
func (p Point) Add(q Point) Point {
	switch {
	case p.infinity:
		return q
	case q.infinity:
		return p
	case p.x.Equals(q.x):
		// Either Q = P or Q = -P
		if p.y.Equals(q.y) {
			return p.Double()
		}
		//
		return Infinity()
	}
	// λ = (y₂ - y₁) / (x₂ - x₁)
	lambda := q.y.Sub(p.y).Mul(q.x.Sub(p.x).Inverse())
	//
	return p.chord(lambda, q.x)
}

// Double returns 2P under the group law.
func (p Point) Double() Point {
	// A point with y = 0 has order two
	if p.infinity || p.y.IsZero() {
		return Infinity()
	}
	// λ = (3x² + α) / 2y
	xx := p.x.Square()
	lambda := xx.Double().Add(xx).Add(alpha).Mul(p.y.Double().Inverse())
	//
	return p.chord(lambda, p.x)
}

// chord completes addition given the slope λ through P and a second point with
// x-coordinate x₂.
func (p Point) chord(lambda stark.Element, x2 stark.Element) Point {
	// x₃ = λ² - x₁ - x₂
	x3 := lambda.Square().Sub(p.x).Sub(x2)
	// y₃ = λ(x₁ - x₃) - y₁
	y3 := lambda.Mul(p.x.Sub(x3)).Sub(p.y)
	//
	return Point{x3, y3, false}
}

func (p Point) String() string {
	if p.infinity {
		return "∞"
	}
	//
	return fmt.Sprintf("(0x%s, 0x%s)", p.x.Text(16), p.y.Text(16))
}
