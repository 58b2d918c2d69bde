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
	"github.com/consensys/go-starkkey/pkg/util/field"
	"github.com/consensys/go-starkkey/pkg/util/field/stark"
)

// Projective is a point in Jacobian coordinates (X, Y, Z), representing the
// affine point (X/Z², Y/Z³).  The point at infinity has Z = 0.  Jacobian
// coordinates avoid a field inversion on every group operation, deferring a
// single inversion to the conversion back to affine form.
type Projective struct {
	x, y, z stark.Element
}

// ProjectiveInfinity returns the identity in Jacobian coordinates.
func ProjectiveInfinity() Projective {
	var one stark.Element
	//
	one = one.SetUint64(1)
	//
	return Projective{one, one, stark.Element{}}
}

// FromAffine lifts an affine point into Jacobian coordinates.
func FromAffine(p Point) Projective {
	if p.infinity {
		return ProjectiveInfinity()
	}
	//
	return Projective{p.x, p.y, stark.Element{}.SetUint64(1)}
}

// IsInfinity checks whether this is the identity element.
func (p Projective) IsInfinity() bool {
	return p.z.IsZero()
}

// Double returns 2P.
func (p Projective) Double() Projective {
	if p.z.IsZero() || p.y.IsZero() {
		return ProjectiveInfinity()
	}
	//
	var (
		xx   = p.x.Square()
		yy   = p.y.Square()
		yyyy = yy.Square()
		zz   = p.z.Square()
		// S = 4·X·Y²
		s = p.x.Mul(yy).Double().Double()
		// M = 3·X² + α·Z⁴
		m = xx.Double().Add(xx).Add(alpha.Mul(zz.Square()))
	)
	// X₃ = M² - 2S
	x3 := m.Square().Sub(s.Double())
	// Y₃ = M·(S - X₃) - 8·Y⁴
	y3 := m.Mul(s.Sub(x3)).Sub(yyyy.Double().Double().Double())
	// Z₃ = 2·Y·Z
	z3 := p.y.Mul(p.z).Double()
	//
	return Projective{x3, y3, z3}
}

// AddMixed returns P + Q where Q is given in affine form.
func (p Projective) AddMixed(q Point) Projective {
	switch {
	case q.infinity:
		return p
	case p.z.IsZero():
		return FromAffine(q)
	}
	//
	var (
		z1z1 = p.z.Square()
		// U₂ = x₂·Z₁²
		u2 = q.x.Mul(z1z1)
		// S₂ = y₂·Z₁³
		s2 = q.y.Mul(p.z).Mul(z1z1)
		h  = u2.Sub(p.x)
		r  = s2.Sub(p.y)
	)
	//
	if h.IsZero() {
		if r.IsZero() {
			// Q = P
			return p.Double()
		}
		// Q = -P
		return ProjectiveInfinity()
	}
	//
	var (
		hh  = h.Square()
		hhh = h.Mul(hh)
		v   = p.x.Mul(hh)
	)
	// X₃ = R² - H³ - 2V
	x3 := r.Square().Sub(hhh).Sub(v.Double())
	// Y₃ = R·(V - X₃) - Y₁·H³
	y3 := r.Mul(v.Sub(x3)).Sub(p.y.Mul(hhh))
	// Z₃ = Z₁·H
	z3 := p.z.Mul(h)
	//
	return Projective{x3, y3, z3}
}

// ToAffine converts this point back into affine coordinates.
func (p Projective) ToAffine() Point {
	if p.z.IsZero() {
		return Infinity()
	}
	//
	return p.scale(p.z.Inverse())
}

// scale computes the affine point given Z⁻¹.
func (p Projective) scale(zInv stark.Element) Point {
	zInv2 := zInv.Square()
	//
	return Point{p.x.Mul(zInv2), p.y.Mul(zInv2).Mul(zInv), false}
}

// BatchToAffine converts a slice of points into affine coordinates using a
// single field inversion for the whole batch.
func BatchToAffine(points []Projective) []Point {
	var (
		zs  = make([]stark.Element, len(points))
		res = make([]Point, len(points))
	)
	//
	for i, p := range points {
		zs[i] = p.z
	}
	// Zero entries (i.e. infinity) remain zero
	field.BatchInvert(zs)
	//
	for i, p := range points {
		if p.z.IsZero() {
			res[i] = Infinity()
		} else {
			res[i] = p.scale(zs[i])
		}
	}
	//
	return res
}
