// seehuhn.de/go/colorconv - colour conversion between profile spaces
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package colorconv

import "math"

// Vector3 is a triple of colour components.
type Vector3 [3]float64

// Vector4 is the four-lane interchange value used by the scaled-vector
// representation of every colour profile.  Three-component profiles store
// 1 in the last lane.
type Vector4 [4]float64

// Matrix3 is a 3x3 matrix, stored row by row.  A matrix is applied to a
// column vector, i.e. Apply computes M·v.
type Matrix3 [3][3]float64

// Identity3 is the 3x3 identity matrix.  It must not be modified.
var Identity3 = Matrix3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Apply returns m·v.
func (m *Matrix3) Apply(v Vector3) Vector3 {
	return Vector3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul returns the matrix product m·n.
func (m *Matrix3) Mul(n *Matrix3) Matrix3 {
	var res Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return res
}

// Inverse returns the inverse of m.
// The second return value is false if m is singular.
func (m *Matrix3) Inverse() (Matrix3, bool) {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if math.Abs(det) < 1e-12 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix3{}, false
	}
	invDet := 1.0 / det

	return Matrix3{
		{(e*i - f*h) * invDet, (c*h - b*i) * invDet, (b*f - c*e) * invDet},
		{(f*g - d*i) * invDet, (a*i - c*g) * invDet, (c*d - a*f) * invDet},
		{(d*h - e*g) * invDet, (b*g - a*h) * invDet, (a*e - b*d) * invDet},
	}, true
}

// Vector3 returns the first three lanes of v.
func (v Vector4) Vector3() Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

// clamp01 restricts x to the range [0, 1].
func clamp01(x float64) float64 {
	return clamp(x, 0, 1)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// normaliseDegrees maps an angle in degrees to [0, 360).
func normaliseDegrees(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)
