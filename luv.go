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

// CieLuv is a colour in the CIE 1976 L*u*v* colour space.
// L is in [0, 100], u and v are nominally in [-100, 100].
// Values are not clamped.
type CieLuv struct {
	L, U, V float64
}

// ToScaledVector4 implements the [ColorProfile] interface.
func (c CieLuv) ToScaledVector4() Vector4 {
	return Vector4{c.L / 100, (c.U + 100) / 200, (c.V + 100) / 200, 1}
}

// FromScaledVector4 implements the [ColorProfile] interface.
func (CieLuv) FromScaledVector4(v Vector4) CieLuv {
	return CieLuv{L: v[0] * 100, U: v[1]*200 - 100, V: v[2]*200 - 100}
}

// ToScaledVector4Slice implements the [ColorProfile] interface.
func (CieLuv) ToScaledVector4Slice(src []CieLuv, dst []Vector4) { toScaledVectors(src, dst) }

// FromScaledVector4Slice implements the [ColorProfile] interface.
func (CieLuv) FromScaledVector4Slice(src []Vector4, dst []CieLuv) { fromScaledVectors(src, dst) }

// WhitePointSource implements the [ColorProfile] interface.
func (CieLuv) WhitePointSource() WhitePointSource { return WhitePoint }

// ToXyz implements the [XyzProfile] interface.
// The source white point of o is used.
func (c CieLuv) ToXyz(o *Options) CieXyz {
	return luvToXyz(c, o.sourceWhitePoint)
}

// FromXyz implements the [XyzProfile] interface.
// The target white point of o is used.
func (CieLuv) FromXyz(o *Options, c CieXyz) CieLuv {
	return xyzToLuv(c, o.targetWhitePoint)
}

// ToXyzSlice implements the [XyzProfile] interface.
func (CieLuv) ToXyzSlice(o *Options, src []CieLuv, dst []CieXyz) { toXyzSlice(o, src, dst) }

// FromXyzSlice implements the [XyzProfile] interface.
func (CieLuv) FromXyzSlice(o *Options, src []CieXyz, dst []CieLuv) { fromXyzSlice(o, src, dst) }

// uvPrime returns the CIE 1976 u' and v' chromaticity coordinates.
func uvPrime(c CieXyz) (float64, float64) {
	den := c.X + 15*c.Y + 3*c.Z
	if den == 0 {
		return 0, 0
	}
	return 4 * c.X / den, 9 * c.Y / den
}

func xyzToLuv(c CieXyz, white CieXyz) CieLuv {
	yr := c.Y / white.Y
	up, vp := uvPrime(c)
	upr, vpr := uvPrime(white)

	var l float64
	if yr > cieEpsilon {
		l = 116*math.Cbrt(yr) - 16
	} else {
		l = cieKappa * yr
	}
	if l == 0 || math.IsNaN(l) {
		return CieLuv{}
	}

	u := 13 * l * (up - upr)
	v := 13 * l * (vp - vpr)
	if math.IsNaN(u) {
		u = 0
	}
	if math.IsNaN(v) {
		v = 0
	}
	return CieLuv{L: l, U: u, V: v}
}

func luvToXyz(c CieLuv, white CieXyz) CieXyz {
	if c.L == 0 {
		return CieXyz{}
	}

	u0, v0 := uvPrime(white)

	var yr float64
	if c.L > cieKappa*cieEpsilon {
		t := (c.L + 16) / 116
		yr = t * t * t
	} else {
		yr = c.L / cieKappa
	}
	y := yr * white.Y

	a := (52*c.L/(c.U+13*c.L*u0) - 1) / 3
	b := -5 * y
	d := y * (39*c.L/(c.V+13*c.L*v0) - 5)

	x := (d - b) / (a + 1.0/3)
	z := x*a + b

	if math.IsNaN(x) || math.IsInf(x, 0) {
		x = 0
	}
	if math.IsNaN(z) || math.IsInf(z, 0) {
		z = 0
	}
	return CieXyz{X: x, Y: y, Z: z}
}
