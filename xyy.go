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

// CieXyy is a colour given by its CIE xy chromaticity and its luminance Yl.
type CieXyy struct {
	X, Y, Yl float64
}

// ToScaledVector4 implements the [ColorProfile] interface.
func (c CieXyy) ToScaledVector4() Vector4 {
	return Vector4{c.X, c.Y, c.Yl, 1}
}

// FromScaledVector4 implements the [ColorProfile] interface.
func (CieXyy) FromScaledVector4(v Vector4) CieXyy {
	return CieXyy{X: v[0], Y: v[1], Yl: v[2]}
}

// ToScaledVector4Slice implements the [ColorProfile] interface.
func (CieXyy) ToScaledVector4Slice(src []CieXyy, dst []Vector4) { toScaledVectors(src, dst) }

// FromScaledVector4Slice implements the [ColorProfile] interface.
func (CieXyy) FromScaledVector4Slice(src []Vector4, dst []CieXyy) { fromScaledVectors(src, dst) }

// WhitePointSource implements the [ColorProfile] interface.
func (CieXyy) WhitePointSource() WhitePointSource { return WhitePoint }

// ToXyz implements the [XyzProfile] interface.
// If the y chromaticity is zero, the result is (0, 0, Yl).
func (c CieXyy) ToXyz(*Options) CieXyz {
	if math.Abs(c.Y) < epsilon {
		return CieXyz{X: 0, Y: 0, Z: c.Yl}
	}
	return CieXyz{
		X: c.X * c.Yl / c.Y,
		Y: c.Yl,
		Z: (1 - c.X - c.Y) * c.Yl / c.Y,
	}
}

// FromXyz implements the [XyzProfile] interface.
// If X+Y+Z is zero, the chromaticity is reported as (0, 0).
func (CieXyy) FromXyz(_ *Options, c CieXyz) CieXyy {
	sum := c.X + c.Y + c.Z
	x, y := c.X/sum, c.Y/sum
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return CieXyy{X: 0, Y: 0, Yl: c.Y}
	}
	return CieXyy{X: x, Y: y, Yl: c.Y}
}

// ToXyzSlice implements the [XyzProfile] interface.
func (CieXyy) ToXyzSlice(o *Options, src []CieXyy, dst []CieXyz) { toXyzSlice(o, src, dst) }

// FromXyzSlice implements the [XyzProfile] interface.
func (CieXyy) FromXyzSlice(o *Options, src []CieXyz, dst []CieXyy) { fromXyzSlice(o, src, dst) }
