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

// CieLch is the cylindrical form of [CieLab].
// L is in [0, 100], C in [-200, 200] and H, in degrees, in [0, 360].
type CieLch struct {
	L, C, H float64
}

// NewCieLch returns a new CieLch value, with the components clamped to
// their valid ranges.
func NewCieLch(l, c, h float64) CieLch {
	return CieLch{L: clamp(l, 0, 100), C: clamp(c, -200, 200), H: clamp(h, 0, 360)}
}

// ToScaledVector4 implements the [ColorProfile] interface.
func (c CieLch) ToScaledVector4() Vector4 {
	return Vector4{c.L / 100, (c.C + 200) / 400, c.H / 360, 1}
}

// FromScaledVector4 implements the [ColorProfile] interface.
func (CieLch) FromScaledVector4(v Vector4) CieLch {
	return NewCieLch(v[0]*100, v[1]*400-200, v[2]*360)
}

// ToScaledVector4Slice implements the [ColorProfile] interface.
func (CieLch) ToScaledVector4Slice(src []CieLch, dst []Vector4) { toScaledVectors(src, dst) }

// FromScaledVector4Slice implements the [ColorProfile] interface.
func (CieLch) FromScaledVector4Slice(src []Vector4, dst []CieLch) { fromScaledVectors(src, dst) }

// WhitePointSource implements the [ColorProfile] interface.
func (CieLch) WhitePointSource() WhitePointSource { return WhitePoint }

// ToLab implements the [LabProfile] interface.
func (c CieLch) ToLab(*Options) CieLab {
	l, a, b := polarToCartesian(c.L, c.C, c.H)
	return CieLab{L: l, A: a, B: b}
}

// FromLab implements the [LabProfile] interface.
func (CieLch) FromLab(_ *Options, c CieLab) CieLch {
	l, ch, h := cartesianToPolar(c.L, c.A, c.B)
	return NewCieLch(l, ch, h)
}

// ToLabSlice implements the [LabProfile] interface.
func (CieLch) ToLabSlice(o *Options, src []CieLch, dst []CieLab) { toLabSlice(o, src, dst) }

// FromLabSlice implements the [LabProfile] interface.
func (CieLch) FromLabSlice(o *Options, src []CieLab, dst []CieLch) { fromLabSlice(o, src, dst) }

func polarToCartesian(l, c, h float64) (float64, float64, float64) {
	s, co := math.Sincos(h * degToRad)
	return l, c * co, c * s
}

// cartesianToPolar converts (l, x, y) to (l, chroma, hue).  The hue of an
// achromatic colour is 0.
func cartesianToPolar(l, x, y float64) (float64, float64, float64) {
	c := math.Hypot(x, y)
	if c == 0 {
		return l, 0, 0
	}
	return l, c, normaliseDegrees(math.Atan2(y, x) * radToDeg)
}
