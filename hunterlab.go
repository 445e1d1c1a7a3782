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

// HunterLab is a colour in the Hunter 1948 L, a, b colour space.
// L is in [0, 100].  Values are not clamped.
type HunterLab struct {
	L, A, B float64
}

// ToScaledVector4 implements the [ColorProfile] interface.
func (c HunterLab) ToScaledVector4() Vector4 {
	return Vector4{c.L / 100, (c.A + 128) / 255, (c.B + 128) / 255, 1}
}

// FromScaledVector4 implements the [ColorProfile] interface.
func (HunterLab) FromScaledVector4(v Vector4) HunterLab {
	return HunterLab{L: v[0] * 100, A: v[1]*255 - 128, B: v[2]*255 - 128}
}

// ToScaledVector4Slice implements the [ColorProfile] interface.
func (HunterLab) ToScaledVector4Slice(src []HunterLab, dst []Vector4) { toScaledVectors(src, dst) }

// FromScaledVector4Slice implements the [ColorProfile] interface.
func (HunterLab) FromScaledVector4Slice(src []Vector4, dst []HunterLab) {
	fromScaledVectors(src, dst)
}

// WhitePointSource implements the [ColorProfile] interface.
func (HunterLab) WhitePointSource() WhitePointSource { return WhitePoint }

// hunterKa and hunterKb return the chromaticity coefficients for the
// given reference white.
func hunterKa(white CieXyz) float64 {
	if white == IlluminantC {
		return 175
	}
	return 100 * (175 / 198.04) * (white.X + white.Y)
}

func hunterKb(white CieXyz) float64 {
	if white == IlluminantC {
		return 70
	}
	return 100 * (70 / 218.11) * (white.Y + white.Z)
}

// ToXyz implements the [XyzProfile] interface.
// The source white point of o is used.
func (c HunterLab) ToXyz(o *Options) CieXyz {
	white := o.sourceWhitePoint
	ka := hunterKa(white)
	kb := hunterKb(white)

	yr := (c.L / 100) * (c.L / 100)
	sq := c.L / 100
	x := (c.A/ka*sq + yr) * white.X
	z := (yr - c.B/kb*sq) * white.Z

	return CieXyz{X: zeroIfNaN(x), Y: yr * white.Y, Z: zeroIfNaN(z)}
}

// FromXyz implements the [XyzProfile] interface.
// The target white point of o is used.
func (HunterLab) FromXyz(o *Options, c CieXyz) HunterLab {
	white := o.targetWhitePoint
	ka := hunterKa(white)
	kb := hunterKb(white)

	yr := c.Y / white.Y
	sq := math.Sqrt(yr)
	l := 100 * sq
	a := ka * (c.X/white.X - yr) / sq
	b := kb * (yr - c.Z/white.Z) / sq

	return HunterLab{L: zeroIfNaN(l), A: zeroIfNaN(a), B: zeroIfNaN(b)}
}

// ToXyzSlice implements the [XyzProfile] interface.
func (HunterLab) ToXyzSlice(o *Options, src []HunterLab, dst []CieXyz) { toXyzSlice(o, src, dst) }

// FromXyzSlice implements the [XyzProfile] interface.
func (HunterLab) FromXyzSlice(o *Options, src []CieXyz, dst []HunterLab) {
	fromXyzSlice(o, src, dst)
}

func zeroIfNaN(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
