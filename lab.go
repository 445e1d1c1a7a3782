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

// CIE constants, in the exact rational form recommended by the CIE.
const (
	cieEpsilon = 216.0 / 24389.0
	cieKappa   = 24389.0 / 27.0
)

// epsilon is the threshold below which denominators are treated as zero.
const epsilon = 1e-6

// CieLab is a colour in the CIE L*a*b* colour space.
// L is in [0, 100], a and b are nominally in [-128, 127].  Values are not
// clamped.
type CieLab struct {
	L, A, B float64
}

// ToScaledVector4 implements the [ColorProfile] interface.
func (c CieLab) ToScaledVector4() Vector4 {
	return Vector4{c.L / 100, (c.A + 128) / 255, (c.B + 128) / 255, 1}
}

// FromScaledVector4 implements the [ColorProfile] interface.
func (CieLab) FromScaledVector4(v Vector4) CieLab {
	return CieLab{L: v[0] * 100, A: v[1]*255 - 128, B: v[2]*255 - 128}
}

// ToScaledVector4Slice implements the [ColorProfile] interface.
func (CieLab) ToScaledVector4Slice(src []CieLab, dst []Vector4) { toScaledVectors(src, dst) }

// FromScaledVector4Slice implements the [ColorProfile] interface.
func (CieLab) FromScaledVector4Slice(src []Vector4, dst []CieLab) { fromScaledVectors(src, dst) }

// WhitePointSource implements the [ColorProfile] interface.
func (CieLab) WhitePointSource() WhitePointSource { return WhitePoint }

// ToLab implements the [LabProfile] interface.
func (c CieLab) ToLab(*Options) CieLab { return c }

// FromLab implements the [LabProfile] interface.
func (CieLab) FromLab(_ *Options, c CieLab) CieLab { return c }

// ToLabSlice implements the [LabProfile] interface.
func (CieLab) ToLabSlice(_ *Options, src []CieLab, dst []CieLab) { copy(dst[:len(src)], src) }

// FromLabSlice implements the [LabProfile] interface.
func (CieLab) FromLabSlice(_ *Options, src []CieLab, dst []CieLab) { copy(dst[:len(src)], src) }

// LabToXyz converts a Lab colour relative to the given white point to XYZ.
func LabToXyz(c CieLab, white CieXyz) CieXyz {
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200

	fx3 := fx * fx * fx
	fz3 := fz * fz * fz

	var xr, yr, zr float64
	if fx3 > cieEpsilon {
		xr = fx3
	} else {
		xr = (116*fx - 16) / cieKappa
	}
	if c.L > cieKappa*cieEpsilon {
		yr = fy * fy * fy
	} else {
		yr = c.L / cieKappa
	}
	if fz3 > cieEpsilon {
		zr = fz3
	} else {
		zr = (116*fz - 16) / cieKappa
	}

	return CieXyz{X: xr * white.X, Y: yr * white.Y, Z: zr * white.Z}
}

// XyzToLab converts an XYZ colour to Lab, relative to the given white point.
func XyzToLab(c CieXyz, white CieXyz) CieLab {
	fx := labF(c.X / white.X)
	fy := labF(c.Y / white.Y)
	fz := labF(c.Z / white.Z)

	return CieLab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labF(t float64) float64 {
	if t > cieEpsilon {
		return math.Cbrt(t)
	}
	return (cieKappa*t + 16) / 116
}
