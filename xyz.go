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

// CieXyz is a colour in the CIE 1931 XYZ colour space.
// The white point has Y = 1.  Values are not clamped.
type CieXyz struct {
	X, Y, Z float64
}

// xyzEncodingScale maps XYZ to the ICC normalised encoding, where 1 + 32767/32768
// is the largest representable value.
const xyzEncodingScale = 32768.0 / 65535.0

func (c CieXyz) vector() Vector3 {
	return Vector3{c.X, c.Y, c.Z}
}

func xyzFromVector(v Vector3) CieXyz {
	return CieXyz{X: v[0], Y: v[1], Z: v[2]}
}

// ToScaledVector4 implements the [ColorProfile] interface.
func (c CieXyz) ToScaledVector4() Vector4 {
	return Vector4{c.X * xyzEncodingScale, c.Y * xyzEncodingScale, c.Z * xyzEncodingScale, 1}
}

// FromScaledVector4 implements the [ColorProfile] interface.
func (CieXyz) FromScaledVector4(v Vector4) CieXyz {
	return CieXyz{X: v[0] / xyzEncodingScale, Y: v[1] / xyzEncodingScale, Z: v[2] / xyzEncodingScale}
}

// ToScaledVector4Slice implements the [ColorProfile] interface.
func (CieXyz) ToScaledVector4Slice(src []CieXyz, dst []Vector4) { toScaledVectors(src, dst) }

// FromScaledVector4Slice implements the [ColorProfile] interface.
func (CieXyz) FromScaledVector4Slice(src []Vector4, dst []CieXyz) { fromScaledVectors(src, dst) }

// WhitePointSource implements the [ColorProfile] interface.
func (CieXyz) WhitePointSource() WhitePointSource { return WhitePoint }

// ToXyz implements the [XyzProfile] interface.
func (c CieXyz) ToXyz(*Options) CieXyz { return c }

// FromXyz implements the [XyzProfile] interface.
func (CieXyz) FromXyz(_ *Options, c CieXyz) CieXyz { return c }

// ToXyzSlice implements the [XyzProfile] interface.
func (CieXyz) ToXyzSlice(_ *Options, src []CieXyz, dst []CieXyz) { copy(dst[:len(src)], src) }

// FromXyzSlice implements the [XyzProfile] interface.
func (CieXyz) FromXyzSlice(_ *Options, src []CieXyz, dst []CieXyz) { copy(dst[:len(src)], src) }
