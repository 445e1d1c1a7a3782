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

// CieLchuv is the cylindrical form of [CieLuv].
// L is in [0, 100], C in [-200, 200] and H, in degrees, in [0, 360].
type CieLchuv struct {
	L, C, H float64
}

// NewCieLchuv returns a new CieLchuv value, with the components clamped to
// their valid ranges.
func NewCieLchuv(l, c, h float64) CieLchuv {
	return CieLchuv{L: clamp(l, 0, 100), C: clamp(c, -200, 200), H: clamp(h, 0, 360)}
}

// ToScaledVector4 implements the [ColorProfile] interface.
func (c CieLchuv) ToScaledVector4() Vector4 {
	return Vector4{c.L / 100, (c.C + 200) / 400, c.H / 360, 1}
}

// FromScaledVector4 implements the [ColorProfile] interface.
func (CieLchuv) FromScaledVector4(v Vector4) CieLchuv {
	return NewCieLchuv(v[0]*100, v[1]*400-200, v[2]*360)
}

// ToScaledVector4Slice implements the [ColorProfile] interface.
func (CieLchuv) ToScaledVector4Slice(src []CieLchuv, dst []Vector4) { toScaledVectors(src, dst) }

// FromScaledVector4Slice implements the [ColorProfile] interface.
func (CieLchuv) FromScaledVector4Slice(src []Vector4, dst []CieLchuv) { fromScaledVectors(src, dst) }

// WhitePointSource implements the [ColorProfile] interface.
func (CieLchuv) WhitePointSource() WhitePointSource { return WhitePoint }

// ToLuv returns the colour in Cartesian form.
func (c CieLchuv) ToLuv() CieLuv {
	l, u, v := polarToCartesian(c.L, c.C, c.H)
	return CieLuv{L: l, U: u, V: v}
}

// CieLchuvFromLuv converts a CieLuv colour to cylindrical form.
func CieLchuvFromLuv(c CieLuv) CieLchuv {
	l, ch, h := cartesianToPolar(c.L, c.U, c.V)
	return NewCieLchuv(l, ch, h)
}

// ToXyz implements the [XyzProfile] interface.
func (c CieLchuv) ToXyz(o *Options) CieXyz {
	return c.ToLuv().ToXyz(o)
}

// FromXyz implements the [XyzProfile] interface.
func (CieLchuv) FromXyz(o *Options, c CieXyz) CieLchuv {
	return CieLchuvFromLuv(CieLuv{}.FromXyz(o, c))
}

// ToXyzSlice implements the [XyzProfile] interface.
func (CieLchuv) ToXyzSlice(o *Options, src []CieLchuv, dst []CieXyz) { toXyzSlice(o, src, dst) }

// FromXyzSlice implements the [XyzProfile] interface.
func (CieLchuv) FromXyzSlice(o *Options, src []CieXyz, dst []CieLchuv) { fromXyzSlice(o, src, dst) }
