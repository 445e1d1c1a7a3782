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

// Y is a luminance-only colour, in [0, 1].  The weights used to derive
// the luminance from RGB are given by the conversion options.
type Y struct {
	L float64
}

// NewY returns a new Y value, clamped to [0, 1].
func NewY(l float64) Y {
	return Y{L: clamp01(l)}
}

// ToScaledVector4 implements the [ColorProfile] interface.
func (c Y) ToScaledVector4() Vector4 {
	return Vector4{c.L, c.L, c.L, 1}
}

// FromScaledVector4 implements the [ColorProfile] interface.
func (Y) FromScaledVector4(v Vector4) Y {
	return NewY(v[0])
}

// ToScaledVector4Slice implements the [ColorProfile] interface.
func (Y) ToScaledVector4Slice(src []Y, dst []Vector4) { toScaledVectors(src, dst) }

// FromScaledVector4Slice implements the [ColorProfile] interface.
func (Y) FromScaledVector4Slice(src []Vector4, dst []Y) { fromScaledVectors(src, dst) }

// WhitePointSource implements the [ColorProfile] interface.
func (Y) WhitePointSource() WhitePointSource { return RgbWorkingSpaceWhitePoint }

// ToRgb implements the [RgbProfile] interface.
func (c Y) ToRgb(*Options) Rgb {
	return Rgb{R: c.L, G: c.L, B: c.L}
}

// FromRgb implements the [RgbProfile] interface.
func (Y) FromRgb(o *Options, c Rgb) Y {
	w := o.luma
	return NewY(w[0]*c.R + w[1]*c.G + w[2]*c.B)
}

// ToRgbSlice implements the [RgbProfile] interface.
func (Y) ToRgbSlice(o *Options, src []Y, dst []Rgb) { toRgbSlice(o, src, dst) }

// FromRgbSlice implements the [RgbProfile] interface.
func (Y) FromRgbSlice(o *Options, src []Rgb, dst []Y) { fromRgbSlice(o, src, dst) }
