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

// Rgb is a companded colour in an RGB working space.  Nominal component
// values are in [0, 1], but values are not clamped.  Which working space
// the value belongs to is determined by the conversion options.
type Rgb struct {
	R, G, B float64
}

// ToScaledVector4 implements the [ColorProfile] interface.
func (c Rgb) ToScaledVector4() Vector4 {
	return Vector4{c.R, c.G, c.B, 1}
}

// FromScaledVector4 implements the [ColorProfile] interface.
func (Rgb) FromScaledVector4(v Vector4) Rgb {
	return Rgb{R: v[0], G: v[1], B: v[2]}
}

// ToScaledVector4Slice implements the [ColorProfile] interface.
// The fourth lane of every output element is set to 1.
func (Rgb) ToScaledVector4Slice(src []Rgb, dst []Vector4) {
	rgbToVector4s(src, dst[:len(src)])
}

// FromScaledVector4Slice implements the [ColorProfile] interface.
func (Rgb) FromScaledVector4Slice(src []Vector4, dst []Rgb) {
	vector4sToRgb(src, dst[:len(src)])
}

// WhitePointSource implements the [ColorProfile] interface.
func (Rgb) WhitePointSource() WhitePointSource { return RgbWorkingSpaceWhitePoint }

// ToRgb implements the [RgbProfile] interface.
func (c Rgb) ToRgb(*Options) Rgb { return c }

// FromRgb implements the [RgbProfile] interface.
func (Rgb) FromRgb(_ *Options, c Rgb) Rgb { return c }

// ToRgbSlice implements the [RgbProfile] interface.
func (Rgb) ToRgbSlice(_ *Options, src []Rgb, dst []Rgb) { copy(dst[:len(src)], src) }

// FromRgbSlice implements the [RgbProfile] interface.
func (Rgb) FromRgbSlice(_ *Options, src []Rgb, dst []Rgb) { copy(dst[:len(src)], src) }
