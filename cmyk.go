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

// Cmyk is a colour given by cyan, magenta, yellow and key (black) ink
// coverage, all in [0, 1].  The conversion to and from RGB is the naive
// subtractive model, not a printing process model.
type Cmyk struct {
	C, M, Y, K float64
}

// NewCmyk returns a new Cmyk value, with the components clamped to [0, 1].
func NewCmyk(c, m, y, k float64) Cmyk {
	return Cmyk{C: clamp01(c), M: clamp01(m), Y: clamp01(y), K: clamp01(k)}
}

// ToScaledVector4 implements the [ColorProfile] interface.
func (c Cmyk) ToScaledVector4() Vector4 {
	return Vector4{c.C, c.M, c.Y, c.K}
}

// FromScaledVector4 implements the [ColorProfile] interface.
func (Cmyk) FromScaledVector4(v Vector4) Cmyk {
	return NewCmyk(v[0], v[1], v[2], v[3])
}

// ToScaledVector4Slice implements the [ColorProfile] interface.
func (Cmyk) ToScaledVector4Slice(src []Cmyk, dst []Vector4) { toScaledVectors(src, dst) }

// FromScaledVector4Slice implements the [ColorProfile] interface.
func (Cmyk) FromScaledVector4Slice(src []Vector4, dst []Cmyk) { fromScaledVectors(src, dst) }

// WhitePointSource implements the [ColorProfile] interface.
func (Cmyk) WhitePointSource() WhitePointSource { return RgbWorkingSpaceWhitePoint }

// ToRgb implements the [RgbProfile] interface.
func (c Cmyk) ToRgb(*Options) Rgb {
	w := 1 - c.K
	return Rgb{R: (1 - c.C) * w, G: (1 - c.M) * w, B: (1 - c.Y) * w}
}

// FromRgb implements the [RgbProfile] interface.
// Black is represented as (0, 0, 0, 1).
func (Cmyk) FromRgb(_ *Options, c Rgb) Cmyk {
	k := 1 - max(c.R, c.G, c.B)
	if k >= 1-epsilon {
		return Cmyk{K: 1}
	}
	w := 1 - k
	return NewCmyk((1-c.R-k)/w, (1-c.G-k)/w, (1-c.B-k)/w, k)
}

// ToRgbSlice implements the [RgbProfile] interface.
func (Cmyk) ToRgbSlice(o *Options, src []Cmyk, dst []Rgb) { toRgbSlice(o, src, dst) }

// FromRgbSlice implements the [RgbProfile] interface.
func (Cmyk) FromRgbSlice(o *Options, src []Rgb, dst []Cmyk) { fromRgbSlice(o, src, dst) }
