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

// Hsv is a colour given by hue, saturation and value.
// H is in degrees, in [0, 360], S and V are in [0, 1].
type Hsv struct {
	H, S, V float64
}

// NewHsv returns a new Hsv value, with the components clamped to their
// valid ranges.
func NewHsv(h, s, v float64) Hsv {
	return Hsv{H: clamp(h, 0, 360), S: clamp01(s), V: clamp01(v)}
}

// ToScaledVector4 implements the [ColorProfile] interface.
func (c Hsv) ToScaledVector4() Vector4 {
	return Vector4{c.H / 360, c.S, c.V, 1}
}

// FromScaledVector4 implements the [ColorProfile] interface.
func (Hsv) FromScaledVector4(v Vector4) Hsv {
	return NewHsv(v[0]*360, v[1], v[2])
}

// ToScaledVector4Slice implements the [ColorProfile] interface.
func (Hsv) ToScaledVector4Slice(src []Hsv, dst []Vector4) { toScaledVectors(src, dst) }

// FromScaledVector4Slice implements the [ColorProfile] interface.
func (Hsv) FromScaledVector4Slice(src []Vector4, dst []Hsv) { fromScaledVectors(src, dst) }

// WhitePointSource implements the [ColorProfile] interface.
func (Hsv) WhitePointSource() WhitePointSource { return RgbWorkingSpaceWhitePoint }

// ToRgb implements the [RgbProfile] interface.
func (c Hsv) ToRgb(*Options) Rgb {
	chroma := c.V * c.S
	return hueToRgb(c.H, chroma, c.V-chroma)
}

// FromRgb implements the [RgbProfile] interface.
// Achromatic colours have hue and saturation 0.
func (Hsv) FromRgb(_ *Options, c Rgb) Hsv {
	hi := max(c.R, c.G, c.B)
	lo := min(c.R, c.G, c.B)
	chroma := hi - lo

	if chroma == 0 || hi == 0 {
		return NewHsv(0, 0, hi)
	}
	return NewHsv(rgbHue(c, hi, chroma), chroma/hi, hi)
}

// ToRgbSlice implements the [RgbProfile] interface.
func (Hsv) ToRgbSlice(o *Options, src []Hsv, dst []Rgb) { toRgbSlice(o, src, dst) }

// FromRgbSlice implements the [RgbProfile] interface.
func (Hsv) FromRgbSlice(o *Options, src []Rgb, dst []Hsv) { fromRgbSlice(o, src, dst) }
