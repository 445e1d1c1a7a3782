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

// Hsl is a colour given by hue, saturation and lightness.
// H is in degrees, in [0, 360], S and L are in [0, 1].
type Hsl struct {
	H, S, L float64
}

// NewHsl returns a new Hsl value, with the components clamped to their
// valid ranges.
func NewHsl(h, s, l float64) Hsl {
	return Hsl{H: clamp(h, 0, 360), S: clamp01(s), L: clamp01(l)}
}

// ToScaledVector4 implements the [ColorProfile] interface.
func (c Hsl) ToScaledVector4() Vector4 {
	return Vector4{c.H / 360, c.S, c.L, 1}
}

// FromScaledVector4 implements the [ColorProfile] interface.
func (Hsl) FromScaledVector4(v Vector4) Hsl {
	return NewHsl(v[0]*360, v[1], v[2])
}

// ToScaledVector4Slice implements the [ColorProfile] interface.
func (Hsl) ToScaledVector4Slice(src []Hsl, dst []Vector4) { toScaledVectors(src, dst) }

// FromScaledVector4Slice implements the [ColorProfile] interface.
func (Hsl) FromScaledVector4Slice(src []Vector4, dst []Hsl) { fromScaledVectors(src, dst) }

// WhitePointSource implements the [ColorProfile] interface.
func (Hsl) WhitePointSource() WhitePointSource { return RgbWorkingSpaceWhitePoint }

// ToRgb implements the [RgbProfile] interface.
func (c Hsl) ToRgb(*Options) Rgb {
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	m := c.L - chroma/2
	return hueToRgb(c.H, chroma, m)
}

// FromRgb implements the [RgbProfile] interface.
// Achromatic colours have hue and saturation 0.
func (Hsl) FromRgb(_ *Options, c Rgb) Hsl {
	hi := max(c.R, c.G, c.B)
	lo := min(c.R, c.G, c.B)
	chroma := hi - lo
	l := (hi + lo) / 2

	if chroma == 0 {
		return NewHsl(0, 0, l)
	}

	var s float64
	if l <= 0.5 {
		s = chroma / (hi + lo)
	} else {
		s = chroma / (2 - hi - lo)
	}
	return NewHsl(rgbHue(c, hi, chroma), s, l)
}

// ToRgbSlice implements the [RgbProfile] interface.
func (Hsl) ToRgbSlice(o *Options, src []Hsl, dst []Rgb) { toRgbSlice(o, src, dst) }

// FromRgbSlice implements the [RgbProfile] interface.
func (Hsl) FromRgbSlice(o *Options, src []Rgb, dst []Hsl) { fromRgbSlice(o, src, dst) }

// rgbHue returns the hue angle of c in degrees, given the largest
// component and the (non-zero) chroma.
func rgbHue(c Rgb, hi, chroma float64) float64 {
	var h float64
	switch hi {
	case c.R:
		h = math.Mod((c.G-c.B)/chroma, 6)
	case c.G:
		h = (c.B-c.R)/chroma + 2
	default:
		h = (c.R-c.G)/chroma + 4
	}
	return normaliseDegrees(h * 60)
}

// hueToRgb returns the RGB colour with the given hue, chroma and offset m.
func hueToRgb(hue, chroma, m float64) Rgb {
	hp := normaliseDegrees(hue) / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = chroma, x, 0
	case hp < 2:
		r, g, b = x, chroma, 0
	case hp < 3:
		r, g, b = 0, chroma, x
	case hp < 4:
		r, g, b = 0, x, chroma
	case hp < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return Rgb{R: r + m, G: g + m, B: b + m}
}
