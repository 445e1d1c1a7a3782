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

// YccK is the YCbCr form of a CMYK colour, as used in Adobe JPEG files:
// the colour part is stored as YCbCr, the black channel is kept as is.
// All components are in [0, 1].
type YccK struct {
	Y, Cb, Cr, K float64
}

// NewYccK returns a new YccK value, with the components clamped to [0, 1].
func NewYccK(y, cb, cr, k float64) YccK {
	return YccK{Y: clamp01(y), Cb: clamp01(cb), Cr: clamp01(cr), K: clamp01(k)}
}

// ToScaledVector4 implements the [ColorProfile] interface.
func (c YccK) ToScaledVector4() Vector4 {
	return Vector4{c.Y, c.Cb, c.Cr, c.K}
}

// FromScaledVector4 implements the [ColorProfile] interface.
func (YccK) FromScaledVector4(v Vector4) YccK {
	return NewYccK(v[0], v[1], v[2], v[3])
}

// ToScaledVector4Slice implements the [ColorProfile] interface.
func (YccK) ToScaledVector4Slice(src []YccK, dst []Vector4) { toScaledVectors(src, dst) }

// FromScaledVector4Slice implements the [ColorProfile] interface.
func (YccK) FromScaledVector4Slice(src []Vector4, dst []YccK) { fromScaledVectors(src, dst) }

// WhitePointSource implements the [ColorProfile] interface.
func (YccK) WhitePointSource() WhitePointSource { return RgbWorkingSpaceWhitePoint }

// ToRgb implements the [RgbProfile] interface.
func (c YccK) ToRgb(o *Options) Rgb {
	off := o.yCbCr.Offset
	v := o.yCbCrInverse.Apply(Vector3{c.Y - off[0], c.Cb - off[1], c.Cr - off[2]})
	w := 1 - c.K
	return Rgb{R: v[0] * w, G: v[1] * w, B: v[2] * w}
}

// FromRgb implements the [RgbProfile] interface.
// Black is represented as (0, 0.5, 0.5, 1).
func (YccK) FromRgb(o *Options, c Rgb) YccK {
	k := 1 - max(c.R, c.G, c.B)
	if k >= 1-epsilon {
		return YccK{Y: 0, Cb: 0.5, Cr: 0.5, K: 1}
	}
	w := 1 - k
	off := o.yCbCr.Offset
	v := o.yCbCr.Forward.Apply(Vector3{c.R / w, c.G / w, c.B / w})
	return NewYccK(v[0]+off[0], v[1]+off[1], v[2]+off[2], k)
}

// ToRgbSlice implements the [RgbProfile] interface.
func (YccK) ToRgbSlice(o *Options, src []YccK, dst []Rgb) { toRgbSlice(o, src, dst) }

// FromRgbSlice implements the [RgbProfile] interface.
func (YccK) FromRgbSlice(o *Options, src []Rgb, dst []YccK) { fromRgbSlice(o, src, dst) }
