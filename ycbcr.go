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

// YCbCrTransform maps RGB values to YCbCr: the result is
// Forward·rgb + Offset.
type YCbCrTransform struct {
	Forward Matrix3
	Offset  Vector3
}

// NewYCbCrTransform returns the transform for the luma coefficients kr and
// kb of the red and blue channels, in full range with chroma centred
// on 0.5.
func NewYCbCrTransform(kr, kb float64) YCbCrTransform {
	kg := 1 - kr - kb
	cb := 0.5 / (1 - kb)
	cr := 0.5 / (1 - kr)
	return YCbCrTransform{
		Forward: Matrix3{
			{kr, kg, kb},
			{-kr * cb, -kg * cb, (1 - kb) * cb},
			{(1 - kr) * cr, -kg * cr, -kb * cr},
		},
		Offset: Vector3{0, 0.5, 0.5},
	}
}

// Standard YCbCr transforms and luma coefficients.  These variables must
// not be modified, the defaults of [NewOptions] are copies made at
// initialisation.
var (
	YCbCrBT601  = NewYCbCrTransform(0.299, 0.114)
	YCbCrBT709  = NewYCbCrTransform(0.2126, 0.0722)
	YCbCrBT2020 = NewYCbCrTransform(0.2627, 0.0593)

	LumaBT601  = Vector3{0.299, 0.587, 0.114}
	LumaBT709  = Vector3{0.2126, 0.7152, 0.0722}
	LumaBT2020 = Vector3{0.2627, 0.6780, 0.0593}
)

// YCbCr is a colour in full-range YCbCr form, with all components in
// [0, 1] and the chroma components centred on 0.5.  Values are not
// clamped.  The transform is given by the conversion options.
type YCbCr struct {
	Y, Cb, Cr float64
}

// ToScaledVector4 implements the [ColorProfile] interface.
func (c YCbCr) ToScaledVector4() Vector4 {
	return Vector4{c.Y, c.Cb, c.Cr, 1}
}

// FromScaledVector4 implements the [ColorProfile] interface.
func (YCbCr) FromScaledVector4(v Vector4) YCbCr {
	return YCbCr{Y: v[0], Cb: v[1], Cr: v[2]}
}

// ToScaledVector4Slice implements the [ColorProfile] interface.
func (YCbCr) ToScaledVector4Slice(src []YCbCr, dst []Vector4) { toScaledVectors(src, dst) }

// FromScaledVector4Slice implements the [ColorProfile] interface.
func (YCbCr) FromScaledVector4Slice(src []Vector4, dst []YCbCr) { fromScaledVectors(src, dst) }

// WhitePointSource implements the [ColorProfile] interface.
func (YCbCr) WhitePointSource() WhitePointSource { return RgbWorkingSpaceWhitePoint }

// ToRgb implements the [RgbProfile] interface.
func (c YCbCr) ToRgb(o *Options) Rgb {
	off := o.yCbCr.Offset
	v := o.yCbCrInverse.Apply(Vector3{c.Y - off[0], c.Cb - off[1], c.Cr - off[2]})
	return Rgb{R: v[0], G: v[1], B: v[2]}
}

// FromRgb implements the [RgbProfile] interface.
func (YCbCr) FromRgb(o *Options, c Rgb) YCbCr {
	off := o.yCbCr.Offset
	v := o.yCbCr.Forward.Apply(Vector3{c.R, c.G, c.B})
	return YCbCr{Y: v[0] + off[0], Cb: v[1] + off[1], Cr: v[2] + off[2]}
}

// ToRgbSlice implements the [RgbProfile] interface.
func (YCbCr) ToRgbSlice(o *Options, src []YCbCr, dst []Rgb) { toRgbSlice(o, src, dst) }

// FromRgbSlice implements the [RgbProfile] interface.
func (YCbCr) FromRgbSlice(o *Options, src []Rgb, dst []YCbCr) { fromRgbSlice(o, src, dst) }
