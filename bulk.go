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

import "unsafe"

// useVectorKernels is set if the assembly kernels for the bulk RGB
// conversions can be used on this CPU.
var useVectorKernels = vectorKernelsSupported()

// UnpackRgb copies the colour components of src into the first three lanes
// of dst.  The fourth lane of dst, typically an alpha value, is preserved.
//
// UnpackRgb panics if dst is shorter than src.
func UnpackRgb(src []Rgb, dst []Vector4) {
	checkLengths(len(src), len(dst))
	expandRgb(src, dst[:len(src)], false)
}

// PackRgb copies the first three lanes of every element of src into dst.
// The fourth lane is ignored.
//
// PackRgb panics if dst is shorter than src.
func PackRgb(src []Vector4, dst []Rgb) {
	checkLengths(len(src), len(dst))
	shrinkRgb(src, dst[:len(src)])
}

// rgbToVector4s is like UnpackRgb, but sets the fourth lane to 1.
func rgbToVector4s(src []Rgb, dst []Vector4) {
	expandRgb(src, dst, true)
}

func vector4sToRgb(src []Vector4, dst []Rgb) {
	shrinkRgb(src, dst)
}

// rgbFloats returns the components of s as a flat slice, without copying.
func rgbFloats(s []Rgb) []float64 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(&s[0].R, 3*len(s))
}

// vector4Floats returns the lanes of s as a flat slice, without copying.
func vector4Floats(s []Vector4) []float64 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(&s[0][0], 4*len(s))
}

// expandRgb copies src into the first three lanes of dst, which must have
// the same length as src.  If opaque is set, the fourth lane is set to 1,
// otherwise it is left unchanged.
//
// The vector kernel handles a leading block of pixels, the remainder is
// converted here.
func expandRgb(src []Rgb, dst []Vector4, opaque bool) {
	i := 0
	if useVectorKernels {
		i = expandRgbVector(rgbFloats(src), vector4Floats(dst), opaque)
	}
	for ; i < len(src); i++ {
		dst[i][0] = src[i].R
		dst[i][1] = src[i].G
		dst[i][2] = src[i].B
		if opaque {
			dst[i][3] = 1
		}
	}
}

// shrinkRgb copies the first three lanes of src into dst, which must have
// the same length as src.
func shrinkRgb(src []Vector4, dst []Rgb) {
	i := 0
	if useVectorKernels {
		i = shrinkRgbVector(vector4Floats(src), rgbFloats(dst))
	}
	for ; i < len(src); i++ {
		dst[i] = Rgb{R: src[i][0], G: src[i][1], B: src[i][2]}
	}
}
