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

// Package colorconv converts colour values between colour spaces.
//
// Every colour type ([Rgb], [CieXyz], [CieLab], [Hsl], [Cmyk], ...)
// converts directly to exactly one connecting space: CIE XYZ, CIE Lab or
// RGB.  Conversions between two types go through the connecting space of
// the source type, CIE XYZ (where chromatic adaptation between the source
// and target white points happens) and the connecting space of the target
// type.
//
// # Converting Colours
//
// Conversions are performed by a [Converter], configured by [Options]:
//
//	opts, err := colorconv.NewOptions(
//	    colorconv.WithTargetWhitePoint(colorconv.IlluminantD65),
//	)
//	if err != nil {
//	    // handle error
//	}
//	c, err := colorconv.NewConverter(opts)
//	if err != nil {
//	    // handle error
//	}
//	lab := colorconv.Convert[colorconv.Rgb, colorconv.CieLab](c, colorconv.Rgb{R: 1})
//
// [ConvertSlice] converts whole slices; the conversion route is then
// selected once per call.
//
// # ICC Profiles
//
// If both a source and a target [IccProfile] are set in the options, the
// converter uses the device transforms of the profiles instead of the
// analytic route.  [NewIccProfile] wraps a profile read by package
// [seehuhn.de/go/colorconv/icc].
//
// # Pixel Data
//
// All colour types convert to and from a scaled [Vector4] representation,
// where each component is mapped to [0, 1].  [UnpackRgb] and [PackRgb]
// move RGB values in and out of four-lane pixel buffers, leaving the alpha
// lane alone.
package colorconv
