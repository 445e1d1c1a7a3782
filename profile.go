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

// WhitePointSource identifies which option supplies the white point of a
// colour profile for chromatic adaptation.
type WhitePointSource int

const (
	// WhitePoint selects the configured source or target white point.
	WhitePoint WhitePointSource = iota

	// RgbWorkingSpaceWhitePoint selects the white point of the configured
	// source or target RGB working space.
	RgbWorkingSpaceWhitePoint
)

func (s WhitePointSource) String() string {
	switch s {
	case WhitePoint:
		return "WhitePoint"
	case RgbWorkingSpaceWhitePoint:
		return "RgbWorkingSpace"
	default:
		return "WhitePointSource(?)"
	}
}

// ColorProfile is implemented by all colour value types.
//
// The scaled-vector representation maps every component to a nominal
// range of [0, 1], with 1 in unused lanes.  It is the interchange format
// for ICC transforms and for pixel data.  The slice methods do not use
// the receiver; they can be called on the zero value.
type ColorProfile[T any] interface {
	ToScaledVector4() Vector4
	FromScaledVector4(v Vector4) T
	ToScaledVector4Slice(src []T, dst []Vector4)
	FromScaledVector4Slice(src []Vector4, dst []T)
	WhitePointSource() WhitePointSource
}

// XyzProfile is implemented by colour types which convert via CIE XYZ.
//
// ToXyz uses the source settings of the options, FromXyz uses the target
// settings.  The slice methods do not use the receiver.
type XyzProfile[T any] interface {
	ColorProfile[T]
	ToXyz(o *Options) CieXyz
	FromXyz(o *Options, c CieXyz) T
	ToXyzSlice(o *Options, src []T, dst []CieXyz)
	FromXyzSlice(o *Options, src []CieXyz, dst []T)
}

// LabProfile is implemented by colour types which convert via CIE Lab.
//
// ToLab uses the source settings of the options, FromLab uses the target
// settings.  The slice methods do not use the receiver.
type LabProfile[T any] interface {
	ColorProfile[T]
	ToLab(o *Options) CieLab
	FromLab(o *Options, c CieLab) T
	ToLabSlice(o *Options, src []T, dst []CieLab)
	FromLabSlice(o *Options, src []CieLab, dst []T)
}

// RgbProfile is implemented by colour types which convert via RGB.
//
// ToRgb uses the source settings of the options, FromRgb uses the target
// settings.  The slice methods do not use the receiver.
type RgbProfile[T any] interface {
	ColorProfile[T]
	ToRgb(o *Options) Rgb
	FromRgb(o *Options, c Rgb) T
	ToRgbSlice(o *Options, src []T, dst []Rgb)
	FromRgbSlice(o *Options, src []Rgb, dst []T)
}

// The helpers below implement the slice methods in terms of the
// per-value methods.

type scaledVectorer[T any] interface {
	ToScaledVector4() Vector4
	FromScaledVector4(v Vector4) T
}

func toScaledVectors[T scaledVectorer[T]](src []T, dst []Vector4) {
	dst = dst[:len(src)]
	for i, c := range src {
		dst[i] = c.ToScaledVector4()
	}
}

func fromScaledVectors[T scaledVectorer[T]](src []Vector4, dst []T) {
	dst = dst[:len(src)]
	var zero T
	for i, v := range src {
		dst[i] = zero.FromScaledVector4(v)
	}
}

type xyzConvertible[T any] interface {
	ToXyz(o *Options) CieXyz
	FromXyz(o *Options, c CieXyz) T
}

func toXyzSlice[T xyzConvertible[T]](o *Options, src []T, dst []CieXyz) {
	dst = dst[:len(src)]
	for i, c := range src {
		dst[i] = c.ToXyz(o)
	}
}

func fromXyzSlice[T xyzConvertible[T]](o *Options, src []CieXyz, dst []T) {
	dst = dst[:len(src)]
	var zero T
	for i, c := range src {
		dst[i] = zero.FromXyz(o, c)
	}
}

type labConvertible[T any] interface {
	ToLab(o *Options) CieLab
	FromLab(o *Options, c CieLab) T
}

func toLabSlice[T labConvertible[T]](o *Options, src []T, dst []CieLab) {
	dst = dst[:len(src)]
	for i, c := range src {
		dst[i] = c.ToLab(o)
	}
}

func fromLabSlice[T labConvertible[T]](o *Options, src []CieLab, dst []T) {
	dst = dst[:len(src)]
	var zero T
	for i, c := range src {
		dst[i] = zero.FromLab(o, c)
	}
}

type rgbConvertible[T any] interface {
	ToRgb(o *Options) Rgb
	FromRgb(o *Options, c Rgb) T
}

func toRgbSlice[T rgbConvertible[T]](o *Options, src []T, dst []Rgb) {
	dst = dst[:len(src)]
	for i, c := range src {
		dst[i] = c.ToRgb(o)
	}
}

func fromRgbSlice[T rgbConvertible[T]](o *Options, src []Rgb, dst []T) {
	dst = dst[:len(src)]
	var zero T
	for i, c := range src {
		dst[i] = zero.FromRgb(o, c)
	}
}
