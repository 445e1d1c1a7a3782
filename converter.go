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

import "fmt"

// Converter converts colour values between profile types.
//
// A Converter is immutable and can be used from several goroutines
// concurrently.
type Converter struct {
	options *Options
	bridge  *iccBridge
}

// NewConverter returns a converter for the given options.  If opts is nil,
// the default options are used.
//
// If both a source and a target ICC profile are configured, all conversions
// use the ICC profiles instead of the analytic conversion route.  An
// [*UnsupportedPcsError] is returned if a configured ICC profile uses a
// profile connection space other than CIE XYZ or CIE Lab.
func NewConverter(opts *Options) (*Converter, error) {
	if opts == nil {
		opts = defaultOptions
	}
	c := &Converter{options: opts}

	src, tgt := opts.sourceIccProfile, opts.targetIccProfile
	if src != nil {
		if err := checkPcs("source", src); err != nil {
			return nil, err
		}
	}
	if tgt != nil {
		if err := checkPcs("target", tgt); err != nil {
			return nil, err
		}
	}
	if src != nil && tgt != nil {
		b, err := newIccBridge(opts, src, tgt)
		if err != nil {
			return nil, err
		}
		c.bridge = b
	}
	return c, nil
}

// Options returns the options of the converter.
func (c *Converter) Options() *Options {
	return c.options
}

// Convert converts a single colour value from type TFrom to type TTo.
//
// The value is converted to the native connecting space of TFrom, then to
// CIE XYZ where chromatic adaptation is applied, and finally via the native
// connecting space of TTo to the target type.
func Convert[TFrom ColorProfile[TFrom], TTo ColorProfile[TTo]](c *Converter, v TFrom) TTo {
	if c.bridge != nil {
		return convertIcc[TFrom, TTo](c.bridge, v)
	}

	o := c.options
	var to TTo
	xyz := toConnectingSpace(o, v)
	xyz = o.adaptation.Transform(xyz,
		o.sourceWhite(v.WhitePointSource()), o.targetWhite(to.WhitePointSource()))
	return fromConnectingSpace[TTo](o, xyz)
}

// ConvertSlice converts every element of src from type TFrom to type TTo
// and stores the results in dst.  The conversion route is chosen once for
// the whole slice.
//
// ConvertSlice panics if dst is shorter than src.
func ConvertSlice[TFrom ColorProfile[TFrom], TTo ColorProfile[TTo]](c *Converter, src []TFrom, dst []TTo) {
	checkLengths(len(src), len(dst))
	if len(src) == 0 {
		return
	}
	dst = dst[:len(src)]

	if c.bridge != nil {
		convertSliceIcc(c.bridge, src, dst)
		return
	}

	o := c.options
	var from TFrom
	var to TTo
	xyz := make([]CieXyz, len(src))
	toConnectingSpaceSlice(o, src, xyz)
	o.adaptation.TransformSlice(xyz, xyz,
		o.sourceWhite(from.WhitePointSource()), o.targetWhite(to.WhitePointSource()))
	fromConnectingSpaceSlice(o, xyz, dst)
}

func checkLengths(src, dst int) {
	if dst < src {
		panic(fmt.Sprintf("colorconv: destination too short (%d < %d)", dst, src))
	}
}

func noConnectingSpace[T any]() string {
	var zero T
	return fmt.Sprintf("colorconv: %T implements none of XyzProfile, LabProfile, RgbProfile", zero)
}

// toConnectingSpace converts v to XYZ, without chromatic adaptation.
func toConnectingSpace[T ColorProfile[T]](o *Options, v T) CieXyz {
	switch p := any(v).(type) {
	case XyzProfile[T]:
		return p.ToXyz(o)
	case LabProfile[T]:
		return LabToXyz(p.ToLab(o), o.sourceWhitePoint)
	case RgbProfile[T]:
		return o.rgbToXyz(p.ToRgb(o))
	}
	panic(noConnectingSpace[T]())
}

// fromConnectingSpace converts an (already adapted) XYZ value to type T.
func fromConnectingSpace[T ColorProfile[T]](o *Options, c CieXyz) T {
	var zero T
	switch p := any(zero).(type) {
	case XyzProfile[T]:
		return p.FromXyz(o, c)
	case LabProfile[T]:
		return p.FromLab(o, XyzToLab(c, o.targetWhitePoint))
	case RgbProfile[T]:
		return p.FromRgb(o, o.xyzToRgb(c))
	}
	panic(noConnectingSpace[T]())
}

func toConnectingSpaceSlice[T ColorProfile[T]](o *Options, src []T, dst []CieXyz) {
	var zero T
	switch p := any(zero).(type) {
	case XyzProfile[T]:
		p.ToXyzSlice(o, src, dst)
	case LabProfile[T]:
		lab := make([]CieLab, len(src))
		p.ToLabSlice(o, src, lab)
		white := o.sourceWhitePoint
		for i, c := range lab {
			dst[i] = LabToXyz(c, white)
		}
	case RgbProfile[T]:
		rgb := make([]Rgb, len(src))
		p.ToRgbSlice(o, src, rgb)
		lin := make([]Vector4, len(src))
		rgbToVector4s(rgb, lin)
		ExpandSlice(o.sourceRgbWorkingSpace.Companding, lin)
		for i, v := range lin {
			dst[i] = xyzFromVector(o.sourceRgbToXyz.Apply(v.Vector3()))
		}
	default:
		panic(noConnectingSpace[T]())
	}
}

func fromConnectingSpaceSlice[T ColorProfile[T]](o *Options, src []CieXyz, dst []T) {
	var zero T
	switch p := any(zero).(type) {
	case XyzProfile[T]:
		p.FromXyzSlice(o, src, dst)
	case LabProfile[T]:
		lab := make([]CieLab, len(src))
		white := o.targetWhitePoint
		for i, c := range src {
			lab[i] = XyzToLab(c, white)
		}
		p.FromLabSlice(o, lab, dst)
	case RgbProfile[T]:
		lin := make([]Vector4, len(src))
		for i, c := range src {
			v := o.targetXyzToRgb.Apply(c.vector())
			lin[i] = Vector4{v[0], v[1], v[2], 1}
		}
		CompressSlice(o.targetRgbWorkingSpace.Companding, lin)
		rgb := make([]Rgb, len(src))
		vector4sToRgb(lin, rgb)
		p.FromRgbSlice(o, rgb, dst)
	default:
		panic(noConnectingSpace[T]())
	}
}
