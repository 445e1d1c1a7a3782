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

// Options holds the parameters of a colour conversion.
//
// Options values are created using [NewOptions] and are immutable
// afterwards.  The inverse matrices and the RGB conversion matrices are
// derived once, when the options are constructed.  Fields which affect
// the source side of a conversion are used when converting the input
// value into the connecting space, fields for the target side are used
// when converting out of it.
type Options struct {
	sourceWhitePoint CieXyz
	targetWhitePoint CieXyz

	sourceRgbWorkingSpace RgbWorkingSpace
	targetRgbWorkingSpace RgbWorkingSpace
	sourceRgbToXyz        Matrix3
	targetXyzToRgb        Matrix3

	adaptationMatrix Matrix3
	adaptation       *VonKriesAdaptation

	yCbCr        YCbCrTransform
	yCbCrInverse Matrix3
	luma         Vector3

	sourceIccProfile IccProfile
	targetIccProfile IccProfile
}

// An Option modifies the default conversion options.
type Option func(*Options)

// WithSourceWhitePoint sets the white point of the source colour values.
// The default is D50.
func WithSourceWhitePoint(wp CieXyz) Option {
	return func(o *Options) { o.sourceWhitePoint = wp }
}

// WithTargetWhitePoint sets the white point of the converted colour values.
// The default is D50.
func WithTargetWhitePoint(wp CieXyz) Option {
	return func(o *Options) { o.targetWhitePoint = wp }
}

// WithSourceRgbWorkingSpace sets the working space used for source values
// of the RGB family.  The default is sRGB.
func WithSourceRgbWorkingSpace(ws RgbWorkingSpace) Option {
	return func(o *Options) { o.sourceRgbWorkingSpace = ws }
}

// WithTargetRgbWorkingSpace sets the working space used for converted
// values of the RGB family.  The default is sRGB.
func WithTargetRgbWorkingSpace(ws RgbWorkingSpace) Option {
	return func(o *Options) { o.targetRgbWorkingSpace = ws }
}

// WithAdaptationMatrix sets the cone response matrix used for chromatic
// adaptation and for conversions to and from [Lms].  The default is
// [Bradford].
func WithAdaptationMatrix(m Matrix3) Option {
	return func(o *Options) { o.adaptationMatrix = m }
}

// WithYCbCrTransform sets the transform used by [YCbCr] and [YccK].
// The default is [YCbCrBT601].
func WithYCbCrTransform(t YCbCrTransform) Option {
	return func(o *Options) { o.yCbCr = t }
}

// WithLumaCoefficients sets the weights used to compute [Y] from RGB.
// The default is [LumaBT601].
func WithLumaCoefficients(c Vector3) Option {
	return func(o *Options) { o.luma = c }
}

// WithSourceIccProfile sets the ICC profile describing source values.
func WithSourceIccProfile(p IccProfile) Option {
	return func(o *Options) { o.sourceIccProfile = p }
}

// WithTargetIccProfile sets the ICC profile describing converted values.
func WithTargetIccProfile(p IccProfile) Option {
	return func(o *Options) { o.targetIccProfile = p }
}

// NewOptions returns conversion options with the given modifications
// applied to the defaults.  An error is returned if the adaptation matrix,
// the YCbCr matrix or the primaries of a working space are singular.
func NewOptions(opts ...Option) (*Options, error) {
	o := new(Options)
	*o = optionDefaults
	for _, opt := range opts {
		opt(o)
	}
	if o.sourceRgbWorkingSpace.Companding == nil {
		o.sourceRgbWorkingSpace.Companding = LinearCompanding{}
	}
	if o.targetRgbWorkingSpace.Companding == nil {
		o.targetRgbWorkingSpace.Companding = LinearCompanding{}
	}

	var err error
	o.adaptation, err = NewVonKriesAdaptation(o.adaptationMatrix)
	if err != nil {
		return nil, err
	}

	var ok bool
	o.yCbCrInverse, ok = o.yCbCr.Forward.Inverse()
	if !ok {
		return nil, &SingularMatrixError{What: "YCbCr matrix"}
	}

	o.sourceRgbToXyz, ok = o.sourceRgbWorkingSpace.RgbToXyzMatrix()
	if !ok {
		return nil, &SingularMatrixError{What: "source working space primaries"}
	}
	m, ok := o.targetRgbWorkingSpace.RgbToXyzMatrix()
	if ok {
		o.targetXyzToRgb, ok = m.Inverse()
	}
	if !ok {
		return nil, &SingularMatrixError{What: "target working space primaries"}
	}

	return o, nil
}

// optionDefaults holds copies of the package variables used as defaults,
// taken at initialisation.
var optionDefaults = Options{
	sourceWhitePoint:      IlluminantD50,
	targetWhitePoint:      IlluminantD50,
	sourceRgbWorkingSpace: SRgb,
	targetRgbWorkingSpace: SRgb,
	adaptationMatrix:      Bradford,
	yCbCr:                 YCbCrBT601,
	luma:                  LumaBT601,
}

// defaultOptions is used when a nil *Options is passed.
var defaultOptions = func() *Options {
	o, err := NewOptions()
	if err != nil {
		panic(err)
	}
	return o
}()

// SourceWhitePoint returns the white point of source colour values.
func (o *Options) SourceWhitePoint() CieXyz { return o.sourceWhitePoint }

// TargetWhitePoint returns the white point of converted colour values.
func (o *Options) TargetWhitePoint() CieXyz { return o.targetWhitePoint }

// SourceRgbWorkingSpace returns the working space of source RGB values.
func (o *Options) SourceRgbWorkingSpace() RgbWorkingSpace { return o.sourceRgbWorkingSpace }

// TargetRgbWorkingSpace returns the working space of converted RGB values.
func (o *Options) TargetRgbWorkingSpace() RgbWorkingSpace { return o.targetRgbWorkingSpace }

// AdaptationMatrix returns the cone response matrix.
func (o *Options) AdaptationMatrix() Matrix3 { return o.adaptationMatrix }

// InverseAdaptationMatrix returns the inverse of [Options.AdaptationMatrix].
func (o *Options) InverseAdaptationMatrix() Matrix3 { return o.adaptation.inv }

// YCbCrTransform returns the transform used for YCbCr values.
func (o *Options) YCbCrTransform() YCbCrTransform { return o.yCbCr }

// YCbCrInverse returns the inverse of the forward YCbCr matrix.
func (o *Options) YCbCrInverse() Matrix3 { return o.yCbCrInverse }

// LumaCoefficients returns the weights used to compute [Y] from RGB.
func (o *Options) LumaCoefficients() Vector3 { return o.luma }

// SourceIccProfile returns the source ICC profile, or nil.
func (o *Options) SourceIccProfile() IccProfile { return o.sourceIccProfile }

// TargetIccProfile returns the target ICC profile, or nil.
func (o *Options) TargetIccProfile() IccProfile { return o.targetIccProfile }

// sourceWhite returns the white point used for chromatic adaptation of
// source values whose profile reports src.
func (o *Options) sourceWhite(src WhitePointSource) CieXyz {
	if src == RgbWorkingSpaceWhitePoint {
		return o.sourceRgbWorkingSpace.WhitePoint
	}
	return o.sourceWhitePoint
}

// targetWhite returns the white point used for chromatic adaptation of
// converted values whose profile reports src.
func (o *Options) targetWhite(src WhitePointSource) CieXyz {
	if src == RgbWorkingSpaceWhitePoint {
		return o.targetRgbWorkingSpace.WhitePoint
	}
	return o.targetWhitePoint
}

// rgbToXyz converts a companded source RGB value to XYZ, relative to the
// white point of the source working space.
func (o *Options) rgbToXyz(c Rgb) CieXyz {
	comp := o.sourceRgbWorkingSpace.Companding
	lin := Vector3{comp.Expand(c.R), comp.Expand(c.G), comp.Expand(c.B)}
	return xyzFromVector(o.sourceRgbToXyz.Apply(lin))
}

// xyzToRgb converts an XYZ value, relative to the white point of the
// target working space, to a companded RGB value.
func (o *Options) xyzToRgb(c CieXyz) Rgb {
	comp := o.targetRgbWorkingSpace.Companding
	lin := o.targetXyzToRgb.Apply(c.vector())
	return Rgb{R: comp.Compress(lin[0]), G: comp.Compress(lin[1]), B: comp.Compress(lin[2])}
}
