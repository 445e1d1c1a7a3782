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

import (
	"seehuhn.de/go/colorconv/icc"
)

// IccHeader holds the header fields of an ICC profile which are used for
// PCS reconciliation.
type IccHeader struct {
	ProfileConnectionSpace icc.ColorSpace
	RenderingIntent        icc.RenderingIntent
	Version                icc.Version
	PcsIlluminant          CieXyz
}

// IccProfile is a device profile with callable transforms between device
// values and the profile connection space (PCS).
//
// Device values are given in the scaled-vector form of the colour type
// being converted.  PCS values use the ICC normalised encoding: for an XYZ
// PCS the components are X, Y and Z multiplied by 32768/65535, for a Lab
// PCS they are L/100, (a+128)/255 and (b+128)/255.
//
// Implementations must be safe for concurrent use.
type IccProfile interface {
	Header() IccHeader

	DeviceToPcs(v Vector4) Vector4
	PcsToDevice(v Vector4) Vector4
	DeviceToPcsSlice(src, dst []Vector4)
	PcsToDeviceSlice(src, dst []Vector4)

	// LegacyLabEncoding reports whether the PCS side of the transform in the
	// given direction uses the ICC version 2 16-bit Lab encoding, where
	// L=100 is represented by 0xFF00 instead of 0xFFFF.
	LegacyLabEncoding(dir icc.Direction) bool
}

// ConvertUsingIccProfile converts a single value from type TFrom to type
// TTo, using the source and target ICC profiles of the converter.
func ConvertUsingIccProfile[TFrom ColorProfile[TFrom], TTo ColorProfile[TTo]](c *Converter, v TFrom) (TTo, error) {
	if err := c.checkIccProfiles(); err != nil {
		var zero TTo
		return zero, err
	}
	return convertIcc[TFrom, TTo](c.bridge, v), nil
}

// ConvertSliceUsingIccProfile converts every element of src from type
// TFrom to type TTo, using the source and target ICC profiles of the
// converter.
//
// ConvertSliceUsingIccProfile panics if dst is shorter than src.
func ConvertSliceUsingIccProfile[TFrom ColorProfile[TFrom], TTo ColorProfile[TTo]](c *Converter, src []TFrom, dst []TTo) error {
	if err := c.checkIccProfiles(); err != nil {
		return err
	}
	checkLengths(len(src), len(dst))
	convertSliceIcc(c.bridge, src, dst[:len(src)])
	return nil
}

func (c *Converter) checkIccProfiles() error {
	if c.options.sourceIccProfile == nil {
		return ErrMissingSourceIccProfile
	}
	if c.options.targetIccProfile == nil {
		return ErrMissingTargetIccProfile
	}
	return nil
}

// directional is implemented by ICC profiles which may lack the transform
// for one of the two directions, like [*IccDeviceProfile].
type directional interface {
	HasTransform(dir icc.Direction) bool
}

// checkDirection verifies that p can be used on the given side of a
// conversion.  Profiles which do not implement directional are assumed
// to support both directions.
func checkDirection(side string, p IccProfile, dir icc.Direction) error {
	if d, ok := p.(directional); ok && !d.HasTransform(dir) {
		return &MissingTransformError{Side: side, Direction: dir}
	}
	return nil
}

func checkPcs(side string, p IccProfile) error {
	pcs := p.Header().ProfileConnectionSpace
	if pcs != icc.PCSXYZSpace && pcs != icc.PCSLabSpace {
		return &UnsupportedPcsError{Side: side, PCS: pcs}
	}
	return nil
}

// iccBridge holds everything needed to connect the PCS of the source
// profile to the PCS of the target profile.
type iccBridge struct {
	source, target IccProfile

	sourceLab, targetLab       bool
	sourceLegacy, targetLegacy bool

	// adjustSource and adjustTarget are set for ICC v2 profiles with
	// perceptual intent, which use a PCS black point of zero.
	adjustSource, adjustTarget bool

	// pcs adapts between the PCS illuminants of the two profiles.
	pcs *Converter
}

func newIccBridge(o *Options, src, tgt IccProfile) (*iccBridge, error) {
	if err := checkDirection("source", src, icc.DeviceToPCS); err != nil {
		return nil, err
	}
	if err := checkDirection("target", tgt, icc.PCSToDevice); err != nil {
		return nil, err
	}

	srcHeader := src.Header()
	tgtHeader := tgt.Header()

	pcsOpts, err := NewOptions(
		WithSourceWhitePoint(pcsIlluminant(srcHeader)),
		WithTargetWhitePoint(pcsIlluminant(tgtHeader)),
		WithAdaptationMatrix(o.adaptationMatrix),
	)
	if err != nil {
		return nil, err
	}

	return &iccBridge{
		source:       src,
		target:       tgt,
		sourceLab:    srcHeader.ProfileConnectionSpace == icc.PCSLabSpace,
		targetLab:    tgtHeader.ProfileConnectionSpace == icc.PCSLabSpace,
		sourceLegacy: src.LegacyLabEncoding(icc.DeviceToPCS),
		targetLegacy: tgt.LegacyLabEncoding(icc.PCSToDevice),
		adjustSource: needsPerceptualAdjustment(srcHeader),
		adjustTarget: needsPerceptualAdjustment(tgtHeader),
		pcs:          &Converter{options: pcsOpts},
	}, nil
}

// pcsIlluminant returns the PCS illuminant of a profile, falling back to
// D50 for headers where the field is not set.
func pcsIlluminant(h IccHeader) CieXyz {
	if h.PcsIlluminant == (CieXyz{}) {
		return pcsD50
	}
	return h.PcsIlluminant
}

// pcsD50 is the D50 illuminant used by the ICC profile connection space.
var pcsD50 = illuminants["D50"]

func needsPerceptualAdjustment(h IccHeader) bool {
	return h.RenderingIntent == icc.Perceptual && h.Version.Major() == 2
}

func convertIcc[TFrom ColorProfile[TFrom], TTo ColorProfile[TTo]](b *iccBridge, v TFrom) TTo {
	var to TTo
	pcs := b.source.DeviceToPcs(v.ToScaledVector4())
	pcs = b.connect(pcs)
	return to.FromScaledVector4(b.target.PcsToDevice(pcs))
}

func convertSliceIcc[TFrom ColorProfile[TFrom], TTo ColorProfile[TTo]](b *iccBridge, src []TFrom, dst []TTo) {
	if len(src) == 0 {
		return
	}
	var from TFrom
	var to TTo

	buf := make([]Vector4, len(src))
	from.ToScaledVector4Slice(src, buf)
	b.source.DeviceToPcsSlice(buf, buf)
	for i, pcs := range buf {
		buf[i] = b.connect(pcs)
	}
	b.target.PcsToDeviceSlice(buf, buf)
	to.FromScaledVector4Slice(buf, dst)
}

// connect maps a PCS value of the source profile to the PCS of the target
// profile.
func (b *iccBridge) connect(pcs Vector4) Vector4 {
	if b.adjustSource != b.adjustTarget {
		return b.connectPerceptual(pcs)
	}

	switch {
	case b.sourceLab && !b.targetLab:
		xyz := b.sourcePcsToXyz(pcs)
		return clipNegative(xyz).ToScaledVector4()

	case !b.sourceLab && b.targetLab:
		xyz := CieXyz{}.FromScaledVector4(pcs)
		lab := Convert[CieXyz, CieLab](b.pcs, xyz)
		return b.targetLabPcs(lab)

	case !b.sourceLab && !b.targetLab:
		xyz := CieXyz{}.FromScaledVector4(pcs)
		return Convert[CieXyz, CieXyz](b.pcs, xyz).ToScaledVector4()

	default: // Lab to Lab
		if b.sourceLegacy && b.targetLegacy {
			lab := CieLab{}.FromScaledVector4(pcs)
			return Convert[CieLab, CieLab](b.pcs, lab).ToScaledVector4()
		}
		lab := CieLab{}.FromScaledVector4(b.sourceLabPcs(pcs))
		return b.targetLabPcs(Convert[CieLab, CieLab](b.pcs, lab))
	}
}

// connectPerceptual is used if exactly one of the profiles is a version 2
// profile with perceptual intent.  The value is taken through XYZ, where
// the black point is moved to or from the version 4 reference black.
func (b *iccBridge) connectPerceptual(pcs Vector4) Vector4 {
	var xyz CieXyz
	if b.sourceLab {
		xyz = clipNegative(b.sourcePcsToXyz(pcs))
	} else {
		xyz = Convert[CieXyz, CieXyz](b.pcs, CieXyz{}.FromScaledVector4(pcs))
	}

	if b.adjustSource {
		xyz = adjustFromV2BlackPoint(xyz)
	}
	if b.adjustTarget {
		xyz = adjustToV2BlackPoint(xyz)
	}

	if b.targetLab {
		return b.targetLabPcs(XyzToLab(xyz, b.pcs.options.targetWhitePoint))
	}
	return xyz.ToScaledVector4()
}

// sourcePcsToXyz decodes a Lab PCS value of the source profile and
// converts it to XYZ relative to the target PCS illuminant.
func (b *iccBridge) sourcePcsToXyz(pcs Vector4) CieXyz {
	lab := CieLab{}.FromScaledVector4(b.sourceLabPcs(pcs))
	return Convert[CieLab, CieXyz](b.pcs, lab)
}

func (b *iccBridge) sourceLabPcs(pcs Vector4) Vector4 {
	if b.sourceLegacy {
		return labV2ToLab(pcs)
	}
	return pcs
}

func (b *iccBridge) targetLabPcs(lab CieLab) Vector4 {
	pcs := lab.ToScaledVector4()
	if b.targetLegacy {
		return labToLabV2(pcs)
	}
	return pcs
}

func clipNegative(c CieXyz) CieXyz {
	return CieXyz{X: max(c.X, 0), Y: max(c.Y, 0), Z: max(c.Z, 0)}
}

const (
	labV2Scale = 65280.0 / 65535.0
)

func labToLabV2(v Vector4) Vector4 {
	return Vector4{v[0] * labV2Scale, v[1] * labV2Scale, v[2] * labV2Scale, v[3]}
}

func labV2ToLab(v Vector4) Vector4 {
	return Vector4{v[0] / labV2Scale, v[1] / labV2Scale, v[2] / labV2Scale, v[3]}
}

// Reference black and white of the perceptual intent PCS, as used by the
// DemoIccMAX CMM.  Version 2 perceptual profiles map black to XYZ zero,
// version 4 profiles map black to perceptualBlack.
var (
	perceptualBlack = CieXyz{X: 0.00336, Y: 0.0034731, Z: 0.00287}
	perceptualWhite = CieXyz{X: 0.9642, Y: 1.0, Z: 0.8249}
)

// adjustFromV2BlackPoint maps XYZ zero to the version 4 reference black,
// keeping the reference white fixed.
func adjustFromV2BlackPoint(c CieXyz) CieXyz {
	return CieXyz{
		X: c.X*(1-perceptualBlack.X/perceptualWhite.X) + perceptualBlack.X,
		Y: c.Y*(1-perceptualBlack.Y/perceptualWhite.Y) + perceptualBlack.Y,
		Z: c.Z*(1-perceptualBlack.Z/perceptualWhite.Z) + perceptualBlack.Z,
	}
}

// adjustToV2BlackPoint is the inverse of adjustFromV2BlackPoint.
func adjustToV2BlackPoint(c CieXyz) CieXyz {
	sx := 1 / (1 - perceptualBlack.X/perceptualWhite.X)
	sy := 1 / (1 - perceptualBlack.Y/perceptualWhite.Y)
	sz := 1 / (1 - perceptualBlack.Z/perceptualWhite.Z)
	return CieXyz{
		X: c.X*sx - perceptualBlack.X*sx,
		Y: c.Y*sy - perceptualBlack.Y*sy,
		Z: c.Z*sz - perceptualBlack.Z*sz,
	}
}
