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

package icc

import (
	"errors"
	"math"
)

// Direction specifies the direction of a colour transformation.
type Direction int

const (
	// DeviceToPCS converts from device colour space to Profile Connection Space.
	DeviceToPCS Direction = iota
	// PCSToDevice converts from Profile Connection Space to device colour space.
	PCSToDevice
)

func (d Direction) String() string {
	if d == PCSToDevice {
		return "PCS to device"
	}
	return "device to PCS"
}

// ErrNoTransform is returned by [NewTransform] if the profile has none of
// the tags needed for the requested direction.  Input profiles, for
// example, often only contain AToB tags.
var ErrNoTransform = errors.New("icc: profile has no transform in this direction")

// Transform converts colours between the device space of an ICC profile
// and its profile connection space (PCS).
//
// PCS values use the ICC-normalised encoding, where every component lies in
// [0, 1]:
//   - for Lab, the encoding is (L/100, (a+128)/255, (b+128)/255),
//   - for XYZ, 1.0 corresponds to the u1Fixed15Number 0x8000, so that the
//     encoded value is XYZ·32768/65535.
//
// A Transform is immutable and can be used from several goroutines
// concurrently.
type Transform struct {
	dir    Direction
	method string
	pcs    ColorSpace
	lut    *Lut
	stages []stage
}

// stageFunc turns a function into a pipeline stage.
type stageFunc func([]float64) []float64

func (f stageFunc) apply(v []float64) []float64 {
	return f(v)
}

// NewTransform creates a colour transform from an ICC profile.
//
// LUT-based transforms are preferred.  The intent selects one of the AToB
// (or BToA) tags; if the tag for the intent is missing, the tag for the
// perceptual intent is used.  Otherwise, matrix/TRC and gray TRC profiles are
// supported.
func NewTransform(p *Profile, dir Direction, intent RenderingIntent) (*Transform, error) {
	if p.PCS != PCSXYZSpace && p.PCS != PCSLabSpace {
		return nil, errors.New("icc: unsupported profile connection space " + p.PCS.String())
	}
	t := &Transform{dir: dir, pcs: p.PCS}

	white := p.PCSIlluminant
	if white == ([3]float64{}) {
		white = d50WhitePoint
	}

	var err error
	if data, ok := lutTag(p, dir, intent); ok {
		t.method = "LUT"
		t.lut, err = DecodeLut(data)
		if err == nil {
			t.stages = []stage{stageFunc(t.lut.Apply)}
		}
	} else if hasTags(p, RedMatrixColumn, GreenMatrixColumn, BlueMatrixColumn, RedTRC, GreenTRC, BlueTRC) {
		t.method = "matrix/TRC"
		t.stages, err = matrixStages(p, dir)
	} else if hasTags(p, GrayTRC) {
		t.method = "gray TRC"
		t.stages, err = grayStages(p, dir)
	} else {
		return nil, ErrNoTransform
	}
	if err != nil {
		return nil, err
	}

	if t.lut == nil {
		// the analytic pipelines work on absolute XYZ values
		if dir == DeviceToPCS {
			t.stages = append(t.stages, encodePCS(p.PCS, white))
		} else {
			t.stages = append([]stage{decodePCS(p.PCS, white)}, t.stages...)
		}
	}
	return t, nil
}

// lutTag finds the lookup table for the given direction and intent.
func lutTag(p *Profile, dir Direction, intent RenderingIntent) ([]byte, bool) {
	tags := [3]TagType{AToB0, AToB1, AToB2}
	if dir == PCSToDevice {
		tags = [3]TagType{BToA0, BToA1, BToA2}
	}
	idx := 0
	switch intent {
	case RelativeColorimetric, AbsoluteColorimetric:
		idx = 1
	case Saturation:
		idx = 2
	}
	if data, ok := p.TagData[tags[idx]]; ok {
		return data, true
	}
	data, ok := p.TagData[tags[0]]
	return data, ok
}

func hasTags(p *Profile, tags ...TagType) bool {
	for _, tag := range tags {
		if _, ok := p.TagData[tag]; !ok {
			return false
		}
	}
	return true
}

// matrixStages builds the pipeline of a three-component matrix/TRC profile.
// Device values are linearised by the TRCs, and the matrix columns give the
// XYZ values of the primaries.
func matrixStages(p *Profile, dir Direction) ([]stage, error) {
	var cols [3][3]float64
	for i, tag := range []TagType{RedMatrixColumn, GreenMatrixColumn, BlueMatrixColumn} {
		xyz, err := decodeXYZTag(p.TagData[tag])
		if err != nil {
			return nil, err
		}
		cols[i] = xyz
	}
	trc := make([]*Curve, 3)
	for i, tag := range []TagType{RedTRC, GreenTRC, BlueTRC} {
		c, err := DecodeCurve(p.TagData[tag])
		if err != nil {
			return nil, err
		}
		trc[i] = c
	}

	m := &matrixStage{lo: math.Inf(-1), hi: math.Inf(1)}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m.m[3*row+col] = cols[col][row]
		}
	}
	if dir == DeviceToPCS {
		return []stage{curveSet(trc), m}, nil
	}

	inv, ok := invert3x3(m.m)
	if !ok {
		return nil, errors.New("icc: singular colourant matrix")
	}
	return []stage{
		&matrixStage{m: inv, lo: 0, hi: 1},
		inverseCurveSet(trc),
	}, nil
}

// grayStages builds the pipeline of a gray TRC profile.  The achromatic
// PCS values are multiples of the PCS illuminant.
func grayStages(p *Profile, dir Direction) ([]stage, error) {
	trc, err := DecodeCurve(p.TagData[GrayTRC])
	if err != nil {
		return nil, err
	}
	white := p.PCSIlluminant
	if white[1] == 0 {
		white = d50WhitePoint
	}

	if dir == DeviceToPCS {
		toXYZ := func(v []float64) []float64 {
			y := v[0]
			return []float64{white[0] * y, white[1] * y, white[2] * y}
		}
		return []stage{curveSet{trc}, stageFunc(toXYZ)}, nil
	}
	fromXYZ := func(v []float64) []float64 {
		return []float64{clamp(v[1]/white[1], 0, 1)}
	}
	return []stage{stageFunc(fromXYZ), inverseCurveSet{trc}}, nil
}

func decodeXYZTag(data []byte) ([3]float64, error) {
	if err := checkType("XYZ ", data); err != nil {
		return [3]float64{}, err
	}
	if len(data) < 20 {
		return [3]float64{}, errInvalidTagData
	}
	return getXYZ(data, 8), nil
}

// xyzEncodingScale maps XYZ values to the ICC-normalised XYZ encoding.
const xyzEncodingScale = 32768.0 / 65535.0

// encodePCS returns a stage which maps absolute XYZ values to the
// normalised PCS encoding.
func encodePCS(pcs ColorSpace, white [3]float64) stage {
	if pcs == PCSLabSpace {
		return stageFunc(func(v []float64) []float64 {
			lab := xyzToLab([3]float64{v[0], v[1], v[2]}, white)
			return []float64{lab[0] / 100, (lab[1] + 128) / 255, (lab[2] + 128) / 255}
		})
	}
	return stageFunc(func(v []float64) []float64 {
		return []float64{v[0] * xyzEncodingScale, v[1] * xyzEncodingScale, v[2] * xyzEncodingScale}
	})
}

// decodePCS is the inverse of encodePCS.
func decodePCS(pcs ColorSpace, white [3]float64) stage {
	if pcs == PCSLabSpace {
		return stageFunc(func(v []float64) []float64 {
			lab := [3]float64{v[0] * 100, v[1]*255 - 128, v[2]*255 - 128}
			xyz := labToXYZ(lab, white)
			return xyz[:]
		})
	}
	return stageFunc(func(v []float64) []float64 {
		return []float64{v[0] / xyzEncodingScale, v[1] / xyzEncodingScale, v[2] / xyzEncodingScale}
	})
}

// ToPCS converts device values in the range [0, 1] to the normalised PCS
// encoding.  The transform must have been created with [DeviceToPCS],
// otherwise nil is returned.
func (t *Transform) ToPCS(device []float64) []float64 {
	if t.dir != DeviceToPCS {
		return nil
	}
	return t.run(device)
}

// FromPCS converts a value in the normalised PCS encoding to device values
// in the range [0, 1].  The transform must have been created with
// [PCSToDevice], otherwise nil is returned.
func (t *Transform) FromPCS(pcs []float64) []float64 {
	if t.dir != PCSToDevice {
		return nil
	}
	return t.run(pcs)
}

func (t *Transform) run(input []float64) []float64 {
	v := make([]float64, max(len(input), 3))
	copy(v, input)
	for _, s := range t.stages {
		v = s.apply(v)
	}
	return v
}

// Method describes how the transform is computed: "LUT", "matrix/TRC" or
// "gray TRC".
func (t *Transform) Method() string {
	return t.method
}

// LegacyLabEncoding reports whether the PCS values of the transform use the
// ICC version 2 16-bit Lab encoding, where 0xFF00 represents L=100.
// This is the case for lut16Type tags, independent of the profile version.
func (t *Transform) LegacyLabEncoding() bool {
	return t.pcs == PCSLabSpace && t.lut != nil && t.lut.Type == Lut16Type
}

// labF is the cube root function of the CIE Lab definition.
func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

func labFInv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

func xyzToLab(xyz, white [3]float64) [3]float64 {
	fx := labF(xyz[0] / white[0])
	fy := labF(xyz[1] / white[1])
	fz := labF(xyz[2] / white[2])
	return [3]float64{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

func labToXYZ(lab, white [3]float64) [3]float64 {
	fy := (lab[0] + 16) / 116
	fx := fy + lab[1]/500
	fz := fy - lab[2]/200
	return [3]float64{
		white[0] * labFInv(fx),
		white[1] * labFInv(fy),
		white[2] * labFInv(fz),
	}
}

// invert3x3 inverts a row-major 3x3 matrix using the adjugate.
func invert3x3(m [9]float64) ([9]float64, bool) {
	cof := [9]float64{
		m[4]*m[8] - m[5]*m[7], m[2]*m[7] - m[1]*m[8], m[1]*m[5] - m[2]*m[4],
		m[5]*m[6] - m[3]*m[8], m[0]*m[8] - m[2]*m[6], m[2]*m[3] - m[0]*m[5],
		m[3]*m[7] - m[4]*m[6], m[1]*m[6] - m[0]*m[7], m[0]*m[4] - m[1]*m[3],
	}
	det := m[0]*cof[0] + m[1]*cof[3] + m[2]*cof[6]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return [9]float64{}, false
	}
	for i := range cof {
		cof[i] /= det
	}
	return cof, true
}
