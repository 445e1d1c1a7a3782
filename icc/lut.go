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

import "fmt"

// LutType identifies the tag type used to store a lookup table.
type LutType uint32

// These are the lookup table tag types of the ICC specification.
const (
	Lut8Type    LutType = 0x6D667431 // "mft1"
	Lut16Type   LutType = 0x6D667432 // "mft2"
	LutAToBType LutType = 0x6D414220 // "mAB "
	LutBToAType LutType = 0x6D424120 // "mBA "
)

func (t LutType) String() string {
	switch t {
	case Lut8Type:
		return "lut8"
	case Lut16Type:
		return "lut16"
	case LutAToBType:
		return "lutAToB"
	case LutBToAType:
		return "lutBToA"
	}
	return fmt.Sprintf("LutType(0x%08X)", uint32(t))
}

// A Lut is a decoded lookup table tag.  The table is evaluated as a
// pipeline of processing stages.  All input and output values are in the
// range [0, 1].
//
// A Lut is read-only after decoding and can be used concurrently.
type Lut struct {
	Type LutType

	in, out int
	stages  []stage
}

// InputChannels returns the number of input values of the table.
func (l *Lut) InputChannels() int {
	return l.in
}

// OutputChannels returns the number of output values of the table.
func (l *Lut) OutputChannels() int {
	return l.out
}

// Apply evaluates the table.  Missing input values are taken to be zero.
func (l *Lut) Apply(input []float64) []float64 {
	v := make([]float64, l.in)
	copy(v, input)
	for _, s := range l.stages {
		v = s.apply(v)
	}
	return v
}

// stage is one step of a lookup table pipeline.  Stages may modify their
// argument.
type stage interface {
	apply(v []float64) []float64
}

// curveSet applies one curve per channel.
type curveSet []*Curve

func (cs curveSet) apply(v []float64) []float64 {
	for i, c := range cs {
		v[i] = c.Evaluate(v[i])
	}
	return v
}

// inverseCurveSet applies the inverse of one curve per channel.
type inverseCurveSet []*Curve

func (cs inverseCurveSet) apply(v []float64) []float64 {
	for i, c := range cs {
		v[i] = c.Invert(v[i])
	}
	return v
}

// matrixStage maps three channels through an affine map.  The result is
// clamped to [lo, hi].
type matrixStage struct {
	m      [9]float64
	offset [3]float64
	lo, hi float64
}

func (s *matrixStage) apply(v []float64) []float64 {
	x, y, z := v[0], v[1], v[2]
	for i := 0; i < 3; i++ {
		r := s.m[3*i]*x + s.m[3*i+1]*y + s.m[3*i+2]*z + s.offset[i]
		v[i] = clamp(r, s.lo, s.hi)
	}
	return v
}

func (s *matrixStage) isIdentity() bool {
	return s.m == [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1} && s.offset == [3]float64{}
}

// DecodeLut decodes a lookup table tag of any of the types lut8Type,
// lut16Type, lutAToBType and lutBToAType.
func DecodeLut(data []byte) (*Lut, error) {
	if len(data) < 12 {
		return nil, errInvalidTagData
	}
	switch t := LutType(getUint32(data, 0)); t {
	case Lut8Type, Lut16Type:
		return decodeMft(data, t)
	case LutAToBType, LutBToAType:
		return decodeMAB(data, t)
	}
	return nil, errUnexpectedType
}

func validChannels(in, out int) bool {
	return in >= 1 && in <= maxChannels && out >= 1 && out <= maxChannels
}

// decodeMft decodes the lut8Type and lut16Type formats.  These apply an
// optional matrix (for XYZ input), input curves, a CLUT and output curves.
func decodeMft(data []byte, t LutType) (*Lut, error) {
	if len(data) < 48 {
		return nil, errInvalidTagData
	}
	in, out, grid := int(data[8]), int(data[9]), int(data[10])
	if !validChannels(in, out) || grid < 2 {
		return nil, errInvalidTagData
	}

	m := &matrixStage{lo: 0, hi: 1}
	for i := range m.m {
		m.m[i] = getS15Fixed16(data, 12+4*i)
	}

	r := &sampleReader{data: data, pos: 48, size: 1}
	inEntries, outEntries := 256, 256
	if t == Lut16Type {
		if len(data) < 52 {
			return nil, errInvalidTagData
		}
		inEntries = int(getUint16(data, 48))
		outEntries = int(getUint16(data, 50))
		if inEntries < 2 || outEntries < 2 {
			return nil, errInvalidTagData
		}
		r.pos = 52
		r.size = 2
	}

	inCurves, err := r.curves(in, inEntries)
	if err != nil {
		return nil, err
	}
	gridSizes := make([]int, in)
	for i := range gridSizes {
		gridSizes[i] = grid
	}
	c, err := r.clut(gridSizes, out)
	if err != nil {
		return nil, err
	}
	outCurves, err := r.curves(out, outEntries)
	if err != nil {
		return nil, err
	}

	l := &Lut{Type: t, in: in, out: out}
	if in == 3 && !m.isIdentity() {
		l.stages = append(l.stages, m)
	}
	l.stages = append(l.stages, inCurves, c, outCurves)
	return l, nil
}

// decodeMAB decodes the lutAToBType and lutBToAType formats.
//
// lutAToBType applies A curves, CLUT, M curves, matrix and B curves, in this
// order.  lutBToAType applies the same elements in reverse order.  Only the
// B curves are mandatory.
func decodeMAB(data []byte, t LutType) (*Lut, error) {
	if len(data) < 32 {
		return nil, errInvalidTagData
	}
	in, out := int(data[8]), int(data[9])
	if !validChannels(in, out) {
		return nil, errInvalidTagData
	}
	offB := getUint32(data, 12)
	offMatrix := getUint32(data, 16)
	offM := getUint32(data, 20)
	offCLUT := getUint32(data, 24)
	offA := getUint32(data, 28)
	if offB == 0 {
		return nil, errInvalidTagData
	}

	// number of channels on the "B" side and on the "A" side
	aSide, bSide := in, out
	if t == LutBToAType {
		aSide, bSide = out, in
	}
	if offCLUT == 0 && in != out {
		return nil, errInvalidTagData
	}
	if (offMatrix != 0 || offM != 0) && bSide != 3 {
		return nil, errInvalidTagData
	}

	var a, m, b stage
	var c *clut
	var mat *matrixStage
	var err error

	b, err = decodeCurveSeq(data, offB, bSide)
	if err != nil {
		return nil, err
	}
	if offM != 0 {
		if m, err = decodeCurveSeq(data, offM, bSide); err != nil {
			return nil, err
		}
	}
	if offMatrix != 0 {
		if mat, err = decodeMatrix(data, offMatrix); err != nil {
			return nil, err
		}
	}
	if offCLUT != 0 {
		if c, err = decodeMABCLUT(data, offCLUT, make([]int, in), out); err != nil {
			return nil, err
		}
	}
	if offA != 0 {
		if a, err = decodeCurveSeq(data, offA, aSide); err != nil {
			return nil, err
		}
	}

	var order []stage
	if t == LutAToBType {
		order = []stage{a, clutOrNil(c), m, matrixOrNil(mat), b}
	} else {
		order = []stage{b, matrixOrNil(mat), m, clutOrNil(c), a}
	}
	l := &Lut{Type: t, in: in, out: out}
	for _, s := range order {
		if s != nil {
			l.stages = append(l.stages, s)
		}
	}
	return l, nil
}

// clutOrNil and matrixOrNil avoid storing typed nil pointers in a stage
// interface.
func clutOrNil(c *clut) stage {
	if c == nil {
		return nil
	}
	return c
}

func matrixOrNil(m *matrixStage) stage {
	if m == nil {
		return nil
	}
	return m
}

// decodeCurveSeq decodes n consecutive curve elements, each padded to a
// multiple of four bytes.
func decodeCurveSeq(data []byte, offset uint32, n int) (curveSet, error) {
	pos := int64(offset)
	res := make(curveSet, n)
	for i := range res {
		if pos > int64(len(data)) {
			return nil, errInvalidTagData
		}
		c, err := DecodeCurve(data[pos:])
		if err != nil {
			return nil, err
		}
		res[i] = c
		pos += int64(curveSize(data[pos:])+3) &^ 3
	}
	return res, nil
}

// curveSize returns the length of a curve element which has already been
// decoded successfully.
func curveSize(data []byte) int {
	if string(data[:4]) == "curv" {
		return 12 + 2*int(getUint32(data, 8))
	}
	return 12 + 4*paramCount[getUint16(data, 8)]
}

func decodeMatrix(data []byte, offset uint32) (*matrixStage, error) {
	if int64(offset)+48 > int64(len(data)) {
		return nil, errInvalidTagData
	}
	pos := int(offset)
	m := &matrixStage{lo: 0, hi: 1}
	for i := range m.m {
		m.m[i] = getS15Fixed16(data, pos+4*i)
	}
	for i := range m.offset {
		m.offset[i] = getS15Fixed16(data, pos+36+4*i)
	}
	return m, nil
}

// decodeMABCLUT reads a CLUT with its own grid sizes and precision.  The
// length of grid gives the number of inputs.
func decodeMABCLUT(data []byte, offset uint32, grid []int, out int) (*clut, error) {
	if int64(offset)+20 > int64(len(data)) {
		return nil, errInvalidTagData
	}
	pos := int(offset)
	for i := range grid {
		grid[i] = int(data[pos+i])
	}
	size := int(data[pos+16])
	if size != 1 && size != 2 {
		return nil, errInvalidTagData
	}
	r := &sampleReader{data: data, pos: pos + 20, size: size}
	return r.clut(grid, out)
}

// sampleReader reads consecutive 8 or 16 bit samples.
type sampleReader struct {
	data []byte
	pos  int
	size int
}

// take reads n samples, scaled to 16 bits.
func (r *sampleReader) take(n int) ([]uint16, error) {
	if n < 0 || n > (len(r.data)-r.pos)/r.size {
		return nil, errInvalidTagData
	}
	res := make([]uint16, n)
	for i := range res {
		if r.size == 1 {
			b := uint16(r.data[r.pos+i])
			res[i] = b<<8 | b
		} else {
			res[i] = getUint16(r.data, r.pos+2*i)
		}
	}
	r.pos += n * r.size
	return res, nil
}

func (r *sampleReader) curves(n, entries int) (curveSet, error) {
	res := make(curveSet, n)
	for i := range res {
		table, err := r.take(entries)
		if err != nil {
			return nil, err
		}
		res[i] = &Curve{Table: table}
	}
	return res, nil
}

func (r *sampleReader) clut(grid []int, out int) (*clut, error) {
	c, err := newCLUT(grid, out)
	if err != nil {
		return nil, err
	}
	samples, err := r.take(len(c.data))
	if err != nil {
		return nil, err
	}
	for i, s := range samples {
		c.data[i] = float64(s) / 65535
	}
	return c, nil
}
