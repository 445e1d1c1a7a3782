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

import "strings"

// Cone response matrices for chromatic adaptation.  Each matrix maps XYZ
// values to a cone response domain (LMS).
//
// These variables must not be modified.  [AdaptationMatrixByName] and the
// defaults of [NewOptions] use copies made at initialisation.
var (
	Bradford = Matrix3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}
	BradfordSharp = Matrix3{
		{1.2694, -0.0988, -0.1706},
		{-0.8364, 1.8006, 0.0357},
		{0.0297, -0.0315, 1.0018},
	}
	VonKriesHPE = Matrix3{
		{0.3897, 0.6890, -0.0787},
		{-0.2298, 1.1834, 0.0464},
		{0, 0, 1},
	}
	VonKriesHPEAdjusted = Matrix3{
		{0.40024, 0.7076, -0.08081},
		{-0.2263, 1.16532, 0.0457},
		{0, 0, 0.91822},
	}
	XyzScaling = Identity3
	CAT02      = Matrix3{
		{0.7328, 0.4296, -0.1624},
		{-0.7036, 1.6975, 0.0061},
		{0.0030, 0.0136, 0.9834},
	}
	CMCCAT2000 = Matrix3{
		{0.7982, 0.3389, -0.1371},
		{-0.5918, 1.5512, 0.0406},
		{0.0008, 0.0239, 0.9753},
	}
)

var adaptationMatrices = map[string]Matrix3{
	"bradford":               Bradford,
	"bradford-sharp":         BradfordSharp,
	"von-kries-hpe":          VonKriesHPE,
	"von-kries-hpe-adjusted": VonKriesHPEAdjusted,
	"xyz-scaling":            XyzScaling,
	"cat02":                  CAT02,
	"cmccat2000":             CMCCAT2000,
}

// AdaptationMatrixByName returns one of the predefined cone response
// matrices.  Matching is case-insensitive.
func AdaptationMatrixByName(name string) (Matrix3, bool) {
	m, ok := adaptationMatrices[strings.ToLower(name)]
	return m, ok
}

// AdaptationMatrixNames returns the names accepted by
// [AdaptationMatrixByName].
func AdaptationMatrixNames() []string {
	return sortedKeys(adaptationMatrices)
}

// VonKriesAdaptation implements von Kries-type chromatic adaptation: XYZ
// values are mapped into a cone response domain, scaled by the ratio of
// the cone responses of the two white points, and mapped back.
//
// Use [NewVonKriesAdaptation] to create values of this type.
type VonKriesAdaptation struct {
	m, inv Matrix3
}

// NewVonKriesAdaptation returns the adaptation for the cone response
// matrix m.  An error is returned if m is not invertible.
func NewVonKriesAdaptation(m Matrix3) (*VonKriesAdaptation, error) {
	inv, ok := m.Inverse()
	if !ok {
		return nil, &SingularMatrixError{What: "adaptation matrix"}
	}
	return &VonKriesAdaptation{m: m, inv: inv}, nil
}

// Transform adapts c from the white point `from` to the white point `to`.
// If the two white points are identical, c is returned unchanged.
// No clamping is applied.
func (a *VonKriesAdaptation) Transform(c, from, to CieXyz) CieXyz {
	if from == to {
		return c
	}
	scale := a.scale(from, to)
	return a.apply(c, &scale)
}

// TransformSlice adapts every element of src and stores the result in dst.
// The scale factors are computed once for the whole slice.
//
// TransformSlice panics if dst is shorter than src.
func (a *VonKriesAdaptation) TransformSlice(src, dst []CieXyz, from, to CieXyz) {
	dst = dst[:len(src)]
	if from == to {
		copy(dst, src)
		return
	}
	scale := a.scale(from, to)
	for i, c := range src {
		dst[i] = a.apply(c, &scale)
	}
}

func (a *VonKriesAdaptation) scale(from, to CieXyz) Vector3 {
	coneFrom := a.m.Apply(from.vector())
	coneTo := a.m.Apply(to.vector())
	return Vector3{
		coneTo[0] / coneFrom[0],
		coneTo[1] / coneFrom[1],
		coneTo[2] / coneFrom[2],
	}
}

func (a *VonKriesAdaptation) apply(c CieXyz, scale *Vector3) CieXyz {
	cone := a.m.Apply(c.vector())
	cone[0] *= scale[0]
	cone[1] *= scale[1]
	cone[2] *= scale[2]
	return xyzFromVector(a.inv.Apply(cone))
}
