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
	"errors"

	"seehuhn.de/go/colorconv/icc"
)

// IccDeviceProfile is an [IccProfile] backed by the transforms of package
// icc.  Matrix/TRC, gray TRC and LUT-based profiles are supported.
//
// Profiles which only contain tags for one direction, like most input
// profiles, can be used on the side of a conversion which needs that
// direction.  See [IccDeviceProfile.HasTransform].
type IccDeviceProfile struct {
	header   IccHeader
	channels int

	toPcs   *icc.Transform // nil if the profile has no device to PCS tags
	fromPcs *icc.Transform // nil if the profile has no PCS to device tags
}

var _ IccProfile = (*IccDeviceProfile)(nil)

// NewIccProfile prepares the transforms of p for the given rendering
// intent.  The returned profile reports intent as its rendering intent.
//
// An error is returned if p has no usable transform in either direction,
// or if the tags for one direction are present but cannot be decoded.
func NewIccProfile(p *icc.Profile, intent icc.RenderingIntent) (*IccDeviceProfile, error) {
	toPcs, err := optionalTransform(p, icc.DeviceToPCS, intent)
	if err != nil {
		return nil, err
	}
	fromPcs, err := optionalTransform(p, icc.PCSToDevice, intent)
	if err != nil {
		return nil, err
	}
	if toPcs == nil && fromPcs == nil {
		return nil, icc.ErrNoTransform
	}

	channels := p.ColorSpace.NumComponents()
	if channels < 1 || channels > 4 {
		channels = 3
	}

	return &IccDeviceProfile{
		header: IccHeader{
			ProfileConnectionSpace: p.PCS,
			RenderingIntent:        intent,
			Version:                p.Version,
			PcsIlluminant: CieXyz{
				X: p.PCSIlluminant[0],
				Y: p.PCSIlluminant[1],
				Z: p.PCSIlluminant[2],
			},
		},
		channels: channels,
		toPcs:    toPcs,
		fromPcs:  fromPcs,
	}, nil
}

// optionalTransform returns nil, without an error, if p has no tags for
// the direction dir.
func optionalTransform(p *icc.Profile, dir icc.Direction, intent icc.RenderingIntent) (*icc.Transform, error) {
	tr, err := icc.NewTransform(p, dir, intent)
	if errors.Is(err, icc.ErrNoTransform) {
		return nil, nil
	}
	return tr, err
}

// NewIccProfileFromWorkingSpace synthesises a matrix/TRC display profile
// for an RGB working space.  The primaries are adapted to the D50 PCS
// using the Bradford transform.
func NewIccProfileFromWorkingSpace(ws RgbWorkingSpace, version icc.Version, intent icc.RenderingIntent) (*IccDeviceProfile, error) {
	m, ok := ws.RgbToXyzMatrix()
	if !ok {
		return nil, &SingularMatrixError{What: "working space primaries"}
	}
	adapt, err := NewVonKriesAdaptation(adaptationMatrices["bradford"])
	if err != nil {
		return nil, err
	}

	var cols [3][3]float64
	for j := 0; j < 3; j++ {
		c := adapt.Transform(CieXyz{X: m[0][j], Y: m[1][j], Z: m[2][j]}, ws.WhitePoint, pcsD50)
		cols[j] = [3]float64{c.X, c.Y, c.Z}
	}

	trc := compandingCurve(ws.Companding)
	white := [3]float64{pcsD50.X, pcsD50.Y, pcsD50.Z}
	p := icc.NewMatrixTRCProfile(version, intent, cols[0], cols[1], cols[2], white, trc)
	return NewIccProfile(p, intent)
}

// compandingCurve returns an ICC tone reproduction curve for c.
// Transfer functions without a parametric ICC form are sampled.
func compandingCurve(c Companding) *icc.Curve {
	switch c := c.(type) {
	case nil, LinearCompanding:
		return &icc.Curve{Gamma: 1}
	case GammaCompanding:
		return &icc.Curve{FuncType: 0, Params: []float64{c.Gamma}}
	case SRgbCompanding:
		return &icc.Curve{
			FuncType: 3,
			Params:   []float64{2.4, 1 / 1.055, 0.055 / 1.055, 1 / 12.92, 0.04045},
		}
	}

	const n = 1024
	table := make([]uint16, n)
	for i := range table {
		y := c.Expand(float64(i) / (n - 1))
		table[i] = uint16(clamp01(y)*65535 + 0.5)
	}
	return &icc.Curve{Table: table}
}

// Header implements the [IccProfile] interface.
func (p *IccDeviceProfile) Header() IccHeader {
	return p.header
}

// HasTransform reports whether the profile can convert in direction dir.
func (p *IccDeviceProfile) HasTransform(dir icc.Direction) bool {
	if dir == icc.DeviceToPCS {
		return p.toPcs != nil
	}
	return p.fromPcs != nil
}

// DeviceToPcs implements the [IccProfile] interface.
// It panics if the profile has no device to PCS transform.
func (p *IccDeviceProfile) DeviceToPcs(v Vector4) Vector4 {
	p.mustHave(icc.DeviceToPCS)
	out := p.toPcs.ToPCS(v[:p.channels])
	var res Vector4
	copy(res[:], out)
	res[3] = 1
	return res
}

// PcsToDevice implements the [IccProfile] interface.
// Gray values are replicated into the first three lanes.
// It panics if the profile has no PCS to device transform.
func (p *IccDeviceProfile) PcsToDevice(v Vector4) Vector4 {
	p.mustHave(icc.PCSToDevice)
	out := p.fromPcs.FromPCS(v[:3])
	res := Vector4{0, 0, 0, 1}
	switch len(out) {
	case 0:
	case 1:
		res[0], res[1], res[2] = out[0], out[0], out[0]
	default:
		copy(res[:], out)
	}
	return res
}

// DeviceToPcsSlice implements the [IccProfile] interface.
func (p *IccDeviceProfile) DeviceToPcsSlice(src, dst []Vector4) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = p.DeviceToPcs(v)
	}
}

// PcsToDeviceSlice implements the [IccProfile] interface.
func (p *IccDeviceProfile) PcsToDeviceSlice(src, dst []Vector4) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = p.PcsToDevice(v)
	}
}

func (p *IccDeviceProfile) mustHave(dir icc.Direction) {
	if !p.HasTransform(dir) {
		panic("colorconv: ICC profile has no " + dir.String() + " transform")
	}
}

// LegacyLabEncoding implements the [IccProfile] interface.
// It returns false for a direction the profile has no transform for.
func (p *IccDeviceProfile) LegacyLabEncoding(dir icc.Direction) bool {
	tr := p.toPcs
	if dir == icc.PCSToDevice {
		tr = p.fromPcs
	}
	return tr != nil && tr.LegacyLabEncoding()
}
