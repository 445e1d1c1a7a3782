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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptionsDefaults(t *testing.T) {
	o, err := NewOptions()
	if err != nil {
		t.Fatal(err)
	}
	if o.SourceWhitePoint() != IlluminantD50 || o.TargetWhitePoint() != IlluminantD50 {
		t.Errorf("white points %v, %v, want D50", o.SourceWhitePoint(), o.TargetWhitePoint())
	}
	if o.SourceRgbWorkingSpace().Name != SRgb.Name || o.TargetRgbWorkingSpace().Name != SRgb.Name {
		t.Error("default working space is not sRGB")
	}
	if o.AdaptationMatrix() != Bradford {
		t.Error("default adaptation matrix is not Bradford")
	}
	if o.LumaCoefficients() != LumaBT601 {
		t.Error("default luma coefficients are not BT.601")
	}
	if o.SourceIccProfile() != nil || o.TargetIccProfile() != nil {
		t.Error("unexpected ICC profiles")
	}
}

func TestOptionsInverses(t *testing.T) {
	o, err := NewOptions(
		WithAdaptationMatrix(CMCCAT2000),
		WithYCbCrTransform(YCbCrBT709),
	)
	if err != nil {
		t.Fatal(err)
	}

	m := o.AdaptationMatrix()
	inv := o.InverseAdaptationMatrix()
	if d := cmp.Diff(Identity3, m.Mul(&inv), approx); d != "" {
		t.Errorf("adaptation matrix inverse (-want +got):\n%s", d)
	}

	fwd := o.YCbCrTransform().Forward
	yInv := o.YCbCrInverse()
	if d := cmp.Diff(Identity3, fwd.Mul(&yInv), approx); d != "" {
		t.Errorf("YCbCr matrix inverse (-want +got):\n%s", d)
	}
}

func TestOptionsSingular(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"adaptation", WithAdaptationMatrix(Matrix3{{1, 0, 0}, {1, 0, 0}, {0, 0, 1}})},
		{"ycbcr", WithYCbCrTransform(YCbCrTransform{})},
		{"primaries", WithTargetRgbWorkingSpace(RgbWorkingSpace{WhitePoint: IlluminantD65})},
	}
	for _, tt := range tests {
		_, err := NewOptions(tt.opt)
		var singular *SingularMatrixError
		if !errors.As(err, &singular) {
			t.Errorf("%s: got error %v, want *SingularMatrixError", tt.name, err)
		}
	}
}

func TestOptionsNilCompanding(t *testing.T) {
	ws := SRgb
	ws.Companding = nil
	o, err := NewOptions(WithSourceRgbWorkingSpace(ws), WithTargetRgbWorkingSpace(ws))
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewConverter(o)
	if err != nil {
		t.Fatal(err)
	}
	in := Rgb{R: 0.2, G: 0.4, B: 0.6}
	got := Convert[Rgb, Rgb](c, in)
	if d := cmp.Diff(in, got, approx); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}

func TestDefaultsNotAliased(t *testing.T) {
	saved := Bradford
	savedSRgb := SRgb
	defer func() {
		Bradford = saved
		SRgb = savedSRgb
	}()
	Bradford[0][0] = 0
	SRgb.WhitePoint = IlluminantA

	o, err := NewOptions()
	if err != nil {
		t.Fatal(err)
	}
	if o.AdaptationMatrix() != saved {
		t.Errorf("default adaptation matrix changed to %v", o.AdaptationMatrix())
	}
	if o.SourceRgbWorkingSpace().WhitePoint != IlluminantD65 {
		t.Errorf("default working space white changed to %v", o.SourceRgbWorkingSpace().WhitePoint)
	}
	if m, _ := AdaptationMatrixByName("bradford"); m != saved {
		t.Errorf("AdaptationMatrixByName returned %v", m)
	}
	if ws, _ := WorkingSpaceByName("srgb"); ws.WhitePoint != IlluminantD65 {
		t.Errorf("WorkingSpaceByName returned white point %v", ws.WhitePoint)
	}
}
