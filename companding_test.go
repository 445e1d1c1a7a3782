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
	"math"
	"testing"
)

func TestCompandingRoundTrip(t *testing.T) {
	compandings := []struct {
		name string
		c    Companding
	}{
		{"sRGB", SRgbCompanding{}},
		{"gamma 1.8", GammaCompanding{1.8}},
		{"gamma 2.2", GammaCompanding{2.2}},
		{"L*", LCompanding{}},
		{"Rec709", Rec709Companding{}},
		{"Rec2020", Rec2020Companding{}},
		{"linear", LinearCompanding{}},
	}
	inputs := []float64{0, 0.001, 0.01, 0.018, 0.05, 0.09, 0.1, 0.25, 0.5, 0.75, 1}

	for _, tc := range compandings {
		for _, x := range inputs {
			y := tc.c.Expand(x)
			xBack := tc.c.Compress(y)
			if math.Abs(xBack-x) > 1e-9 {
				t.Errorf("%s: round-trip failed: %g -> %g -> %g", tc.name, x, y, xBack)
			}
		}
		if got := tc.c.Expand(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s: Expand(1) = %g, want 1", tc.name, got)
		}
	}
}

func TestCompandingContinuity(t *testing.T) {
	// the two branches of the piecewise functions must (nearly) meet;
	// the rounded Rec. 709 constants leave a gap of about 2.5e-4
	tests := []struct {
		name string
		c    Companding
		x    float64
	}{
		{"sRGB", SRgbCompanding{}, 0.0031308},
		{"L*", LCompanding{}, cieEpsilon},
		{"Rec709", Rec709Companding{}, 0.018},
		{"Rec2020", Rec2020Companding{}, rec2020Beta},
	}
	for _, tt := range tests {
		lo := tt.c.Compress(tt.x - 1e-9)
		hi := tt.c.Compress(tt.x + 1e-9)
		if math.Abs(hi-lo) > 1e-3 {
			t.Errorf("%s: jump at %g: %g vs %g", tt.name, tt.x, lo, hi)
		}
	}
}

func TestGammaNegative(t *testing.T) {
	c := GammaCompanding{2.2}
	if got, want := c.Expand(-0.5), -math.Pow(0.5, 2.2); math.Abs(got-want) > 1e-12 {
		t.Errorf("Expand(-0.5) = %g, want %g", got, want)
	}
}

func TestCompandingSlice(t *testing.T) {
	v := []Vector4{{0.5, 0.25, 1, 0.3}, {0, 1, 0.75, 0.9}}
	orig := append([]Vector4(nil), v...)

	ExpandSlice(SRgbCompanding{}, v)
	for i := range v {
		if v[i][3] != orig[i][3] {
			t.Errorf("alpha lane changed: %g -> %g", orig[i][3], v[i][3])
		}
		for j := 0; j < 3; j++ {
			want := SRgbCompanding{}.Expand(orig[i][j])
			if v[i][j] != want {
				t.Errorf("v[%d][%d] = %g, want %g", i, j, v[i][j], want)
			}
		}
	}

	CompressSlice(SRgbCompanding{}, v)
	for i := range v {
		for j := 0; j < 4; j++ {
			if math.Abs(v[i][j]-orig[i][j]) > 1e-12 {
				t.Errorf("round-trip v[%d][%d] = %g, want %g", i, j, v[i][j], orig[i][j])
			}
		}
	}
}
