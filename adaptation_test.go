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
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAdaptationSameWhite(t *testing.T) {
	a, err := NewVonKriesAdaptation(Bradford)
	if err != nil {
		t.Fatal(err)
	}
	c := CieXyz{X: 0.3, Y: 0.2, Z: 0.7}
	if got := a.Transform(c, IlluminantD65, IlluminantD65); got != c {
		t.Errorf("Transform with equal white points = %v, want %v", got, c)
	}
}

func TestAdaptationWhite(t *testing.T) {
	for _, name := range AdaptationMatrixNames() {
		m, _ := AdaptationMatrixByName(name)
		a, err := NewVonKriesAdaptation(m)
		if err != nil {
			t.Fatal(err)
		}
		got := a.Transform(IlluminantD65, IlluminantD65, IlluminantA)
		if d := cmp.Diff(IlluminantA, got, approx); d != "" {
			t.Errorf("%s: white not mapped to white (-want +got):\n%s", name, d)
		}
	}
}

// The Bradford-adapted sRGB primaries are the D50 matrix columns which
// appear in ICC sRGB profiles.
func TestAdaptationBradfordSRgb(t *testing.T) {
	a, err := NewVonKriesAdaptation(Bradford)
	if err != nil {
		t.Fatal(err)
	}
	red := CieXyz{X: 0.4124564, Y: 0.2126729, Z: 0.0193339}
	got := a.Transform(red, IlluminantD65, IlluminantD50)
	want := CieXyz{X: 0.4360747, Y: 0.2225045, Z: 0.0139322}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-4)); d != "" {
		t.Errorf("adapted red (-want +got):\n%s", d)
	}
}

func TestAdaptationLinear(t *testing.T) {
	a, err := NewVonKriesAdaptation(CAT02)
	if err != nil {
		t.Fatal(err)
	}
	x := CieXyz{X: 0.2, Y: 0.3, Z: 0.1}
	y := CieXyz{X: 0.5, Y: 0.1, Z: 0.4}
	sum := CieXyz{X: x.X + y.X, Y: x.Y + y.Y, Z: x.Z + y.Z}

	ax := a.Transform(x, IlluminantD50, IlluminantF11)
	ay := a.Transform(y, IlluminantD50, IlluminantF11)
	got := a.Transform(sum, IlluminantD50, IlluminantF11)
	want := CieXyz{X: ax.X + ay.X, Y: ax.Y + ay.Y, Z: ax.Z + ay.Z}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("adaptation is not linear (-want +got):\n%s", d)
	}
}

func TestAdaptationSlice(t *testing.T) {
	a, err := NewVonKriesAdaptation(Bradford)
	if err != nil {
		t.Fatal(err)
	}
	src := []CieXyz{
		{X: 0.1, Y: 0.2, Z: 0.3},
		{X: 0.9, Y: 1, Z: 1.1},
		{},
		{X: -0.1, Y: 0.5, Z: 2},
	}
	dst := make([]CieXyz, len(src))
	a.TransformSlice(src, dst, IlluminantD65, IlluminantD50)
	for i, c := range src {
		want := a.Transform(c, IlluminantD65, IlluminantD50)
		if d := cmp.Diff(want, dst[i], approx); d != "" {
			t.Errorf("element %d (-want +got):\n%s", i, d)
		}
	}
}

func TestAdaptationSingular(t *testing.T) {
	_, err := NewVonKriesAdaptation(Matrix3{})
	var singular *SingularMatrixError
	if !errors.As(err, &singular) {
		t.Errorf("got error %v, want *SingularMatrixError", err)
	}
}
