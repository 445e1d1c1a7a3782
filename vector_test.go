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

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestMatrixInverse(t *testing.T) {
	names := AdaptationMatrixNames()
	if len(names) != 7 {
		t.Fatalf("got %d adaptation matrices, want 7", len(names))
	}
	for _, name := range names {
		m, ok := AdaptationMatrixByName(name)
		if !ok {
			t.Fatalf("matrix %q not found", name)
		}
		inv, ok := m.Inverse()
		if !ok {
			t.Errorf("%s: matrix is singular", name)
			continue
		}
		got := m.Mul(&inv)
		if d := cmp.Diff(Identity3, got, approx); d != "" {
			t.Errorf("%s: M·M⁻¹ != I (-want +got):\n%s", name, d)
		}
	}
}

func TestMatrixSingular(t *testing.T) {
	m := Matrix3{
		{1, 2, 3},
		{2, 4, 6},
		{0, 0, 1},
	}
	if _, ok := m.Inverse(); ok {
		t.Error("singular matrix reported as invertible")
	}
}

func TestMatrixApply(t *testing.T) {
	m := Matrix3{
		{1, 2, 3},
		{0, 1, 0},
		{-1, 0, 2},
	}
	got := m.Apply(Vector3{1, 2, 3})
	want := Vector3{14, 2, 5}
	if got != want {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestNormaliseDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{-90, 270},
		{725, 5},
	}
	for _, tt := range tests {
		got := normaliseDegrees(tt.in)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("normaliseDegrees(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}
