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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sRGB primaries in XYZ (D50), from Bradford adaptation of the
// IEC 61966-2-1 matrix
var (
	srgbRed   = [3]float64{0.4360747, 0.2225045, 0.0139322}
	srgbGreen = [3]float64{0.3850649, 0.7168786, 0.0971045}
	srgbBlue  = [3]float64{0.1430804, 0.0606169, 0.7141733}
)

func srgbCurve() *Curve {
	return &Curve{
		FuncType: 3,
		Params:   []float64{2.4, 1 / 1.055, 0.055 / 1.055, 1 / 12.92, 0.04045},
	}
}

// toXYZ returns the decoded XYZ value of a device colour.
func toXYZ(tr *Transform, device []float64) (X, Y, Z float64) {
	pcs := tr.ToPCS(device)
	return pcs[0] / xyzEncodingScale, pcs[1] / xyzEncodingScale, pcs[2] / xyzEncodingScale
}

func srgbProfiles() []struct {
	name string
	p    *Profile
} {
	return []struct {
		name string
		p    *Profile
	}{
		{"v2", NewMatrixTRCProfile(Version2_1_0, Perceptual, srgbRed, srgbGreen, srgbBlue, d50WhitePoint, srgbCurve())},
		{"v4", NewMatrixTRCProfile(Version4_2_0, Perceptual, srgbRed, srgbGreen, srgbBlue, d50WhitePoint, srgbCurve())},
	}
}

func TestSRGBProfilesDecode(t *testing.T) {
	for _, tt := range srgbProfiles() {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode(tt.p.Encode())
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}

			if p.Class != DisplayDeviceProfile {
				t.Errorf("class = %v, want DisplayDeviceProfile", p.Class)
			}
			if p.ColorSpace != RGBSpace {
				t.Errorf("color space = %v, want RGB", p.ColorSpace)
			}
			if p.PCS != PCSXYZSpace {
				t.Errorf("PCS = %v, want PCSXYZ", p.PCS)
			}
			if p.Version != tt.p.Version {
				t.Errorf("version = %v, want %v", p.Version, tt.p.Version)
			}
			for i, want := range d50WhitePoint {
				if math.Abs(p.PCSIlluminant[i]-want) > 1e-4 {
					t.Errorf("PCS illuminant = %v, want %v", p.PCSIlluminant, d50WhitePoint)
					break
				}
			}
		})
	}
}

func TestSRGBProfilesRoundTrip(t *testing.T) {
	for _, tt := range srgbProfiles() {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode(tt.p.Encode())
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}

			q, err := Decode(p.Encode())
			if err != nil {
				t.Fatalf("re-decode failed: %v", err)
			}

			p.CheckSum = CheckSumMissing
			q.CheckSum = CheckSumMissing

			if diff := cmp.Diff(p, q); diff != "" {
				t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSRGBProfilesTransform(t *testing.T) {
	for _, tt := range srgbProfiles() {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewTransform(tt.p, DeviceToPCS, Perceptual)
			if err != nil {
				t.Fatalf("NewTransform failed: %v", err)
			}

			// D50 white point
			X, Y, Z := toXYZ(tr, []float64{1, 1, 1})
			if math.Abs(X-0.9642) > 0.02 || math.Abs(Y-1.0) > 0.02 || math.Abs(Z-0.8249) > 0.02 {
				t.Errorf("white -> XYZ = (%v, %v, %v), want D50 white point", X, Y, Z)
			}

			// black
			X, Y, Z = toXYZ(tr, []float64{0, 0, 0})
			if math.Abs(X) > 0.01 || math.Abs(Y) > 0.01 || math.Abs(Z) > 0.01 {
				t.Errorf("black -> XYZ = (%v, %v, %v), want near zero", X, Y, Z)
			}

			// luminance of red < green (standard sRGB property)
			_, yR, _ := toXYZ(tr, []float64{1, 0, 0})
			_, yG, _ := toXYZ(tr, []float64{0, 1, 0})
			if yR >= yG {
				t.Errorf("red luminance (%v) >= green luminance (%v)", yR, yG)
			}
		})
	}
}

func TestSRGBProfilesPrimaries(t *testing.T) {
	type xyz struct{ X, Y, Z float64 }
	primaries := []struct {
		name  string
		input []float64
		want  xyz
	}{
		{"red", []float64{1, 0, 0}, xyz{0.4361, 0.2225, 0.0139}},
		{"green", []float64{0, 1, 0}, xyz{0.3851, 0.7169, 0.0971}},
		{"blue", []float64{0, 0, 1}, xyz{0.1431, 0.0606, 0.7141}},
	}

	for _, tt := range srgbProfiles() {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewTransform(tt.p, DeviceToPCS, Perceptual)
			if err != nil {
				t.Fatalf("NewTransform failed: %v", err)
			}

			for _, pp := range primaries {
				t.Run(pp.name, func(t *testing.T) {
					X, Y, Z := toXYZ(tr, pp.input)
					const eps = 0.005
					if math.Abs(X-pp.want.X) > eps ||
						math.Abs(Y-pp.want.Y) > eps ||
						math.Abs(Z-pp.want.Z) > eps {
						t.Errorf("XYZ = (%.4f, %.4f, %.4f), want (%.4f, %.4f, %.4f)",
							X, Y, Z, pp.want.X, pp.want.Y, pp.want.Z)
					}
				})
			}
		})
	}
}

func TestSRGBProfilesDeviceRoundTrip(t *testing.T) {
	for _, tt := range srgbProfiles() {
		t.Run(tt.name, func(t *testing.T) {
			fwd, err := NewTransform(tt.p, DeviceToPCS, Perceptual)
			if err != nil {
				t.Fatalf("NewTransform(DeviceToPCS) failed: %v", err)
			}

			inv, err := NewTransform(tt.p, PCSToDevice, Perceptual)
			if err != nil {
				t.Fatalf("NewTransform(PCSToDevice) failed: %v", err)
			}

			inputs := [][]float64{
				{0, 0, 0},
				{1, 1, 1},
				{1, 0, 0},
				{0, 1, 0},
				{0, 0, 1},
				{0.5, 0.5, 0.5},
				{0.2, 0.4, 0.8},
			}

			for _, rgb := range inputs {
				X, Y, Z := toXYZ(fwd, rgb)
				back := inv.FromPCS([]float64{X * xyzEncodingScale, Y * xyzEncodingScale, Z * xyzEncodingScale})
				for i := range rgb {
					if math.Abs(back[i]-rgb[i]) > 0.02 {
						t.Errorf("round-trip %v -> XYZ(%v,%v,%v) -> %v",
							rgb, X, Y, Z, back)
						break
					}
				}

				pcs := fwd.ToPCS(rgb)
				back = inv.FromPCS(pcs)
				for i := range rgb {
					if math.Abs(back[i]-rgb[i]) > 0.02 {
						t.Errorf("PCS round-trip %v -> %v -> %v", rgb, pcs, back)
						break
					}
				}
			}
		})
	}
}

func TestToPCSEncoding(t *testing.T) {
	p := NewMatrixTRCProfile(Version4_2_0, Perceptual, srgbRed, srgbGreen, srgbBlue, d50WhitePoint, srgbCurve())
	tr, err := NewTransform(p, DeviceToPCS, Perceptual)
	if err != nil {
		t.Fatal(err)
	}

	pcs := tr.ToPCS([]float64{1, 1, 1})
	sum := func(i int) float64 { return srgbRed[i] + srgbGreen[i] + srgbBlue[i] }
	want := []float64{sum(0) * 32768 / 65535, sum(1) * 32768 / 65535, sum(2) * 32768 / 65535}
	for i := range want {
		if math.Abs(pcs[i]-want[i]) > 1e-9 {
			t.Errorf("ToPCS(white) = %v, want %v", pcs, want)
			break
		}
	}
	if tr.LegacyLabEncoding() {
		t.Error("XYZ profile reports legacy Lab encoding")
	}
}

func TestGrayProfile(t *testing.T) {
	p := NewGrayProfile(Version4_2_0, Perceptual, &Curve{Gamma: 2.2})
	fwd, err := NewTransform(p, DeviceToPCS, Perceptual)
	if err != nil {
		t.Fatal(err)
	}
	inv, err := NewTransform(p, PCSToDevice, Perceptual)
	if err != nil {
		t.Fatal(err)
	}

	for _, g := range []float64{0, 0.25, 0.5, 1} {
		back := inv.FromPCS(fwd.ToPCS([]float64{g}))
		if len(back) != 1 || math.Abs(back[0]-g) > 1e-6 {
			t.Errorf("gray round-trip %v -> %v", g, back)
		}
	}
}
