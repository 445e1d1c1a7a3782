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

	"github.com/lucasb-eyer/go-colorful"
)

var referenceColours = []colorful.Color{
	{R: 0.5, G: 0.25, B: 0.75},
	{R: 0.9, G: 0.1, B: 0.3},
	{R: 0.2, G: 0.7, B: 0.4},
	{R: 1, G: 0.5, B: 0},
	{R: 0.05, G: 0.02, B: 0.01},
}

func closeTo(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// go-colorful uses sRGB with a D65 reference white and slightly different
// matrix constants, so only approximate agreement is expected.
func TestAgainstColorful(t *testing.T) {
	c := newTestConverter(t, WithTargetWhitePoint(IlluminantD65))

	for _, col := range referenceColours {
		rgb := Rgb{R: col.R, G: col.G, B: col.B}

		l, a, b := col.Lab()
		lab := Convert[Rgb, CieLab](c, rgb)
		if !closeTo(lab.L, 100*l, 0.1) || !closeTo(lab.A, 100*a, 0.1) || !closeTo(lab.B, 100*b, 0.1) {
			t.Errorf("%v: Lab %v, colorful %.4f %.4f %.4f", rgb, lab, 100*l, 100*a, 100*b)
		}

		x, y, z := col.Xyz()
		xyz := Convert[Rgb, CieXyz](c, rgb)
		if !closeTo(xyz.X, x, 1e-3) || !closeTo(xyz.Y, y, 1e-3) || !closeTo(xyz.Z, z, 1e-3) {
			t.Errorf("%v: XYZ %v, colorful %.5f %.5f %.5f", rgb, xyz, x, y, z)
		}

		h, s, v := col.Hsv()
		hsv := Convert[Rgb, Hsv](c, rgb)
		if !closeTo(hsv.H, h, 1e-6) || !closeTo(hsv.S, s, 1e-6) || !closeTo(hsv.V, v, 1e-6) {
			t.Errorf("%v: HSV %v, colorful %g %g %g", rgb, hsv, h, s, v)
		}

		h, s, l = col.Hsl()
		hsl := Convert[Rgb, Hsl](c, rgb)
		if !closeTo(hsl.H, h, 1e-6) || !closeTo(hsl.S, s, 1e-6) || !closeTo(hsl.L, l, 1e-6) {
			t.Errorf("%v: HSL %v, colorful %g %g %g", rgb, hsl, h, s, l)
		}
	}
}
