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
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Standard illuminants, given as XYZ tristimulus values with Y = 1
// (CIE 1931 2° observer).  These variables must not be modified; the
// library itself works with copies made at initialisation.
var (
	IlluminantA   = CieXyz{X: 1.09850, Y: 1, Z: 0.35585} // incandescent / tungsten
	IlluminantB   = CieXyz{X: 0.99072, Y: 1, Z: 0.85223} // direct sunlight at noon (obsolete)
	IlluminantC   = CieXyz{X: 0.98074, Y: 1, Z: 1.18232} // average / north sky daylight (obsolete)
	IlluminantD50 = CieXyz{X: 0.96422, Y: 1, Z: 0.82521} // horizon light, ICC profile PCS
	IlluminantD55 = CieXyz{X: 0.95682, Y: 1, Z: 0.92149} // mid-morning / mid-afternoon daylight
	IlluminantD65 = CieXyz{X: 0.95047, Y: 1, Z: 1.08883} // noon daylight, television, sRGB
	IlluminantD75 = CieXyz{X: 0.94972, Y: 1, Z: 1.22638} // north sky daylight
	IlluminantE   = CieXyz{X: 1, Y: 1, Z: 1}             // equal energy
	IlluminantF2  = CieXyz{X: 0.99186, Y: 1, Z: 0.67393} // cool white fluorescent
	IlluminantF7  = CieXyz{X: 0.95041, Y: 1, Z: 1.08747} // D65 simulator, daylight simulator
	IlluminantF11 = CieXyz{X: 1.00962, Y: 1, Z: 0.64350} // Philips TL84, Ultralume 40
)

var illuminants = map[string]CieXyz{
	"A":   IlluminantA,
	"B":   IlluminantB,
	"C":   IlluminantC,
	"D50": IlluminantD50,
	"D55": IlluminantD55,
	"D65": IlluminantD65,
	"D75": IlluminantD75,
	"E":   IlluminantE,
	"F2":  IlluminantF2,
	"F7":  IlluminantF7,
	"F11": IlluminantF11,
}

// IlluminantByName returns the standard illuminant with the given name,
// e.g. "D65".  Names are matched case-insensitively.
func IlluminantByName(name string) (CieXyz, bool) {
	wp, ok := illuminants[strings.ToUpper(name)]
	return wp, ok
}

// IlluminantNames returns the names accepted by [IlluminantByName].
func IlluminantNames() []string {
	return sortedKeys(illuminants)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
