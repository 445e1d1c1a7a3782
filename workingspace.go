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

// CieXyChromaticity is a point in the CIE xy chromaticity diagram.
type CieXyChromaticity struct {
	X, Y float64
}

// RgbPrimaries gives the chromaticities of the red, green and blue
// primaries of an RGB working space.
type RgbPrimaries struct {
	R, G, B CieXyChromaticity
}

// RgbWorkingSpace describes an RGB colour space by its reference white,
// its primaries and its transfer function.
type RgbWorkingSpace struct {
	Name       string
	WhitePoint CieXyz
	Primaries  RgbPrimaries
	Companding Companding
}

// RgbToXyzMatrix returns the matrix which maps linear RGB values in the
// working space to XYZ values relative to the working space white point.
//
// The second return value is false if the primaries are degenerate.
func (ws *RgbWorkingSpace) RgbToXyzMatrix() (Matrix3, bool) {
	r := xyToXyz(ws.Primaries.R)
	g := xyToXyz(ws.Primaries.G)
	b := xyToXyz(ws.Primaries.B)
	if r == nil || g == nil || b == nil {
		return Matrix3{}, false
	}

	primaries := Matrix3{
		{r[0], g[0], b[0]},
		{r[1], g[1], b[1]},
		{r[2], g[2], b[2]},
	}
	inv, ok := primaries.Inverse()
	if !ok {
		return Matrix3{}, false
	}
	s := inv.Apply(ws.WhitePoint.vector())

	var m Matrix3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m[row][col] = primaries[row][col] * s[col]
		}
	}
	return m, true
}

// xyToXyz returns the XYZ value with Y = 1 for the given chromaticity,
// or nil if y is zero.
func xyToXyz(c CieXyChromaticity) *Vector3 {
	if c.Y == 0 {
		return nil
	}
	return &Vector3{c.X / c.Y, 1, (1 - c.X - c.Y) / c.Y}
}

var srgbPrimaries = RgbPrimaries{
	R: CieXyChromaticity{0.64, 0.33},
	G: CieXyChromaticity{0.30, 0.60},
	B: CieXyChromaticity{0.15, 0.06},
}

// Well-known RGB working spaces.  These variables must not be modified,
// see [WorkingSpaceByName].
var (
	SRgb = RgbWorkingSpace{
		Name:       "sRGB",
		WhitePoint: IlluminantD65,
		Primaries:  srgbPrimaries,
		Companding: SRgbCompanding{},
	}
	SRgbSimplified = RgbWorkingSpace{
		Name:       "sRGB Simplified",
		WhitePoint: IlluminantD65,
		Primaries:  srgbPrimaries,
		Companding: GammaCompanding{2.2},
	}
	Rec709 = RgbWorkingSpace{
		Name:       "Rec. 709",
		WhitePoint: IlluminantD65,
		Primaries:  srgbPrimaries,
		Companding: Rec709Companding{},
	}
	Rec2020 = RgbWorkingSpace{
		Name:       "Rec. 2020",
		WhitePoint: IlluminantD65,
		Primaries: RgbPrimaries{
			R: CieXyChromaticity{0.708, 0.292},
			G: CieXyChromaticity{0.170, 0.797},
			B: CieXyChromaticity{0.131, 0.046},
		},
		Companding: Rec2020Companding{},
	}
	AdobeRgb1998 = RgbWorkingSpace{
		Name:       "Adobe RGB (1998)",
		WhitePoint: IlluminantD65,
		Primaries: RgbPrimaries{
			R: CieXyChromaticity{0.64, 0.33},
			G: CieXyChromaticity{0.21, 0.71},
			B: CieXyChromaticity{0.15, 0.06},
		},
		Companding: GammaCompanding{2.2},
	}
	AppleSRgb = RgbWorkingSpace{
		Name:       "Apple sRGB",
		WhitePoint: IlluminantD65,
		Primaries: RgbPrimaries{
			R: CieXyChromaticity{0.625, 0.34},
			G: CieXyChromaticity{0.28, 0.595},
			B: CieXyChromaticity{0.155, 0.07},
		},
		Companding: GammaCompanding{1.8},
	}
	ProPhotoRgb = RgbWorkingSpace{
		Name:       "ProPhoto RGB",
		WhitePoint: IlluminantD50,
		Primaries: RgbPrimaries{
			R: CieXyChromaticity{0.7347, 0.2653},
			G: CieXyChromaticity{0.1596, 0.8404},
			B: CieXyChromaticity{0.0366, 0.0001},
		},
		Companding: GammaCompanding{1.8},
	}
	WideGamutRgb = RgbWorkingSpace{
		Name:       "Wide Gamut RGB",
		WhitePoint: IlluminantD50,
		Primaries: RgbPrimaries{
			R: CieXyChromaticity{0.735, 0.265},
			G: CieXyChromaticity{0.115, 0.826},
			B: CieXyChromaticity{0.157, 0.018},
		},
		Companding: GammaCompanding{2.2},
	}
	EciRgbV2 = RgbWorkingSpace{
		Name:       "ECI RGB v2",
		WhitePoint: IlluminantD50,
		Primaries: RgbPrimaries{
			R: CieXyChromaticity{0.67, 0.33},
			G: CieXyChromaticity{0.21, 0.71},
			B: CieXyChromaticity{0.14, 0.08},
		},
		Companding: LCompanding{},
	}
	CieRgb = RgbWorkingSpace{
		Name:       "CIE RGB",
		WhitePoint: IlluminantE,
		Primaries: RgbPrimaries{
			R: CieXyChromaticity{0.735, 0.265},
			G: CieXyChromaticity{0.274, 0.717},
			B: CieXyChromaticity{0.167, 0.009},
		},
		Companding: GammaCompanding{2.2},
	}
	NtscRgb = RgbWorkingSpace{
		Name:       "NTSC RGB",
		WhitePoint: IlluminantC,
		Primaries: RgbPrimaries{
			R: CieXyChromaticity{0.67, 0.33},
			G: CieXyChromaticity{0.21, 0.71},
			B: CieXyChromaticity{0.14, 0.08},
		},
		Companding: GammaCompanding{2.2},
	}
	PalSecamRgb = RgbWorkingSpace{
		Name:       "PAL/SECAM RGB",
		WhitePoint: IlluminantD65,
		Primaries: RgbPrimaries{
			R: CieXyChromaticity{0.64, 0.33},
			G: CieXyChromaticity{0.29, 0.60},
			B: CieXyChromaticity{0.15, 0.06},
		},
		Companding: GammaCompanding{2.2},
	}
	SmpteCRgb = RgbWorkingSpace{
		Name:       "SMPTE-C RGB",
		WhitePoint: IlluminantD65,
		Primaries: RgbPrimaries{
			R: CieXyChromaticity{0.63, 0.34},
			G: CieXyChromaticity{0.31, 0.595},
			B: CieXyChromaticity{0.155, 0.07},
		},
		Companding: GammaCompanding{2.2},
	}
	ColorMatchRgb = RgbWorkingSpace{
		Name:       "ColorMatch RGB",
		WhitePoint: IlluminantD50,
		Primaries: RgbPrimaries{
			R: CieXyChromaticity{0.63, 0.34},
			G: CieXyChromaticity{0.295, 0.605},
			B: CieXyChromaticity{0.15, 0.075},
		},
		Companding: GammaCompanding{1.8},
	}
	BruceRgb = RgbWorkingSpace{
		Name:       "Bruce RGB",
		WhitePoint: IlluminantD65,
		Primaries: RgbPrimaries{
			R: CieXyChromaticity{0.64, 0.33},
			G: CieXyChromaticity{0.28, 0.65},
			B: CieXyChromaticity{0.15, 0.06},
		},
		Companding: GammaCompanding{2.2},
	}
	BestRgb = RgbWorkingSpace{
		Name:       "Best RGB",
		WhitePoint: IlluminantD50,
		Primaries: RgbPrimaries{
			R: CieXyChromaticity{0.7347, 0.2653},
			G: CieXyChromaticity{0.215, 0.775},
			B: CieXyChromaticity{0.13, 0.035},
		},
		Companding: GammaCompanding{2.2},
	}
	BetaRgb = RgbWorkingSpace{
		Name:       "Beta RGB",
		WhitePoint: IlluminantD50,
		Primaries: RgbPrimaries{
			R: CieXyChromaticity{0.6888, 0.3112},
			G: CieXyChromaticity{0.1986, 0.7551},
			B: CieXyChromaticity{0.1265, 0.0352},
		},
		Companding: GammaCompanding{2.2},
	}
	DonRgb4 = RgbWorkingSpace{
		Name:       "Don RGB 4",
		WhitePoint: IlluminantD50,
		Primaries: RgbPrimaries{
			R: CieXyChromaticity{0.696, 0.3},
			G: CieXyChromaticity{0.215, 0.765},
			B: CieXyChromaticity{0.13, 0.035},
		},
		Companding: GammaCompanding{2.2},
	}
	EktaSpacePS5 = RgbWorkingSpace{
		Name:       "Ekta Space PS5",
		WhitePoint: IlluminantD50,
		Primaries: RgbPrimaries{
			R: CieXyChromaticity{0.695, 0.305},
			G: CieXyChromaticity{0.26, 0.7},
			B: CieXyChromaticity{0.11, 0.005},
		},
		Companding: GammaCompanding{2.2},
	}
)

var workingSpaces = map[string]RgbWorkingSpace{
	"srgb":            SRgb,
	"srgb-simplified": SRgbSimplified,
	"rec709":          Rec709,
	"rec2020":         Rec2020,
	"adobe-rgb-1998":  AdobeRgb1998,
	"apple-srgb":      AppleSRgb,
	"prophoto":        ProPhotoRgb,
	"wide-gamut":      WideGamutRgb,
	"eci-rgb-v2":      EciRgbV2,
	"cie-rgb":         CieRgb,
	"ntsc":            NtscRgb,
	"pal-secam":       PalSecamRgb,
	"smpte-c":         SmpteCRgb,
	"colormatch":      ColorMatchRgb,
	"bruce":           BruceRgb,
	"best":            BestRgb,
	"beta":            BetaRgb,
	"don-rgb-4":       DonRgb4,
	"ekta-space-ps5":  EktaSpacePS5,
}

// WorkingSpaceByName returns one of the predefined working spaces.
// Names like "srgb", "adobe-rgb-1998" or "prophoto" are accepted,
// see [WorkingSpaceNames] for the full list.  Matching is case-insensitive.
func WorkingSpaceByName(name string) (RgbWorkingSpace, bool) {
	ws, ok := workingSpaces[strings.ToLower(name)]
	return ws, ok
}

// WorkingSpaceNames returns the names accepted by [WorkingSpaceByName].
func WorkingSpaceNames() []string {
	return sortedKeys(workingSpaces)
}
