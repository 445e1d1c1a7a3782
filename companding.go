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

import "math"

// Companding describes the transfer function of an RGB working space.
//
// Expand maps a companded (non-linear) channel value to linear light,
// Compress is the inverse.  Both functions accept values outside [0, 1].
type Companding interface {
	Compress(v float64) float64
	Expand(v float64) float64
}

// SRgbCompanding is the piecewise transfer function of IEC 61966-2-1.
type SRgbCompanding struct{}

// Compress implements the [Companding] interface.
func (SRgbCompanding) Compress(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// Expand implements the [Companding] interface.
func (SRgbCompanding) Expand(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// GammaCompanding is a pure power law.  Negative values are mapped
// symmetrically, so that the function is defined on the whole real line.
type GammaCompanding struct {
	Gamma float64
}

// Compress implements the [Companding] interface.
func (c GammaCompanding) Compress(v float64) float64 {
	return signedPow(v, 1/c.Gamma)
}

// Expand implements the [Companding] interface.
func (c GammaCompanding) Expand(v float64) float64 {
	return signedPow(v, c.Gamma)
}

func signedPow(v, p float64) float64 {
	if v < 0 {
		return -math.Pow(-v, p)
	}
	return math.Pow(v, p)
}

// LCompanding uses the CIE L* curve as transfer function,
// as in the ECI RGB v2 working space.
type LCompanding struct{}

// Compress implements the [Companding] interface.
func (LCompanding) Compress(v float64) float64 {
	if v <= cieEpsilon {
		return v * cieKappa / 100
	}
	return 1.16*math.Cbrt(v) - 0.16
}

// Expand implements the [Companding] interface.
func (LCompanding) Expand(v float64) float64 {
	if v <= 0.08 {
		return 100 * v / cieKappa
	}
	t := (v + 0.16) / 1.16
	return t * t * t
}

// Rec709Companding is the transfer function of ITU-R BT.709.
type Rec709Companding struct{}

// Compress implements the [Companding] interface.
func (Rec709Companding) Compress(v float64) float64 {
	if v < 0.018 {
		return 4.5 * v
	}
	return 1.099*math.Pow(v, 0.45) - 0.099
}

// Expand implements the [Companding] interface.
func (Rec709Companding) Expand(v float64) float64 {
	if v < 0.081 {
		return v / 4.5
	}
	return math.Pow((v+0.099)/1.099, 1/0.45)
}

// Rec2020Companding is the transfer function of ITU-R BT.2020,
// using the high-precision constants for 12-bit systems.
type Rec2020Companding struct{}

const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

// Compress implements the [Companding] interface.
func (Rec2020Companding) Compress(v float64) float64 {
	if v < rec2020Beta {
		return 4.5 * v
	}
	return rec2020Alpha*math.Pow(v, 0.45) - (rec2020Alpha - 1)
}

// Expand implements the [Companding] interface.
func (Rec2020Companding) Expand(v float64) float64 {
	if v < 4.5*rec2020Beta {
		return v / 4.5
	}
	return math.Pow((v+rec2020Alpha-1)/rec2020Alpha, 1/0.45)
}

// LinearCompanding leaves values unchanged.
type LinearCompanding struct{}

// Compress implements the [Companding] interface.
func (LinearCompanding) Compress(v float64) float64 { return v }

// Expand implements the [Companding] interface.
func (LinearCompanding) Expand(v float64) float64 { return v }

// CompressSlice applies c.Compress to the first three lanes of every
// element of v, in place.  The fourth lane is left unchanged.
func CompressSlice(c Companding, v []Vector4) {
	for i := range v {
		v[i][0] = c.Compress(v[i][0])
		v[i][1] = c.Compress(v[i][1])
		v[i][2] = c.Compress(v[i][2])
	}
}

// ExpandSlice applies c.Expand to the first three lanes of every
// element of v, in place.  The fourth lane is left unchanged.
func ExpandSlice(c Companding, v []Vector4) {
	for i := range v {
		v[i][0] = c.Expand(v[i][0])
		v[i][1] = c.Expand(v[i][1])
		v[i][2] = c.Expand(v[i][2])
	}
}
