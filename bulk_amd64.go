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

//go:build amd64 && !noasm

package colorconv

import "golang.org/x/sys/cpu"

//go:noescape
func expandRgbAVX2(dst, src []float64, opaque bool)

//go:noescape
func shrinkRgbAVX2(dst, src []float64)

func vectorKernelsSupported() bool {
	return cpu.X86.HasAVX2
}

// expandRgbVector converts the largest multiple of four pixels which fits
// into s, and returns the number of pixels converted.
func expandRgbVector(s, d []float64, opaque bool) int {
	n := len(s) / 3
	n -= n % 4
	if n > 0 {
		expandRgbAVX2(d[:4*n], s[:3*n], opaque)
	}
	return n
}

// shrinkRgbVector converts the largest multiple of four pixels which fits
// into s, and returns the number of pixels converted.
func shrinkRgbVector(s, d []float64) int {
	n := len(s) / 4
	n -= n % 4
	if n > 0 {
		shrinkRgbAVX2(d[:3*n], s[:4*n])
	}
	return n
}
