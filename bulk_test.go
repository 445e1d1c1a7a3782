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
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testRgbs(n int) []Rgb {
	res := make([]Rgb, n)
	for i := range res {
		x := float64(i)
		res[i] = Rgb{R: x, G: x + 0.25, B: x + 0.5}
	}
	return res
}

// withVectorKernels runs fn with the vector kernels switched on or off.
// It reports false if the kernels are requested but not available.
func withVectorKernels(on bool, fn func()) bool {
	if on && !vectorKernelsSupported() {
		return false
	}
	saved := useVectorKernels
	useVectorKernels = on
	defer func() { useVectorKernels = saved }()
	fn()
	return true
}

func TestExpandShrink(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 1000, 1001, 1003}
	for _, vector := range []bool{false, true} {
		for _, n := range sizes {
			for _, opaque := range []bool{false, true} {
				name := fmt.Sprintf("vector=%t/n=%d/opaque=%t", vector, n, opaque)
				t.Run(name, func(t *testing.T) {
					src := testRgbs(n)

					// one extra element, to detect writes past the end
					want := make([]Vector4, n+1)
					got := make([]Vector4, n+1)
					for i := range want {
						if i < n {
							want[i] = Vector4{src[i].R, src[i].G, src[i].B, -1}
							if opaque {
								want[i][3] = 1
							}
						} else {
							want[i] = Vector4{-2, -2, -2, -2}
						}
						got[i] = Vector4{-2, -2, -2, -1}
					}
					got[n][3] = -2

					back := make([]Rgb, n+1)
					back[n] = Rgb{R: -2, G: -2, B: -2}

					ok := withVectorKernels(vector, func() {
						expandRgb(src, got[:n], opaque)
						shrinkRgb(got[:n], back[:n])
					})
					if !ok {
						t.Skip("no vector kernels on this CPU")
					}

					if d := cmp.Diff(want, got); d != "" {
						t.Fatalf("expand (-want +got):\n%s", d)
					}
					wantBack := append(src, Rgb{R: -2, G: -2, B: -2})
					if d := cmp.Diff(wantBack, back); d != "" {
						t.Errorf("shrink (-want +got):\n%s", d)
					}
				})
			}
		}
	}
}

func TestUnpackRgbKeepsAlpha(t *testing.T) {
	src := testRgbs(7)
	dst := make([]Vector4, 9)
	for i := range dst {
		dst[i][3] = float64(i) / 10
	}
	UnpackRgb(src, dst)
	for i, v := range dst {
		if v[3] != float64(i)/10 {
			t.Errorf("%d: alpha changed to %g", i, v[3])
		}
		if i < len(src) && v.Vector3() != (Vector3{src[i].R, src[i].G, src[i].B}) {
			t.Errorf("%d: got %v, want %v", i, v, src[i])
		}
	}

	out := make([]Rgb, len(src))
	PackRgb(dst[:len(src)], out)
	if d := cmp.Diff(src, out); d != "" {
		t.Errorf("pack (-want +got):\n%s", d)
	}
}

func TestPackRgbShort(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("short destination did not panic")
		}
	}()
	PackRgb(make([]Vector4, 4), make([]Rgb, 3))
}

func TestPackUnpackVectorKernels(t *testing.T) {
	// the public functions give the same results with and without the
	// vector kernels
	src := testRgbs(37)
	for i := range src {
		src[i].G = -src[i].G
	}

	scalarV := make([]Vector4, len(src))
	scalarRgb := make([]Rgb, len(src))
	withVectorKernels(false, func() {
		UnpackRgb(src, scalarV)
		PackRgb(scalarV, scalarRgb)
	})

	vectorV := make([]Vector4, len(src))
	vectorRgb := make([]Rgb, len(src))
	ok := withVectorKernels(true, func() {
		UnpackRgb(src, vectorV)
		PackRgb(vectorV, vectorRgb)
	})
	if !ok {
		t.Skip("no vector kernels on this CPU")
	}

	if d := cmp.Diff(scalarV, vectorV); d != "" {
		t.Errorf("unpack (-scalar +vector):\n%s", d)
	}
	if d := cmp.Diff(scalarRgb, vectorRgb); d != "" {
		t.Errorf("pack (-scalar +vector):\n%s", d)
	}
}
