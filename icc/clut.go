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

// maxChannels is the largest number of channels an ICC colour space can
// have.
const maxChannels = 15

// maxGridPoints limits the number of grid points of a colour lookup table.
const maxGridPoints = 1 << 24

// clut is a multi-dimensional colour lookup table.  The grid values are
// normalised to [0, 1].  The last input dimension varies fastest, and the
// output channels of one grid point are stored consecutively.
type clut struct {
	grid []int
	out  int
	step []int // offset of the next grid point along each dimension
	data []float64
}

// newCLUT allocates a lookup table with the given grid sizes.  The data
// slice is left for the caller to fill.
func newCLUT(grid []int, out int) (*clut, error) {
	n := len(grid)
	if n < 1 || n > maxChannels || out < 1 || out > maxChannels {
		return nil, errInvalidTagData
	}
	step := make([]int, n)
	points := 1
	for d := n - 1; d >= 0; d-- {
		g := grid[d]
		if g < 1 {
			return nil, errInvalidTagData
		}
		if g > 1 {
			step[d] = points * out
		}
		points *= g
		if points > maxGridPoints {
			return nil, errInvalidTagData
		}
	}
	return &clut{
		grid: grid,
		out:  out,
		step: step,
		data: make([]float64, points*out),
	}, nil
}

// apply interpolates the table at v.  The input is divided into simplices
// by sorting the fractional grid positions; for three inputs this is the
// usual tetrahedral interpolation.
func (c *clut) apply(v []float64) []float64 {
	n := len(c.grid)
	var frac [maxChannels]float64
	var order [maxChannels]int
	base := 0
	for d := 0; d < n; d++ {
		g := c.grid[d]
		pos := clamp(v[d], 0, 1) * float64(g-1)
		i := min(int(pos), max(g-2, 0))
		frac[d] = pos - float64(i)
		order[d] = d
		if g > 1 {
			base += i * c.step[d]
		}
	}
	for i := 1; i < n; i++ {
		for j := i; j > 0 && frac[order[j]] > frac[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	res := make([]float64, c.out)
	w := 1 - frac[order[0]]
	for k := range res {
		res[k] = w * c.data[base+k]
	}
	pos := base
	for j := 0; j < n; j++ {
		d := order[j]
		pos += c.step[d]
		next := 0.0
		if j+1 < n {
			next = frac[order[j+1]]
		}
		w := frac[d] - next
		if w == 0 {
			continue
		}
		for k := range res {
			res[k] += w * c.data[pos+k]
		}
	}
	return res
}
