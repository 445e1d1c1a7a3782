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
	"sort"
)

// Curve is a one-dimensional transfer function, as stored in the ICC
// curveType and parametricCurveType tag types.
//
// Exactly one of the three representations is used, in order of
// precedence Table, Params, Gamma.  The zero Curve is the identity.
// Curves are not modified by evaluation and can be shared between
// goroutines.
type Curve struct {
	// Gamma gives the curve y = x^Gamma.
	Gamma float64

	// FuncType and Params give an ICC parametric curve.  Params holds the
	// first 1, 3, 4, 5 or 7 of the coefficients g, a, b, c, d, e, f,
	// depending on FuncType:
	//   - type 0: y = x^g
	//   - type 1: y = (ax+b)^g for x >= -b/a, else 0
	//   - type 2: y = (ax+b)^g + c for x >= -b/a, else c
	//   - type 3: y = (ax+b)^g for x >= d, else cx
	//   - type 4: y = (ax+b)^g + e for x >= d, else cx + f
	FuncType int
	Params   []float64

	// Table gives a sampled curve.  The samples are evenly spaced over the
	// input range [0, 1], and are linearly interpolated.
	Table []uint16
}

// paramCount is the number of parameters for each parametric function type.
var paramCount = [...]int{1, 3, 4, 5, 7}

// DecodeCurve decodes a curveType or parametricCurveType element.
func DecodeCurve(data []byte) (*Curve, error) {
	if len(data) < 12 {
		return nil, errInvalidTagData
	}

	switch string(data[:4]) {
	case "curv":
		n := int(getUint32(data, 8))
		switch {
		case n == 0:
			return &Curve{Gamma: 1}, nil
		case len(data) < 12+2*n || n < 0:
			return nil, errInvalidTagData
		case n == 1:
			return &Curve{Gamma: float64(getUint16(data, 12)) / 256}, nil
		}
		table := make([]uint16, n)
		for i := range table {
			table[i] = getUint16(data, 12+2*i)
		}
		return &Curve{Table: table}, nil

	case "para":
		funcType := int(getUint16(data, 8))
		if funcType >= len(paramCount) || len(data) < 12+4*paramCount[funcType] {
			return nil, errInvalidTagData
		}
		params := make([]float64, paramCount[funcType])
		for i := range params {
			params[i] = getS15Fixed16(data, 12+4*i)
		}
		return &Curve{FuncType: funcType, Params: params}, nil
	}
	return nil, errUnexpectedType
}

// Encode returns the curve as a curveType or parametricCurveType element.
func (c *Curve) Encode() []byte {
	switch {
	case len(c.Table) > 0:
		buf := make([]byte, 12+2*len(c.Table))
		copy(buf, "curv")
		putUint32(buf, 8, uint32(len(c.Table)))
		for i, v := range c.Table {
			putUint16(buf, 12+2*i, v)
		}
		return buf

	case len(c.Params) > 0:
		n := len(c.Params)
		if c.FuncType >= 0 && c.FuncType < len(paramCount) {
			n = paramCount[c.FuncType]
		}
		buf := make([]byte, 12+4*n)
		copy(buf, "para")
		putUint16(buf, 8, uint16(c.FuncType))
		for i := 0; i < n && i < len(c.Params); i++ {
			putS15Fixed16(buf, 12+4*i, c.Params[i])
		}
		return buf

	case c.Gamma == 0 || c.Gamma == 1:
		buf := make([]byte, 12)
		copy(buf, "curv")
		return buf
	}

	buf := make([]byte, 14)
	copy(buf, "curv")
	putUint32(buf, 8, 1)
	putUint16(buf, 12, uint16(math.Round(c.Gamma*256)))
	return buf
}

// IsIdentity reports whether the curve maps every x to itself.
func (c *Curve) IsIdentity() bool {
	switch {
	case len(c.Table) > 0:
		return false
	case len(c.Params) > 0:
		return c.FuncType == 0 && c.Params[0] == 1
	}
	return c.Gamma == 0 || c.Gamma == 1
}

// Evaluate returns the curve value at x.  Both x and the result are clamped
// to [0, 1].
func (c *Curve) Evaluate(x float64) float64 {
	x = clamp(x, 0, 1)

	var y float64
	switch {
	case len(c.Table) > 0:
		y = sampleTable(c.Table, x)
	case len(c.Params) > 0:
		y = c.parametric().eval(x)
	case c.Gamma != 0 && x > 0:
		y = math.Pow(x, c.Gamma)
	case c.Gamma != 0:
		y = 0
	default:
		y = x
	}
	return clamp(y, 0, 1)
}

// Invert returns an x in [0, 1] with Evaluate(x) = y.  For curves which are
// not strictly monotonic, the smallest such x is returned.
func (c *Curve) Invert(y float64) float64 {
	y = clamp(y, 0, 1)

	var x float64
	switch {
	case len(c.Table) > 0:
		x = invertTable(c.Table, y)
	case len(c.Params) > 0:
		x = c.parametric().invert(y)
	case c.Gamma != 0 && y > 0:
		x = math.Pow(y, 1/c.Gamma)
	case c.Gamma != 0:
		x = 0
	default:
		x = y
	}
	return clamp(x, 0, 1)
}

// paraFunc is a parametric curve in the general form of function type 4:
// y = (ax+b)^g + e for x >= d, and y = cx + f otherwise.
type paraFunc struct {
	g, a, b, c, d, e, f float64
}

func (c *Curve) parametric() paraFunc {
	var p [7]float64
	copy(p[:], c.Params)
	g, a, b := p[0], p[1], p[2]

	switch c.FuncType {
	case 0:
		return paraFunc{g: g, a: 1}
	case 1, 2:
		var d float64
		if a != 0 {
			d = -b / a
		}
		offs := 0.0
		if c.FuncType == 2 {
			offs = p[3]
		}
		return paraFunc{g: g, a: a, b: b, d: d, e: offs, f: offs}
	case 3:
		return paraFunc{g: g, a: a, b: b, c: p[3], d: p[4]}
	}
	return paraFunc{g: g, a: a, b: b, c: p[3], d: p[4], e: p[5], f: p[6]}
}

func (p paraFunc) eval(x float64) float64 {
	if x < p.d {
		return p.c*x + p.f
	}
	base := p.a*x + p.b
	if base <= 0 {
		return p.e
	}
	return math.Pow(base, p.g) + p.e
}

func (p paraFunc) invert(y float64) float64 {
	// value at the start of the power segment
	yd := p.e
	if base := p.a*p.d + p.b; base > 0 {
		yd += math.Pow(base, p.g)
	}

	if y >= yd && p.a != 0 && p.g != 0 {
		t := y - p.e
		if t <= 0 {
			return max(p.d, -p.b/p.a)
		}
		return (math.Pow(t, 1/p.g) - p.b) / p.a
	}
	if p.c != 0 {
		return (y - p.f) / p.c
	}
	return p.d
}

func sampleTable(table []uint16, x float64) float64 {
	n := len(table)
	if n == 1 {
		return float64(table[0]) / 65535
	}
	pos := x * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		return float64(table[n-1]) / 65535
	}
	frac := pos - float64(i)
	y0, y1 := float64(table[i]), float64(table[i+1])
	return (y0 + frac*(y1-y0)) / 65535
}

// invertTable inverts a monotonic sampled curve by binary search.
// Decreasing tables are supported.
func invertTable(table []uint16, y float64) float64 {
	n := len(table)
	if n < 2 {
		return y
	}

	sign := 1.0
	if table[n-1] < table[0] {
		sign = -1
	}
	val := func(i int) float64 { return sign * float64(table[i]) }
	target := sign * y * 65535

	i := sort.Search(n, func(i int) bool { return val(i) >= target })
	switch i {
	case 0:
		return 0
	case n:
		return 1
	}
	v0, v1 := val(i-1), val(i)
	frac := 0.0
	if v1 > v0 {
		frac = (target - v0) / (v1 - v0)
	}
	return (float64(i-1) + frac) / float64(n-1)
}
