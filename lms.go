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

// Lms is a colour in a cone response domain.  The domain is defined by
// the adaptation matrix of the conversion options.  Components are
// nominally in [-1, 1].
type Lms struct {
	L, M, S float64
}

// ToScaledVector4 implements the [ColorProfile] interface.
func (c Lms) ToScaledVector4() Vector4 {
	return Vector4{(c.L + 1) / 2, (c.M + 1) / 2, (c.S + 1) / 2, 1}
}

// FromScaledVector4 implements the [ColorProfile] interface.
func (Lms) FromScaledVector4(v Vector4) Lms {
	return Lms{L: v[0]*2 - 1, M: v[1]*2 - 1, S: v[2]*2 - 1}
}

// ToScaledVector4Slice implements the [ColorProfile] interface.
func (Lms) ToScaledVector4Slice(src []Lms, dst []Vector4) { toScaledVectors(src, dst) }

// FromScaledVector4Slice implements the [ColorProfile] interface.
func (Lms) FromScaledVector4Slice(src []Vector4, dst []Lms) { fromScaledVectors(src, dst) }

// WhitePointSource implements the [ColorProfile] interface.
func (Lms) WhitePointSource() WhitePointSource { return WhitePoint }

// ToXyz implements the [XyzProfile] interface.
func (c Lms) ToXyz(o *Options) CieXyz {
	return xyzFromVector(o.adaptation.inv.Apply(Vector3{c.L, c.M, c.S}))
}

// FromXyz implements the [XyzProfile] interface.
func (Lms) FromXyz(o *Options, c CieXyz) Lms {
	v := o.adaptation.m.Apply(c.vector())
	return Lms{L: v[0], M: v[1], S: v[2]}
}

// ToXyzSlice implements the [XyzProfile] interface.
func (Lms) ToXyzSlice(o *Options, src []Lms, dst []CieXyz) { toXyzSlice(o, src, dst) }

// FromXyzSlice implements the [XyzProfile] interface.
func (Lms) FromXyzSlice(o *Options, src []CieXyz, dst []Lms) { fromXyzSlice(o, src, dst) }
