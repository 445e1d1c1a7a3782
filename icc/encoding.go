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
	"errors"
	"math"
	"time"
)

// Big-endian accessors for the ICC binary encodings.  Callers check the
// data length before reading.

func getUint16(data []byte, offset int) uint16 {
	return uint16(data[offset])<<8 | uint16(data[offset+1])
}

func getUint32(data []byte, offset int) uint32 {
	return uint32(getUint16(data, offset))<<16 | uint32(getUint16(data, offset+2))
}

func getUint64(data []byte, offset int) uint64 {
	return uint64(getUint32(data, offset))<<32 | uint64(getUint32(data, offset+4))
}

// getS15Fixed16 decodes a signed 15.16 fixed point number.
func getS15Fixed16(data []byte, offset int) float64 {
	return float64(int32(getUint32(data, offset))) / 65536
}

// getXYZ decodes three consecutive s15Fixed16 numbers.
func getXYZ(data []byte, offset int) [3]float64 {
	return [3]float64{
		getS15Fixed16(data, offset),
		getS15Fixed16(data, offset+4),
		getS15Fixed16(data, offset+8),
	}
}

func putUint16(data []byte, offset int, value uint16) {
	data[offset] = byte(value >> 8)
	data[offset+1] = byte(value)
}

func putUint32(data []byte, offset int, value uint32) {
	putUint16(data, offset, uint16(value>>16))
	putUint16(data, offset+2, uint16(value))
}

func putUint64(data []byte, offset int, value uint64) {
	putUint32(data, offset, uint32(value>>32))
	putUint32(data, offset+4, uint32(value))
}

func putS15Fixed16(data []byte, offset int, value float64) {
	putUint32(data, offset, uint32(int32(math.Round(value*65536))))
}

func putXYZ(data []byte, offset int, xyz [3]float64) {
	for i, v := range xyz {
		putS15Fixed16(data, offset+4*i, v)
	}
}

// getDateTime decodes a dateTimeNumber.  Out of range values give the zero
// time.
func getDateTime(data []byte, offset int) time.Time {
	var f [6]int
	for i := range f {
		f[i] = int(getUint16(data, offset+2*i))
	}
	year, month, day, hour, minute, second := f[0], f[1], f[2], f[3], f[4], f[5]
	if year < 1970 || year > 3000 || month < 1 || month > 12 || day < 1 || day > 31 ||
		hour > 23 || minute > 59 || second > 61 {
		return time.Time{}
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
}

func putDateTime(data []byte, offset int, t time.Time) {
	f := [6]int{t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()}
	for i, v := range f {
		putUint16(data, offset+2*i, uint16(v))
	}
}

// checkType verifies the four byte type signature at the start of a tag.
func checkType(typeID string, data []byte) error {
	if len(data) < 8 || string(data[:4]) != typeID {
		return errUnexpectedType
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

var (
	errMissingTag     = errors.New("icc: missing tag")
	errUnexpectedType = errors.New("icc: unexpected tag data type")
	errInvalidTagData = errors.New("icc: invalid tag data")
)
