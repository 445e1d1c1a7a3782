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

import "time"

// NewMatrixTRCProfile returns an RGB display profile which uses the given
// matrix columns and the same tone reproduction curve for all three channels.
//
// The matrix columns red, green and blue are the PCS XYZ values of the
// three primaries, and must already be adapted to the D50 PCS illuminant.
// The white point is stored in the media white point tag.
func NewMatrixTRCProfile(version Version, intent RenderingIntent, red, green, blue, white [3]float64, trc *Curve) *Profile {
	trcData := trc.Encode()
	return &Profile{
		Version:         version,
		Class:           DisplayDeviceProfile,
		ColorSpace:      RGBSpace,
		PCS:             PCSXYZSpace,
		CreationDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		RenderingIntent: intent,
		PCSIlluminant:   d50WhitePoint,
		TagData: map[TagType][]byte{
			RedMatrixColumn:   encodeXYZ(red),
			GreenMatrixColumn: encodeXYZ(green),
			BlueMatrixColumn:  encodeXYZ(blue),
			MediaWhitePoint:   encodeXYZ(white),
			RedTRC:            trcData,
			GreenTRC:          trcData,
			BlueTRC:           trcData,
		},
	}
}

// NewGrayProfile returns a grayscale display profile with the given tone
// reproduction curve.
func NewGrayProfile(version Version, intent RenderingIntent, trc *Curve) *Profile {
	return &Profile{
		Version:         version,
		Class:           DisplayDeviceProfile,
		ColorSpace:      GraySpace,
		PCS:             PCSXYZSpace,
		CreationDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		RenderingIntent: intent,
		PCSIlluminant:   d50WhitePoint,
		TagData: map[TagType][]byte{
			MediaWhitePoint: encodeXYZ(d50WhitePoint),
			GrayTRC:         trc.Encode(),
		},
	}
}

// encodeXYZ encodes an XYZType tag with a single XYZ value.
func encodeXYZ(xyz [3]float64) []byte {
	buf := make([]byte, 20)
	copy(buf, "XYZ ")
	putXYZ(buf, 8, xyz)
	return buf
}
