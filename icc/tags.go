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
	"fmt"
	"unicode/utf16"
)

// TagType is the signature of a tag in an ICC profile.
type TagType uint32

// Some of the tags of the ICC specification.
const (
	ProfileDescription TagType = 0x64657363 // "desc"
	Copyright          TagType = 0x63707274 // "cprt"
	ChromaticAdaption  TagType = 0x63686164 // "chad"
	MediaWhitePoint    TagType = 0x77747074 // "wtpt"

	RedMatrixColumn   TagType = 0x7258595A // "rXYZ"
	GreenMatrixColumn TagType = 0x6758595A // "gXYZ"
	BlueMatrixColumn  TagType = 0x6258595A // "bXYZ"
	RedTRC            TagType = 0x72545243 // "rTRC"
	GreenTRC          TagType = 0x67545243 // "gTRC"
	BlueTRC           TagType = 0x62545243 // "bTRC"
	GrayTRC           TagType = 0x6B545243 // "kTRC"

	AToB0 TagType = 0x41324230 // "A2B0"
	AToB1 TagType = 0x41324231 // "A2B1"
	AToB2 TagType = 0x41324232 // "A2B2"
	BToA0 TagType = 0x42324130 // "B2A0"
	BToA1 TagType = 0x42324131 // "B2A1"
	BToA2 TagType = 0x42324132 // "B2A2"
)

var tagNames = map[TagType]string{
	ProfileDescription: "Profile Description",
	Copyright:          "Copyright",
	ChromaticAdaption:  "Chromatic Adaption",
	MediaWhitePoint:    "Media White Point",
	RedMatrixColumn:    "R Matrix Column",
	GreenMatrixColumn:  "G Matrix Column",
	BlueMatrixColumn:   "B Matrix Column",
	RedTRC:             "R TRC",
	GreenTRC:           "G TRC",
	BlueTRC:            "B TRC",
	GrayTRC:            "Gray TRC",
	AToB0:              "AToB0 (perceptual)",
	AToB1:              "AToB1 (colorimetric)",
	AToB2:              "AToB2 (saturation)",
	BToA0:              "BToA0 (perceptual)",
	BToA1:              "BToA1 (colorimetric)",
	BToA2:              "BToA2 (saturation)",
}

func (t TagType) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	sig := []byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)}
	for _, c := range sig {
		if c < 0x20 || c > 0x7E {
			return fmt.Sprintf("0x%08X", uint32(t))
		}
	}
	return fmt.Sprintf("%q", sig)
}

// MultiLocalizedUnicode is a list of translations of a text.
type MultiLocalizedUnicode []LocalizedUnicode

// LocalizedUnicode is one translation of a text.
type LocalizedUnicode struct {
	Language string // ISO 639-1 code
	Country  string // ISO 3166-1 code
	Value    string
}

// Copyright returns the copyright notice of the profile.
func (p *Profile) Copyright() (MultiLocalizedUnicode, error) {
	return p.localizedText(Copyright)
}

// Description returns the profile description.
func (p *Profile) Description() (MultiLocalizedUnicode, error) {
	return p.localizedText(ProfileDescription)
}

// localizedText decodes a tag of type multiLocalizedUnicodeType (version 4),
// textType or textDescriptionType (version 2).
func (p *Profile) localizedText(tag TagType) (MultiLocalizedUnicode, error) {
	data, ok := p.TagData[tag]
	if !ok {
		return nil, errMissingTag
	}
	if len(data) < 8 {
		return nil, errInvalidTagData
	}

	var s string
	switch string(data[:4]) {
	case "mluc":
		return decodeMLUC(data)
	case "text":
		s = trimNul(data[8:])
	case "desc":
		if len(data) < 12 {
			return nil, errInvalidTagData
		}
		n := int64(getUint32(data, 8))
		if 12+n > int64(len(data)) {
			return nil, errInvalidTagData
		}
		s = trimNul(data[12 : 12+n])
	default:
		return nil, errUnexpectedType
	}
	return MultiLocalizedUnicode{{Language: "en", Country: "US", Value: s}}, nil
}

func trimNul(b []byte) string {
	for len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return string(b)
}

func decodeMLUC(data []byte) (MultiLocalizedUnicode, error) {
	if len(data) < 16 {
		return nil, errInvalidTagData
	}
	n := int64(getUint32(data, 8))
	recSize := int64(getUint32(data, 12))
	if recSize < 12 || n == 0 || n > int64(len(data)) || 16+n*recSize > int64(len(data)) {
		return nil, errInvalidTagData
	}

	res := make(MultiLocalizedUnicode, n)
	for i := range res {
		rec := 16 + i*int(recSize)
		length := int64(getUint32(data, rec+4))
		start := int64(getUint32(data, rec+8))
		if length%2 != 0 || start+length > int64(len(data)) {
			return nil, errInvalidTagData
		}
		units := make([]uint16, length/2)
		for j := range units {
			units[j] = getUint16(data, int(start)+2*j)
		}
		res[i] = LocalizedUnicode{
			Language: string(data[rec : rec+2]),
			Country:  string(data[rec+2 : rec+4]),
			Value:    string(utf16.Decode(units)),
		}
	}
	return res, nil
}
