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
	"bytes"
	"crypto/md5"
	"fmt"
)

// Byte offsets of the profile header fields.
const (
	hdrSize         = 0
	hdrCMM          = 4
	hdrVersion      = 8
	hdrClass        = 12
	hdrColorSpace   = 16
	hdrPCS          = 20
	hdrDate         = 24
	hdrMagic        = 36
	hdrPlatform     = 40
	hdrFlags        = 44
	hdrManufacturer = 48
	hdrModel        = 52
	hdrAttributes   = 56
	hdrIntent       = 64
	hdrIlluminant   = 68
	hdrCreator      = 80
	hdrID           = 84

	headerLength = 128
	tagTableOff  = headerLength + 4
	tagEntrySize = 12
)

const magic = "acsp"

// Decode decodes an ICC profile.  The tag data of the returned profile
// refers to the memory of data.
//
// If the size field of the header is smaller than len(data), the trailing
// bytes are ignored.
func Decode(data []byte) (*Profile, error) {
	if len(data) < tagTableOff {
		return nil, invalidProfile(0, "profile is too short")
	}
	if size := int64(getUint32(data, hdrSize)); size >= tagTableOff && size < int64(len(data)) {
		data = data[:size]
	}
	if string(data[hdrMagic:hdrMagic+4]) != magic {
		return nil, invalidProfile(hdrMagic, "missing 'acsp' signature")
	}

	p := decodeHeader(data)
	p.CheckSum = verifyID(data)

	tags, err := decodeTagTable(data)
	if err != nil {
		return nil, err
	}
	p.TagData = tags
	return p, nil
}

func decodeHeader(data []byte) *Profile {
	p := &Profile{
		PreferredCMMType:   getUint32(data, hdrCMM),
		Version:            Version(getUint32(data, hdrVersion)),
		Class:              ProfileClass(getUint32(data, hdrClass)),
		ColorSpace:         ColorSpace(getUint32(data, hdrColorSpace)),
		PCS:                ColorSpace(getUint32(data, hdrPCS)),
		CreationDate:       getDateTime(data, hdrDate),
		PrimaryPlatform:    getUint32(data, hdrPlatform),
		Flags:              getUint32(data, hdrFlags),
		DeviceManufacturer: getUint32(data, hdrManufacturer),
		DeviceModel:        getUint32(data, hdrModel),
		DeviceAttributes:   getUint64(data, hdrAttributes),
		RenderingIntent:    RenderingIntent(getUint32(data, hdrIntent)),
		PCSIlluminant:      getXYZ(data, hdrIlluminant),
		Creator:            getUint32(data, hdrCreator),
	}
	if p.Version == 0 {
		p.Version = currentVersion
	}
	return p
}

// verifyID checks the MD5 profile ID.  An all-zero ID means that the ID
// is missing.
func verifyID(data []byte) CheckSum {
	given := data[hdrID : hdrID+16]
	if bytes.Count(given, []byte{0}) == len(given) {
		return CheckSumMissing
	}
	id := profileID(data)
	if bytes.Equal(id[:], given) {
		return CheckSumValid
	}
	return CheckSumInvalid
}

// profileID computes the MD5 hash of the profile, with the flags, rendering
// intent and profile ID header fields taken to be zero.
func profileID(data []byte) [16]byte {
	var header [headerLength]byte
	copy(header[:], data)
	clear(header[hdrFlags : hdrFlags+4])
	clear(header[hdrIntent : hdrIntent+4])
	clear(header[hdrID : hdrID+16])

	h := md5.New()
	h.Write(header[:])
	h.Write(data[headerLength:])
	var id [16]byte
	h.Sum(id[:0])
	return id
}

func decodeTagTable(data []byte) (map[TagType][]byte, error) {
	n := int64(getUint32(data, headerLength))
	if n > int64(len(data)-tagTableOff)/tagEntrySize {
		return nil, invalidProfile(headerLength, "too many tags")
	}
	dataStart := tagTableOff + n*tagEntrySize

	tags := make(map[TagType][]byte, n)
	for i := 0; i < int(n); i++ {
		entry := tagTableOff + i*tagEntrySize
		sig := TagType(getUint32(data, entry))
		start := int64(getUint32(data, entry+4))
		size := int64(getUint32(data, entry+8))
		switch {
		case size < 4:
			return nil, invalidProfile(entry+8, "tag is too small")
		case start < dataStart || start+size > int64(len(data)):
			return nil, invalidProfile(entry, "tag is out of bounds")
		}
		tags[sig] = data[start : start+size]
	}
	return tags, nil
}

// InvalidProfileError indicates that an ICC profile contains invalid binary
// data and cannot be decoded.
type InvalidProfileError struct {
	Offset int
	Reason string
}

func invalidProfile(offset int, reason string) error {
	return &InvalidProfileError{Offset: offset, Reason: reason}
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("icc: invalid profile (byte %d): %s", e.Offset, e.Reason)
}
