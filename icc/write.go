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
	"slices"
)

// Encode converts the profile to binary form.
//
// Tags are stored in order of their signatures, and tags with identical
// data share their storage.  For version 4 profiles the profile ID is
// filled in.
func (p *Profile) Encode() []byte {
	version := p.Version
	if version == 0 {
		version = currentVersion
	}

	sigs := make([]TagType, 0, len(p.TagData))
	for sig := range p.TagData {
		sigs = append(sigs, sig)
	}
	slices.Sort(sigs)

	// assign storage, sharing identical data
	offsets := make([]int, len(sigs))
	seen := make(map[string]int)
	pos := tagTableOff + len(sigs)*tagEntrySize
	for i, sig := range sigs {
		data := p.TagData[sig]
		if start, ok := seen[string(data)]; ok {
			offsets[i] = start
			continue
		}
		seen[string(data)] = pos
		offsets[i] = pos
		pos += (len(data) + 3) &^ 3
	}

	buf := make([]byte, pos)
	putUint32(buf, hdrSize, uint32(pos))
	putUint32(buf, hdrCMM, p.PreferredCMMType)
	putUint32(buf, hdrVersion, uint32(version))
	putUint32(buf, hdrClass, uint32(p.Class))
	putUint32(buf, hdrColorSpace, uint32(p.ColorSpace))
	putUint32(buf, hdrPCS, uint32(p.PCS))
	putDateTime(buf, hdrDate, p.CreationDate)
	copy(buf[hdrMagic:], magic)
	putUint32(buf, hdrPlatform, p.PrimaryPlatform)
	putUint32(buf, hdrFlags, p.Flags)
	putUint32(buf, hdrManufacturer, p.DeviceManufacturer)
	putUint32(buf, hdrModel, p.DeviceModel)
	putUint64(buf, hdrAttributes, p.DeviceAttributes)
	putUint32(buf, hdrIntent, uint32(p.RenderingIntent))
	putXYZ(buf, hdrIlluminant, p.PCSIlluminant)
	putUint32(buf, hdrCreator, p.Creator)

	putUint32(buf, headerLength, uint32(len(sigs)))
	for i, sig := range sigs {
		data := p.TagData[sig]
		entry := tagTableOff + i*tagEntrySize
		putUint32(buf, entry, uint32(sig))
		putUint32(buf, entry+4, uint32(offsets[i]))
		putUint32(buf, entry+8, uint32(len(data)))
		copy(buf[offsets[i]:], data)
	}

	if version.Major() >= 4 {
		id := profileID(buf)
		copy(buf[hdrID:], id[:])
	}
	return buf
}
