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
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDateTime(t *testing.T) {
	in := []byte{
		byte(2020 >> 8), byte(2020 & 0xFF),
		0, 1,
		0, 2,
		0, 4,
		0, 5,
		0, 6,
	}
	want := "2020-01-02 04:05:06 +0000 UTC"
	got := getDateTime(in, 0).String()
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func FuzzDecode(f *testing.F) {
	p := &Profile{
		TagData:      make(map[TagType][]byte),
		CreationDate: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	f.Add(p.Encode())
	p.TagData[0x100] = []byte{0, 0, 0, 0}
	f.Add(p.Encode())
	p.TagData[0x6368726D] = []byte{0, 0, 0, 0}
	f.Add(p.Encode())
	f.Fuzz(func(t *testing.T, a []byte) {
		p, err := Decode(a)
		if err != nil {
			return
		}
		b := p.Encode()
		q, err := Decode(b)
		if err != nil {
			t.Fatalf("re-decoding failed: %v", err)
		}

		p.CheckSum = CheckSumMissing
		q.CheckSum = CheckSumMissing
		if !reflect.DeepEqual(p, q) {
			d := cmp.Diff(p, q)
			fmt.Println(d)
			t.Fatalf("profiles differ")
		}
	})
}

func testProfile(version Version) *Profile {
	return &Profile{
		Version:         version,
		Class:           DisplayDeviceProfile,
		ColorSpace:      GraySpace,
		PCS:             PCSXYZSpace,
		CreationDate:    time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
		RenderingIntent: RelativeColorimetric,
		PCSIlluminant:   d50WhitePoint,
		TagData: map[TagType][]byte{
			GrayTRC:         (&Curve{Gamma: 1.8}).Encode(),
			MediaWhitePoint: encodeXYZ(d50WhitePoint),
			Copyright:       []byte("text\x00\x00\x00\x00public domain\x00"),
		},
	}
}

func TestCheckSum(t *testing.T) {
	v4 := testProfile(Version4_3_0).Encode()
	p, err := Decode(v4)
	if err != nil {
		t.Fatal(err)
	}
	if p.CheckSum != CheckSumValid {
		t.Errorf("v4 checksum %s", p.CheckSum)
	}

	// flags and rendering intent are excluded from the profile ID
	mod := append([]byte(nil), v4...)
	putUint32(mod, hdrFlags, 3)
	putUint32(mod, hdrIntent, uint32(Saturation))
	if p, err := Decode(mod); err != nil || p.CheckSum != CheckSumValid {
		t.Errorf("modified header: %v, %v", p, err)
	}

	mod = append([]byte(nil), v4...)
	mod[len(mod)-1] ^= 0xFF
	if p, err := Decode(mod); err != nil || p.CheckSum != CheckSumInvalid {
		t.Errorf("modified tag: %v, %v", p, err)
	}

	p, err = Decode(testProfile(Version2_1_0).Encode())
	if err != nil {
		t.Fatal(err)
	}
	if p.CheckSum != CheckSumMissing {
		t.Errorf("v2 checksum %s", p.CheckSum)
	}
}

func TestEncodeSharesTagData(t *testing.T) {
	p := testProfile(Version4_3_0)
	trc := p.TagData[GrayTRC]
	p.TagData[RedTRC] = trc
	p.TagData[GreenTRC] = append([]byte(nil), trc...)
	data := p.Encode()

	offsets := make(map[TagType]uint32)
	n := int(getUint32(data, headerLength))
	for i := range n {
		entry := tagTableOff + i*tagEntrySize
		offsets[TagType(getUint32(data, entry))] = getUint32(data, entry+4)
	}
	if offsets[GrayTRC] != offsets[RedTRC] || offsets[GrayTRC] != offsets[GreenTRC] {
		t.Errorf("identical tags stored separately: %v", offsets)
	}
	if int(getUint32(data, hdrSize)) != len(data) {
		t.Errorf("size field %d, length %d", getUint32(data, hdrSize), len(data))
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	data := testProfile(Version4_3_0).Encode()
	padded := append(append([]byte(nil), data...), 0xAA, 0xBB, 0xCC, 0xDD)
	p, err := Decode(padded)
	if err != nil {
		t.Fatal(err)
	}
	if p.CheckSum != CheckSumValid {
		t.Errorf("checksum %s", p.CheckSum)
	}
}

func TestDecodeErrors(t *testing.T) {
	valid := testProfile(Version4_3_0).Encode()
	modify := func(f func([]byte)) []byte {
		b := append([]byte(nil), valid...)
		f(b)
		return b
	}
	cases := []struct {
		name   string
		data   []byte
		offset int
	}{
		{"short", valid[:100], 0},
		{"magic", modify(func(b []byte) { b[hdrMagic] = 'x' }), hdrMagic},
		{"tag count", modify(func(b []byte) { putUint32(b, headerLength, 1000) }), headerLength},
		{"small tag", modify(func(b []byte) { putUint32(b, tagTableOff+8, 2) }), tagTableOff + 8},
		{"tag bounds", modify(func(b []byte) { putUint32(b, tagTableOff+4, uint32(len(b))) }), tagTableOff},
		{"tag overlaps table", modify(func(b []byte) { putUint32(b, tagTableOff+4, 0) }), tagTableOff},
	}
	for _, tc := range cases {
		_, err := Decode(tc.data)
		var perr *InvalidProfileError
		if !errors.As(err, &perr) {
			t.Errorf("%s: got %v", tc.name, err)
			continue
		}
		if perr.Offset != tc.offset {
			t.Errorf("%s: offset %d, want %d", tc.name, perr.Offset, tc.offset)
		}
	}
}
