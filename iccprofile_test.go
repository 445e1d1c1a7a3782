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
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/colorconv/icc"
)

func TestCompandingCurve(t *testing.T) {
	for _, c := range []Companding{
		LinearCompanding{},
		GammaCompanding{Gamma: 2.2},
		SRgbCompanding{},
		LCompanding{},
		Rec709Companding{},
		Rec2020Companding{},
	} {
		curve := compandingCurve(c)
		for i := 0; i <= 100; i++ {
			x := float64(i) / 100
			want := c.Expand(x)
			got := curve.Evaluate(x)
			if math.Abs(got-want) > 1e-3 {
				t.Errorf("%T: curve(%g) = %g, want %g", c, x, got, want)
			}
		}
	}
}

func TestNewIccProfileFromWorkingSpace(t *testing.T) {
	p, err := NewIccProfileFromWorkingSpace(AdobeRgb1998, icc.Version2_1_0, icc.Perceptual)
	if err != nil {
		t.Fatal(err)
	}
	h := p.Header()
	if h.ProfileConnectionSpace != icc.PCSXYZSpace {
		t.Errorf("PCS = %v", h.ProfileConnectionSpace)
	}
	if h.Version.Major() != 2 || h.RenderingIntent != icc.Perceptual {
		t.Errorf("version %v, intent %v", h.Version, h.RenderingIntent)
	}
	if p.LegacyLabEncoding(icc.DeviceToPCS) || p.LegacyLabEncoding(icc.PCSToDevice) {
		t.Error("matrix profile reports legacy Lab encoding")
	}

	// device white maps to the D50 PCS white
	pcs := p.DeviceToPcs(Vector4{1, 1, 1, 0.5})
	white := CieXyz{}.FromScaledVector4(pcs)
	if math.Abs(white.X-IlluminantD50.X) > 1e-3 ||
		math.Abs(white.Y-IlluminantD50.Y) > 1e-3 ||
		math.Abs(white.Z-IlluminantD50.Z) > 1e-3 {
		t.Errorf("white = %v", white)
	}
	if pcs[3] != 1 {
		t.Errorf("fourth lane = %g", pcs[3])
	}

	_, err = NewIccProfileFromWorkingSpace(RgbWorkingSpace{WhitePoint: IlluminantD65}, icc.Version4_2_0, icc.Perceptual)
	if err == nil {
		t.Error("working space without primaries accepted")
	}
}

// invertingMft2 returns a lut16Type tag for three channels, which maps
// every input value x to 1-x.
func invertingMft2() []byte {
	buf := make([]byte, 52)
	copy(buf, "mft2")
	buf[8], buf[9], buf[10] = 3, 3, 2
	for i := 0; i < 3; i++ {
		binary.BigEndian.PutUint32(buf[12+16*i:], 0x00010000) // identity matrix
	}
	binary.BigEndian.PutUint16(buf[48:], 2)
	binary.BigEndian.PutUint16(buf[50:], 2)
	add := func(vals ...uint16) {
		for _, v := range vals {
			buf = binary.BigEndian.AppendUint16(buf, v)
		}
	}
	for range 3 {
		add(0, 65535)
	}
	for idx := 0; idx < 8; idx++ {
		for d := 2; d >= 0; d-- {
			add(uint16(idx>>d&1) * 65535)
		}
	}
	for range 3 {
		add(65535, 0)
	}
	return buf
}

// inputProfile returns a scanner profile with only an AToB0 tag.
func inputProfile() *icc.Profile {
	return &icc.Profile{
		Version:       icc.Version2_4_0,
		Class:         icc.InputDeviceProfile,
		ColorSpace:    icc.RGBSpace,
		PCS:           icc.PCSLabSpace,
		PCSIlluminant: [3]float64{IlluminantD50.X, IlluminantD50.Y, IlluminantD50.Z},
		TagData: map[icc.TagType][]byte{
			icc.AToB0: invertingMft2(),
		},
	}
}

func TestInputOnlyProfile(t *testing.T) {
	src, err := NewIccProfile(inputProfile(), icc.RelativeColorimetric)
	if err != nil {
		t.Fatal(err)
	}
	if !src.HasTransform(icc.DeviceToPCS) || src.HasTransform(icc.PCSToDevice) {
		t.Fatalf("HasTransform: %t %t",
			src.HasTransform(icc.DeviceToPCS), src.HasTransform(icc.PCSToDevice))
	}
	if !src.LegacyLabEncoding(icc.DeviceToPCS) || src.LegacyLabEncoding(icc.PCSToDevice) {
		t.Error("wrong legacy Lab encoding flags")
	}

	in := []Rgb{
		{R: 0.2, G: 0.4, B: 0.8},
		{R: 0.9, G: 0.5, B: 0.5},
	}
	opt := cmpopts.EquateApprox(0, 1e-9)

	// both sides use the version 2 Lab encoding, so the PCS value is
	// passed on unchanged
	c := newIccConverter(t, src, labProfile(true))
	for _, v := range in {
		got, err := ConvertUsingIccProfile[Rgb, CieLab](c, v)
		if err != nil {
			t.Fatal(err)
		}
		want := CieLab{}.FromScaledVector4(Vector4{1 - v.R, 1 - v.G, 1 - v.B, 1})
		if d := cmp.Diff(want, got, opt); d != "" {
			t.Errorf("%v (-want +got):\n%s", v, d)
		}
	}

	// a version 4 target sees the rescaled PCS value
	c = newIccConverter(t, src, labProfile(false))
	out := make([]CieLab, len(in))
	if err := ConvertSliceUsingIccProfile(c, in, out); err != nil {
		t.Fatal(err)
	}
	for i, v := range in {
		want := CieLab{}.FromScaledVector4(Vector4{
			(1 - v.R) / labV2Scale, (1 - v.G) / labV2Scale, (1 - v.B) / labV2Scale, 1,
		})
		if d := cmp.Diff(want, out[i], opt); d != "" {
			t.Errorf("%v (-want +got):\n%s", v, d)
		}
	}
}

func TestInputOnlyProfileAsTarget(t *testing.T) {
	p, err := NewIccProfile(inputProfile(), icc.Perceptual)
	if err != nil {
		t.Fatal(err)
	}
	o, err := NewOptions(WithSourceIccProfile(labProfile(true)), WithTargetIccProfile(p))
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewConverter(o)
	var dirErr *MissingTransformError
	if !errors.As(err, &dirErr) {
		t.Fatalf("got error %v", err)
	}
	if dirErr.Side != "target" || dirErr.Direction != icc.PCSToDevice {
		t.Errorf("got %+v", dirErr)
	}

	defer func() {
		if recover() == nil {
			t.Error("PcsToDevice without a transform did not panic")
		}
	}()
	p.PcsToDevice(Vector4{0.5, 0.5, 0.5, 1})
}

func TestNewIccProfileErrors(t *testing.T) {
	empty := inputProfile()
	delete(empty.TagData, icc.AToB0)
	if _, err := NewIccProfile(empty, icc.Perceptual); !errors.Is(err, icc.ErrNoTransform) {
		t.Errorf("profile without transforms: got %v", err)
	}

	broken := inputProfile()
	broken.TagData[icc.AToB0] = broken.TagData[icc.AToB0][:40]
	if _, err := NewIccProfile(broken, icc.Perceptual); err == nil || errors.Is(err, icc.ErrNoTransform) {
		t.Errorf("truncated LUT: got %v", err)
	}
}
