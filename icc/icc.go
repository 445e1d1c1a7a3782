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

// Package icc reads and writes ICC colour profiles and evaluates their
// device transforms.
//
// An ICC profile relates a device colour space, such as RGB or CMYK, to a
// device-independent profile connection space (PCS).  The PCS is either
// CIE XYZ or CIE Lab, relative to the D50 illuminant.
//
// This package provides the profiles used by [seehuhn.de/go/colorconv].
// A [Transform] maps device values to the ICC-normalised PCS encoding or
// back.  Reconciling two different PCS encodings is left to colorconv.
//
// # Reading and Writing Profiles
//
// [Decode] parses binary profile data and [Profile.Encode] serialises a
// profile.  Tags are kept as raw bytes in [Profile.TagData]; the functions
// [DecodeCurve] and [DecodeLut] interpret the colour tags.
// [NewMatrixTRCProfile] and [NewGrayProfile] synthesise simple display
// profiles.
//
// # Colour Transformations
//
//	t, err := icc.NewTransform(p, icc.DeviceToPCS, icc.Perceptual)
//	if err != nil {
//	    // handle error
//	}
//	pcs := t.ToPCS([]float64{r, g, b})
//
// A transform created with [PCSToDevice] provides [Transform.FromPCS].
package icc

import (
	"fmt"
	"time"
)

// Profile represents an ICC colour profile.
//
// The header fields describe the profile as a whole.  TagData holds the
// undecoded data of every tag.
type Profile struct {
	PreferredCMMType   uint32
	Version            Version
	Class              ProfileClass
	ColorSpace         ColorSpace // device colour space
	PCS                ColorSpace // PCSXYZSpace or PCSLabSpace for device profiles
	CreationDate       time.Time
	PrimaryPlatform    uint32
	Flags              uint32
	DeviceManufacturer uint32
	DeviceModel        uint32
	DeviceAttributes   uint64
	RenderingIntent    RenderingIntent
	Creator            uint32

	// PCSIlluminant is the XYZ value of the PCS illuminant.  Conforming
	// profiles use D50.
	PCSIlluminant [3]float64

	// CheckSum reports the state of the profile ID after [Decode].
	CheckSum CheckSum

	TagData map[TagType][]byte
}

// Version is a version of the ICC profile format.
type Version uint32

// Some versions of the ICC profile format.
const (
	Version2_1_0 Version = 0x0210_0000
	Version2_2_0 Version = 0x0220_0000
	Version2_3_0 Version = 0x0230_0000
	Version2_4_0 Version = 0x0240_0000
	Version4_0_0 Version = 0x0400_0000
	Version4_1_0 Version = 0x0410_0000
	Version4_2_0 Version = 0x0420_0000
	Version4_3_0 Version = 0x0430_0000
	Version4_4_0 Version = 0x0440_0000

	currentVersion = Version4_4_0
)

// Major returns the major version number, 2 or 4 for current profiles.
func (v Version) Major() int {
	return int(v >> 24)
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major(), int(v>>20&0xF), int(v>>16&0xF))
	if rest := v & 0xFFFF; rest != 0 {
		s += fmt.Sprintf(".%04X", uint32(rest))
	}
	return s
}

// ProfileClass is the ICC profile or device class.
type ProfileClass uint32

// Profile classes of the ICC specification.
const (
	InputDeviceProfile   ProfileClass = 0x73636E72 // "scnr"
	DisplayDeviceProfile ProfileClass = 0x6D6E7472 // "mntr"
	OutputDeviceProfile  ProfileClass = 0x70727472 // "prtr"
	DeviceLinkProfile    ProfileClass = 0x6C696E6B // "link"
	ColorSpaceProfile    ProfileClass = 0x73706163 // "spac"
	AbstractProfile      ProfileClass = 0x61627374 // "abst"
	NamedColorProfile    ProfileClass = 0x6E6D636C // "nmcl"
)

var classNames = map[ProfileClass]string{
	InputDeviceProfile:   "Input Device Profile",
	DisplayDeviceProfile: "Display Device Profile",
	OutputDeviceProfile:  "Output Device Profile",
	DeviceLinkProfile:    "DeviceLink Profile",
	ColorSpaceProfile:    "ColorSpace Profile",
	AbstractProfile:      "Abstract Profile",
	NamedColorProfile:    "Named Color Profile",
}

func (c ProfileClass) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ProfileClass(0x%08X)", uint32(c))
}

// RenderingIntent selects how colours are mapped between gamuts.
type RenderingIntent uint32

// The rendering intents of the ICC specification.
const (
	Perceptual           RenderingIntent = 0
	RelativeColorimetric RenderingIntent = 1
	Saturation           RenderingIntent = 2
	AbsoluteColorimetric RenderingIntent = 3
)

func (ri RenderingIntent) String() string {
	names := [...]string{"Perceptual", "Relative Colorimetric", "Saturation", "Absolute Colorimetric"}
	if int(ri) < len(names) {
		return names[ri]
	}
	return fmt.Sprintf("RenderingIntent(%d)", uint32(ri))
}

// ColorSpace identifies a colour space in an ICC profile.
type ColorSpace uint32

// Colour spaces of the ICC specification.
const (
	CIEXYZSpace ColorSpace = 0x58595A20 // "XYZ "
	CIELabSpace ColorSpace = 0x4C616220 // "Lab "
	CIELuvSpace ColorSpace = 0x4C757620 // "Luv "
	YCbCrSpace  ColorSpace = 0x59436272 // "YCbr"
	CIEYxySpace ColorSpace = 0x59787920 // "Yxy "
	RGBSpace    ColorSpace = 0x52474220 // "RGB "
	GraySpace   ColorSpace = 0x47524159 // "GRAY"
	HSVSpace    ColorSpace = 0x48535620 // "HSV "
	HLSSpace    ColorSpace = 0x484C5320 // "HLS "
	CMYKSpace   ColorSpace = 0x434D594B // "CMYK"
	CMYSpace    ColorSpace = 0x434D5920 // "CMY "

	// The generic n-colour spaces use the signatures "2CLR" to "9CLR" and
	// "ACLR" to "FCLR".
	Color2Space  ColorSpace = 0x32434C52
	Color3Space  ColorSpace = 0x33434C52
	Color4Space  ColorSpace = 0x34434C52
	Color5Space  ColorSpace = 0x35434C52
	Color6Space  ColorSpace = 0x36434C52
	Color7Space  ColorSpace = 0x37434C52
	Color8Space  ColorSpace = 0x38434C52
	Color9Space  ColorSpace = 0x39434C52
	Color10Space ColorSpace = 0x41434C52
	Color11Space ColorSpace = 0x42434C52
	Color12Space ColorSpace = 0x43434C52
	Color13Space ColorSpace = 0x44434C52
	Color14Space ColorSpace = 0x45434C52
	Color15Space ColorSpace = 0x46434C52

	PCSXYZSpace = CIEXYZSpace
	PCSLabSpace = CIELabSpace
)

var colorSpaces = map[ColorSpace]struct {
	name string
	n    int
}{
	CIEXYZSpace: {"CIEXYZ", 3},
	CIELabSpace: {"CIELAB", 3},
	CIELuvSpace: {"CIELUV", 3},
	YCbCrSpace:  {"YCbCr", 3},
	CIEYxySpace: {"CIEYxy", 3},
	RGBSpace:    {"RGB", 3},
	GraySpace:   {"Gray", 1},
	HSVSpace:    {"HSV", 3},
	HLSSpace:    {"HLS", 3},
	CMYKSpace:   {"CMYK", 4},
	CMYSpace:    {"CMY", 3},
}

// nColorComponents decodes the component count of the "nCLR" signatures.
// The result is 0 for all other values.
func (s ColorSpace) nColorComponents() int {
	if s&0xFFFFFF != 0x434C52 {
		return 0
	}
	switch d := byte(s >> 24); {
	case d >= '2' && d <= '9':
		return int(d - '0')
	case d >= 'A' && d <= 'F':
		return int(d-'A') + 10
	}
	return 0
}

func (s ColorSpace) String() string {
	if cs, ok := colorSpaces[s]; ok {
		return cs.name
	}
	if n := s.nColorComponents(); n > 0 {
		return fmt.Sprintf("%dCLR", n)
	}
	return fmt.Sprintf("ColorSpace(0x%08X)", uint32(s))
}

// NumComponents returns the number of colour components in the colour
// space, or 0 if the colour space is unknown.
func (s ColorSpace) NumComponents() int {
	if cs, ok := colorSpaces[s]; ok {
		return cs.n
	}
	return s.nColorComponents()
}

// CheckSum describes the profile ID field of a decoded profile.
type CheckSum int

// Possible values of the CheckSum field.
const (
	CheckSumMissing CheckSum = iota
	CheckSumValid
	CheckSumInvalid
)

func (c CheckSum) String() string {
	switch c {
	case CheckSumValid:
		return "Valid"
	case CheckSumInvalid:
		return "Invalid"
	}
	return "Missing"
}

// d50WhitePoint is the PCS illuminant of the ICC specification.
var d50WhitePoint = [3]float64{0.9642, 1.0, 0.8249}
