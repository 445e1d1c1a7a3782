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
	"errors"
	"fmt"

	"seehuhn.de/go/colorconv/icc"
)

var (
	// ErrMissingSourceIccProfile is returned by the ICC conversion functions
	// if the converter has no source ICC profile.
	ErrMissingSourceIccProfile = errors.New("colorconv: missing source ICC profile")

	// ErrMissingTargetIccProfile is returned by the ICC conversion functions
	// if the converter has no target ICC profile.
	ErrMissingTargetIccProfile = errors.New("colorconv: missing target ICC profile")
)

// SingularMatrixError indicates that a matrix given as an option cannot
// be inverted.
type SingularMatrixError struct {
	What string
}

func (e *SingularMatrixError) Error() string {
	return "colorconv: singular " + e.What
}

// UnsupportedPcsError indicates that an ICC profile uses a profile
// connection space other than CIE XYZ or CIE Lab.
type UnsupportedPcsError struct {
	Side string // "source" or "target"
	PCS  icc.ColorSpace
}

func (e *UnsupportedPcsError) Error() string {
	return fmt.Sprintf("colorconv: %s ICC profile has unsupported PCS %s", e.Side, e.PCS)
}

// MissingTransformError indicates that an ICC profile cannot be used in
// its role because it lacks the transform for the required direction.
// A source profile needs a device to PCS transform, a target profile a
// PCS to device transform.
type MissingTransformError struct {
	Side      string // "source" or "target"
	Direction icc.Direction
}

func (e *MissingTransformError) Error() string {
	return fmt.Sprintf("colorconv: %s ICC profile has no %s transform", e.Side, e.Direction)
}
