package rotinterp

import (
	"fmt"
	"strings"

	"github.com/tphakala/go-rotation-interp/internal/mathutil"
)

// AxisOrder names the axis sequence of an Euler triple.
//
// Uppercase letters denote an intrinsic sequence (each rotation about the
// axes of the already-rotated frame), lowercase letters an extrinsic one
// (each rotation about the fixed world axes). "XYZ" rotates about X, then
// the new Y, then the newest Z; "xyz" rotates about world x, world y, world
// z. Only Tait-Bryan sequences (three distinct axes) are supported.
type AxisOrder string

const (
	// IntrinsicXYZ is the intrinsic X-Y-Z sequence.
	IntrinsicXYZ AxisOrder = "XYZ"

	// ExtrinsicXYZ is the extrinsic x-y-z sequence.
	ExtrinsicXYZ AxisOrder = "xyz"

	// DefaultAxisOrder is used when no order is given. It is extrinsic
	// "xyz", the convention of from_euler("xyz") in common rotation
	// libraries; pass IntrinsicXYZ for body-fixed X then Y then Z.
	DefaultAxisOrder = ExtrinsicXYZ
)

// ParseAxisOrder parses and validates an axis order string.
func ParseAxisOrder(s string) (AxisOrder, error) {
	o := AxisOrder(strings.TrimSpace(s))
	if err := o.Validate(); err != nil {
		return "", err
	}
	return o, nil
}

// Validate checks that o is one of the twelve supported sequences.
func (o AxisOrder) Validate() error {
	if len(o) != axisOrderLen {
		return fmt.Errorf("%w: axis order %q must have %d letters", ErrInvalidArgument, string(o), axisOrderLen)
	}

	upper := strings.ToUpper(string(o))
	if string(o) != upper && string(o) != strings.ToLower(string(o)) {
		return fmt.Errorf("%w: axis order %q mixes intrinsic and extrinsic axes", ErrInvalidArgument, string(o))
	}

	var seen [axesPerOrder]bool
	for i := range axisOrderLen {
		axis := axisIndex(upper[i])
		if axis < 0 {
			return fmt.Errorf("%w: axis order %q contains unknown axis %q", ErrInvalidArgument, string(o), upper[i])
		}
		if seen[axis] {
			return fmt.Errorf("%w: axis order %q repeats an axis (only Tait-Bryan sequences are supported)", ErrInvalidArgument, string(o))
		}
		seen[axis] = true
	}
	return nil
}

// Intrinsic reports whether o is an intrinsic (rotating frame) sequence.
func (o AxisOrder) Intrinsic() bool {
	return len(o) > 0 && o[0] >= 'A' && o[0] <= 'Z'
}

// axes returns the principal axis indices of a validated order.
func (o AxisOrder) axes() [axesPerOrder]int {
	upper := strings.ToUpper(string(o))
	var a [axesPerOrder]int
	for i := range axesPerOrder {
		a[i] = axisIndex(upper[i])
	}
	return a
}

func axisIndex(c byte) int {
	switch c {
	case 'X':
		return mathutil.AxisX
	case 'Y':
		return mathutil.AxisY
	case 'Z':
		return mathutil.AxisZ
	default:
		return -1
	}
}
