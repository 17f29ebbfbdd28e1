package rotinterp

import "errors"

// Common errors returned by the interpolation engine.
var (
	// ErrInvalidArgument indicates a bad step count, sample parameter, axis
	// order, or other malformed call argument.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidRotation indicates a quaternion that does not describe a
	// rotation: non-finite, near-zero norm, or not unit where unit is required.
	ErrInvalidRotation = errors.New("invalid rotation")
)
