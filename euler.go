package rotinterp

import "fmt"

// InterpolateEuler blends start towards end independently per axis over
// steps evenly spaced parameters t_i = i/(steps-1):
//
//	angle(t) = (1-t)·start + t·end
//
// The first sample is start and the last is end, both exactly. A single
// step returns just start.
//
// The blend ignores rotation geometry: it neither follows the shortest
// arc nor keeps a constant angular velocity. It exists as the baseline the
// SLERP path is compared against.
func InterpolateEuler(start, end EulerAngles, steps int) (OrientationPath, error) {
	if err := validateSteps(steps); err != nil {
		return nil, err
	}
	if !start.IsFinite() || !end.IsFinite() {
		return nil, fmt.Errorf("%w: non-finite Euler angles %v → %v", ErrInvalidArgument, start, end)
	}

	ts := parameterGrid(steps)
	path := make(OrientationPath, steps)
	for i, t := range ts {
		path[i] = start.Lerp(end, t)
	}
	return path, nil
}
