package rotinterp

import "fmt"

// Interpolator is an interpolation strategy with its inputs bound.
// Validate reports malformed input without doing any interpolation work,
// so callers can reject it before starting a measurement.
type Interpolator interface {
	// Name identifies the strategy in benchmark samples and reports.
	Name() string

	// Validate checks the bound inputs.
	Validate() error

	// Interpolate produces the orientation path.
	Interpolate() (OrientationPath, error)
}

// EulerStrategy interpolates Euler angles per axis.
type EulerStrategy struct {
	Start, End EulerAngles
	Steps      int
}

// Name implements Interpolator.
func (s EulerStrategy) Name() string { return EulerStrategyName }

// Validate implements Interpolator.
func (s EulerStrategy) Validate() error {
	if err := validateSteps(s.Steps); err != nil {
		return err
	}
	if !s.Start.IsFinite() || !s.End.IsFinite() {
		return fmt.Errorf("%w: non-finite Euler angles %v → %v", ErrInvalidArgument, s.Start, s.End)
	}
	return nil
}

// Interpolate implements Interpolator.
func (s EulerStrategy) Interpolate() (OrientationPath, error) {
	return InterpolateEuler(s.Start, s.End, s.Steps)
}

// SlerpStrategy interpolates the quaternions of two rotations and reports
// the path as Euler angles in Order. Building the interpolant is part of
// Interpolate, and therefore part of any measurement of it.
type SlerpStrategy struct {
	Start, End Rotation
	Steps      int
	Order      AxisOrder
}

// Name implements Interpolator.
func (s SlerpStrategy) Name() string { return SlerpStrategyName }

// Validate implements Interpolator.
func (s SlerpStrategy) Validate() error {
	if err := validateSteps(s.Steps); err != nil {
		return err
	}
	if err := s.Order.Validate(); err != nil {
		return err
	}
	if !s.Start.IsValid() {
		return fmt.Errorf("%w: start rotation is not initialized", ErrInvalidRotation)
	}
	if !s.End.IsValid() {
		return fmt.Errorf("%w: end rotation is not initialized", ErrInvalidRotation)
	}
	return nil
}

// Interpolate implements Interpolator.
func (s SlerpStrategy) Interpolate() (OrientationPath, error) {
	return InterpolateSlerp(s.Start.Quaternion(), s.End.Quaternion(), s.Steps, s.Order)
}
