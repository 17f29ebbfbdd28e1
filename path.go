package rotinterp

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// OrientationPath is an ordered sequence of orientations from t=0 to t=1,
// expressed as Euler angles in degrees so that both interpolation
// strategies produce output of the same shape.
type OrientationPath []EulerAngles

// Len returns the number of samples in the path.
func (p OrientationPath) Len() int {
	return len(p)
}

// Axis returns the series of angles for axis index 0, 1 or 2, the form a
// plotter consumes.
func (p OrientationPath) Axis(i int) []float64 {
	series := make([]float64, len(p))
	for n, e := range p {
		series[n] = e.Component(i)
	}
	return series
}

// Quaternions converts every sample to a unit quaternion, reading the
// angles in the given order.
func (p OrientationPath) Quaternions(order AxisOrder) ([]Quaternion, error) {
	qs := make([]Quaternion, len(p))
	for i, e := range p {
		r, err := FromEuler(e, order)
		if err != nil {
			return nil, fmt.Errorf("path sample %d: %w", i, err)
		}
		qs[i] = r.Quaternion()
	}
	return qs, nil
}

// validateSteps checks a requested sample count.
func validateSteps(steps int) error {
	if steps < 1 {
		return fmt.Errorf("%w: steps must be at least 1, got %d", ErrInvalidArgument, steps)
	}
	return nil
}

// parameterGrid returns steps evenly spaced parameters over [0, 1]
// inclusive. The endpoints are exactly 0 and 1; a single step yields [0].
func parameterGrid(steps int) []float64 {
	if steps == 1 {
		return []float64{0}
	}
	ts := floats.Span(make([]float64, steps), 0, 1)
	ts[steps-1] = 1
	return ts
}
