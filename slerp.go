package rotinterp

import (
	"fmt"
	"math"

	"github.com/tphakala/go-rotation-interp/internal/mathutil"
)

// SlerpPath is a reusable spherical linear interpolant between two unit
// quaternions. It is immutable and safe for concurrent use.
//
// Construction resolves the double cover once: when q0·q1 < 0, q1 is
// replaced by -q1 so that the path follows the shorter great-circle arc.
// The angle θ between the endpoints and sin θ are precomputed, so each
// sample costs two sines and a normalization.
type SlerpPath struct {
	start Quaternion
	end   Quaternion // Sign-corrected q1

	dot      float64
	theta    float64
	sinTheta float64

	flipped bool
	linear  bool
}

// Build prepares a SLERP interpolant from q0 to q1.
//
// Both inputs must be unit quaternions within UnitTolerance; otherwise
// Build fails with ErrInvalidRotation.
func Build(q0, q1 Quaternion) (*SlerpPath, error) {
	if !q0.IsUnit(UnitTolerance) {
		return nil, fmt.Errorf("%w: start quaternion %v is not unit (norm %g)", ErrInvalidRotation, q0, q0.Norm())
	}
	if !q1.IsUnit(UnitTolerance) {
		return nil, fmt.Errorf("%w: end quaternion %v is not unit (norm %g)", ErrInvalidRotation, q1, q1.Norm())
	}

	p := &SlerpPath{
		start: q0.normalized(),
		end:   q1.normalized(),
	}

	// Shortest arc: q and -q are the same rotation, pick the end on the
	// same hemisphere as the start.
	p.dot = p.start.Dot(p.end)
	if p.dot < 0 {
		p.end = p.end.Neg()
		p.dot = -p.dot
		p.flipped = true
	}

	// Nearly identical endpoints: sin θ → 0, fall back to normalized lerp.
	if p.dot > slerpLinearThreshold {
		p.linear = true
		return p, nil
	}

	p.theta = mathutil.SafeAcos(p.dot)
	p.sinTheta = math.Sin(p.theta)
	return p, nil
}

// At returns the interpolated unit quaternion at t in [0, 1].
// t outside that range, or NaN, fails with ErrInvalidArgument.
func (p *SlerpPath) At(t float64) (Quaternion, error) {
	if math.IsNaN(t) || t < 0 || t > 1 {
		return Quaternion{}, fmt.Errorf("%w: slerp parameter %g outside [0, 1]", ErrInvalidArgument, t)
	}
	return p.at(t), nil
}

func (p *SlerpPath) at(t float64) Quaternion {
	if p.linear {
		return p.start.Scale(1 - t).Add(p.end.Scale(t)).normalized()
	}

	s0 := math.Sin((1-t)*p.theta) / p.sinTheta
	s1 := math.Sin(t*p.theta) / p.sinTheta
	return p.start.Scale(s0).Add(p.end.Scale(s1)).normalized()
}

// Sample evaluates the path at steps evenly spaced parameters over [0, 1]
// inclusive.
func (p *SlerpPath) Sample(steps int) ([]Quaternion, error) {
	if err := validateSteps(steps); err != nil {
		return nil, err
	}
	ts := parameterGrid(steps)
	qs := make([]Quaternion, steps)
	for i, t := range ts {
		qs[i] = p.at(t)
	}
	return qs, nil
}

// Start returns the normalized start quaternion.
func (p *SlerpPath) Start() Quaternion { return p.start }

// End returns the end quaternion after sign correction. It equals q1 or
// -q1, both describing the same rotation.
func (p *SlerpPath) End() Quaternion { return p.end }

// Dot returns the endpoint dot product after sign correction, always >= 0.
func (p *SlerpPath) Dot() float64 { return p.dot }

// Angle returns the arc θ between the endpoints on the unit 3-sphere in
// radians. The rotation angle between them is 2θ. Angle is 0 when the
// path uses the linear fallback.
func (p *SlerpPath) Angle() float64 { return p.theta }

// Flipped reports whether q1 was negated to take the shorter arc.
func (p *SlerpPath) Flipped() bool { return p.flipped }

// Linear reports whether the endpoints were close enough to use normalized
// lerp instead of the trigonometric form.
func (p *SlerpPath) Linear() bool { return p.linear }

// InterpolateSlerp samples the SLERP path from q0 to q1 at steps evenly
// spaced parameters and converts each sample to Euler angles in order.
// Interpolation itself stays on quaternions; Euler angles are produced only
// for output.
func InterpolateSlerp(q0, q1 Quaternion, steps int, order AxisOrder) (OrientationPath, error) {
	if err := validateSteps(steps); err != nil {
		return nil, err
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}

	sp, err := Build(q0, q1)
	if err != nil {
		return nil, err
	}
	qs, err := sp.Sample(steps)
	if err != nil {
		return nil, err
	}

	path := make(OrientationPath, steps)
	for i, q := range qs {
		r, err := FromQuaternion(q)
		if err != nil {
			return nil, fmt.Errorf("slerp sample %d: %w", i, err)
		}
		if path[i], err = r.Euler(order); err != nil {
			return nil, fmt.Errorf("slerp sample %d: %w", i, err)
		}
	}
	return path, nil
}
