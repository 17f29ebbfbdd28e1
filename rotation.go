package rotinterp

import (
	"fmt"

	"github.com/tphakala/go-rotation-interp/internal/mathutil"
)

// EulerAngles is a triple of rotation angles in degrees. X is the angle
// about the first axis of the AxisOrder it is used with, Y about the
// second and Z about the third; for the XYZ orders the names match the axes.
type EulerAngles struct {
	X, Y, Z float64
}

// IsFinite reports whether no angle is NaN or Inf.
func (e EulerAngles) IsFinite() bool {
	return mathutil.IsFinite(e.X, e.Y, e.Z)
}

// Lerp blends e towards end per axis: (1-t)·e + t·end.
func (e EulerAngles) Lerp(end EulerAngles, t float64) EulerAngles {
	u := 1 - t
	return EulerAngles{
		X: u*e.X + t*end.X,
		Y: u*e.Y + t*end.Y,
		Z: u*e.Z + t*end.Z,
	}
}

// Component returns the angle at index 0, 1 or 2.
func (e EulerAngles) Component(i int) float64 {
	switch i {
	case 0:
		return e.X
	case 1:
		return e.Y
	default:
		return e.Z
	}
}

// String formats e as (x°, y°, z°).
func (e EulerAngles) String() string {
	return fmt.Sprintf("(%g°, %g°, %g°)", e.X, e.Y, e.Z)
}

// representation tags which form a Rotation was built from.
type representation int

const (
	representationQuaternion representation = iota
	representationEuler
)

// Rotation is an orientation in 3-D space, built either from Euler angles
// or from a quaternion. The unit quaternion is computed once on
// construction; Euler angles given on input are kept so that asking for
// them back in the same order is exact.
//
// Rotation is an immutable value. The zero value is not a valid rotation.
type Rotation struct {
	repr  representation
	q     Quaternion
	euler EulerAngles
	order AxisOrder
}

// FromEuler builds a rotation from angles in degrees applied in order.
//
// An intrinsic order ABC composes qA·qB·qC; an extrinsic order abc
// composes qC·qB·qA. Quaternion multiplication does not commute, so the
// same order must be used to convert back.
func FromEuler(angles EulerAngles, order AxisOrder) (Rotation, error) {
	if err := order.Validate(); err != nil {
		return Rotation{}, err
	}
	if !angles.IsFinite() {
		return Rotation{}, fmt.Errorf("%w: non-finite Euler angles %v", ErrInvalidArgument, angles)
	}

	axes := order.axes()
	var parts [axesPerOrder]Quaternion
	for i := range axesPerOrder {
		parts[i] = axisQuaternion(axes[i], mathutil.DegToRad(angles.Component(i)))
	}

	var q Quaternion
	if order.Intrinsic() {
		q = parts[0].Mul(parts[1]).Mul(parts[2])
	} else {
		q = parts[2].Mul(parts[1]).Mul(parts[0])
	}

	return Rotation{
		repr:  representationEuler,
		q:     q.normalized(),
		euler: angles,
		order: order,
	}, nil
}

// FromQuaternion builds a rotation from q, renormalizing it when its norm
// has drifted from 1. It fails with ErrInvalidRotation when q is
// non-finite or its norm is too close to zero.
func FromQuaternion(q Quaternion) (Rotation, error) {
	unit, err := q.Normalize()
	if err != nil {
		return Rotation{}, err
	}
	return Rotation{repr: representationQuaternion, q: unit}, nil
}

// MustFromEuler is like FromEuler but panics on error. Intended for
// constants in tests and examples.
func MustFromEuler(angles EulerAngles, order AxisOrder) Rotation {
	r, err := FromEuler(angles, order)
	if err != nil {
		panic(err)
	}
	return r
}

// Quaternion returns the unit quaternion of r.
func (r Rotation) Quaternion() Quaternion {
	return r.q
}

// IsValid reports whether r holds a unit quaternion. The zero Rotation is
// not valid.
func (r Rotation) IsValid() bool {
	return r.q.IsUnit(UnitTolerance)
}

// Euler returns the angles of r in degrees for the given order.
//
// If r was built from Euler angles in the same order, those angles are
// returned unchanged. Otherwise they are extracted from the rotation
// matrix: the middle angle lies in [-90°, 90°] and the others in
// (-180°, 180°]. At gimbal lock one outer angle is set to 0 (the third
// for an intrinsic order, the first for an extrinsic one) and the other
// carries the combined rotation.
func (r Rotation) Euler(order AxisOrder) (EulerAngles, error) {
	if err := order.Validate(); err != nil {
		return EulerAngles{}, err
	}
	if !r.IsValid() {
		return EulerAngles{}, fmt.Errorf("%w: rotation is not initialized", ErrInvalidRotation)
	}
	if r.repr == representationEuler && r.order == order {
		return r.euler, nil
	}
	return quaternionToEuler(r.q, order), nil
}

// quaternionToEuler extracts Euler angles of unit q. An extrinsic sequence
// abc with angles (α, β, γ) is the intrinsic sequence cba with angles
// (γ, β, α).
func quaternionToEuler(q Quaternion, order AxisOrder) EulerAngles {
	m := mathutil.Mat3FromQuat(q.X, q.Y, q.Z, q.W)
	axes := order.axes()

	if order.Intrinsic() {
		a, b, c := mathutil.TaitBryan(m, axes[0], axes[1], axes[2])
		return EulerAngles{
			X: mathutil.RadToDeg(a),
			Y: mathutil.RadToDeg(b),
			Z: mathutil.RadToDeg(c),
		}
	}

	c, b, a := mathutil.TaitBryan(m, axes[2], axes[1], axes[0])
	return EulerAngles{
		X: mathutil.RadToDeg(a),
		Y: mathutil.RadToDeg(b),
		Z: mathutil.RadToDeg(c),
	}
}
