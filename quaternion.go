package rotinterp

import (
	"fmt"
	"math"

	"github.com/tphakala/go-rotation-interp/internal/mathutil"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is an (x, y, z, w) quaternion with the scalar part last.
// Rotations are represented by unit quaternions; q and -q describe the
// same rotation.
//
// The algebra is delegated to gonum's quat.Number, which stores the scalar
// part as Real and the vector part as Imag, Jmag, Kmag.
type Quaternion struct {
	X, Y, Z, W float64
}

// IdentityQuaternion returns the quaternion of the zero rotation.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromNumber converts a gonum quaternion.
func QuaternionFromNumber(n quat.Number) Quaternion {
	return Quaternion{X: n.Imag, Y: n.Jmag, Z: n.Kmag, W: n.Real}
}

// Number returns q as a gonum quaternion.
func (q Quaternion) Number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// Mul returns the Hamilton product q·r (apply r, then q).
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return QuaternionFromNumber(quat.Mul(q.Number(), r.Number()))
}

// Conj returns the conjugate of q, the inverse rotation for unit q.
func (q Quaternion) Conj() Quaternion {
	return QuaternionFromNumber(quat.Conj(q.Number()))
}

// Add returns q + r component-wise.
func (q Quaternion) Add(r Quaternion) Quaternion {
	return QuaternionFromNumber(quat.Add(q.Number(), r.Number()))
}

// Scale returns f·q.
func (q Quaternion) Scale(f float64) Quaternion {
	return QuaternionFromNumber(quat.Scale(f, q.Number()))
}

// Neg returns -q, which encodes the same rotation as q.
func (q Quaternion) Neg() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Dot returns the 4-D dot product of q and r.
func (q Quaternion) Dot(r Quaternion) float64 {
	return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
}

// Norm returns the Euclidean norm ‖q‖.
func (q Quaternion) Norm() float64 {
	return quat.Abs(q.Number())
}

// IsFinite reports whether no component is NaN or Inf.
func (q Quaternion) IsFinite() bool {
	return mathutil.IsFinite(q.X, q.Y, q.Z, q.W)
}

// IsUnit reports whether |‖q‖-1| <= tol.
func (q Quaternion) IsUnit(tol float64) bool {
	return q.IsFinite() && math.Abs(q.Norm()-1) <= tol
}

// Normalize returns q scaled to unit norm. It fails with ErrInvalidRotation
// when q is non-finite or too close to zero to carry a direction.
func (q Quaternion) Normalize() (Quaternion, error) {
	if !q.IsFinite() {
		return Quaternion{}, fmt.Errorf("%w: non-finite quaternion %v", ErrInvalidRotation, q)
	}
	n := q.Norm()
	if n < minQuaternionNorm {
		return Quaternion{}, fmt.Errorf("%w: quaternion norm %g is too small to normalize", ErrInvalidRotation, n)
	}
	return q.Scale(1 / n), nil
}

// normalized divides by the norm without checks. Callers guarantee the
// norm is well away from zero.
func (q Quaternion) normalized() Quaternion {
	return q.Scale(1 / q.Norm())
}

// Equal reports whether every component of q and r differs by at most tol.
func (q Quaternion) Equal(r Quaternion, tol float64) bool {
	return scalar.EqualWithinAbs(q.X, r.X, tol) &&
		scalar.EqualWithinAbs(q.Y, r.Y, tol) &&
		scalar.EqualWithinAbs(q.Z, r.Z, tol) &&
		scalar.EqualWithinAbs(q.W, r.W, tol)
}

// Equivalent reports whether q and r describe the same rotation, that is
// q ≈ r or q ≈ -r within tol.
func (q Quaternion) Equivalent(r Quaternion, tol float64) bool {
	return q.Equal(r, tol) || q.Equal(r.Neg(), tol)
}

// String formats q as (x, y, z, w).
func (q Quaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

// axisQuaternion returns the quaternion of a rotation by angle radians
// about a principal axis.
func axisQuaternion(axis int, angle float64) Quaternion {
	s, c := math.Sincos(angle / halfAngleDivisor)
	switch axis {
	case mathutil.AxisX:
		return Quaternion{X: s, W: c}
	case mathutil.AxisY:
		return Quaternion{Y: s, W: c}
	default:
		return Quaternion{Z: s, W: c}
	}
}
