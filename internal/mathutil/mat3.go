package mathutil

import "math"

// Mat3 is a 3×3 rotation matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
type Mat3 [9]float64

// Mat3Identity returns the identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// At returns the element at row r, column c.
func (m Mat3) At(r, c int) float64 {
	return m[r*mat3Dim+c]
}

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := range mat3Dim {
		for c := range mat3Dim {
			m[r*mat3Dim+c] = a[r*mat3Dim+0]*b[0*mat3Dim+c] +
				a[r*mat3Dim+1]*b[1*mat3Dim+c] +
				a[r*mat3Dim+2]*b[2*mat3Dim+c]
		}
	}
	return m
}

// Mat3FromQuat converts a unit quaternion (x, y, z, w) to the rotation
// matrix that applies it to column vectors.
func Mat3FromQuat(x, y, z, w float64) Mat3 {
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// AxisRotation returns the matrix of a rotation by angle radians about the
// principal axis (0=X, 1=Y, 2=Z).
func AxisRotation(axis int, angle float64) Mat3 {
	s, c := math.Sincos(angle)
	switch axis {
	case AxisX:
		return Mat3{1, 0, 0, 0, c, -s, 0, s, c}
	case AxisY:
		return Mat3{c, 0, s, 0, 1, 0, -s, 0, c}
	default:
		return Mat3{c, -s, 0, s, c, 0, 0, 0, 1}
	}
}

// TaitBryan extracts the angles (radians) of the intrinsic rotation
// sequence i, j, k from m, such that m = R_i(a) · R_j(b) · R_k(c).
// The axes must be distinct.
//
// The middle angle lies in [-π/2, π/2]. When |sin b| is within
// gimbalTolerance of 1, that is b within about 8e-5° of ±90°, the first and
// third axes coincide; c is then fixed at 0 and a carries the combined
// rotation. The returned triple reproduces m to within about 2e-5° there.
func TaitBryan(m Mat3, i, j, k int) (a, b, c float64) {
	// +1 for cyclic sequences (XYZ, YZX, ZXY), -1 otherwise.
	sign := 1.0
	if (j-i+mat3Dim)%mat3Dim != 1 {
		sign = -1.0
	}

	sinB := Clamp(sign*m.At(i, k), -1, 1)
	b = math.Asin(sinB)

	if math.Abs(sinB) > 1-gimbalTolerance {
		a = math.Atan2(math.Copysign(1, sinB)*m.At(j, i), m.At(j, j))
		return a, b, 0
	}

	a = math.Atan2(-sign*m.At(j, k), m.At(k, k))
	c = math.Atan2(-sign*m.At(i, j), m.At(i, i))
	return a, b, c
}
