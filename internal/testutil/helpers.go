// Package testutil provides reusable test helper functions for rotation and
// interpolation tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-rotation-interp/internal/mathutil"
	"gonum.org/v1/gonum/floats/scalar"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance  = 1e-10
	EndpointTolerance = 1e-9
	UnitTolerance     = 1e-12
	AngleTolerance    = 1e-7 // Degrees
)

// Quat is the component view of a quaternion used by these helpers, so
// that testutil does not import the package under test.
type Quat [4]float64

// AssertQuatInDelta verifies component-wise equality within tolerance.
func AssertQuatInDelta(t *testing.T, expected, actual Quat, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := range expected {
		if !scalar.EqualWithinAbs(expected[i], actual[i], tolerance) {
			return assert.Fail(t, fmt.Sprintf("quaternions differ: component %d: expected %v, actual %v (tolerance %g)", i, expected, actual, tolerance), msgAndArgs...)
		}
	}
	return true
}

// AssertQuatEquivalent verifies that two quaternions describe the same
// rotation: q ≈ r or q ≈ -r.
func AssertQuatEquivalent(t *testing.T, expected, actual Quat, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	neg := Quat{-expected[0], -expected[1], -expected[2], -expected[3]}
	if withinAbs(expected, actual, tolerance) || withinAbs(neg, actual, tolerance) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("quaternions are not equivalent: expected ±%v, actual %v (tolerance %g)", expected, actual, tolerance), msgAndArgs...)
}

// AssertUnitNorm verifies that ‖q‖ = 1 within tolerance.
func AssertUnitNorm(t *testing.T, q Quat, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	norm := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if len(msgAndArgs) == 0 {
		msgAndArgs = []any{"norm of %v is %v", q, norm}
	}
	return assert.InDelta(t, 1.0, norm, tolerance, msgAndArgs...)
}

// AssertEulerInDelta verifies that two angle triples (degrees) match within
// tolerance, comparing each difference modulo 360°.
func AssertEulerInDelta(t *testing.T, expected, actual [3]float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := range expected {
		diff := mathutil.AngleDiffDegrees(actual[i], expected[i])
		if math.IsNaN(diff) || math.Abs(diff) > tolerance {
			return assert.Fail(t, fmt.Sprintf("angles differ: axis %d: expected %v, actual %v (tolerance %g)", i, expected, actual, tolerance), msgAndArgs...)
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("found NaN: s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("found Inf: s[%d] is Inf", i), msgAndArgs...)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is strictly increasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not monotonically increasing: s[%d]=%f <= s[%d]=%f", i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertMonotonicDecreasing verifies that a slice is strictly decreasing.
func AssertMonotonicDecreasing(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] >= s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not monotonically decreasing: s[%d]=%f >= s[%d]=%f", i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertAllInDelta verifies that every element equals expected within tolerance.
func AssertAllInDelta(t *testing.T, s []float64, expected, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if !scalar.EqualWithinAbs(v, expected, tolerance) {
			return assert.Fail(t, fmt.Sprintf("value differs: s[%d]=%.12f, want %.12f ± %g", i, v, expected, tolerance), msgAndArgs...)
		}
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, fmt.Sprintf("value out of range: value %f is outside range [%f, %f]", value, minVal, maxVal), msgAndArgs...)
	}
	return true
}

func withinAbs(a, b Quat, tolerance float64) bool {
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], tolerance) {
			return false
		}
	}
	return true
}
