// Package mathutil provides angle and rotation-matrix helpers shared by the
// orientation code.
package mathutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

// DegToRad converts degrees to radians.
func DegToRad[T constraints.Float](degrees T) T {
	return degrees * T(math.Pi) / degreesPerHalfTurn
}

// RadToDeg converts radians to degrees.
func RadToDeg[T constraints.Float](radians T) T {
	return radians * degreesPerHalfTurn / T(math.Pi)
}

// Clamp limits v to [lo, hi]. NaN is returned unchanged.
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SafeAcos evaluates acos after clamping its argument to [-1, 1].
func SafeAcos(x float64) float64 {
	return math.Acos(Clamp(x, -1, 1))
}

// WrapDegrees maps an angle onto (-180, 180].
func WrapDegrees(deg float64) float64 {
	wrapped := math.Mod(deg, degreesPerTurn)
	if wrapped <= -degreesPerHalfTurn {
		wrapped += degreesPerTurn
	} else if wrapped > degreesPerHalfTurn {
		wrapped -= degreesPerTurn
	}
	return wrapped
}

// AngleDiffDegrees returns the signed difference a-b folded onto (-180, 180].
func AngleDiffDegrees(a, b float64) float64 {
	return WrapDegrees(a - b)
}

// IsFinite reports whether all values are neither NaN nor Inf.
func IsFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
