package rotinterp

import (
	"fmt"
	"math"

	"github.com/tphakala/go-rotation-interp/internal/mathutil"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AngularDistance returns the angle in degrees of the rotation taking a to
// b, in [0, 180]. Both must be unit quaternions; the sign of either does
// not matter.
//
// The half-angle form 4·atan2(‖a-b‖, ‖a+b‖) is used instead of
// 2·acos(|a·b|), which loses precision for small angles.
func AngularDistance(a, b Quaternion) float64 {
	if a.Dot(b) < 0 {
		b = b.Neg()
	}
	diff := a.Add(b.Neg()).Norm()
	sum := a.Add(b).Norm()
	return mathutil.RadToDeg(rotationPerArc * math.Atan2(diff, sum))
}

// PathStats describes the angular motion along an orientation path.
type PathStats struct {
	// StepAngles holds the rotation angle (degrees) between consecutive samples.
	StepAngles []float64

	// TotalArc is the sum of StepAngles, the angle actually travelled.
	TotalArc float64

	// DirectAngle is the rotation angle between the first and last sample,
	// the length of the shortest possible path.
	DirectAngle float64

	// MeanStep and StdDevStep summarize StepAngles. A constant angular
	// velocity path has StdDevStep ≈ 0.
	MeanStep   float64
	StdDevStep float64

	// MaxStepDeviation is the largest |step - MeanStep|.
	MaxStepDeviation float64
}

// Detour returns TotalArc - DirectAngle, how far the path strays from the
// shortest arc. It is ≈ 0 for SLERP.
func (s PathStats) Detour() float64 {
	return s.TotalArc - s.DirectAngle
}

// AnalyzePath measures the angular motion of path, reading its Euler
// angles in order. Paths with fewer than two samples have no steps and
// zero statistics.
func AnalyzePath(path OrientationPath, order AxisOrder) (PathStats, error) {
	qs, err := path.Quaternions(order)
	if err != nil {
		return PathStats{}, fmt.Errorf("analyze path: %w", err)
	}
	if len(qs) < 2 {
		return PathStats{StepAngles: []float64{}}, nil
	}

	steps := make([]float64, len(qs)-1)
	for i := range steps {
		steps[i] = AngularDistance(qs[i], qs[i+1])
	}

	mean, std := stat.MeanStdDev(steps, nil)
	if len(steps) == 1 {
		std = 0
	}

	var maxDev float64
	for _, s := range steps {
		maxDev = max(maxDev, math.Abs(s-mean))
	}

	return PathStats{
		StepAngles:       steps,
		TotalArc:         floats.Sum(steps),
		DirectAngle:      AngularDistance(qs[0], qs[len(qs)-1]),
		MeanStep:         mean,
		StdDevStep:       std,
		MaxStepDeviation: maxDev,
	}, nil
}

// DistancesFrom returns the rotation angle from ref to every quaternion in qs.
func DistancesFrom(ref Quaternion, qs []Quaternion) []float64 {
	d := make([]float64, len(qs))
	for i, q := range qs {
		d[i] = AngularDistance(ref, q)
	}
	return d
}
