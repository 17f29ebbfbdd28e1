package rotinterp

import (
	"math"
	"math/rand/v2"

	"github.com/tphakala/go-rotation-interp/internal/testutil"
)

// Shared test fixtures
var (
	scenarioStart = EulerAngles{X: 0, Y: 0, Z: 0}
	scenarioEnd   = EulerAngles{X: 90, Y: 45, Z: 30}

	allOrders = []AxisOrder{
		"XYZ", "XZY", "YXZ", "YZX", "ZXY", "ZYX",
		"xyz", "xzy", "yxz", "yzx", "zxy", "zyx",
	}
)

const scenarioSteps = 100

func q4(q Quaternion) testutil.Quat {
	return testutil.Quat{q.X, q.Y, q.Z, q.W}
}

func e3(e EulerAngles) [3]float64 {
	return [3]float64{e.X, e.Y, e.Z}
}

// newTestRand returns a deterministic generator so failures reproduce.
func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x5eed, 0x51e4b))
}

// randomUnitQuaternion draws a uniformly distributed rotation (Shoemake).
func randomUnitQuaternion(rng *rand.Rand) Quaternion {
	u1, u2, u3 := rng.Float64(), rng.Float64(), rng.Float64()
	a, b := math.Sqrt(1-u1), math.Sqrt(u1)
	return Quaternion{
		X: a * math.Sin(2*math.Pi*u2),
		Y: a * math.Cos(2*math.Pi*u2),
		Z: b * math.Sin(2*math.Pi*u3),
		W: b * math.Cos(2*math.Pi*u3),
	}
}

func mustRotation(angles EulerAngles, order AxisOrder) Rotation {
	return MustFromEuler(angles, order)
}
