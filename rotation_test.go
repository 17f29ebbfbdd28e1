package rotinterp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-rotation-interp/internal/testutil"
)

// TestFromEuler_KnownValues tests conversions against reference quaternions.
func TestFromEuler_KnownValues(t *testing.T) {
	s := math.Sqrt2 / 2

	tests := []struct {
		name     string
		angles   EulerAngles
		order    AxisOrder
		expected Quaternion
	}{
		{"Identity", EulerAngles{}, ExtrinsicXYZ, IdentityQuaternion()},
		{"X 90", EulerAngles{X: 90}, ExtrinsicXYZ, Quaternion{X: s, W: s}},
		{"Y 90", EulerAngles{Y: 90}, IntrinsicXYZ, Quaternion{Y: s, W: s}},
		{"Z -90", EulerAngles{Z: -90}, IntrinsicXYZ, Quaternion{Z: -s, W: s}},
		{
			"Extrinsic 90-45-30", scenarioEnd, ExtrinsicXYZ,
			Quaternion{X: 0.560985526796931, Y: 0.43045933457687935, Z: -0.09229595564125725, W: 0.7010573846499779},
		},
		{
			"Intrinsic 90-45-30", scenarioEnd, IntrinsicXYZ,
			Quaternion{X: 0.7010573846499778, Y: 0.09229595564125731, Z: 0.43045933457687935, W: 0.560985526796931},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := FromEuler(tt.angles, tt.order)
			require.NoError(t, err)
			testutil.AssertQuatInDelta(t, q4(tt.expected), q4(r.Quaternion()), 1e-12)
			testutil.AssertUnitNorm(t, q4(r.Quaternion()), testutil.UnitTolerance)
		})
	}
}

// TestFromEuler_ExtrinsicIsReversedIntrinsic tests that extrinsic abc with
// angles (α, β, γ) equals intrinsic CBA with angles (γ, β, α).
func TestFromEuler_ExtrinsicIsReversedIntrinsic(t *testing.T) {
	angles := EulerAngles{X: 20, Y: -35, Z: 110}
	pairs := map[AxisOrder]AxisOrder{
		"xyz": "ZYX", "xzy": "YZX", "yxz": "ZXY",
		"yzx": "XZY", "zxy": "YXZ", "zyx": "XYZ",
	}

	for ext, in := range pairs {
		e := mustRotation(angles, ext)
		i := mustRotation(EulerAngles{X: angles.Z, Y: angles.Y, Z: angles.X}, in)
		testutil.AssertQuatEquivalent(t, q4(e.Quaternion()), q4(i.Quaternion()), 1e-12, "%s vs %s", ext, in)
	}
}

// TestFromEuler_Invalid tests argument validation.
func TestFromEuler_Invalid(t *testing.T) {
	_, err := FromEuler(EulerAngles{X: math.NaN()}, ExtrinsicXYZ)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = FromEuler(EulerAngles{Y: math.Inf(1)}, ExtrinsicXYZ)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = FromEuler(EulerAngles{}, "XYX")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// TestRotation_EulerRoundTrip tests fromEuler(e, o).toEuler(o) ≈ e for
// every order away from gimbal lock, going through the quaternion.
func TestRotation_EulerRoundTrip(t *testing.T) {
	angles := []EulerAngles{
		{X: 0, Y: 0, Z: 0},
		{X: 90, Y: 45, Z: 30},
		{X: -170, Y: 89, Z: 175},
		{X: 45, Y: -89.5, Z: -120},
		{X: 179, Y: 10, Z: -179},
		{X: -30, Y: 60, Z: 0.001},
	}

	for _, o := range allOrders {
		t.Run(string(o), func(t *testing.T) {
			for _, e := range angles {
				r, err := FromQuaternion(mustRotation(e, o).Quaternion())
				require.NoError(t, err)

				back, err := r.Euler(o)
				require.NoError(t, err)
				testutil.AssertEulerInDelta(t, e3(e), e3(back), testutil.AngleTolerance, "order %s angles %v", o, e)
			}
		})
	}
}

// TestRotation_EulerSameOrderIsExact tests that angles given on input are
// returned unchanged for the same order.
func TestRotation_EulerSameOrderIsExact(t *testing.T) {
	e := EulerAngles{X: 370, Y: 95, Z: -200}
	r := mustRotation(e, IntrinsicXYZ)

	back, err := r.Euler(IntrinsicXYZ)
	require.NoError(t, err)
	assert.Equal(t, e, back)
}

// TestRotation_EulerOtherOrder tests conversion between orders preserves
// the rotation.
func TestRotation_EulerOtherOrder(t *testing.T) {
	r := mustRotation(scenarioEnd, ExtrinsicXYZ)

	for _, o := range allOrders {
		e, err := r.Euler(o)
		require.NoError(t, err)
		testutil.AssertQuatEquivalent(t, q4(r.Quaternion()), q4(mustRotation(e, o).Quaternion()), 1e-12, "order %s", o)
	}
}

// TestRotation_GimbalLock tests that a ±90° middle angle never yields NaN
// and that the extracted angles reproduce the rotation.
func TestRotation_GimbalLock(t *testing.T) {
	for _, o := range allOrders {
		for _, mid := range []float64{90, -90, 90 - 1e-10, -90 + 1e-10} {
			r, err := FromQuaternion(mustRotation(EulerAngles{X: 25, Y: mid, Z: 40}, o).Quaternion())
			require.NoError(t, err)

			back, err := r.Euler(o)
			require.NoError(t, err)
			testutil.AssertNoNaNOrInf(t, e3ToSlice(back))
			testutil.AssertInRange(t, back.Y, -90, 90)
			testutil.AssertQuatEquivalent(t, q4(r.Quaternion()), q4(mustRotation(back, o).Quaternion()), 1e-6,
				"order %s middle %v", o, mid)
		}
	}
}

// TestFromQuaternion tests renormalization and rejection.
func TestFromQuaternion(t *testing.T) {
	r, err := FromQuaternion(Quaternion{X: 3, W: 4})
	require.NoError(t, err)
	testutil.AssertQuatInDelta(t, testutil.Quat{0.6, 0, 0, 0.8}, q4(r.Quaternion()), 1e-15)
	assert.True(t, r.IsValid())

	_, err = FromQuaternion(Quaternion{})
	require.ErrorIs(t, err, ErrInvalidRotation)

	_, err = FromQuaternion(Quaternion{W: math.NaN()})
	require.ErrorIs(t, err, ErrInvalidRotation)
}

// TestRotation_ZeroValue tests that the zero Rotation is rejected.
func TestRotation_ZeroValue(t *testing.T) {
	var r Rotation
	assert.False(t, r.IsValid())

	_, err := r.Euler(ExtrinsicXYZ)
	require.ErrorIs(t, err, ErrInvalidRotation)
}

// TestRotation_EulerBadOrder tests order validation on extraction.
func TestRotation_EulerBadOrder(t *testing.T) {
	_, err := mustRotation(scenarioEnd, ExtrinsicXYZ).Euler("xx")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// TestMustFromEuler_Panics tests the panic on invalid input.
func TestMustFromEuler_Panics(t *testing.T) {
	assert.Panics(t, func() { MustFromEuler(EulerAngles{}, "bad") })
}

func e3ToSlice(e EulerAngles) []float64 {
	return []float64{e.X, e.Y, e.Z}
}

// BenchmarkFromEuler benchmarks Euler → quaternion conversion.
func BenchmarkFromEuler(b *testing.B) {
	for b.Loop() {
		_, _ = FromEuler(scenarioEnd, ExtrinsicXYZ)
	}
}

// BenchmarkRotation_Euler benchmarks quaternion → Euler extraction.
func BenchmarkRotation_Euler(b *testing.B) {
	r, err := FromQuaternion(mustRotation(scenarioEnd, ExtrinsicXYZ).Quaternion())
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_, _ = r.Euler(ExtrinsicXYZ)
	}
}
