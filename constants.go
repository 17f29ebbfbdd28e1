package rotinterp

// Default parameters
const (
	// DefaultSteps is the sample count used by the comparison CLI.
	DefaultSteps = 100

	defaultRuns = 1 // Benchmark repetitions when ComparisonConfig.Runs is 0
)

// Quaternion tolerances
const (
	// UnitTolerance is the maximum |‖q‖-1| accepted by Build.
	UnitTolerance = 1e-6

	// minQuaternionNorm is the norm below which a quaternion cannot be
	// renormalized into a rotation.
	minQuaternionNorm = 1e-12
)

// SLERP constants
const (
	// slerpLinearThreshold is the dot product above which the trigonometric
	// form is replaced by normalized lerp (sin θ → 0).
	slerpLinearThreshold = 0.9995
)

// Axis order layout
const (
	axisOrderLen = 3 // Letters in an axis order string
	axesPerOrder = 3 // Rotations composed per Euler triple
)

// Angle constants
const (
	halfAngleDivisor = 2.0 // Quaternions encode half the rotation angle
	rotationPerArc   = 4.0 // Rotation angle = 4·atan2(‖a-b‖, ‖a+b‖)
)

// Strategy names reported in benchmark samples.
const (
	EulerStrategyName = "Euler"
	SlerpStrategyName = "SLERP"
)
