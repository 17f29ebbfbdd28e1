package mathutil

// Principal axis indices used by AxisRotation and TaitBryan.
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

// Angle unit constants
const (
	degreesPerHalfTurn = 180.0
	degreesPerTurn     = 360.0
)

// Matrix layout
const (
	mat3Dim = 3 // Rows and columns of a rotation matrix
)

// Numerical stability thresholds
const (
	// gimbalTolerance is how close |sin(middle angle)| may get to 1 before
	// the first and third axes are treated as aligned. 1e-12 puts the lock
	// band within about 8e-5° of ±90°.
	gimbalTolerance = 1e-12
)
