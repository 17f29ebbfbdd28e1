// Package rotinterp interpolates between two 3-D orientations and compares
// two strategies for doing so: naive per-axis blending of Euler angles and
// spherical linear interpolation (SLERP) of unit quaternions.
//
// # Features
//
//   - Euler angle ↔ quaternion conversion for all twelve Tait-Bryan axis
//     orders, intrinsic and extrinsic, with gimbal-lock-safe extraction
//   - SLERP with shortest-arc sign correction and a normalized-lerp
//     fallback for nearly identical endpoints
//   - A benchmark harness measuring wall-clock time and peak heap growth
//     per run, with repeated runs and aggregation
//   - Path analysis quantifying angular velocity and detour from the
//     shortest arc
//   - Quaternion algebra backed by gonum's num/quat
//
// # Quick Start
//
// Build the two keyframes and sample both strategies:
//
//	start := rotinterp.EulerAngles{}
//	end := rotinterp.EulerAngles{X: 90, Y: 45, Z: 30}
//
//	eulerPath, err := rotinterp.InterpolateEuler(start, end, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r0, _ := rotinterp.FromEuler(start, rotinterp.DefaultAxisOrder)
//	r1, _ := rotinterp.FromEuler(end, rotinterp.DefaultAxisOrder)
//	slerpPath, err := rotinterp.InterpolateSlerp(
//	    r0.Quaternion(), r1.Quaternion(), 100, rotinterp.DefaultAxisOrder)
//
// For a reusable interpolant evaluated at arbitrary parameters:
//
//	sp, err := rotinterp.Build(r0.Quaternion(), r1.Quaternion())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mid, _ := sp.At(0.5)
//
// # Benchmarking
//
// [Compare] runs both strategies under the [Benchmark] harness and returns
// paths, samples, summaries and path statistics:
//
//	cmp, err := rotinterp.Compare(rotinterp.ComparisonConfig{
//	    Start: start,
//	    End:   end,
//	    Steps: rotinterp.DefaultSteps,
//	    Runs:  10,
//	})
//
// Individual functions can be measured with [Benchmark.Run]. Memory is
// traced by sampling the runtime's live-heap gauge; the facility is
// process-wide, so only one run is measured at a time and concurrent
// attempts fail instead of blocking.
//
// # Axis Orders
//
// An [AxisOrder] follows the common convention of upper case for intrinsic
// sequences ("XYZ") and lower case for extrinsic ones ("xyz").
// [DefaultAxisOrder] is extrinsic "xyz".
//
// # Thread Safety
//
// Conversions, [InterpolateEuler], [InterpolateSlerp] and [SlerpPath] are
// pure and safe for concurrent use. [Benchmark] runs are serialized by the
// memory tracer.
//
// # Errors
//
// Invalid arguments wrap [ErrInvalidArgument] and unusable quaternions wrap
// [ErrInvalidRotation]; test with errors.Is. Numerical edge cases (gimbal
// lock, near-parallel quaternions) are resolved internally and never
// reported as errors.
package rotinterp
