package rotinterp

import (
	"fmt"
	"time"

	"github.com/tphakala/go-rotation-interp/internal/memtrace"
)

// InterpolationFunc is one interpolation run under measurement. Arguments
// are bound by closure.
type InterpolationFunc func() (OrientationPath, error)

// BenchmarkSample is the measurement of a single interpolation run.
type BenchmarkSample struct {
	// Name identifies the strategy that was measured.
	Name string

	// Elapsed is the wall-clock duration of the run (monotonic clock).
	Elapsed time.Duration

	// PeakMemoryBytes is the largest live-heap growth observed during the
	// run, not the cumulative allocation.
	PeakMemoryBytes uint64

	// AllocatedBytes is the cumulative allocation during the run.
	AllocatedBytes uint64
}

// ElapsedSeconds returns Elapsed in seconds.
func (s BenchmarkSample) ElapsedSeconds() float64 {
	return s.Elapsed.Seconds()
}

// BenchmarkConfig holds measurement settings.
type BenchmarkConfig struct {
	// SampleInterval is the heap sampling period. Set to 0 for the default.
	SampleInterval time.Duration

	// SkipGC disables the collection that settles the heap before each run.
	SkipGC bool
}

// Validate checks the configuration.
func (c BenchmarkConfig) Validate() error {
	if c.SampleInterval < 0 {
		return fmt.Errorf("%w: sample interval must not be negative, got %v", ErrInvalidArgument, c.SampleInterval)
	}
	return nil
}

// Benchmark measures wall-clock time and peak memory of interpolation
// runs.
//
// Memory tracing uses a process-wide facility, so runs are serialized:
// starting a run while another Benchmark (in any goroutine) is measuring
// fails with memtrace.ErrSessionActive.
type Benchmark struct {
	trace memtrace.Config
}

// NewBenchmark creates a benchmark harness.
func NewBenchmark(config BenchmarkConfig) (*Benchmark, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Benchmark{
		trace: memtrace.Config{
			SampleInterval: config.SampleInterval,
			SkipGC:         config.SkipGC,
		},
	}, nil
}

// Run invokes fn once under measurement. The tracer and timer start right
// before the call and stop right after it; the tracer is released on every
// exit path, including errors and panics in fn.
//
// On failure no sample is produced and the error is returned wrapped with
// the run name. Run never retries.
func (b *Benchmark) Run(name string, fn InterpolationFunc) (OrientationPath, BenchmarkSample, error) {
	if fn == nil {
		return nil, BenchmarkSample{}, fmt.Errorf("%w: benchmark %q has no interpolation function", ErrInvalidArgument, name)
	}

	session, err := memtrace.Start(b.trace)
	if err != nil {
		return nil, BenchmarkSample{}, fmt.Errorf("benchmark %q: %w", name, err)
	}
	defer session.Stop()

	start := time.Now()
	path, runErr := fn()
	elapsed := time.Since(start)
	stats := session.Stop()

	if runErr != nil {
		return nil, BenchmarkSample{}, fmt.Errorf("benchmark %q: %w", name, runErr)
	}

	return path, BenchmarkSample{
		Name:            name,
		Elapsed:         elapsed,
		PeakMemoryBytes: stats.PeakBytes,
		AllocatedBytes:  stats.AllocatedBytes,
	}, nil
}

// RunN invokes fn runs times and returns one sample per run together with
// the path of the last run. The first failing run aborts the series.
func (b *Benchmark) RunN(name string, fn InterpolationFunc, runs int) (OrientationPath, []BenchmarkSample, error) {
	if runs < 1 {
		return nil, nil, fmt.Errorf("%w: runs must be at least 1, got %d", ErrInvalidArgument, runs)
	}

	samples := make([]BenchmarkSample, 0, runs)
	var path OrientationPath
	for i := range runs {
		p, sample, err := b.Run(name, fn)
		if err != nil {
			return nil, nil, fmt.Errorf("run %d/%d: %w", i+1, runs, err)
		}
		path = p
		samples = append(samples, sample)
	}
	return path, samples, nil
}

// RunInterpolator validates ip and then measures runs invocations of it.
// Invalid input is reported before any measurement starts.
func (b *Benchmark) RunInterpolator(ip Interpolator, runs int) (OrientationPath, []BenchmarkSample, error) {
	if ip == nil {
		return nil, nil, fmt.Errorf("%w: nil interpolator", ErrInvalidArgument)
	}
	if err := ip.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ip.Name(), err)
	}
	return b.RunN(ip.Name(), ip.Interpolate, runs)
}
