package rotinterp

import (
	"errors"
	"fmt"
)

// ComparisonConfig describes a side-by-side run of both strategies.
type ComparisonConfig struct {
	// Start and End are the keyframe orientations in degrees.
	Start, End EulerAngles

	// Order is the axis order of Start, End and of the reported paths.
	// Empty means DefaultAxisOrder.
	Order AxisOrder

	// Steps is the number of samples per path. Must be at least 1.
	Steps int

	// Runs is the number of measured runs per strategy. 0 means 1.
	Runs int

	// Benchmark configures the measurement harness.
	Benchmark BenchmarkConfig
}

// withDefaults returns a copy with zero fields replaced by defaults.
func (c ComparisonConfig) withDefaults() ComparisonConfig {
	if c.Order == "" {
		c.Order = DefaultAxisOrder
	}
	if c.Runs == 0 {
		c.Runs = defaultRuns
	}
	return c
}

// Validate checks the configuration after defaults are applied.
func (c ComparisonConfig) Validate() error {
	c = c.withDefaults()

	if err := validateSteps(c.Steps); err != nil {
		return err
	}
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs must be at least 1, got %d", ErrInvalidArgument, c.Runs)
	}
	if err := c.Order.Validate(); err != nil {
		return err
	}
	if !c.Start.IsFinite() || !c.End.IsFinite() {
		return fmt.Errorf("%w: non-finite keyframe angles %v → %v", ErrInvalidArgument, c.Start, c.End)
	}
	return c.Benchmark.Validate()
}

// StrategyResult is the measured output of one strategy.
type StrategyResult struct {
	Name    string
	Path    OrientationPath
	Samples []BenchmarkSample
	Summary Summary
	Stats   PathStats
}

// Comparison holds the results of both strategies over the same keyframes.
type Comparison struct {
	Config ComparisonConfig
	Euler  StrategyResult
	Slerp  StrategyResult
}

// Compare converts the keyframes, then measures the Euler strategy followed
// by the SLERP strategy. Everything is validated before the first
// measurement starts.
func Compare(config ComparisonConfig) (*Comparison, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config = config.withDefaults()

	start, err := FromEuler(config.Start, config.Order)
	if err != nil {
		return nil, fmt.Errorf("start orientation: %w", err)
	}
	end, err := FromEuler(config.End, config.Order)
	if err != nil {
		return nil, fmt.Errorf("end orientation: %w", err)
	}

	strategies := []Interpolator{
		EulerStrategy{Start: config.Start, End: config.End, Steps: config.Steps},
		SlerpStrategy{Start: start, End: end, Steps: config.Steps, Order: config.Order},
	}
	for _, s := range strategies {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}
	}

	bench, err := NewBenchmark(config.Benchmark)
	if err != nil {
		return nil, err
	}

	results := make([]StrategyResult, len(strategies))
	for i, s := range strategies {
		if results[i], err = measure(bench, s, config); err != nil {
			return nil, err
		}
	}

	return &Comparison{
		Config: config,
		Euler:  results[0],
		Slerp:  results[1],
	}, nil
}

func measure(bench *Benchmark, s Interpolator, config ComparisonConfig) (StrategyResult, error) {
	path, samples, err := bench.RunInterpolator(s, config.Runs)
	if err != nil {
		return StrategyResult{}, err
	}
	summary, err := Summarize(samples)
	if err != nil {
		return StrategyResult{}, fmt.Errorf("%s: %w", s.Name(), err)
	}
	stats, err := AnalyzePath(path, config.Order)
	if err != nil {
		return StrategyResult{}, fmt.Errorf("%s: %w", s.Name(), err)
	}
	return StrategyResult{
		Name:    s.Name(),
		Path:    path,
		Samples: samples,
		Summary: summary,
		Stats:   stats,
	}, nil
}

// Exporter receives comparison results, for example to plot the two paths
// and the time and memory figures.
type Exporter interface {
	Export(c *Comparison) error
}

// ExporterFunc adapts a function to Exporter.
type ExporterFunc func(c *Comparison) error

// Export implements Exporter.
func (f ExporterFunc) Export(c *Comparison) error {
	return f(c)
}

// ExportTo hands c to every exporter and joins their errors.
func (c *Comparison) ExportTo(exporters ...Exporter) error {
	var errs []error
	for _, e := range exporters {
		if err := e.Export(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
