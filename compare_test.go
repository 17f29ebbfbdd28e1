package rotinterp

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-rotation-interp/internal/memtrace"
	"github.com/tphakala/go-rotation-interp/internal/testutil"
)

func scenarioConfig() ComparisonConfig {
	return ComparisonConfig{
		Start: scenarioStart,
		End:   scenarioEnd,
		Steps: scenarioSteps,
	}
}

// TestCompare tests the complete side-by-side run with defaults.
func TestCompare(t *testing.T) {
	c, err := Compare(scenarioConfig())
	require.NoError(t, err)

	assert.Equal(t, DefaultAxisOrder, c.Config.Order)
	assert.Equal(t, 1, c.Config.Runs)

	assert.Equal(t, EulerStrategyName, c.Euler.Name)
	assert.Equal(t, SlerpStrategyName, c.Slerp.Name)

	for _, r := range []StrategyResult{c.Euler, c.Slerp} {
		require.Len(t, r.Path, scenarioSteps, r.Name)
		require.Len(t, r.Samples, 1, r.Name)
		assert.Equal(t, 1, r.Summary.Runs, r.Name)
		assert.Equal(t, r.Name, r.Summary.Name)
		testutil.AssertEulerInDelta(t, e3(scenarioStart), e3(r.Path[0]), 1e-9, r.Name)
		testutil.AssertEulerInDelta(t, e3(scenarioEnd), e3(r.Path[scenarioSteps-1]), 1e-7, r.Name)
	}

	assert.Greater(t, c.Euler.Stats.Detour(), 1.0)
	assert.InDelta(t, 0.0, c.Slerp.Stats.Detour(), 1e-6)
	assert.Greater(t, c.Euler.Stats.StdDevStep, c.Slerp.Stats.StdDevStep)
	assert.False(t, memtrace.Active())
}

// TestCompare_Runs tests repeated measurement.
func TestCompare_Runs(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Runs = 3
	cfg.Order = IntrinsicXYZ

	c, err := Compare(cfg)
	require.NoError(t, err)
	assert.Len(t, c.Euler.Samples, 3)
	assert.Len(t, c.Slerp.Samples, 3)
	assert.Equal(t, 3, c.Slerp.Summary.Runs)
	assert.GreaterOrEqual(t, c.Slerp.Summary.MaxSeconds, c.Slerp.Summary.MinSeconds)
}

// TestCompare_Invalid tests that bad configuration fails before any
// measurement. The test holds the tracer to prove no run was attempted.
func TestCompare_Invalid(t *testing.T) {
	session, err := memtrace.Start(memtrace.Config{})
	require.NoError(t, err)
	defer session.Stop()

	tests := []struct {
		name   string
		mutate func(*ComparisonConfig)
	}{
		{"Zero steps", func(c *ComparisonConfig) { c.Steps = 0 }},
		{"Negative runs", func(c *ComparisonConfig) { c.Runs = -1 }},
		{"Bad order", func(c *ComparisonConfig) { c.Order = "ABC" }},
		{"NaN start", func(c *ComparisonConfig) { c.Start.X = math.NaN() }},
		{"Inf end", func(c *ComparisonConfig) { c.End.Z = math.Inf(1) }},
		{"Negative interval", func(c *ComparisonConfig) { c.Benchmark.SampleInterval = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := scenarioConfig()
			tt.mutate(&cfg)
			c, err := Compare(cfg)
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.NotErrorIs(t, err, memtrace.ErrSessionActive)
			assert.Nil(t, c)
		})
	}
}

// TestComparison_ExportTo tests fan-out to exporters and error joining.
func TestComparison_ExportTo(t *testing.T) {
	c, err := Compare(scenarioConfig())
	require.NoError(t, err)

	var seen []*Comparison
	record := ExporterFunc(func(got *Comparison) error {
		seen = append(seen, got)
		return nil
	})
	errA := errors.New("plot failed")
	errB := errors.New("disk full")
	fail := func(e error) Exporter {
		return ExporterFunc(func(*Comparison) error { return e })
	}

	require.NoError(t, c.ExportTo())
	require.NoError(t, c.ExportTo(record, record))
	assert.Len(t, seen, 2)
	assert.Same(t, c, seen[0])

	err = c.ExportTo(fail(errA), record, fail(errB))
	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
	assert.Len(t, seen, 3, "a failing exporter does not stop the others")
}
