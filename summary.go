package rotinterp

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates repeated benchmark samples of one strategy.
type Summary struct {
	Name string
	Runs int

	MeanSeconds   float64
	StdDevSeconds float64 // Sample standard deviation, 0 for a single run
	MinSeconds    float64
	MaxSeconds    float64

	MeanPeakBytes float64
	MaxPeakBytes  uint64
}

// Summarize computes time and memory statistics over samples. The name is
// taken from the first sample.
func Summarize(samples []BenchmarkSample) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, fmt.Errorf("%w: no samples to summarize", ErrInvalidArgument)
	}

	seconds := make([]float64, len(samples))
	peaks := make([]float64, len(samples))
	var maxPeak uint64
	for i, s := range samples {
		seconds[i] = s.ElapsedSeconds()
		peaks[i] = float64(s.PeakMemoryBytes)
		maxPeak = max(maxPeak, s.PeakMemoryBytes)
	}

	mean, std := stat.MeanStdDev(seconds, nil)
	if len(samples) == 1 {
		std = 0
	}

	return Summary{
		Name:          samples[0].Name,
		Runs:          len(samples),
		MeanSeconds:   mean,
		StdDevSeconds: std,
		MinSeconds:    floats.Min(seconds),
		MaxSeconds:    floats.Max(seconds),
		MeanPeakBytes: stat.Mean(peaks, nil),
		MaxPeakBytes:  maxPeak,
	}, nil
}
