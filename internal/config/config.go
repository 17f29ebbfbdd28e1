// Package config loads rotinterp run settings from a JSON file and merges
// them with command-line flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	rotinterp "github.com/tphakala/go-rotation-interp"
)

const defaultRuns = 1

// Defaults applied by Resolve to fields left unset by both file and flags.
var (
	DefaultStart = [3]float64{0, 0, 0}
	DefaultEnd   = [3]float64{90, 45, 30}
)

// Config holds one comparison run.
type Config struct {
	// Keyframes in degrees, one element per axis of Order.
	Start *[3]float64 `json:"start,omitempty"`
	End   *[3]float64 `json:"end,omitempty"`

	Order string `json:"order"`

	// Steps and Runs are nil when absent so that an explicit 0 is kept
	// and rejected by Validate.
	Steps *int   `json:"steps,omitempty"`
	Runs  *int   `json:"runs,omitempty"`

	// Measurement settings. SampleInterval is a Go duration string such as
	// "50us".
	SampleInterval string `json:"sample_interval"`
	SkipGC         bool   `json:"skip_gc"`

	// Dump prints every sample of both paths.
	Dump bool `json:"dump"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values mean "not given"; Steps and Runs are nil unless the flag was
// set, including when it was set to 0.
type Flags struct {
	Start          string
	End            string
	Order          string
	Steps          *int
	Runs           *int
	SampleInterval time.Duration
	SkipGC         bool
	Dump           bool
}

// Resolve applies flags on top of the file values, then fills remaining
// empty fields with defaults.
func (c *Config) Resolve(flags Flags) error {
	// CLI flags override config file
	if flags.Start != "" {
		v, err := ParseTriple(flags.Start)
		if err != nil {
			return fmt.Errorf("config: -start: %w", err)
		}
		c.Start = &v
	}
	if flags.End != "" {
		v, err := ParseTriple(flags.End)
		if err != nil {
			return fmt.Errorf("config: -end: %w", err)
		}
		c.End = &v
	}
	if flags.Order != "" {
		c.Order = flags.Order
	}
	if flags.Steps != nil {
		v := *flags.Steps
		c.Steps = &v
	}
	if flags.Runs != nil {
		v := *flags.Runs
		c.Runs = &v
	}
	if flags.SampleInterval != 0 {
		c.SampleInterval = flags.SampleInterval.String()
	}
	c.SkipGC = c.SkipGC || flags.SkipGC
	c.Dump = c.Dump || flags.Dump

	// Defaults
	if c.Start == nil {
		v := DefaultStart
		c.Start = &v
	}
	if c.End == nil {
		v := DefaultEnd
		c.End = &v
	}
	if c.Order == "" {
		c.Order = string(rotinterp.DefaultAxisOrder)
	}
	if c.Steps == nil {
		v := rotinterp.DefaultSteps
		c.Steps = &v
	}
	if c.Runs == nil {
		v := defaultRuns
		c.Runs = &v
	}
	return nil
}

// Comparison converts a resolved Config into the library configuration.
func (c *Config) Comparison() (rotinterp.ComparisonConfig, error) {
	if c.Start == nil || c.End == nil || c.Steps == nil || c.Runs == nil {
		return rotinterp.ComparisonConfig{}, fmt.Errorf("config: not resolved: %w", rotinterp.ErrInvalidArgument)
	}
	// ComparisonConfig reads Runs == 0 as "use the default".
	if *c.Runs < 1 {
		return rotinterp.ComparisonConfig{}, fmt.Errorf("config: runs must be at least 1, got %d: %w", *c.Runs, rotinterp.ErrInvalidArgument)
	}

	order, err := rotinterp.ParseAxisOrder(c.Order)
	if err != nil {
		return rotinterp.ComparisonConfig{}, fmt.Errorf("config: %w", err)
	}

	var interval time.Duration
	if c.SampleInterval != "" {
		interval, err = time.ParseDuration(c.SampleInterval)
		if err != nil {
			return rotinterp.ComparisonConfig{}, fmt.Errorf("config: sample_interval %q: %w", c.SampleInterval, rotinterp.ErrInvalidArgument)
		}
	}

	return rotinterp.ComparisonConfig{
		Start: eulerFromTriple(*c.Start),
		End:   eulerFromTriple(*c.End),
		Order: order,
		Steps: *c.Steps,
		Runs:  *c.Runs,
		Benchmark: rotinterp.BenchmarkConfig{
			SampleInterval: interval,
			SkipGC:         c.SkipGC,
		},
	}, nil
}

// Validate checks a resolved Config.
func (c *Config) Validate() error {
	cc, err := c.Comparison()
	if err != nil {
		return err
	}
	if err := cc.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ParseTriple parses "x,y,z" into three angles. Whitespace around the
// numbers is ignored.
func ParseTriple(s string) ([3]float64, error) {
	var v [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != len(v) {
		return v, fmt.Errorf("%w: want \"x,y,z\", got %q", rotinterp.ErrInvalidArgument, s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [3]float64{}, fmt.Errorf("%w: angle %d of %q: %v", rotinterp.ErrInvalidArgument, i+1, s, err)
		}
		v[i] = f
	}
	return v, nil
}

func eulerFromTriple(v [3]float64) rotinterp.EulerAngles {
	return rotinterp.EulerAngles{X: v[0], Y: v[1], Z: v[2]}
}
