package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	rotinterp "github.com/tphakala/go-rotation-interp"
)

// consoleReport prints a comparison as plain-text tables.
type consoleReport struct {
	w    io.Writer
	dump bool
}

// Export implements rotinterp.Exporter.
func (r *consoleReport) Export(c *rotinterp.Comparison) error {
	cfg := c.Config
	fmt.Fprintf(r.w, "Euler vs SLERP: %v → %v, order %s, %d steps, %d run(s)\n\n",
		cfg.Start, cfg.End, cfg.Order, cfg.Steps, cfg.Runs)

	tw := tabwriter.NewWriter(r.w, tabMinWidth, tabWidth, tabPadding, tabPadChar, 0)
	results := []rotinterp.StrategyResult{c.Euler, c.Slerp}

	fmt.Fprintln(tw, "Strategy\tMean time (s)\tStdDev (s)\tMin (s)\tMax (s)\tMean peak (KiB)\tMax peak (KiB)")
	for _, res := range results {
		s := res.Summary
		fmt.Fprintf(tw, "%s\t%.6e\t%.2e\t%.6e\t%.6e\t%.2f\t%.2f\n",
			res.Name, s.MeanSeconds, s.StdDevSeconds, s.MinSeconds, s.MaxSeconds,
			s.MeanPeakBytes/bytesPerKibibyte, float64(s.MaxPeakBytes)/bytesPerKibibyte)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Strategy\tTotal arc (°)\tDirect (°)\tDetour (°)\tMean step (°)\tStep stddev (°)\tMax step dev (°)")
	for _, res := range results {
		st := res.Stats
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.6f\t%.6f\t%.3e\t%.3e\n",
			res.Name, st.TotalArc, st.DirectAngle, st.Detour(), st.MeanStep, st.StdDevStep, st.MaxStepDeviation)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if r.dump {
		return r.writeDump(c)
	}
	return nil
}

// writeDump prints both paths side by side, one row per sample.
func (r *consoleReport) writeDump(c *rotinterp.Comparison) error {
	fmt.Fprintln(r.w)
	tw := tabwriter.NewWriter(r.w, tabMinWidth, tabWidth, tabPadding, tabPadChar, tabwriter.AlignRight)
	fmt.Fprintln(tw, "i\tEuler x\tEuler y\tEuler z\tSLERP x\tSLERP y\tSLERP z\t")
	for i := range c.Euler.Path {
		e := c.Euler.Path[i]
		s := c.Slerp.Path[i]
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t\n", i, e.X, e.Y, e.Z, s.X, s.Y, s.Z)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
