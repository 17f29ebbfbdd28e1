// Command rotinterp compares naive Euler-angle interpolation with
// quaternion SLERP between two orientations and reports time, peak memory
// and path smoothness for both.
//
// Usage:
//
//	rotinterp                                  # 0,0,0 → 90,45,30, 100 steps
//	rotinterp -end 170,10,-170 -steps 500
//	rotinterp -order ZYX -runs 20 -dump
//	rotinterp -config run.json -v
//
// Flags given on the command line override values from -config.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	rotinterp "github.com/tphakala/go-rotation-interp"
	"github.com/tphakala/go-rotation-interp/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("rotinterp", flag.ContinueOnError)
	var (
		start      = fs.String("start", "", "Start orientation \"x,y,z\" in degrees (default "+defaultStart+")")
		end        = fs.String("end", "", "End orientation \"x,y,z\" in degrees (default "+defaultEnd+")")
		order      = fs.String("order", "", "Axis order: uppercase intrinsic (XYZ), lowercase extrinsic (xyz, default)")
		steps      = fs.Int("steps", 0, fmt.Sprintf("Samples per path (default %d)", rotinterp.DefaultSteps))
		runs       = fs.Int("runs", 0, "Measured runs per strategy (default 1)")
		interval   = fs.Duration("sample-interval", 0, "Heap sampling interval (default 20µs)")
		skipGC     = fs.Bool("skip-gc", false, "Do not collect garbage before each run")
		configPath = fs.String("config", "", "JSON config file")
		dump       = fs.Bool("dump", false, "Print every sample of both paths")
		verbose    = fs.Bool("v", false, "Verbose output")
		cpuprofile = fs.String("cpuprofile", "", "Write CPU profile to file")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cfg config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
		if *verbose {
			log.Printf("Loaded config %s", *configPath)
		}
	}

	flags := config.Flags{
		Start:          *start,
		End:            *end,
		Order:          *order,
		SampleInterval: *interval,
		SkipGC:         *skipGC,
		Dump:           *dump,
	}
	// An explicit 0 must reach validation instead of meaning "unset".
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "steps":
			flags.Steps = steps
		case "runs":
			flags.Runs = runs
		}
	})

	if err := cfg.Resolve(flags); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	comparison, err := cfg.Comparison()
	if err != nil {
		return err
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if *verbose {
		log.Printf("Start: %v", comparison.Start)
		log.Printf("End: %v", comparison.End)
		log.Printf("Order: %s", comparison.Order)
		log.Printf("Steps: %d, runs: %d", comparison.Steps, comparison.Runs)
	}

	result, err := rotinterp.Compare(comparison)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	if *verbose {
		log.Printf("%s: %d samples measured", result.Euler.Name, len(result.Euler.Samples))
		log.Printf("%s: %d samples measured", result.Slerp.Name, len(result.Slerp.Samples))
	}

	return result.ExportTo(&consoleReport{w: os.Stdout, dump: cfg.Dump})
}
