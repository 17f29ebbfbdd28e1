// Package memtrace measures peak heap growth over a bracketed computation.
//
// The Go runtime has no per-allocation tracer, so a Session approximates
// one: it settles the heap with a GC, records the live-heap size as a
// baseline, and polls the runtime/metrics live-object gauge from a sampler
// goroutine until Stop. The peak is the largest growth observed over the
// baseline, including a final reading taken while the measured result is
// still reachable.
//
// The gauge counts small objects when the allocator refills a span, not
// per object, so peaks are span-granular: a computation that keeps a few
// hundred bytes alive may read as 0 or as 8 KiB and more. Compare peaks
// of small runs by order of magnitude only.
//
// The runtime's heap statistics are process-wide, so only one Session may
// be active at a time. Start fails with ErrSessionActive instead of
// letting two measurements read each other's allocations.
package memtrace

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/metrics"
	"sync"
	"sync/atomic"
	"time"
)

// ErrSessionActive is returned by Start while another session is running.
var ErrSessionActive = errors.New("memtrace: session already active")

// Global session slot.
var (
	slot   sync.Mutex
	active atomic.Bool
)

// Config controls a tracing session.
type Config struct {
	// SampleInterval is the polling period of the sampler goroutine.
	// Set to 0 to use DefaultSampleInterval.
	SampleInterval time.Duration

	// SkipGC disables the garbage collection that settles the baseline.
	// The baseline then includes garbage that a collection during the
	// traced call may free, which can under-report the peak.
	SkipGC bool
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.SampleInterval < 0 {
		return fmt.Errorf("memtrace: sample interval must not be negative, got %v", c.SampleInterval)
	}
	return nil
}

// Stats is the outcome of one session.
type Stats struct {
	// PeakBytes is the largest live-heap growth over the baseline, in
	// span-sized steps for small objects.
	PeakBytes uint64

	// AllocatedBytes is the cumulative heap allocation during the session.
	// It counts memory that was freed again and is reported for reference.
	AllocatedBytes uint64

	// Samples is the number of gauge readings taken, final reading included.
	Samples int
}

// Session is an active measurement. Stop must be called exactly once per
// Start; further calls return the same Stats.
type Session struct {
	baselineLive   uint64
	baselineAllocs uint64

	readings []metrics.Sample // Owned by Start and Stop

	done chan struct{}
	wg   sync.WaitGroup

	// Written by the sampler goroutine until wg.Wait returns.
	maxLive uint64
	samples int

	stopOnce sync.Once
	stats    Stats
}

// Start acquires the process-wide slot and begins sampling.
func Start(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !slot.TryLock() {
		return nil, ErrSessionActive
	}
	active.Store(true)

	interval := cfg.SampleInterval
	if interval == 0 {
		interval = DefaultSampleInterval
	}

	if !cfg.SkipGC {
		runtime.GC()
	}

	s := &Session{
		readings: newReadings(),
		done:     make(chan struct{}),
	}

	ready := make(chan struct{})
	s.wg.Add(1)
	go s.sample(interval, ready)
	<-ready

	s.baselineLive, s.baselineAllocs = read(s.readings)
	return s, nil
}

// Active reports whether a session currently holds the slot.
func Active() bool {
	return active.Load()
}

// Stop ends sampling, takes a final reading, and releases the slot.
func (s *Session) Stop() Stats {
	s.stopOnce.Do(func() {
		close(s.done)
		s.wg.Wait()

		live, allocs := read(s.readings)
		peak := max(s.maxLive, live)

		s.stats = Stats{
			PeakBytes:      saturatingSub(peak, s.baselineLive),
			AllocatedBytes: saturatingSub(allocs, s.baselineAllocs),
			Samples:        s.samples + 1,
		}

		active.Store(false)
		slot.Unlock()
	})
	return s.stats
}

func (s *Session) sample(interval time.Duration, ready chan<- struct{}) {
	defer s.wg.Done()

	readings := newReadings()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	close(ready)

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			live, _ := read(readings)
			s.maxLive = max(s.maxLive, live)
			s.samples++
		}
	}
}

func newReadings() []metrics.Sample {
	return []metrics.Sample{
		{Name: heapObjectsMetric},
		{Name: heapAllocsMetric},
	}
}

// read returns the live-heap gauge and the cumulative allocation counter.
func read(readings []metrics.Sample) (live, allocs uint64) {
	metrics.Read(readings)
	return uint64Value(readings[0]), uint64Value(readings[1])
}

func uint64Value(s metrics.Sample) uint64 {
	if s.Value.Kind() != metrics.KindUint64 {
		return 0
	}
	return s.Value.Uint64()
}

func saturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
