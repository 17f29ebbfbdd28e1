package memtrace

import "time"

// DefaultSampleInterval is the sampler polling period when Config leaves
// it unset.
const DefaultSampleInterval = 20 * time.Microsecond

// runtime/metrics names
const (
	heapObjectsMetric = "/memory/classes/heap/objects:bytes" // Live and not-yet-swept objects
	heapAllocsMetric  = "/gc/heap/allocs:bytes"              // Cumulative allocation
)
