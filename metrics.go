package region

import (
	"github.com/detailyang/fastrand-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// regionStats carries per-region gauges keyed by region name, for external
// monitoring. Series: used_bytes, capacity_bytes, utilization_ratio.
var regionStats = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "arena_region_stats",
	Help: "Stats about named memory regions",
}, []string{"metric", "name"})

// allocEvents counts allocation-path events, sampled on the hot path.
var allocEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "arena_alloc_events",
	Help: "Sampled counts of region allocation events",
}, []string{"event"})

// sampleRate must be a power of two.
const sampleRate = 1024

func shouldSample() bool {
	return fastrand.FastRand()&(sampleRate-1) == 0
}

func publishRegionStats(r *Region) {
	name := r.name
	regionStats.WithLabelValues("used_bytes", name).Set(float64(r.Used()))
	regionStats.WithLabelValues("capacity_bytes", name).Set(float64(r.Capacity()))
	regionStats.WithLabelValues("utilization_ratio", name).Set(r.Utilization())
}

func dropRegionStats(name string) {
	regionStats.DeleteLabelValues("used_bytes", name)
	regionStats.DeleteLabelValues("capacity_bytes", name)
	regionStats.DeleteLabelValues("utilization_ratio", name)
}

// Used returns the number of bytes currently allocated, including internal
// fragmentation from alignment padding. O(1).
func (r *Region) Used() int {
	return r.cursor
}

// Capacity returns the region's capacity in bytes. O(1).
func (r *Region) Capacity() int {
	return len(r.buf)
}

// Utilization returns the ratio of used bytes to capacity (0.0 to 1.0).
func (r *Region) Utilization() float64 {
	if len(r.buf) == 0 {
		return 0
	}
	return float64(r.cursor) / float64(len(r.buf))
}

// Peak returns the high-water mark of the cursor. It survives Reset, so it
// reflects the worst allocation burst over the region's lifetime within the
// current generation's capacity.
func (r *Region) Peak() int {
	return r.peak
}

// Generation returns the region's current generation. It increases only on
// growth events.
func (r *Region) Generation() uint32 {
	return r.generation
}

// Name returns the name given at creation, or "".
func (r *Region) Name() string {
	return r.name
}

// DefaultAlignment returns the alignment Alloc applies.
func (r *Region) DefaultAlignment() int {
	return r.align
}

// ThreadConfined reports whether the creator declared the region
// thread-confined.
func (r *Region) ThreadConfined() bool {
	return r.confined
}

// HeapFallbacks returns how many allocations were satisfied from the Go heap
// under the HeapFallback policy.
func (r *Region) HeapFallbacks() int {
	return len(r.fallback)
}

// Metrics returns a snapshot of region statistics.
func (r *Region) Metrics() RegionMetrics {
	heapBytes := 0
	for _, b := range r.fallback {
		heapBytes += len(b)
	}
	return RegionMetrics{
		Used:              r.Used(),
		Capacity:          r.Capacity(),
		Peak:              r.Peak(),
		Generation:        r.Generation(),
		Utilization:       r.Utilization(),
		HeapFallbacks:     len(r.fallback),
		HeapFallbackBytes: heapBytes,
	}
}

// RegionMetrics contains statistical information about a region.
type RegionMetrics struct {
	Used              int     // Bytes currently allocated
	Capacity          int     // Capacity in bytes
	Peak              int     // Cursor high-water mark
	Generation        uint32  // Current generation
	Utilization       float64 // Ratio of used to capacity (0.0-1.0)
	HeapFallbacks     int     // Allocations satisfied from the heap
	HeapFallbackBytes int     // Bytes held by heap-fallback allocations
}
