package region

import (
	"sync"
)

// SafeRegion is a mutex-protected wrapper around Region for the cases where
// per-goroutine confinement is not practical. Every operation takes the lock;
// prefer thread-confined regions, which need no synchronization at all.
type SafeRegion struct {
	mu sync.Mutex
	r  *Region
}

// NewSafeRegion creates a mutex-protected region with the given capacity and
// options.
func NewSafeRegion(capacity int, opts ...Option) *SafeRegion {
	return &SafeRegion{r: NewRegion(capacity, opts...)}
}

// Alloc reserves size bytes at the region's default alignment.
func (s *SafeRegion) Alloc(size int) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Alloc(size)
}

// AllocAligned reserves size bytes aligned to align.
func (s *SafeRegion) AllocAligned(size, align int) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.AllocAligned(size, align)
}

// Bytes resolves a handle to its backing byte slice. The slice itself is not
// protected by the lock; callers coordinate their own reads and writes.
func (s *SafeRegion) Bytes(h Handle) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Bytes(h)
}

// Reset moves the cursor back to zero. The caller must still guarantee no
// outstanding reader holds slices into the region.
func (s *SafeRegion) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Reset()
}

// Release drops the buffer and makes the region unusable.
func (s *SafeRegion) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Release()
}

// Used returns the number of bytes currently allocated.
func (s *SafeRegion) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Used()
}

// Capacity returns the region's capacity in bytes.
func (s *SafeRegion) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Capacity()
}

// Utilization returns the ratio of used bytes to capacity.
func (s *SafeRegion) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Utilization()
}

// Metrics returns a snapshot of region statistics.
func (s *SafeRegion) Metrics() RegionMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Metrics()
}
