package region

import (
	"go.uber.org/zap"
)

// DefaultCapacity is the capacity used when a region is created with a
// non-positive capacity (64 KiB).
const DefaultCapacity = 1 << 16

// DefaultAlignment is the alignment applied by Alloc when no explicit
// alignment is requested.
const DefaultAlignment = 8

// OverflowPolicy selects what a region does when an allocation does not fit
// in the remaining capacity.
type OverflowPolicy int

const (
	// FailFast returns ErrOutOfMemory and leaves the region untouched.
	FailFast OverflowPolicy = iota

	// HeapFallback satisfies the one failing allocation from the Go heap.
	// Fallback allocations are tracked outside the bump buffer, so Reset
	// never reclaims them.
	HeapFallback

	// Grow replaces the buffer with a larger one, copies the live prefix
	// and bumps the region's generation. Handles issued before the growth
	// become stale.
	Grow
)

// Region is a bump allocator over one owned, fixed-capacity buffer. It hands
// out integer byte offsets, never pointers, and reclaims memory only in bulk
// via Reset. Not goroutine-safe; the intended pattern is one region per
// goroutine. Use SafeRegion when sharing is unavoidable.
type Region struct {
	buf        []byte
	cursor     int
	generation uint32
	align      int
	policy     OverflowPolicy
	name       string
	debug      bool
	confined   bool
	peak       int
	fallback   [][]byte // heap-fallback allocations, untouched by Reset
}

// Option configures a region at creation time.
type Option func(*Region)

// WithDefaultAlignment sets the alignment used by Alloc. Non-power-of-two
// values are ignored and DefaultAlignment is kept.
func WithDefaultAlignment(align int) Option {
	return func(r *Region) {
		if isPowerOfTwo(align) {
			r.align = align
		}
	}
}

// WithOverflowPolicy sets the region's overflow policy.
func WithOverflowPolicy(p OverflowPolicy) Option {
	return func(r *Region) { r.policy = p }
}

// WithName attaches a name used in logs and metric labels.
func WithName(name string) Option {
	return func(r *Region) { r.name = name }
}

// WithDebugChecks makes misuse errors (scope underflow/mismatch, stale
// handles) panic at the call site instead of being returned. Allocation
// failures are unaffected and are always returned.
func WithDebugChecks(on bool) Option {
	return func(r *Region) { r.debug = on }
}

// WithThreadConfined records the caller's promise that the region is only
// ever touched from a single goroutine. The flag is advisory; it marks the
// region as not needing a SafeRegion wrapper.
func WithThreadConfined(on bool) Option {
	return func(r *Region) { r.confined = on }
}

// NewRegion creates a region with the given capacity in bytes.
// If capacity <= 0, DefaultCapacity is used.
func NewRegion(capacity int, opts ...Option) *Region {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	r := &Region{
		buf:   make([]byte, capacity),
		align: DefaultAlignment,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Alloc reserves size bytes at the region's default alignment and returns a
// handle to them. The bytes are not zeroed; callers needing zeroed memory
// must clear them explicitly.
func (r *Region) Alloc(size int) (Handle, error) {
	return r.AllocAligned(size, r.align)
}

// AllocAligned reserves size bytes aligned to align. Alignment must be a
// power of two >= 1; size must be positive. Both are validated before any
// state is touched. The returned handle's offset is always an exact multiple
// of align. All handles issued from one generation cover pairwise disjoint
// byte ranges.
func (r *Region) AllocAligned(size, align int) (Handle, error) {
	r.panicIfReleased()
	if size <= 0 || !isPowerOfTwo(align) {
		return Handle{}, ErrInvalidArgument
	}

	aligned := alignUp(r.cursor, align)
	if aligned+size <= len(r.buf) {
		r.cursor = aligned + size
		if r.cursor > r.peak {
			r.peak = r.cursor
		}
		if shouldSample() {
			allocEvents.WithLabelValues("alloc").Add(sampleRate)
		}
		return Handle{Generation: r.generation, Offset: aligned, Size: size}, nil
	}

	return r.overflow(size, align)
}

// overflow handles the allocation that did not fit.
func (r *Region) overflow(size, align int) (Handle, error) {
	switch r.policy {
	case HeapFallback:
		buf := make([]byte, size)
		r.fallback = append(r.fallback, buf)
		if shouldSample() {
			allocEvents.WithLabelValues("heap_fallback").Add(sampleRate)
		}
		return Handle{Generation: r.generation, Offset: -1, Size: size, heap: len(r.fallback)}, nil
	case Grow:
		need := alignUp(r.cursor, align) + size
		r.grow(need)
		aligned := alignUp(r.cursor, align)
		r.cursor = aligned + size
		if r.cursor > r.peak {
			r.peak = r.cursor
		}
		return Handle{Generation: r.generation, Offset: aligned, Size: size}, nil
	default: // FailFast
		if shouldSample() {
			allocEvents.WithLabelValues("out_of_memory").Add(sampleRate)
		}
		return Handle{}, ErrOutOfMemory
	}
}

// grow replaces the buffer with one of at least need bytes, doubling from
// the current capacity. The live prefix is copied and the cursor is
// preserved, but the generation is bumped: offsets already handed out keep
// their numeric value and must be revalidated through their handles.
func (r *Region) grow(need int) {
	newCap := len(r.buf) * 2
	if newCap == 0 {
		newCap = DefaultCapacity
	}
	for newCap < need {
		newCap *= 2
	}
	buf := make([]byte, newCap)
	copy(buf, r.buf[:r.cursor])
	r.buf = buf
	r.generation++
	allocEvents.WithLabelValues("grow").Inc()
	zap.L().Warn("region grew",
		zap.String("name", r.name),
		zap.Int("capacity", newCap),
		zap.Uint32("generation", r.generation))
}

// Reset moves the cursor back to zero in O(1). The generation is unchanged
// and memory is not zeroed: bytes handed out after a Reset are uninitialized
// and every handle from before the Reset is invalid by contract, even though
// its generation still matches. Heap-fallback allocations are not reclaimed.
//
// Callers must guarantee that nothing is still reading through the region
// before calling Reset; the region performs no synchronization of its own.
func (r *Region) Reset() {
	r.panicIfReleased()
	r.cursor = 0
}

// Release drops the buffer and all heap-fallback allocations and makes the
// region unusable. Any subsequent operation panics.
func (r *Region) Release() {
	r.buf = nil
	r.fallback = nil
}

// panicIfReleased panics if the region has been released.
func (r *Region) panicIfReleased() {
	if r.buf == nil {
		panic("region: use after Release()")
	}
}

// alignUp rounds n up to the next multiple of align (a power of two).
func alignUp(n, align int) int {
	mask := align - 1
	return (n + mask) &^ mask
}

// isPowerOfTwo reports whether n is a power of two >= 1.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
