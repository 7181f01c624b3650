// Package region implements fixed-capacity bump allocators (memory regions)
// for Go, with scoped rollback, typed sub-pools, frame double buffering and
// named region lifecycles.
//
// # Overview
//
// A region owns one contiguous, pre-allocated buffer and hands out integer
// byte offsets from a monotonically advancing cursor. Deallocation is bulk
// only: Reset moves the cursor back to zero in O(1) and invalidates every
// outstanding allocation at once. This is useful for:
//
//   - Per-frame allocations in game and simulation loops
//   - Request- or level-scoped temporary data with batch cleanup
//   - Reducing garbage collection pressure
//   - Workloads needing predictable O(1) allocation
//
// # Basic Usage
//
//	r := region.NewRegion(1 << 20) // 1 MiB
//	defer r.Release()
//
//	h, err := r.Alloc(1024)
//	if err != nil {
//		// capacity exhausted under FailFast
//	}
//	buf, _ := r.Bytes(h)
//
//	r.Reset() // O(1) bulk reclaim
//
// Allocations are addressed by Handle values ({generation, offset, size}),
// never by raw pointers. After a growth event the generation no longer
// matches and Bytes rejects the stale handle instead of resolving it.
//
// # Scoped Rollback
//
// ScratchStack gives nested temporary scopes over one region:
//
//	s := region.NewScratchStack(r)
//	tok := s.Push()
//	// ... temporary allocations ...
//	s.Pop(tok) // cursor restored, everything in between reclaimed
//
// # Frame Double Buffering
//
//	frames := region.NewFrameArenas(1<<20)
//	r := frames.BeginFrame() // flip + reset, once per frame
//
// Last frame's buffer stays readable while this frame allocates into the
// other one, so a consumer of frame N data never races frame N+1's
// allocation burst.
//
// # Thread Safety
//
// A Region is not goroutine-safe. The intended pattern is one region per
// goroutine, which needs no synchronization at all. When sharing is
// unavoidable, SafeRegion wraps every operation in a mutex. Reset and
// BeginFrame additionally require an external barrier: the caller must make
// sure nothing still reads the buffer being reset.
//
// # Important Notes
//
//   - Memory is never zeroed by Alloc or Reset; callers needing zeroed
//     bytes clear them explicitly after allocation
//   - No individual deallocation - use Reset() or Release() for bulk cleanup
//   - Offsets returned by Alloc are always exact multiples of the requested
//     alignment
//   - Allocation failures (ErrOutOfMemory, ErrInvalidArgument) are ordinary
//     return values; misuse errors panic only under WithDebugChecks
//
// # Metrics and Monitoring
//
// Regions expose O(1) accessors (Used, Capacity, Utilization, Peak) and a
// Metrics() snapshot. Named regions owned by a Registry additionally publish
// prometheus gauges (used_bytes, capacity_bytes, utilization_ratio) keyed by
// region name; allocation events are counted at a sampled rate.
package region
