package region

// FrameArenas owns exactly two regions and swaps them at frame boundaries.
// Data allocated during frame N stays valid while frame N+1 allocates,
// because N+1's allocations land in the other buffer; a consumer (say a
// render thread reading last frame's output) never races the allocation hot
// path, at the cost of doubled peak memory.
//
// BeginFrame must be called exactly once per frame, after the caller has
// ensured nothing still reads the buffer about to be reset. Calling it twice
// within one frame silently discards the allocations made in between; that
// is the caller's responsibility, not a checked error.
type FrameArenas struct {
	regions [2]*Region
	current int
}

// NewFrameArenas creates a double-buffered pair of regions, each with the
// given capacity and options.
func NewFrameArenas(capacity int, opts ...Option) *FrameArenas {
	return &FrameArenas{
		regions: [2]*Region{
			NewRegion(capacity, opts...),
			NewRegion(capacity, opts...),
		},
		// first BeginFrame flips to index 0
		current: 1,
	}
}

// BeginFrame flips the current index, resets the newly current region and
// returns it. The previous frame's region is left intact until the next
// flip.
func (f *FrameArenas) BeginFrame() *Region {
	f.current ^= 1
	r := f.regions[f.current]
	r.Reset()
	return r
}

// Current returns the region new allocations should use this frame.
func (f *FrameArenas) Current() *Region {
	return f.regions[f.current]
}

// Previous returns the region holding last frame's allocations. Its contents
// stay readable until the frame after next resets it.
func (f *FrameArenas) Previous() *Region {
	return f.regions[f.current^1]
}

// Release releases both regions. The manager is unusable afterwards.
func (f *FrameArenas) Release() {
	f.regions[0].Release()
	f.regions[1].Release()
}
