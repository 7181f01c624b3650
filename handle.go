package region

// Handle names an allocation by value: the generation it was issued under,
// its byte offset within the region and its size. A handle is not a live
// reference — it is only meaningful while its generation matches the owning
// region's current generation.
type Handle struct {
	Generation uint32
	Offset     int
	Size       int

	// heap is a 1-based index into the region's fallback list when the
	// allocation was satisfied from the Go heap; 0 means region-backed.
	heap int
}

// HeapBacked reports whether the handle was satisfied by the HeapFallback
// policy rather than from the bump buffer.
func (h Handle) HeapBacked() bool {
	return h.heap > 0
}

// Bytes resolves a handle to its backing byte slice. A handle whose
// generation predates a growth event yields ErrStaleHandle (or panics under
// debug checks); reading through it would touch memory outside the intended
// allocation. Handles from before a Reset cannot be detected this way — the
// generation still matches — and dereferencing them is a caller error.
func (r *Region) Bytes(h Handle) ([]byte, error) {
	r.panicIfReleased()
	if h.heap > 0 {
		if h.heap > len(r.fallback) {
			return nil, ErrInvalidArgument
		}
		return r.fallback[h.heap-1], nil
	}
	if h.Generation != r.generation {
		if r.debug {
			panic(ErrStaleHandle)
		}
		return nil, ErrStaleHandle
	}
	if h.Offset < 0 || h.Size <= 0 || h.Offset+h.Size > len(r.buf) {
		return nil, ErrInvalidArgument
	}
	return r.buf[h.Offset : h.Offset+h.Size : h.Offset+h.Size], nil
}
