package region_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/pavanmanishd/region"
)

// TestEdgeCases covers edge cases seen from outside the package
func TestEdgeCases(t *testing.T) {
	t.Run("ZeroAndNegativeCapacities", func(t *testing.T) {
		testCases := []struct {
			capacity int
			expected int
		}{
			{0, region.DefaultCapacity},
			{-1, region.DefaultCapacity},
			{-1000, region.DefaultCapacity},
			{1, 1},
			{1 << 20, 1 << 20},
		}

		for _, tc := range testCases {
			r := region.NewRegion(tc.capacity)
			if r.Capacity() != tc.expected {
				t.Errorf("NewRegion(%d): got capacity %d, want %d", tc.capacity, r.Capacity(), tc.expected)
			}
			r.Release()
		}
	})

	t.Run("ExactCapacityAllocation", func(t *testing.T) {
		r := region.NewRegion(1024)
		defer r.Release()

		h, err := r.Alloc(1024)
		if err != nil {
			t.Fatalf("exact-capacity allocation failed: %v", err)
		}
		if h.Offset != 0 || h.Size != 1024 {
			t.Errorf("exact-capacity handle = %+v", h)
		}

		// one more byte does not fit
		if _, err := r.Alloc(1); !errors.Is(err, region.ErrOutOfMemory) {
			t.Errorf("Alloc(1) on full region error = %v, want ErrOutOfMemory", err)
		}
	})

	t.Run("ExhaustionLoop", func(t *testing.T) {
		r := region.NewRegion(1024)
		defer r.Release()

		n := 0
		for {
			if _, err := r.Alloc(8); err != nil {
				break
			}
			n++
		}
		if n != 128 {
			t.Errorf("8-byte allocations before exhaustion = %d, want 128", n)
		}

		r.Reset()
		if _, err := r.Alloc(8); err != nil {
			t.Errorf("allocation after Reset failed: %v", err)
		}
	})

	t.Run("UseAfterRelease", func(t *testing.T) {
		r := region.NewRegion(1024)
		r.Release()

		testPanic := func(name string, fn func()) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic after Release()", name)
				}
			}()
			fn()
		}

		testPanic("Alloc", func() { r.Alloc(100) })
		testPanic("Reset", func() { r.Reset() })
		testPanic("Bytes", func() { r.Bytes(region.Handle{}) })
	})

	t.Run("MultipleReleases", func(t *testing.T) {
		r := region.NewRegion(1024)
		r.Release()
		// Multiple releases should be safe
		r.Release()
		r.Release()
	})

	t.Run("GrowStaleHandles", func(t *testing.T) {
		r := region.NewRegion(64, region.WithOverflowPolicy(region.Grow))
		defer r.Release()

		var old []region.Handle
		for i := 0; i < 4; i++ {
			h, err := r.Alloc(32)
			if err != nil {
				t.Fatal(err)
			}
			old = append(old, h)
		}
		// capacity 64 forces at least one growth by the third allocation
		if r.Generation() == 0 {
			t.Fatal("expected at least one growth event")
		}
		for _, h := range old {
			_, err := r.Bytes(h)
			valid := h.Generation == r.Generation()
			if valid && err != nil {
				t.Errorf("current-generation handle rejected: %v", err)
			}
			if !valid && !errors.Is(err, region.ErrStaleHandle) {
				t.Errorf("stale handle error = %v, want ErrStaleHandle", err)
			}
		}
	})

	t.Run("ScratchClampOnMismatch", func(t *testing.T) {
		r := region.NewRegion(1024)
		defer r.Release()
		s := region.NewScratchStack(r)

		outer := s.Push()
		s.Push()
		if err := s.Pop(outer); !errors.Is(err, region.ErrScopeMismatch) {
			t.Errorf("Pop(outer) error = %v, want ErrScopeMismatch", err)
		}
		// the stack clamped to empty; further pops underflow
		if err := s.Pop(outer); !errors.Is(err, region.ErrScopeUnderflow) {
			t.Errorf("Pop after clamp error = %v, want ErrScopeUnderflow", err)
		}
	})
}

// TestMemoryCorruption verifies allocations never overlap in practice
func TestMemoryCorruption(t *testing.T) {
	r := region.NewRegion(64 * 1024)
	defer r.Release()

	handles := make([]region.Handle, 100)
	for i := range handles {
		h, err := r.Alloc(64)
		if err != nil {
			t.Fatal(err)
		}
		b, err := r.Bytes(h)
		if err != nil {
			t.Fatal(err)
		}
		for j := range b {
			b[j] = byte(i)
		}
		handles[i] = h
	}

	for i, h := range handles {
		b, err := r.Bytes(h)
		if err != nil {
			t.Fatal(err)
		}
		for j, v := range b {
			if v != byte(i) {
				t.Errorf("corruption at handle %d byte %d: got %d, want %d", i, j, v, byte(i))
			}
		}
	}
}

// TestPerGoroutineRegions exercises the intended thread-confined pattern
func TestPerGoroutineRegions(t *testing.T) {
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			r := region.NewRegion(8192, region.WithThreadConfined(true))
			defer r.Release()
			s := region.NewScratchStack(r)

			for i := 0; i < 50; i++ {
				tok := s.Push()
				h, err := r.Alloc(100)
				if err != nil {
					t.Error(err)
					return
				}
				b, err := r.Bytes(h)
				if err != nil {
					t.Error(err)
					return
				}
				b[0] = byte(w)
				if err := s.Pop(tok); err != nil {
					t.Error(err)
					return
				}
			}
			if r.Used() != 0 {
				t.Errorf("worker %d: used = %d after balanced scopes", w, r.Used())
			}
		}(w)
	}
	wg.Wait()
}

// TestRegistryLifecycle drives a load/unload cycle from outside the package
func TestRegistryLifecycle(t *testing.T) {
	g := region.NewRegistry()
	defer g.Close()

	if _, err := g.Create("world", 1<<16, region.LifetimeLevel); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Create("ui", 4096, region.LifetimePersistent); err != nil {
		t.Fatal(err)
	}

	world, err := g.Get("world")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := world.Alloc(1000); err != nil {
		t.Fatal(err)
	}

	if n := g.DestroyLifetime(region.LifetimeLevel); n != 1 {
		t.Errorf("DestroyLifetime = %d, want 1", n)
	}
	if _, err := g.Get("world"); !errors.Is(err, region.ErrNotFound) {
		t.Errorf("Get after unload error = %v, want ErrNotFound", err)
	}
	if _, err := g.Get("ui"); err != nil {
		t.Errorf("persistent region lost at level unload: %v", err)
	}
}
