package region

import (
	"fmt"
)

// Example demonstrates basic region usage
func Example() {
	// Create a region with a 1KB buffer
	r := NewRegion(1024)
	defer r.Release() // Always clean up

	// Allocate 100 bytes at the default alignment
	h, err := r.Alloc(100)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Allocated %d bytes at offset %d\n", h.Size, h.Offset)

	// Resolve the handle to its backing bytes
	buf, _ := r.Bytes(h)
	fmt.Printf("Backing slice length: %d\n", len(buf))

	// Check memory usage
	fmt.Printf("Memory in use: %d bytes\n", r.Used())
	fmt.Printf("Utilization: %.2f%%\n", r.Utilization()*100)

	// Reset for reuse (O(1) operation)
	r.Reset()
	fmt.Printf("After reset, memory in use: %d bytes\n", r.Used())

	// Output:
	// Allocated 100 bytes at offset 0
	// Backing slice length: 100
	// Memory in use: 100 bytes
	// Utilization: 9.77%
	// After reset, memory in use: 0 bytes
}

// ExampleScratchStack demonstrates scoped rollback of temporary allocations
func ExampleScratchStack() {
	r := NewRegion(1024)
	defer r.Release()
	s := NewScratchStack(r)

	// Long-lived allocation outside any scope
	r.Alloc(200)

	tok := s.Push()
	// Temporary work inside the scope
	r.Alloc(64)
	r.Alloc(64)
	fmt.Printf("Inside scope: %d bytes\n", r.Used())

	// Pop reclaims everything allocated since the matching Push
	s.Pop(tok)
	fmt.Printf("After pop: %d bytes\n", r.Used())

	// Output:
	// Inside scope: 328 bytes
	// After pop: 200 bytes
}

// ExampleFrameArenas demonstrates per-frame double buffering
func ExampleFrameArenas() {
	f := NewFrameArenas(1024)
	defer f.Release()

	for frame := 1; frame <= 3; frame++ {
		// Once per frame: flip buffers and reset the new current one.
		// Last frame's data stays readable in the other buffer.
		r := f.BeginFrame()
		r.Alloc(64)
		fmt.Printf("Frame %d in use: %d bytes\n", frame, r.Used())
	}

	// Output:
	// Frame 1 in use: 64 bytes
	// Frame 2 in use: 64 bytes
	// Frame 3 in use: 64 bytes
}

// ExampleTypedPool demonstrates a fixed-element-size sub-allocator
func ExampleTypedPool() {
	r := NewRegion(4096)
	defer r.Release()

	const particleType TypeID = 1
	p := NewTypedPool(r)
	p.RegisterType(particleType, 16, 8)

	for i := 0; i < 3; i++ {
		p.AllocInstance(particleType)
	}
	fmt.Printf("Instances: %d, in use: %d bytes\n", p.Count(particleType), r.Used())

	// Bulk reset only; there is no per-instance free
	p.Reset()
	fmt.Printf("After reset: %d instances, %d bytes\n", p.Count(particleType), r.Used())

	// Output:
	// Instances: 3, in use: 48 bytes
	// After reset: 0 instances, 0 bytes
}

// ExampleRegistry demonstrates named region lifecycles
func ExampleRegistry() {
	g := NewRegistry()
	defer g.Close()

	g.Create("level-geometry", 1<<16, LifetimeLevel)
	g.Create("hud", 4096, LifetimePersistent)

	r, _ := g.Get("level-geometry")
	r.Alloc(1000)

	fmt.Println(g.Names())
	fmt.Printf("Total used: %d of %d bytes\n", g.TotalUsed(), g.TotalCapacity())

	// Level unload tears down every level-scoped region at once
	g.DestroyLifetime(LifetimeLevel)
	fmt.Println(g.Names())

	// Output:
	// [hud level-geometry]
	// Total used: 1000 of 69632 bytes
	// [hud]
}
