package region

import (
	"unsafe"
)

// TypeID identifies a registered element type within a TypedPool.
type TypeID uint32

type typeInfo struct {
	size  int
	align int
	count int
}

// TypedPool is a fixed-element-size sub-allocator layered on one region.
// Each registered type allocates through the region's bump cursor with its
// own size and alignment, and the pool keeps a per-type instance count.
// There is no per-instance free: instances live until the pool (and with it
// the region) is reset. That is the fundamental trade of the design, not an
// oversight.
type TypedPool struct {
	r     *Region
	types map[TypeID]*typeInfo
}

// NewTypedPool creates a typed pool over r.
func NewTypedPool(r *Region) *TypedPool {
	return &TypedPool{r: r, types: make(map[TypeID]*typeInfo)}
}

// RegisterType declares an element type once. Size must be positive and
// align a power of two; re-registering an id yields ErrDuplicateType.
func (p *TypedPool) RegisterType(id TypeID, size, align int) error {
	if size <= 0 || !isPowerOfTwo(align) {
		return ErrInvalidArgument
	}
	if _, ok := p.types[id]; ok {
		return ErrDuplicateType
	}
	p.types[id] = &typeInfo{size: size, align: align}
	return nil
}

// AllocInstance reserves space for one instance of a registered type and
// bumps its count. Unregistered ids yield ErrUnknownType; allocation
// failures pass through from the region.
func (p *TypedPool) AllocInstance(id TypeID) (Handle, error) {
	ti, ok := p.types[id]
	if !ok {
		return Handle{}, ErrUnknownType
	}
	h, err := p.r.AllocAligned(ti.size, ti.align)
	if err != nil {
		return Handle{}, err
	}
	ti.count++
	return h, nil
}

// Count returns the number of live instances of a type, or 0 for an
// unregistered id.
func (p *TypedPool) Count(id TypeID) int {
	if ti, ok := p.types[id]; ok {
		return ti.count
	}
	return 0
}

// Reset resets the underlying region and clears every per-type count.
// Registered types stay registered.
func (p *TypedPool) Reset() {
	p.r.Reset()
	for _, ti := range p.types {
		ti.count = 0
	}
}

// RegisterTypeFor registers id with the size and alignment of T.
func RegisterTypeFor[T any](p *TypedPool, id TypeID) error {
	var zero T
	return p.RegisterType(id, int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
}
