package region

import (
	"unsafe"
)

// AllocType reserves space for one value of type T, using T's natural size
// and alignment. The memory is not zeroed.
func AllocType[T any](r *Region) (Handle, error) {
	var zero T
	return r.AllocAligned(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
}

// AllocSliceOf reserves space for n contiguous values of type T and returns
// one handle covering all of them. Elements are not zeroed.
func AllocSliceOf[T any](r *Region, n int) (Handle, error) {
	if n <= 0 {
		return Handle{}, ErrInvalidArgument
	}
	var zero T
	return r.AllocAligned(int(unsafe.Sizeof(zero))*n, int(unsafe.Alignof(zero)))
}

// View resolves a handle to a *T pointing into the region's buffer. The
// handle must cover at least Sizeof(T) bytes. The pointer is valid until the
// next Reset, growth event or Release, whichever comes first; the caller
// must keep the region reachable while using it.
func View[T any](r *Region, h Handle) (*T, error) {
	var zero T
	if h.Size < int(unsafe.Sizeof(zero)) {
		return nil, ErrInvalidArgument
	}
	b, err := r.Bytes(h)
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// ViewSlice resolves a handle to a []T over the region's buffer, with as
// many elements as fit in the handle's byte range.
func ViewSlice[T any](r *Region, h Handle) ([]T, error) {
	b, err := r.Bytes(h)
	if err != nil {
		return nil, err
	}
	var zero T
	n := len(b) / int(unsafe.Sizeof(zero))
	if n == 0 {
		return nil, ErrInvalidArgument
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}
