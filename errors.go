package region

import "errors"

// Allocation-path errors. These are ordinary return values so hot-path
// callers can pick a fallback strategy per call; nothing on the
// allocation path ever panics.
var (
	// ErrOutOfMemory is returned when an allocation would exceed the
	// region's capacity and the overflow policy is FailFast.
	ErrOutOfMemory = errors.New("region: out of memory")

	// ErrInvalidArgument is returned for a zero or negative size, or a
	// non-power-of-two alignment. The region's state is untouched.
	ErrInvalidArgument = errors.New("region: invalid argument")
)

// Misuse errors. These indicate a bug in the caller. With debug checks
// enabled they panic at the call site; otherwise they are returned after
// clamping the component to a safe state.
var (
	// ErrScopeUnderflow is returned by Pop when no save point is pending.
	ErrScopeUnderflow = errors.New("region: scope underflow")

	// ErrScopeMismatch is returned by Pop when the token does not name the
	// most recently pushed, still-open scope.
	ErrScopeMismatch = errors.New("region: scope mismatch")

	// ErrStaleHandle is returned when a handle's generation no longer
	// matches the region's, i.e. the region grew after the handle was
	// issued. Continuing through a stale handle would read memory outside
	// the intended allocation, so it is never tolerated silently.
	ErrStaleHandle = errors.New("region: stale handle")
)

// Pool and registry errors, always recoverable.
var (
	// ErrDuplicateType is returned by RegisterType for an id that is
	// already registered.
	ErrDuplicateType = errors.New("region: duplicate type")

	// ErrUnknownType is returned by AllocInstance for an unregistered id.
	ErrUnknownType = errors.New("region: unknown type")

	// ErrDuplicateName is returned by Registry.Create for a name that is
	// already in use.
	ErrDuplicateName = errors.New("region: duplicate name")

	// ErrNotFound is returned by Registry.Get and Registry.Destroy for an
	// unknown name.
	ErrNotFound = errors.New("region: not found")
)
