package region

// ScopeToken identifies an open scope. Its value is the stack depth at push
// time; only the most recently pushed, still-open scope may be popped.
type ScopeToken int

// ScratchStack layers LIFO save/restore of a region's cursor on top of bump
// allocation, for nested temporary scopes. Everything allocated between a
// matching Push/Pop pair is reclaimed by the Pop, however many bytes were
// involved. Like the region it wraps, it is not goroutine-safe.
type ScratchStack struct {
	r     *Region
	saved []int
}

// NewScratchStack creates a scratch stack over r. The stack shares r's debug
// setting: with debug checks on, misuse panics instead of returning.
func NewScratchStack(r *Region) *ScratchStack {
	return &ScratchStack{r: r}
}

// Push records the current cursor as a save point and returns its token.
func (s *ScratchStack) Push() ScopeToken {
	s.saved = append(s.saved, s.r.cursor)
	return ScopeToken(len(s.saved))
}

// Pop closes the scope named by token, restoring the cursor to its value at
// the matching Push. Popping with no open scope yields ErrScopeUnderflow;
// popping anything but the innermost open scope yields ErrScopeMismatch.
// Both are programming errors: under debug checks they panic, otherwise the
// stack is clamped to a safe state (all save points dropped, cursor left
// alone) so a corrupted token cannot corrupt the cursor.
func (s *ScratchStack) Pop(token ScopeToken) error {
	if len(s.saved) == 0 {
		if s.r.debug {
			panic(ErrScopeUnderflow)
		}
		return ErrScopeUnderflow
	}
	if int(token) != len(s.saved) {
		if s.r.debug {
			panic(ErrScopeMismatch)
		}
		s.saved = s.saved[:0]
		return ErrScopeMismatch
	}
	s.r.cursor = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
	return nil
}

// Depth returns the number of open scopes.
func (s *ScratchStack) Depth() int {
	return len(s.saved)
}
