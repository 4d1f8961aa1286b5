package arena

import (
	"runtime"
	"sync"
	"unsafe"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent
// access. All operations are thread-safe but come with the overhead of
// mutex locking; the wrapped Arena itself remains single-threaded and
// must never be used directly once shared across goroutines.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena with the given minimum
// field size. If minimumFieldSize <= 0, DefaultMinimumFieldSize is used.
func NewSafeArena(minimumFieldSize int) *SafeArena {
	return &SafeArena{a: New(minimumFieldSize)}
}

// Alloc thread-safely reserves size bytes aligned to align.
func (s *SafeArena) Alloc(size, align int) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(size, align)
}

// Free thread-safely returns ptr's block to the free-list index.
func (s *SafeArena) Free(ptr unsafe.Pointer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Free(ptr)
}

// MinimumFieldSize thread-safely returns the arena's field-size floor.
func (s *SafeArena) MinimumFieldSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.MinimumFieldSize()
}

// SetMinimumFieldSize thread-safely changes the field-size floor.
func (s *SafeArena) SetMinimumFieldSize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.SetMinimumFieldSize(n)
}

// Reset thread-safely retains the newest field and empties every bucket.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely tears the arena down.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Generic allocation functions for SafeArena.

// SafeAlloc thread-safely returns a pointer to a T stored inside the
// arena with zeroed memory.
func SafeAlloc[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocZeroed is identical to SafeAlloc - provided for API consistency.
func SafeAllocZeroed[T any](s *SafeArena) *T {
	return SafeAlloc[T](s)
}

// SafeAllocUninitialized thread-safely returns a *T without zeroing memory.
func SafeAllocUninitialized[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type T.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceZeroed thread-safely allocates a slice of n elements with zeroed memory.
func SafeAllocSliceZeroed[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.a, n)
}

// SafeFreeValue thread-safely returns the block backing v to the arena.
func SafeFreeValue[T any](s *SafeArena, v *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	FreeValue[T](s.a, v)
}

// SafePtrAndKeepAlive thread-safely returns t and calls runtime.KeepAlive on the arena.
func SafePtrAndKeepAlive[T any](s *SafeArena, t *T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	runtime.KeepAlive(s.a)
	return t
}
