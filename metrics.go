package arena

// Allocs returns the number of successful Alloc calls served so far,
// whether from the free-list or the bump path.
func (a *Arena) Allocs() uint64 {
	return a.allocs
}

// Frees returns the number of Free calls made so far.
func (a *Arena) Frees() uint64 {
	return a.frees
}

// MemoryInUse returns the number of bytes currently backing live
// allocations (blocks not on any free-list bucket).
func (a *Arena) MemoryInUse() uintptr {
	return a.memoryInUse
}

// TotalMemoryRequested returns the cumulative number of bytes ever
// requested through Alloc, independent of reuse or alignment padding.
func (a *Arena) TotalMemoryRequested() uintptr {
	return a.totalMemoryRequested
}

// NumFields returns the number of fields currently in the chain.
func (a *Arena) NumFields() int {
	return a.fieldCount
}

// Capacity returns the total payload capacity (in bytes) of every field
// currently in the chain.
func (a *Arena) Capacity() uintptr {
	return a.totalFieldBytes
}

// Utilization returns MemoryInUse / Capacity, or 0 if the arena has no
// fields yet.
func (a *Arena) Utilization() float64 {
	cap := a.Capacity()
	if cap == 0 {
		return 0
	}
	return float64(a.MemoryInUse()) / float64(cap)
}

// ArenaMetrics is a point-in-time snapshot of arena statistics. Sampling
// has no effect on arena semantics; it is purely observational.
type ArenaMetrics struct {
	Allocs               uint64
	Frees                uint64
	MemoryInUse          uintptr
	TotalMemoryRequested uintptr
	NumFields            int
	Capacity             uintptr
	Utilization          float64
}

// Metrics returns a snapshot of the arena's statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Allocs:               a.Allocs(),
		Frees:                a.Frees(),
		MemoryInUse:          a.MemoryInUse(),
		TotalMemoryRequested: a.TotalMemoryRequested(),
		NumFields:            a.NumFields(),
		Capacity:             a.Capacity(),
		Utilization:          a.Utilization(),
	}
}

// Thread-safe metrics for SafeArena.

// Allocs thread-safely returns the number of successful Alloc calls.
func (s *SafeArena) Allocs() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocs()
}

// Frees thread-safely returns the number of Free calls.
func (s *SafeArena) Frees() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Frees()
}

// MemoryInUse thread-safely returns the number of bytes currently live.
func (s *SafeArena) MemoryInUse() uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.MemoryInUse()
}

// NumFields thread-safely returns the number of fields in the chain.
func (s *SafeArena) NumFields() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumFields()
}

// Capacity thread-safely returns the total capacity of all fields.
func (s *SafeArena) Capacity() uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Utilization thread-safely returns the ratio of bytes in use to capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
