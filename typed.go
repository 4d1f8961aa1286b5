package arena

import (
	"runtime"
	"unsafe"
)

// sizeAndAlignOf returns the size and alignment to request from Arena.Alloc
// for a value of type T, clamped so the align <= size precondition Alloc
// enforces always holds. Go guarantees alignof(T) <= sizeof(T) for every
// concrete type except zero-size types, which are special-cased to size 1
// so a still-distinct, still-valid pointer is handed out.
func sizeAndAlignOf[T any]() (size, align int) {
	var zero T
	size = int(unsafe.Sizeof(zero))
	align = int(unsafe.Alignof(zero))
	if size == 0 {
		size, align = 1, 1
	}
	return size, align
}

// Alloc returns a pointer to a T stored inside the arena with zeroed
// memory, or nil if the arena rejected the allocation (see Arena.Alloc).
func Alloc[T any](a *Arena) *T {
	size, align := sizeAndAlignOf[T]()
	p := a.Alloc(size, align)
	if p == nil {
		return nil
	}
	// A reused free-list block, or field memory rewound by Reset, still
	// holds the previous occupant's bytes.
	clear(unsafe.Slice((*byte)(p), size))
	return (*T)(p)
}

// AllocZeroed is identical to Alloc — provided for API consistency, since
// Alloc already clears the payload on every allocation path, including a
// reused free-list block.
func AllocZeroed[T any](a *Arena) *T {
	return Alloc[T](a)
}

// AllocUninitialized returns a *T located in the arena without clearing
// its contents: the memory is either fresh zeroed field memory or whatever
// a previous occupant of a reused free-list block (or of field memory
// rewound by Reset) left there. It returns nil if the arena rejected the
// allocation.
func AllocUninitialized[T any](a *Arena) *T {
	size, align := sizeAndAlignOf[T]()
	return (*T)(a.Alloc(size, align))
}

// AllocSlice allocates a slice of n elements of type T inside the arena.
// Returns nil if n <= 0 or the underlying allocation is rejected.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	elemSize, elemAlign := sizeAndAlignOf[T]()
	total := elemSize * n
	p := a.Alloc(total, elemAlign)
	if p == nil {
		return nil
	}
	return unsafe.Slice((*T)(p), n)
}

// AllocSliceZeroed allocates a slice of n elements of type T. Every
// allocation path already zeroes between the header and the returned
// pointer; this wrapper additionally clears the payload itself so callers
// get a guaranteed-zero slice even on a free-list hit.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	s := AllocSlice[T](a, n)
	if s == nil {
		return nil
	}
	var zero T
	for i := range s {
		s[i] = zero
	}
	return s
}

// FreeValue returns the block backing v to a's free-list index. v must
// have come from Alloc/AllocZeroed/AllocUninitialized on this arena.
func FreeValue[T any](a *Arena, v *T) {
	a.Free(unsafe.Pointer(v))
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena. This
// is useful to prevent the arena (and therefore its fields) from being
// garbage collected while t is still reachable only through unsafe code.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
