package arena

import "unsafe"

// DefaultMinimumFieldSize is the default floor for newly allocated fields.
const DefaultMinimumFieldSize = 256 << 20 // 256 MiB

// Arena is a region allocator: a growable chain of bump-allocated fields
// backed by a PageSource, plus a segregated free-list index that lets
// individual blocks be reused without waiting for a full Reset.
//
// Arena is not goroutine-safe. Use SafeArena for concurrent access.
type Arena struct {
	source PageSource

	head             *field
	minimumFieldSize int
	freeList         freeList

	fieldCount      int
	totalFieldBytes uintptr

	allocs, frees        uint64
	memoryInUse          uintptr
	totalMemoryRequested uintptr
	destroyed            bool
}

// New creates an empty Arena (no fields allocated yet) with the given
// minimum field size. If minimumFieldSize <= 0, DefaultMinimumFieldSize is
// used. The arena's backing memory comes from the default PageSource
// (mmap on unix, a plain heap allocation elsewhere); use NewWithSource to
// supply a different one.
func New(minimumFieldSize int) *Arena {
	return NewWithSource(minimumFieldSize, defaultPageSource)
}

// NewWithSource is New with an explicit PageSource, primarily useful for
// tests that want to simulate OOM or inspect mapping traffic.
func NewWithSource(minimumFieldSize int, source PageSource) *Arena {
	if minimumFieldSize <= 0 {
		minimumFieldSize = DefaultMinimumFieldSize
	}
	return &Arena{
		source:           source,
		minimumFieldSize: minimumFieldSize,
	}
}

// MinimumFieldSize returns the arena's configured field-size floor.
func (a *Arena) MinimumFieldSize() int {
	return a.minimumFieldSize
}

// SetMinimumFieldSize changes the field-size floor. This is only
// meaningful before the first allocation; once a field exists the call is
// a silent no-op rather than an error, since changing the floor
// retroactively would not change any field already mapped.
func (a *Arena) SetMinimumFieldSize(n int) {
	if a.head != nil || n <= 0 {
		return
	}
	a.minimumFieldSize = n
}

// Alloc reserves size bytes aligned to align and returns a payload
// pointer, or nil on invalid arguments or out-of-memory.
//
// Preconditions: the arena must not be destroyed, size >= 1, align must be
// a positive power of two, and align <= size. Any violation returns nil
// without touching arena state.
func (a *Arena) Alloc(size, align int) unsafe.Pointer {
	if a == nil || a.destroyed || a.minimumFieldSize <= 0 {
		return nil
	}
	if size < 1 || !isPowerOfTwo(align) || align > size {
		return nil
	}
	us, ua := uintptr(size), uintptr(align)

	if h := a.freeList.search(us, ua); h != nil {
		raw := addrOf(h) + sizeFieldWidth
		aligned := alignUp(raw, ua)
		zero(raw, aligned)
		a.allocs++
		a.totalMemoryRequested += us
		a.memoryInUse += h.size
		return unsafe.Pointer(aligned)
	}

	return a.bumpAlloc(us, ua)
}

// bumpAlloc is the slow path: it serves the request out of the head
// field's bump cursor, growing the field chain as needed.
func (a *Arena) bumpAlloc(size, align uintptr) unsafe.Pointer {
	requested := size
	slotMin := headerSize - sizeFieldWidth
	if size < slotMin {
		size = slotMin
	}

	bumpAlign := align
	if hAlign > bumpAlign {
		bumpAlign = hAlign
	}

	if a.head == nil {
		if _, err := a.arenaPushField(int(size)); err != nil {
			a.destroy()
			return nil
		}
	}

	f := a.head
	raw := f.top + sizeFieldWidth
	aligned := alignUp(raw, bumpAlign)
	newTop := alignUp(aligned+size, hAlign)

	if newTop > f.base()+f.size() {
		if _, err := a.arenaPushField(int(size)); err != nil {
			a.destroy()
			return nil
		}
		f = a.head
		raw = f.top + sizeFieldWidth
		aligned = alignUp(raw, bumpAlign)
		newTop = alignUp(aligned+size, hAlign)
	}

	zero(f.top, aligned)
	h := headerAt(f.top)
	h.size = newTop - raw
	f.top = newTop

	a.allocs++
	a.totalMemoryRequested += requested
	a.memoryInUse += h.size
	return unsafe.Pointer(aligned)
}

// Free returns ptr's block to the arena's free-list index. ptr must have
// been returned by Alloc on this arena and not freed since; passing any
// other pointer, freeing it twice, or freeing after Reset/Release is
// undefined and is not (and cannot cheaply be) detected. A nil arena or
// nil ptr is a no-op.
func (a *Arena) Free(ptr unsafe.Pointer) {
	if a == nil || ptr == nil || a.destroyed {
		return
	}
	h := headerStart(ptr)
	a.freeList.insert(h)
	a.frees++
	if h.size <= a.memoryInUse {
		a.memoryInUse -= h.size
	} else {
		a.memoryInUse = 0
	}
}

// Reset keeps the newest field (the one the bump cursor points into),
// releases every other field back to the PageSource, rewinds the
// retained field's cursor to its base, and empties every free-list
// bucket. minimumFieldSize is preserved.
func (a *Arena) Reset() {
	if a.destroyed || a.head == nil {
		a.freeList.reset()
		return
	}
	for f := a.head.next; f != nil; {
		next := f.next
		fieldDelete(a.source, f)
		a.fieldCount--
		a.totalFieldBytes -= f.size()
		f = next
	}
	a.head.next = nil
	a.head.top = a.head.base()
	a.freeList.reset()
	a.memoryInUse = 0
}

// Release tears the arena down: every field is returned to the
// PageSource, and the arena is left in a destroyed state where further
// Alloc calls return nil and Free/Reset are no-ops. Release on an
// already-released or nil arena is safe.
func (a *Arena) Release() {
	if a == nil || a.destroyed {
		return
	}
	a.destroy()
}

func (a *Arena) destroy() {
	for f := a.head; f != nil; {
		next := f.next
		fieldDelete(a.source, f)
		f = next
	}
	a.head = nil
	a.freeList.reset()
	a.fieldCount = 0
	a.totalFieldBytes = 0
	a.memoryInUse = 0
	a.destroyed = true
}

// zero clears every byte in [from, to).
func zero(from, to uintptr) {
	n := to - from
	if n == 0 {
		return
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(from)), n)
	clear(b)
}
