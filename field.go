package arena

import "unsafe"

// field is a single contiguous backing region with a bump cursor, chained
// into a LIFO stack by next. Only the head field of the chain ever
// participates in bump allocation; older fields are reachable only
// through the free-list once their own top is left behind.
type field struct {
	buf  []byte
	top  uintptr
	next *field
}

func (f *field) base() uintptr {
	return uintptr(unsafe.Pointer(&f.buf[0]))
}

func (f *field) size() uintptr {
	return uintptr(len(f.buf))
}

func (f *field) end() uintptr {
	return f.base() + f.size()
}

// fieldNew rounds requested up to the smallest size of the form
// minimumFieldSize * 2^k (k >= 0) such that requested <= size/2, then asks
// source for that many bytes. The field's capacity is exactly that size,
// even when the source hands back a larger (e.g. page-rounded) region.
// It returns nil, err on page-source failure.
func fieldNew(source PageSource, minimumFieldSize, requested int) (*field, error) {
	size := minimumFieldSize
	for requested > size/2 {
		size *= 2
	}
	buf, err := source.Map(size)
	if err != nil {
		return nil, err
	}
	buf = buf[:size]
	return &field{buf: buf, top: uintptr(unsafe.Pointer(&buf[0]))}, nil
}

// arenaPushField creates a new field sized for requested and links it onto
// the head of a's field chain, making it the new head.
func (a *Arena) arenaPushField(requested int) (*field, error) {
	f, err := fieldNew(a.source, a.minimumFieldSize, requested)
	if err != nil {
		return nil, err
	}
	f.next = a.head
	a.head = f
	a.fieldCount++
	a.totalFieldBytes += f.size()
	return f, nil
}

// fieldDelete returns f's mapping to source. The caller is responsible for
// unlinking f from any chain first.
func fieldDelete(source PageSource, f *field) error {
	return source.Unmap(f.buf[:cap(f.buf)])
}
