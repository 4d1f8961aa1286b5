package arena

import "unsafe"

// blockHeader precedes every allocation, live or free. While a block is
// live only size is meaningful. While a block sits on a free-list bucket,
// next chains it to the rest of the bucket.
//
// size is the number of usable bytes that follow the header: every byte in
// the slot that is not the header's own size field, including whatever
// zero-fill gap separates the header from the aligned payload pointer
// handed to the caller (see headerStart).
type blockHeader struct {
	size uintptr
	next *blockHeader
}

// hAlign is the natural alignment of blockHeader — every header is placed
// at an address that is a multiple of hAlign.
const hAlign = unsafe.Alignof(blockHeader{})

// sizeFieldWidth is the width of the size field alone, i.e. the portion of
// the header that precedes the zero-fill gap.
const sizeFieldWidth = unsafe.Sizeof(uintptr(0))

// headerSize is the full header footprint reserved out of a field when
// bump-allocating a fresh block.
const headerSize = unsafe.Sizeof(blockHeader{})

func headerAt(addr uintptr) *blockHeader {
	return (*blockHeader)(unsafe.Pointer(addr))
}

func addrOf(h *blockHeader) uintptr {
	return uintptr(unsafe.Pointer(h))
}

// headerStart recovers the header belonging to a previously returned
// payload pointer. It walks backward one byte at a time until it finds a
// non-zero byte, then rounds that address down to header alignment.
//
// Every byte between the end of the size field and the payload pointer is
// zeroed on every allocation path (both the free-list reuse path and the
// bump path), and size itself is always >= 1, so at least one byte of its
// little-endian encoding is non-zero. The scan therefore never walks past
// the start of the size field: it passes over the zero-fill gap and any
// high-order zero bytes of size's own encoding, stops on a non-zero byte
// inside the size field, and alignDown brings that address back to the
// header's true start.
func headerStart(ptr unsafe.Pointer) *blockHeader {
	p := uintptr(ptr)
	for p > 0 {
		p--
		if *(*byte)(unsafe.Pointer(p)) != 0 {
			break
		}
	}
	return headerAt(alignDown(p, hAlign))
}
