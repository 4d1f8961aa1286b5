//go:build unix

package arena

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// osPageSource maps anonymous, zero-initialized pages directly from the
// kernel via mmap(2), returning them to the kernel via munmap(2) on
// release. This is the same mmap-or-fallback shape used by mmap-backed
// arenas elsewhere in the ecosystem: reserve page-aligned memory outside
// the Go heap so field payloads are never moved or scanned by the
// garbage collector.
type osPageSource struct {
	pageSize int
}

func newOSPageSource() PageSource {
	return &osPageSource{pageSize: unix.Getpagesize()}
}

// Map reserves a page-aligned, zero-filled region of at least n bytes.
func (s *osPageSource) Map(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("arena: Map requires n > 0, got %d", n)
	}
	size := alignUp(uintptr(n), uintptr(s.pageSize))
	b, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap %d bytes: %w", size, err)
	}
	return b, nil
}

// Unmap releases a region previously returned by Map.
func (s *osPageSource) Unmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if err := unix.Munmap(b); err != nil {
		return fmt.Errorf("arena: munmap %d bytes: %w", len(b), err)
	}
	return nil
}
