package arena

import "errors"

// errInvalidMapSize is returned by a PageSource.Map implementation when
// asked for a non-positive number of bytes.
var errInvalidMapSize = errors.New("arena: Map requires n > 0")

// PageSource is the host memory-mapping collaborator the arena relies on
// to obtain and release backing storage for fields. Map must return a
// zero-initialized, readable-and-writable region of at least n bytes,
// aligned to at least hAlign; Unmap releases a region previously returned
// by Map on the same PageSource.
//
// The default PageSource asks the OS for page-granularity virtual memory
// (mmap on unix, a plain heap allocation elsewhere); tests and embedders
// may supply their own, e.g. to simulate OOM or to pool pages.
type PageSource interface {
	Map(n int) ([]byte, error)
	Unmap(b []byte) error
}

// defaultPageSource is the PageSource used by New when none is supplied.
// It is swapped per build target in pagesource_unix.go / pagesource_other.go.
var defaultPageSource PageSource = newOSPageSource()
