// Package arena implements a region (arena) allocator for Go.
//
// # Overview
//
// An arena allocator hands out memory from a growable chain of large
// backing regions ("fields") with a fast bump cursor, while still
// supporting individual frees through size-classed free-lists. This is
// particularly useful for:
//
//   - Request-scoped allocations in web servers
//   - Temporary object allocation with batch cleanup
//   - Reducing garbage collection pressure
//   - Workloads with coarse-grained lifetimes but occasional block reuse
//
// # Basic Usage
//
//	a := arena.New(0) // Use DefaultMinimumFieldSize
//	defer a.Release()  // Release every field when done
//
//	// Allocate typed values
//	ptr := arena.Alloc[MyStruct](a)
//	slice := arena.AllocSlice[int](a, 100)
//
//	// Free a single block without tearing down the arena
//	arena.FreeValue(a, ptr)
//
//	// Reset for reuse (keeps the newest field, O(number of fields))
//	a.Reset()
//
// # Thread Safety
//
// The basic Arena type is not thread-safe. For concurrent access, use SafeArena:
//
//	safeArena := arena.NewSafeArena(0)
//	defer safeArena.Release()
//
//	// All operations are thread-safe
//	ptr := arena.SafeAlloc[MyStruct](safeArena)
//
// # Memory Layout
//
// The arena allocates memory in fields (default 256 MiB, see
// DefaultMinimumFieldSize). When the head field fills up, a new field at
// least twice as large as the request is mapped and pushed onto the
// field chain; only the head field ever participates in bump allocation.
// Every allocation reserves a small header immediately before the
// returned pointer; freed blocks are recovered from only their payload
// pointer by scanning backward for that header (see Arena.Free).
//
// # Performance Characteristics
//
//   - Alloc: O(1) amortized on the bump path; the free-list search walks
//     the lists of the candidate buckets, so it is linear in the number
//     of freed blocks it inspects
//   - Free: O(1)
//   - Reset: O(number of fields) - typically very fast
//   - Release: O(number of fields)
//
// # Important Notes
//
//   - Allocated memory is only valid while the arena exists and hasn't
//     been Reset or Released since the allocation
//   - No coalescing and no splitting of freed blocks — see spec's Non-goals
//   - Arena is strictly single-threaded; two concurrent Alloc/Free calls
//     on the same Arena are not supported
//   - Double-free and foreign-pointer Free calls are undefined behavior
//
// # Metrics and Monitoring
//
// The arena provides sampled metrics for monitoring memory usage:
//
//	metrics := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", metrics.Utilization*100)
//	fmt.Printf("Memory in use: %d bytes\n", metrics.MemoryInUse)
//	fmt.Printf("Total capacity: %d bytes\n", metrics.Capacity)
package arena
