package arena_test

import (
	"fmt"
	"sync"
	"testing"
	"time"
	"unsafe"

	arena "github.com/carsonak/Arena"
)

// BenchmarkHTTPRequestLifecycle models a request handler that carves
// scratch buffers out of a per-request arena and explicitly frees the
// ones whose lifetime ends before the request does (e.g. a decode buffer
// that's consumed into a longer-lived struct), rather than waiting for
// the whole arena to be released.
func BenchmarkHTTPRequestLifecycle(b *testing.B) {
	b.Run("Arena_FreeScratchEarly", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			a := arena.New(8192)

			headers := arena.AllocSlice[string](a, 20)
			decodeScratch := a.Alloc(1024, 8) // consumed, then freed mid-request
			response := unsafe.Slice((*byte)(a.Alloc(2048, 8)), 2048)

			for j := range headers {
				headers[j] = "header"
			}
			a.Free(decodeScratch) // scratch no longer needed

			// A second request phase reuses the freed scratch block's slot
			// for something else entirely.
			trailer := a.Alloc(512, 8)
			_ = trailer

			response[0] = 1
			a.Release()
		}
	})

	b.Run("Arena_NoEarlyFree", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			a := arena.New(8192)

			headers := arena.AllocSlice[string](a, 20)
			decodeScratch := a.Alloc(1024, 8)
			response := unsafe.Slice((*byte)(a.Alloc(2048, 8)), 2048)
			trailer := a.Alloc(512, 8)

			for j := range headers {
				headers[j] = "header"
			}
			_ = decodeScratch
			_ = trailer
			response[0] = 1
			a.Release()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			headers := make([]string, 20)
			decodeScratch := make([]byte, 1024)
			response := make([]byte, 2048)
			trailer := make([]byte, 512)

			for j := range headers {
				headers[j] = "header"
			}
			_ = decodeScratch
			_ = trailer
			response[0] = 1
		}
	})
}

// BenchmarkConnectionPoolRecycling models a fixed pool of long-lived
// connections that each carve a fresh scratch buffer per request and
// free the previous request's buffer before carving the next one,
// instead of growing the arena without bound or resetting wholesale.
func BenchmarkConnectionPoolRecycling(b *testing.B) {
	const numConnections = 100

	b.Run("Arena_FreePerRequest", func(b *testing.B) {
		arenas := make([]*arena.Arena, numConnections)
		lastBuf := make([]unsafe.Pointer, numConnections)
		for i := range arenas {
			arenas[i] = arena.New(4096)
		}
		defer func() {
			for _, a := range arenas {
				a.Release()
			}
		}()

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			connID := i % numConnections
			a := arenas[connID]

			if lastBuf[connID] != nil {
				a.Free(lastBuf[connID])
			}
			buf := a.Alloc(256, 8)
			metadata := arena.Alloc[int64](a)
			*metadata = int64(i)
			lastBuf[connID] = buf

			if i%1000 == 999 {
				a.Reset()
				lastBuf[connID] = nil
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			buffer := make([]byte, 256)
			metadata := new(int64)
			buffer[0] = byte(i)
			*metadata = int64(i)
		}
	})
}

// BenchmarkQueryResultStreaming models a cursor-style query: rows are
// decoded into arena storage in fixed-size batches, consumed, and freed
// before the next batch is decoded, so the batch buffer's slot is
// recycled through the free-list instead of accumulating across the
// whole result set.
func BenchmarkQueryResultStreaming(b *testing.B) {
	type row struct {
		ID        int64
		Name      string
		Email     string
		Data      [128]byte
		CreatedAt time.Time
	}

	const batchSize = 100
	const batches = 10

	b.Run("Arena_FreeBatchAfterConsume", func(b *testing.B) {
		a := arena.New(512 * 1024)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			var sum int64
			for batch := 0; batch < batches; batch++ {
				rows := arena.AllocSlice[row](a, batchSize)
				for j := range rows {
					rows[j].ID = int64(j)
					rows[j].Name = "John Doe"
					rows[j].Email = "john@example.com"
				}
				for _, r := range rows {
					sum += r.ID
				}
				a.Free(unsafe.Pointer(&rows[0]))
			}
			a.Reset()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			var sum int64
			for batch := 0; batch < batches; batch++ {
				rows := make([]row, batchSize)
				for j := range rows {
					rows[j].ID = int64(j)
					rows[j].Name = "John Doe"
					rows[j].Email = "john@example.com"
				}
				for _, r := range rows {
					sum += r.ID
				}
			}
		}
	})
}

// BenchmarkTransactionBatchProcessing processes transactions in small
// waves, freeing each wave's allocation before starting the next one
// rather than accumulating everything until a single Reset — the
// pattern a long-running worker that never calls Reset would need.
func BenchmarkTransactionBatchProcessing(b *testing.B) {
	type transaction struct {
		ID     int64
		FromID int64
		ToID   int64
		Amount float64
	}

	const waveSize = 100
	const waves = 5

	b.Run("Arena_FreeEachWave", func(b *testing.B) {
		a := arena.New(64 * 1024)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for w := 0; w < waves; w++ {
				txs := arena.AllocSlice[transaction](a, waveSize)
				for j := range txs {
					txs[j].ID = int64(j)
					txs[j].FromID = int64(j * 2)
					txs[j].ToID = int64(j*2 + 1)
					txs[j].Amount = float64(j * 100)
				}
				for _, tx := range txs {
					if tx.Amount > 0 {
						_ = tx.FromID + tx.ToID
					}
				}
				a.Free(unsafe.Pointer(&txs[0]))
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for w := 0; w < waves; w++ {
				txs := make([]transaction, waveSize)
				for j := range txs {
					txs[j].ID = int64(j)
					txs[j].FromID = int64(j * 2)
					txs[j].ToID = int64(j*2 + 1)
					txs[j].Amount = float64(j * 100)
				}
				for _, tx := range txs {
					if tx.Amount > 0 {
						_ = tx.FromID + tx.ToID
					}
				}
			}
		}
	})
}

// BenchmarkJSONTreeWithPrunedSubtrees builds a shallow document tree and
// then frees a fraction of child nodes outright (simulating a pruning or
// filtering pass over parsed JSON), leaving a mixed live/freed population
// before the arena is reset for the next document.
func BenchmarkJSONTreeWithPrunedSubtrees(b *testing.B) {
	type node struct {
		ID    int64
		Name  string
		Value float64
		Tags  []string
	}

	b.Run("Arena_PruneHalf", func(b *testing.B) {
		a := arena.New(256 * 1024)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			root := arena.Alloc[node](a)
			root.ID = int64(i)
			root.Tags = arena.AllocSlice[string](a, 5)

			children := make([]*node, 10)
			for j := range children {
				c := arena.Alloc[node](a)
				c.ID = int64(j)
				c.Name = fmt.Sprintf("child_%d", j)
				c.Value = float64(j) * 2.5
				children[j] = c
			}

			// Prune every other child: its allocation is returned
			// immediately instead of surviving until the document's Reset.
			var sum float64
			for j, c := range children {
				if j%2 == 0 {
					a.Free(unsafe.Pointer(c))
					continue
				}
				sum += c.Value
			}
			_ = sum

			a.Reset()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			root := &node{ID: int64(i), Tags: make([]string, 5)}
			_ = root

			children := make([]*node, 10)
			for j := range children {
				children[j] = &node{
					ID:    int64(j),
					Name:  fmt.Sprintf("child_%d", j),
					Value: float64(j) * 2.5,
				}
			}

			var sum float64
			for j, c := range children {
				if j%2 == 0 {
					continue
				}
				sum += c.Value
			}
			_ = sum
		}
	})
}

// BenchmarkGraphNodeEviction builds a small graph, walks it, and then
// evicts every fourth node, freeing them individually rather than
// tearing down the whole graph arena at once.
func BenchmarkGraphNodeEviction(b *testing.B) {
	type graphNode struct {
		ID       int
		Value    int64
		Edges    []*graphNode
		Visited  bool
		Distance int
	}

	const numNodes = 256
	const evictFraction = 4 // evict every 4th node after traversal

	b.Run("Arena_EvictTail", func(b *testing.B) {
		a := arena.New(1024 * 1024)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			nodes := make([]*graphNode, numNodes)
			for j := range nodes {
				nodes[j] = arena.Alloc[graphNode](a)
				nodes[j].ID = j
				nodes[j].Value = int64(j * 2)
				nodes[j].Edges = arena.AllocSlice[*graphNode](a, 4)
			}
			for j, n := range nodes {
				for k := range n.Edges {
					n.Edges[k] = nodes[(j+k+1)%numNodes]
				}
			}

			queue := []*graphNode{nodes[0]}
			nodes[0].Visited = true
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, nb := range cur.Edges {
					if !nb.Visited {
						nb.Visited = true
						nb.Distance = cur.Distance + 1
						queue = append(queue, nb)
					}
				}
			}

			for j, n := range nodes {
				if j%evictFraction == 0 {
					a.Free(unsafe.Pointer(n))
				}
			}

			a.Reset()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			nodes := make([]*graphNode, numNodes)
			for j := range nodes {
				nodes[j] = &graphNode{ID: j, Value: int64(j * 2), Edges: make([]*graphNode, 4)}
			}
			for j, n := range nodes {
				for k := range n.Edges {
					n.Edges[k] = nodes[(j+k+1)%numNodes]
				}
			}

			queue := []*graphNode{nodes[0]}
			nodes[0].Visited = true
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, nb := range cur.Edges {
					if !nb.Visited {
						nb.Visited = true
						nb.Distance = cur.Distance + 1
						queue = append(queue, nb)
					}
				}
			}
		}
	})
}

// BenchmarkWorkerPoolWithJobFree models a worker pool where each job's
// scratch allocation is freed back to the worker's own arena as soon as
// the job finishes, so a long-running worker's free-list absorbs churn
// indefinitely instead of needing periodic Reset calls.
func BenchmarkWorkerPoolWithJobFree(b *testing.B) {
	const numWorkers = 8
	const jobsPerWorker = 100

	b.Run("Arena_PerWorker_FreePerJob", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			var wg sync.WaitGroup
			wg.Add(numWorkers)

			for w := 0; w < numWorkers; w++ {
				go func(workerID int) {
					defer wg.Done()
					a := arena.New(64 * 1024)
					defer a.Release()

					for j := 0; j < jobsPerWorker; j++ {
						buf := a.Alloc(512, 8)
						result := arena.Alloc[int64](a)
						*result = int64(workerID*jobsPerWorker + j)

						a.Free(buf)
						arena.FreeValue(a, result)
					}
				}(w)
			}

			wg.Wait()
		}
	})

	b.Run("SafeArena_Shared_FreePerJob", func(b *testing.B) {
		s := arena.NewSafeArena(512 * 1024)
		defer s.Release()

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var wg sync.WaitGroup
			wg.Add(numWorkers)

			for w := 0; w < numWorkers; w++ {
				go func(workerID int) {
					defer wg.Done()

					for j := 0; j < jobsPerWorker; j++ {
						buf := s.Alloc(512, 8)
						result := arena.SafeAlloc[int64](s)
						*result = int64(workerID*jobsPerWorker + j)

						s.Free(buf)
						arena.SafeFreeValue(s, result)
					}
				}(w)
			}

			wg.Wait()
			s.Reset()
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			var wg sync.WaitGroup
			wg.Add(numWorkers)

			for w := 0; w < numWorkers; w++ {
				go func(workerID int) {
					defer wg.Done()

					for j := 0; j < jobsPerWorker; j++ {
						buffer := make([]byte, 512)
						result := new(int64)
						buffer[0] = byte(workerID)
						*result = int64(workerID*jobsPerWorker + j)
					}
				}(w)
			}

			wg.Wait()
		}
	})
}
