// Package various holds small helpers shared by the renderers.
package various

import "sync"

// Number of goroutines KickOffChunkWorkers fans out to. Rasterization is
// CPU bound and the chunks are uniform, so a small fixed pool is enough.
const numChunkWorkers = 8

// KickOffChunkWorkers splits the range [0, totalItems) into contiguous
// chunks, runs fn(start, end) for each chunk on its own goroutine, and
// waits for all of them. Chunks never overlap, so fn may write to disjoint
// parts of a shared structure without locking.
func KickOffChunkWorkers(totalItems int, fn func(start, end int)) {
	chunkSize := (totalItems + numChunkWorkers - 1) / numChunkWorkers
	if chunkSize < 1 {
		chunkSize = 1
	}

	var wg sync.WaitGroup
	for start := 0; start < totalItems; start += chunkSize {
		end := start + chunkSize
		if end > totalItems {
			end = totalItems
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
