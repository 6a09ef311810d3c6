package various

import (
	"sync"
	"testing"
)

func TestKickOffChunkWorkers(t *testing.T) {
	for _, total := range []int{0, 1, 7, 8, 9, 100, 1023} {
		var mu sync.Mutex
		covered := make([]int, total)
		KickOffChunkWorkers(total, func(start, end int) {
			if start < 0 || end > total || start > end {
				t.Errorf("total %d: chunk [%d, %d) out of range", total, start, end)
			}
			mu.Lock()
			for i := start; i < end; i++ {
				covered[i]++
			}
			mu.Unlock()
		})
		for i, n := range covered {
			if n != 1 {
				t.Fatalf("total %d: index %d covered %d times, want exactly once", total, i, n)
			}
		}
	}
}
