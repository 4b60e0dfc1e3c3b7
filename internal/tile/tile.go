package tile

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Size is the default number of tasks grouped into one tile, matching
// the spec's example tile geometry (§4.3).
const Size = 512

// Run launches ceil(total/size) tiles across a worker pool bounded by
// GOMAXPROCS, each tile invoking fn sequentially over its [start,end)
// task-index range. Run blocks until every tile has completed (the host
// barrier between phases) and returns the first error any tile returned,
// if any.
//
// Task indices are int64 throughout, per the spec's requirement that the
// refinement use 64-bit task indexing internally even though the tile
// size and most totals fit comfortably in 32 bits.
func Run(ctx context.Context, total int64, size int, fn func(taskIdx int64)) error {
	if total <= 0 {
		return nil
	}
	if size <= 0 {
		size = Size
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for start := int64(0); start < total; start += int64(size) {
		end := start + int64(size)
		if end > total {
			end = total
		}
		s, e := start, end
		g.Go(func() error {
			for idx := s; idx < e; idx++ {
				fn(idx)
			}

			return nil
		})
	}

	return g.Wait()
}
