// File: driver.go
// Role: batching driver (§4.4) — partitions triangles into batches,
// sequences the planner's levels through broadphase.Refine, and streams
// each batch's final candidates into the shared narrowphase.Grid.
package voxraster

import (
	"context"
	"fmt"
	"runtime"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/meshforge/voxraster/broadphase"
	"github.com/meshforge/voxraster/geom"
	"github.com/meshforge/voxraster/narrowphase"
)

// run partitions mesh into batches of cfg.Batch triangles and refines
// each through a bounded worker pool. Broad-phase refinement and the
// min-distance reduction are batch-independent and run concurrently
// (§4.4; the shared grid's Dist writes are atomic). Variant B's
// representative-index pass, however, is NOT batch-independent: two
// batches can refine candidates onto the same voxel, so RepIdx's
// equality test against grid.Dist is only valid once every batch's
// min-pass has stopped writing. run therefore enforces a global
// errgroup.Wait barrier between all batches' min-passes and the
// repIdx-pass that follows (§4.5/§9).
func run(ctx context.Context, mesh geom.Mesh, cfg Config, plan []uint32, grid *narrowphase.Grid) error {
	ranges := batchRanges(len(mesh), cfg.Batch)
	finals := make([]batchFinal, len(ranges))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, br := range ranges {
		i, br := i, br
		g.Go(func() error {
			final, err := refineAndReduceMin(gctx, mesh, cfg, plan, grid, br.offset, br.count)
			if err != nil {
				return err
			}
			finals[i] = final

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if grid.Variant != narrowphase.VariantRepIdx {
		return nil
	}

	return reduceRepIdxAll(ctx, mesh, finals, grid)
}

// batchFinal is one batch's resolution-n candidate list surviving every
// subdivision level, carried across the global barrier in run so its
// repIdx-pass can run against a now-stable grid.Dist.
type batchFinal struct {
	cand broadphase.Candidates
	n    uint32
}

type batchRange struct {
	offset, count int32
}

// batchRanges splits [0,n) into chunks of at most size triangles each.
func batchRanges(n, size int) []batchRange {
	if size <= 0 {
		size = DefaultBatch
	}
	var starts []int
	for off := 0; off < n; off += size {
		starts = append(starts, off)
	}

	return lo.Map(starts, func(off int, _ int) batchRange {
		count := size
		if off+count > n {
			count = n - off
		}

		return batchRange{offset: int32(off), count: int32(count)}
	})
}

// refineAndReduceMin seeds one batch's level-0 candidates, walks the
// plan's subdivision levels, and runs the min-distance reduction (plus
// Variant A's collide flags) for the survivors. It stops early if a
// level leaves zero candidates. The returned batchFinal's candidates are
// NOT yet reduced into RepIdx — that happens later, after every batch
// reaches this same point (see run).
func refineAndReduceMin(ctx context.Context, mesh geom.Mesh, cfg Config, plan []uint32, grid *narrowphase.Grid, offset, count int32) (batchFinal, error) {
	cand := broadphase.Seed(offset, count)
	n := uint32(1)

	for _, s := range plan {
		out, overflow, err := broadphase.Refine(ctx, cand, mesh, n, s, cfg.Band)
		if err != nil {
			return batchFinal{}, fmt.Errorf("voxraster: phase broadphase: %w", err)
		}
		if overflow {
			cfg.Logger.Printf("voxraster: batch [%d,%d): candidate count exceeded 32-bit range at resolution %d, continuing with 64-bit task indexing", offset, offset+count, n*s)
		}

		cand = out
		n *= s
		if cand.Len() == 0 {
			return batchFinal{}, nil
		}
	}

	if err := narrowphase.ReduceMin(ctx, cand, mesh, n, grid); err != nil {
		return batchFinal{}, fmt.Errorf("voxraster: phase narrowphase: %w", err)
	}

	return batchFinal{cand: cand, n: n}, nil
}

// reduceRepIdxAll runs the repIdx-pass for every batch's surviving
// candidates, after the caller has already waited for every batch's
// min-pass to complete (run's barrier). Each batch's pass is independent
// of the others at this point — grid.Dist no longer changes — so they
// run concurrently again.
func reduceRepIdxAll(ctx context.Context, mesh geom.Mesh, finals []batchFinal, grid *narrowphase.Grid) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, final := range finals {
		final := final
		if final.cand.Len() == 0 {
			continue
		}
		g.Go(func() error {
			if err := narrowphase.ReduceRepIdx(gctx, final.cand, mesh, final.n, grid); err != nil {
				return fmt.Errorf("voxraster: phase narrowphase: %w", err)
			}

			return nil
		})
	}

	return g.Wait()
}
