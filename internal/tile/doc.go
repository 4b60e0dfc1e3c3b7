// Package tile runs a flat set of independent tasks in fixed-size tiles
// on a bounded goroutine pool, standing in for the spec's "massively
// parallel accelerator" scheduling model on the host.
//
// What:
//
//   - Run launches one goroutine per tile (not per task), each goroutine
//     iterating its tile's tasks sequentially; this matches the spec's
//     "tiles are unordered, tasks within a tile are not" shape closely
//     enough for a host port while keeping goroutine counts bounded.
//   - Size is the default tile size. The package provides no counter
//     type: callers keep their own tile-local and global counters.
//
// Why a shared package:
//
//   - Both broadphase.Refine (pass 1/pass 2 of the two-pass compaction)
//     and narrowphase.ReduceMin/ReduceRepIdx (per-candidate reduction)
//     need "run N tasks, grouped into tiles of fixed size, on a worker
//     pool bounded by GOMAXPROCS" — the mechanics are identical, only the
//     per-task body differs.
package tile
