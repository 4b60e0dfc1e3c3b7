// Package narrowphase writes the final per-voxel results from a fully
// refined candidate list into the shared dense output grid.
//
// What:
//
//   - Grid holds Dist (the sentinel-initialized distance field) and
//     exactly one of Collide (Variant A, a three-axis ray-hit parity
//     triple) or RepIdx (Variant B, a tie-broken representative triangle
//     index).
//   - ReduceMin walks a batch's final candidate list once (atomic
//     min-distance, plus Variant A's collide flags). ReduceRepIdx runs
//     the RepIdx max-reduction and must only be called once every batch's
//     ReduceMin has completed — the barrier between the two is the
//     caller's (driver.go's), since a single batch's candidates are not
//     necessarily the only ones that can touch a given voxel.
//
// Atomics:
//
//   - Distances and the sentinel are always ≥ 0, so atomic float-min is
//     implemented as a compare-and-swap loop directly on the bit pattern
//     reinterpreted as uint32 — no sign-flip encoding is needed (see
//     DESIGN.md).
//   - RepIdx's atomic max is a compare-and-swap loop on int32; ties are
//     broken toward the higher triangle index by construction.
package narrowphase
