// Package broadphase implements the hierarchical candidate-list
// refinement that is the hard part of the rasterizer: given a list of
// (triangle, coarse-cell) pairs at level ℓ, it produces the list at level
// ℓ+1 by S-fold subdivision and geometric pruning.
//
// What:
//
//   - Candidates holds two parallel slices, Idx (triangle index) and Grid
//     (packed cell key), at the refinement's current resolution. Order is
//     never semantically meaningful.
//   - Seed builds the level-0 candidate list for a batch of triangles.
//   - Refine advances Candidates one subdivision level via the two-pass
//     tile compaction described below.
//
// Two-pass compaction, exactly as specified:
//
//   - One task per (input-candidate, child-offset) pair, M·S³ tasks total,
//     grouped into fixed-size tiles (internal/tile.Size).
//   - Pass 1 ("probe"): each tile counts its passing tasks, then claims a
//     disjoint slab of the output by a single atomic fetch-and-add onto a
//     global counter. This is intentionally *not* a prefix sum — slab
//     assignment is whatever order tiles happen to finish pass 1 in — so
//     it needs no scan and tolerates the race, because the output list's
//     order carries no meaning.
//   - Pass 2 ("fill"): each tile re-evaluates the identical predicate and
//     writes each passing task into its claimed slab.
//
// Inclusion threshold:
//
//   - A candidate (t, c′) survives into the child level iff
//     point_tri_dist2(T[t], center(c′)) < (0.87/N′ + band)², where N′ is
//     the child resolution and 0.87 is the conservative half-diagonal
//     constant from the spec (slightly over √3/2 ≈ 0.8660, never under —
//     under-approximating would silently prune triangles).
package broadphase
