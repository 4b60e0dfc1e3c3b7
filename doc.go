// Package voxraster turns a triangle soup into a dense R×R×R voxel
// distance field.
//
// 🚀 What is voxraster?
//
//	A small, allocation-disciplined library that brings together:
//
//	  • gridkey     — bijective pack/unpack of voxel coordinates
//	  • geom        — point-triangle and ray-triangle kernels
//	  • planner     — factor a resolution into subdivision levels
//	  • broadphase  — hierarchical candidate-list refinement
//	  • narrowphase — atomic min-distance + collide/repIdx reduction
//
// ✨ Why voxraster?
//
//   - Deterministic          — identical input always produces identical dist[]
//   - Batch-invariant        — output does not depend on Config.Batch
//   - Race-tolerant          — the broad phase never needs a prefix sum
//   - Pure Go                — no cgo, no GPU driver required
//
// Under the hood, everything is organized under small subpackages:
//
//	gridkey/     — 3D coordinate <-> grid key codec
//	geom/        — triangle geometry kernels
//	planner/     — resolution factorization
//	broadphase/  — level-by-level candidate refinement
//	narrowphase/ — shared-grid atomic reduction
//	internal/tile — fixed-size-tile parallel task runner shared by the above
//	meshio/      — minimal OBJ-subset triangle loader
//
// Quick shape:
//
//	mesh → [planner.Plan] → per batch: seed → k × [broadphase.Refine] → [narrowphase.ReduceMin]
//	      → (global barrier across all batches) → [narrowphase.ReduceRepIdx], Variant B only
//
// See DESIGN.md for the grounding of each package and cmd/voxraster for a
// runnable CLI built on top of [Rasterize].
//
//	go get github.com/meshforge/voxraster
package voxraster
