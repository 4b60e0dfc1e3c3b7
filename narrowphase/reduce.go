package narrowphase

import (
	"context"
	"math"

	"github.com/meshforge/voxraster/broadphase"
	"github.com/meshforge/voxraster/geom"
	"github.com/meshforge/voxraster/gridkey"
	"github.com/meshforge/voxraster/internal/tile"
)

// ReduceMin writes cand — the final, resolution-r candidate list for one
// batch — into grid: an atomic min-distance reduction for every
// candidate, plus the Collide auxiliary write for VariantCollide. It
// never touches RepIdx; a caller using VariantRepIdx must not read
// grid.RepIdx as stable until every batch's ReduceMin has returned, and
// must then run ReduceRepIdx separately (§4.5/§9 — the representative-
// index pass must only ever compare against a distance that can no
// longer change anywhere in the grid, not just within one batch).
func ReduceMin(ctx context.Context, cand broadphase.Candidates, mesh geom.Mesh, r uint32, grid *Grid) error {
	switch grid.Variant {
	case VariantCollide:
		if grid.Collide == nil {
			return ErrUnknownVariant
		}
	case VariantRepIdx:
		if grid.RepIdx == nil {
			return ErrUnknownVariant
		}
	default:
		return ErrUnknownVariant
	}

	invR := 1 / float32(r)
	total := int64(cand.Len())

	return tile.Run(ctx, total, tile.Size, func(taskIdx int64) {
		t := cand.Idx[taskIdx]
		x, y, z := gridkey.Unpack(cand.Grid[taskIdx])
		a := gridkey.ToLinear(x, y, z, r)
		center := geom.CellCenter(x, y, z, r)

		d2 := geom.PointTriDist2(mesh[t], center)
		d := float32(math.Sqrt(float64(d2)))
		atomicMinFloat32(&grid.Dist[a], d)

		if grid.Variant == VariantCollide {
			for axis := geom.AxisX; axis <= geom.AxisZ; axis++ {
				if geom.RayTriHitDist(mesh[t], center, axis) <= invR {
					grid.Collide[a][axis] = true
				}
			}
		}
	})
}

// ReduceRepIdx writes the tie-broken representative triangle index for
// every candidate in cand into grid.RepIdx. The caller must only invoke
// this once grid.Dist is globally stable — i.e. after ReduceMin has
// returned for every batch whose candidates might share a voxel with
// cand, not merely this one — since the equality test below compares
// against grid.Dist directly, never an epsilon.
func ReduceRepIdx(ctx context.Context, cand broadphase.Candidates, mesh geom.Mesh, r uint32, grid *Grid) error {
	if grid.Variant != VariantRepIdx || grid.RepIdx == nil {
		return ErrUnknownVariant
	}

	total := int64(cand.Len())

	return tile.Run(ctx, total, tile.Size, func(taskIdx int64) {
		t := cand.Idx[taskIdx]
		x, y, z := gridkey.Unpack(cand.Grid[taskIdx])
		a := gridkey.ToLinear(x, y, z, r)
		center := geom.CellCenter(x, y, z, r)

		d2 := geom.PointTriDist2(mesh[t], center)
		d := float32(math.Sqrt(float64(d2)))
		if d == grid.Dist[a] {
			atomicMaxInt32(&grid.RepIdx[a], t)
		}
	})
}
