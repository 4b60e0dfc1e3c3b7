package broadphase

import (
	"context"
	"math"
	"sync/atomic"

	"github.com/meshforge/voxraster/geom"
	"github.com/meshforge/voxraster/gridkey"
	"github.com/meshforge/voxraster/internal/tile"
)

// halfDiagonalApprox is the conservative approximation of √3/2 (the half
// diagonal of a unit cell) used by the inclusion test. It must never
// under-approximate the true half-diagonal (≈0.8660): doing so would
// silently prune triangles that should survive to the next level.
const halfDiagonalApprox = 0.87

// Refine advances candidate list in from resolution n to resolution n*s,
// keeping exactly the (t, c′) pairs such that c′ is a child of some input
// (t, c) and point_tri_dist2(T[t], center(c′)) < (halfDiagonalApprox/(n*s)
// + band)². It reports overflow=true when the M·S³ task count exceeds the
// 32-bit range (§4.3's edge case); the caller should shrink its batch
// size for subsequent batches when this happens, but Refine itself always
// completes correctly using 64-bit task indexing.
func Refine(ctx context.Context, in Candidates, mesh geom.Mesh, n, s uint32, band float32) (out Candidates, overflow bool, err error) {
	if band < 0 {
		return Candidates{}, false, ErrNegativeBand
	}

	m := int64(len(in.Idx))
	if m == 0 || s == 0 {
		return Candidates{}, false, nil
	}

	s3 := int64(s) * int64(s) * int64(s)
	total := m * s3
	overflow = total > math.MaxInt32

	nNew := n * s
	threshold := halfDiagonalApprox/float32(nNew) + band
	thresh2 := threshold * threshold

	// predicate evaluates task taskIdx, decoding it back into the input
	// candidate index and child offset (i,j,k) ∈ [0,s)³.
	predicate := func(taskIdx int64) (t int32, childKey gridkey.Key, pass bool) {
		srcIdx := taskIdx / s3
		rem := taskIdx % s3
		i := uint32(rem / (int64(s) * int64(s)))
		rem2 := rem % (int64(s) * int64(s))
		j := uint32(rem2 / int64(s))
		k := uint32(rem2 % int64(s))

		t = in.Idx[srcIdx]
		childKey = gridkey.Scale(in.Grid[srcIdx], s, i, j, k)
		x, y, z := gridkey.Unpack(childKey)
		center := geom.CellCenter(x, y, z, nNew)
		d2 := geom.PointTriDist2(mesh[t], center)

		return t, childKey, d2 < thresh2
	}

	numTiles := (total + tile.Size - 1) / tile.Size
	slabOffsets := make([]int64, numTiles)
	var globalTotal atomic.Int64

	// Pass 1 ("probe"): count each tile's passing tasks, then claim a
	// disjoint output slab with one atomic fetch-and-add. Slab assignment
	// is determined purely by arrival order at globalTotal, not by tile
	// index — this is the spec's race-tolerant, scan-free compaction.
	err = tile.Run(ctx, numTiles, 1, func(tileIdx int64) {
		start := tileIdx * tile.Size
		end := start + tile.Size
		if end > total {
			end = total
		}

		var local int32
		for taskIdx := start; taskIdx < end; taskIdx++ {
			if _, _, pass := predicate(taskIdx); pass {
				local++
			}
		}
		prev := globalTotal.Add(int64(local)) - int64(local)
		slabOffsets[tileIdx] = prev
	})
	if err != nil {
		return Candidates{}, overflow, err
	}

	mNew := globalTotal.Load()
	outIdx := make([]int32, mNew)
	outGrid := make([]gridkey.Key, mNew)

	// Pass 2 ("fill"): re-evaluate the identical predicate and write each
	// passing task into its tile's already-claimed slab.
	err = tile.Run(ctx, numTiles, 1, func(tileIdx int64) {
		start := tileIdx * tile.Size
		end := start + tile.Size
		if end > total {
			end = total
		}

		slot := slabOffsets[tileIdx]
		var local int64
		for taskIdx := start; taskIdx < end; taskIdx++ {
			t, childKey, pass := predicate(taskIdx)
			if !pass {
				continue
			}
			outIdx[slot+local] = t
			outGrid[slot+local] = childKey
			local++
		}
	})
	if err != nil {
		return Candidates{}, overflow, err
	}

	return Candidates{Idx: outIdx, Grid: outGrid}, overflow, nil
}
