package broadphase

import "github.com/meshforge/voxraster/gridkey"

// Candidates is a (triangle index, grid key) list at some refinement
// level's resolution. Idx and Grid are parallel slices of equal length;
// element order is never semantically meaningful and duplicates are not
// removed.
type Candidates struct {
	Idx  []int32
	Grid []gridkey.Key
}

// Len returns the number of candidate pairs.
func (c Candidates) Len() int {
	return len(c.Idx)
}

// Seed builds the level-0 candidate list for triangles [offset, offset+count)
// of a batch: idx[i] = offset+i, grid[i] = pack(0,0,0) — every triangle is a
// candidate for the single cell at resolution N=1.
func Seed(offset, count int32) Candidates {
	idx := make([]int32, count)
	grid := make([]gridkey.Key, count)
	zero := gridkey.Pack(0, 0, 0)
	for i := int32(0); i < count; i++ {
		idx[i] = offset + i
		grid[i] = zero
	}

	return Candidates{Idx: idx, Grid: grid}
}
