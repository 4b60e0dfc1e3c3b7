package narrowphase

// Sentinel is the initial value of every Dist entry: a voxel farther than
// band + half-diagonal/R from every triangle is left at this value.
const Sentinel float32 = 1e9

// Variant selects which auxiliary array ReduceMin (Collide) or
// ReduceRepIdx (RepIdx) populates. The caller must
// choose explicitly — the spec calls out that a port must not guess which
// of the two the caller intends.
type Variant int

const (
	// VariantCollide populates Collide, a per-axis ray-hit parity triple
	// used by downstream inside/outside classification.
	VariantCollide Variant = iota
	// VariantRepIdx populates RepIdx, the tie-broken representative
	// triangle index achieving the minimum distance at each voxel.
	VariantRepIdx
)

// Grid is the dense R³ output: Dist is always populated; exactly one of
// Collide or RepIdx is allocated, matching Variant.
type Grid struct {
	R       int
	Variant Variant
	Dist    []float32
	Collide [][3]bool
	RepIdx  []int32
}

// NewGrid allocates a Grid of size r³ with Dist initialized to Sentinel
// and the variant-selected auxiliary array initialized per §3 (Collide
// all-false, RepIdx all -1).
func NewGrid(r int, variant Variant) *Grid {
	n := r * r * r
	g := &Grid{R: r, Variant: variant, Dist: make([]float32, n)}
	for i := range g.Dist {
		g.Dist[i] = Sentinel
	}

	switch variant {
	case VariantCollide:
		g.Collide = make([][3]bool, n)
	case VariantRepIdx:
		g.RepIdx = make([]int32, n)
		for i := range g.RepIdx {
			g.RepIdx[i] = -1
		}
	}

	return g
}
