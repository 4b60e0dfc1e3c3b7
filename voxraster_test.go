package voxraster_test

import (
	"math"
	"testing"

	"github.com/meshforge/voxraster"
	"github.com/meshforge/voxraster/geom"
	"github.com/meshforge/voxraster/gridkey"
	"github.com/meshforge/voxraster/narrowphase"
	"github.com/stretchr/testify/require"
)

// TestScenarioS1SingleTriangle reproduces spec.md §8 scenario S1.
func TestScenarioS1SingleTriangle(t *testing.T) {
	mesh := geom.Mesh{
		{
			V0: geom.Vec3{0.25, 0.25, 0.25},
			V1: geom.Vec3{0.75, 0.25, 0.25},
			V2: geom.Vec3{0.25, 0.75, 0.25},
		},
	}
	cfg, err := voxraster.NewConfig(8, voxraster.WithBand(0.1))
	require.NoError(t, err)

	grid, err := voxraster.Rasterize(mesh, cfg)
	require.NoError(t, err)

	a := gridkey.ToLinear(3, 3, 0, 8)
	require.InDelta(t, 0.1875, grid.Dist[a], 5e-3)
}

// TestScenarioS2CubeCollide reproduces spec.md §8 scenario S2: a
// watertight axis-aligned cube, Variant A, checking collide flags at an
// interior and an exterior voxel.
func TestScenarioS2CubeCollide(t *testing.T) {
	mesh := cubeMesh(0.2, 0.8)
	cfg, err := voxraster.NewConfig(16, voxraster.WithBand(0.2), voxraster.WithVariant(narrowphase.VariantCollide))
	require.NoError(t, err)

	grid, err := voxraster.Rasterize(mesh, cfg)
	require.NoError(t, err)

	// voxel (8,8,8) at R=16, center (0.53125,0.53125,0.53125), next to the cube's center.
	interior := gridkey.ToLinear(8, 8, 8, 16)
	require.True(t, grid.Collide[interior][0])
	require.True(t, grid.Collide[interior][1])
	require.True(t, grid.Collide[interior][2])

	// voxel (1,1,1) at R=16, center (0.09375,0.09375,0.09375), well outside the cube.
	exterior := gridkey.ToLinear(1, 1, 1, 16)
	require.False(t, grid.Collide[exterior][0])
	require.False(t, grid.Collide[exterior][1])
	require.False(t, grid.Collide[exterior][2])
}

// TestScenarioS3CoincidentTrianglesRepIdx reproduces spec.md §8 scenario
// S3 through the full Rasterize pipeline (unit coverage of the same
// invariant also lives in package narrowphase).
func TestScenarioS3CoincidentTrianglesRepIdx(t *testing.T) {
	tri := geom.Triangle{
		V0: geom.Vec3{0.1, 0.1, 0.1},
		V1: geom.Vec3{0.4, 0.1, 0.1},
		V2: geom.Vec3{0.1, 0.4, 0.1},
	}
	mesh := geom.Mesh{tri, tri}
	cfg, err := voxraster.NewConfig(4, voxraster.WithBand(0.5), voxraster.WithVariant(narrowphase.VariantRepIdx))
	require.NoError(t, err)

	grid, err := voxraster.Rasterize(mesh, cfg)
	require.NoError(t, err)

	for a, d := range grid.Dist {
		if d < narrowphase.Sentinel {
			require.Equal(t, int32(1), grid.RepIdx[a], "voxel %d", a)
		}
	}
}

// TestScenarioS4EmptyMesh reproduces spec.md §8 scenario S4.
func TestScenarioS4EmptyMesh(t *testing.T) {
	cfgA, err := voxraster.NewConfig(4, voxraster.WithVariant(narrowphase.VariantCollide))
	require.NoError(t, err)
	gridA, err := voxraster.Rasterize(nil, cfgA)
	require.NoError(t, err)
	for _, d := range gridA.Dist {
		require.Equal(t, narrowphase.Sentinel, d)
	}
	for _, c := range gridA.Collide {
		require.Equal(t, [3]bool{false, false, false}, c)
	}

	cfgB, err := voxraster.NewConfig(4, voxraster.WithVariant(narrowphase.VariantRepIdx))
	require.NoError(t, err)
	gridB, err := voxraster.Rasterize(geom.Mesh{}, cfgB)
	require.NoError(t, err)
	for _, ri := range gridB.RepIdx {
		require.Equal(t, int32(-1), ri)
	}
}

// TestScenarioS5MidplaneDistance reproduces spec.md §8 scenario S5's
// shape at a reduced resolution (R=128 instead of R=1024) so the test
// allocates megabytes rather than gigabytes; the geometry and expected
// relationships are identical, only R is scaled down.
func TestScenarioS5MidplaneDistance(t *testing.T) {
	const r = 128
	mesh := geom.Mesh{
		{V0: geom.Vec3{0, 0, 0.5}, V1: geom.Vec3{1, 0, 0.5}, V2: geom.Vec3{0, 1, 0.5}},
	}
	cfg, err := voxraster.NewConfig(r, voxraster.WithBand(0))
	require.NoError(t, err)

	grid, err := voxraster.Rasterize(mesh, cfg)
	require.NoError(t, err)

	mid := uint32(r / 2)
	a := gridkey.ToLinear(10, 10, mid, r)
	require.InDelta(t, 0.5/float64(r), grid.Dist[a], 1e-3)

	z0 := gridkey.ToLinear(10, 10, 0, r)
	require.GreaterOrEqual(t, float64(grid.Dist[z0]), 0.5-1/(2*float64(r)))
}

// TestBatchingInvariance checks invariant 7 from spec.md §8: output does
// not depend on Config.Batch.
func TestBatchingInvariance(t *testing.T) {
	mesh := cubeMesh(0.2, 0.8)
	var prev *narrowphase.Grid
	for _, batch := range []int{1, 3, 7, 131072} {
		cfg, err := voxraster.NewConfig(8, voxraster.WithBand(0.1), voxraster.WithBatch(batch))
		require.NoError(t, err)
		grid, err := voxraster.Rasterize(mesh, cfg)
		require.NoError(t, err)
		if prev != nil {
			for i := range grid.Dist {
				require.InDelta(t, prev.Dist[i], grid.Dist[i], 1e-5, "batch=%d voxel=%d", batch, i)
			}
		}
		prev = grid
	}
}

// TestBatchingInvarianceRepIdx extends invariant 7 to Variant B: with a
// mesh spanning multiple batches (forced via a small Config.Batch), the
// repIdx-pass must only run after every batch's min-pass has completed
// globally, not just within its own batch — otherwise a batch boundary
// splitting coincident triangles would produce a batch-size-dependent
// (and possibly non-deterministic) RepIdx.
func TestBatchingInvarianceRepIdx(t *testing.T) {
	tri := geom.Triangle{
		V0: geom.Vec3{0.1, 0.1, 0.1},
		V1: geom.Vec3{0.4, 0.1, 0.1},
		V2: geom.Vec3{0.1, 0.4, 0.1},
	}
	mesh := geom.Mesh{tri, tri, tri, tri, tri}

	for _, batch := range []int{1, 2, 3, 131072} {
		cfg, err := voxraster.NewConfig(4, voxraster.WithBand(0.5), voxraster.WithBatch(batch), voxraster.WithVariant(narrowphase.VariantRepIdx))
		require.NoError(t, err)
		grid, err := voxraster.Rasterize(mesh, cfg)
		require.NoError(t, err)

		for a, d := range grid.Dist {
			if d < narrowphase.Sentinel {
				require.Equal(t, int32(len(mesh)-1), grid.RepIdx[a], "batch=%d voxel=%d", batch, a)
			}
		}
	}
}

// TestAgreementWithBruteForce covers invariant 2 from spec.md §8: for a
// small mesh and low resolution, every voxel within band + √3/(2R) of the
// mesh matches the brute-force nearest-triangle distance.
func TestAgreementWithBruteForce(t *testing.T) {
	mesh := cubeMesh(0.3, 0.7)
	const r = 8
	band := float32(0.15)
	cfg, err := voxraster.NewConfig(r, voxraster.WithBand(band))
	require.NoError(t, err)

	grid, err := voxraster.Rasterize(mesh, cfg)
	require.NoError(t, err)

	limit := float64(band) + 0.8660/float64(r)
	for x := uint32(0); x < r; x++ {
		for y := uint32(0); y < r; y++ {
			for z := uint32(0); z < r; z++ {
				center := geom.CellCenter(x, y, z, r)
				best := float32(narrowphase.Sentinel)
				for _, tri := range mesh {
					d := geom.PointTriDist2(tri, center)
					if d < best*best {
						best = float32(math.Sqrt(float64(d)))
					}
				}
				a := gridkey.ToLinear(x, y, z, r)
				if float64(best) <= limit {
					require.InDelta(t, best, grid.Dist[a], 1e-4, "voxel (%d,%d,%d)", x, y, z)
				}
			}
		}
	}
}

// TestConfigValidation covers the configuration-error paths of §7a.
func TestConfigValidation(t *testing.T) {
	_, err := voxraster.NewConfig(0)
	require.ErrorIs(t, err, voxraster.ErrResolutionRange)

	_, err = voxraster.NewConfig(7)
	require.ErrorIs(t, err, voxraster.ErrNotFactorable)

	_, err = voxraster.NewConfig(8, voxraster.WithBand(-1))
	require.ErrorIs(t, err, voxraster.ErrNegativeBand)

	_, err = voxraster.NewConfig(8, voxraster.WithBatch(-1))
	require.ErrorIs(t, err, voxraster.ErrInvalidBatch)
}

// cubeMesh builds the 12 triangles (2 per face) of an axis-aligned cube
// spanning [lo,hi]³.
func cubeMesh(lo, hi float32) geom.Mesh {
	c := [8]geom.Vec3{
		{lo, lo, lo}, {hi, lo, lo}, {hi, hi, lo}, {lo, hi, lo},
		{lo, lo, hi}, {hi, lo, hi}, {hi, hi, hi}, {lo, hi, hi},
	}
	quads := [6][4]int{
		{0, 1, 2, 3}, // bottom (z=lo)
		{4, 5, 6, 7}, // top (z=hi)
		{0, 1, 5, 4}, // front (y=lo)
		{2, 3, 7, 6}, // back (y=hi)
		{0, 3, 7, 4}, // left (x=lo)
		{1, 2, 6, 5}, // right (x=hi)
	}
	mesh := make(geom.Mesh, 0, 12)
	for _, q := range quads {
		mesh = append(mesh,
			geom.Triangle{V0: c[q[0]], V1: c[q[1]], V2: c[q[2]]},
			geom.Triangle{V0: c[q[0]], V1: c[q[2]], V2: c[q[3]]},
		)
	}

	return mesh
}
