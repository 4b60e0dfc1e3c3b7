package geom

// CellCenter returns the center of voxel (x,y,z) in an n×n×n lattice
// covering [0,1]³: ((x+0.5)/n, (y+0.5)/n, (z+0.5)/n).
func CellCenter(x, y, z, n uint32) Vec3 {
	inv := 1 / float32(n)

	return Vec3{
		X: (float32(x) + 0.5) * inv,
		Y: (float32(y) + 0.5) * inv,
		Z: (float32(z) + 0.5) * inv,
	}
}
