// Package gridkey packs and unpacks 3D integer voxel coordinates into a
// single 32-bit key, and computes linear offsets into a dense R³ grid.
//
// What:
//
//   - Pack/Unpack: bijective 10-bit-per-axis coordinate <-> Key codec.
//   - ToLinear: row-major linear offset x + N*y + N²*z.
//   - Scale: rewrite a Key at resolution N into the key of one of its S³
//     children at resolution N*S.
//
// Why:
//
//   - The broad phase (package broadphase) walks candidates level by
//     level; each level only needs to carry a packed key, not three
//     separate coordinate slices.
//   - Keeping the codec branch-free and allocation-free means it can be
//     called once per task in a tight, massively parallel loop.
//
// Limits:
//
//   - Each axis must fit in 10 bits, i.e. coordinates in [0, 1024). This
//     bounds the maximum supported resolution at R = 1024 (see package
//     planner).
package gridkey
