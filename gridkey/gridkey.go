package gridkey

// Key is a packed (x,y,z) voxel coordinate, 10 bits per axis.
type Key uint32

// bitsPerAxis is the number of bits reserved for each coordinate; it
// bounds the maximum addressable resolution at 2^10 = 1024.
const bitsPerAxis = 10

// axisMask isolates the low bitsPerAxis bits of a coordinate.
const axisMask = 1<<bitsPerAxis - 1

// Pack bijectively folds a 3D coordinate into a single Key. Each of x, y,
// z must fit in bitsPerAxis bits; callers that respect the planner's
// resolution bound (R ≤ 1024) always satisfy this.
func Pack(x, y, z uint32) Key {
	return Key(x&axisMask | (y&axisMask)<<bitsPerAxis | (z&axisMask)<<(2*bitsPerAxis))
}

// Unpack inverts Pack: Pack(Unpack(k)) == k for every Key produced by Pack.
func Unpack(k Key) (x, y, z uint32) {
	x = uint32(k) & axisMask
	y = (uint32(k) >> bitsPerAxis) & axisMask
	z = (uint32(k) >> (2 * bitsPerAxis)) & axisMask

	return x, y, z
}

// ToLinear computes the row-major linear offset of (x,y,z) in an N×N×N
// dense grid: x + N*y + N²*z.
func ToLinear(x, y, z, n uint32) uint32 {
	return x + n*(y+n*z)
}

// Scale rewrites key k — a coordinate at resolution n — into the key of
// its child cell (i,j,k) ∈ [0,s)³ at resolution n*s:
//
//	scale(key, S, (i,j,k)) = pack(unpack(key)*S + (i,j,k))
//
// The caller is responsible for keeping i, j, k within [0, s).
func Scale(k Key, s uint32, i, j, kk uint32) Key {
	x, y, z := Unpack(k)

	return Pack(x*s+i, y*s+j, z*s+kk)
}
