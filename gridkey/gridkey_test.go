package gridkey

import "testing"

// TestPackUnpackBijection checks pack(unpack(k)) == k across the full
// addressable coordinate range's corners and a scattered interior sample.
func TestPackUnpackBijection(t *testing.T) {
	cases := []struct {
		x, y, z uint32
	}{
		{0, 0, 0},
		{1023, 1023, 1023},
		{1023, 0, 0},
		{0, 1023, 0},
		{0, 0, 1023},
		{7, 511, 3},
		{512, 256, 128},
	}
	for _, tc := range cases {
		k := Pack(tc.x, tc.y, tc.z)
		x, y, z := Unpack(k)
		if x != tc.x || y != tc.y || z != tc.z {
			t.Errorf("Unpack(Pack(%d,%d,%d)) = (%d,%d,%d)", tc.x, tc.y, tc.z, x, y, z)
		}
	}
}

// TestToLinearRowMajor verifies the row-major offset formula directly.
func TestToLinearRowMajor(t *testing.T) {
	const n = 8
	seen := make(map[uint32]bool)
	for z := uint32(0); z < n; z++ {
		for y := uint32(0); y < n; y++ {
			for x := uint32(0); x < n; x++ {
				want := x + n*(y+n*z)
				got := ToLinear(x, y, z, n)
				if got != want {
					t.Fatalf("ToLinear(%d,%d,%d,%d) = %d; want %d", x, y, z, n, got, want)
				}
				if seen[got] {
					t.Fatalf("duplicate linear offset %d for (%d,%d,%d)", got, x, y, z)
				}
				seen[got] = true
			}
		}
	}
	if len(seen) != n*n*n {
		t.Fatalf("covered %d offsets; want %d", len(seen), n*n*n)
	}
}

// TestScaleIsChildOfParent checks that scaling a parent key by S and
// re-deriving the parent coordinate (integer divide by S) recovers the
// original parent coordinate, for every child offset in [0,S)^3.
func TestScaleIsChildOfParent(t *testing.T) {
	const s = 4
	parent := Pack(3, 5, 2)
	for i := uint32(0); i < s; i++ {
		for j := uint32(0); j < s; j++ {
			for k := uint32(0); k < s; k++ {
				child := Scale(parent, s, i, j, k)
				cx, cy, cz := Unpack(child)
				if cx/s != 3 || cy/s != 5 || cz/s != 2 {
					t.Fatalf("Scale child (%d,%d,%d) does not divide back to parent (3,5,2)", cx, cy, cz)
				}
				if cx%s != i || cy%s != j || cz%s != k {
					t.Fatalf("Scale child offset mismatch: got (%d,%d,%d) want (%d,%d,%d)", cx%s, cy%s, cz%s, i, j, k)
				}
			}
		}
	}
}
