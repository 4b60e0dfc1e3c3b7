package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/meshforge/voxraster/narrowphase"
)

// magic identifies the grid file format: 4 bytes "VRG1" followed by R,
// Variant, then Dist (R³ float32, little-endian), then the
// variant-selected auxiliary array.
var magic = [4]byte{'V', 'R', 'G', '1'}

// writeGrid serializes grid to w in the CLI's native binary format.
func writeGrid(w io.Writer, grid *narrowphase.Grid) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.Write(magic[:]); err != nil {
		return fmt.Errorf("voxraster: write magic: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, int32(grid.R)); err != nil {
		return fmt.Errorf("voxraster: write resolution: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, int32(grid.Variant)); err != nil {
		return fmt.Errorf("voxraster: write variant: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, grid.Dist); err != nil {
		return fmt.Errorf("voxraster: write dist: %w", err)
	}

	switch grid.Variant {
	case narrowphase.VariantCollide:
		for _, c := range grid.Collide {
			packed := byte(0)
			for axis, hit := range c {
				if hit {
					packed |= 1 << axis
				}
			}
			if err := bw.WriteByte(packed); err != nil {
				return fmt.Errorf("voxraster: write collide: %w", err)
			}
		}
	case narrowphase.VariantRepIdx:
		if err := binary.Write(bw, binary.LittleEndian, grid.RepIdx); err != nil {
			return fmt.Errorf("voxraster: write repidx: %w", err)
		}
	}

	return bw.Flush()
}
