// Command voxraster rasterizes a triangle mesh onto a dense R³ grid.
//
// Usage:
//
//	voxraster rasterize --in mesh.obj --res 64 --band 0.05 --variant collide --out grid.bin
//	voxraster plan --res 64
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
