package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/meshforge/voxraster/geom"
)

// Load reads a triangle soup from r, a minimal OBJ-subset stream: "v x y
// z" vertex lines and "f i j k ..." face lines (1-indexed, optional
// "/texcoord/normal" suffixes ignored). Faces with more than 3 vertices
// are triangulated as a fan around their first vertex, which is only
// correct for convex, planar faces — acceptable for the simple fixtures
// and CLI inputs this package targets.
func Load(r io.Reader) (geom.Mesh, error) {
	var verts []geom.Vec3
	var mesh geom.Mesh

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, err
			}
			verts = append(verts, v)

		case "f":
			tris, err := parseFace(fields[1:], verts)
			if err != nil {
				return nil, err
			}
			mesh = append(mesh, tris...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("meshio: %w", err)
	}
	if len(verts) == 0 {
		return nil, ErrNoVertices
	}

	return mesh, nil
}

func parseVertex(fields []string) (geom.Vec3, error) {
	if len(fields) < 3 {
		return geom.Vec3{}, fmt.Errorf("meshio: vertex line needs 3 coordinates, got %d", len(fields))
	}
	coords := make([]float32, 3)
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return geom.Vec3{}, fmt.Errorf("meshio: bad vertex coordinate %q: %w", fields[i], err)
		}
		coords[i] = float32(f)
	}

	return geom.Vec3{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// parseFace triangulates one "f ..." line as a fan around its first
// vertex.
func parseFace(fields []string, verts []geom.Vec3) (geom.Mesh, error) {
	if len(fields) < 3 {
		return nil, ErrDegenerateFace
	}

	idx := make([]int, len(fields))
	for i, f := range fields {
		i0 := strings.SplitN(f, "/", 2)[0]
		n, err := strconv.Atoi(i0)
		if err != nil {
			return nil, fmt.Errorf("meshio: bad face index %q: %w", f, err)
		}
		if n < 1 || n > len(verts) {
			return nil, ErrVertexIndex
		}
		idx[i] = n - 1 // OBJ indices are 1-based
	}

	tris := make(geom.Mesh, 0, len(idx)-2)
	for i := 1; i < len(idx)-1; i++ {
		tris = append(tris, geom.Triangle{
			V0: verts[idx[0]],
			V1: verts[idx[i]],
			V2: verts[idx[i+1]],
		})
	}

	return tris, nil
}
