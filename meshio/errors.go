// SPDX-License-Identifier: MIT
package meshio

import "errors"

var (
	// ErrNoVertices indicates the source had no "v x y z" lines.
	ErrNoVertices = errors.New("meshio: no vertices")
	// ErrVertexIndex indicates a face referenced a vertex index outside
	// the range of vertices seen so far.
	ErrVertexIndex = errors.New("meshio: face references an out-of-range vertex index")
	// ErrDegenerateFace indicates a face line listed fewer than 3 vertices.
	ErrDegenerateFace = errors.New("meshio: face must reference at least 3 vertices")
)
