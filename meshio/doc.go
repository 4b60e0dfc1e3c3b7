// Package meshio loads a triangle soup from a minimal Wavefront OBJ
// subset: "v x y z" vertex lines and "f i j k ..." face lines, convex
// polygon faces triangulated as a fan. It is intentionally small — mesh
// I/O and normalization are an external collaborator per spec.md's scope
// — and exists only to give the CLI (cmd/voxraster) and fixture-loading
// tests something to read.
//
// Not supported: vertex normals/texcoords and material/group directives
// are silently skipped rather than rejected, since they do not affect
// triangle geometry. Negative (relative) face indices are rejected with
// ErrVertexIndex.
package meshio
