package geom

import "math"

// parallelEps bounds |d·n| below which the ray is treated as parallel to
// the triangle's plane.
const parallelEps = 1e-8

// Inf is the sentinel "no hit" distance returned by RayTriHitDist.
var Inf = float32(math.Inf(1))

// RayTriHitDist returns the parametric distance t ≥ 0 at which the ray
// o + t·axis.Unit() enters triangle tri, or Inf if there is no such hit.
// Back-face hits count (no culling); a ray parallel to the triangle's
// plane, or a hit behind the origin (t < 0), returns Inf. Implemented as
// the Möller–Trumbore intersection test restricted to axis-aligned
// directions.
func RayTriHitDist(tri Triangle, o Vec3, axis Axis) float32 {
	d := axis.Unit()
	edge1 := tri.V1.Sub(tri.V0)
	edge2 := tri.V2.Sub(tri.V0)

	h := d.Cross(edge2)
	a := edge1.Dot(h)
	if a > -parallelEps && a < parallelEps {
		return Inf
	}
	f := 1 / a

	s := o.Sub(tri.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return Inf
	}

	q := s.Cross(edge1)
	v := f * d.Dot(q)
	if v < 0 || u+v > 1 {
		return Inf
	}

	t := f * edge2.Dot(q)
	if t < 0 {
		return Inf
	}

	return t
}
