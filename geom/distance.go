package geom

import "math"

// degenerateAreaEps2 bounds the squared cross-product length below which a
// triangle is treated as degenerate (collinear or coincident vertices).
const degenerateAreaEps2 = 1e-12

// PointTriDist2 returns the squared Euclidean distance from p to the
// closed triangle t. It is exactly symmetric in vertex order up to
// floating-point rounding, and never returns NaN: a degenerate triangle
// (collinear or coincident vertices) falls back to point-to-segment
// distance on its longest edge, and ultimately to point-to-point distance
// if all three vertices coincide.
func PointTriDist2(t Triangle, p Vec3) float32 {
	a, b, c := t.V0, t.V1, t.V2
	ab := b.Sub(a)
	ac := c.Sub(a)

	if ab.Cross(ac).Len2() <= degenerateAreaEps2 {
		return degenerateDist2(a, b, c, p)
	}

	return closestPointDist2(a, b, c, ab, ac, p)
}

// closestPointDist2 implements the standard barycentric region
// classification for the closest point on a non-degenerate triangle
// (Ericson, Real-Time Collision Detection §5.1.5).
func closestPointDist2(a, b, c, ab, ac Vec3, p Vec3) float32 {
	ap := p.Sub(a)
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return ap.Len2() // vertex region a
	}

	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return bp.Len2() // vertex region b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		closest := a.Add(ab.Scale(v))
		return p.Sub(closest).Len2() // edge ab
	}

	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return cp.Len2() // vertex region c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		closest := a.Add(ac.Scale(w))
		return p.Sub(closest).Len2() // edge ac
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		closest := b.Add(c.Sub(b).Scale(w))
		return p.Sub(closest).Len2() // edge bc
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	closest := a.Add(ab.Scale(v)).Add(ac.Scale(w))

	return p.Sub(closest).Len2() // interior
}

// degenerateDist2 handles a triangle whose three vertices are collinear or
// coincident: distance collapses to point-to-segment on the longest edge,
// or point-to-point if every edge is itself degenerate.
func degenerateDist2(a, b, c, p Vec3) float32 {
	type edge struct{ u, v Vec3 }
	edges := [3]edge{{a, b}, {b, c}, {c, a}}

	best := float32(math.MaxFloat32)
	for _, e := range edges {
		d := pointSegmentDist2(p, e.u, e.v)
		if d < best {
			best = d
		}
	}
	if best == float32(math.MaxFloat32) {
		// unreachable in practice (there are always 3 edges), kept as a
		// final point-to-point fallback for robustness.
		return p.Sub(a).Len2()
	}

	return best
}

// pointSegmentDist2 returns the squared distance from p to the closed
// segment [u,v], collapsing to point-to-point distance when u == v.
func pointSegmentDist2(p, u, v Vec3) float32 {
	uv := v.Sub(u)
	len2 := uv.Len2()
	if len2 <= degenerateAreaEps2 {
		return p.Sub(u).Len2()
	}

	t := p.Sub(u).Dot(uv) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := u.Add(uv.Scale(t))

	return p.Sub(closest).Len2()
}
