// Package geom implements the two scalar geometry kernels the rasterizer
// needs: squared point-to-triangle distance and axis-restricted
// ray-to-triangle hit distance.
//
// What:
//
//   - Vec3: a single-precision 3D point/vector.
//   - Triangle: three Vec3 vertices; Mesh is a read-only slice of Triangle.
//   - PointTriDist2: closest-point-on-triangle squared distance, with a
//     degenerate-triangle fallback so it never returns NaN.
//   - RayTriHitDist: parametric hit distance of an axis-aligned ray.
//
// Why:
//
//   - These are the only two primitives the broad phase (inclusion test)
//     and the narrow phase (distance + collide reduction) need; keeping
//     them allocation-free and branch-minimal lets broadphase.Refine and
//     narrowphase.ReduceMin/ReduceRepIdx call them once per task.
//
// Numerics:
//
//   - All computation is in float32, matching the spec's "computed in
//     single precision" requirement; no intermediate is promoted to
//     float64. Near-degenerate triangles are instead caught by the
//     squared-area threshold in PointTriDist2.
package geom
