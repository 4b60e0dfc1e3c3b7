// Package planner factors a target voxel resolution R into an ordered
// sequence of per-level subdivision factors (S₁,…,Sₖ) with ∏Sᵢ = R.
//
// Policy:
//
//   - Plan uses a greedy factor-of-4 prefix with the remainder pushed
//     last: while N > 4, push 4 and divide N by 4; then push whatever
//     remains. This matches the typical case of R a power of 2 up to
//     1024.
//   - PlanTwoLevel offers the alternative two-level plan (La, Lb) with
//     La ∈ {8,16} and Lb = R/La, asserting divisibility.
//
// Errors:
//
//   - ErrResolutionRange: R outside [1, 1024].
//   - ErrNotFactorable: R cannot be expressed by the requested policy.
package planner
