package planner

import "errors"

var (
	// ErrResolutionRange indicates R is outside the supported [1, 1024] range.
	ErrResolutionRange = errors.New("planner: resolution out of range [1,1024]")
	// ErrNotFactorable indicates R cannot be expressed by the requested policy.
	ErrNotFactorable = errors.New("planner: resolution is not factorable by this policy")
	// ErrBadTwoLevelFactor indicates La is not one of the supported two-level factors.
	ErrBadTwoLevelFactor = errors.New("planner: La must be 8 or 16")
)
