package voxraster

import (
	"errors"

	"github.com/meshforge/voxraster/planner"
)

// Sentinel configuration errors (§7a): these are returned by NewConfig
// and Rasterize before any goroutine is launched.
var (
	// ErrResolutionRange indicates Config.Resolution is outside [1,1024].
	// It aliases planner.ErrResolutionRange so callers can errors.Is
	// against either the voxraster or planner sentinel.
	ErrResolutionRange = planner.ErrResolutionRange
	// ErrNotFactorable indicates Config.Resolution cannot be factored by
	// the resolution planner's greedy policy.
	ErrNotFactorable = planner.ErrNotFactorable
	// ErrNegativeBand indicates Config.Band is negative.
	ErrNegativeBand = errors.New("voxraster: band must be >= 0")
	// ErrInvalidBatch indicates Config.Batch is <= 0.
	ErrInvalidBatch = errors.New("voxraster: batch must be > 0")
)
