// File: api.go
// Role: thin, deterministic public facade exposing the single entry point.
// Policy: no algorithms live here — batching/level-sequencing lives in
// driver.go, the geometric predicate lives in broadphase/narrowphase.
package voxraster

import (
	"context"
	"fmt"

	"github.com/meshforge/voxraster/geom"
	"github.com/meshforge/voxraster/narrowphase"
	"github.com/meshforge/voxraster/planner"
)

// Rasterize computes the dense R³ distance field (and the variant-selected
// auxiliary array) for mesh under cfg, per spec.md §6:
//
//	dist[v] = min over all t of the Euclidean distance from the center of
//	voxel v to triangle t, unless that minimum exceeds band +
//	halfDiagonalApprox/R, in which case dist[v] stays at narrowphase.Sentinel.
//
// cfg should be built with NewConfig so validation has already happened;
// Rasterize re-validates defensively and returns a configuration error
// immediately, before any batch is launched, and never a partial grid on
// a fatal error.
func Rasterize(mesh geom.Mesh, cfg Config) (*narrowphase.Grid, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	plan, err := planner.Plan(cfg.Resolution)
	if err != nil {
		return nil, fmt.Errorf("voxraster: config: %w", err)
	}

	grid := narrowphase.NewGrid(cfg.Resolution, cfg.Variant)
	if len(mesh) == 0 {
		return grid, nil
	}

	if err := run(context.Background(), mesh, cfg, plan, grid); err != nil {
		return nil, err
	}

	return grid, nil
}
