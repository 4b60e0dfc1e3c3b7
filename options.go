package voxraster

import (
	"log"

	"github.com/meshforge/voxraster/narrowphase"
	"github.com/meshforge/voxraster/planner"
)

// DefaultBatch is the default number of triangles per batch (§6).
const DefaultBatch = 131072

// Config configures one Rasterize call: the target resolution, the band
// narrowing the output, the per-batch triangle count, and which
// auxiliary array the narrow phase populates.
type Config struct {
	Resolution int
	Band       float32
	Batch      int
	Variant    narrowphase.Variant
	Logger     *log.Logger
}

// Option is a functional option for NewConfig.
type Option func(*Config)

// WithBand sets the band narrowing the output (§3); must be >= 0.
func WithBand(band float32) Option {
	return func(c *Config) { c.Band = band }
}

// WithBatch sets the per-batch triangle count; must be > 0. Smaller
// batches reduce peak memory (§5) at some cost to parallelism.
func WithBatch(batch int) Option {
	return func(c *Config) { c.Batch = batch }
}

// WithVariant selects the narrow phase's auxiliary output (§4.5/§9): the
// caller must choose explicitly, Rasterize never infers this.
func WithVariant(v narrowphase.Variant) Option {
	return func(c *Config) { c.Variant = v }
}

// WithLogger sets the logger that §7b overflow warnings are written to.
// Phase-tagged fatal errors (§7c) are returned by Rasterize, not logged.
// Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// NewConfig builds a Config for the given resolution, applying opts in
// order, and validates it per §7a: resolution range, non-factorable
// resolution, negative band, and non-positive batch all fail fast before
// Rasterize launches any work.
func NewConfig(resolution int, opts ...Option) (Config, error) {
	cfg := Config{
		Resolution: resolution,
		Batch:      DefaultBatch,
		Variant:    narrowphase.VariantCollide,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	return cfg, validateConfig(cfg)
}

func validateConfig(cfg Config) error {
	if cfg.Resolution < 1 || cfg.Resolution > 1024 {
		return ErrResolutionRange
	}
	if _, err := planner.Plan(cfg.Resolution); err != nil {
		return err
	}
	if cfg.Band < 0 {
		return ErrNegativeBand
	}
	if cfg.Batch <= 0 {
		return ErrInvalidBatch
	}

	return nil
}
