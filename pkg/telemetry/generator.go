// Package telemetry synthesizes plausible, randomly sampled network metrics.
// Nothing here measures a real network: every call draws fresh values from
// fixed ranges and keeps no state between calls.
package telemetry

import (
	"time"

	"github.com/mfreeman451/networkhub/pkg/rng"
)

// Generator produces telemetry snapshots. It is safe for concurrent use as
// long as its Source is.
type Generator struct {
	src rng.Source
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces time.Now for timestamped snapshots.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a Generator drawing from src. A nil src uses the
// global random source.
func NewGenerator(src rng.Source, opts ...Option) *Generator {
	if src == nil {
		src = rng.New()
	}

	g := &Generator{
		src: src,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *Generator) intRange(lo, hi int) int {
	return rng.IntRange(g.src, lo, hi)
}

func (g *Generator) uniform(lo, hi float64, places int) float64 {
	return rng.UniformRounded(g.src, lo, hi, places)
}
