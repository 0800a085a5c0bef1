package rng

//go:generate mockgen -destination=mock_source.go -package=rng github.com/mfreeman451/networkhub/pkg/rng Source

// Source is the randomness every telemetry generator draws from.
type Source interface {
	// IntN returns a uniform int in [0,n). It panics if n <= 0.
	IntN(n int) int
	// Float64 returns a uniform float64 in [0.0,1.0).
	Float64() float64
}
