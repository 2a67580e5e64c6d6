package core

import (
	"math"
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// ResolveSeed picks the first non-zero seed, falling back to the clock.
func ResolveSeed(seeds ...int64) int64 {
	for _, s := range seeds {
		if s != 0 {
			return s
		}
	}
	return time.Now().UnixNano()
}

// FillUniform fills buf with independent samples from [lo, hi).
func FillUniform(r *rand.Rand, buf []float64, lo, hi float64) {
	span := hi - lo
	for i := range buf {
		buf[i] = clampBelow(lo+span*r.Float64(), lo, hi)
	}
}

// clampBelow keeps rounding from landing a sample on the open upper bound.
func clampBelow(v, lo, hi float64) float64 {
	if v >= hi && hi > lo {
		return math.Nextafter(hi, lo)
	}
	return v
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
