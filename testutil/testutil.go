// Package testutil provides helpers for geom tests and benchmarks.
//
// It generates reproducible random vectors for property-style tests:
//
//	rng := testutil.NewRNG(42)
//	a := rng.Vec3()
//	b := rng.Vec3()
package testutil

import (
	"math/rand"

	"github.com/haddriax/geom"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Float64 returns a uniform value in [-1, 1).
func (r *RNG) Float64() float64 {
	return r.rand.Float64()*2 - 1
}

// Vec2 returns a random float64 vector with components in [-1, 1).
func (r *RNG) Vec2() geom.Vec2[float64] {
	return geom.New2(r.Float64(), r.Float64())
}

// Vec3 returns a random float64 vector with components in [-1, 1).
func (r *RNG) Vec3() geom.Vec3[float64] {
	return geom.New3(r.Float64(), r.Float64(), r.Float64())
}

// Vec4 returns a random float64 vector with components in [-1, 1).
func (r *RNG) Vec4() geom.Vec4[float64] {
	return geom.New4(r.Float64(), r.Float64(), r.Float64(), r.Float64())
}

// NonZeroVec3 returns a random vector guaranteed to have non-negligible
// magnitude, for normalization and projection properties.
func (r *RNG) NonZeroVec3() geom.Vec3[float64] {
	for {
		v := r.Vec3()
		if v.SquaredMagnitude() > 1e-6 {
			return v
		}
	}
}
