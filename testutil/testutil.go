// Package testutil provides deterministic point generators for tests and
// benchmarks.
package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/quadgo/geom"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates n points uniformly distributed over the square
// [minCoord, maxCoord) on both axes.
func (r *RNG) UniformPoints(n int, minCoord, maxCoord float64) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxCoord - minCoord
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = geom.Point{
			X: minCoord + r.rand.Float64()*span,
			Y: minCoord + r.rand.Float64()*span,
		}
	}

	return points
}

// ClusteredPoints generates perCentroid points around each centroid, offset
// uniformly by at most spread on both axes.
func (r *RNG) ClusteredPoints(centroids []geom.Point, perCentroid int, spread float64) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geom.Point, 0, len(centroids)*perCentroid)
	for _, c := range centroids {
		for range perCentroid {
			points = append(points, geom.Point{
				X: c.X + (r.rand.Float64()*2-1)*spread,
				Y: c.Y + (r.rand.Float64()*2-1)*spread,
			})
		}
	}

	return points
}
