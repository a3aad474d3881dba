package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/quadgo/geom"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	points := rng.UniformPoints(64, -10, 10)

	assert.Len(t, points, 64)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.X, -10.0)
		assert.Less(t, p.X, 10.0)
		assert.GreaterOrEqual(t, p.Y, -10.0)
		assert.Less(t, p.Y, 10.0)
	}
}

func TestUniformPointsDeterministic(t *testing.T) {
	a := NewRNG(1).UniformPoints(16, 0, 1)
	b := NewRNG(1).UniformPoints(16, 0, 1)

	assert.Equal(t, a, b)
}

func TestClusteredPoints(t *testing.T) {
	rng := NewRNG(4711)
	centroids := []geom.Point{{X: 100, Y: 100}, {X: -100, Y: -100}}

	points := rng.ClusteredPoints(centroids, 8, 2.5)

	assert.Len(t, points, 16)
	for i, p := range points {
		c := centroids[i/8]
		assert.InDelta(t, c.X, p.X, 2.5)
		assert.InDelta(t, c.Y, p.Y, 2.5)
	}
}
