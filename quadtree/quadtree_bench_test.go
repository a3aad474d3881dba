package quadtree

import (
	"testing"

	"github.com/hupe1980/quadgo/geom"
	"github.com/hupe1980/quadgo/testutil"
)

func benchTree(b *testing.B, n int) *Tree {
	b.Helper()
	rng := testutil.NewRNG(4711)
	tree, err := Build(rng.UniformPoints(n, -1000, 1000))
	if err != nil {
		b.Fatal(err)
	}
	return tree
}

func BenchmarkBuild(b *testing.B) {
	rng := testutil.NewRNG(4711)
	points := rng.UniformPoints(10000, -1000, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Build(points); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInRadius(b *testing.B) {
	tree := benchTree(b, 10000)
	centroid := geom.Point{X: 0, Y: 0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range tree.InRadius(centroid, 50) {
			n++
		}
		_ = n
	}
}

func BenchmarkPoints(b *testing.B) {
	tree := benchTree(b, 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range tree.Points() {
			n++
		}
		_ = n
	}
}
