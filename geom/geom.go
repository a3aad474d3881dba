// Package geom provides the planar point primitives used by the quadtree
// and the proximity search layers.
package geom

import "fmt"

// Point is an immutable 2D coordinate pair.
//
// Point is a value type with exact structural equality: two points compare
// equal iff their coordinates are bit-identical float64 values. This makes
// Point usable as a map key, which the deduplication layers rely on.
// Equality is deliberately not tolerance-based; two reads of the same
// textual coordinate must dedup to a single point.
type Point struct {
	X float64
	Y float64
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// SquaredDistance returns the squared Euclidean distance between a and b.
// No square root is taken; callers compare against squared radii.
func SquaredDistance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
