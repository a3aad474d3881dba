// Package quadtree provides a region-adaptive quadtree over planar points.
//
// The tree follows a strict build-then-freeze discipline: all inserts must
// complete before the first query. Once frozen, queries never mutate state,
// so any number of goroutines may read the tree concurrently without
// synchronization.
package quadtree

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/hupe1980/quadgo/geom"
)

// Quadrant indexes into a node's child slots. The order is fixed and
// determines the traversal order of Points.
const (
	quadrantLL = iota // lower-left
	quadrantUL        // upper-left
	quadrantLR        // lower-right
	quadrantUR        // upper-right

	numQuadrants
)

var (
	// ErrInvalidHalfwidth is returned when a tree is created with a
	// non-positive halfwidth.
	ErrInvalidHalfwidth = errors.New("halfwidth must be positive")

	// ErrInvalidResolution is returned when the resolution option is
	// non-positive.
	ErrInvalidResolution = errors.New("resolution must be positive")
)

// ErrOutOfBounds is returned by Insert when a point lies outside the node's
// region. This is a contract violation: callers are responsible for sizing
// the root region to cover every point (see Build).
type ErrOutOfBounds struct {
	Point     geom.Point
	Center    geom.Point
	Halfwidth float64
}

// Error returns the error message for an out-of-bounds insert.
func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("point %s outside node region centered %s with halfwidth %g",
		e.Point, e.Center, e.Halfwidth)
}

// Options contains configuration options for the quadtree.
type Options struct {
	// Resolution is the halfwidth threshold below which a node stops
	// subdividing and stores points directly. It bounds recursion depth by
	// log2(halfwidth/resolution), independent of point count or clustering.
	Resolution float64

	// Pad is the extra halfwidth added by Build around the bounding square
	// of the input so that boundary points stay inside the root region
	// under floating-point rounding. Ignored by New.
	Pad float64
}

// DefaultOptions contains the default configuration options for the quadtree.
var DefaultOptions = Options{
	Resolution: 2.5,
	Pad:        0.001,
}

// Tree is a node of a region-adaptive quadtree. Every node owns a square
// region [center ± halfwidth] on both axes; each of its at most four
// children owns one quadrant of that region. Children are materialized
// lazily, only when a point is routed into them.
//
// Points are stored only at nodes whose halfwidth is at or below the
// resolution, regardless of how many points accumulate there.
type Tree struct {
	center     geom.Point
	halfwidth  float64
	resolution float64
	children   [numQuadrants]*Tree
	points     []geom.Point
}

// New creates a tree node covering the square region [center ± halfwidth].
func New(center geom.Point, halfwidth float64, optFns ...func(o *Options)) (*Tree, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if halfwidth <= 0 {
		return nil, ErrInvalidHalfwidth
	}
	if opts.Resolution <= 0 {
		return nil, ErrInvalidResolution
	}

	return &Tree{
		center:     center,
		halfwidth:  halfwidth,
		resolution: opts.Resolution,
	}, nil
}

// Center returns the center of this node's region.
func (t *Tree) Center() geom.Point { return t.center }

// Halfwidth returns the halfwidth of this node's region.
func (t *Tree) Halfwidth() float64 { return t.halfwidth }

// MaxRadius returns halfwidth·√2, the radius of a circle centered at this
// node's center that covers its entire square region. It is a safe upper
// bound for radius searches when no tighter bound is known.
func (t *Tree) MaxRadius() float64 {
	return t.halfwidth * math.Sqrt2
}

// contains reports whether p lies within this node's closed square region.
func (t *Tree) contains(p geom.Point) bool {
	return p.X >= t.center.X-t.halfwidth && p.X <= t.center.X+t.halfwidth &&
		p.Y >= t.center.Y-t.halfwidth && p.Y <= t.center.Y+t.halfwidth
}

// quadrant selects the child slot for p: strict "<" routes lower/left,
// everything else upper/right. Points exactly on a splitting axis therefore
// land in the upper/right child.
func (t *Tree) quadrant(p geom.Point) int {
	if p.X < t.center.X {
		if p.Y < t.center.Y {
			return quadrantLL
		}
		return quadrantUL
	}
	if p.Y < t.center.Y {
		return quadrantLR
	}
	return quadrantUR
}

// childCenter returns the center of the given quadrant's region.
func (t *Tree) childCenter(q int) geom.Point {
	offset := t.halfwidth / 2
	c := t.center
	switch q {
	case quadrantLL:
		return geom.Point{X: c.X - offset, Y: c.Y - offset}
	case quadrantUL:
		return geom.Point{X: c.X - offset, Y: c.Y + offset}
	case quadrantLR:
		return geom.Point{X: c.X + offset, Y: c.Y - offset}
	default:
		return geom.Point{X: c.X + offset, Y: c.Y + offset}
	}
}

// Insert adds a point to the tree. The point must lie within this node's
// region; otherwise Insert returns *ErrOutOfBounds and stores nothing.
//
// Insert must not be called concurrently with itself or with any query.
func (t *Tree) Insert(p geom.Point) error {
	if !t.contains(p) {
		return &ErrOutOfBounds{Point: p, Center: t.center, Halfwidth: t.halfwidth}
	}

	if t.halfwidth <= t.resolution {
		t.points = append(t.points, p)
		return nil
	}

	q := t.quadrant(p)
	if t.children[q] == nil {
		t.children[q] = &Tree{
			center:     t.childCenter(q),
			halfwidth:  t.halfwidth / 2,
			resolution: t.resolution,
		}
	}

	return t.children[q].Insert(p)
}

// Points returns a lazy, restartable sequence over every point stored in the
// subtree: this node's local points first, then the lower-left, upper-left,
// lower-right and upper-right children, each recursively. A point inserted
// multiple times appears once per insertion.
func (t *Tree) Points() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		t.pushPoints(yield)
	}
}

func (t *Tree) pushPoints(yield func(geom.Point) bool) bool {
	for _, p := range t.points {
		if !yield(p) {
			return false
		}
	}
	for _, child := range t.children {
		if child != nil && !child.pushPoints(yield) {
			return false
		}
	}
	return true
}

// InBox returns the stored points whose coordinates fall within the closed
// axis-aligned rectangle [lo, hi]. Subtrees whose regions cannot intersect
// the rectangle are pruned.
func (t *Tree) InBox(lo, hi geom.Point) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		t.pushInBox(lo, hi, yield)
	}
}

func (t *Tree) pushInBox(lo, hi geom.Point, yield func(geom.Point) bool) bool {
	for _, p := range t.points {
		if p.X >= lo.X && p.Y >= lo.Y && p.X <= hi.X && p.Y <= hi.Y {
			if !yield(p) {
				return false
			}
		}
	}

	// Descend only into quadrants the rectangle can reach.
	if lo.X < t.center.X {
		if lo.Y < t.center.Y && t.children[quadrantLL] != nil {
			if !t.children[quadrantLL].pushInBox(lo, hi, yield) {
				return false
			}
		}
		if hi.Y > t.center.Y && t.children[quadrantUL] != nil {
			if !t.children[quadrantUL].pushInBox(lo, hi, yield) {
				return false
			}
		}
	}
	if hi.X > t.center.X {
		if lo.Y < t.center.Y && t.children[quadrantLR] != nil {
			if !t.children[quadrantLR].pushInBox(lo, hi, yield) {
				return false
			}
		}
		if hi.Y > t.center.Y && t.children[quadrantUR] != nil {
			if !t.children[quadrantUR].pushInBox(lo, hi, yield) {
				return false
			}
		}
	}

	return true
}

// InRadius returns the stored points within Euclidean distance radius of
// centroid. If the search circle cannot intersect this node's region the
// whole subtree is skipped; otherwise the circle's enclosing square is
// queried and results are filtered by exact squared distance (no square
// root is taken).
func (t *Tree) InRadius(centroid geom.Point, radius float64) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		if math.Abs(centroid.X-t.center.X) > radius+t.halfwidth {
			return
		}
		if math.Abs(centroid.Y-t.center.Y) > radius+t.halfwidth {
			return
		}

		rsq := radius * radius
		lo := geom.Point{X: centroid.X - radius, Y: centroid.Y - radius}
		hi := geom.Point{X: centroid.X + radius, Y: centroid.Y + radius}

		for p := range t.InBox(lo, hi) {
			if geom.SquaredDistance(p, centroid) <= rsq {
				if !yield(p) {
					return
				}
			}
		}
	}
}
