// Package pointset provides exact-coordinate deduplication for query
// results.
//
// Unique coordinates are interned to dense uint32 IDs once, at index build
// time; result sets are then Roaring Bitmaps over those IDs, which makes the
// set union across many query centroids cheap and keeps deduplication exact
// (two points dedup iff their coordinates are bit-identical).
package pointset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/quadgo/geom"
)

// Interner assigns dense uint32 IDs to unique point coordinates.
//
// An Interner is mutable during the build phase only. Once queries start it
// must be treated as frozen; lookups are then safe for concurrent use.
type Interner struct {
	ids    map[geom.Point]uint32
	points []geom.Point
}

// NewInterner creates an empty Interner.
func NewInterner() *Interner {
	return &Interner{
		ids: make(map[geom.Point]uint32),
	}
}

// Intern returns the ID for p, assigning the next free ID if p has not been
// seen before. Points with bit-identical coordinates share one ID.
func (in *Interner) Intern(p geom.Point) uint32 {
	if id, ok := in.ids[p]; ok {
		return id
	}
	id := uint32(len(in.points))
	in.ids[p] = id
	in.points = append(in.points, p)
	return id
}

// ID returns the ID assigned to p, if any.
func (in *Interner) ID(p geom.Point) (uint32, bool) {
	id, ok := in.ids[p]
	return id, ok
}

// At returns the point with the given ID. The ID must have been returned by
// Intern.
func (in *Interner) At(id uint32) geom.Point {
	return in.points[id]
}

// Len returns the number of unique coordinates interned so far.
func (in *Interner) Len() int {
	return len(in.points)
}

// Set is a deduplicated, unordered set of interned points.
type Set struct {
	interner *Interner
	bitmap   *roaring.Bitmap
}

// NewSet creates an empty set over the given interner.
func NewSet(interner *Interner) *Set {
	return &Set{
		interner: interner,
		bitmap:   roaring.New(),
	}
}

// newSet wraps an existing bitmap.
func newSet(interner *Interner, bitmap *roaring.Bitmap) *Set {
	return &Set{interner: interner, bitmap: bitmap}
}

// Universe returns the set of every point the interner knows about.
func Universe(interner *Interner) *Set {
	bm := roaring.New()
	bm.AddRange(0, uint64(interner.Len()))
	return newSet(interner, bm)
}

// Union returns the union of the given sets, which must share an interner.
// An empty input yields nil.
func Union(sets ...*Set) *Set {
	if len(sets) == 0 {
		return nil
	}
	bitmaps := make([]*roaring.Bitmap, len(sets))
	for i, s := range sets {
		bitmaps[i] = s.bitmap
	}
	return newSet(sets[0].interner, roaring.FastOr(bitmaps...))
}

// AddID adds an interned ID to the set.
func (s *Set) AddID(id uint32) {
	s.bitmap.Add(id)
}

// Len returns the number of points in the set.
func (s *Set) Len() int {
	return int(s.bitmap.GetCardinality())
}

// Contains reports whether the set holds a point with exactly the given
// coordinates.
func (s *Set) Contains(p geom.Point) bool {
	id, ok := s.interner.ID(p)
	return ok && s.bitmap.Contains(id)
}

// All returns a sequence over the points in the set, in ID order.
func (s *Set) All() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		it := s.bitmap.Iterator()
		for it.HasNext() {
			if !yield(s.interner.At(it.Next())) {
				return
			}
		}
	}
}

// Points materializes the set as a slice, in ID order.
func (s *Set) Points() []geom.Point {
	out := make([]geom.Point, 0, s.Len())
	for p := range s.All() {
		out = append(out, p)
	}
	return out
}
