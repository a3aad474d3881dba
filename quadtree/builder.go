package quadtree

import (
	"errors"

	"github.com/hupe1980/quadgo/geom"
)

// ErrEmptyPointSet is returned by Build when the input contains no points;
// a bounding square is undefined for an empty set.
var ErrEmptyPointSet = errors.New("cannot build a tree from an empty point set")

// Build constructs a tree sized to cover all given points and inserts them
// in input order.
//
// The root region is the bounding square of the input, padded by
// Options.Pad so that points on the boundary remain inside the region under
// floating-point rounding. Every point in the input is therefore guaranteed
// admissible.
func Build(points []geom.Point, optFns ...func(o *Options)) (*Tree, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPointSet
	}

	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	xmin, xmax := points[0].X, points[0].X
	ymin, ymax := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		xmin = min(xmin, p.X)
		xmax = max(xmax, p.X)
		ymin = min(ymin, p.Y)
		ymax = max(ymax, p.Y)
	}

	center := geom.Point{X: (xmax + xmin) / 2, Y: (ymax + ymin) / 2}
	halfwidth := max(xmax-xmin, ymax-ymin)/2 + opts.Pad

	tree, err := New(center, halfwidth, optFns...)
	if err != nil {
		return nil, err
	}

	for _, p := range points {
		if err := tree.Insert(p); err != nil {
			return nil, err
		}
	}

	return tree, nil
}
