package quadgo

import (
	"context"

	"github.com/hupe1980/quadgo/geom"
	"github.com/hupe1980/quadgo/pointset"
	"github.com/hupe1980/quadgo/proximity"
	"github.com/hupe1980/quadgo/quadtree"
)

// ErrEmptyPointSet is returned by Build when the input contains no points.
var ErrEmptyPointSet = quadtree.ErrEmptyPointSet

// Index is a frozen proximity index over a fixed set of planar points.
//
// An Index is built once and never mutated afterwards, so all methods are
// safe for concurrent use.
type Index struct {
	tree     *quadtree.Tree
	searcher *proximity.Searcher
	solver   *proximity.Solver
	logger   *Logger
}

// Build indexes the given points.
func Build(points []geom.Point, optFns ...Option) (*Index, error) {
	opts := options{
		resolution: quadtree.DefaultOptions.Resolution,
		pad:        quadtree.DefaultOptions.Pad,
		logger:     NewLogger(nil),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	tree, err := quadtree.Build(points, func(o *quadtree.Options) {
		o.Resolution = opts.resolution
		o.Pad = opts.pad
	})
	opts.logger.LogBuild(context.Background(), len(points), err)
	if err != nil {
		return nil, err
	}

	searcher := proximity.New(tree, func(o *proximity.Options) {
		o.Concurrency = opts.concurrency
		o.Logger = opts.logger.Logger
	})

	return &Index{
		tree:     tree,
		searcher: searcher,
		solver:   proximity.NewSolver(searcher),
		logger:   opts.logger,
	}, nil
}

// Tree returns the underlying quadtree.
func (i *Index) Tree() *quadtree.Tree {
	return i.tree
}

// Len returns the number of unique indexed coordinates.
func (i *Index) Len() int {
	return i.searcher.UniqueLen()
}

// MaxRadius returns a radius that is guaranteed to capture every indexed
// point when searched from the tree's center.
func (i *Index) MaxRadius() float64 {
	return i.tree.MaxRadius()
}

// Near returns the deduplicated set of indexed points within radius of any
// of the centroids.
func (i *Index) Near(ctx context.Context, centroids []geom.Point, radius float64) (*pointset.Set, error) {
	set, err := i.searcher.Near(ctx, centroids, radius)
	if err != nil {
		i.logger.LogNear(ctx, len(centroids), radius, 0, err)
		return nil, err
	}
	i.logger.LogNear(ctx, len(centroids), radius, set.Len(), nil)
	return set, nil
}

// SolveRadius searches for a radius whose match count across the centroids
// hits targetCount, starting from initialRadius. See proximity.Solver for
// the convergence and best-effort semantics.
func (i *Index) SolveRadius(ctx context.Context, centroids []geom.Point, initialRadius float64, targetCount int) (proximity.Result, error) {
	res, err := i.solver.Solve(ctx, centroids, initialRadius, targetCount)
	i.logger.LogSolve(ctx, targetCount, res.Radius, res.Count, res.Converged, err)
	return res, err
}
