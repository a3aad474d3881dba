// Package proximity answers radius queries over a frozen quadtree and
// solves the inverse problem of finding a radius that yields a target
// match count.
package proximity

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/quadgo/geom"
	"github.com/hupe1980/quadgo/pointset"
	"github.com/hupe1980/quadgo/quadtree"
)

// ErrUnknownPoint is returned when a query surfaces a point that was not
// part of the tree when the Searcher was created. It indicates the tree was
// mutated after the freeze point, which the build-then-freeze contract
// forbids.
type ErrUnknownPoint struct {
	Point geom.Point
}

// Error returns the error message for an un-interned point.
func (e *ErrUnknownPoint) Error() string {
	return fmt.Sprintf("point %s is not part of the indexed set", e.Point)
}

// Options contains configuration options for the Searcher.
type Options struct {
	// Concurrency bounds how many centroids are queried in parallel.
	// Values <= 1 query sequentially.
	Concurrency int

	// Logger receives per-trial diagnostics from the Solver and warnings
	// on best-effort results. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions contains the default configuration options for the Searcher.
var DefaultOptions = Options{
	Concurrency: 0, // resolved to GOMAXPROCS
}

// Searcher aggregates radius queries across multiple centroids into a
// single deduplicated result set.
//
// A Searcher freezes the tree it is given: it interns every stored
// coordinate once at construction time, after which all queries are
// read-only and safe for concurrent use.
type Searcher struct {
	tree        *quadtree.Tree
	ids         *pointset.Interner
	concurrency int
	logger      *slog.Logger
}

// New creates a Searcher over the given tree. The tree must be fully built;
// inserting into it afterwards breaks the Searcher.
func New(tree *quadtree.Tree, optFns ...func(o *Options)) *Searcher {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.GOMAXPROCS(0)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	ids := pointset.NewInterner()
	for p := range tree.Points() {
		ids.Intern(p)
	}

	return &Searcher{
		tree:        tree,
		ids:         ids,
		concurrency: opts.Concurrency,
		logger:      opts.Logger,
	}
}

// Tree returns the underlying tree.
func (s *Searcher) Tree() *quadtree.Tree { return s.tree }

// UniqueLen returns the number of unique coordinates stored in the tree,
// i.e. the maximum achievable match count.
func (s *Searcher) UniqueLen() int { return s.ids.Len() }

// Universe returns the set of all unique stored points.
func (s *Searcher) Universe() *pointset.Set { return pointset.Universe(s.ids) }

// Near returns the union of radius queries around every centroid,
// deduplicated by exact coordinate equality: a point near several centroids
// appears once. An empty centroid list yields an empty set; a zero radius
// yields only points coincident with a centroid.
func (s *Searcher) Near(ctx context.Context, centroids []geom.Point, radius float64) (*pointset.Set, error) {
	if len(centroids) == 0 {
		return pointset.NewSet(s.ids), nil
	}

	if s.concurrency <= 1 || len(centroids) == 1 {
		sets := make([]*pointset.Set, len(centroids))
		for i, c := range centroids {
			set, err := s.nearOne(ctx, c, radius)
			if err != nil {
				return nil, err
			}
			sets[i] = set
		}
		return pointset.Union(sets...), nil
	}

	// Queries never mutate the tree, so centroids can be fanned out
	// without synchronization; each goroutine fills its own set.
	sets := make([]*pointset.Set, len(centroids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, c := range centroids {
		g.Go(func() error {
			set, err := s.nearOne(ctx, c, radius)
			if err != nil {
				return err
			}
			sets[i] = set
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pointset.Union(sets...), nil
}

func (s *Searcher) nearOne(ctx context.Context, centroid geom.Point, radius float64) (*pointset.Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	set := pointset.NewSet(s.ids)
	for p := range s.tree.InRadius(centroid, radius) {
		id, ok := s.ids.ID(p)
		if !ok {
			return nil, &ErrUnknownPoint{Point: p}
		}
		set.AddID(id)
	}

	return set, nil
}
