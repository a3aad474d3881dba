package proximity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hupe1980/quadgo/geom"
	"github.com/hupe1980/quadgo/pointset"
)

// minBracketWidth is the radius bracket width below which the solver stops
// refining and returns its best effort.
const minBracketWidth = 1e-6

// ErrBracketViolation is returned when an interpolated trial radius falls
// outside the open bracket. The bracketing discipline makes this impossible
// for well-formed inputs; it indicates a modeling failure and is never
// swallowed.
type ErrBracketViolation struct {
	Low   float64
	High  float64
	Trial float64
}

// Error returns the error message for a trial radius outside the bracket.
func (e *ErrBracketViolation) Error() string {
	return fmt.Sprintf("trial radius %g outside open bracket (%g, %g)", e.Trial, e.Low, e.High)
}

// Result is the outcome of a radius solve.
type Result struct {
	// Radius is the solved (or best-effort) search radius.
	Radius float64

	// Count is the number of unique points within Radius of the centroids.
	Count int

	// Matches is the deduplicated set of matched points at Radius.
	Matches *pointset.Set

	// Converged reports whether Count equals the requested target. When
	// false, no radius yields the exact target and Radius/Count describe
	// the high side of the final bracket.
	Converged bool
}

// Solver searches for a radius whose match count hits a target, by
// repeatedly querying a Searcher. Trial radii are picked by quadratic
// interpolation between the bracket endpoints (count ~ radius², matching 2D
// area growth), narrowing the bracket bisection-style on every miss.
type Solver struct {
	searcher *Searcher
	logger   *slog.Logger
}

// NewSolver creates a Solver over the given Searcher.
func NewSolver(searcher *Searcher) *Solver {
	return &Solver{
		searcher: searcher,
		logger:   searcher.logger,
	}
}

// Solve finds a radius for which targetCount points lie within radius of
// one of the centroids, starting from initialRadius.
//
// Solve always terminates: every trial is strictly interior to the current
// bracket, so the bracket shrinks each iteration until either the count
// matches exactly or the width falls below 1e-6. In the latter case the
// result is non-converged, a warning is logged, and the high bracket side
// is returned; this is a best-effort answer, not an error.
func (s *Solver) Solve(ctx context.Context, centroids []geom.Point, initialRadius float64, targetCount int) (Result, error) {
	// A non-positive target is satisfied trivially at radius zero.
	if targetCount <= 0 {
		matches, err := s.searcher.Near(ctx, centroids, 0)
		if err != nil {
			return Result{}, err
		}
		return Result{Radius: 0, Count: matches.Len(), Matches: matches, Converged: true}, nil
	}

	lowRadius := initialRadius
	lowSet, err := s.searcher.Near(ctx, centroids, lowRadius)
	if err != nil {
		return Result{}, err
	}
	lowCount := lowSet.Len()
	if lowCount == targetCount {
		return Result{Radius: lowRadius, Count: lowCount, Matches: lowSet, Converged: true}, nil
	}

	// The covering radius captures every stored point, so the unique
	// population is the ceiling on any achievable count.
	highRadius := s.searcher.Tree().MaxRadius()
	highSet := s.searcher.Universe()
	highCount := highSet.Len()
	if highCount <= targetCount {
		return Result{Radius: highRadius, Count: highCount, Matches: highSet, Converged: true}, nil
	}

	if lowCount > targetCount {
		// The initial guess already overshoots; it becomes the high side
		// and the bracket restarts from zero.
		highRadius, highCount, highSet = lowRadius, lowCount, lowSet
		lowRadius, lowCount = 0, 0
	}

	for highRadius-lowRadius > minBracketWidth {
		trial, err := quadraticInterpolate(lowRadius, float64(lowCount), highRadius, float64(highCount), float64(targetCount))
		if err != nil {
			return Result{}, err
		}
		// Negated so that a NaN trial also fails the check.
		if !(trial > lowRadius && trial < highRadius) {
			return Result{}, &ErrBracketViolation{Low: lowRadius, High: highRadius, Trial: trial}
		}

		s.logger.Debug("trying radius", "radius", trial, "target", targetCount)

		trialSet, err := s.searcher.Near(ctx, centroids, trial)
		if err != nil {
			return Result{}, err
		}
		trialCount := trialSet.Len()

		// Counts are integers, so "within 0.5 of the target" is equality.
		if trialCount == targetCount {
			return Result{Radius: trial, Count: trialCount, Matches: trialSet, Converged: true}, nil
		}

		if trialCount < targetCount {
			lowRadius, lowCount = trial, trialCount
		} else {
			highRadius, highCount, highSet = trial, trialCount, trialSet
		}
	}

	s.logger.Warn("couldn't get the exact number of points",
		"radius", highRadius,
		"count", highCount,
		"target", targetCount,
	)

	return Result{Radius: highRadius, Count: highCount, Matches: highSet, Converged: false}, nil
}
