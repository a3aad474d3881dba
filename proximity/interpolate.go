package proximity

import (
	"errors"
	"fmt"
	"math"
)

// ErrInterpolationDomain is returned when the interpolation preconditions
// (x2 > x1 >= 0, y2 >= y1 >= 0) do not hold. Given the solver's bracketing
// discipline this never happens; it is a guarded internal contract, not a
// user-facing condition.
var ErrInterpolationDomain = errors.New("interpolation preconditions violated")

// quadraticInterpolate computes the x at which a quadratic y = a·x² + b·x
// fitted exactly through (x1,y1) and (x2,y2) reaches targetY.
//
// The quadratic model reflects 2D area scaling: the match count near a set
// of centroids is expected to grow roughly with the square of the radius,
// though locally the growth may be closer to linear.
//
// When x1 == 0 the general formula would divide by zero, so the fit
// degrades to the pure through-origin power law x = x2·√(targetY/y2).
// Endpoints collinear through the origin (x1·y2 == x2·y1) leave no
// quadratic term; there the exact linear solution x = targetY/b is used,
// since the general inversion would compute 0/0.
func quadraticInterpolate(x1, y1, x2, y2, targetY float64) (float64, error) {
	if x2 <= x1 || x1 < 0 || y2 < y1 || y1 < 0 {
		return 0, fmt.Errorf("%w: x1=%g y1=%g x2=%g y2=%g", ErrInterpolationDomain, x1, y1, x2, y2)
	}

	if x1 == 0 {
		return x2 * math.Sqrt(targetY/y2), nil
	}

	d := x1 * x2 * (x2 - x1)
	a := (x1*y2 - x2*y1) / d
	b := (x2*x2*y1 - x1*x1*y2) / d

	if a == 0 {
		if b == 0 {
			// Both counts are zero; no finite radius reaches a positive target.
			return 0, fmt.Errorf("%w: x1=%g y1=%g x2=%g y2=%g", ErrInterpolationDomain, x1, y1, x2, y2)
		}
		return targetY / b, nil
	}

	return (math.Sqrt(4*a*targetY+b*b) - b) / (2 * a), nil
}
