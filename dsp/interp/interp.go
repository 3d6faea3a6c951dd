package interp

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	gonuminterp "gonum.org/v1/gonum/interp"
)

// ErrTooFewPoints is returned when fewer than two knots are supplied.
var ErrTooFewPoints = errors.New("interp: at least two points required")

var (
	errMismatchedLength = errors.New("interp: xs and ys must have same length")
	errNotIncreasing    = errors.New("interp: xs must be strictly increasing")
	errGridSize         = errors.New("interp: grid needs at least two points")
)

// Linear is a piecewise-linear interpolant clamped to zero outside the
// knot domain.
type Linear struct {
	pl     gonuminterp.PiecewiseLinear
	lo, hi float64
}

// NewLinear fits an interpolant through (xs[i], ys[i]). xs must be strictly
// increasing.
func NewLinear(xs, ys []float64) (*Linear, error) {
	if len(xs) != len(ys) {
		return nil, errMismatchedLength
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: index %d", errNotIncreasing, i)
		}
	}

	l := &Linear{lo: xs[0], hi: xs[len(xs)-1]}
	if err := l.pl.Fit(xs, ys); err != nil {
		return nil, err
	}
	return l, nil
}

// At evaluates the interpolant at x. Values outside [xs[0], xs[n-1]] are 0.
func (l *Linear) At(x float64) float64 {
	if x < l.lo || x > l.hi {
		return 0
	}
	return l.pl.Predict(x)
}

// Sample evaluates the interpolant on n evenly spaced points spanning
// [lo, hi] inclusive. It returns the grid and the sampled values.
func (l *Linear) Sample(lo, hi float64, n int) (grid, values []float64, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("%w: got %d", errGridSize, n)
	}
	grid = floats.Span(make([]float64, n), lo, hi)
	values = make([]float64, n)
	for i, x := range grid {
		values[i] = l.At(x)
	}
	return grid, values, nil
}
