package crystallinity

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-xrd/scan"
	"gonum.org/v1/gonum/floats"
)

// Errors returned by crystallinity estimation.
var (
	ErrDegenerateArea = errors.New("crystallinity: total integrated area is zero")
	ErrTooShort       = errors.New("crystallinity: at least two samples required")
)

// Result holds the integrated areas and crystalline percentage.
type Result struct {
	Baseline        float64
	TotalArea       float64
	CrystallineArea float64
	Percent         float64 // CrystallineArea / TotalArea * 100
}

// Option configures crystallinity estimation.
type Option func(*config)

type config struct {
	baseline Baseline
}

// WithBaseline replaces the default minimum baseline.
func WithBaseline(b Baseline) Option {
	return func(c *config) {
		if b != nil {
			c.baseline = b
		}
	}
}

// Estimate computes the crystallinity of s over its full domain.
func Estimate(s scan.Scan, opts ...Option) (Result, error) {
	cfg := config{baseline: MinimumBaseline{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if s.Len() < 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrTooShort, s.Len())
	}

	x, y := s.Angles(), s.Intensities()
	baseline := cfg.baseline.Level(x, y)

	corrected := make([]float64, len(y))
	copy(corrected, y)
	floats.AddConst(-baseline, corrected)

	w := TrapezoidWeights(x)
	total := weightedSum(w, y)
	if total == 0 {
		return Result{}, ErrDegenerateArea
	}
	crystalline := weightedSum(w, corrected)

	return Result{
		Baseline:        baseline,
		TotalArea:       total,
		CrystallineArea: crystalline,
		Percent:         crystalline / total * 100,
	}, nil
}

// TrapezoidWeights returns quadrature weights w such that sum(w[i]*f[i])
// is the trapezoidal integral of f over the (possibly non-uniform)
// abscissae x. len(x) must be at least 2.
func TrapezoidWeights(x []float64) []float64 {
	n := len(x)
	w := make([]float64, n)
	w[0] = (x[1] - x[0]) / 2
	w[n-1] = (x[n-1] - x[n-2]) / 2
	for i := 1; i < n-1; i++ {
		w[i] = (x[i+1] - x[i-1]) / 2
	}
	return w
}

func weightedSum(w, f []float64) float64 {
	prod := make([]float64, len(f))
	vecmath.MulBlock(prod, w, f)
	return floats.Sum(prod)
}
