package fwhm

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-xrd/dsp/interp"
	"github.com/cwbudde/algo-xrd/measure/peak"
	"github.com/cwbudde/algo-xrd/scan"
)

// ErrNoCrossing is returned when no grid point reaches half maximum.
var ErrNoCrossing = errors.New("fwhm: half maximum not reached within search window")

const (
	// DefaultWindow is the half-width of the search window in degrees.
	DefaultWindow = 1.0
	// DefaultGridPoints is the number of points in the resampling grid.
	DefaultGridPoints = 1000
)

// Result holds the half-maximum crossings of a peak.
type Result struct {
	Peak    peak.Peak
	HalfMax float64
	Left    float64 // 2θ of the first grid point at or above HalfMax
	Right   float64 // 2θ of the last grid point at or above HalfMax
	Width   float64 // Right - Left in degrees
}

// Option configures FWHM estimation.
type Option func(*config)

type config struct {
	window float64
	points int
}

// WithWindow sets the search half-width in degrees around the peak.
func WithWindow(deg float64) Option {
	return func(c *config) {
		if deg > 0 {
			c.window = deg
		}
	}
}

// WithGridPoints sets the resampling grid size. Values below 2 are ignored.
func WithGridPoints(n int) Option {
	return func(c *config) {
		if n >= 2 {
			c.points = n
		}
	}
}

// Estimate computes the FWHM of p over s.
func Estimate(s scan.Scan, p peak.Peak, opts ...Option) (Result, error) {
	cfg := config{window: DefaultWindow, points: DefaultGridPoints}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	lin, err := interp.NewLinear(s.Angles(), s.Intensities())
	if err != nil {
		return Result{}, fmt.Errorf("fwhm: %w", err)
	}

	grid, values, err := lin.Sample(p.Angle-cfg.window, p.Angle+cfg.window, cfg.points)
	if err != nil {
		return Result{}, fmt.Errorf("fwhm: %w", err)
	}

	half := p.Intensity / 2
	left, right := -1, -1
	for i, v := range values {
		if v < half {
			continue
		}
		if left < 0 {
			left = i
		}
		right = i
	}
	if left < 0 {
		return Result{}, fmt.Errorf("%w: peak at %v, half max %v", ErrNoCrossing, p.Angle, half)
	}

	return Result{
		Peak:    p,
		HalfMax: half,
		Left:    grid[left],
		Right:   grid[right],
		Width:   grid[right] - grid[left],
	}, nil
}
