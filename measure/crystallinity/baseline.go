package crystallinity

import "gonum.org/v1/gonum/floats"

// Baseline estimates the amorphous background level of a scan.
type Baseline interface {
	Level(angles, intensities []float64) float64
}

// BaselineFunc adapts a function to the Baseline interface.
type BaselineFunc func(angles, intensities []float64) float64

// Level implements Baseline.
func (f BaselineFunc) Level(angles, intensities []float64) float64 {
	return f(angles, intensities)
}

// MinimumBaseline uses the global intensity minimum as the baseline.
type MinimumBaseline struct{}

// Level implements Baseline.
func (MinimumBaseline) Level(_, intensities []float64) float64 {
	return floats.Min(intensities)
}
