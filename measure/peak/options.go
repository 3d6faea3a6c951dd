package peak

import "math"

// Option configures peak detection.
type Option func(*config)

type config struct {
	heightMin     float64
	prominenceMin float64
	minSpacing    float64
	intensityMin  float64
	intensityMax  float64
	maxCount      int
}

func defaultConfig() config {
	return config{
		heightMin:    math.Inf(-1),
		intensityMin: math.Inf(-1),
		intensityMax: math.Inf(1),
	}
}

// WithHeight discards candidates with intensity below h.
func WithHeight(h float64) Option {
	return func(c *config) {
		if !math.IsNaN(h) {
			c.heightMin = h
		}
	}
}

// WithProminence discards candidates with prominence below p.
func WithProminence(p float64) Option {
	return func(c *config) {
		if p >= 0 {
			c.prominenceMin = p
		}
	}
}

// WithMinSpacing sets the minimum 2θ distance in degrees between retained
// peaks. It is measured in angle, not samples.
func WithMinSpacing(deg float64) Option {
	return func(c *config) {
		if deg >= 0 {
			c.minSpacing = deg
		}
	}
}

// WithIntensityBand keeps peaks with lo < intensity <= hi.
func WithIntensityBand(lo, hi float64) Option {
	return func(c *config) {
		if math.IsNaN(lo) || math.IsNaN(hi) {
			return
		}
		c.intensityMin = lo
		c.intensityMax = hi
	}
}

// WithMaxCount keeps at most n peaks. n <= 0 means no limit.
func WithMaxCount(n int) Option {
	return func(c *config) {
		c.maxCount = n
	}
}
