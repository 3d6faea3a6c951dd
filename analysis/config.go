package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-xrd/measure/bragg"
	"github.com/cwbudde/algo-xrd/measure/fwhm"
	"github.com/cwbudde/algo-xrd/scan"
)

// ErrInvalidConfig is returned by Analyze for configurations that cannot be
// run.
var ErrInvalidConfig = errors.New("analysis: invalid config")

// FWHMMode selects which peaks receive an FWHM annotation.
type FWHMMode string

const (
	FWHMHighest FWHMMode = "highest"
	FWHMAll     FWHMMode = "all"
	FWHMNone    FWHMMode = "none"
)

// Config holds every tunable of the pipeline.
type Config struct {
	MinAngle float64 // window bounds in 2θ degrees
	MaxAngle float64

	HeightMin     float64
	ProminenceMin float64
	MinSpacing    float64 // degrees

	IntensityMin float64 // exclusive
	IntensityMax float64 // inclusive
	MaxCount     int     // <= 0 keeps every peak

	FWHMWindow     float64 // search half-width in degrees
	FWHMGridPoints int
	FWHMMode       FWHMMode

	Wavelength float64 // ångström
}

// DefaultConfig returns settings for Cu-Kα1 powder scans over 20 to 80°.
func DefaultConfig() Config {
	return Config{
		MinAngle:       20,
		MaxAngle:       80,
		HeightMin:      200,
		ProminenceMin:  50,
		MinSpacing:     0,
		IntensityMin:   200,
		IntensityMax:   20000,
		MaxCount:       11,
		FWHMWindow:     fwhm.DefaultWindow,
		FWHMGridPoints: fwhm.DefaultGridPoints,
		FWHMMode:       FWHMHighest,
		Wavelength:     bragg.CuKAlpha1,
	}
}

// Validate reports the first problem with c, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.MinAngle) || math.IsNaN(c.MaxAngle):
		return fmt.Errorf("%w: %w: window bounds must be numbers", ErrInvalidConfig, scan.ErrInvalidRange)
	case c.MinAngle > c.MaxAngle:
		return fmt.Errorf("%w: %w: min_angle %v > max_angle %v", ErrInvalidConfig, scan.ErrInvalidRange, c.MinAngle, c.MaxAngle)
	case c.ProminenceMin < 0:
		return fmt.Errorf("%w: prominence_min must be >= 0: %v", ErrInvalidConfig, c.ProminenceMin)
	case c.MinSpacing < 0:
		return fmt.Errorf("%w: min_spacing must be >= 0: %v", ErrInvalidConfig, c.MinSpacing)
	case c.IntensityMin > c.IntensityMax:
		return fmt.Errorf("%w: intensity_min %v > intensity_max %v", ErrInvalidConfig, c.IntensityMin, c.IntensityMax)
	case !(c.FWHMWindow > 0):
		return fmt.Errorf("%w: fwhm_window_degrees must be > 0: %v", ErrInvalidConfig, c.FWHMWindow)
	case c.FWHMGridPoints < 2:
		return fmt.Errorf("%w: fwhm_grid_points must be >= 2: %d", ErrInvalidConfig, c.FWHMGridPoints)
	case !(c.Wavelength > 0):
		return fmt.Errorf("%w: wavelength must be > 0: %v", ErrInvalidConfig, c.Wavelength)
	}

	switch c.FWHMMode {
	case FWHMHighest, FWHMAll, FWHMNone:
	default:
		return fmt.Errorf("%w: unknown fwhm_mode %q", ErrInvalidConfig, c.FWHMMode)
	}
	return nil
}
