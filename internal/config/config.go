// Package config loads command-line tool settings.
//
// Values are layered, lowest precedence first: built-in defaults, an
// optional YAML file, then XRD_-prefixed environment variables. Flags
// applied by the caller after Load take precedence over all of them.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/cwbudde/algo-xrd/analysis"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config holds the tool settings. Keys match the koanf tags.
type Config struct {
	MinAngle float64 `koanf:"min_angle"`
	MaxAngle float64 `koanf:"max_angle"`

	HeightMin     float64 `koanf:"height_min"`
	ProminenceMin float64 `koanf:"prominence_min"`
	MinSpacing    float64 `koanf:"min_spacing"`

	IntensityMin float64 `koanf:"intensity_min"`
	IntensityMax float64 `koanf:"intensity_max"`
	MaxCount     int     `koanf:"max_count"`

	FWHMWindow     float64 `koanf:"fwhm_window_degrees"`
	FWHMGridPoints int     `koanf:"fwhm_grid_points"`
	FWHMMode       string  `koanf:"fwhm_mode"`

	Wavelength float64 `koanf:"wavelength"`

	// AngleColumn and IntensityColumn override the CSV header aliases.
	AngleColumn     string `koanf:"angle_column"`
	IntensityColumn string `koanf:"intensity_column"`

	// Workers bounds how many files are analysed at once.
	Workers int `koanf:"workers"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// New returns a Config holding the defaults.
func New() *Config {
	d := analysis.DefaultConfig()
	return &Config{
		MinAngle:       d.MinAngle,
		MaxAngle:       d.MaxAngle,
		HeightMin:      d.HeightMin,
		ProminenceMin:  d.ProminenceMin,
		MinSpacing:     d.MinSpacing,
		IntensityMin:   d.IntensityMin,
		IntensityMax:   d.IntensityMax,
		MaxCount:       d.MaxCount,
		FWHMWindow:     d.FWHMWindow,
		FWHMGridPoints: d.FWHMGridPoints,
		FWHMMode:       string(d.FWHMMode),
		Wavelength:     d.Wavelength,
		Workers:        runtime.NumCPU(),
		LogLevel:       "info",
	}
}

// Analysis converts c into pipeline settings.
func (c *Config) Analysis() analysis.Config {
	return analysis.Config{
		MinAngle:       c.MinAngle,
		MaxAngle:       c.MaxAngle,
		HeightMin:      c.HeightMin,
		ProminenceMin:  c.ProminenceMin,
		MinSpacing:     c.MinSpacing,
		IntensityMin:   c.IntensityMin,
		IntensityMax:   c.IntensityMax,
		MaxCount:       c.MaxCount,
		FWHMWindow:     c.FWHMWindow,
		FWHMGridPoints: c.FWHMGridPoints,
		FWHMMode:       analysis.FWHMMode(strings.ToLower(c.FWHMMode)),
		Wavelength:     c.Wavelength,
	}
}

// Validate checks c, including the pipeline settings.
func (c *Config) Validate() error {
	if err := c.Analysis().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1: %d", ErrInvalidConfig, c.Workers)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}
