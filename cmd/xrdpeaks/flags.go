package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-xrd/internal/config"
)

type floatFlag struct {
	name  string
	usage string
	field func(*config.Config) *float64
}

type intFlag struct {
	name  string
	usage string
	field func(*config.Config) *int
}

type stringFlag struct {
	name  string
	usage string
	field func(*config.Config) *string
}

var floatFlags = []floatFlag{
	{"min-angle", "lower 2θ bound of the peak window in degrees", func(c *config.Config) *float64 { return &c.MinAngle }},
	{"max-angle", "upper 2θ bound of the peak window in degrees", func(c *config.Config) *float64 { return &c.MaxAngle }},
	{"height-min", "minimum peak intensity", func(c *config.Config) *float64 { return &c.HeightMin }},
	{"prominence-min", "minimum peak prominence", func(c *config.Config) *float64 { return &c.ProminenceMin }},
	{"min-spacing", "minimum 2θ distance between peaks in degrees", func(c *config.Config) *float64 { return &c.MinSpacing }},
	{"intensity-min", "exclusive lower bound of the intensity band", func(c *config.Config) *float64 { return &c.IntensityMin }},
	{"intensity-max", "inclusive upper bound of the intensity band", func(c *config.Config) *float64 { return &c.IntensityMax }},
	{"fwhm-window", "FWHM search half-width in degrees", func(c *config.Config) *float64 { return &c.FWHMWindow }},
	{"wavelength", "X-ray wavelength in ångström", func(c *config.Config) *float64 { return &c.Wavelength }},
}

var intFlags = []intFlag{
	{"max-count", "maximum number of ranked peaks (0 = all)", func(c *config.Config) *int { return &c.MaxCount }},
	{"fwhm-grid-points", "FWHM resampling grid size", func(c *config.Config) *int { return &c.FWHMGridPoints }},
	{"workers", "files analysed concurrently", func(c *config.Config) *int { return &c.Workers }},
}

var stringFlags = []stringFlag{
	{"fwhm-mode", fwhmModeUsage(), func(c *config.Config) *string { return &c.FWHMMode }},
	{"angle-column", "CSV column holding 2θ", func(c *config.Config) *string { return &c.AngleColumn }},
	{"intensity-column", "CSV column holding intensity", func(c *config.Config) *string { return &c.IntensityColumn }},
}

// registerFlags declares the tuning flags. Defaults are shown from the
// built-in config; only flags the user sets override loaded values.
func registerFlags(cmd *cobra.Command) {
	d := config.New()
	fs := cmd.Flags()
	for _, f := range floatFlags {
		fs.Float64(f.name, *f.field(d), f.usage)
	}
	for _, f := range intFlags {
		fs.Int(f.name, *f.field(d), f.usage)
	}
	for _, f := range stringFlags {
		fs.String(f.name, *f.field(d), f.usage)
	}
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	for _, f := range floatFlags {
		if fs.Lookup(f.name) == nil || !fs.Changed(f.name) {
			continue
		}
		v, err := fs.GetFloat64(f.name)
		if err != nil {
			return err
		}
		*f.field(cfg) = v
	}
	for _, f := range intFlags {
		if fs.Lookup(f.name) == nil || !fs.Changed(f.name) {
			continue
		}
		v, err := fs.GetInt(f.name)
		if err != nil {
			return err
		}
		*f.field(cfg) = v
	}
	for _, f := range stringFlags {
		if fs.Lookup(f.name) == nil || !fs.Changed(f.name) {
			continue
		}
		v, err := fs.GetString(f.name)
		if err != nil {
			return err
		}
		*f.field(cfg) = v
	}
	return nil
}
