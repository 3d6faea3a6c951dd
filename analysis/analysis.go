package analysis

import (
	"github.com/cwbudde/algo-xrd/measure/bragg"
	"github.com/cwbudde/algo-xrd/measure/crystallinity"
	"github.com/cwbudde/algo-xrd/measure/fwhm"
	"github.com/cwbudde/algo-xrd/measure/peak"
	"github.com/cwbudde/algo-xrd/scan"
)

// PeakReport is a ranked peak with its optional derived values. A nil
// pointer means the value was not computed; the matching error field says
// why when computation was attempted.
type PeakReport struct {
	peak.Peak

	FWHM    *fwhm.Result
	FWHMErr error

	DSpacing    *float64 // same unit as Config.Wavelength
	DSpacingErr error

	// CrystalliteSize is the Scherrer estimate, set when both FWHM and a
	// valid angle are available.
	CrystalliteSize *float64
}

// Report is the outcome of one pipeline run.
type Report struct {
	Window  scan.Scan
	Peaks   []PeakReport
	PeakErr error

	Crystallinity    *crystallinity.Result
	CrystallinityErr error
}

// Analyze runs the pipeline over s. It only fails for an invalid cfg;
// stage failures are reported on the Report.
func Analyze(s scan.Scan, cfg Config, opts ...crystallinity.Option) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	var rep Report

	w, err := s.Window(cfg.MinAngle, cfg.MaxAngle)
	if err != nil {
		return Report{}, err
	}
	rep.Window = w

	peaks, err := peak.Find(w,
		peak.WithHeight(cfg.HeightMin),
		peak.WithProminence(cfg.ProminenceMin),
		peak.WithMinSpacing(cfg.MinSpacing),
		peak.WithIntensityBand(cfg.IntensityMin, cfg.IntensityMax),
		peak.WithMaxCount(cfg.MaxCount),
	)
	if err != nil {
		rep.PeakErr = err
	}

	rep.Peaks = make([]PeakReport, len(peaks))
	for i, p := range peaks {
		rep.Peaks[i] = annotate(w, p, cfg)
	}

	res, err := crystallinity.Estimate(s, opts...)
	if err != nil {
		rep.CrystallinityErr = err
	} else {
		rep.Crystallinity = &res
	}

	return rep, nil
}

func annotate(w scan.Scan, p peak.Peak, cfg Config) PeakReport {
	pr := PeakReport{Peak: p}

	if d, err := bragg.DSpacing(p.Angle, cfg.Wavelength); err != nil {
		pr.DSpacingErr = err
	} else {
		pr.DSpacing = &d
	}

	if !wantsFWHM(cfg.FWHMMode, p.Rank) {
		return pr
	}
	res, err := fwhm.Estimate(w, p,
		fwhm.WithWindow(cfg.FWHMWindow),
		fwhm.WithGridPoints(cfg.FWHMGridPoints),
	)
	if err != nil {
		pr.FWHMErr = err
		return pr
	}
	pr.FWHM = &res

	if size, err := bragg.CrystalliteSize(p.Angle, res.Width, cfg.Wavelength); err == nil {
		pr.CrystalliteSize = &size
	}
	return pr
}

func wantsFWHM(mode FWHMMode, rank int) bool {
	switch mode {
	case FWHMAll:
		return true
	case FWHMHighest:
		return rank == 1
	default:
		return false
	}
}
