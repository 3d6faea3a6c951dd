package peak

import (
	"cmp"
	"errors"
	"math"
	"slices"

	"github.com/cwbudde/algo-xrd/scan"
)

// ErrEmptyWindow is returned when the scan to search holds no samples.
var ErrEmptyWindow = errors.New("peak: window contains no samples")

// Peak is a ranked diffraction peak.
type Peak struct {
	Rank       int     // 1-based, intensity-descending
	Angle      float64 // 2θ in degrees
	Intensity  float64
	Prominence float64
}

// Find detects, filters and ranks peaks in s. It returns an empty slice,
// not an error, when no candidate survives filtering.
func Find(s scan.Scan, opts ...Option) ([]Peak, error) {
	if s.Empty() {
		return nil, ErrEmptyWindow
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	all := Candidates(s)
	kept := all[:0]
	for _, c := range all {
		if c.Prominence < cfg.prominenceMin || c.Intensity < cfg.heightMin {
			continue
		}
		kept = append(kept, c)
	}

	slices.SortStableFunc(kept, byIntensityDesc)
	kept = enforceSpacing(kept, cfg.minSpacing)

	peaks := make([]Peak, 0, len(kept))
	for _, c := range kept {
		if c.Intensity <= cfg.intensityMin || c.Intensity > cfg.intensityMax {
			continue
		}
		peaks = append(peaks, Peak{
			Rank:       len(peaks) + 1,
			Angle:      c.Angle,
			Intensity:  c.Intensity,
			Prominence: c.Prominence,
		})
		if cfg.maxCount > 0 && len(peaks) == cfg.maxCount {
			break
		}
	}

	return peaks, nil
}

func byIntensityDesc(a, b Candidate) int {
	if c := cmp.Compare(b.Intensity, a.Intensity); c != 0 {
		return c
	}
	return cmp.Compare(a.Angle, b.Angle)
}

// enforceSpacing drops every candidate closer than minSpacing to a
// candidate already kept. cands must be sorted by byIntensityDesc.
func enforceSpacing(cands []Candidate, minSpacing float64) []Candidate {
	if minSpacing <= 0 {
		return cands
	}

	var kept []Candidate
	for _, c := range cands {
		ok := true
		for _, k := range kept {
			if math.Abs(c.Angle-k.Angle) < minSpacing {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, c)
		}
	}
	return kept
}
