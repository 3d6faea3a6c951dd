package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-xrd/analysis"
	"github.com/cwbudde/algo-xrd/internal/config"
	"github.com/cwbudde/algo-xrd/measure/bragg"
	"github.com/cwbudde/algo-xrd/measure/peak"
)

func writeText(w io.Writer, results []fileResult, st stages) error {
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeFileText(w, r, st); err != nil {
			return err
		}
	}
	return nil
}

func writeFileText(w io.Writer, r fileResult, st stages) error {
	if _, err := fmt.Fprintf(w, "== %s\n", r.Path); err != nil {
		return err
	}
	if r.Err != nil {
		_, err := fmt.Fprintf(w, "error: %v\n", r.Err)
		return err
	}

	sum := r.Summary
	if _, err := fmt.Fprintf(w, "%d points, 2θ %.2f to %.2f° (step %.4f°), intensity %.1f to %.1f\n",
		sum.Points, sum.Start, sum.End, sum.Step, sum.Min, sum.Max); err != nil {
		return err
	}

	rep := r.Report
	if st.peaks {
		if err := writePeaksText(w, rep); err != nil {
			return err
		}
	}
	if st.crystallinity {
		if err := writeCrystallinityText(w, rep); err != nil {
			return err
		}
	}
	return nil
}

func writePeaksText(w io.Writer, rep analysis.Report) error {
	switch {
	case errors.Is(rep.PeakErr, peak.ErrEmptyWindow):
		_, err := fmt.Fprintln(w, "no data in the requested 2θ window")
		return err
	case rep.PeakErr != nil:
		_, err := fmt.Fprintf(w, "peak detection failed: %v\n", rep.PeakErr)
		return err
	case len(rep.Peaks) == 0:
		_, err := fmt.Fprintln(w, "no peaks found in the specified range")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Rank\t2θ [°]\tIntensity\tProminence\tFWHM [°]\td [Å]\tSize [Å]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "----\t------\t---------\t----------\t--------\t-----\t--------\n"); err != nil {
		return err
	}
	for _, p := range rep.Peaks {
		fwhmCol := "-"
		if p.FWHM != nil {
			fwhmCol = fmt.Sprintf("%.4f", p.FWHM.Width)
		}
		if _, err := fmt.Fprintf(tw, "%d\t%.3f\t%.2f\t%.2f\t%s\t%s\t%s\n",
			p.Rank,
			p.Angle,
			p.Intensity,
			p.Prominence,
			fwhmCol,
			optional(p.DSpacing, "%.4f"),
			optional(p.CrystalliteSize, "%.1f"),
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeCrystallinityText(w io.Writer, rep analysis.Report) error {
	if rep.Crystallinity == nil {
		_, err := fmt.Fprintf(w, "crystallinity unavailable: %v\n", rep.CrystallinityErr)
		return err
	}
	c := rep.Crystallinity
	_, err := fmt.Fprintf(w, "Baseline (amorphous): %.2f\nTotal area: %.2f\nCrystalline area: %.2f\nCrystallinity: %.2f%%\n",
		c.Baseline, c.TotalArea, c.CrystallineArea, c.Percent)
	return err
}

// writeDSpacing prints one row per angle. Angles that cannot be converted
// show the error in place of d and are logged.
func writeDSpacing(w io.Writer, log *zap.Logger, angles []float64, wavelength float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "2θ [°]\td [Å]\n"); err != nil {
		return err
	}
	for _, a := range angles {
		var col string
		if d, err := bragg.DSpacing(a, wavelength); err != nil {
			log.Warn("d-spacing failed", zap.Float64("angle", a), zap.Error(err))
			col = "error: " + err.Error()
		} else {
			col = fmt.Sprintf("%.4f", d)
		}
		if _, err := fmt.Fprintf(tw, "%.3f\t%s\n", a, col); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func optional(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

type jsonRun struct {
	RunID  string     `json:"run_id"`
	Config jsonConfig `json:"config"`
	Files  []jsonFile `json:"files"`
}

type jsonConfig struct {
	MinAngle   float64 `json:"min_angle"`
	MaxAngle   float64 `json:"max_angle"`
	FWHMMode   string  `json:"fwhm_mode"`
	Wavelength float64 `json:"wavelength"`
}

type jsonFile struct {
	Path               string             `json:"path"`
	Error              string             `json:"error,omitempty"`
	Summary            *jsonSummary       `json:"summary,omitempty"`
	Peaks              []jsonPeak         `json:"peaks,omitempty"`
	PeakError          string             `json:"peak_error,omitempty"`
	Crystallinity      *jsonCrystallinity `json:"crystallinity,omitempty"`
	CrystallinityError string             `json:"crystallinity_error,omitempty"`
}

type jsonSummary struct {
	Points   int     `json:"points"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Step     float64 `json:"step"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	MaxAngle float64 `json:"max_angle"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Contrast float64 `json:"contrast"`
}

type jsonPeak struct {
	Rank            int       `json:"rank"`
	Angle           float64   `json:"two_theta"`
	Intensity       float64   `json:"intensity"`
	Prominence      float64   `json:"prominence"`
	FWHM            *jsonFWHM `json:"fwhm,omitempty"`
	FWHMError       string    `json:"fwhm_error,omitempty"`
	DSpacing        *float64  `json:"d_spacing,omitempty"`
	DSpacingError   string    `json:"d_spacing_error,omitempty"`
	CrystalliteSize *float64  `json:"crystallite_size,omitempty"`
}

type jsonFWHM struct {
	Left    float64 `json:"left"`
	Right   float64 `json:"right"`
	Width   float64 `json:"width"`
	HalfMax float64 `json:"half_max"`
}

type jsonCrystallinity struct {
	Baseline        float64 `json:"baseline"`
	TotalArea       float64 `json:"total_area"`
	CrystallineArea float64 `json:"crystalline_area"`
	Percent         float64 `json:"percent"`
}

func writeJSON(w io.Writer, runID uuid.UUID, cfg *config.Config, results []fileResult, st stages) error {
	run := jsonRun{
		RunID: runID.String(),
		Config: jsonConfig{
			MinAngle:   cfg.MinAngle,
			MaxAngle:   cfg.MaxAngle,
			FWHMMode:   cfg.FWHMMode,
			Wavelength: cfg.Wavelength,
		},
		Files: make([]jsonFile, len(results)),
	}
	for i, r := range results {
		run.Files[i] = toJSONFile(r, st)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

func toJSONFile(r fileResult, st stages) jsonFile {
	f := jsonFile{Path: r.Path}
	if r.Err != nil {
		f.Error = r.Err.Error()
		return f
	}

	sum := r.Summary
	f.Summary = &jsonSummary{
		Points:   sum.Points,
		Start:    sum.Start,
		End:      sum.End,
		Step:     sum.Step,
		Min:      sum.Min,
		Max:      sum.Max,
		MaxAngle: sum.MaxAngle,
		Mean:     sum.Mean,
		StdDev:   sum.StdDev,
		Contrast: sum.Contrast,
	}

	rep := r.Report
	if st.peaks {
		f.PeakError = errString(rep.PeakErr)
		for _, p := range rep.Peaks {
			jp := jsonPeak{
				Rank:            p.Rank,
				Angle:           p.Angle,
				Intensity:       p.Intensity,
				Prominence:      p.Prominence,
				FWHMError:       errString(p.FWHMErr),
				DSpacing:        p.DSpacing,
				DSpacingError:   errString(p.DSpacingErr),
				CrystalliteSize: p.CrystalliteSize,
			}
			if p.FWHM != nil {
				jp.FWHM = &jsonFWHM{Left: p.FWHM.Left, Right: p.FWHM.Right, Width: p.FWHM.Width, HalfMax: p.FWHM.HalfMax}
			}
			f.Peaks = append(f.Peaks, jp)
		}
	}
	if st.crystallinity {
		f.CrystallinityError = errString(rep.CrystallinityErr)
		if c := rep.Crystallinity; c != nil {
			f.Crystallinity = &jsonCrystallinity{
				Baseline:        c.Baseline,
				TotalArea:       c.TotalArea,
				CrystallineArea: c.CrystallineArea,
				Percent:         c.Percent,
			}
		}
	}
	return f
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
