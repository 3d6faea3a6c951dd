package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-xrd/analysis"
	"github.com/cwbudde/algo-xrd/internal/config"
	"github.com/cwbudde/algo-xrd/internal/scanio"
	"github.com/cwbudde/algo-xrd/measure/bragg"
	"github.com/cwbudde/algo-xrd/stats"
)

// stages selects which sections a subcommand prints.
type stages struct {
	peaks         bool
	crystallinity bool
}

var (
	stagesAll           = stages{peaks: true, crystallinity: true}
	stagesPeaks         = stages{peaks: true}
	stagesCrystallinity = stages{crystallinity: true}
)

// fileResult is the outcome for one input file. Err is set when the file
// could not be read; analysis stage failures live on the Report.
type fileResult struct {
	Path    string
	Summary stats.Summary
	Report  analysis.Report
	Err     error
}

func analyzeCmd(g *globalFlags, use, short string, st stages) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   use + " [scan.csv ...]",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, g)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if st == stagesPeaks && !cmd.Flags().Changed("fwhm-mode") {
				cfg.FWHMMode = string(analysis.FWHMNone)
			}

			runID := uuid.New()
			log = log.With(zap.String("run_id", runID.String()))

			start := time.Now()
			results, err := analyzeFiles(cmd.Context(), log, cfg, args)
			if err != nil {
				return err
			}
			log.Info("run complete",
				zap.Int("files", len(results)),
				zap.Duration("elapsed", time.Since(start)))

			out := cmd.OutOrStdout()
			if asJSON {
				err = writeJSON(out, runID, cfg, results, st)
			} else {
				err = writeText(out, results, st)
			}
			if err != nil {
				return err
			}

			if n := failed(results); n > 0 {
				return fmt.Errorf("%d of %d files could not be read", n, len(results))
			}
			return nil
		},
	}
	registerFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

// analyzeFiles reads and analyses every path, at most cfg.Workers at a
// time. Results keep the order of paths. Only an invalid configuration or
// a cancelled context aborts the batch.
func analyzeFiles(ctx context.Context, log *zap.Logger, cfg *config.Config, paths []string) ([]fileResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	acfg := cfg.Analysis()
	readOpts := scanio.Options{
		AngleColumn:     cfg.AngleColumn,
		IntensityColumn: cfg.IntensityColumn,
	}

	results := make([]fileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			flog := log.With(zap.String("file", path))

			s, err := scanio.ReadFile(path, readOpts)
			if err != nil {
				flog.Warn("read failed", zap.Error(err))
				results[i] = fileResult{Path: path, Err: err}
				return nil
			}
			sum := stats.Summarize(s)
			flog.Debug("scan loaded",
				zap.Int("samples", sum.Points),
				zap.Float64("step", sum.Step),
				zap.Float64("max", sum.Max),
				zap.Float64("max_angle", sum.MaxAngle))

			rep, err := analysis.Analyze(s, acfg)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logReport(flog, rep)
			results[i] = fileResult{Path: path, Summary: sum, Report: rep}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func logReport(log *zap.Logger, rep analysis.Report) {
	if rep.PeakErr != nil {
		log.Warn("peak detection failed", zap.Error(rep.PeakErr))
	}
	for _, p := range rep.Peaks {
		if p.FWHMErr != nil {
			log.Warn("fwhm failed", zap.Int("rank", p.Rank), zap.Float64("angle", p.Angle), zap.Error(p.FWHMErr))
		}
		if p.DSpacingErr != nil {
			log.Warn("d-spacing failed", zap.Int("rank", p.Rank), zap.Float64("angle", p.Angle), zap.Error(p.DSpacingErr))
		}
	}
	if rep.CrystallinityErr != nil {
		log.Warn("crystallinity failed", zap.Error(rep.CrystallinityErr))
	}
	log.Info("scan analysed", zap.Int("peaks", len(rep.Peaks)))
}

func failed(results []fileResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

func dspacingCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dspacing 2theta [2theta ...]",
		Short: "Convert 2θ angles to d-spacing via Bragg's law",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, g)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			angles := make([]float64, len(args))
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("invalid angle %q: %w", a, err)
				}
				angles[i] = v
			}
			return writeDSpacing(cmd.OutOrStdout(), log, angles, cfg.Wavelength)
		},
	}
	cmd.Flags().Float64("wavelength", bragg.CuKAlpha1, "X-ray wavelength in ångström")
	return cmd
}
