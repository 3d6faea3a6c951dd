package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-xrd/analysis"
	"github.com/cwbudde/algo-xrd/internal/config"
	"github.com/cwbudde/algo-xrd/internal/logger"
)

type globalFlags struct {
	configPath string
	logLevel   string
	consoleLog bool
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:          "xrdpeaks",
		Short:        "Peak, FWHM and crystallinity analysis of XRD scans",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "YAML config file (default $XRD_CONFIG)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&g.consoleLog, "console-log", false, "human-readable log output instead of JSON")

	root.AddCommand(analyzeCmd(&g, "analyze", "Run the full pipeline: peaks, FWHM, d-spacing, crystallinity", stagesAll))
	root.AddCommand(analyzeCmd(&g, "peaks", "Detect and rank peaks with d-spacing", stagesPeaks))
	root.AddCommand(analyzeCmd(&g, "crystallinity", "Estimate crystallinity by baseline-subtracted integration", stagesCrystallinity))
	root.AddCommand(dspacingCmd(&g))

	return root
}

// setup loads settings, applies explicitly set flags and builds the logger.
func setup(cmd *cobra.Command, g *globalFlags) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, nil, err
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	var opts []logger.Option
	if g.consoleLog {
		opts = append(opts, logger.WithConsole())
	}
	opts = append(opts, logger.WithOutput(cmd.ErrOrStderr()))
	log, err := logger.New(cfg.LogLevel, opts...)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func fwhmModeUsage() string {
	return "peaks annotated with FWHM: " + string(analysis.FWHMHighest) + ", " +
		string(analysis.FWHMAll) + " or " + string(analysis.FWHMNone)
}
