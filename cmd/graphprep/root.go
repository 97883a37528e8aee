package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/graphprep/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	logFormat   string
	logLevel    string
	metricsFile string

	logger   *slog.Logger
	registry *prometheus.Registry
	recorder *metrics.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "graphprep",
		Short: "Prepare graph datasets for node classification",
		Long: `graphprep normalizes an attributed graph (largest connected component,
pruning of small classes) and derives reproducible train/validation/test
views whose shared vertices agree on attributes, labels and neighborhoods.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.flushMetrics()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.logFormat, "log-format", "text", "log output format: text or json")
	pf.StringVar(&a.logLevel, "log-level", "info", "minimum log level: debug, info, warn or error")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write a Prometheus textfile snapshot to this path")

	root.AddCommand(newRunCmd(a), newSummaryCmd(a), newCheckCmd(a))
	return root
}

// setup builds the logger and metrics registry from the persistent flags.
func (a *app) setup(w io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	hopts := &slog.HandlerOptions{Level: level}
	switch a.logFormat {
	case "text":
		a.logger = slog.New(slog.NewTextHandler(w, hopts))
	case "json":
		a.logger = slog.New(slog.NewJSONHandler(w, hopts))
	default:
		return fmt.Errorf("invalid --log-format %q, want text or json", a.logFormat)
	}

	a.registry = prometheus.NewRegistry()
	a.recorder = metrics.NewRecorder(a.registry)
	return nil
}

func (a *app) flushMetrics() error {
	if a.metricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.metricsFile, a.registry); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	a.logger.Debug("wrote metrics", "path", a.metricsFile)
	return nil
}
