package main

import (
	"fmt"

	"github.com/katalvlaran/graphprep/dataset"
	"github.com/katalvlaran/graphprep/normalize"
	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	var (
		normalized    bool
		minClassCount float64
	)
	cmd := &cobra.Command{
		Use:   "summary <dataset.json>",
		Short: "Print statistics of a dataset",
		Long: `Summary prints vertex, attribute and edge counts, the labels inside the
document's mask and per-class counts. With --normalize the graph is
normalized first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, mask, err := dataset.Load(args[0])
			if err != nil {
				return err
			}
			if normalized {
				var rep *normalize.Report
				g, rep, err = normalize.Normalize(g,
					normalize.WithMinClassCount(minClassCount),
					normalize.WithLogger(a.logger),
					normalize.WithRecorder(a.recorder))
				if err != nil {
					return err
				}
				a.logger.Info("normalized", "iterations", rep.Iterations, "pruned", rep.PrunedClasses)
				mask = nil
			}
			s, err := g.Summary(mask, "\t")
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().BoolVar(&normalized, "normalize", false, "normalize the graph before summarizing")
	cmd.Flags().Float64Var(&minClassCount, "min-class-count", 0, "class pruning threshold used with --normalize")
	return cmd
}
