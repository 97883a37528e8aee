package main

import (
	"fmt"

	"github.com/katalvlaran/graphprep/dataset"
	"github.com/katalvlaran/graphprep/integrity"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		noVertexSubset bool
		noLabelSubset  bool
		absTol, relTol float64
	)
	cmd := &cobra.Command{
		Use:   "check <first.json> <second.json>",
		Short: "Verify that two datasets agree on shared vertices",
		Long: `Check compares attributes, label names and neighborhoods of every vertex
present in both datasets. By default the second dataset must also be a
vertex and label subset of the first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, _, err := dataset.Load(args[0])
			if err != nil {
				return err
			}
			second, _, err := dataset.Load(args[1])
			if err != nil {
				return err
			}
			n, err := integrity.AssertIntegrity(first, second,
				integrity.WithVertexSubset(!noVertexSubset),
				integrity.WithLabelSubset(!noLabelSubset),
				integrity.WithTolerance(absTol, relTol),
				integrity.WithRecorder(a.recorder))
			if err != nil {
				return err
			}
			a.logger.Debug("integrity check passed", "first", args[0], "second", args[1], "shared", n)
			fmt.Fprintf(cmd.OutOrStdout(), "%d shared vertices consistent\n", n)
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&noVertexSubset, "no-vertex-subset", false, "do not require the second vertex set to be a subset of the first")
	f.BoolVar(&noLabelSubset, "no-label-subset", false, "do not require the second label set to be a subset of the first")
	f.Float64Var(&absTol, "abs-tol", integrity.DefaultAbsTol, "absolute attribute tolerance")
	f.Float64Var(&relTol, "rel-tol", integrity.DefaultRelTol, "relative attribute tolerance")
	return cmd
}
