package main

import (
	"fmt"

	"github.com/katalvlaran/graphprep/config"
	"github.com/katalvlaran/graphprep/dataset"
	"github.com/katalvlaran/graphprep/pipeline"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		configPath  string
		datasetPath string
		outDir      string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Normalize a dataset and write its split views",
		Long: `Run loads the configuration and dataset, normalizes the graph, derives one
train/val/test split per configured seed, checks integrity between the views
and writes everything plus a manifest.yaml to the output directory.

Examples:
  graphprep run --config run.yaml --out prepared/
  graphprep run --config run.yaml --dataset cora.json --out prepared/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if datasetPath != "" {
				cfg.Dataset = datasetPath
			}
			if cfg.Dataset == "" {
				return fmt.Errorf("%w: no dataset given", config.ErrInvalidConfig)
			}

			g, _, err := dataset.Load(cfg.Dataset)
			if err != nil {
				return err
			}
			res, err := pipeline.Run(cmd.Context(), g, cfg,
				pipeline.WithLogger(a.logger), pipeline.WithRecorder(a.recorder))
			if err != nil {
				return err
			}
			m, err := pipeline.Write(outDir, res)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run %s: %d vertices, %d classes, %d splits written to %s\n",
				m.RunID, m.Vertices, len(m.Classes), len(m.Splits), outDir)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "path of the YAML configuration (required)")
	f.StringVar(&datasetPath, "dataset", "", "override the dataset path of the configuration")
	f.StringVarP(&outDir, "out", "o", "prepared", "output directory")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
