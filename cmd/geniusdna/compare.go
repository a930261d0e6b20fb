package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geniusdna/geniusdna/internal/analysis"
	"github.com/geniusdna/geniusdna/internal/compare"
	"github.com/geniusdna/geniusdna/internal/output"
)

func newCompareCmd(a *app) *cobra.Command {
	var samples []string
	var format string

	cmd := &cobra.Command{
		Use:   "compare <vcf-file>",
		Short: "Compare risk variants across the samples of a VCF",
		Long: `Analyze every sample of a multi-sample VCF (or those named with --samples)
and list the risk variants all samples carry and those each sample carries
that are not shared by every sample.`,
		Example: `  geniusdna compare family.vcf.gz
  geniusdna compare --samples MOTHER,CHILD --output json family.vcf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.loadTable()
			if err != nil {
				return err
			}
			raw, err := readInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			analyzer := analysis.New(table,
				analysis.WithLogger(a.logger),
				analysis.WithWorkers(a.v.GetInt("workers")))
			reports, err := analyzer.AnalyzeSamples(raw, samples)
			if err != nil {
				return fmt.Errorf("compare %s: %w", args[0], err)
			}

			c := compare.Compare(reports)
			a.logger.Info("comparison complete",
				zap.Strings("samples", c.Samples),
				zap.Int("shared", len(c.Shared)))
			return output.WriteComparison(cmd.OutOrStdout(), format, c)
		},
	}

	cmd.Flags().StringSliceVar(&samples, "samples", nil, "Samples to compare (default: all samples in the header)")
	cmd.Flags().StringVar(&format, "output", "text", "Output format: text, json")
	return cmd
}
