package main

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geniusdna/geniusdna/internal/analysis"
	"github.com/geniusdna/geniusdna/internal/output"
	"github.com/geniusdna/geniusdna/internal/parser"
	"github.com/geniusdna/geniusdna/internal/reference"
	"github.com/geniusdna/geniusdna/internal/report"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <input-file>",
		Short: "Analyze a raw genotype file",
		Long: `Analyze a 23andMe, CSV or VCF genotype file and write a report.

The input format is detected from the content unless --format is given.
Gzip-compressed input is detected automatically. Use '-' to read stdin.`,
		Example: `  geniusdna analyze genome_raw.txt
  geniusdna analyze --output json --out report.json genome.csv
  geniusdna analyze --sample NA12878 family.vcf.gz
  zcat genome.txt.gz | geniusdna analyze -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAnalyze(cmd, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringP("format", "f", "auto", "Input format: auto, 23andme, csv, vcf")
	flags.String("sample", "", "VCF sample name (default: first sample)")
	flags.Int("sample-index", 0, "VCF sample column index, 0-based")
	flags.String("output", "text", "Report format: text, json, tab")
	flags.String("out", "", "Output file (default: stdout)")
	flags.Int("workers", 1, "Interpretation workers (0 = number of CPUs)")

	for _, key := range []string{"format", "sample", "sample-index", "output", "workers"} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, inputPath string) error {
	format, err := parser.ParseFormat(a.v.GetString("format"))
	if err != nil {
		return err
	}

	table, err := a.loadTable()
	if err != nil {
		return err
	}

	raw, err := readInput(inputPath, cmd.InOrStdin())
	if err != nil {
		return err
	}

	analyzer := analysis.New(table,
		analysis.WithLogger(a.logger),
		analysis.WithWorkers(a.v.GetInt("workers")),
		analysis.WithParseOptions(parser.Options{
			SampleName:  a.v.GetString("sample"),
			SampleIndex: a.v.GetInt("sample-index"),
		}),
	)

	rep, err := analyzer.Analyze(raw, format)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", inputPath, err)
	}

	if err := writeReport(cmd.OutOrStdout(), a.v.GetString("output"), outPath(cmd), rep); err != nil {
		return err
	}

	a.logger.Info("report written",
		zap.String("report", rep.ID),
		zap.String("output", a.v.GetString("output")))
	return nil
}

func outPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("out")
	return path
}

// writeReport renders rep to path, or to stdout when path is empty. The
// output file's close error is returned.
func writeReport(stdout io.Writer, format, path string, rep *report.Report) (err error) {
	if path == "" {
		w, err := output.NewWriter(format, stdout)
		if err != nil {
			return err
		}
		if err := w.WriteReport(rep); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	}

	// Validate the format before touching the file system.
	if _, err := output.NewWriter(format, io.Discard); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
	}()

	w, err := output.NewWriter(format, f)
	if err != nil {
		return err
	}
	if err := w.WriteReport(rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// loadTable returns the table named by --reference, or the built-in one.
func (a *app) loadTable() (*reference.Table, error) {
	path := a.v.GetString("reference")
	if path == "" {
		return reference.Default(), nil
	}

	table, err := loadReferenceFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Info("loaded reference table", zap.String("path", path), zap.Int("definitions", table.Len()))
	return table, nil
}

// readInput reads a file, or stdin for "-", decompressing gzip content.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	// Gzip magic bytes
	if len(raw) >= 2 && raw[0] == 0x1f && raw[1] == 0x8b {
		gz, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		raw, err = io.ReadAll(gz)
		if err != nil {
			return nil, fmt.Errorf("decompress input: %w", err)
		}
	}
	return raw, nil
}
