package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/geniusdna/geniusdna/internal/reference"
	"github.com/geniusdna/geniusdna/internal/refstore"
)

func newRefdbCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refdb",
		Short: "Inspect and export the reference SNP table",
		Long: `Inspect, export and validate the reference table of wellness-related SNPs.

Exports can be fed back to 'analyze --reference' to run against a
customized table.`,
		Args: cobra.NoArgs,
	}

	cmd.AddCommand(newRefdbListCmd(a))
	cmd.AddCommand(newRefdbShowCmd(a))
	cmd.AddCommand(newRefdbExportCmd(a))
	cmd.AddCommand(newRefdbValidateCmd())

	return cmd
}

func newRefdbListCmd(a *app) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reference variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.loadTable()
			if err != nil {
				return err
			}

			defs := table.Definitions()
			if category != "" {
				c, err := reference.ParseCategory(category)
				if err != nil {
					return err
				}
				defs = table.ByCategory(c)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RSID\tGENE\tCATEGORY\tRISK\tNORMAL")
			for _, d := range defs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Gene, d.Category, d.RiskAllele, d.NormalAllele)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list one category (e.g. methylation)")
	return cmd
}

func newRefdbShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <rsid>",
		Short: "Show one reference variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.loadTable()
			if err != nil {
				return err
			}

			d, ok := table.Lookup(args[0])
			if !ok {
				return fmt.Errorf("variant %q is not in the reference table", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", d.ID, d.Gene)
			fmt.Fprintf(out, "  Category:      %s\n", d.Category.Title())
			fmt.Fprintf(out, "  Risk allele:   %s\n", d.RiskAllele)
			fmt.Fprintf(out, "  Normal allele: %s\n", d.NormalAllele)
			fmt.Fprintf(out, "  Description:   %s\n", d.Description)
			if len(d.Recommendations) > 0 {
				fmt.Fprintln(out, "  Recommendations:")
				for _, rec := range d.Recommendations {
					fmt.Fprintf(out, "    - %s\n", rec)
				}
			}
			return nil
		},
	}
}

func newRefdbExportCmd(a *app) *cobra.Command {
	var format, outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the reference table as JSON, CSV or DuckDB",
		Example: `  geniusdna refdb export --format csv --out snps.csv
  geniusdna refdb export --format duckdb --out ~/.geniusdna/reference.duckdb`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.loadTable()
			if err != nil {
				return err
			}
			return exportTable(cmd.OutOrStdout(), table, strings.ToLower(format), outPath)
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Export format: json, csv, duckdb")
	cmd.Flags().StringVar(&outPath, "out", "", "Output file (required for duckdb; default: stdout)")
	return cmd
}

func exportTable(stdout io.Writer, table *reference.Table, format, outPath string) error {
	defs := table.Definitions()

	if format == "duckdb" {
		if outPath == "" {
			return errors.New("--out is required for duckdb export")
		}
		store, err := refstore.Open(outPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.ClearDefinitions(); err != nil {
			return fmt.Errorf("clear definitions: %w", err)
		}
		if err := store.WriteDefinitions(defs); err != nil {
			return fmt.Errorf("write definitions: %w", err)
		}
		fmt.Fprintf(stdout, "Exported %d definitions to %s\n", len(defs), outPath)
		return nil
	}

	var write func(io.Writer, []*reference.Definition) error
	switch format {
	case "json":
		write = refstore.WriteJSON
	case "csv":
		write = refstore.WriteCSV
	default:
		return fmt.Errorf("unknown export format %q (want json, csv or duckdb)", format)
	}

	if outPath == "" {
		return write(stdout, defs)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := write(f, defs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newRefdbValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a reference table export",
		Long: `Check that a JSON, CSV or DuckDB reference export can be loaded: every
entry has an ID, a known category and distinct single-letter alleles, and
no ID appears twice.

DuckDB exports are opened read-only. Their rsid primary key already rules
out duplicate IDs, so only JSON and CSV files can fail the duplicate check.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadReferenceFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d definitions\n", args[0], table.Len())
			for _, c := range reference.Categories() {
				n := len(table.ByCategory(c))
				fmt.Fprintf(out, "  %-24s %d\n", c.Title(), n)
			}
			return nil
		},
	}
}

// loadReferenceFile loads a table exported by 'refdb export'. The format
// follows the extension; anything other than .json or .csv is opened as a
// read-only DuckDB database.
func loadReferenceFile(path string) (*reference.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reference file: %w", err)
	}

	var read func(io.Reader) ([]reference.Definition, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		read = refstore.ReadJSON
	case ".csv":
		read = refstore.ReadCSV
	default:
		store, err := refstore.OpenReadOnly(path)
		if err != nil {
			return nil, fmt.Errorf("open reference database: %w", err)
		}
		defer store.Close()
		return store.LoadTable()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference file: %w", err)
	}
	defer f.Close()

	defs, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	table, err := reference.New(defs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
