// Package output renders analysis reports.
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/geniusdna/geniusdna/internal/interpret"
	"github.com/geniusdna/geniusdna/internal/report"
)

// TabWriter writes matched interpretations in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#rsid",
			"Chromosome",
			"Position",
			"Genotype",
			"Gene",
			"Category",
			"Classification",
			"Score",
			"Risk_allele",
			"Normal_allele",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single interpretation. Unmatched interpretations have no
// definition columns and are written with "-" placeholders.
func (tw *TabWriter) Write(in *interpret.Interpretation) error {
	obs := in.Observation

	pos := "-"
	if obs.Pos > 0 {
		pos = strconv.FormatInt(obs.Pos, 10)
	}

	gene, category, riskAllele, normalAllele := "-", "-", "-", "-"
	if def := in.Definition; def != nil {
		gene = def.Gene
		category = def.Category.String()
		riskAllele = def.RiskAllele
		normalAllele = def.NormalAllele
	}

	values := []string{
		obs.ID,
		dash(obs.Chrom),
		pos,
		dash(in.Genotype),
		gene,
		category,
		in.Classification.String(),
		strconv.Itoa(in.Score()),
		riskAllele,
		normalAllele,
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// WriteReport writes the header and one row per listed interpretation, in
// section order.
func (tw *TabWriter) WriteReport(r *report.Report) error {
	if err := tw.WriteHeader(); err != nil {
		return err
	}
	for _, s := range r.Sections {
		for _, in := range s.Interpretations {
			if err := tw.Write(in); err != nil {
				return err
			}
		}
	}
	return tw.Flush()
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
