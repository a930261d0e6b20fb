package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/geniusdna/geniusdna/internal/interpret"
	"github.com/geniusdna/geniusdna/internal/protocol"
	"github.com/geniusdna/geniusdna/internal/report"
)

const (
	ruleWidth  = 60
	banner     = "GENIUSDNA AI LONGEVITY ENGINE"
	disclaimer = "This report is for educational and wellness purposes only. It is not a " +
		"medical diagnosis. Discuss any changes to diet, supplements or medication " +
		"with a qualified healthcare provider."
)

// TextWriter writes the human-readable report.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a new text report writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// WriteReport writes the banner, risk summary, priority recommendations,
// per-category details, health protocols and the disclaimer, in that order.
func (tw *TextWriter) WriteReport(r *report.Report) error {
	rule := strings.Repeat("=", ruleWidth)

	tw.printf("%s\n%s\n%s\n", rule, center(banner, ruleWidth), rule)
	tw.printf("Report: %s\n", r.ID)
	tw.printf("Input: %s", r.Source.Format)
	if r.Source.Sample != "" {
		tw.printf(" (sample %s)", r.Source.Sample)
	}
	tw.printf(", %d variants, %d matched, %d unmatched, %d invalid, %d lines skipped\n",
		r.Source.Observations, r.Source.Matched, r.Source.Unmatched, r.Source.Invalid, len(r.Source.Skipped))

	tw.heading("RISK SUMMARY")
	for _, s := range r.Summaries {
		tw.printf("  %-26s %3d  %s\n", s.Category.Title(), s.Score, strings.ToUpper(string(s.Label)))
	}

	tw.heading("PRIORITY RECOMMENDATIONS")
	if len(r.Priority) == 0 {
		tw.printf("  No high-priority findings.\n")
	}
	for _, in := range r.Priority {
		tw.printf("  HIGH PRIORITY: %s (%s) %s, %s\n",
			in.Definition.Gene, in.ID(), in.Genotype, in.Category().Title())
		for _, rec := range in.Recommendations {
			tw.printf("    - %s\n", rec)
		}
	}

	tw.heading("DETAILED RESULTS")
	for _, s := range r.Sections {
		tw.printf("\n[%s]\n", s.Title)
		if len(s.Interpretations) == 0 {
			tw.printf("  No variants analyzed.\n")
			continue
		}
		for _, in := range s.Interpretations {
			tw.writeDetail(in)
		}
	}

	tw.heading("HEALTH PROTOCOLS")
	if len(r.Protocols) == 0 {
		tw.printf("  No reference variants found.\n")
	}
	for _, p := range r.Protocols {
		tw.writeProtocol(p)
	}

	tw.printf("\n%s\n%s\n", rule, disclaimer)
	return tw.w.Flush()
}

func (tw *TextWriter) writeDetail(in *interpret.Interpretation) {
	def := in.Definition
	tw.printf("  %s %s: %s -> %s\n", def.Gene, in.ID(), in.Genotype, label(in.Classification))
	if def.Description != "" {
		tw.printf("    %s\n", def.Description)
	}
	for _, rec := range in.Recommendations {
		tw.printf("    - %s\n", rec)
	}
}

func (tw *TextWriter) writeProtocol(p protocol.Protocol) {
	tw.printf("\n[%s] priority %s\n", p.Title, strings.ToUpper(string(p.Priority)))
	tw.printf("  %s\n", p.Summary)
	for _, group := range []struct {
		name string
		recs []string
	}{
		{"Supplements", p.Supplements},
		{"Diet", p.Diet},
		{"Lifestyle", p.Lifestyle},
	} {
		if len(group.recs) == 0 {
			continue
		}
		tw.printf("  %s:\n", group.name)
		for _, rec := range group.recs {
			tw.printf("    - %s\n", rec)
		}
	}
}

func (tw *TextWriter) heading(title string) {
	tw.printf("\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

// printf writes to the buffer; write errors surface on Flush.
func (tw *TextWriter) printf(format string, args ...any) {
	fmt.Fprintf(tw.w, format, args...)
}

func label(c interpret.Classification) string {
	switch c {
	case interpret.Normal:
		return "Normal"
	case interpret.Carrier:
		return "Carrier"
	case interpret.AtRisk:
		return "At risk"
	}
	return "Could not interpret"
}

func center(s string, width int) string {
	if pad := (width - len(s)) / 2; pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
