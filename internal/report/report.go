// Package report assembles the final analysis document.
package report

import (
	"github.com/geniusdna/geniusdna/internal/interpret"
	"github.com/geniusdna/geniusdna/internal/parser"
	"github.com/geniusdna/geniusdna/internal/protocol"
	"github.com/geniusdna/geniusdna/internal/reference"
	"github.com/geniusdna/geniusdna/internal/risk"
)

// Source describes the input a report was built from.
type Source struct {
	Format       parser.Format `json:"format"`
	Sample       string        `json:"sample,omitempty"`
	Observations int           `json:"observations"`
	Matched      int           `json:"matched"`
	Unmatched    int           `json:"unmatched"`
	Invalid      int           `json:"invalid"`
	Skipped      []SkippedLine `json:"skipped,omitempty"`
}

// SkippedLine is an input line that was dropped during parsing.
type SkippedLine struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Section lists the matched interpretations of one category.
type Section struct {
	Category        reference.Category          `json:"category"`
	Title           string                      `json:"title"`
	Interpretations []*interpret.Interpretation `json:"interpretations"`
}

// Report is the result of one analysis. It is owned by the caller.
type Report struct {
	ID        string                      `json:"id"`
	Source    Source                      `json:"source"`
	Summaries []risk.CategorySummary      `json:"summaries"`
	Priority  []*interpret.Interpretation `json:"priority"`
	Sections  []Section                   `json:"sections"`
	Protocols []protocol.Protocol         `json:"protocols"`
}

// Assemble composes a report. Sections follow category order and keep
// input order inside; unmatched interpretations are counted in Source but
// not listed. Protocols cover the categories with matched variants.
func Assemble(summaries []risk.CategorySummary, priority, all []*interpret.Interpretation) *Report {
	r := &Report{
		Summaries: summaries,
		Priority:  priority,
		Protocols: protocol.Generate(all),
	}
	if r.Priority == nil {
		r.Priority = []*interpret.Interpretation{}
	}

	byCategory := make(map[reference.Category][]*interpret.Interpretation)
	for _, in := range all {
		r.Source.Observations++
		if !in.Matched() {
			r.Source.Unmatched++
			continue
		}
		r.Source.Matched++
		if in.Classification == interpret.Invalid {
			r.Source.Invalid++
		}
		byCategory[in.Category()] = append(byCategory[in.Category()], in)
	}

	for _, c := range reference.Categories() {
		interps := byCategory[c]
		if interps == nil {
			interps = []*interpret.Interpretation{}
		}
		r.Sections = append(r.Sections, Section{
			Category:        c,
			Title:           c.Title(),
			Interpretations: interps,
		})
	}
	return r
}

// Summary returns the summary for a category.
func (r *Report) Summary(c reference.Category) (risk.CategorySummary, bool) {
	for _, s := range r.Summaries {
		if s.Category == c {
			return s, true
		}
	}
	return risk.CategorySummary{}, false
}

// Section returns the detail section for a category.
func (r *Report) Section(c reference.Category) (Section, bool) {
	for _, s := range r.Sections {
		if s.Category == c {
			return s, true
		}
	}
	return Section{}, false
}

// Find returns the matched interpretation for a variant ID.
func (r *Report) Find(id string) (*interpret.Interpretation, bool) {
	for _, s := range r.Sections {
		for _, in := range s.Interpretations {
			if in.ID() == id {
				return in, true
			}
		}
	}
	return nil, false
}
