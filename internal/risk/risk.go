// Package risk turns interpretations into per-category scores and picks
// the findings that deserve attention first.
package risk

import (
	"fmt"
	"sort"

	"github.com/geniusdna/geniusdna/internal/interpret"
	"github.com/geniusdna/geniusdna/internal/reference"
)

// Label is a coarse band over a category score.
type Label string

// Labels in increasing order of concern.
const (
	Low      Label = "low"
	Moderate Label = "moderate"
	Higher   Label = "higher"
)

// LabelFor maps a score to its label: 0 is low, 1 to 3 moderate, 4 and
// above higher.
func LabelFor(score int) Label {
	switch {
	case score <= 0:
		return Low
	case score <= 3:
		return Moderate
	}
	return Higher
}

// CategorySummary is the aggregate for one category.
type CategorySummary struct {
	Category     reference.Category `json:"category"`
	Score        int                `json:"score"`
	Label        Label              `json:"label"`
	Contributing int                `json:"contributing"` // interpretations with a non-zero score
	Matched      int                `json:"matched"`      // interpretations matched to this category
}

func (s CategorySummary) String() string {
	return fmt.Sprintf("%s: %d (%s)", s.Category, s.Score, s.Label)
}

// Aggregate sums contributions per category. Every category is present,
// in enumeration order, including those with no matches. The result does
// not depend on the order of interps.
func Aggregate(interps []*interpret.Interpretation) []CategorySummary {
	cats := reference.Categories()
	summaries := make([]CategorySummary, len(cats))
	for i, c := range cats {
		summaries[i].Category = c
	}

	for _, in := range interps {
		if in == nil || !in.Matched() {
			continue
		}
		s := &summaries[in.Category()]
		s.Matched++
		if score := in.Score(); score > 0 {
			s.Score += score
			s.Contributing++
		}
	}

	for i := range summaries {
		summaries[i].Label = LabelFor(summaries[i].Score)
	}
	return summaries
}

// SelectPriority returns the at-risk interpretations ordered by score
// (descending), then category order, then variant ID.
func SelectPriority(interps []*interpret.Interpretation) []*interpret.Interpretation {
	var out []*interpret.Interpretation
	for _, in := range interps {
		if in != nil && in.Classification == interpret.AtRisk {
			out = append(out, in)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score() != b.Score() {
			return a.Score() > b.Score()
		}
		if a.Category() != b.Category() {
			return a.Category() < b.Category()
		}
		return a.ID() < b.ID()
	})
	return out
}
