// Package protocol groups the recommendations of an analysis into one
// action plan per health category.
package protocol

import (
	"fmt"
	"sort"
	"strings"

	"github.com/geniusdna/geniusdna/internal/interpret"
	"github.com/geniusdna/geniusdna/internal/reference"
)

// Priority ranks protocols for the reader.
type Priority string

// Priorities.
const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

// Kind is the bucket a recommendation is filed under.
type Kind int

// Recommendation kinds.
const (
	Lifestyle Kind = iota
	Supplement
	Diet
)

func (k Kind) String() string {
	switch k {
	case Supplement:
		return "supplement"
	case Diet:
		return "diet"
	}
	return "lifestyle"
}

// Keywords are matched against lower-cased text; supplements are checked
// before diet.
var (
	supplementWords = []string{"supplement", "vitamin", "mineral", "omega", "nac", "glutathione", "methylfolate", "cobalamin"}
	dietWords       = []string{"diet", "food", "eat", "intake", "meal"}
)

// focus is the closing advice of a summary when a category has at-risk
// markers.
var focus = map[reference.Category]string{
	reference.Detoxification: "Support liver and detoxification pathways with targeted nutrition and reduce toxin exposure.",
	reference.Methylation:    "Prioritize active folate and B12 forms and ask about a homocysteine test.",
	reference.VitaminD:       "Track vitamin D levels and supplement according to blood results.",
	reference.FatMetabolism:  "Focus on portion control, regular activity and the quality of dietary fats.",
	reference.Mitochondrial:  "Favor regular aerobic and resistance exercise and an antioxidant-rich diet.",
	reference.Cognitive:      "Focus on sleep, stress management, exercise and cognitive training.",
	reference.Aging:          "Focus on cardiovascular health, regular exercise and an anti-inflammatory diet.",
}

// Protocol is the action plan for one category.
type Protocol struct {
	Category    reference.Category `json:"category"`
	Title       string             `json:"title"`
	Priority    Priority           `json:"priority"`
	Summary     string             `json:"summary"`
	Markers     int                `json:"markers"` // matched variants in the category
	AtRisk      int                `json:"at_risk"`
	Supplements []string           `json:"supplements"`
	Diet        []string           `json:"diet"`
	Lifestyle   []string           `json:"lifestyle"`
}

// Recommendations returns every recommendation of the protocol.
func (p Protocol) Recommendations() []string {
	out := make([]string, 0, len(p.Supplements)+len(p.Diet)+len(p.Lifestyle))
	out = append(out, p.Supplements...)
	out = append(out, p.Diet...)
	return append(out, p.Lifestyle...)
}

// Classify files a recommendation under a kind by keyword.
func Classify(rec string) Kind {
	lower := strings.ToLower(rec)
	for _, w := range supplementWords {
		if strings.Contains(lower, w) {
			return Supplement
		}
	}
	for _, w := range dietWords {
		if strings.Contains(lower, w) {
			return Diet
		}
	}
	return Lifestyle
}

// PriorityFor ranks a category: any at-risk marker is high, more than two
// matched markers medium, otherwise low.
func PriorityFor(markers, atRisk int) Priority {
	switch {
	case atRisk > 0:
		return High
	case markers > 2:
		return Medium
	}
	return Low
}

// Generate builds one protocol per category that has matched
// interpretations, in category order. Recommendations are deduplicated
// and keep first-seen order.
func Generate(interps []*interpret.Interpretation) []Protocol {
	byCategory := make(map[reference.Category][]*interpret.Interpretation)
	for _, in := range interps {
		if in == nil || !in.Matched() {
			continue
		}
		byCategory[in.Category()] = append(byCategory[in.Category()], in)
	}

	out := []Protocol{}
	for _, c := range reference.Categories() {
		if members := byCategory[c]; len(members) > 0 {
			out = append(out, build(c, members))
		}
	}
	return out
}

func build(c reference.Category, members []*interpret.Interpretation) Protocol {
	p := Protocol{
		Category:    c,
		Title:       c.Title(),
		Markers:     len(members),
		Supplements: []string{},
		Diet:        []string{},
		Lifestyle:   []string{},
	}

	seen := make(map[string]bool)
	genes := make(map[string]bool)
	for _, in := range members {
		genes[in.Definition.Gene] = true
		if in.Classification == interpret.AtRisk {
			p.AtRisk++
		}
		for _, rec := range in.Recommendations {
			if seen[rec] {
				continue
			}
			seen[rec] = true
			switch Classify(rec) {
			case Supplement:
				p.Supplements = append(p.Supplements, rec)
			case Diet:
				p.Diet = append(p.Diet, rec)
			default:
				p.Lifestyle = append(p.Lifestyle, rec)
			}
		}
	}

	p.Priority = PriorityFor(p.Markers, p.AtRisk)
	p.Summary = summary(c, p.Markers, p.AtRisk, sortedKeys(genes))
	return p
}

func summary(c reference.Category, markers, atRisk int, genes []string) string {
	s := fmt.Sprintf("Analysis of %d %s marker(s) (%s). ",
		markers, strings.ToLower(c.Title()), strings.Join(genes, ", "))
	if atRisk > 0 {
		return s + fmt.Sprintf("%d marker(s) carry two risk alleles and need attention. %s", atRisk, focus[c])
	}
	return s + "No marker carries two risk alleles; keep up your current habits."
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
