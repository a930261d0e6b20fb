// Package compare contrasts the risk variants of several samples.
package compare

import (
	"github.com/geniusdna/geniusdna/internal/interpret"
	"github.com/geniusdna/geniusdna/internal/reference"
	"github.com/geniusdna/geniusdna/internal/report"
)

// Variant identifies a reference variant.
type Variant struct {
	ID       string             `json:"rsid"`
	Gene     string             `json:"gene"`
	Category reference.Category `json:"category"`
}

// Comparison lists the risk variants every sample carries, and per sample
// the risk variants that are not shared by all of them. A risk variant is
// a matched variant carrying at least one risk allele (carrier or at_risk).
type Comparison struct {
	Samples []string             `json:"samples"`
	Shared  []Variant            `json:"shared"`
	Unique  map[string][]Variant `json:"unique"`
}

// RiskVariants returns the risk variants of a report in section order.
func RiskVariants(r *report.Report) []Variant {
	var out []Variant
	seen := make(map[string]bool)
	for _, s := range r.Sections {
		for _, in := range s.Interpretations {
			if in.Classification != interpret.Carrier && in.Classification != interpret.AtRisk {
				continue
			}
			if seen[in.ID()] {
				continue
			}
			seen[in.ID()] = true
			out = append(out, Variant{ID: in.ID(), Gene: in.Definition.Gene, Category: in.Category()})
		}
	}
	return out
}

// Compare builds a comparison over per-sample reports, labeled by their
// Source.Sample. Shared variants need at least two samples; with one
// sample every risk variant is unique.
func Compare(reports []*report.Report) *Comparison {
	c := &Comparison{
		Samples: make([]string, 0, len(reports)),
		Shared:  []Variant{},
		Unique:  make(map[string][]Variant, len(reports)),
	}
	if len(reports) == 0 {
		return c
	}

	perSample := make([][]Variant, len(reports))
	counts := make(map[string]int)
	for i, r := range reports {
		c.Samples = append(c.Samples, r.Source.Sample)
		perSample[i] = RiskVariants(r)
		for _, v := range perSample[i] {
			counts[v.ID]++
		}
	}

	shared := make(map[string]bool)
	if len(reports) > 1 {
		for _, v := range perSample[0] {
			if counts[v.ID] == len(reports) {
				shared[v.ID] = true
				c.Shared = append(c.Shared, v)
			}
		}
	}

	for i, name := range c.Samples {
		unique := []Variant{}
		for _, v := range perSample[i] {
			if !shared[v.ID] {
				unique = append(unique, v)
			}
		}
		c.Unique[name] = unique
	}
	return c
}
