package parser

import (
	"strings"

	"github.com/geniusdna/geniusdna/internal/vcf"
)

// GenotypeInvalid marks a genotype that could not be decoded from the
// source (e.g. a VCF no-call).
const GenotypeInvalid = vcf.GenotypeInvalid

// Observation is one input line reduced to a variant ID and a genotype.
type Observation struct {
	Line      int    `json:"line"`
	ID        string `json:"rsid"`
	Chrom     string `json:"chromosome,omitempty"`
	Pos       int64  `json:"position,omitempty"` // 0 when absent
	Genotype  string `json:"genotype"`           // normalized
	Raw       string `json:"raw_genotype"`       // as it appeared in the file
	Malformed bool   `json:"malformed,omitempty"`
}

// Normalize upper-cases a genotype and strips allele separators, so "a/g",
// "A|G" and "AG" compare equal.
func Normalize(genotype string) string {
	genotype = strings.TrimSpace(genotype)
	if genotype == GenotypeInvalid {
		return genotype
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '|', ' ', '\t':
			return -1
		}
		if r >= 'a' && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}, genotype)
}

// wellFormed reports whether a normalized genotype only holds allele or
// no-call tokens.
func wellFormed(genotype string) bool {
	if genotype == "" || genotype == GenotypeInvalid {
		return false
	}
	for i := 0; i < len(genotype); i++ {
		switch genotype[i] {
		case 'A', 'C', 'G', 'T', 'D', 'I', 'N', '-', '0':
		default:
			return false
		}
	}
	return true
}

func newObservation(line int, id, chrom string, pos int64, raw, decoded string) Observation {
	g := Normalize(decoded)
	return Observation{
		Line:      line,
		ID:        strings.TrimSpace(id),
		Chrom:     strings.TrimSpace(chrom),
		Pos:       pos,
		Genotype:  g,
		Raw:       raw,
		Malformed: !wellFormed(g),
	}
}
