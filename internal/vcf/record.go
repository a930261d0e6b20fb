// Package vcf provides VCF file parsing functionality.
package vcf

import (
	"fmt"
	"strings"
)

// GenotypeInvalid is returned by Record.Genotype when the sample's GT
// subfield is missing or is not a biallelic diploid call.
const GenotypeInvalid = "invalid"

// Record represents a single data line from a VCF file.
type Record struct {
	Line    int      // 1-based line number in the source
	Chrom   string   // Chromosome name (e.g., "19", "chr19")
	Pos     int64    // 1-based genomic position
	ID      string   // Variant identifier (e.g., rs ID)
	Ref     string   // Reference allele
	Alt     string   // Alternate allele(s), comma-separated when multi-allelic
	Format  []string // FORMAT keys (e.g., GT, DP)
	Samples []string // Raw sample columns, in header order
}

// IsMultiAllelic returns true if the record lists more than one ALT allele.
func (r *Record) IsMultiAllelic() bool {
	return strings.Contains(r.Alt, ",")
}

// SampleValue returns the FORMAT subfield key for the sample at index.
func (r *Record) SampleValue(sample int, key string) (string, bool) {
	if sample < 0 || sample >= len(r.Samples) {
		return "", false
	}
	values := strings.Split(r.Samples[sample], ":")
	for i, k := range r.Format {
		if k != key {
			continue
		}
		if i >= len(values) {
			return "", false
		}
		return values[i], true
	}
	return "", false
}

// Genotype returns the sample's alleles spelled out from REF/ALT
// (e.g. "CT" for GT 0/1 with REF=C, ALT=T). A missing sample column is a
// *ParseError; a missing or unsupported GT yields GenotypeInvalid.
func (r *Record) Genotype(sample int) (string, error) {
	if sample < 0 || sample >= len(r.Samples) {
		return "", &ParseError{
			Line:    r.Line,
			Message: fmt.Sprintf("no column for sample %d", sample),
		}
	}

	gt, ok := r.SampleValue(sample, "GT")
	if !ok {
		return GenotypeInvalid, nil
	}
	alleles, ok := DecodeGT(gt, r.Ref, r.Alt)
	if !ok {
		return GenotypeInvalid, nil
	}
	return alleles, nil
}

// DecodeGT maps a biallelic diploid GT token onto REF/ALT alleles.
// Both phased and unphased separators are accepted; allele order follows
// the token.
func DecodeGT(gt, ref, alt string) (string, bool) {
	switch gt {
	case "0/0", "0|0":
		return ref + ref, true
	case "0/1", "0|1":
		return ref + alt, true
	case "1/0", "1|0":
		return alt + ref, true
	case "1/1", "1|1":
		return alt + alt, true
	}
	return "", false
}

// IsPhased reports whether a GT token uses the phased separator.
func IsPhased(gt string) bool {
	return strings.Contains(gt, "|")
}

// NormalizeChrom returns the chromosome name without "chr" prefix.
func (r *Record) NormalizeChrom() string {
	if len(r.Chrom) > 3 && strings.EqualFold(r.Chrom[:3], "chr") {
		return r.Chrom[3:]
	}
	return r.Chrom
}
