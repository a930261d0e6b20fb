// Package parser turns raw genotype files into ordered observations.
//
// Three dialects are understood: 23andMe raw data (whitespace separated),
// a four-column CSV export, and VCF. With FormatAuto the dialect is chosen
// by an ordered list of sniffers; the first one that matches wins.
package parser

import (
	"fmt"
	"strings"
)

// Format identifies an input dialect.
type Format string

// Supported formats.
const (
	FormatAuto    Format = "auto"
	Format23andMe Format = "23andme"
	FormatCSV     Format = "csv"
	FormatVCF     Format = "vcf"
)

// ParseFormat parses a format name. An empty name means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "23andme":
		return Format23andMe, nil
	case "csv":
		return FormatCSV, nil
	case "vcf":
		return FormatVCF, nil
	}
	return "", fmt.Errorf("%w: %q (want auto, 23andme, csv or vcf)", ErrUnsupportedFormat, s)
}

func (f Format) String() string {
	return string(f)
}
