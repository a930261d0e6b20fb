package parser

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
)

// sniffWindow is how many non-blank leading lines the sniffers look at.
const sniffWindow = 50

// sniffer recognizes one dialect from the leading lines of a file.
// Lines handed to match are non-blank and lower-cased.
type sniffer struct {
	format Format
	match  func(lines []string) bool
}

// sniffers are tried in order; the first match wins.
var sniffers = []sniffer{
	{FormatVCF, looksLikeVCF},
	{FormatCSV, looksLikeCSV},
	{Format23andMe, looksLike23andMe},
}

// Detect returns the dialect of raw content.
func Detect(raw []byte) (Format, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if len(bytes.TrimSpace(raw)) == 0 {
		return "", ErrEmptyInput
	}

	lines := headLines(raw, sniffWindow)
	for _, s := range sniffers {
		if s.match(lines) {
			return s.format, nil
		}
	}
	return "", ErrUnsupportedFormat
}

// headLines returns up to n non-blank lines, trimmed and lower-cased.
func headLines(raw []byte, n int) []string {
	var lines []string
	for len(raw) > 0 && len(lines) < n {
		var line []byte
		if i := bytes.IndexByte(raw, '\n'); i >= 0 {
			line, raw = raw[:i], raw[i+1:]
		} else {
			line, raw = raw, nil
		}
		trimmed := strings.TrimSpace(string(line))
		if trimmed == "" {
			continue
		}
		lines = append(lines, strings.ToLower(trimmed))
	}
	return lines
}

func looksLikeVCF(lines []string) bool {
	for _, l := range lines {
		if strings.HasPrefix(l, "##fileformat=vcf") || strings.HasPrefix(l, "#chrom") {
			return true
		}
	}
	return false
}

func looksLikeCSV(lines []string) bool {
	for _, l := range lines {
		if strings.HasPrefix(l, "#") {
			continue
		}
		_, ok := csvHeaderColumns(strings.Split(l, ","))
		return ok
	}
	return false
}

// variantIDPattern matches rsIDs and 23andMe internal IDs, lower-cased.
var variantIDPattern = regexp.MustCompile(`^(rs|i)\d+$`)

// looksLike23andMe accepts a leading comment block followed by a data row,
// or a file that is nothing but comments and a column-name row.
func looksLike23andMe(lines []string) bool {
	preamble := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "#") {
			preamble++
			continue
		}
		fields := strings.Fields(l)
		if fields[0] == "rsid" {
			preamble++
			continue
		}
		return looksLike23andMeRow(fields)
	}
	return preamble > 0
}

// looksLike23andMeRow requires a variant ID followed by either a bare
// genotype or chromosome, numeric position and genotype.
func looksLike23andMeRow(fields []string) bool {
	if !variantIDPattern.MatchString(fields[0]) {
		return false
	}
	switch {
	case len(fields) == 2:
		return true
	case len(fields) >= 4:
		_, err := strconv.ParseInt(fields[2], 10, 64)
		return err == nil
	}
	return false
}
