package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/geniusdna/geniusdna/internal/vcf"
)

// parse23andMe reads whitespace-separated raw data:
// rsid, chromosome, position, genotype. Lines holding just rsid and
// genotype are accepted too.
func parse23andMe(raw []byte, _ Options, res *Result) error {
	lr := newLineReader(raw)
	for {
		line, ok, err := lr.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Fields(trimmed)
		// Some exports carry the column names as a plain row.
		if strings.EqualFold(fields[0], "rsid") {
			continue
		}
		switch {
		case len(fields) >= 4:
			res.Observations = append(res.Observations,
				newObservation(lr.lineNumber, fields[0], fields[1], parsePosition(fields[2]), fields[3], fields[3]))
		case len(fields) == 2:
			// Short form: rsid and genotype only.
			res.Observations = append(res.Observations,
				newObservation(lr.lineNumber, fields[0], "", 0, fields[1], fields[1]))
		default:
			res.skip(lr.lineNumber, fmt.Sprintf("expected 4 fields, found %d", len(fields)))
		}
	}
}

// csvColumns holds the indices of the required CSV columns.
type csvColumns struct {
	ID         int
	Chromosome int
	Position   int
	Genotype   int
}

var positionalColumns = csvColumns{ID: 0, Chromosome: 1, Position: 2, Genotype: 3}

func (c csvColumns) width() int {
	return max(c.ID, c.Chromosome, c.Position, c.Genotype) + 1
}

// csvHeaderColumns locates the required columns in a header record.
func csvHeaderColumns(header []string) (csvColumns, bool) {
	cols := csvColumns{ID: -1, Chromosome: -1, Position: -1, Genotype: -1}
	for i, name := range header {
		switch strings.ToLower(unquote(name)) {
		case "rsid":
			cols.ID = i
		case "chromosome":
			cols.Chromosome = i
		case "position":
			cols.Position = i
		case "genotype":
			cols.Genotype = i
		}
	}
	ok := cols.ID >= 0 && cols.Chromosome >= 0 && cols.Position >= 0 && cols.Genotype >= 0
	return cols, ok
}

func unquote(field string) string {
	return strings.Trim(strings.TrimSpace(field), `"`)
}

func blankRecord(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// parseCSV reads a comma-separated export. The first non-comment record is
// the header; when it names the four columns their positions are used.
// Quoted fields may contain commas.
func parseCSV(raw []byte, _ Options, res *Result) error {
	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	cols := positionalColumns
	headerSeen := false

	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				res.skip(perr.StartLine, perr.Err.Error())
				continue
			}
			return fmt.Errorf("read csv: %w", err)
		}
		if blankRecord(record) {
			continue
		}
		line, _ := cr.FieldPos(0)

		if !headerSeen {
			headerSeen = true
			if c, ok := csvHeaderColumns(record); ok {
				cols = c
			}
			continue
		}

		if len(record) < cols.width() {
			res.skip(line, fmt.Sprintf("expected %d columns, found %d", cols.width(), len(record)))
			continue
		}

		genotype := unquote(record[cols.Genotype])
		res.Observations = append(res.Observations, newObservation(
			line,
			unquote(record[cols.ID]),
			unquote(record[cols.Chromosome]),
			parsePosition(unquote(record[cols.Position])),
			genotype, genotype))
	}
}

// parseVCF reads one sample's genotypes from a VCF.
func parseVCF(raw []byte, opts Options, res *Result) error {
	p, err := vcf.NewParser(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("read vcf header: %w", err)
	}

	sample, err := selectSample(p, opts)
	if err != nil {
		return err
	}
	res.Samples = p.SampleNames()
	if sample < len(res.Samples) {
		res.Sample = res.Samples[sample]
	}

	for {
		rec, err := p.Next()
		if err != nil {
			var perr *vcf.ParseError
			if errors.As(err, &perr) {
				res.skip(perr.Line, perr.Message)
				continue
			}
			return err
		}
		if rec == nil {
			return nil
		}

		if rec.IsMultiAllelic() {
			res.skip(rec.Line, fmt.Sprintf("multi-allelic ALT %q not supported", rec.Alt))
			continue
		}

		alleles, err := rec.Genotype(sample)
		if err != nil {
			var perr *vcf.ParseError
			if errors.As(err, &perr) {
				res.skip(perr.Line, perr.Message)
				continue
			}
			return err
		}

		gt, _ := rec.SampleValue(sample, "GT")
		res.Observations = append(res.Observations,
			newObservation(rec.Line, rec.ID, rec.NormalizeChrom(), rec.Pos, gt, alleles))
	}
}

// selectSample resolves Options to a sample column index.
func selectSample(p *vcf.Parser, opts Options) (int, error) {
	names := p.SampleNames()

	if opts.SampleName != "" {
		idx, ok := p.SampleIndex(opts.SampleName)
		if !ok {
			return 0, &SampleError{Name: opts.SampleName, Index: -1, Available: names}
		}
		return idx, nil
	}

	if opts.SampleIndex < 0 || (len(names) > 0 && opts.SampleIndex >= len(names)) {
		return 0, &SampleError{Index: opts.SampleIndex, Available: names}
	}
	return opts.SampleIndex, nil
}
