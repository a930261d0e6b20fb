// Package vcf provides VCF file parsing functionality.
package vcf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// minDataColumns is the fixed-column count of a VCF data line
// (CHROM through INFO).
const minDataColumns = 8

// Parser reads records from VCF content.
type Parser struct {
	reader      *bufio.Reader
	lineNumber  int
	header      []string
	sampleNames []string // sample names from #CHROM header line
	pending     string   // first data line seen while reading the header
	hasPending  bool
}

// NewParser creates a parser and consumes the header. Content without a
// #CHROM line is accepted; it simply declares no sample names.
func NewParser(r io.Reader) (*Parser, error) {
	p := &Parser{
		reader: bufio.NewReader(r),
	}

	if err := p.parseHeader(); err != nil {
		return nil, err
	}

	return p, nil
}

// readLine returns the next line without its terminator.
// ok is false at end of input.
func (p *Parser) readLine() (line string, ok bool, err error) {
	if p.hasPending {
		p.hasPending = false
		return p.pending, true, nil
	}

	line, err = p.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", false, fmt.Errorf("read line: %w", err)
		}
		if line == "" {
			return "", false, nil
		}
	}
	p.lineNumber++

	return strings.TrimRight(line, "\r\n"), true, nil
}

// parseHeader reads and stores VCF header lines.
func (p *Parser) parseHeader() error {
	for {
		line, ok, err := p.readLine()
		if err != nil {
			return fmt.Errorf("read header: %w", err)
		}
		if !ok {
			return nil
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, "##") {
			p.header = append(p.header, line)
			continue
		}

		if len(line) >= 6 && strings.EqualFold(line[:6], "#CHROM") {
			p.header = append(p.header, line)
			// Extract sample names from columns after FORMAT (index 9+)
			fields := strings.Split(line, "\t")
			if len(fields) > 9 {
				p.sampleNames = fields[9:]
			}
			return nil
		}

		if strings.HasPrefix(line, "#") {
			p.header = append(p.header, line)
			continue
		}

		// Data before #CHROM: keep it for the first call to Next.
		p.pending = line
		p.hasPending = true
		return nil
	}
}

// Next reads the next record.
// Returns nil, nil when there are no more records. A *ParseError describes
// a malformed line; the parser stays usable and Next may be called again.
func (p *Parser) Next() (*Record, error) {
	for {
		line, ok, err := p.readLine()
		if err != nil {
			return nil, fmt.Errorf("read record line: %w", err)
		}
		if !ok {
			return nil, nil
		}

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		return p.parseLine(line)
	}
}

// parseLine parses a single VCF data line into a Record.
func (p *Parser) parseLine(line string) (*Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < minDataColumns {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("expected at least %d columns, found %d", minDataColumns, len(fields)),
		}
	}

	pos, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("invalid position: %s", fields[1]),
		}
	}

	r := &Record{
		Line:  p.lineNumber,
		Chrom: fields[0],
		Pos:   pos,
		ID:    fields[2],
		Ref:   fields[3],
		Alt:   fields[4],
	}

	// Capture FORMAT + sample columns if present
	if len(fields) > minDataColumns {
		r.Format = strings.Split(fields[8], ":")
		r.Samples = fields[9:]
	}

	return r, nil
}

// Header returns the VCF header lines.
func (p *Parser) Header() []string {
	return p.header
}

// SampleNames returns sample names from the #CHROM header line.
// Returns nil if no sample columns are present.
func (p *Parser) SampleNames() []string {
	return p.sampleNames
}

// SampleIndex returns the column index of a named sample.
func (p *Parser) SampleIndex(name string) (int, bool) {
	for i, s := range p.sampleNames {
		if s == name {
			return i, true
		}
	}
	return -1, false
}

// ParseError represents an error during VCF parsing with line context.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vcf parse error at line %d: %s", e.Line, e.Message)
}
