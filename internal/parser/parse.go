package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options configures dialect-specific behavior.
type Options struct {
	// SampleIndex selects the VCF sample column (0 = first sample).
	SampleIndex int
	// SampleName selects the VCF sample by header name; it takes
	// precedence over SampleIndex when set.
	SampleName string
}

// Result holds everything extracted from one input.
type Result struct {
	Format       Format
	Observations []Observation          // input order
	Skipped      []*MalformedLineError // lines dropped without aborting
	Samples      []string              // VCF sample names, if declared
	Sample       string                // VCF sample that was read
}

func (r *Result) skip(line int, reason string) {
	r.Skipped = append(r.Skipped, &MalformedLineError{
		Format: r.Format,
		Line:   line,
		Reason: reason,
	})
}

type dialectFunc func(raw []byte, opts Options, res *Result) error

var dialects = map[Format]dialectFunc{
	Format23andMe: parse23andMe,
	FormatCSV:     parseCSV,
	FormatVCF:     parseVCF,
}

// Parse extracts observations from raw file content. With FormatAuto the
// dialect is detected first. A recognized file without data lines yields
// an empty Result, not an error.
func Parse(raw []byte, format Format, opts Options) (*Result, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrEmptyInput
	}

	if format == "" || format == FormatAuto {
		detected, err := Detect(raw)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	parse, ok := dialects[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	res := &Result{Format: format}
	if err := parse(raw, opts, res); err != nil {
		return nil, err
	}
	return res, nil
}

// lineReader yields lines with their 1-based numbers.
type lineReader struct {
	reader     *bufio.Reader
	lineNumber int
}

func newLineReader(raw []byte) *lineReader {
	return &lineReader{reader: bufio.NewReader(bytes.NewReader(raw))}
}

// next returns the next line without its terminator; ok is false at the
// end of input.
func (lr *lineReader) next() (line string, ok bool, err error) {
	line, err = lr.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", false, fmt.Errorf("read line %d: %w", lr.lineNumber+1, err)
		}
		if line == "" {
			return "", false, nil
		}
	}
	lr.lineNumber++
	return strings.TrimRight(line, "\r\n"), true, nil
}

// parsePosition returns 0 for positions that are absent or not integers;
// position is informational only.
func parsePosition(s string) int64 {
	pos, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || pos < 0 {
		return 0
	}
	return pos
}
