package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned for zero-length or whitespace-only content.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnsupportedFormat is returned when no dialect recognizes the content.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// MalformedLineError describes a line that was skipped. It is recorded in
// Result.Skipped and never aborts parsing.
type MalformedLineError struct {
	Format Format
	Line   int
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s line %d: %s", e.Format, e.Line, e.Reason)
}

// SampleError is returned when the requested VCF sample is not declared
// in the header.
type SampleError struct {
	Name      string
	Index     int
	Available []string
}

func (e *SampleError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("sample %q not found in VCF header (available: %v)", e.Name, e.Available)
	}
	return fmt.Sprintf("sample index %d out of range (VCF declares %d samples)", e.Index, len(e.Available))
}
