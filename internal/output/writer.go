package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/geniusdna/geniusdna/internal/report"
)

// ReportWriter renders a whole report.
type ReportWriter interface {
	WriteReport(r *report.Report) error
}

// Names lists the renderer names accepted by NewWriter.
var Names = []string{"text", "json", "tab"}

// NewWriter returns the renderer with the given name.
func NewWriter(name string, w io.Writer) (ReportWriter, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return NewTextWriter(w), nil
	case "json":
		return NewJSONWriter(w), nil
	case "tab":
		return NewTabWriter(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q (want %s)", name, strings.Join(Names, ", "))
}
