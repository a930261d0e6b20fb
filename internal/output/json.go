package output

import (
	"encoding/json"
	"io"

	"github.com/geniusdna/geniusdna/internal/report"
)

// JSONWriter writes a report as indented JSON.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteReport encodes the report followed by a newline.
func (jw *JSONWriter) WriteReport(r *report.Report) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
