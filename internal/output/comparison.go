package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/geniusdna/geniusdna/internal/compare"
)

// ComparisonNames lists the formats accepted by WriteComparison.
var ComparisonNames = []string{"text", "json"}

// WriteComparison renders a sample comparison as text or JSON.
func WriteComparison(w io.Writer, format string, c *compare.Comparison) error {
	switch strings.ToLower(format) {
	case "", "text":
		return writeComparisonText(w, c)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}
	return fmt.Errorf("unknown comparison format %q (want %s)", format, strings.Join(ComparisonNames, ", "))
}

func writeComparisonText(w io.Writer, c *compare.Comparison) error {
	bw := bufio.NewWriter(w)
	title := "SAMPLE COMPARISON"
	fmt.Fprintf(bw, "%s\n%s\n", title, strings.Repeat("-", len(title)))
	fmt.Fprintf(bw, "Samples: %s\n", strings.Join(c.Samples, ", "))

	fmt.Fprintf(bw, "\nShared risk variants (%d samples):\n", len(c.Samples))
	writeVariants(bw, c.Shared)

	for _, name := range c.Samples {
		fmt.Fprintf(bw, "\nNot shared by every sample, carried by %s:\n", name)
		writeVariants(bw, c.Unique[name])
	}
	return bw.Flush()
}

func writeVariants(w io.Writer, vs []compare.Variant) {
	if len(vs) == 0 {
		fmt.Fprintln(w, "  none")
		return
	}
	for _, v := range vs {
		fmt.Fprintf(w, "  %s %s (%s)\n", v.Gene, v.ID, v.Category.Title())
	}
}
