package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geniusdna/geniusdna/internal/interpret"
	"github.com/geniusdna/geniusdna/internal/parser"
	"github.com/geniusdna/geniusdna/internal/reference"
	"github.com/geniusdna/geniusdna/internal/report"
	"github.com/geniusdna/geniusdna/internal/risk"
)

// sampleReport builds a report from (rsid, genotype) pairs.
func sampleReport(t *testing.T, pairs ...string) *report.Report {
	t.Helper()
	require.Zero(t, len(pairs)%2)

	it := interpret.New(reference.Default())
	var all []*interpret.Interpretation
	for i := 0; i < len(pairs); i += 2 {
		all = append(all, it.Interpret(parser.Observation{
			Line:     i/2 + 1,
			ID:       pairs[i],
			Chrom:    "1",
			Pos:      int64(1000 + i),
			Genotype: pairs[i+1],
		}))
	}
	r := report.Assemble(risk.Aggregate(all), risk.SelectPriority(all), all)
	r.ID = "test-report"
	r.Source.Format = parser.Format23andMe
	return r
}

func TestTabWriter_WriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Flush())

	assert.Equal(t,
		"#rsid\tChromosome\tPosition\tGenotype\tGene\tCategory\tClassification\tScore\tRisk_allele\tNormal_allele\n",
		buf.String())
}

func TestTabWriter_Write_MTHFR(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	in := interpret.New(reference.Default()).Interpret(parser.Observation{
		ID:       "rs1801133",
		Chrom:    "1",
		Pos:      11856378,
		Genotype: "TT",
	})

	require.NoError(t, w.Write(in))
	require.NoError(t, w.Flush())

	fields := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\t")
	require.Len(t, fields, 10)
	assert.Equal(t, "rs1801133", fields[0])
	assert.Equal(t, "11856378", fields[2])
	assert.Equal(t, "TT", fields[3])
	assert.Equal(t, "MTHFR", fields[4])
	assert.Equal(t, "methylation", fields[5])
	assert.Equal(t, "at_risk", fields[6])
	assert.Equal(t, "3", fields[7])
	assert.Equal(t, "T", fields[8])
	assert.Equal(t, "C", fields[9])
}

func TestTabWriter_Write_Unmatched(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	in := interpret.New(reference.Default()).Interpret(parser.Observation{ID: "rs99999999", Genotype: "AA"})
	require.NoError(t, w.Write(in))
	require.NoError(t, w.Flush())

	assert.Equal(t, "rs99999999\t-\t-\tAA\t-\t-\tunmatched\t0\t-\t-\n", buf.String())
}

func TestTabWriter_WriteReport(t *testing.T) {
	r := sampleReport(t, "rs7412", "CC", "rs1801133", "CT", "rs99999999", "AA")

	var buf bytes.Buffer
	require.NoError(t, NewTabWriter(&buf).WriteReport(r))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3, "header plus matched rows")
	assert.True(t, strings.HasPrefix(lines[1], "rs1801133\t"), "methylation precedes aging")
	assert.True(t, strings.HasPrefix(lines[2], "rs7412\t"))
}
