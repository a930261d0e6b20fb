package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geniusdna/geniusdna/internal/interpret"
	"github.com/geniusdna/geniusdna/internal/parser"
	"github.com/geniusdna/geniusdna/internal/protocol"
	"github.com/geniusdna/geniusdna/internal/reference"
	"github.com/geniusdna/geniusdna/internal/risk"
)

func build(t *testing.T, pairs ...string) *Report {
	t.Helper()
	it := interpret.New(reference.Default())
	var all []*interpret.Interpretation
	for i := 0; i < len(pairs); i += 2 {
		all = append(all, it.Interpret(parser.Observation{Line: i/2 + 1, ID: pairs[i], Genotype: pairs[i+1]}))
	}
	return Assemble(risk.Aggregate(all), risk.SelectPriority(all), all)
}

func TestAssemble_Sections(t *testing.T) {
	r := build(t,
		"rs1801131", "AC",
		"rs99999999", "AA",
		"rs1801133", "TT",
		"rs7412", "XX",
		"rs1695", "AA",
	)

	require.Len(t, r.Sections, len(reference.Categories()))
	for i, c := range reference.Categories() {
		assert.Equal(t, c, r.Sections[i].Category)
		assert.Equal(t, c.Title(), r.Sections[i].Title)
		assert.NotNil(t, r.Sections[i].Interpretations)
	}

	meth, ok := r.Section(reference.Methylation)
	require.True(t, ok)
	require.Len(t, meth.Interpretations, 2)
	assert.Equal(t, "rs1801131", meth.Interpretations[0].ID(), "input order within a section")
	assert.Equal(t, "rs1801133", meth.Interpretations[1].ID())

	_, found := r.Find("rs99999999")
	assert.False(t, found, "unmatched are not listed")

	assert.Equal(t, 5, r.Source.Observations)
	assert.Equal(t, 4, r.Source.Matched)
	assert.Equal(t, 1, r.Source.Unmatched)
	assert.Equal(t, 1, r.Source.Invalid)

	require.Len(t, r.Priority, 1)
	assert.Equal(t, "rs1801133", r.Priority[0].ID())

	s, ok := r.Summary(reference.Methylation)
	require.True(t, ok)
	assert.Equal(t, 4, s.Score)
}

func TestAssemble_Empty(t *testing.T) {
	r := Assemble(risk.Aggregate(nil), risk.SelectPriority(nil), nil)

	assert.Empty(t, r.Priority)
	assert.NotNil(t, r.Priority)
	require.Len(t, r.Summaries, len(reference.Categories()))
	for _, s := range r.Summaries {
		assert.Equal(t, 0, s.Score)
		assert.Equal(t, risk.Low, s.Label)
	}
	for _, sec := range r.Sections {
		assert.Empty(t, sec.Interpretations)
	}
	assert.Zero(t, r.Source.Observations)
}

func TestAssemble_Protocols(t *testing.T) {
	r := build(t,
		"rs1801133", "TT",
		"rs99999999", "AA",
		"rs7412", "CC",
	)

	require.Len(t, r.Protocols, 2)
	assert.Equal(t, reference.Methylation, r.Protocols[0].Category)
	assert.Equal(t, protocol.High, r.Protocols[0].Priority)
	assert.Equal(t, reference.Aging, r.Protocols[1].Category)
	assert.Equal(t, protocol.Low, r.Protocols[1].Priority)

	empty := build(t)
	assert.NotNil(t, empty.Protocols)
	assert.Empty(t, empty.Protocols)
}
