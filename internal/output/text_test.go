package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextWriter_Sections(t *testing.T) {
	r := sampleReport(t, "rs1801133", "TT", "rs762551", "CC", "rs7412", "CC")

	var buf bytes.Buffer
	require.NoError(t, NewTextWriter(&buf).WriteReport(r))
	out := buf.String()

	headers := []string{
		"GENIUSDNA AI LONGEVITY ENGINE",
		"RISK SUMMARY",
		"PRIORITY RECOMMENDATIONS",
		"DETAILED RESULTS",
		"[Detoxification]",
		"[Methylation]",
		"[Aging & Longevity]",
		"HEALTH PROTOCOLS",
		"[Detoxification] priority HIGH",
		"[Methylation] priority HIGH",
		"[Aging & Longevity] priority LOW",
		"not a medical diagnosis",
	}
	last := -1
	for _, h := range headers {
		idx := strings.Index(out, h)
		require.GreaterOrEqual(t, idx, 0, "missing %q", h)
		assert.Greater(t, idx, last, "%q out of order", h)
		last = idx
	}

	assert.Contains(t, out, "HIGH PRIORITY: MTHFR (rs1801133) TT")
	assert.Contains(t, out, "HIGH PRIORITY: CYP1A2 (rs762551) CC")
	assert.Contains(t, out, "methylfolate")
	assert.Contains(t, out, "APOE rs7412: CC -> Normal")
}

func TestTextWriter_NoPriority(t *testing.T) {
	r := sampleReport(t, "rs7412", "CC")

	var buf bytes.Buffer
	require.NoError(t, NewTextWriter(&buf).WriteReport(r))

	assert.Contains(t, buf.String(), "No high-priority findings.")
	assert.NotContains(t, buf.String(), "HIGH PRIORITY:")
}

func TestTextWriter_ProtocolGroups(t *testing.T) {
	r := sampleReport(t, "rs1695", "GG")

	var buf bytes.Buffer
	require.NoError(t, NewTextWriter(&buf).WriteReport(r))
	out := buf.String()

	protocols := out[strings.Index(out, "HEALTH PROTOCOLS"):]
	assert.Contains(t, protocols, "Supplements:\n"+
		"    - Support glutathione production with sulfur-rich foods (garlic, onions, cruciferous vegetables)\n"+
		"    - Consider N-acetylcysteine (NAC) supplementation\n")
	assert.Contains(t, protocols, "Lifestyle:\n    - Minimize exposure to environmental toxins and smoke")
	assert.NotContains(t, protocols, "Diet:")
}

func TestTextWriter_NoProtocols(t *testing.T) {
	r := sampleReport(t, "rs99999999", "TT")

	var buf bytes.Buffer
	require.NoError(t, NewTextWriter(&buf).WriteReport(r))
	assert.Contains(t, buf.String(), "HEALTH PROTOCOLS\n----------------\n  No reference variants found.")
}

func TestJSONWriter(t *testing.T) {
	r := sampleReport(t, "rs1801133", "CT")

	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter(&buf).WriteReport(r))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "test-report", decoded["id"])

	summaries, ok := decoded["summaries"].([]any)
	require.True(t, ok)
	require.Len(t, summaries, 7)
	meth := summaries[1].(map[string]any)
	assert.Equal(t, "methylation", meth["category"])
	assert.Equal(t, float64(1), meth["score"])
	assert.Equal(t, "moderate", meth["label"])

	protocols, ok := decoded["protocols"].([]any)
	require.True(t, ok)
	require.Len(t, protocols, 1)
	assert.Equal(t, "methylation", protocols[0].(map[string]any)["category"])
	assert.Equal(t, "low", protocols[0].(map[string]any)["priority"])
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	for _, name := range Names {
		w, err := NewWriter(name, &buf)
		require.NoError(t, err, name)
		assert.NotNil(t, w)
	}

	w, err := NewWriter("", &buf)
	require.NoError(t, err)
	assert.IsType(t, &TextWriter{}, w)

	_, err = NewWriter("pdf", &buf)
	assert.Error(t, err)
}
