package refstore

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/geniusdna/geniusdna/internal/reference"
)

// recommendationSep joins recommendation lists in CSV exports.
const recommendationSep = " | "

// csvDefinition is one row of a CSV export.
type csvDefinition struct {
	ID              string `csv:"rsid"`
	Gene            string `csv:"gene"`
	Category        string `csv:"category"`
	RiskAllele      string `csv:"risk_allele"`
	NormalAllele    string `csv:"normal_allele"`
	Description     string `csv:"description"`
	Recommendations string `csv:"recommendations"`
}

// WriteCSV writes definitions as CSV with a header row.
func WriteCSV(w io.Writer, defs []*reference.Definition) error {
	rows := make([]*csvDefinition, len(defs))
	for i, d := range defs {
		rows[i] = &csvDefinition{
			ID:              d.ID,
			Gene:            d.Gene,
			Category:        d.Category.String(),
			RiskAllele:      d.RiskAllele,
			NormalAllele:    d.NormalAllele,
			Description:     d.Description,
			Recommendations: strings.Join(d.Recommendations, recommendationSep),
		}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// ReadCSV reads definitions written by WriteCSV.
func ReadCSV(r io.Reader) ([]reference.Definition, error) {
	var rows []*csvDefinition
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	defs := make([]reference.Definition, 0, len(rows))
	for i, row := range rows {
		c, err := reference.ParseCategory(row.Category)
		if err != nil {
			return nil, fmt.Errorf("csv row %d (%s): %w", i+2, row.ID, err)
		}
		var recs []string
		for _, rec := range strings.Split(row.Recommendations, recommendationSep) {
			if rec = strings.TrimSpace(rec); rec != "" {
				recs = append(recs, rec)
			}
		}
		defs = append(defs, reference.Definition{
			ID:              row.ID,
			Gene:            row.Gene,
			Category:        c,
			RiskAllele:      row.RiskAllele,
			NormalAllele:    row.NormalAllele,
			Description:     row.Description,
			Recommendations: recs,
		})
	}
	return defs, nil
}

// WriteJSON writes definitions as an indented JSON array.
func WriteJSON(w io.Writer, defs []*reference.Definition) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(defs); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// ReadJSON reads definitions written by WriteJSON.
func ReadJSON(r io.Reader) ([]reference.Definition, error) {
	var defs []reference.Definition
	if err := json.NewDecoder(r).Decode(&defs); err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	return defs, nil
}
