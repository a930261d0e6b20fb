package refstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/geniusdna/geniusdna/internal/reference"
)

const selectDefinitions = `SELECT rsid, gene, category, risk_allele, normal_allele, description
	FROM variant_definitions`

// WriteDefinitions batch-inserts definitions using the Appender API.
// Duplicate IDs are written once; the first occurrence wins.
func (s *Store) WriteDefinitions(defs []*reference.Definition) error {
	if len(defs) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(defs))
	deduped := make([]*reference.Definition, 0, len(defs))
	for _, d := range defs {
		if !seen[d.ID] {
			seen[d.ID] = true
			deduped = append(deduped, d)
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var defApp, recApp *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		defApp, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "variant_definitions")
		if err != nil {
			return err
		}
		recApp, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "recommendations")
		return err
	}); err != nil {
		if defApp != nil {
			defApp.Close()
		}
		return fmt.Errorf("create appender: %w", err)
	}
	defer defApp.Close()
	defer recApp.Close()

	for _, d := range deduped {
		if err := defApp.AppendRow(
			d.ID, d.Gene, d.Category.String(), int64(d.Category),
			d.RiskAllele, d.NormalAllele, d.Description,
		); err != nil {
			return fmt.Errorf("append definition %s: %w", d.ID, err)
		}
		for i, rec := range d.Recommendations {
			if err := recApp.AppendRow(d.ID, int64(i), rec); err != nil {
				return fmt.Errorf("append recommendation %s/%d: %w", d.ID, i, err)
			}
		}
	}

	if err := defApp.Flush(); err != nil {
		return fmt.Errorf("flush definitions: %w", err)
	}
	if err := recApp.Flush(); err != nil {
		return fmt.Errorf("flush recommendations: %w", err)
	}
	return nil
}

// ClearDefinitions removes all stored definitions.
func (s *Store) ClearDefinitions() error {
	if _, err := s.db.Exec("DELETE FROM recommendations"); err != nil {
		return err
	}
	_, err := s.db.Exec("DELETE FROM variant_definitions")
	return err
}

// Count returns the number of stored definitions.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT count(*) FROM variant_definitions").Scan(&n); err != nil {
		return 0, fmt.Errorf("count definitions: %w", err)
	}
	return n, nil
}

// LookupDefinition returns the stored definition for a variant ID, or nil
// if there is none.
func (s *Store) LookupDefinition(id string) (*reference.Definition, error) {
	rows, err := s.db.Query(selectDefinitions+` WHERE rsid=?`, id)
	if err != nil {
		return nil, fmt.Errorf("query definition: %w", err)
	}
	defer rows.Close()

	defs, err := s.scanDefinitions(rows)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, nil
	}
	return defs[0], nil
}

// SearchByGene returns the definitions for a gene symbol, ordered by ID.
func (s *Store) SearchByGene(gene string) ([]*reference.Definition, error) {
	rows, err := s.db.Query(selectDefinitions+` WHERE gene=? ORDER BY rsid`, gene)
	if err != nil {
		return nil, fmt.Errorf("query by gene: %w", err)
	}
	defer rows.Close()

	return s.scanDefinitions(rows)
}

// SearchByCategory returns the definitions of one category, ordered by ID.
func (s *Store) SearchByCategory(c reference.Category) ([]*reference.Definition, error) {
	rows, err := s.db.Query(selectDefinitions+` WHERE category=? ORDER BY rsid`, c.String())
	if err != nil {
		return nil, fmt.Errorf("query by category: %w", err)
	}
	defer rows.Close()

	return s.scanDefinitions(rows)
}

// LoadTable builds a reference table from every stored definition.
func (s *Store) LoadTable() (*reference.Table, error) {
	rows, err := s.db.Query(selectDefinitions + ` ORDER BY category_order, rsid`)
	if err != nil {
		return nil, fmt.Errorf("query definitions: %w", err)
	}
	defer rows.Close()

	defs, err := s.scanDefinitions(rows)
	if err != nil {
		return nil, err
	}

	plain := make([]reference.Definition, len(defs))
	for i, d := range defs {
		plain[i] = *d
	}
	t, err := reference.New(plain)
	if err != nil {
		return nil, fmt.Errorf("build reference table: %w", err)
	}
	return t, nil
}

// scanDefinitions scans definition rows and attaches their
// recommendations. rows is fully consumed before recommendations are
// queried.
func (s *Store) scanDefinitions(rows *sql.Rows) ([]*reference.Definition, error) {
	var defs []*reference.Definition
	for rows.Next() {
		var d reference.Definition
		var category string
		if err := rows.Scan(&d.ID, &d.Gene, &category, &d.RiskAllele, &d.NormalAllele, &d.Description); err != nil {
			return nil, fmt.Errorf("scan definition: %w", err)
		}
		c, err := reference.ParseCategory(category)
		if err != nil {
			return nil, fmt.Errorf("definition %s: %w", d.ID, err)
		}
		d.Category = c
		defs = append(defs, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate definitions: %w", err)
	}
	rows.Close()

	for _, d := range defs {
		recs, err := s.recommendations(d.ID)
		if err != nil {
			return nil, err
		}
		d.Recommendations = recs
	}
	return defs, nil
}

func (s *Store) recommendations(id string) ([]string, error) {
	rows, err := s.db.Query(`SELECT text FROM recommendations WHERE rsid=? ORDER BY ordinal`, id)
	if err != nil {
		return nil, fmt.Errorf("query recommendations: %w", err)
	}
	defer rows.Close()

	var recs []string
	for rows.Next() {
		var rec string
		if err := rows.Scan(&rec); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recommendations: %w", err)
	}
	return recs, nil
}
