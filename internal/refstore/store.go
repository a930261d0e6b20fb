// Package refstore exports the reference table to DuckDB and reads it
// back. Definitions live in variant_definitions; their recommendation
// lists live in recommendations, keyed by rsid and ordinal.
package refstore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection holding variant definitions.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// OpenReadOnly opens an existing database without creating or altering
// anything in it. The file must already hold the definition tables.
func OpenReadOnly(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("open duckdb: read-only store needs a path")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	db, err := sql.Open("duckdb", path+"?access_mode=read_only")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.checkSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database path; empty for in-memory stores.
func (s *Store) Path() string {
	return s.path
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS variant_definitions (
		rsid VARCHAR PRIMARY KEY,
		gene VARCHAR,
		category VARCHAR,
		category_order BIGINT,
		risk_allele VARCHAR,
		normal_allele VARCHAR,
		description VARCHAR
	)`); err != nil {
		return err
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS recommendations (
		rsid VARCHAR,
		ordinal BIGINT,
		text VARCHAR,
		PRIMARY KEY (rsid, ordinal)
	)`)
	return err
}

// checkSchema verifies that both definition tables exist.
func (s *Store) checkSchema() error {
	for _, table := range []string{"variant_definitions", "recommendations"} {
		var n int
		err := s.db.QueryRow(
			`SELECT count(*) FROM information_schema.tables WHERE table_name = ?`, table,
		).Scan(&n)
		if err != nil {
			return fmt.Errorf("check schema: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("%s is not a reference export: missing table %s", s.path, table)
		}
	}
	return nil
}
