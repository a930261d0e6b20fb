package reference

import (
	"fmt"
	"sort"
	"sync"
)

// Definition describes one known variant. Definitions are read-only once a
// Table has been built from them.
type Definition struct {
	ID              string   `json:"rsid"`
	Gene            string   `json:"gene"`
	Category        Category `json:"category"`
	RiskAllele      string   `json:"risk_allele"`
	NormalAllele    string   `json:"normal_allele"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

// DefinitionConflictError is returned when two definitions share an ID.
type DefinitionConflictError struct {
	ID string
}

func (e *DefinitionConflictError) Error() string {
	return fmt.Sprintf("duplicate reference definition for %s", e.ID)
}

// InvalidDefinitionError is returned for a definition that cannot be used
// for genotype comparison.
type InvalidDefinitionError struct {
	ID     string
	Reason string
}

func (e *InvalidDefinitionError) Error() string {
	return fmt.Sprintf("invalid reference definition %q: %s", e.ID, e.Reason)
}

// Table is an immutable index of Definitions keyed by variant ID.
// It is safe for concurrent readers.
type Table struct {
	byID       map[string]*Definition
	byCategory [numCategories][]*Definition
	ordered    []*Definition
}

// New builds a table from defs. Definitions are copied; the caller keeps
// ownership of the slice.
func New(defs []Definition) (*Table, error) {
	t := &Table{
		byID: make(map[string]*Definition, len(defs)),
	}

	for i := range defs {
		d := defs[i]
		if err := validate(&d); err != nil {
			return nil, err
		}
		if _, ok := t.byID[d.ID]; ok {
			return nil, &DefinitionConflictError{ID: d.ID}
		}
		t.byID[d.ID] = &d
		t.ordered = append(t.ordered, &d)
	}

	sort.SliceStable(t.ordered, func(i, j int) bool {
		a, b := t.ordered[i], t.ordered[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.ID < b.ID
	})
	for _, d := range t.ordered {
		t.byCategory[d.Category] = append(t.byCategory[d.Category], d)
	}

	return t, nil
}

func validate(d *Definition) error {
	if d.ID == "" {
		return &InvalidDefinitionError{ID: d.ID, Reason: "empty id"}
	}
	if !d.Category.Valid() {
		return &InvalidDefinitionError{ID: d.ID, Reason: fmt.Sprintf("unknown category %d", int(d.Category))}
	}
	if !isBase(d.RiskAllele) {
		return &InvalidDefinitionError{ID: d.ID, Reason: fmt.Sprintf("risk allele %q is not a single base", d.RiskAllele)}
	}
	if !isBase(d.NormalAllele) {
		return &InvalidDefinitionError{ID: d.ID, Reason: fmt.Sprintf("normal allele %q is not a single base", d.NormalAllele)}
	}
	if d.RiskAllele == d.NormalAllele {
		return &InvalidDefinitionError{ID: d.ID, Reason: "risk and normal alleles are identical"}
	}
	return nil
}

func isBase(s string) bool {
	if len(s) != 1 {
		return false
	}
	switch s[0] {
	case 'A', 'C', 'G', 'T':
		return true
	}
	return false
}

// Lookup returns the definition for a variant ID.
func (t *Table) Lookup(id string) (*Definition, bool) {
	d, ok := t.byID[id]
	return d, ok
}

// Len returns the number of definitions in the table.
func (t *Table) Len() int {
	return len(t.ordered)
}

// Definitions returns all definitions ordered by category, then ID.
func (t *Table) Definitions() []*Definition {
	out := make([]*Definition, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// ByCategory returns the definitions of one category ordered by ID.
func (t *Table) ByCategory(c Category) []*Definition {
	if !c.Valid() {
		return nil
	}
	out := make([]*Definition, len(t.byCategory[c]))
	copy(out, t.byCategory[c])
	return out
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table built from the curated dataset. It is built on
// first use and panics if the dataset is inconsistent.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := New(builtin)
		if err != nil {
			panic(fmt.Sprintf("reference: built-in dataset: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}
