// Package reference provides the curated table of known variants.
package reference

import (
	"fmt"
	"strings"
)

// Category is a health domain used to group variants and aggregate risk.
// The set is closed: adding a category means extending the constants below.
type Category int

// Categories in report order.
const (
	Detoxification Category = iota
	Methylation
	VitaminD
	FatMetabolism
	Mitochondrial
	Cognitive
	Aging

	numCategories
)

var categoryNames = [numCategories]string{
	Detoxification: "detoxification",
	Methylation:    "methylation",
	VitaminD:       "vitamin_d",
	FatMetabolism:  "fat_metabolism",
	Mitochondrial:  "mitochondrial",
	Cognitive:      "cognitive",
	Aging:          "aging",
}

var categoryTitles = [numCategories]string{
	Detoxification: "Detoxification",
	Methylation:    "Methylation",
	VitaminD:       "Vitamin D Metabolism",
	FatMetabolism:  "Fat Metabolism",
	Mitochondrial:  "Mitochondrial Function",
	Cognitive:      "Cognitive Traits",
	Aging:          "Aging & Longevity",
}

// Categories returns every category in enumeration order.
func Categories() []Category {
	cats := make([]Category, numCategories)
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}

// Valid reports whether c is a member of the enumeration.
func (c Category) Valid() bool {
	return c >= 0 && c < numCategories
}

// String returns the machine-readable category name (e.g. "vitamin_d").
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// Title returns the human-readable category name used in reports.
func (c Category) Title() string {
	if !c.Valid() {
		return c.String()
	}
	return categoryTitles[c]
}

// ParseCategory returns the category with the given machine-readable name.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// MarshalText encodes the category as its machine-readable name.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a machine-readable category name.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
