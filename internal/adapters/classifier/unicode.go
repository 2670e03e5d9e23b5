// Package classifier provides the Unicode general category collaborator
// used by the normalization engine. It does not classify anything itself:
// it answers from the range tables of the platform's Unicode character
// database.
package classifier

import (
	"sort"
	"unicode"

	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// UCDClassifier reports the general category of a code point from the
// unicode package's category range tables.
type UCDClassifier struct {
	names  []string
	tables []*unicode.RangeTable
}

// NewUCDClassifier creates a classifier over the full set of two-letter
// general categories. The category list is sorted once at construction so
// lookups are deterministic.
func NewUCDClassifier() ports.CategoryClassifier {
	names := make([]string, 0, len(unicode.Categories))
	for name := range unicode.Categories {
		// Skip the one-letter aggregates (C, L, M, N, P, S, Z).
		if len(name) == 2 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	tables := make([]*unicode.RangeTable, len(names))
	for i, name := range names {
		tables[i] = unicode.Categories[name]
	}

	return &UCDClassifier{names: names, tables: tables}
}

// CategoryOf returns the two-letter general category of r. Every assigned
// code point belongs to exactly one category; unassigned code points
// report "Cn". The function is total: it cannot fail for any rune.
func (c *UCDClassifier) CategoryOf(r rune) string {
	for i, table := range c.tables {
		if unicode.Is(table, r) {
			return c.names[i]
		}
	}
	return "Cn"
}
