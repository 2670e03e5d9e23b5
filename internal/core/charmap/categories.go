package charmap

// DisallowedCategories is the set of Unicode general category codes whose
// members are deleted when they have no entry in Canonical. Sc (currency
// symbols) and Zs (space separators) are deliberately not listed: the
// reference configuration leaves them untouched until the table covers
// them, so currency symbols and ordinary spaces pass through unchanged.
var DisallowedCategories = map[string]struct{}{
	"Cc": {},
	"Cf": {},
	"Mc": {},
	"Me": {},
	"Mn": {},
	"Pc": {},
	"Pd": {},
	"Pe": {},
	"Pf": {},
	"Pi": {},
	"Po": {},
	"Sm": {},
	"So": {},
	"Zl": {},
	"Zp": {},
}

// Disallowed reports whether the given general category code is filtered
// out by default.
func Disallowed(category string) bool {
	_, ok := DisallowedCategories[category]
	return ok
}

// Lookup returns the canonical replacement for r and whether r is a key in
// the mapping table. It never fails and is safe for concurrent use: the
// table is never mutated after package initialization.
func Lookup(r rune) (rune, bool) {
	repl, ok := Canonical[r]
	return repl, ok
}
