package ports

// CategoryClassifier reports the Unicode general category of a single
// code point as a two-letter tag ("Ll", "Po", "Cc", ...). Implementations
// must be pure, total and deterministic over all valid scalar values;
// unassigned code points report "Cn".
type CategoryClassifier interface {
	CategoryOf(r rune) string
}
