package domain

// Result holds the outcome of a normalization with per-rune statistics.
type Result struct {
	Name             string
	Normalized       string
	OriginalLength   int
	NormalizedLength int
	Mapped           int
	Dropped          int
	Changed          bool
	Details          map[string]interface{}
}
