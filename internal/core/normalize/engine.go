package normalize

import (
	"errors"
	"strings"

	"github.com/baditaflorin/go_text_normalizer/internal/core/charmap"
	"github.com/baditaflorin/go_text_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// EngineConfig holds the static data consulted for every rune. Both the
// table and the category set are fixed at construction and shared
// read-only by all calls, so one engine may serve any number of
// goroutines.
type EngineConfig struct {
	// Table maps a code point to its canonical replacement. A key here
	// always wins over category filtering.
	Table map[rune]rune
	// Disallowed lists the general category codes whose members are
	// deleted when they miss the table.
	Disallowed map[string]struct{}
}

// DefaultConfig returns the built-in mapping table and category set.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		Table:      charmap.Canonical,
		Disallowed: charmap.DisallowedCategories,
	}
}

// Validate checks if the configuration is valid.
func (c EngineConfig) Validate() error {
	if c.Table == nil {
		return errors.New("mapping table must not be nil")
	}
	if c.Disallowed == nil {
		return errors.New("disallowed category set must not be nil")
	}
	return nil
}

// Engine applies the per-rune normalization decision to input text.
type Engine struct {
	table      map[rune]rune
	disallowed map[string]struct{}
	classifier ports.CategoryClassifier
	logger     ports.Logger
}

// NewEngine creates a new normalization engine. The configured table and
// category set are copied so later mutation of the caller's maps cannot
// leak into a running engine.
func NewEngine(config EngineConfig, logger ports.Logger, classifier ports.CategoryClassifier) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if classifier == nil {
		return nil, errors.New("category classifier must not be nil")
	}

	table := make(map[rune]rune, len(config.Table))
	for k, v := range config.Table {
		table[k] = v
	}
	disallowed := make(map[string]struct{}, len(config.Disallowed))
	for k := range config.Disallowed {
		disallowed[k] = struct{}{}
	}

	return &Engine{
		table:      table,
		disallowed: disallowed,
		classifier: classifier,
		logger:     logger,
	}, nil
}

// ReplaceRune decides the outcome for a single rune: the replacement and
// true for a table hit or a pass-through, or false when the rune is
// dropped. The table is consulted before the classifier; that order is a
// contract, not a tuning knob: a mapped rune must survive even when its
// category is disallowed, and most normalizable runes resolve without
// paying for a category lookup at all.
func (e *Engine) ReplaceRune(r rune) (rune, bool) {
	if repl, ok := e.table[r]; ok {
		return repl, true
	}
	if _, drop := e.disallowed[e.classifier.CategoryOf(r)]; drop {
		return 0, false
	}
	return r, true
}

// Normalize applies the per-rune decision to every rune of text in input
// order and returns the transformed string. It is a pure function: no
// state survives the call and repeated calls yield identical results.
func (e *Engine) Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if out, keep := e.ReplaceRune(r); keep {
			sb.WriteRune(out)
		}
	}
	return sb.String()
}

// NormalizeDetailed normalizes text and reports per-rune statistics.
func (e *Engine) NormalizeDetailed(text string) domain.Result {
	if e.logger != nil {
		e.logger.Debug("Starting text normalization", "input_bytes", len(text))
	}

	details := make(map[string]interface{})

	var sb strings.Builder
	sb.Grow(len(text))
	var in, out, mapped, dropped int
	for _, r := range text {
		in++
		if repl, hit := e.table[r]; hit {
			sb.WriteRune(repl)
			out++
			if repl != r {
				mapped++
			}
			continue
		}
		if _, drop := e.disallowed[e.classifier.CategoryOf(r)]; drop {
			dropped++
			continue
		}
		sb.WriteRune(r)
		out++
	}

	normalized := sb.String()
	details["original_length"] = in
	details["normalized_length"] = out
	details["mapped"] = mapped
	details["dropped"] = dropped

	if e.logger != nil {
		e.logger.Debug("Computed normalization",
			"original_length", in,
			"normalized_length", out,
			"mapped", mapped,
			"dropped", dropped,
		)
	}

	return domain.Result{
		Name:             "unicode_normalization",
		Normalized:       normalized,
		OriginalLength:   in,
		NormalizedLength: out,
		Mapped:           mapped,
		Dropped:          dropped,
		Changed:          normalized != text,
		Details:          details,
	}
}
