// normalizer.go
// Package textnormalizer canonicalizes "look-alike" Unicode punctuation and
// symbols onto one representative character each and deletes characters
// belonging to a configured set of disallowed Unicode general categories.
// The per-character rule, applied in this order, is:
//
//  1. a character with an entry in the mapping table becomes its
//     canonical replacement (mapping always wins);
//  2. otherwise, a character whose general category is disallowed is
//     dropped;
//  3. otherwise, the character passes through unchanged.
//
// Normalization is pure and deterministic: the mapping table and category
// set are fixed at construction, the output is never longer than the
// input, and a normalizer may be shared by any number of goroutines.
//
// This package offers the convenience surface; pkg/normalizer and
// pkg/streaming expose the full functional-options API.
package textnormalizer

import (
	"sync"

	"github.com/baditaflorin/go_text_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_text_normalizer/pkg/normalizer"
	"github.com/baditaflorin/l"
)

// TextNormalizer provides methods to normalize Unicode text using the
// built-in mapping table and disallowed category set.
type TextNormalizer struct {
	inner *normalizer.Normalizer
}

// Option defines a functional option for configuring the normalizer.
type Option func(*options)

type options struct {
	opts []normalizer.Option
}

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(o *options) {
		o.opts = append(o.opts, normalizer.WithLogger(logger))
	}
}

// WithTableOverrides layers extra mapping entries over the built-in table.
func WithTableOverrides(overrides map[rune]rune) Option {
	return func(o *options) {
		o.opts = append(o.opts, normalizer.WithTableOverrides(overrides))
	}
}

// WithFastNormalizer selects the precomputed-ASCII normalization strategy.
func WithFastNormalizer() Option {
	return func(o *options) {
		o.opts = append(o.opts, normalizer.WithFastNormalizer())
	}
}

// New creates a new TextNormalizer with the provided functional options.
// If no logger is provided, a default logger is created.
func New(opts ...Option) (*TextNormalizer, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	inner, err := normalizer.New(o.opts...)
	if err != nil {
		return nil, err
	}
	return &TextNormalizer{inner: inner}, nil
}

// Normalize returns the normalized form of text.
func (tn *TextNormalizer) Normalize(text string) string {
	return tn.inner.Normalize(text)
}

// NormalizeDetailed normalizes text and reports per-rune statistics.
func (tn *TextNormalizer) NormalizeDetailed(text string) domain.Result {
	return tn.inner.NormalizeDetailed(text)
}

var (
	defaultOnce       sync.Once
	defaultNormalizer *TextNormalizer
	defaultErr        error
)

// NormalizeWithDefaults normalizes text with the built-in configuration.
// The shared instance is created on first use; creation failure (a logger
// that cannot be constructed) panics, since no configuration was given to
// fall back to.
func NormalizeWithDefaults(text string) string {
	defaultOnce.Do(func() {
		defaultNormalizer, defaultErr = New()
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultNormalizer.Normalize(text)
}
