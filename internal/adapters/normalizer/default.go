package normalizer

import (
	"github.com/baditaflorin/go_text_normalizer/internal/adapters/classifier"
	"github.com/baditaflorin/go_text_normalizer/internal/core/normalize"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// DefaultNormalizer implements the default normalization strategy: every
// rune goes through the engine's table-then-category decision.
type DefaultNormalizer struct {
	engine *normalize.Engine
}

// NewDefaultNormalizer creates a default normalizer over the built-in
// mapping table and the platform category classifier.
func NewDefaultNormalizer() ports.Normalizer {
	engine, err := normalize.NewEngine(normalize.DefaultConfig(), nil, classifier.NewUCDClassifier())
	if err != nil {
		panic(err)
	}
	return &DefaultNormalizer{engine: engine}
}

// NewDefaultNormalizerWithEngine wraps an already configured engine.
func NewDefaultNormalizerWithEngine(engine *normalize.Engine) ports.Normalizer {
	return &DefaultNormalizer{engine: engine}
}

// Normalize maps, keeps or drops each rune of text in input order.
func (n *DefaultNormalizer) Normalize(text string) string {
	return n.engine.Normalize(text)
}
