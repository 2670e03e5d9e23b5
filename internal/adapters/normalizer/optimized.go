package normalizer

import (
	"unicode/utf8"

	"github.com/baditaflorin/go_text_normalizer/internal/adapters/classifier"
	"github.com/baditaflorin/go_text_normalizer/internal/core/normalize"
	"github.com/baditaflorin/go_text_normalizer/internal/pool"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// Decision codes for the precomputed ASCII table.
const (
	asciiKeep byte = iota
	asciiDrop
	asciiReplace
)

// OptimizedNormalizer implements an optimized normalization strategy with
// buffer pooling and a precomputed decision table for ASCII input.
type OptimizedNormalizer struct {
	engine *normalize.Engine

	// Pre-computed decision table for ASCII characters (0-127), derived
	// from the engine at construction so both paths agree.
	asciiTable [128]struct {
		action byte
		repl   rune
	}

	bytePool *pool.BufferPool
}

// NewOptimizedNormalizer creates a new optimized normalizer over the
// built-in table and classifier.
func NewOptimizedNormalizer() ports.Normalizer {
	engine, err := normalize.NewEngine(normalize.DefaultConfig(), nil, classifier.NewUCDClassifier())
	if err != nil {
		panic(err)
	}
	return NewOptimizedNormalizerWithEngine(engine)
}

// NewOptimizedNormalizerWithEngine creates an optimized normalizer around
// an already configured engine.
func NewOptimizedNormalizerWithEngine(engine *normalize.Engine) ports.Normalizer {
	n := &OptimizedNormalizer{
		engine:   engine,
		bytePool: pool.NewBufferPool(8192), // 8K bytes initial capacity
	}

	for i := 0; i < 128; i++ {
		r := rune(i)
		out, keep := engine.ReplaceRune(r)
		switch {
		case !keep:
			n.asciiTable[i].action = asciiDrop
		case out == r:
			n.asciiTable[i].action = asciiKeep
		default:
			n.asciiTable[i].action = asciiReplace
			n.asciiTable[i].repl = out
		}
	}

	return n
}

// Normalize applies the per-rune decision with pooled buffers and an ASCII
// fast path.
func (n *OptimizedNormalizer) Normalize(text string) string {
	// Fast path for empty strings
	if len(text) == 0 {
		return ""
	}

	// Check for ASCII-only string first (optimization)
	asciiOnly := true
	for i := 0; i < len(text); i++ {
		if text[i] >= 128 {
			asciiOnly = false
			break
		}
	}

	// Get a reusable buffer from the pool
	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}
	*buffer = (*buffer)[:0]

	if asciiOnly {
		for i := 0; i < len(text); i++ {
			b := text[i]
			switch n.asciiTable[b].action {
			case asciiKeep:
				*buffer = append(*buffer, b)
			case asciiReplace:
				*buffer = utf8.AppendRune(*buffer, n.asciiTable[b].repl)
			case asciiDrop:
				// emit nothing
			}
		}
		return string(*buffer)
	}

	// Slower path for mixed ASCII/Unicode strings
	for _, r := range text {
		if r < 128 {
			switch n.asciiTable[r].action {
			case asciiKeep:
				*buffer = append(*buffer, byte(r))
			case asciiReplace:
				*buffer = utf8.AppendRune(*buffer, n.asciiTable[r].repl)
			case asciiDrop:
				// emit nothing
			}
			continue
		}
		if out, keep := n.engine.ReplaceRune(r); keep {
			*buffer = utf8.AppendRune(*buffer, out)
		}
	}

	return string(*buffer)
}

// FastNormalizer offers normalization with pre-cached ASCII decisions and
// a pooled string builder, optimized for mostly-ASCII workloads.
type FastNormalizer struct {
	engine *normalize.Engine

	asciiTable [128]struct {
		drop bool
		char rune
	}

	builderPool *pool.StringBuilderPool
}

// NewFastNormalizer creates a new fast normalizer with precomputed tables.
func NewFastNormalizer() ports.Normalizer {
	engine, err := normalize.NewEngine(normalize.DefaultConfig(), nil, classifier.NewUCDClassifier())
	if err != nil {
		panic(err)
	}
	return NewFastNormalizerWithEngine(engine)
}

// NewFastNormalizerWithEngine creates a fast normalizer around an already
// configured engine.
func NewFastNormalizerWithEngine(engine *normalize.Engine) ports.Normalizer {
	n := &FastNormalizer{
		engine:      engine,
		builderPool: pool.NewStringBuilderPool(),
	}

	for i := 0; i < 128; i++ {
		r := rune(i)
		out, keep := engine.ReplaceRune(r)
		if !keep {
			n.asciiTable[i].drop = true
			continue
		}
		n.asciiTable[i].char = out
	}

	return n
}

// Normalize performs normalization with pre-computed decisions for ASCII.
func (n *FastNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	sb := n.builderPool.Get()
	defer n.builderPool.Put(sb)

	for _, r := range text {
		if r < 128 {
			entry := n.asciiTable[r]
			if !entry.drop {
				sb.WriteRune(entry.char)
			}
			continue
		}
		if out, keep := n.engine.ReplaceRune(r); keep {
			sb.WriteRune(out)
		}
	}

	return sb.String()
}

// NormalizerFactory creates the appropriate normalizer based on performance requirements
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// Type of normalizer to create
type NormalizerType int

const (
	// DefaultNormalizerType is the straightforward engine-backed normalizer
	DefaultNormalizerType NormalizerType = iota
	// OptimizedNormalizerType uses buffer pooling and an ASCII decision table
	OptimizedNormalizerType
	// FastNormalizerType uses precomputed tables and is optimized for ASCII
	FastNormalizerType
)

// CreateNormalizer creates a normalizer of the specified type
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case OptimizedNormalizerType:
		return NewOptimizedNormalizer()
	case FastNormalizerType:
		return NewFastNormalizer()
	default:
		return NewDefaultNormalizer()
	}
}

// CreateNormalizerWithEngine creates a normalizer of the specified type
// around a custom engine.
func (f *NormalizerFactory) CreateNormalizerWithEngine(normalizerType NormalizerType, engine *normalize.Engine) ports.Normalizer {
	switch normalizerType {
	case OptimizedNormalizerType:
		return NewOptimizedNormalizerWithEngine(engine)
	case FastNormalizerType:
		return NewFastNormalizerWithEngine(engine)
	default:
		return NewDefaultNormalizerWithEngine(engine)
	}
}
