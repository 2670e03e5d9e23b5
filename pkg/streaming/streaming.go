// Package streaming exposes reader-to-writer text normalization for
// inputs that should not be held in memory at once.
package streaming

import (
	"context"
	"io"
	"strings"

	"github.com/baditaflorin/go_text_normalizer/internal/adapters/classifier"
	"github.com/baditaflorin/go_text_normalizer/internal/adapters/logger"
	"github.com/baditaflorin/go_text_normalizer/internal/adapters/stream"
	"github.com/baditaflorin/go_text_normalizer/internal/adapters/tableloader"
	"github.com/baditaflorin/go_text_normalizer/internal/core/normalize"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
	"github.com/baditaflorin/l"
)

// StreamingMode selects how the input stream is consumed.
type StreamingMode = ports.StreamingMode

// Streaming modes.
const (
	// ChunkByChunk normalizes the raw rune stream, line breaks included.
	ChunkByChunk = ports.ChunkByChunk
	// LineByLine normalizes each line separately and keeps the line framing.
	LineByLine = ports.LineByLine
)

// StreamResult holds the outcome of a streaming normalization.
type StreamResult = ports.StreamResult

// StreamingNormalizer normalizes text streams through the engine.
type StreamingNormalizer struct {
	processor *stream.Processor
	logger    ports.Logger
}

// StreamingOption defines a functional option for configuring the
// StreamingNormalizer.
type StreamingOption func(*streamingConfig)

type streamingConfig struct {
	Logger     ports.Logger
	Classifier ports.CategoryClassifier
	Overrides  map[rune]rune
	ChunkSize  int
}

// WithStreamingLogger sets a custom logger.
func WithStreamingLogger(lg l.Logger) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithClassifier sets a custom Unicode category classifier.
func WithClassifier(c ports.CategoryClassifier) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Classifier = c
	}
}

// WithTableOverrides layers extra mapping entries over the built-in table.
func WithTableOverrides(overrides map[rune]rune) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.Overrides = overrides
	}
}

// WithChunkSize sets the read buffer size for chunked processing.
func WithChunkSize(size int) StreamingOption {
	return func(cfg *streamingConfig) {
		cfg.ChunkSize = size
	}
}

// NewStreamingNormalizer creates a new StreamingNormalizer.
func NewStreamingNormalizer(opts ...StreamingOption) (*StreamingNormalizer, error) {
	cfg := &streamingConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}
	if cfg.Classifier == nil {
		cfg.Classifier = classifier.NewUCDClassifier()
	}

	engineCfg := normalize.DefaultConfig()
	if cfg.Overrides != nil {
		engineCfg.Table = tableloader.Merge(engineCfg.Table, cfg.Overrides)
	}

	engine, err := normalize.NewEngine(engineCfg, cfg.Logger, cfg.Classifier)
	if err != nil {
		return nil, err
	}

	processor := stream.NewProcessor(cfg.Logger, engine)
	if cfg.ChunkSize > 0 {
		processor = processor.WithChunkSize(cfg.ChunkSize)
	}

	return &StreamingNormalizer{
		processor: processor,
		logger:    cfg.Logger,
	}, nil
}

// ProcessStream normalizes reader into writer.
func (s *StreamingNormalizer) ProcessStream(ctx context.Context, reader io.Reader, writer io.Writer, mode StreamingMode) (StreamResult, error) {
	return s.processor.ProcessStream(ctx, reader, writer, mode)
}

// NormalizeString is a convenience wrapper that streams a string through
// the processor and returns the normalized text with its statistics.
func (s *StreamingNormalizer) NormalizeString(ctx context.Context, text string, mode StreamingMode) (string, StreamResult, error) {
	var sb strings.Builder
	result, err := s.processor.ProcessStream(ctx, strings.NewReader(text), &sb, mode)
	return sb.String(), result, err
}
