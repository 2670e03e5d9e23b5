package ports

import (
	"context"
	"io"
	"time"
)

// StreamingMode represents different modes for processing input streams
type StreamingMode int

const (
	// ChunkByChunk processes the input stream in fixed-size chunks
	ChunkByChunk StreamingMode = iota
	// LineByLine processes the input stream line by line
	LineByLine
)

// StreamNormalizer defines the interface for normalizing text streams
type StreamNormalizer interface {
	// ProcessStream reads the input stream, normalizes it rune by rune and
	// writes the result to the output writer
	ProcessStream(ctx context.Context, reader io.Reader, writer io.Writer, mode StreamingMode) (StreamResult, error)
}

// StreamResult holds the outcome of a streaming normalization
type StreamResult struct {
	Name           string
	RunesIn        int
	RunesOut       int
	Mapped         int
	Dropped        int
	BytesRead      int64
	BytesWritten   int64
	ProcessingTime time.Duration
	Details        map[string]interface{}
}
