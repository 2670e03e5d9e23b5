package stream

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/baditaflorin/go_text_normalizer/internal/core/normalize"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

const (
	// DefaultChunkSize defines how many bytes are read per chunk when
	// processing chunk by chunk
	DefaultChunkSize = 8192 // 8KB

	// MaxScannerBufferSize defines the maximum buffer size for the scanner
	// This helps prevent "token too long" errors on very long lines
	MaxScannerBufferSize = 1024 * 1024 // 1MB
)

// Processor normalizes text streams through the engine without ever
// loading the whole input into memory. Reads are rune-boundary safe, so
// multi-byte and supplementary-plane characters survive chunk borders.
type Processor struct {
	logger    ports.Logger
	engine    *normalize.Engine
	chunkSize int
}

// NewProcessor creates a new stream normalizer around the given engine.
func NewProcessor(logger ports.Logger, engine *normalize.Engine) *Processor {
	return &Processor{
		logger:    logger,
		engine:    engine,
		chunkSize: DefaultChunkSize,
	}
}

// WithChunkSize sets a custom chunk size for the processor
func (p *Processor) WithChunkSize(size int) *Processor {
	if size > 0 {
		p.chunkSize = size
	}
	return p
}

// countingReader tracks how many bytes have been read from the source.
type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

// countingWriter tracks how many bytes have been written to the sink.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// ProcessStream reads the input stream, normalizes it and writes the
// result to writer. In ChunkByChunk mode every rune of the input goes
// through the per-rune decision, including line breaks (control
// characters, so they are dropped). In LineByLine mode the line
// structure is treated as framing: each line is normalized on its own
// and emitted with a trailing newline.
func (p *Processor) ProcessStream(ctx context.Context, reader io.Reader, writer io.Writer, mode ports.StreamingMode) (ports.StreamResult, error) {
	start := time.Now()

	cr := &countingReader{r: reader}
	cw := &countingWriter{w: writer}

	var result ports.StreamResult
	var err error
	switch mode {
	case ports.LineByLine:
		result, err = p.processLines(ctx, cr, cw)
	default:
		result, err = p.processChunks(ctx, cr, cw)
	}

	result.Name = "stream_normalization"
	result.BytesRead = cr.n
	result.BytesWritten = cw.n
	result.ProcessingTime = time.Since(start)
	if result.Details == nil {
		result.Details = make(map[string]interface{})
	}
	result.Details["mode"] = int(mode)
	result.Details["chunk_size"] = p.chunkSize

	if err != nil {
		if p.logger != nil {
			p.logger.Error("Stream normalization failed", "error", err)
		}
		return result, err
	}

	if p.logger != nil {
		p.logger.Debug("Stream normalization completed",
			"runes_in", result.RunesIn,
			"runes_out", result.RunesOut,
			"mapped", result.Mapped,
			"dropped", result.Dropped,
			"bytes_read", result.BytesRead,
			"bytes_written", result.BytesWritten,
			"duration", result.ProcessingTime,
		)
	}
	return result, nil
}

// processChunks streams rune by rune with buffered I/O.
func (p *Processor) processChunks(ctx context.Context, reader io.Reader, writer io.Writer) (ports.StreamResult, error) {
	var result ports.StreamResult

	br := bufio.NewReaderSize(reader, p.chunkSize)
	bw := bufio.NewWriterSize(writer, p.chunkSize)

	// Check for cancellation between chunks, not per rune.
	runesSinceCheck := 0
	for {
		r, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, err
		}

		result.RunesIn++
		out, keep := p.engine.ReplaceRune(r)
		if keep {
			if _, err := bw.WriteRune(out); err != nil {
				return result, err
			}
			result.RunesOut++
			if out != r {
				result.Mapped++
			}
		} else {
			result.Dropped++
		}

		runesSinceCheck++
		if runesSinceCheck >= p.chunkSize {
			runesSinceCheck = 0
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			default:
			}
		}
	}

	return result, bw.Flush()
}

// processLines normalizes one line at a time, keeping the line framing.
func (p *Processor) processLines(ctx context.Context, reader io.Reader, writer io.Writer) (ports.StreamResult, error) {
	var result ports.StreamResult

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, p.chunkSize), MaxScannerBufferSize)
	bw := bufio.NewWriterSize(writer, p.chunkSize)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		line := p.engine.NormalizeDetailed(scanner.Text())
		result.RunesIn += line.OriginalLength
		result.RunesOut += line.NormalizedLength
		result.Mapped += line.Mapped
		result.Dropped += line.Dropped

		if _, err := bw.WriteString(line.Normalized); err != nil {
			return result, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return result, err
		}
	}
	if err := scanner.Err(); err != nil {
		return result, err
	}

	return result, bw.Flush()
}
