package stream

import (
	"context"
	"strings"
	"testing"

	"github.com/baditaflorin/go_text_normalizer/internal/adapters/classifier"
	"github.com/baditaflorin/go_text_normalizer/internal/core/normalize"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

func newTestEngine(t *testing.T) *normalize.Engine {
	t.Helper()
	engine, err := normalize.NewEngine(normalize.DefaultConfig(), nil, classifier.NewUCDClassifier())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine
}

func TestProcessStreamChunkByChunk(t *testing.T) {
	engine := newTestEngine(t)
	processor := NewProcessor(nil, engine)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty stream", "", ""},
		{"Plain text", "hello world", "hello world"},
		{"Mapped dashes", "foo—bar–baz", "foo-bar-baz"},
		// Chunk mode is the raw per-rune stream: newlines are control
		// characters and go away like any other dropped rune.
		{"Newlines dropped", "one\ntwo\nthree", "onetwothree"},
		{"Supplementary plane", "a\U0001104bb", "a-b"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var sb strings.Builder
			result, err := processor.ProcessStream(context.Background(), strings.NewReader(tc.input), &sb, ports.ChunkByChunk)
			if err != nil {
				t.Fatalf("ProcessStream failed: %v", err)
			}
			if sb.String() != tc.expected {
				t.Errorf("output = %q, want %q", sb.String(), tc.expected)
			}
			if result.Name != "stream_normalization" {
				t.Errorf("unexpected result name %q", result.Name)
			}
			if result.BytesRead != int64(len(tc.input)) {
				t.Errorf("BytesRead = %d, want %d", result.BytesRead, len(tc.input))
			}
		})
	}
}

func TestProcessStreamMatchesEngine(t *testing.T) {
	engine := newTestEngine(t)
	// A tiny chunk size forces many buffer refills across multi-byte and
	// supplementary-plane runes.
	processor := NewProcessor(nil, engine).WithChunkSize(16)

	input := strings.Repeat("em—dash，and…「more」\x00 \U0001104b", 50)
	want := engine.Normalize(input)

	var sb strings.Builder
	result, err := processor.ProcessStream(context.Background(), strings.NewReader(input), &sb, ports.ChunkByChunk)
	if err != nil {
		t.Fatalf("ProcessStream failed: %v", err)
	}
	if sb.String() != want {
		t.Error("streamed output differs from in-memory normalization")
	}
	if result.RunesIn-result.Dropped != result.RunesOut {
		t.Errorf("rune accounting broken: in=%d dropped=%d out=%d",
			result.RunesIn, result.Dropped, result.RunesOut)
	}
}

func TestProcessStreamLineByLine(t *testing.T) {
	engine := newTestEngine(t)
	processor := NewProcessor(nil, engine)

	var sb strings.Builder
	result, err := processor.ProcessStream(context.Background(),
		strings.NewReader("foo—bar\nplain\n「quoted」"), &sb, ports.LineByLine)
	if err != nil {
		t.Fatalf("ProcessStream failed: %v", err)
	}

	// Line framing survives; each line is normalized independently.
	want := "foo-bar\nplain\n「quoted」\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
	if result.Mapped != 1 {
		t.Errorf("Mapped = %d, want 1", result.Mapped)
	}
	if result.Dropped != 0 {
		t.Errorf("Dropped = %d, want 0", result.Dropped)
	}
}

func TestProcessStreamCounts(t *testing.T) {
	engine := newTestEngine(t)
	processor := NewProcessor(nil, engine)

	// 2 kept letters, 1 mapped dash, 1 dropped control.
	var sb strings.Builder
	result, err := processor.ProcessStream(context.Background(),
		strings.NewReader("a–b\x07"), &sb, ports.ChunkByChunk)
	if err != nil {
		t.Fatalf("ProcessStream failed: %v", err)
	}

	if result.RunesIn != 4 {
		t.Errorf("RunesIn = %d, want 4", result.RunesIn)
	}
	if result.RunesOut != 3 {
		t.Errorf("RunesOut = %d, want 3", result.RunesOut)
	}
	if result.Mapped != 1 {
		t.Errorf("Mapped = %d, want 1", result.Mapped)
	}
	if result.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", result.Dropped)
	}
	if result.BytesWritten != int64(len("a-b")) {
		t.Errorf("BytesWritten = %d, want %d", result.BytesWritten, len("a-b"))
	}
	if result.ProcessingTime <= 0 {
		t.Error("ProcessingTime not recorded")
	}
}

func TestProcessStreamCancellation(t *testing.T) {
	engine := newTestEngine(t)
	// Small chunk size so the cancellation check fires early.
	processor := NewProcessor(nil, engine).WithChunkSize(8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := strings.Repeat("cancel me now ", 1000)
	var sb strings.Builder
	if _, err := processor.ProcessStream(ctx, strings.NewReader(input), &sb, ports.ChunkByChunk); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	sb.Reset()
	if _, err := processor.ProcessStream(ctx, strings.NewReader("line\nline\n"), &sb, ports.LineByLine); err != context.Canceled {
		t.Errorf("expected context.Canceled in line mode, got %v", err)
	}
}
