package warmup

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

type countingNormalizer struct {
	calls int64
}

func (c *countingNormalizer) Normalize(text string) string {
	atomic.AddInt64(&c.calls, 1)
	return text
}

type countingStreamer struct {
	calls int64
}

func (c *countingStreamer) ProcessStream(ctx context.Context, reader io.Reader, writer io.Writer, mode ports.StreamingMode) (ports.StreamResult, error) {
	atomic.AddInt64(&c.calls, 1)
	_, err := io.Copy(writer, reader)
	return ports.StreamResult{}, err
}

func TestWarmUpExercisesComponents(t *testing.T) {
	norm := &countingNormalizer{}
	streamer := &countingStreamer{}

	mgr := NewManager(nil, WarmupConfig{
		Concurrency:    2,
		Iterations:     20,
		SampleTextSize: 256,
		Duration:       5 * time.Second,
		ForceGC:        false,
	})
	mgr.RegisterNormalizer(norm)
	mgr.RegisterStreamNormalizer(streamer)

	mgr.WarmUp(context.Background())

	if got := atomic.LoadInt64(&norm.calls); got != 40 {
		t.Errorf("normalizer called %d times, want 40", got)
	}
	// Streamers run a tenth of the iterations.
	if got := atomic.LoadInt64(&streamer.calls); got != 4 {
		t.Errorf("streamer called %d times, want 4", got)
	}
}

func TestWarmUpHonorsCancellation(t *testing.T) {
	norm := &countingNormalizer{}

	mgr := NewManager(nil, WarmupConfig{
		Concurrency:    1,
		Iterations:     1 << 30,
		SampleTextSize: 64,
	})
	mgr.RegisterNormalizer(norm)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan struct{})
	go func() {
		mgr.WarmUp(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("WarmUp did not stop on a cancelled context")
	}
}

func TestGenerateSampleText(t *testing.T) {
	sample := generateSampleText(512)
	if len(sample) > 512 {
		t.Errorf("sample is %d bytes, want at most 512", len(sample))
	}
	if len(sample) == 0 {
		t.Error("sample is empty")
	}
	// The sample must visit the mapping branch of the decision: at least
	// one rune beyond ASCII.
	ascii := true
	for i := 0; i < len(sample); i++ {
		if sample[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		t.Error("sample contains no multi-byte runes")
	}
}
