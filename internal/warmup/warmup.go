package warmup

import (
	"context"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     1000,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	normalizers []ports.Normalizer
	streamers   []ports.StreamNormalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// RegisterStreamNormalizer adds a stream normalizer to be warmed up
func (wm *Manager) RegisterStreamNormalizer(s ports.StreamNormalizer) {
	wm.streamers = append(wm.streamers, s)
}

// WarmUp runs the warmup process for all registered components. Warming
// touches the mapping table, the category range tables and the buffer
// pools so the first real request does not pay for lazy growth.
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	if wm.logger != nil {
		wm.logger.Info("Starting system warmup",
			"components", len(wm.normalizers)+len(wm.streamers),
			"concurrency", wm.config.Concurrency,
			"iterations", wm.config.Iterations,
		)
	}

	var warmupCtx context.Context
	var cancel context.CancelFunc
	if wm.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	} else {
		warmupCtx = ctx
	}

	wm.warmUpNormalizers(warmupCtx)
	wm.warmUpStreamNormalizers(warmupCtx)

	if wm.config.ForceGC {
		if wm.logger != nil {
			wm.logger.Debug("Forcing garbage collection after warmup")
		}
		runtime.GC()
	}

	if wm.logger != nil {
		wm.logger.Info("System warmup completed",
			"duration", time.Since(startTime),
		)
	}
}

// warmUpNormalizers runs warmup for all registered normalizers
func (wm *Manager) warmUpNormalizers(ctx context.Context) {
	if len(wm.normalizers) == 0 {
		return
	}

	if wm.logger != nil {
		wm.logger.Debug("Warming up normalizers", "count", len(wm.normalizers))
	}

	sampleText := generateSampleText(wm.config.SampleTextSize)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, normalizer := range wm.normalizers {
					_ = normalizer.Normalize(sampleText)
				}
			}
		}()
	}

	wg.Wait()
}

// warmUpStreamNormalizers runs warmup for all registered stream normalizers
func (wm *Manager) warmUpStreamNormalizers(ctx context.Context) {
	if len(wm.streamers) == 0 {
		return
	}

	if wm.logger != nil {
		wm.logger.Debug("Warming up stream normalizers", "count", len(wm.streamers))
	}

	sampleText := generateSampleText(wm.config.SampleTextSize)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations/10; j++ { // Fewer iterations for streaming
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, s := range wm.streamers {
					mode := ports.StreamingMode(j % 2) // Cycle through modes
					_, _ = s.ProcessStream(ctx, strings.NewReader(sampleText), io.Discard, mode)
				}
			}
		}()
	}

	wg.Wait()
}

// generateSampleText creates sample text of the specified size. The sample
// deliberately mixes table keys (dashes, fullwidth forms), droppable
// control/format characters and plain pass-through text so warmup visits
// every branch of the per-rune decision.
func generateSampleText(size int) string {
	words := []string{
		"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"foo–bar", "foo—bar", "，", "、", "​",
		"hello", "world", "lorem", "ipsum", "dolor", "sit", "amet",
		"café", "naïve", "\U0001104b",
	}

	var sb strings.Builder
	sb.Grow(size)
	for i := 0; sb.Len() < size; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(words[i%len(words)])
	}

	result := sb.String()
	if len(result) > size {
		return result[:size]
	}
	return result
}
