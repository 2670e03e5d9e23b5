// Package normalizer exposes the Unicode text normalizer with functional
// options for configuring the mapping table, the category classifier, the
// normalization strategy and logging.
package normalizer

import (
	"context"

	"github.com/baditaflorin/go_text_normalizer/internal/adapters/classifier"
	"github.com/baditaflorin/go_text_normalizer/internal/adapters/logger"
	adapter "github.com/baditaflorin/go_text_normalizer/internal/adapters/normalizer"
	"github.com/baditaflorin/go_text_normalizer/internal/adapters/tableloader"
	"github.com/baditaflorin/go_text_normalizer/internal/core/charmap"
	"github.com/baditaflorin/go_text_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_text_normalizer/internal/core/normalize"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
	"github.com/baditaflorin/go_text_normalizer/internal/warmup"
	"github.com/baditaflorin/l"
)

// Normalizer canonicalizes look-alike punctuation and drops characters of
// disallowed Unicode general categories. Safe for concurrent use: all
// configuration is immutable after construction.
type Normalizer struct {
	engine     *normalize.Engine
	normalizer ports.Normalizer
	logger     ports.Logger
	warmed     bool
}

// Option defines a functional option for configuring the Normalizer.
type Option func(*config)

type config struct {
	Logger       ports.Logger
	Classifier   ports.CategoryClassifier
	Table        map[rune]rune
	Disallowed   []string
	Overrides    map[rune]rune
	OverridePath string
	Strategy     adapter.NormalizerType
	NFKCFold     bool
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithClassifier sets a custom Unicode category classifier. The default
// answers from the platform's Unicode character database.
func WithClassifier(c ports.CategoryClassifier) Option {
	return func(cfg *config) {
		cfg.Classifier = c
	}
}

// WithTable replaces the built-in mapping table entirely. Intended for
// tests that need a small substituted table.
func WithTable(table map[rune]rune) Option {
	return func(cfg *config) {
		cfg.Table = table
	}
}

// WithDisallowedCategories replaces the default disallowed category set.
func WithDisallowedCategories(categories ...string) Option {
	return func(cfg *config) {
		cfg.Disallowed = categories
	}
}

// WithTableOverrides layers extra mapping entries over the built-in table.
func WithTableOverrides(overrides map[rune]rune) Option {
	return func(cfg *config) {
		cfg.Overrides = overrides
	}
}

// WithOverrideFile loads mapping overrides from a YAML file at
// construction time.
func WithOverrideFile(path string) Option {
	return func(cfg *config) {
		cfg.OverridePath = path
	}
}

// WithOptimizedNormalizer selects the pooled, ASCII-table strategy.
func WithOptimizedNormalizer() Option {
	return func(cfg *config) {
		cfg.Strategy = adapter.OptimizedNormalizerType
	}
}

// WithFastNormalizer selects the precomputed-ASCII strategy.
func WithFastNormalizer() Option {
	return func(cfg *config) {
		cfg.Strategy = adapter.FastNormalizerType
	}
}

// WithNFKCFold applies NFKC compatibility folding before the mapping
// decision. Folding changes which code points reach the table, so it is
// off by default.
func WithNFKCFold() Option {
	return func(cfg *config) {
		cfg.NFKCFold = true
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(wc warmup.WarmupConfig) Option {
	return func(cfg *config) {
		cfg.WarmUpConfig = wc
		cfg.WarmUp = true
	}
}

// New creates a new Normalizer with the provided functional options.
func New(opts ...Option) (*Normalizer, error) {
	cfg := &config{
		Strategy:     adapter.DefaultNormalizerType,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}
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

	table := cfg.Table
	if table == nil {
		table = charmap.Canonical
	}
	if cfg.OverridePath != "" {
		fileOverrides, err := tableloader.LoadFile(cfg.OverridePath)
		if err != nil {
			return nil, err
		}
		table = tableloader.Merge(table, fileOverrides)
	}
	if cfg.Overrides != nil {
		table = tableloader.Merge(table, cfg.Overrides)
	}

	disallowed := charmap.DisallowedCategories
	if cfg.Disallowed != nil {
		disallowed = make(map[string]struct{}, len(cfg.Disallowed))
		for _, cat := range cfg.Disallowed {
			disallowed[cat] = struct{}{}
		}
	}

	engine, err := normalize.NewEngine(normalize.EngineConfig{
		Table:      table,
		Disallowed: disallowed,
	}, cfg.Logger, cfg.Classifier)
	if err != nil {
		return nil, err
	}

	var strategy ports.Normalizer = adapter.NewNormalizerFactory().
		CreateNormalizerWithEngine(cfg.Strategy, engine)
	if cfg.NFKCFold {
		strategy = adapter.NewNFKCFoldingNormalizer(strategy)
	}

	n := &Normalizer{
		engine:     engine,
		normalizer: strategy,
		logger:     cfg.Logger,
	}

	if cfg.WarmUp {
		n.WarmUp(context.Background(), cfg.WarmUpConfig)
	}

	return n, nil
}

// Normalize returns text with every mapped character replaced by its
// canonical form and every unmapped character of a disallowed category
// removed. Output order follows input order and the result is never
// longer than the input. The call is pure and never fails.
func (n *Normalizer) Normalize(text string) string {
	return n.normalizer.Normalize(text)
}

// NormalizeDetailed normalizes text and reports per-rune statistics. The
// statistics always come from the engine path; the configured strategy
// only affects Normalize.
func (n *Normalizer) NormalizeDetailed(text string) domain.Result {
	return n.engine.NormalizeDetailed(text)
}

// WarmUp performs system warm-up to optimize performance.
func (n *Normalizer) WarmUp(ctx context.Context, wc warmup.WarmupConfig) {
	if n.warmed {
		n.logger.Debug("System already warmed up, skipping")
		return
	}

	mgr := warmup.NewManager(n.logger, wc)
	mgr.RegisterNormalizer(n.normalizer)
	mgr.WarmUp(ctx)
	n.warmed = true
}
