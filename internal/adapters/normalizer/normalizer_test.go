package normalizer

import (
	"strings"
	"testing"

	"github.com/baditaflorin/go_text_normalizer/internal/adapters/classifier"
	"github.com/baditaflorin/go_text_normalizer/internal/core/normalize"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// Inputs chosen to hit every path: empty, pure ASCII with kept, mapped and
// dropped bytes, multi-byte runes, supplementary-plane runes, and text
// crossing the ASCII fast-path boundary.
var equivalenceInputs = []struct {
	name  string
	input string
}{
	{"Empty", ""},
	{"Plain ASCII", "the quick brown fox"},
	{"ASCII with dropped punctuation", "wait! what?"},
	{"ASCII with controls", "tab\there\x00null"},
	{"Mixed dashes", "foo—bar–baz"},
	{"CJK punctuation", "「こんにちは」、どうぞ。"},
	{"Supplementary plane", "a\U0001104bb \U00010330"},
	{"Long ASCII", strings.Repeat("normalize me. ", 100)},
	{"Long mixed", strings.Repeat("em—dash，and…more ", 100)},
}

func TestStrategiesAgree(t *testing.T) {
	reference := NewDefaultNormalizer()
	optimized := NewOptimizedNormalizer()
	fast := NewFastNormalizer()

	for _, tc := range equivalenceInputs {
		t.Run(tc.name, func(t *testing.T) {
			want := reference.Normalize(tc.input)
			if got := optimized.Normalize(tc.input); got != want {
				t.Errorf("OptimizedNormalizer diverged:\n got %q\nwant %q", got, want)
			}
			if got := fast.Normalize(tc.input); got != want {
				t.Errorf("FastNormalizer diverged:\n got %q\nwant %q", got, want)
			}
		})
	}
}

func TestStrategyBehavior(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Em dash maps to hyphen", "foo—bar", "foo-bar"},
		{"Exclamation mark is dropped", "stop!", "stop"},
		{"ASCII comma survives", "a,b", "a,b"},
		{"Newline is dropped", "one\ntwo", "onetwo"},
		{"Space survives", "one two", "one two"},
	}

	normalizers := map[string]ports.Normalizer{
		"default":   NewDefaultNormalizer(),
		"optimized": NewOptimizedNormalizer(),
		"fast":      NewFastNormalizer(),
	}

	for name, n := range normalizers {
		for _, tc := range tests {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				if got := n.Normalize(tc.input); got != tc.expected {
					t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
				}
			})
		}
	}
}

func TestPooledNormalizersAreReusable(t *testing.T) {
	// Pooled buffers must not leak state between calls.
	for name, n := range map[string]ports.Normalizer{
		"optimized": NewOptimizedNormalizer(),
		"fast":      NewFastNormalizer(),
	} {
		t.Run(name, func(t *testing.T) {
			first := n.Normalize("foo—bar")
			second := n.Normalize("short")
			third := n.Normalize("foo—bar")

			if second != "short" {
				t.Errorf("second call returned %q, want %q", second, "short")
			}
			if first != third {
				t.Errorf("repeated input diverged: %q vs %q", first, third)
			}
		})
	}
}

func TestFactoryCreatesRequestedStrategy(t *testing.T) {
	factory := NewNormalizerFactory()

	if _, ok := factory.CreateNormalizer(DefaultNormalizerType).(*DefaultNormalizer); !ok {
		t.Error("expected a DefaultNormalizer")
	}
	if _, ok := factory.CreateNormalizer(OptimizedNormalizerType).(*OptimizedNormalizer); !ok {
		t.Error("expected an OptimizedNormalizer")
	}
	if _, ok := factory.CreateNormalizer(FastNormalizerType).(*FastNormalizer); !ok {
		t.Error("expected a FastNormalizer")
	}
}

func TestFactoryWithCustomEngine(t *testing.T) {
	engine, err := normalize.NewEngine(normalize.EngineConfig{
		Table:      map[rune]rune{'x': 'y'},
		Disallowed: map[string]struct{}{},
	}, nil, classifier.NewUCDClassifier())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	factory := NewNormalizerFactory()
	for _, typ := range []NormalizerType{DefaultNormalizerType, OptimizedNormalizerType, FastNormalizerType} {
		n := factory.CreateNormalizerWithEngine(typ, engine)
		if got := n.Normalize("xyz!"); got != "yyz!" {
			t.Errorf("type %d: Normalize(%q) = %q, want %q", typ, "xyz!", got, "yyz!")
		}
	}
}

func TestNFKCFoldingNormalizer(t *testing.T) {
	n := NewNFKCFoldingNormalizer(NewDefaultNormalizer())

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// Fullwidth letters fold to ASCII before the table decision.
		{"Fullwidth letters", "Ｇｏ", "Go"},
		// The circled digit folds to a plain digit.
		{"Circled digit", "①", "1"},
		// Folding then mapping: fullwidth comma folds to ASCII comma,
		// which is a self-mapped table key.
		{"Fullwidth comma", "ａ，ｂ", "a,b"},
		{"Plain text untouched", "plain", "plain"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.input); got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}
