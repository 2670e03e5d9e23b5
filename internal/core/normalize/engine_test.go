package normalize

import (
	"testing"
	"unicode/utf8"
)

// fakeClassifier returns canned categories so engine tests do not depend
// on the platform tables. Unknown runes report "Ll".
type fakeClassifier struct {
	categories map[rune]string
}

func (f *fakeClassifier) CategoryOf(r rune) string {
	if cat, ok := f.categories[r]; ok {
		return cat
	}
	return "Ll"
}

func newTestClassifier() *fakeClassifier {
	return &fakeClassifier{categories: map[rune]string{
		0x0000:   "Cc", // NULL
		0x0007:   "Cc", // BELL
		0x200B:   "Cf", // ZERO WIDTH SPACE
		0x0020:   "Zs", // SPACE
		0x2013:   "Pd", // EN DASH
		0x2014:   "Pd", // EM DASH
		0xFF0C:   "Po", // FULLWIDTH COMMA
		0x00A1:   "Po", // INVERTED EXCLAMATION MARK
		0x0024:   "Sc", // DOLLAR SIGN
		0x1104B:  "Po", // BRAHMI PUNCTUATION LINE
		0x10330:  "Lo", // GOTHIC LETTER AHSA
		0x10FFFF: "Cn",
	}}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultConfig(), nil, newTestClassifier())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine
}

func TestNormalizeScenarios(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "Plain ASCII letter passes through",
			input:    "a",
			expected: "a",
		},
		{
			name:     "En dash becomes hyphen-minus",
			input:    "–",
			expected: "-",
		},
		{
			name:     "Em dash between words",
			input:    "foo—bar",
			expected: "foo-bar",
		},
		{
			name:     "Fullwidth comma becomes ASCII comma",
			input:    "，",
			expected: ",",
		},
		{
			name:     "Control character is removed",
			input:    "ab\x00cd",
			expected: "abcd",
		},
		{
			name:     "Ordinary space passes through",
			input:    "a b",
			expected: "a b",
		},
		{
			name:     "Currency symbol passes through",
			input:    "$5",
			expected: "$5",
		},
		{
			name:     "Unmapped punctuation is dropped",
			input:    "ab¡cd",
			expected: "abcd",
		},
		{
			name:     "Supplementary-plane key maps as a single character",
			input:    "a\U0001104bb",
			expected: "a-b",
		},
		{
			name:     "Supplementary-plane letter passes through",
			input:    "\U00010330",
			expected: "\U00010330",
		},
		{
			name:     "Horizontal ellipsis becomes full stop",
			input:    "wait…",
			expected: "wait.",
		},
		{
			name:     "Corner bracket target survives as itself",
			input:    "「title」",
			expected: "「title」",
		},
		{
			name:     "Zero width space is removed",
			input:    "zero​width",
			expected: "zerowidth",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.Normalize(tc.input)
			if got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestMappingAlwaysBeatsCategoryFilter(t *testing.T) {
	// 0xFF0C is classified Po (disallowed) but has a table entry; the
	// mapped output must win and the character must never be dropped.
	engine := newTestEngine(t)

	if got := engine.Normalize("a，b"); got != "a,b" {
		t.Errorf("mapped rune in disallowed category was not replaced: got %q", got)
	}

	// Same property with an injected table so the test does not depend on
	// the built-in data: map a Po rune to itself.
	custom, err := NewEngine(EngineConfig{
		Table:      map[rune]rune{0x00A1: 0x00A1},
		Disallowed: map[string]struct{}{"Po": {}},
	}, nil, newTestClassifier())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if got := custom.Normalize("¡hola"); got != "¡hola" {
		t.Errorf("whitelisted rune was dropped: got %q", got)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	engine := newTestEngine(t)

	inputs := []string{
		"",
		"plain text",
		"foo—bar，baz\x00",
		"\U0001104b\U00010330 mixed planes",
	}
	for _, input := range inputs {
		first := engine.Normalize(input)
		second := engine.Normalize(input)
		if first != second {
			t.Errorf("Normalize(%q) not deterministic: %q vs %q", input, first, second)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	// Every mapping target is itself a key that maps to itself, so a
	// normalized string normalizes to itself.
	engine := newTestEngine(t)

	inputs := []string{
		"foo—bar",
		"「quoted」，done",
		"control\x00chars\x07here",
	}
	for _, input := range inputs {
		once := engine.Normalize(input)
		twice := engine.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q vs %q", input, once, twice)
		}
	}
}

func TestNormalizeNeverGrows(t *testing.T) {
	engine := newTestEngine(t)

	inputs := []string{
		"",
		"a",
		"foo—bar…，",
		"\x00\x07​",
		"\U0001104b\U00010330",
	}
	for _, input := range inputs {
		out := engine.Normalize(input)
		if utf8.RuneCountInString(out) > utf8.RuneCountInString(input) {
			t.Errorf("Normalize(%q) grew: %d runes in, %d runes out",
				input, utf8.RuneCountInString(input), utf8.RuneCountInString(out))
		}
	}
}

func TestNormalizeDetailedCounts(t *testing.T) {
	engine := newTestEngine(t)

	// 3 pass-through letters, 1 mapped dash, 1 dropped control char.
	result := engine.NormalizeDetailed("ab–c\x00")

	if result.Name != "unicode_normalization" {
		t.Errorf("unexpected result name %q", result.Name)
	}
	if result.Normalized != "ab-c" {
		t.Errorf("unexpected output %q", result.Normalized)
	}
	if result.OriginalLength != 5 {
		t.Errorf("expected 5 input runes, got %d", result.OriginalLength)
	}
	if result.NormalizedLength != 4 {
		t.Errorf("expected 4 output runes, got %d", result.NormalizedLength)
	}
	if result.Mapped != 1 {
		t.Errorf("expected 1 mapped rune, got %d", result.Mapped)
	}
	if result.Dropped != 1 {
		t.Errorf("expected 1 dropped rune, got %d", result.Dropped)
	}
	if !result.Changed {
		t.Error("expected Changed=true")
	}

	unchanged := engine.NormalizeDetailed("plain")
	if unchanged.Changed {
		t.Error("expected Changed=false for already normalized input")
	}
	// Self-mapped table hits do not count as mapped.
	if unchanged.Mapped != 0 {
		t.Errorf("expected 0 mapped runes, got %d", unchanged.Mapped)
	}
}

func TestNewEngineValidation(t *testing.T) {
	classifier := newTestClassifier()

	if _, err := NewEngine(EngineConfig{Disallowed: map[string]struct{}{}}, nil, classifier); err == nil {
		t.Error("expected error for nil table")
	}
	if _, err := NewEngine(EngineConfig{Table: map[rune]rune{}}, nil, classifier); err == nil {
		t.Error("expected error for nil category set")
	}
	if _, err := NewEngine(DefaultConfig(), nil, nil); err == nil {
		t.Error("expected error for nil classifier")
	}
}

func TestEngineCopiesConfiguration(t *testing.T) {
	table := map[rune]rune{0x2013: '-'}
	disallowed := map[string]struct{}{"Cc": {}}

	engine, err := NewEngine(EngineConfig{Table: table, Disallowed: disallowed}, nil, newTestClassifier())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	// Mutating the caller's maps must not change a running engine.
	table[0x2013] = '!'
	delete(disallowed, "Cc")

	if got := engine.Normalize("–\x00"); got != "-" {
		t.Errorf("engine observed caller-side mutation: got %q", got)
	}
}
