package textnormalizer

import "testing"

func TestNormalize(t *testing.T) {
	n, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty input", "", ""},
		{"Already canonical", "plain ascii text", "plain ascii text"},
		{"Dash family", "a–b—c−d", "a-b-c-d"},
		{"CJK comma", "你好，世界", "你好,世界"},
		{"Controls removed", "a\x00b\x07c", "abc"},
		{"Mixed", "wait… “quotes” stay curly", "wait. “quotes” stay curly"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.input); got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeDetailed(t *testing.T) {
	n, err := New(WithFastNormalizer())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	result := n.NormalizeDetailed("foo—bar\x00")
	if result.Normalized != "foo-bar" {
		t.Errorf("Normalized = %q, want %q", result.Normalized, "foo-bar")
	}
	if result.Mapped != 1 || result.Dropped != 1 {
		t.Errorf("Mapped=%d Dropped=%d, want 1 and 1", result.Mapped, result.Dropped)
	}
}

func TestNormalizeWithOverrides(t *testing.T) {
	n, err := New(WithTableOverrides(map[rune]rune{'†': '*'}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := n.Normalize("a†b"); got != "a*b" {
		t.Errorf("Normalize = %q, want %q", got, "a*b")
	}
}

func TestNormalizeWithDefaults(t *testing.T) {
	if got := NormalizeWithDefaults("foo—bar"); got != "foo-bar" {
		t.Errorf("NormalizeWithDefaults = %q, want %q", got, "foo-bar")
	}
	// The shared instance is reused across calls.
	if got := NormalizeWithDefaults("plain"); got != "plain" {
		t.Errorf("NormalizeWithDefaults = %q, want %q", got, "plain")
	}
}
