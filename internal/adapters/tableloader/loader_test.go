package tableloader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	data := []byte(`
mappings:
  "†": "*"
  "…": "."
  "𑁋": "-"
`)

	entries, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries['†'] != '*' {
		t.Errorf("entries['†'] = %q, want '*'", entries['†'])
	}
	if entries[0x2026] != '.' {
		t.Errorf("entries[U+2026] = %q, want '.'", entries[0x2026])
	}
	if entries[0x1104B] != '-' {
		t.Errorf("entries[U+1104B] = %q, want '-'", entries[0x1104B])
	}
}

func TestParseRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Multi-character key", "mappings:\n  \"ab\": \"x\"\n"},
		{"Multi-character value", "mappings:\n  \"a\": \"xy\"\n"},
		{"Empty key", "mappings:\n  \"\": \"x\"\n"},
		{"Empty value", "mappings:\n  \"a\": \"\"\n"},
		{"Not YAML", "{{{"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Errorf("expected error for %q", tc.data)
			}
		})
	}
}

func TestParseEmptyDocument(t *testing.T) {
	entries, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.yaml")
	if err := os.WriteFile(path, []byte("mappings:\n  \"†\": \"*\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	entries, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if entries['†'] != '*' {
		t.Errorf("entries['†'] = %q, want '*'", entries['†'])
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadDirMergesLexically(t *testing.T) {
	dir := t.TempDir()
	// Later file wins on the shared key.
	if err := os.WriteFile(filepath.Join(dir, "10-base.yaml"),
		[]byte("mappings:\n  \"†\": \"*\"\n  \"…\": \".\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "20-site.yaml"),
		[]byte("mappings:\n  \"†\": \"+\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	entries, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries['†'] != '+' {
		t.Errorf("entries['†'] = %q, want '+' from the later file", entries['†'])
	}
	if entries[0x2026] != '.' {
		t.Errorf("entries[U+2026] = %q, want '.'", entries[0x2026])
	}
}

func TestMerge(t *testing.T) {
	base := map[rune]rune{'a': 'x', 'b': 'y'}
	overrides := map[rune]rune{'b': 'z', 'c': 'w'}

	merged := Merge(base, overrides)

	if len(merged) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(merged))
	}
	if merged['a'] != 'x' || merged['b'] != 'z' || merged['c'] != 'w' {
		t.Errorf("unexpected merge result: %v", merged)
	}
	// Inputs stay untouched.
	if base['b'] != 'y' {
		t.Error("Merge modified the base table")
	}
	if overrides['b'] != 'z' {
		t.Error("Merge modified the overrides")
	}
}
