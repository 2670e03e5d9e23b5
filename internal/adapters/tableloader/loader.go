// Package tableloader reads mapping-table override files. Overrides let a
// deployment extend or replace canonical mappings without rebuilding: the
// loaded entries are merged over the built-in table before the engine is
// constructed, and the result is immutable from then on.
package tableloader

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// overrideFile is the on-disk shape of an override table:
//
//	mappings:
//	  "†": "*"   # Dagger.
//	  "…": "."
//
// Keys and values must each decode to exactly one Unicode character.
type overrideFile struct {
	Mappings map[string]string `yaml:"mappings"`
}

// Parse decodes a YAML override document into mapping entries.
func Parse(data []byte) (map[rune]rune, error) {
	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse override table: %w", err)
	}

	entries := make(map[rune]rune, len(file.Mappings))
	for key, value := range file.Mappings {
		k, err := singleRune(key)
		if err != nil {
			return nil, fmt.Errorf("invalid mapping key %q: %w", key, err)
		}
		v, err := singleRune(value)
		if err != nil {
			return nil, fmt.Errorf("invalid mapping value %q for key %q: %w", value, key, err)
		}
		if _, dup := entries[k]; dup {
			return nil, fmt.Errorf("duplicate mapping key %q", key)
		}
		entries[k] = v
	}
	return entries, nil
}

// LoadFile reads a single YAML override file.
func LoadFile(path string) (map[rune]rune, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read override table: %w", err)
	}
	return Parse(data)
}

// LoadDir reads every *.yaml file in dir and merges their entries. Later
// files (in lexical order) win on conflicting keys.
func LoadDir(dir string) (map[rune]rune, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list override tables: %w", err)
	}

	merged := make(map[rune]rune)
	for _, file := range files {
		entries, err := LoadFile(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		for k, v := range entries {
			merged[k] = v
		}
	}
	return merged, nil
}

// Merge layers overrides on top of base and returns a new table. Neither
// input is modified.
func Merge(base, overrides map[rune]rune) map[rune]rune {
	merged := make(map[rune]rune, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, fmt.Errorf("not valid UTF-8")
	}
	if size != len(s) {
		return 0, fmt.Errorf("must be exactly one character, got %d", utf8.RuneCountInString(s))
	}
	return r, nil
}
