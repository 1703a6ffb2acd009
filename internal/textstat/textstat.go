// Package textstat derives basic size features from stored text, used for
// telemetry on storage records.
package textstat

import (
	"strings"
	"unicode/utf8"
)

// Stats holds byte, rune, word, and line counts for a text payload.
type Stats struct {
	Bytes int
	Runes int
	Words int
	Lines int
}

// Count computes Stats for s. Words split on Unicode whitespace; an empty
// string has zero lines, otherwise lines is 1 plus the newline count.
func Count(s string) Stats {
	lines := 0
	if s != "" {
		lines = 1 + strings.Count(s, "\n")
	}
	return Stats{
		Bytes: len(s),
		Runes: utf8.RuneCountInString(s),
		Words: len(strings.Fields(s)),
		Lines: lines,
	}
}

// Fields returns the stats as telemetry event fields.
func (s Stats) Fields() map[string]any {
	return map[string]any{
		"bytes": s.Bytes,
		"runes": s.Runes,
		"words": s.Words,
		"lines": s.Lines,
	}
}
