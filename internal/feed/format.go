package feed

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Formatter normalizes feed text for display. Every sign glyph occupies one
// cell, so runes that would take zero or two terminal cells have no sensible
// rendering: zero-width runes are dropped, wide runes become '?', and line
// breaks and tabs collapse to a space. This rewrites display text only; the
// buffer's fed counter still counts the source characters.
func Formatter(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteRune(' ')
		case runewidth.RuneWidth(r) == 0:
		case runewidth.RuneWidth(r) > 1:
			b.WriteRune('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
