package scroll

import "unicode/utf8"

// Buffer accumulates the text a sign has been fed. It is append-only: the
// stored text only grows, and FedLength counts every source character ever
// appended, independent of any display formatting.
type Buffer struct {
	runes  []rune
	fed    int
	format func(string) string
}

// NewBuffer creates a buffer. The optional format function rewrites
// appended text for display only; it never affects FedLength, which always
// counts source characters.
func NewBuffer(format func(string) string) *Buffer {
	return &Buffer{format: format}
}

// Append appends text to the buffer and reports whether anything was
// appended. Empty input is a no-op.
func (b *Buffer) Append(text string) bool {
	if text == "" {
		return false
	}
	b.fed += utf8.RuneCountInString(text)
	if b.format != nil {
		text = b.format(text)
	}
	b.runes = append(b.runes, []rune(text)...)
	return true
}

// Reset clears the buffered text and the fed counter. Any scroll state
// derived from the old text must be discarded by the caller.
func (b *Buffer) Reset() {
	b.runes = nil
	b.fed = 0
}

// FedLength returns the cumulative count of source characters appended.
func (b *Buffer) FedLength() int {
	return b.fed
}

// Text returns the buffered display text. The returned slice is a snapshot
// view: later appends never change the runes visible through it.
func (b *Buffer) Text() []rune {
	return b.runes[:len(b.runes):len(b.runes)]
}
