package scroll

import (
	"fmt"

	"github.com/fcurrie/ledsign-golang/internal/glyph"
)

// State is an immutable snapshot of the scroll position against the text
// buffered at the time it was derived. Advancing or re-deriving produces a
// new State; an old snapshot stays valid and simply has not seen newer text.
type State struct {
	font      *glyph.Font
	lookahead int
	text      []rune
	offset    int
	drained   bool
}

// NewState creates a scroll state at offset zero. The lookahead is the
// backpressure threshold in dot-columns and must be positive.
func NewState(font *glyph.Font, lookahead int, text []rune) (State, error) {
	if font == nil {
		return State{}, fmt.Errorf("nil font")
	}
	if lookahead <= 0 {
		return State{}, fmt.Errorf("lookahead must be positive, got %d", lookahead)
	}
	return State{font: font, lookahead: lookahead, text: text}, nil
}

// Advance returns a new state scrolled one dot-column further against the
// same text snapshot. It never consults the live buffer.
func (s State) Advance() State {
	s.offset++
	return s
}

// WithText re-derives the state at the same offset after a top-up attempt.
// drained records whether that attempt produced nothing; it is what turns a
// past-the-end offset into the terminal condition.
func (s State) WithText(text []rune, drained bool) State {
	s.text = text
	s.drained = drained
	return s
}

// Offset returns the number of dot-columns scrolled past the left edge.
func (s State) Offset() int {
	return s.offset
}

// totalColumns is the dot-width of the buffered text.
func (s State) totalColumns() int {
	return len(s.text) * s.font.Width()
}

// NeedsMoreData reports whether the unconsumed dot-columns remaining in the
// buffered text have fallen to the lookahead threshold or below. The driver
// uses it to top up the buffer before the display visibly runs dry.
func (s State) NeedsMoreData() bool {
	return s.totalColumns()-s.offset <= s.lookahead
}

// Exhausted reports the terminal condition: the offset has passed the last
// buffered dot-column and the most recent top-up attempt produced nothing.
func (s State) Exhausted() bool {
	return s.drained && s.offset >= s.totalColumns()
}

// Column is one visible dot-column of a projected frame.
type Column struct {
	Glyph   glyph.Glyph
	Offset  int
	PastEnd bool
}

// Frame is the dot representation of a state over a fixed number of visible
// columns, plus the count of characters fully scrolled off the left edge.
type Frame struct {
	Columns          []Column
	ReportableLength int
}

// Project computes the visible dot grid for this state. Columns past the
// end of the buffered text carry the filler glyph and are marked PastEnd.
// Projection is pure: the same state and column count always yield the same
// frame. ReportableLength counts display characters; the driver clamps it
// to the buffer's fed length before reporting progress.
func (s State) Project(visibleColumns int) Frame {
	w := s.font.Width()
	columns := make([]Column, visibleColumns)
	for c := range columns {
		// Glyph widths are uniform across the font, so the absolute
		// dot-column resolves to a character by division.
		a := s.offset + c
		idx := a / w
		if idx >= len(s.text) {
			columns[c] = Column{Glyph: s.font.Filler(), PastEnd: true}
			continue
		}
		g, ok := s.font.Lookup(s.text[idx])
		if !ok {
			g = s.font.Filler()
		}
		columns[c] = Column{Glyph: g, Offset: a % w}
	}

	reportable := s.offset / w
	if reportable > len(s.text) {
		reportable = len(s.text)
	}
	return Frame{Columns: columns, ReportableLength: reportable}
}
