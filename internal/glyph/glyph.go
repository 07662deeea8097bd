package glyph

import (
	"fmt"
	"unicode"
)

// Glyph dimensions. Each glyph is 5 drawn columns plus one blank gap
// column, and 8 physical rows: 6 visible rows framed by one blank row
// above and one below.
const (
	Width       = 6
	Rows        = 8
	VisibleRows = 6
	drawnCols   = 5
)

// Glyph is an immutable dot-matrix bitmap for one character.
// Columns are stored as bytes with one bit per row, the same layout the
// classic 5x7 column fonts use.
type Glyph struct {
	cols [Width]byte
}

// LightAt reports whether the dot at the given column and physical row is on.
// Out-of-range coordinates are always off.
func (g Glyph) LightAt(col, row int) bool {
	if col < 0 || col >= Width || row < 0 || row >= Rows {
		return false
	}
	return g.cols[col]&(1<<row) != 0
}

// Font maps characters to glyphs. It is read-only after construction and
// safe to share without synchronization.
type Font struct {
	glyphs map[rune]Glyph
	filler Glyph
}

// NewFont builds a font from character art: one entry per rune, each entry
// exactly VisibleRows strings of exactly 5 cells, 'X' for on and '.' for off.
// Any other shape is a configuration error.
func NewFont(art map[rune][]string) (*Font, error) {
	glyphs := make(map[rune]Glyph, len(art))
	for r, rows := range art {
		g, err := parseGlyph(rows)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", r, err)
		}
		glyphs[r] = g
	}
	return &Font{glyphs: glyphs}, nil
}

// parseGlyph converts art rows into the column-major bitmap. The visible
// rows land on physical rows 1..6, leaving rows 0 and 7 blank.
func parseGlyph(rows []string) (Glyph, error) {
	var g Glyph
	if len(rows) != VisibleRows {
		return g, fmt.Errorf("got %d rows, want %d", len(rows), VisibleRows)
	}
	for y, row := range rows {
		if len(row) != drawnCols {
			return g, fmt.Errorf("row %d has %d cells, want %d", y, len(row), drawnCols)
		}
		for x := 0; x < drawnCols; x++ {
			switch row[x] {
			case 'X':
				g.cols[x] |= 1 << (y + 1)
			case '.':
			default:
				return g, fmt.Errorf("row %d has invalid cell %q", y, row[x])
			}
		}
	}
	return g, nil
}

// Lookup returns the glyph for a character. Lowercase letters fall back to
// their uppercase glyph. The second return value reports whether the
// character is covered; callers substitute Filler when it is not.
func (f *Font) Lookup(r rune) (Glyph, bool) {
	if g, ok := f.glyphs[r]; ok {
		return g, true
	}
	if up := unicode.ToUpper(r); up != r {
		if g, ok := f.glyphs[up]; ok {
			return g, true
		}
	}
	return f.filler, false
}

// Filler returns the all-off glyph used for unknown characters and for
// columns past the end of buffered text.
func (f *Font) Filler() Glyph {
	return f.filler
}

// Width returns the advance of every glyph in dot-columns. All glyphs in a
// font share the same width.
func (f *Font) Width() int {
	return Width
}
