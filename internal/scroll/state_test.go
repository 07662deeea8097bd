package scroll

import (
	"reflect"
	"strings"
	"testing"

	"github.com/fcurrie/ledsign-golang/internal/glyph"
)

func newTestState(t *testing.T, lookahead int, text string) State {
	t.Helper()
	s, err := NewState(glyph.Default, lookahead, []rune(text))
	if err != nil {
		t.Fatalf("NewState() error = %v", err)
	}
	return s
}

// TestNewState tests construction validation
func TestNewState(t *testing.T) {
	tests := []struct {
		name      string
		font      *glyph.Font
		lookahead int
		wantErr   bool
	}{
		{name: "valid", font: glyph.Default, lookahead: 60, wantErr: false},
		{name: "nil font", font: nil, lookahead: 60, wantErr: true},
		{name: "zero lookahead", font: glyph.Default, lookahead: 0, wantErr: true},
		{name: "negative lookahead", font: glyph.Default, lookahead: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewState(tt.font, tt.lookahead, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewState() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestNeedsMoreData tests the backpressure threshold boundary
func TestNeedsMoreData(t *testing.T) {
	w := glyph.Default.Width()

	tests := []struct {
		name      string
		lookahead int
		chars     int
		offset    int
		want      bool
	}{
		{
			// Remaining columns exactly at the threshold.
			name:      "at threshold",
			lookahead: 60,
			chars:     20, // 120 columns
			offset:    60,
			want:      true,
		},
		{
			// One column above the threshold.
			name:      "above threshold",
			lookahead: 60,
			chars:     20,
			offset:    59,
			want:      false,
		},
		{
			name:      "well below threshold",
			lookahead: 60,
			chars:     11, // 66 columns, 56 remaining
			offset:    10,
			want:      true,
		},
		{
			name:      "empty text",
			lookahead: 60,
			chars:     0,
			offset:    0,
			want:      true,
		},
		{
			name:      "offset past end",
			lookahead: 60,
			chars:     5,
			offset:    5*w + 100,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, tt.lookahead, strings.Repeat("A", tt.chars))
			for i := 0; i < tt.offset; i++ {
				s = s.Advance()
			}
			if got := s.NeedsMoreData(); got != tt.want {
				t.Errorf("NeedsMoreData() at offset %d over %d columns = %v, want %v",
					tt.offset, tt.chars*w, got, tt.want)
			}
		})
	}
}

// TestExhausted tests the terminal predicate
func TestExhausted(t *testing.T) {
	w := glyph.Default.Width()
	s := newTestState(t, 60, "HI")

	// Not exhausted while columns remain, drained or not.
	if s.Exhausted() {
		t.Error("Exhausted() at offset 0 = true, want false")
	}
	if s.WithText(s.text, true).Exhausted() {
		t.Error("Exhausted() drained with columns remaining = true, want false")
	}

	// Advance past the last buffered column.
	for i := 0; i < 2*w; i++ {
		s = s.Advance()
	}

	// Past the end but the last top-up still supplied data: not terminal.
	if s.Exhausted() {
		t.Error("Exhausted() past end without drained = true, want false")
	}

	// Past the end and the last top-up produced nothing: terminal.
	s = s.WithText(s.text, true)
	if !s.Exhausted() {
		t.Error("Exhausted() past end with drained = false, want true")
	}

	// A top-up that supplies new text clears the terminal condition.
	s = s.WithText([]rune("HI THERE"), false)
	if s.Exhausted() {
		t.Error("Exhausted() after top-up = true, want false")
	}
}

// TestAdvanceIsPure tests that Advance leaves the original snapshot intact
func TestAdvanceIsPure(t *testing.T) {
	s := newTestState(t, 60, "ABC")
	next := s.Advance()

	if got := s.Offset(); got != 0 {
		t.Errorf("original Offset() = %d, want 0", got)
	}
	if got := next.Offset(); got != 1 {
		t.Errorf("advanced Offset() = %d, want 1", got)
	}
}

// TestProjectRoundTrip tests that "AB" projects as A then B in order with
// zero intra-glyph offsets at the first column of each
func TestProjectRoundTrip(t *testing.T) {
	w := glyph.Default.Width()
	s := newTestState(t, 60, "AB")

	frame := s.Project(2 * w)
	if got := len(frame.Columns); got != 2*w {
		t.Fatalf("len(Columns) = %d, want %d", got, 2*w)
	}

	glyphA, _ := glyph.Default.Lookup('A')
	glyphB, _ := glyph.Default.Lookup('B')

	for c, col := range frame.Columns {
		wantGlyph := glyphA
		if c >= w {
			wantGlyph = glyphB
		}
		if col.Glyph != wantGlyph {
			t.Errorf("column %d has wrong glyph", c)
		}
		if col.Offset != c%w {
			t.Errorf("column %d Offset = %d, want %d", c, col.Offset, c%w)
		}
		if col.PastEnd {
			t.Errorf("column %d PastEnd = true, want false", c)
		}
	}
	if got := frame.ReportableLength; got != 0 {
		t.Errorf("ReportableLength = %d, want 0", got)
	}
}

// TestProjectEmptyBuffer tests that an empty buffer renders all columns past end
func TestProjectEmptyBuffer(t *testing.T) {
	s := newTestState(t, 60, "")
	frame := s.Project(5)

	if got := len(frame.Columns); got != 5 {
		t.Fatalf("len(Columns) = %d, want 5", got)
	}
	filler := glyph.Default.Filler()
	for c, col := range frame.Columns {
		if !col.PastEnd {
			t.Errorf("column %d PastEnd = false, want true", c)
		}
		if col.Glyph != filler {
			t.Errorf("column %d glyph is not the filler", c)
		}
	}
	if got := frame.ReportableLength; got != 0 {
		t.Errorf("ReportableLength = %d, want 0", got)
	}
}

// TestProjectUnknownRune tests filler substitution for uncovered characters
func TestProjectUnknownRune(t *testing.T) {
	w := glyph.Default.Width()
	s := newTestState(t, 60, "é")

	frame := s.Project(w)
	filler := glyph.Default.Filler()
	for c, col := range frame.Columns {
		if col.Glyph != filler {
			t.Errorf("column %d glyph is not the filler", c)
		}
		if col.PastEnd {
			t.Errorf("column %d PastEnd = true, want false", c)
		}
	}
}

// TestProjectIdempotent tests that projection has no hidden mutation
func TestProjectIdempotent(t *testing.T) {
	s := newTestState(t, 60, "SIGN TEXT")
	for i := 0; i < 7; i++ {
		s = s.Advance()
	}

	first := s.Project(10)
	second := s.Project(10)
	if !reflect.DeepEqual(first, second) {
		t.Error("Project() twice on the same state yielded different frames")
	}
}

// TestReportableLengthMonotonic tests that reportable length never decreases
// under advancement, and counts whole characters only
func TestReportableLengthMonotonic(t *testing.T) {
	w := glyph.Default.Width()
	s := newTestState(t, 60, "ABCD")

	last := -1
	for i := 0; i <= 5*w; i++ {
		frame := s.Project(8)
		if frame.ReportableLength < last {
			t.Fatalf("ReportableLength decreased from %d to %d at offset %d",
				last, frame.ReportableLength, s.Offset())
		}
		if want := min(s.Offset()/w, 4); frame.ReportableLength != want {
			t.Errorf("ReportableLength at offset %d = %d, want %d",
				s.Offset(), frame.ReportableLength, want)
		}
		last = frame.ReportableLength
		s = s.Advance()
	}
}
