package feed

// Static feeds a fixed message in chunks, simulating a producer with
// bounded data. Once the message is spent it answers empty, which drives
// the sign to its terminal state.
type Static struct {
	text  []rune
	pos   int
	chunk int
}

// NewStatic creates a static producer that hands out chunkSize characters
// per request
func NewStatic(text string, chunkSize int) *Static {
	if chunkSize <= 0 {
		chunkSize = 16
	}
	return &Static{text: []rune(text), chunk: chunkSize}
}

// Next returns the next chunk of the message, or empty once spent
func (s *Static) Next(afterFed int) string {
	if s.pos >= len(s.text) {
		return ""
	}
	end := s.pos + s.chunk
	if end > len(s.text) {
		end = len(s.text)
	}
	out := string(s.text[s.pos:end])
	s.pos = end
	return out
}
