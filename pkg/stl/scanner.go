package stl

// fieldScanner extracts whitespace-delimited fields from input delivered
// in arbitrary chunks. Chunk boundaries may fall anywhere, including in
// the middle of a field: the partial text is carried in pending and
// completed by the next chunk. Consumed input is never re-scanned.
type fieldScanner struct {
	chunk   []byte // unconsumed remainder of the current chunk
	pending []byte // partial field carried across chunk boundaries
	offset  int    // absolute offset of the next unconsumed byte
	start   int    // absolute offset where the pending field began
}

// whitespace per the STL grammar: space, tab, newline, carriage return.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// setChunk hands the scanner the next chunk. Any unconsumed remainder of
// the previous chunk has already been drained by next, so the scanner
// only ever holds one chunk plus the pending field bytes.
func (s *fieldScanner) setChunk(chunk []byte) {
	s.chunk = chunk
}

// next returns the next complete field and the byte offset it began at.
// ok is false when the current chunk is exhausted before a field is
// delimited; the partial text (if any) is retained and the scanner must
// be re-entered with the next chunk.
func (s *fieldScanner) next() (field string, offset int, ok bool) {
	if len(s.pending) == 0 {
		for len(s.chunk) > 0 && isSpace(s.chunk[0]) {
			s.chunk = s.chunk[1:]
			s.offset++
		}
		if len(s.chunk) == 0 {
			return "", 0, false
		}
		s.start = s.offset
	}

	i := 0
	for i < len(s.chunk) && !isSpace(s.chunk[i]) {
		i++
	}
	s.pending = append(s.pending, s.chunk[:i]...)
	s.offset += i
	if i == len(s.chunk) {
		// Chunk ended mid-field; suspend until more input arrives.
		s.chunk = nil
		return "", 0, false
	}
	s.chunk = s.chunk[i:]

	field = string(s.pending)
	s.pending = s.pending[:0]
	return field, s.start, true
}

// flush returns the pending partial field as a final, end-of-input
// delimited field. ok is false when nothing is pending.
func (s *fieldScanner) flush() (field string, offset int, ok bool) {
	if len(s.pending) == 0 {
		return "", 0, false
	}
	field = string(s.pending)
	s.pending = s.pending[:0]
	return field, s.start, true
}
