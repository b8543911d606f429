package scanner

// HTML returns the source text of el, or the whole buffer when el is nil.
func (s *Scanner) HTML(el *Element) string {
	if el == nil {
		return string(s.buf)
	}
	return s.Slice(el.Start, el.End)
}

// Slice returns the buffer bytes in [start, end). Negative indices yield an
// empty string, swapped bounds are reordered and out-of-range bounds are
// clamped to the buffer.
func (s *Scanner) Slice(start, end int) string {
	if start < 0 || end < 0 {
		return ""
	}
	if start > end {
		start, end = end, start
	}
	if start >= len(s.buf) {
		return ""
	}
	if end > len(s.buf) {
		end = len(s.buf)
	}
	return string(s.buf[start:end])
}

// SliceBetween returns the bytes strictly between two elements, in either
// argument order.
func (s *Scanner) SliceBetween(a, b *Element) string {
	if a.Start > b.Start {
		a, b = b, a
	}
	return s.Slice(a.End, b.Start)
}
