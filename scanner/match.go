package scanner

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

var (
	commentOpen  = []byte("<!--")
	commentClose = []byte("-->")
)

// isNameByte reports whether c may appear in a tag or attribute-less
// element name. Any byte of a multibyte sequence counts as a name byte.
func isNameByte(c byte) bool {
	return c >= utf8.RuneSelf ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == ':'
}

func isSpaceByte(c byte) bool {
	return c <= 0x20
}

// normalizeName lowercases a tag or attribute name when it consists solely
// of single-byte characters. Names containing multibyte sequences are
// preserved verbatim since byte-wise lowercasing would corrupt them.
func normalizeName(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] >= utf8.RuneSelf {
			return name
		}
	}
	return strings.ToLower(name)
}

// match locates the next element at or after offset. It is a pure function
// of the buffer and the offset; cursor state is never consulted. A nil
// return means no element can be matched from this offset, which includes
// the unterminated-comment dead end.
func (s *Scanner) match(offset int) *Element {
	n := len(s.buf)
	for i := offset; i < n; {
		rel := bytes.IndexByte(s.buf[i:], '<')
		if rel < 0 {
			return nil
		}
		i += rel

		if bytes.HasPrefix(s.buf[i:], commentOpen) {
			end := bytes.Index(s.buf[i+len(commentOpen):], commentClose)
			if end < 0 {
				// unterminated comment: a dead end, not even an Invalid element
				return nil
			}
			return &Element{
				Type:  CommentElement,
				Start: i,
				End:   i + len(commentOpen) + end + len(commentClose),
			}
		}

		pos := i + 1
		closing := false
		if pos < n && s.buf[pos] == '/' {
			closing = true
			pos++
		}
		if pos < n && isNameByte(s.buf[pos]) {
			nameStart := pos
			for pos < n && isNameByte(s.buf[pos]) {
				pos++
			}
			name := normalizeName(string(s.buf[nameStart:pos]))
			attrs, attrEnd := s.scanAttributes(pos)
			el := &Element{Start: i, End: s.tagEnd(attrEnd), Name: name}
			if closing {
				// attributes on a closing tag are scanned but discarded
				el.Type = ClosingTagElement
			} else {
				el.Type = OpeningTagElement
				el.Attrs = attrs
			}
			return el
		}
		if i+1 < n {
			if c := s.buf[i+1]; c == '!' || c == '?' || c == '/' {
				rel := bytes.IndexByte(s.buf[i+2:], '>')
				if rel < 0 {
					return &Element{Type: InvalidElement, Start: i, End: i + 2, Symbol: c}
				}
				return &Element{Type: OtherElement, Start: i, End: i + 2 + rel + 1, Symbol: c}
			}
		}
		i++
	}
	return nil
}

// tagEnd consumes the tolerant close syntax after an attribute scan: a run
// of whitespace and slashes before '>'. An unterminated tag ends where the
// attribute scan stopped.
func (s *Scanner) tagEnd(pos int) int {
	j := pos
	for j < len(s.buf) && (isSpaceByte(s.buf[j]) || s.buf[j] == '/') {
		j++
	}
	if j < len(s.buf) && s.buf[j] == '>' {
		return j + 1
	}
	return pos
}
