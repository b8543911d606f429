package scanner

import "bytes"

// isAttrNameByte reports whether c may appear in an attribute name.
// Everything except control characters, whitespace, quotes, '>', '/' and
// '=' qualifies, so bogus tokens like "<i" are scanned as names.
func isAttrNameByte(c byte) bool {
	return c > 0x20 && c != '"' && c != '\'' && c != '>' && c != '/' && c != '='
}

// scanAttributes consumes attribute name/value pairs starting at off, which
// points just past a tag name inside a tag. It returns the attributes keyed
// by normalized name together with the offset of the first byte that cannot
// start another attribute. Later duplicate names overwrite earlier ones.
func (s *Scanner) scanAttributes(off int) (map[string]Attr, int) {
	n := len(s.buf)
	attrs := map[string]Attr{}
	for {
		p := off
		for p < n && isSpaceByte(s.buf[p]) {
			p++
		}
		if p >= n || !isAttrNameByte(s.buf[p]) {
			return attrs, off
		}
		nameStart := p
		for p < n && isAttrNameByte(s.buf[p]) {
			p++
		}
		name := normalizeName(string(s.buf[nameStart:p]))
		attr := Attr{Bare: true}
		off = p

		q := p
		for q < n && isSpaceByte(s.buf[q]) {
			q++
		}
		if q < n && s.buf[q] == '=' {
			q++
			for q < n && isSpaceByte(s.buf[q]) {
				q++
			}
			if q < n && (s.buf[q] == '"' || s.buf[q] == '\'') {
				rel := bytes.IndexByte(s.buf[q+1:], s.buf[q])
				if rel < 0 {
					// unterminated quote: the attribute stays bare and the
					// enclosing tag ends unterminated at the opening quote
					attrs[name] = attr
					return attrs, q
				}
				attr = Attr{Val: string(s.buf[q+1 : q+1+rel])}
				off = q + 1 + rel + 1
			} else {
				valStart := q
				for q < n && !isSpaceByte(s.buf[q]) &&
					s.buf[q] != '"' && s.buf[q] != '\'' &&
					s.buf[q] != '=' && s.buf[q] != '<' && s.buf[q] != '>' {
					q++
				}
				attr = Attr{Val: string(s.buf[valStart:q])}
				off = q
			}
		}
		attrs[name] = attr
	}
}
