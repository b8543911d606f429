package scanner

import (
	"bytes"

	"github.com/sirupsen/logrus"
)

// rawTextTags are elements whose contents are skipped verbatim during
// tokenization instead of being scanned for markup.
var rawTextTags = map[string]bool{
	"style":    true,
	"script":   true,
	"noscript": true,
	"iframe":   true,
	"noframes": true,
}

// Scanner walks a byte buffer of possibly malformed HTML and yields one
// Element at a time without building a document tree. The buffer is fixed
// for the Scanner's lifetime. A Scanner holds mutable cursor and cache
// state and is not safe for concurrent use; concurrent scans need
// independent instances.
type Scanner struct {
	buf     []byte
	valid   bool
	offset  int
	index   int
	current *Element
	fresh   bool

	states []cursorState

	fallbackEncoding string
	encoding         *encodingInfo
	doctype          *Element
	doctypeDone      bool
}

// New creates a Scanner over buf. The first element is not computed until
// Valid, Current, Key or Next is called.
func New(buf []byte) *Scanner {
	s := &Scanner{buf: buf, fallbackEncoding: defaultEncoding}
	s.Rewind()
	return s
}

// NewString creates a Scanner over the bytes of in.
func NewString(in string) *Scanner {
	return New([]byte(in))
}

// Len returns the buffer length in bytes.
func (s *Scanner) Len() int {
	return len(s.buf)
}

// Offset returns the current scan offset. After a successful Next it equals
// the current element's End.
func (s *Scanner) Offset() int {
	return s.offset
}

// Rewind resets the cursor to the start of the buffer. The next observation
// of Valid, Current or Key recomputes the first element.
func (s *Scanner) Rewind() {
	s.valid = true
	s.offset = 0
	s.index = -1
	s.current = nil
	s.fresh = true
}

// prime performs the lazy first advance of a freshly rewound cursor.
func (s *Scanner) prime() {
	if s.fresh {
		s.Next()
	}
}

// Valid reports whether the cursor holds an element. Once the buffer runs
// out of elements Valid stays false until Rewind.
func (s *Scanner) Valid() bool {
	s.prime()
	return s.valid
}

// Current returns the element the cursor is on, or nil when exhausted.
func (s *Scanner) Current() *Element {
	s.prime()
	return s.current
}

// Key returns the 0-based index of the current element, or -1 when the
// cursor holds none.
func (s *Scanner) Key() int {
	s.prime()
	if !s.valid {
		return -1
	}
	return s.index
}

// Next advances to the next element and reports whether one was found.
// Calling Next on an exhausted scanner is a no-op. When the current element
// opened a raw-text tag the scan offset jumps past its contents first.
func (s *Scanner) Next() bool {
	if !s.valid {
		return false
	}
	s.fresh = false
	if s.current != nil && s.current.Type == OpeningTagElement && rawTextTags[s.current.Name] {
		s.offset = s.skipRawText(s.current.Name)
	}
	el := s.match(s.offset)
	if el == nil {
		s.offset = len(s.buf)
		s.current = nil
		s.valid = false
		return false
	}
	s.current = el
	s.offset = el.End
	s.index++
	return true
}

// skipRawText moves the scan offset to the case-insensitive closing tag of
// a raw-text element, or to the end of the buffer when none exists. The
// skipped span is never tokenized, however markup-like it looks.
func (s *Scanner) skipRawText(name string) int {
	needle := []byte("</" + name + ">")
	for i := s.offset; i+len(needle) <= len(s.buf); i++ {
		if bytes.EqualFold(s.buf[i:i+len(needle)], needle) {
			return i
		}
	}
	logrus.WithField("method", "skipRawText").Debugf("no closing tag for %q, skipping to end of buffer", name)
	return len(s.buf)
}
