package scanner

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// DoctypeElement returns the doctype declaration found in the first 1024
// bytes, or nil. The returned element carries the raw text between "<!" and
// ">" in Content. The lookup runs once and is cached; the cursor and state
// stack are untouched.
func (s *Scanner) DoctypeElement() *Element {
	s.resolveDoctype()
	return s.doctype
}

func (s *Scanner) resolveDoctype() {
	if s.doctypeDone {
		return
	}
	s.doctypeDone = true
	s.PushState()
	defer s.RevertState()
	s.Rewind()

	for {
		el, _ := s.Find(OtherElement, "", sniffLimit)
		if el == nil {
			logrus.WithField("method", "resolveDoctype").Debug("no doctype declaration found")
			return
		}
		if el.Symbol != '!' {
			continue
		}
		inner := string(s.buf[el.Start+2 : el.End-1])
		if len(inner) >= len("doctype") && strings.EqualFold(inner[:len("doctype")], "doctype") {
			d := *el
			d.Content = inner
			s.doctype = &d
			return
		}
	}
}
