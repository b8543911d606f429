package scanner

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// sniffLimit bounds encoding and doctype detection to the first 1024 bytes,
// per the HTML5 sniffing algorithms.
const sniffLimit = 1024

const defaultEncoding = "utf-8"

// supportedEncodings is the closed set of names SetFallbackEncoding accepts
// and meta sniffing may resolve to. Each maps to the x/text encoding Escape
// uses to interpret document bytes.
var supportedEncodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso8859-1":    charmap.ISO8859_1,
	"iso-8859-5":   charmap.ISO8859_5,
	"iso8859-5":    charmap.ISO8859_5,
	"iso-8859-15":  charmap.ISO8859_15,
	"iso8859-15":   charmap.ISO8859_15,
	"cp866":        charmap.CodePage866,
	"ibm866":       charmap.CodePage866,
	"866":          charmap.CodePage866,
	"cp1251":       charmap.Windows1251,
	"windows-1251": charmap.Windows1251,
	"win-1251":     charmap.Windows1251,
	"1251":         charmap.Windows1251,
	"cp1252":       charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"1252":         charmap.Windows1252,
	"koi8-r":       charmap.KOI8R,
	"koi8-ru":      charmap.KOI8R,
	"koi8r":        charmap.KOI8R,
	"big5":         traditionalchinese.Big5,
	"950":          traditionalchinese.Big5,
	"big5-hkscs":   traditionalchinese.Big5,
	"gb2312":       simplifiedchinese.GBK,
	"936":          simplifiedchinese.GBK,
	"shift_jis":    japanese.ShiftJIS,
	"sjis":         japanese.ShiftJIS,
	"sjis-win":     japanese.ShiftJIS,
	"cp932":        japanese.ShiftJIS,
	"932":          japanese.ShiftJIS,
	"euc-jp":       japanese.EUCJP,
	"eucjp":        japanese.EUCJP,
	"eucjp-win":    japanese.EUCJP,
	"macroman":     charmap.Macintosh,
}

type encodingInfo struct {
	name     string
	tag      *Element
	fallback bool
}

// Encoding returns the document encoding sniffed from the first 1024 bytes,
// or the fallback when no supported candidate is declared. The result is
// computed once and cached for the Scanner's lifetime.
func (s *Scanner) Encoding() string {
	s.resolveEncoding()
	return s.encoding.name
}

// EncodingTag returns the meta element the sniff settled on, or nil when
// the window held no declaring meta. The element is retained even when its
// declared charset was unsupported and the fallback is in use.
func (s *Scanner) EncodingTag() *Element {
	s.resolveEncoding()
	return s.encoding.tag
}

// UsesFallbackEncoding reports whether the document declared no supported
// encoding.
func (s *Scanner) UsesFallbackEncoding() bool {
	s.resolveEncoding()
	return s.encoding.fallback
}

// SetFallbackEncoding changes the encoding assumed when sniffing finds
// nothing usable. Names outside the supported set are rejected. Once the
// encoding has been resolved the call still validates its argument but
// changes nothing.
func (s *Scanner) SetFallbackEncoding(name string) error {
	name = strings.ToLower(name)
	if _, ok := supportedEncodings[name]; !ok {
		return errors.Errorf("unsupported fallback encoding %q", name)
	}
	if s.encoding == nil {
		s.fallbackEncoding = name
	}
	return nil
}

// resolveEncoding runs the meta sniff inside a pushed state so the cursor
// and state stack observable to the caller stay untouched on every exit
// path.
func (s *Scanner) resolveEncoding() {
	if s.encoding != nil {
		return
	}
	s.PushState()
	defer s.RevertState()
	s.Rewind()

	var candidate string
	var tag *Element
	for {
		el, err := s.Find(OpeningTagElement, "meta", sniffLimit)
		if el == nil || err != nil {
			break
		}
		if a, ok := el.Attrs["charset"]; ok {
			// a bare charset attribute still ends the sniff; the empty
			// candidate resolves to the fallback
			candidate, tag = a.Val, el
			break
		}
		equiv, okEquiv := el.Attrs["http-equiv"]
		content, okContent := el.Attrs["content"]
		if okEquiv && okContent && strings.EqualFold(equiv.Val, "content-type") {
			candidate, tag = charsetFromContent(content.Val), el
			break
		}
	}

	candidate = strings.ToLower(candidate)
	if _, ok := supportedEncodings[candidate]; ok {
		s.encoding = &encodingInfo{name: candidate, tag: tag}
		return
	}
	if candidate != "" {
		logrus.WithField("method", "resolveEncoding").Debugf("unsupported encoding %q, using fallback %q", candidate, s.fallbackEncoding)
	}
	s.encoding = &encodingInfo{name: s.fallbackEncoding, tag: tag, fallback: true}
}

// charsetFromContent extracts the charset token from a content-type pragma
// value such as "text/html; charset=utf-8". The keyword is matched case
// insensitively; quoted values run to the matching quote, unquoted ones to
// the next whitespace or semicolon. The keyword search compares byte
// windows in place: lowercasing the whole value first would shift offsets
// whenever a multibyte character changes length under case mapping.
func charsetFromContent(content string) string {
	const key = "charset="
	i := -1
	for j := 0; j+len(key) <= len(content); j++ {
		if strings.EqualFold(content[j:j+len(key)], key) {
			i = j
			break
		}
	}
	if i < 0 {
		return ""
	}
	v := content[i+len(key):]
	if v == "" {
		return ""
	}
	if v[0] == '"' || v[0] == '\'' {
		if j := strings.IndexByte(v[1:], v[0]); j >= 0 {
			return v[1 : 1+j]
		}
		return ""
	}
	if j := strings.IndexAny(v, " \t\r\n\f;"); j >= 0 {
		return v[:j]
	}
	return v
}
