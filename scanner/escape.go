package scanner

import "strings"

// EscapeMode selects which quote characters Escape converts to entities.
type EscapeMode uint

const (
	// EscapeCompat converts double quotes and leaves single quotes alone.
	EscapeCompat EscapeMode = iota
	// EscapeQuotes converts both double and single quotes.
	EscapeQuotes
	// EscapeNoQuotes leaves both kinds of quotes alone.
	EscapeNoQuotes
)

// Escape converts HTML-special characters in text to entities. The bytes
// are interpreted in the scanner's resolved encoding and the result is
// returned in that same encoding. With doubleEncode false, sequences that
// already form an entity are left as they are.
func (s *Scanner) Escape(text string, mode EscapeMode, doubleEncode bool) string {
	enc := supportedEncodings[s.Encoding()]
	decoded, err := enc.NewDecoder().String(text)
	if err != nil {
		decoded = text
	}

	var b strings.Builder
	b.Grow(len(decoded))
	for i := 0; i < len(decoded); i++ {
		c := decoded[i]
		switch c {
		case '&':
			if !doubleEncode {
				if n := entityLen(decoded[i:]); n > 0 {
					b.WriteString(decoded[i : i+n])
					i += n - 1
					continue
				}
			}
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			if mode == EscapeNoQuotes {
				b.WriteByte(c)
			} else {
				b.WriteString("&quot;")
			}
		case '\'':
			if mode == EscapeQuotes {
				b.WriteString("&#039;")
			} else {
				b.WriteByte(c)
			}
		default:
			b.WriteByte(c)
		}
	}

	out, err := enc.NewEncoder().String(b.String())
	if err != nil {
		return b.String()
	}
	return out
}

// entityLen returns the length of the entity at the start of s, including
// the ampersand and semicolon, or 0 when s does not start with one. Named,
// decimal and hexadecimal forms are recognized by syntax only.
func entityLen(s string) int {
	if len(s) < 3 || s[0] != '&' {
		return 0
	}
	i := 1
	if s[i] == '#' {
		i++
		hex := false
		if i < len(s) && (s[i] == 'x' || s[i] == 'X') {
			hex = true
			i++
		}
		start := i
		for i < len(s) && isEntityDigit(s[i], hex) {
			i++
		}
		if i == start || i >= len(s) || s[i] != ';' {
			return 0
		}
		return i + 1
	}
	if !isASCIILetter(s[i]) {
		return 0
	}
	for i < len(s) && isASCIIAlnum(s[i]) {
		i++
	}
	if i >= len(s) || s[i] != ';' {
		return 0
	}
	return i + 1
}

func isEntityDigit(c byte, hex bool) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	return hex && ((c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F'))
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIAlnum(c byte) bool {
	return isASCIILetter(c) || (c >= '0' && c <= '9')
}
