package scanner

import "fmt"

//go:generate stringer -type=ElementType
type ElementType uint

const (
	CommentElement ElementType = iota
	OpeningTagElement
	ClosingTagElement
	OtherElement
	InvalidElement
)

// Attr is one scanned attribute value. Bare attributes, present in the
// source without a value, have Bare set and an empty Val.
type Attr struct {
	Val  string
	Bare bool
}

// Element is one tokenized unit of the document. Start and End are byte
// offsets into the scanned buffer; End is exclusive and points right after
// the matched text. An Element carries no references back into the scanner,
// so it stays usable after the cursor moves on.
type Element struct {
	Type    ElementType
	Start   int
	End     int
	Name    string          // opening and closing tags
	Attrs   map[string]Attr // opening tags only
	Symbol  byte            // byte after '<' for Other and Invalid elements
	Content string          // inner text of the doctype lookup result
}

func (e *Element) String() string {
	switch e.Type {
	case OpeningTagElement, ClosingTagElement:
		return fmt.Sprintf("%s(%s)[%d:%d]", e.Type, e.Name, e.Start, e.End)
	case OtherElement, InvalidElement:
		return fmt.Sprintf("%s(%c)[%d:%d]", e.Type, e.Symbol, e.Start, e.End)
	default:
		return fmt.Sprintf("%s[%d:%d]", e.Type, e.Start, e.End)
	}
}
