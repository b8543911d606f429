package scanner

import "github.com/pkg/errors"

// NoLimit disables the stop offset of Find.
const NoLimit = -1

// Find advances the cursor until it lands on an element of the wanted kind
// and, for opening and closing tags, normalized name. It returns nil when
// the scanner runs out of elements or the stop offset is reached. stop is a
// soft bound: it only prevents starting another scan step, so a match that
// begins before stop may extend past it. Find moves the shared cursor as a
// side effect; callers needing a non-destructive lookahead must PushState
// first. Supplying a name for a kind other than a tag is a usage error.
func (s *Scanner) Find(kind ElementType, name string, stop int) (*Element, error) {
	if name != "" && kind != OpeningTagElement && kind != ClosingTagElement {
		return nil, errors.Errorf("find: name filter is only valid for tag elements, got %s", kind)
	}
	name = normalizeName(name)
	for s.valid && (stop < 0 || s.offset < stop) {
		if !s.Next() {
			break
		}
		el := s.current
		if el.Type != kind {
			continue
		}
		if name != "" && el.Name != name {
			continue
		}
		return el, nil
	}
	return nil, nil
}
