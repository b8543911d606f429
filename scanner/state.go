package scanner

import "github.com/pkg/errors"

// cursorState is a snapshot of the cursor's value fields. The buffer never
// mutates, so no structural sharing is needed.
type cursorState struct {
	valid   bool
	offset  int
	index   int
	current *Element
	fresh   bool
}

// PushState saves the cursor so a later RevertState can rewind speculative
// scanning.
func (s *Scanner) PushState() {
	s.states = append(s.states, cursorState{
		valid:   s.valid,
		offset:  s.offset,
		index:   s.index,
		current: s.current,
		fresh:   s.fresh,
	})
}

// PopState discards the most recent snapshot without touching the cursor.
func (s *Scanner) PopState() error {
	if len(s.states) == 0 {
		return errors.New("pop from an empty state stack")
	}
	s.states = s.states[:len(s.states)-1]
	return nil
}

// RevertState discards the most recent snapshot and restores the cursor
// from it.
func (s *Scanner) RevertState() error {
	if len(s.states) == 0 {
		return errors.New("revert from an empty state stack")
	}
	st := s.states[len(s.states)-1]
	s.states = s.states[:len(s.states)-1]
	s.valid = st.valid
	s.offset = st.offset
	s.index = st.index
	s.current = st.current
	s.fresh = st.fresh
	return nil
}

// CountStates returns the number of saved snapshots.
func (s *Scanner) CountStates() int {
	return len(s.states)
}

// ClearStates drops every saved snapshot.
func (s *Scanner) ClearStates() {
	s.states = s.states[:0]
}
