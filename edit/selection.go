package edit

// Selection is a half-open range of flat rune offsets. Start is the
// anchor; End moves with the cursor, so End < Start is a backwards
// selection.
type Selection struct {
	Start  int
	End    int
	active bool
}

// Begin anchors a new selection at the given offset
func (s *Selection) Begin(off int) {
	s.Start = off
	s.End = off
	s.active = true
}

// Extend moves the selection head
func (s *Selection) Extend(off int) {
	if !s.active {
		s.Begin(off)
		return
	}
	s.End = off
}

// Clear deactivates the selection
func (s *Selection) Clear() {
	s.Start = 0
	s.End = 0
	s.active = false
}

// Active reports whether a selection exists (possibly empty)
func (s *Selection) Active() bool { return s.active }

// IsEmpty reports whether the selection covers no text
func (s *Selection) IsEmpty() bool {
	return !s.active || s.Start == s.End
}

// Normalized returns the selection bounds in ascending order
func (s *Selection) Normalized() (lo, hi int) {
	if s.Start <= s.End {
		return s.Start, s.End
	}
	return s.End, s.Start
}

// Contains reports whether offset p falls inside the selection.
// The range is half-open: lo <= p < hi.
func (s *Selection) Contains(p int) bool {
	if s.IsEmpty() {
		return false
	}
	lo, hi := s.Normalized()
	return p >= lo && p < hi
}
