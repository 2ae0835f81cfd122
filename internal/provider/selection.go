package provider

// Selection tracks the highlighted row and the scroll offset over a
// ranked list. The invariant is 0 <= index < count whenever count > 0;
// an empty list carries no selection and every accessor returns zero.
type Selection struct {
	index    int
	offset   int
	count    int
	window   int
	loopback bool
}

// NewSelection returns a selection over an empty list.
func NewSelection(loopback bool) Selection {
	return Selection{loopback: loopback}
}

// Reset rebinds the selection to a list of count rows, moving the cursor
// back to the top. Called after every ranking pass.
func (s *Selection) Reset(count int) {
	s.count = count
	s.index = 0
	s.offset = 0
}

// SetWindow sets the number of visible rows and re-clamps the scroll
// offset so the selected row stays on screen.
func (s *Selection) SetWindow(rows int) {
	if rows < 1 {
		rows = 1
	}
	s.window = rows
	s.scroll()
}

// Move shifts the selection by delta rows. With loopback enabled the
// cursor wraps at both ends; otherwise it clamps at the boundary.
func (s *Selection) Move(delta int) {
	if s.count == 0 {
		return
	}
	next := s.index + delta
	if s.loopback {
		next %= s.count
		if next < 0 {
			next += s.count
		}
	} else {
		if next < 0 {
			next = 0
		}
		if next > s.count-1 {
			next = s.count - 1
		}
	}
	s.index = next
	s.scroll()
}

// Index returns the selected row, valid only when Count() > 0.
func (s *Selection) Index() int { return s.index }

// Offset returns the first visible row.
func (s *Selection) Offset() int { return s.offset }

// Count returns the number of rows under selection.
func (s *Selection) Count() int { return s.count }

func (s *Selection) scroll() {
	if s.window <= 0 {
		return
	}
	if s.index < s.offset {
		s.offset = s.index
	}
	if s.index >= s.offset+s.window {
		s.offset = s.index - s.window + 1
	}
	if s.offset < 0 {
		s.offset = 0
	}
}
