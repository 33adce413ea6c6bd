// Package result holds the most recent committed pick.
package result

// DefaultPlaceholder is shown when there is no result.
const DefaultPlaceholder = "—"

// Store holds the last committed pick and what the result area displays.
// A notice (such as the empty-input message) is displayed without becoming
// the stored pick, so copying after a notice copies nothing.
type Store struct {
	text        string
	notice      string
	placeholder string
}

// New creates an empty store using placeholder for the empty display.
// An empty placeholder falls back to DefaultPlaceholder.
func New(placeholder string) *Store {
	s := &Store{}
	s.SetPlaceholder(placeholder)
	return s
}

// SetPlaceholder changes the glyph displayed when the store is empty.
func (s *Store) SetPlaceholder(placeholder string) {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	s.placeholder = placeholder
}

// Set stores text as the current pick. Setting "" is the same as Clear.
func (s *Store) Set(text string) {
	s.text = text
	s.notice = ""
}

// Notice displays msg in place of the result and drops any stored pick.
func (s *Store) Notice(msg string) {
	s.text = ""
	s.notice = msg
}

// Clear resets the store to empty.
func (s *Store) Clear() {
	s.text = ""
	s.notice = ""
}

// Text returns the stored pick, or "" when there is none.
func (s *Store) Text() string {
	return s.text
}

// HasResult reports whether a pick is stored.
func (s *Store) HasResult() bool {
	return s.text != ""
}

// HasNotice reports whether a notice is displayed in place of a pick.
func (s *Store) HasNotice() bool {
	return s.text == "" && s.notice != ""
}

// Display returns what the result area should show.
func (s *Store) Display() string {
	switch {
	case s.text != "":
		return s.text
	case s.notice != "":
		return s.notice
	default:
		return s.placeholder
	}
}
