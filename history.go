package lineedit

// defaultMaxEntries caps in-memory history when the caller does not choose
// a limit.
const defaultMaxEntries = 1000

// History is an append-only record of submitted lines plus a transient
// browse cursor. Browsing never mutates the stored entries: it walks a
// position over them and remembers the in-progress line so that walking
// past the newest entry restores exactly what the user was typing.
type History struct {
	entries    []string
	maxEntries int

	browsing bool
	pos      int    // entries index; len(entries) means "not showing history yet"
	saved    string // in-progress line snapshot taken when browsing began
}

// NewHistory creates a history holding at most maxEntries lines. A value
// of zero or less uses the default limit.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Push appends line as the newest entry. Empty lines and consecutive
// duplicates of the newest entry are not appended. It reports whether the
// line was stored.
func (h *History) Push(line string) bool {
	if line == "" {
		return false
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == line {
		return false
	}
	h.entries = append(h.entries, line)
	if len(h.entries) > h.maxEntries {
		h.entries = h.entries[len(h.entries)-h.maxEntries:]
	}
	return true
}

// BeginBrowse starts browsing, saving current as the restore snapshot and
// placing the browse cursor one past the newest entry. Calling it while
// already browsing is a no-op.
func (h *History) BeginBrowse(current string) {
	if h.browsing {
		return
	}
	h.browsing = true
	h.saved = current
	h.pos = len(h.entries)
}

// Browsing reports whether a browse is in progress.
func (h *History) Browsing() bool {
	return h.browsing
}

// Prev moves the browse cursor one step toward older entries, clamped at
// the oldest, and returns the entry text at the new position. With no
// entries it returns the saved snapshot unchanged.
func (h *History) Prev() string {
	if !h.browsing {
		return h.saved
	}
	if h.pos > 0 {
		h.pos--
	}
	if h.pos == len(h.entries) {
		return h.saved
	}
	return h.entries[h.pos]
}

// Next moves the browse cursor one step toward newer entries. Moving past
// the newest entry ends browsing and returns the saved snapshot; further
// calls keep returning the snapshot without any state change.
func (h *History) Next() string {
	if !h.browsing {
		return h.saved
	}
	h.pos++
	if h.pos >= len(h.entries) {
		h.browsing = false
		h.pos = len(h.entries)
		return h.saved
	}
	return h.entries[h.pos]
}

// EndBrowse discards the browse state, snapshot included.
func (h *History) EndBrowse() {
	h.browsing = false
	h.pos = len(h.entries)
	h.saved = ""
}

// Entries returns a copy of the stored lines, oldest first.
func (h *History) Entries() []string {
	return append([]string{}, h.entries...)
}

// SetEntries replaces the stored lines, for example with lines loaded from
// a persistence backend. Any browse in progress is discarded.
func (h *History) SetEntries(entries []string) {
	h.entries = append([]string{}, entries...)
	if len(h.entries) > h.maxEntries {
		h.entries = h.entries[len(h.entries)-h.maxEntries:]
	}
	h.EndBrowse()
}

// Clear removes all stored lines and any browse state.
func (h *History) Clear() {
	h.entries = nil
	h.EndBrowse()
}

// Len returns the number of stored lines.
func (h *History) Len() int {
	return len(h.entries)
}
