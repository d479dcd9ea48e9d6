package history

// History is the list of submitted input lines with a recall cursor.
// The cursor ranges over [0, Len()]; Len() means "past the end", which
// recalls as an empty line.
type History struct {
	entries []string
	pos     int
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// Push appends a submitted line and moves the cursor past the end.
// Empty lines are recorded too.
func (h *History) Push(line string) {
	h.entries = append(h.entries, line)
	h.pos = len(h.entries)
}

// Prev moves the cursor one step back, stopping at the oldest entry.
// It returns false when there is nothing to recall.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.pos > 0 {
		h.pos--
	}
	return h.entries[h.pos], true
}

// Next moves the cursor one step forward, stopping past the newest entry,
// where it yields an empty line. It returns false when history is empty.
func (h *History) Next() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.pos < len(h.entries) {
		h.pos++
	}
	return h.Current(), true
}

// Current returns the entry under the cursor, or "" past the end.
func (h *History) Current() string {
	if h.pos < 0 || h.pos >= len(h.entries) {
		return ""
	}
	return h.entries[h.pos]
}

// Cursor returns the recall position.
func (h *History) Cursor() int {
	return h.pos
}

// Len returns the total number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []string {
	result := make([]string, len(h.entries))
	copy(result, h.entries)
	return result
}
