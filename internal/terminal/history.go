package terminal

// History records submitted lines and keeps a recall cursor, the way arrow
// keys walk a shell history. Growth is unbounded for the life of the session.
type History struct {
	entries []string // oldest first
	cursor  int      // offset from the newest entry; -1 when not recalling
}

func NewHistory() *History {
	return &History{cursor: -1}
}

// Add records line as the most recent entry and resets the recall cursor.
func (h *History) Add(line string) {
	h.entries = append(h.entries, line)
	h.cursor = -1
}

func (h *History) Len() int { return len(h.entries) }

// Entries returns a copy, most recent first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[len(h.entries)-1-i] = e
	}
	return out
}

// Chronological returns a copy, oldest first.
func (h *History) Chronological() []string {
	return append([]string(nil), h.entries...)
}

// Prev steps back to an older entry. At the oldest entry it stays put.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
	}
	return h.at(h.cursor), true
}

// Next steps forward to a newer entry. Moving past the newest entry leaves
// recall and yields an empty line.
func (h *History) Next() (string, bool) {
	if h.cursor <= 0 {
		h.cursor = -1
		return "", false
	}
	h.cursor--
	return h.at(h.cursor), true
}

// Recalling reports whether Prev has moved the cursor since the last Add.
func (h *History) Recalling() bool { return h.cursor >= 0 }

func (h *History) at(offset int) string {
	return h.entries[len(h.entries)-1-offset]
}
