// Package nav maps history entries onto what the directory shows: a filter
// view or the match modal.
//
// The history stack is the only record of what should be visible. Closing
// the modal goes back through history and the hide happens in the navigate
// handler, so the back key and the close control share one path.
package nav

import "github.com/abelbrown/kickoff/internal/match"

// Entry is one history record. Pushed entries carry exactly one of Filter or
// ModalOpen; the boot entry carries neither.
type Entry struct {
	Filter    match.Filter
	ModalOpen bool
}

// History is the backing store the Machine drives.
type History interface {
	Push(e Entry)
	Replace(e Entry)
	// Back moves to the previous entry and fires the navigate handler.
	// It returns false when there is nothing to go back to.
	Back() bool
	// Forward moves to the next entry, if any, and fires the navigate handler.
	Forward() bool
	OnNavigate(handler func(Entry))
}

// MemoryHistory is an in-process History with browser semantics: pushing
// drops any forward entries.
type MemoryHistory struct {
	entries []Entry
	cursor  int
	handler func(Entry)
}

// NewMemoryHistory returns a history holding a single empty entry.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{entries: []Entry{{}}}
}

func (h *MemoryHistory) Push(e Entry) {
	h.entries = append(h.entries[:h.cursor+1], e)
	h.cursor++
}

func (h *MemoryHistory) Replace(e Entry) {
	h.entries[h.cursor] = e
}

func (h *MemoryHistory) Back() bool {
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	h.fire()
	return true
}

func (h *MemoryHistory) Forward() bool {
	if h.cursor == len(h.entries)-1 {
		return false
	}
	h.cursor++
	h.fire()
	return true
}

func (h *MemoryHistory) OnNavigate(handler func(Entry)) {
	h.handler = handler
}

func (h *MemoryHistory) fire() {
	if h.handler != nil {
		h.handler(h.entries[h.cursor])
	}
}

// Current returns the entry under the cursor.
func (h *MemoryHistory) Current() Entry {
	return h.entries[h.cursor]
}

// Len returns the number of entries on the stack.
func (h *MemoryHistory) Len() int {
	return len(h.entries)
}

// Index returns the cursor position.
func (h *MemoryHistory) Index() int {
	return h.cursor
}
