package router

import "sync"

// History is the session history the navigator moves through.
type History interface {
	// Push adds an entry for path after the current one.
	Push(path string)
	// Replace rewrites the current entry without adding a new one.
	Replace(path string)
	Current() string
	Len() int
}

// MemoryHistory is an in-process History, used by the server renderer and in tests.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []string
}

// NewMemoryHistory returns a history whose only entry is initial.
func NewMemoryHistory(initial string) *MemoryHistory {
	return &MemoryHistory{entries: []string{initial}}
}

func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, path)
}

func (h *MemoryHistory) Replace(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		h.entries = append(h.entries, path)
		return
	}
	h.entries[len(h.entries)-1] = path
}

func (h *MemoryHistory) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1]
}

func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Entries returns a copy of the history, oldest first.
func (h *MemoryHistory) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...)
}
