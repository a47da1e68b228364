package undo

import "time"

// Entry describes one command on the history stack.
type Entry struct {
	ID          string
	Kind        Kind
	Description string
	Timestamp   time.Time
}

type historyEntry struct {
	command   Command
	timestamp time.Time
}

// History is a LIFO stack of executed commands.
type History struct {
	stack    []*historyEntry
	maxDepth int
}

// NewHistory creates an empty history. A maxDepth of zero or less means
// unbounded; otherwise the oldest entries are dropped once the stack grows
// past maxDepth.
func NewHistory(maxDepth int) *History {
	if maxDepth < 0 {
		maxDepth = 0
	}
	return &History{maxDepth: maxDepth}
}

// Push appends cmd to the tail.
func (h *History) Push(cmd Command) {
	h.stack = append(h.stack, &historyEntry{command: cmd, timestamp: time.Now()})
	if h.maxDepth > 0 && len(h.stack) > h.maxDepth {
		excess := len(h.stack) - h.maxDepth
		h.stack = h.stack[excess:]
	}
}

// Pop removes and returns the most recently pushed command.
func (h *History) Pop() (Command, bool) {
	if len(h.stack) == 0 {
		return nil, false
	}
	last := len(h.stack) - 1
	e := h.stack[last]
	h.stack[last] = nil
	h.stack = h.stack[:last]
	return e.command, true
}

// Len returns the number of commands that can be undone.
func (h *History) Len() int { return len(h.stack) }

// Peek describes the command Pop would return.
func (h *History) Peek() (Entry, bool) {
	if len(h.stack) == 0 {
		return Entry{}, false
	}
	return h.stack[len(h.stack)-1].entry(), true
}

// Entries lists the stack oldest first.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.stack))
	for i, e := range h.stack {
		out[i] = e.entry()
	}
	return out
}

// Clear drops every entry.
func (h *History) Clear() { h.stack = nil }

func (e *historyEntry) entry() Entry {
	return Entry{
		ID:          e.command.ID(),
		Kind:        e.command.Kind(),
		Description: e.command.Description(),
		Timestamp:   e.timestamp,
	}
}
