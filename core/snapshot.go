package core

import (
	"slices"
	"sort"
)

// Snapshot is an immutable view of the store. The store hands out the same
// pointer until its next committed mutation, so observers can compare
// snapshots by identity to detect change.
type Snapshot struct {
	stack     []Entry
	resolving map[string]bool
}

var emptySnapshot = &Snapshot{resolving: map[string]bool{}}

func newSnapshot(stack []Entry, resolving map[string]bool) *Snapshot {
	r := make(map[string]bool, len(resolving))
	for id, v := range resolving {
		if v {
			r[id] = true
		}
	}
	return &Snapshot{stack: stack, resolving: r}
}

// Len returns the number of open entries.
func (s *Snapshot) Len() int { return len(s.stack) }

// Entries returns a copy of the stack, bottom first.
func (s *Snapshot) Entries() []Entry { return slices.Clone(s.stack) }

// At returns the entry at position i.
func (s *Snapshot) At(i int) (Entry, bool) {
	if i < 0 || i >= len(s.stack) {
		return Entry{}, false
	}
	return s.stack[i], true
}

// Top returns the global top entry.
func (s *Snapshot) Top() (Entry, bool) {
	return s.At(len(s.stack) - 1)
}

// IndexOf returns the position of id, or -1.
func (s *Snapshot) IndexOf(id string) int {
	for i, e := range s.stack {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// IsResolving reports whether a ResolveWith executor for id is in flight.
func (s *Snapshot) IsResolving(id string) bool { return s.resolving[id] }

// Resolving returns the ids currently resolving, sorted.
func (s *Snapshot) Resolving() []string {
	out := make([]string, 0, len(s.resolving))
	for id := range s.resolving {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Find scans from the top down and returns the most recently pushed entry
// addressed by namespace and key. Older entries with the same address are
// shadowed.
func (s *Snapshot) Find(namespace, key string) (Entry, int, bool) {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i].Matches(namespace, key) {
			return s.stack[i], i, true
		}
	}
	return Entry{}, -1, false
}

// PreviousPayload walks down from position-1 and returns the payload of the
// first entry in namespace. Nested dialogs use it to read their parent's data.
func (s *Snapshot) PreviousPayload(namespace string, position int) (any, bool) {
	if position > len(s.stack) {
		position = len(s.stack)
	}
	for i := position - 1; i >= 0; i-- {
		if s.stack[i].Namespace == namespace {
			return s.stack[i].Payload, true
		}
	}
	return nil, false
}
