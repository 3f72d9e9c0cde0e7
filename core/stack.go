package core

// entryStack keeps entries in insertion order. The last item is the global top.
type entryStack struct {
	items []*entry
}

func (s *entryStack) Push(e *entry) {
	if e == nil {
		return
	}
	s.items = append(s.items, e)
}

func (s *entryStack) Pop() *entry {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	return last
}

// RemoveAt deletes the entry at i and keeps the relative order of the rest.
func (s *entryStack) RemoveAt(i int) *entry {
	if i < 0 || i >= len(s.items) {
		return nil
	}
	e := s.items[i]
	copy(s.items[i:], s.items[i+1:])
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	return e
}

func (s entryStack) IndexOf(id string) int {
	for i, e := range s.items {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s entryStack) Top() *entry {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s entryStack) Len() int {
	return len(s.items)
}

func (s entryStack) views() []Entry {
	out := make([]Entry, len(s.items))
	for i, e := range s.items {
		out[i] = e.Entry
	}
	return out
}
