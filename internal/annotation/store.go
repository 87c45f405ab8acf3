package annotation

// Store keeps one board's annotations in the order they were authored.
// It is not safe for concurrent use; a board mutates it from a single
// goroutine.
type Store struct {
	items []Annotation
}

func NewStore(items ...Annotation) *Store {
	s := &Store{}
	s.items = append(s.items, items...)
	return s
}

func (s *Store) Append(a Annotation) {
	s.items = append(s.items, a)
}

// RemoveByID drops the annotation with the given id and reports whether
// one was found.
func (s *Store) RemoveByID(id string) bool {
	for i, a := range s.items {
		if a.ID() == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveLast undoes the most recent append. There is no redo.
func (s *Store) RemoveLast() (Annotation, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last, true
}

func (s *Store) Clear() {
	s.items = nil
}

// ReplaceWhere swaps every annotation matching pred for update(a) and
// returns how many were replaced.
func (s *Store) ReplaceWhere(pred func(Annotation) bool, update func(Annotation) Annotation) int {
	n := 0
	for i, a := range s.items {
		if pred(a) {
			s.items[i] = update(a)
			n++
		}
	}
	return n
}

// FilterOut removes all annotations whose id is in ids.
func (s *Store) FilterOut(ids map[string]struct{}) int {
	if len(ids) == 0 {
		return 0
	}
	kept := s.items[:0:0]
	for _, a := range s.items {
		if _, drop := ids[a.ID()]; !drop {
			kept = append(kept, a)
		}
	}
	n := len(s.items) - len(kept)
	s.items = kept
	return n
}

func (s *Store) Get(id string) (Annotation, bool) {
	for _, a := range s.items {
		if a.ID() == id {
			return a, true
		}
	}
	return nil, false
}

// All returns a copy of the annotations in store order.
func (s *Store) All() List {
	out := make(List, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int { return len(s.items) }

// Motions returns the motion-capable annotations in store order.
func (s *Store) Motions() []Motion {
	var out []Motion
	for _, a := range s.items {
		if m, ok := a.(Motion); ok {
			out = append(out, m)
		}
	}
	return out
}

// Reset replaces the contents with items.
func (s *Store) Reset(items []Annotation) {
	s.items = append([]Annotation(nil), items...)
}
