package notesclient

import "sync"

// Store holds the client-side note list and selection. Every mutation is a
// single transition that keeps the selection consistent with the list:
// removing the selected note clears the selection, replacing it updates the
// selection in place.
type Store struct {
	mu       sync.RWMutex
	notes    []Note
	selected *Note
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) SetAll(notes []Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append([]Note(nil), notes...)
	if s.selected != nil {
		s.selected = findByID(s.notes, s.selected.ID)
	}
}

func (s *Store) Add(note Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append(s.notes, note)
}

func (s *Store) ReplaceByID(note Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == note.ID {
			s.notes[i] = note
			break
		}
	}
	if s.selected != nil && s.selected.ID == note.ID {
		n := note
		s.selected = &n
	}
}

func (s *Store) RemoveByID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.notes[:0]
	for _, n := range s.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.notes = kept
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}
}

// Select marks the note with the given id as selected. Selecting an id not
// in the list clears the selection.
func (s *Store) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = findByID(s.notes, id)
}

func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Notes returns a snapshot of the list.
func (s *Store) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Note(nil), s.notes...)
}

// Selected returns a copy of the selected note, or nil.
func (s *Store) Selected() *Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	n := *s.selected
	return &n
}

func findByID(notes []Note, id string) *Note {
	for i := range notes {
		if notes[i].ID == id {
			n := notes[i]
			return &n
		}
	}
	return nil
}
