package model

import "fmt"

// Extraction is a saved sub-rectangle of the matrix with its own copy of the values.
type Extraction struct {
	ID   string `json:"id"`
	Rect Rect   `json:"rect"`
	Data Matrix `json:"data"`
}

// ExtractionStore keeps extractions in creation order and tracks which one
// is selected in the gallery.
type ExtractionStore struct {
	items    []Extraction
	seq      int
	selected string
}

// NewExtractionStore creates an empty store.
func NewExtractionStore() *ExtractionStore {
	return &ExtractionStore{}
}

// Extract slices rect out of m, assigns a fresh id and appends the record.
// Ids are never reused, even after removal.
func (s *ExtractionStore) Extract(rect Rect, m Matrix) Extraction {
	s.seq++
	e := Extraction{
		ID:   fmt.Sprintf("id_%d", s.seq),
		Rect: rect,
		Data: m.Slice(rect),
	}
	s.items = append(s.items, e)
	return e
}

// Remove deletes the record with the given id. Removing the selected record
// clears the selection. Unknown ids are ignored.
func (s *ExtractionStore) Remove(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	if s.selected == id {
		s.selected = ""
	}
	return true
}

// Select marks id as selected. The id is not checked against the list.
func (s *ExtractionStore) Select(id string) {
	s.selected = id
}

// Selected returns the selected id, if any.
func (s *ExtractionStore) Selected() (string, bool) {
	return s.selected, s.selected != ""
}

// ClearSelection drops the selection without touching the list.
func (s *ExtractionStore) ClearSelection() {
	s.selected = ""
}

// RemoveSelected removes the selected record. Returns false when nothing is
// selected or the selected id no longer exists.
func (s *ExtractionStore) RemoveSelected() bool {
	if s.selected == "" {
		return false
	}
	return s.Remove(s.selected)
}

// Get looks up a record by id.
func (s *ExtractionStore) Get(id string) (Extraction, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Extraction{}, false
	}
	return s.items[idx], true
}

// List returns the records in creation order. The slice is a copy.
func (s *ExtractionStore) List() []Extraction {
	out := make([]Extraction, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of records.
func (s *ExtractionStore) Len() int {
	return len(s.items)
}

func (s *ExtractionStore) indexOf(id string) int {
	for i, e := range s.items {
		if e.ID == id {
			return i
		}
	}
	return -1
}
