package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/leoxiewl/want-to-be/internal/engine"
	"github.com/leoxiewl/want-to-be/internal/models"
)

// Session holds presentation state for one MCP connection: the selected
// person and the timeline category filter.
type Session struct {
	id string

	mu              sync.Mutex
	currentPersonID string
	currentCategory models.Category
}

// New creates a session with no selection and the "all" timeline filter.
func New() *Session {
	return &Session{
		id:              uuid.NewString(),
		currentCategory: models.CategoryAll,
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// SelectPerson makes id the current person. The person must exist in people.
func (s *Session) SelectPerson(people []models.Person, id string) (models.Person, error) {
	p, ok := engine.FindByID(people, id)
	if !ok {
		return models.Person{}, fmt.Errorf("person %q not found", id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentPersonID != p.ID {
		// A new person starts with an unfiltered timeline.
		s.currentCategory = models.CategoryAll
	}
	s.currentPersonID = p.ID
	return p, nil
}

// GetCurrent returns the selected person id, or ok=false when none is selected.
func (s *Session) GetCurrent() (id string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPersonID, s.currentPersonID != ""
}

// SetCategory remembers the timeline category filter. CategoryAll resets it.
func (s *Session) SetCategory(c models.Category) error {
	if c != models.CategoryAll && !c.Valid() {
		return fmt.Errorf("unknown category %q", c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentCategory = c
	return nil
}

// Category returns the remembered timeline category filter.
func (s *Session) Category() models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentCategory
}

// Clear resets the selection and the filter.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPersonID = ""
	s.currentCategory = models.CategoryAll
}
