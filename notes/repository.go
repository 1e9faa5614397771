package notes

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNoteNotFound = errors.New("note not found")
)

// Repository stores notes in memory. Gin serves requests on multiple
// goroutines, so access is guarded by a read-write mutex.
type Repository struct {
	mu    sync.RWMutex
	notes map[string]Note
}

// creates a new in-memory note repository
func NewRepository() *Repository {
	return &Repository{
		notes: make(map[string]Note),
	}
}

// stores a new note
func (r *Repository) Create(_ context.Context, note Note) (*Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes[note.ID] = note

	return &note, nil
}

// retrieves a note by ID
func (r *Repository) Get(_ context.Context, noteID string) (*Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, exists := r.notes[noteID]
	if !exists {
		return nil, ErrNoteNotFound
	}

	return &note, nil
}

// retrieves all stored notes
func (r *Repository) GetAll(_ context.Context) ([]Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Note, 0, len(r.notes))
	for _, note := range r.notes {
		all = append(all, note)
	}

	return all, nil
}

// replaces an existing note
func (r *Repository) Update(_ context.Context, noteID string, note Note) (*Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notes[noteID]; !exists {
		return nil, ErrNoteNotFound
	}

	r.notes[noteID] = note

	return &note, nil
}

// removes a note by ID
func (r *Repository) Delete(_ context.Context, noteID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notes[noteID]; !exists {
		return ErrNoteNotFound
	}

	delete(r.notes, noteID)

	return nil
}

// reports whether a note exists
func (r *Repository) Exists(_ context.Context, noteID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.notes[noteID]

	return exists
}
