package notes

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service implements note business logic over the repository
type Service struct {
	repository *Repository
}

// creates a new note service
func NewService(repository *Repository) *Service {
	return &Service{repository: repository}
}

// creates a note with a fresh ID and timestamps
func (s *Service) CreateNote(ctx context.Context, title, content string) (*Note, error) {
	now := time.Now().UTC()

	note := Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
		Completed: false,
	}

	return s.repository.Create(ctx, note)
}

// retrieves a note by ID
func (s *Service) GetNote(ctx context.Context, noteID string) (*Note, error) {
	return s.repository.Get(ctx, noteID)
}

// retrieves all notes
func (s *Service) GetAllNotes(ctx context.Context) ([]Note, error) {
	return s.repository.GetAll(ctx)
}

// patches the provided fields of an existing note and refreshes updated_at
func (s *Service) UpdateNote(ctx context.Context, noteID string, req UpdateNoteRequest) (*Note, error) {
	note, err := s.repository.Get(ctx, noteID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}

	if req.Content != nil {
		note.Content = *req.Content
	}

	if req.Completed != nil {
		note.Completed = *req.Completed
	}

	note.UpdatedAt = time.Now().UTC()

	return s.repository.Update(ctx, noteID, *note)
}

// deletes a note by ID
func (s *Service) DeleteNote(ctx context.Context, noteID string) error {
	return s.repository.Delete(ctx, noteID)
}
