package notes

import (
	"strings"
	"time"
)

// Note is a single todo item
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Completed bool      `json:"completed"`
}

type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required,max=10000"`
}

// Normalize trims whitespace and rejects whitespace-only fields.
func (r *CreateNoteRequest) Normalize() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return &FieldError{Field: "title", Message: "Field cannot be empty or whitespace only"}
	}

	content := strings.TrimSpace(r.Content)
	if content == "" {
		return &FieldError{Field: "content", Message: "Field cannot be empty or whitespace only"}
	}

	r.Title = title
	r.Content = content

	return nil
}

type UpdateNoteRequest struct {
	Title     *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Content   *string `json:"content,omitempty" binding:"omitempty,max=10000"`
	Completed *bool   `json:"completed,omitempty"`
}

// Normalize trims provided strings, rejects whitespace-only values and
// requires at least one field to be present.
func (r *UpdateNoteRequest) Normalize() error {
	if r.Title == nil && r.Content == nil && r.Completed == nil {
		return &FieldError{
			Field:   "",
			Message: "At least one field (title, content, or completed) must be provided",
		}
	}

	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return &FieldError{Field: "title", Message: "Field cannot be empty or whitespace only"}
		}

		r.Title = &title
	}

	if r.Content != nil {
		content := strings.TrimSpace(*r.Content)
		if content == "" {
			return &FieldError{Field: "content", Message: "Field cannot be empty or whitespace only"}
		}

		r.Content = &content
	}

	return nil
}

// FieldError describes a single invalid request field
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return e.Field + ": " + e.Message
}
