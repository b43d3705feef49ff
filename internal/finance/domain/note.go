package domain

import (
	"time"

	"github.com/spendwise/spendwise/internal/finance/errors"
)

// Note is a free-form note with a color tag and a flat tag list. Its
// category field is plain text and independent of the Category entity.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Liked     bool      `json:"liked"`
	Pinned    bool      `json:"pinned"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *Note) Validate() error {
	if n.Title == "" {
		return errors.NewValidationError("Title is required")
	}
	if n.Content == "" {
		return errors.NewValidationError("Content is required")
	}
	return nil
}

type NoteRepository interface {
	FindByUser(userID string) ([]Note, error)
	FindByID(noteID, userID string) (*Note, error)
	Save(note Note) error
	Update(note Note) error
	UpdateLiked(noteID, userID string, liked bool, updatedAt time.Time) error
	UpdatePinned(noteID, userID string, pinned bool, updatedAt time.Time) error
	Delete(noteID, userID string) error
}
