package application

import (
	"time"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/finance/domain"
)

type NoteService struct {
	repo domain.NoteRepository
}

func NewNoteService(repo domain.NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

func (s *NoteService) GetUserNotes(userID string) ([]domain.Note, error) {
	notes, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		return []domain.Note{}, nil
	}
	return notes, nil
}

func (s *NoteService) CreateNote(note *domain.Note) error {
	if err := note.Validate(); err != nil {
		return err
	}
	note.ID = uuid.NewString()
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now
	// new notes always start unliked and unpinned
	note.Liked = false
	note.Pinned = false
	return s.repo.Save(*note)
}

func (s *NoteService) UpdateNote(note domain.Note) error {
	if err := note.Validate(); err != nil {
		return err
	}
	note.UpdatedAt = time.Now().UTC()
	return s.repo.Update(note)
}

func (s *NoteService) DeleteNote(noteID, userID string) error {
	return s.repo.Delete(noteID, userID)
}

func (s *NoteService) ToggleLiked(noteID, userID string) (bool, error) {
	note, err := s.repo.FindByID(noteID, userID)
	if err != nil {
		return false, err
	}
	liked := !note.Liked
	if err := s.repo.UpdateLiked(noteID, userID, liked, time.Now().UTC()); err != nil {
		return false, err
	}
	return liked, nil
}

func (s *NoteService) TogglePinned(noteID, userID string) (bool, error) {
	note, err := s.repo.FindByID(noteID, userID)
	if err != nil {
		return false, err
	}
	pinned := !note.Pinned
	if err := s.repo.UpdatePinned(noteID, userID, pinned, time.Now().UTC()); err != nil {
		return false, err
	}
	return pinned, nil
}
