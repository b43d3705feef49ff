package infrastructure

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/spendwise/spendwise/internal/finance/domain"
	financeErrors "github.com/spendwise/spendwise/internal/finance/errors"
)

type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

const noteColumns = `id, title, content, color, category, tags, liked, pinned, user_id, created_at, updated_at`

// tags are stored as one comma-delimited column and split on read.
func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(tags string) []string {
	if tags == "" {
		return []string{}
	}
	parts := strings.Split(tags, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func scanNote(row interface{ Scan(...interface{}) error }) (domain.Note, error) {
	var note domain.Note
	var tags string
	err := row.Scan(&note.ID, &note.Title, &note.Content, &note.Color, &note.Category,
		&tags, &note.Liked, &note.Pinned, &note.UserID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return note, err
	}
	note.Tags = splitTags(tags)
	return note, nil
}

func (r *NoteRepository) FindByUser(userID string) ([]domain.Note, error) {
	rows, err := r.db.Query(
		`SELECT `+noteColumns+` FROM notes WHERE user_id = $1 AND deleted_at IS NULL`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func (r *NoteRepository) FindByID(noteID, userID string) (*domain.Note, error) {
	row := r.db.QueryRow(
		`SELECT `+noteColumns+` FROM notes WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		noteID, userID)
	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepository) Save(note domain.Note) error {
	_, err := r.db.Exec(
		`INSERT INTO notes (`+noteColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		note.ID, note.Title, note.Content, note.Color, note.Category, joinTags(note.Tags),
		note.Liked, note.Pinned, note.UserID, note.CreatedAt, note.UpdatedAt,
	)
	return err
}

func (r *NoteRepository) Update(note domain.Note) error {
	result, err := r.db.Exec(
		`UPDATE notes SET title = $1, content = $2, color = $3, category = $4, tags = $5, updated_at = $6
		 WHERE id = $7 AND user_id = $8 AND deleted_at IS NULL`,
		note.Title, note.Content, note.Color, note.Category, joinTags(note.Tags), note.UpdatedAt,
		note.ID, note.UserID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *NoteRepository) UpdateLiked(noteID, userID string, liked bool, updatedAt time.Time) error {
	result, err := r.db.Exec(
		`UPDATE notes SET liked = $1, updated_at = $2
		 WHERE id = $3 AND user_id = $4 AND deleted_at IS NULL`,
		liked, updatedAt, noteID, userID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *NoteRepository) UpdatePinned(noteID, userID string, pinned bool, updatedAt time.Time) error {
	result, err := r.db.Exec(
		`UPDATE notes SET pinned = $1, updated_at = $2
		 WHERE id = $3 AND user_id = $4 AND deleted_at IS NULL`,
		pinned, updatedAt, noteID, userID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (r *NoteRepository) Delete(noteID, userID string) error {
	result, err := r.db.Exec(
		`UPDATE notes SET deleted_at = NOW()
		 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`, noteID, userID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}
