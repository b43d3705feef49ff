package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/spendwise/spendwise/internal/finance/domain"
)

type NoteServiceInterface interface {
	GetUserNotes(userID string) ([]domain.Note, error)
	CreateNote(note *domain.Note) error
	UpdateNote(note domain.Note) error
	DeleteNote(noteID, userID string) error
	ToggleLiked(noteID, userID string) (bool, error)
	TogglePinned(noteID, userID string) (bool, error)
}

type NoteHandler struct {
	service      NoteServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewNoteHandler(service NoteServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *NoteHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		log.Fatal("Service and response functions must not be nil")
		return nil
	}
	return &NoteHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *NoteHandler) GetNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	notes, err := h.service.GetUserNotes(userID)
	if err != nil {
		handleServiceError(h.respondError, w, err, "Failed to retrieve notes")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   notes,
	})
}

func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var note domain.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	note.UserID = userID

	if err := h.service.CreateNote(&note); err != nil {
		handleServiceError(h.respondError, w, err, "Failed to create note")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Note successfully created.",
		"data":    note,
	})
}

func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var note domain.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	note.ID = r.PathValue("id")
	note.UserID = userID

	if err := h.service.UpdateNote(note); err != nil {
		handleServiceError(h.respondError, w, err, "Failed to update note")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Note successfully updated.",
		"data":    note,
	})
}

func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteNote(r.PathValue("id"), userID); err != nil {
		handleServiceError(h.respondError, w, err, "Failed to delete note")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Note successfully deleted.",
	})
}

func (h *NoteHandler) ToggleLiked(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	liked, err := h.service.ToggleLiked(r.PathValue("id"), userID)
	if err != nil {
		handleServiceError(h.respondError, w, err, "Failed to like note")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"liked":  liked,
	})
}

func (h *NoteHandler) TogglePinned(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	pinned, err := h.service.TogglePinned(r.PathValue("id"), userID)
	if err != nil {
		handleServiceError(h.respondError, w, err, "Failed to pin note")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"pinned": pinned,
	})
}
