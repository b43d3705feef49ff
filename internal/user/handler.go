package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	financeErrors "github.com/spendwise/spendwise/internal/finance/errors"
)

type Handler struct {
	service      Service
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewUserHandler(
	service Service,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *Handler {
	if respondJSON == nil || respondError == nil {
		log.Fatal("respond functions are required and cannot be nil")
	}
	return &Handler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	newUser, err := h.service.Register(req.Email, req.Username, req.Password)
	if err != nil {
		switch {
		case financeErrors.IsValidationError(err):
			h.respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrEmailAlreadyTaken), errors.Is(err, ErrUsernameAlreadyTaken):
			h.respondError(w, http.StatusConflict, err.Error())
		default:
			log.Printf("failed to register user: %v", err)
			h.respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user":    newUser,
	})
}
