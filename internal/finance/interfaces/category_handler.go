package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/spendwise/spendwise/internal/finance/application"
	"github.com/spendwise/spendwise/internal/finance/domain"
)

type CategoryServiceInterface interface {
	GetUserCategories(userID string) (application.CategorySet, error)
	CreateCategory(category *domain.Category) error
	RenameCategory(categoryID, userID, name string) error
	DeleteCategory(categoryID, userID string) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewCategoryHandler(service CategoryServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		log.Fatal("Service and response functions must not be nil")
		return nil
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// GetCategories returns the user's categories split by type. The first call
// for a fresh user seeds the predefined sets.
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categories, err := h.service.GetUserCategories(userID)
	if err != nil {
		handleServiceError(h.respondError, w, err, "Failed to retrieve categories")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   categories,
	})
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	category.UserID = userID

	if err := h.service.CreateCategory(&category); err != nil {
		handleServiceError(h.respondError, w, err, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully created.",
		"data":    category,
	})
}

func (h *CategoryHandler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.RenameCategory(r.PathValue("id"), userID, req.Name); err != nil {
		handleServiceError(h.respondError, w, err, "Failed to update category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully updated.",
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteCategory(r.PathValue("id"), userID); err != nil {
		handleServiceError(h.respondError, w, err, "Failed to delete category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully deleted.",
	})
}
