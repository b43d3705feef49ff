package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/spendwise/spendwise/internal/finance/domain"
)

type AccountTypeServiceInterface interface {
	GetUserAccountTypes(userID string) ([]domain.AccountType, error)
	CreateAccountType(accountType *domain.AccountType) error
	RenameAccountType(accountTypeID, userID, name string) error
	DeleteAccountType(accountTypeID, userID string) error
}

type AccountTypeHandler struct {
	service      AccountTypeServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewAccountTypeHandler(service AccountTypeServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *AccountTypeHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		log.Fatal("Service and response functions must not be nil")
		return nil
	}
	return &AccountTypeHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *AccountTypeHandler) GetAccountTypes(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	accountTypes, err := h.service.GetUserAccountTypes(userID)
	if err != nil {
		handleServiceError(h.respondError, w, err, "Failed to retrieve account types")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   accountTypes,
	})
}

func (h *AccountTypeHandler) CreateAccountType(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var accountType domain.AccountType
	if err := json.NewDecoder(r.Body).Decode(&accountType); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	accountType.UserID = userID

	if err := h.service.CreateAccountType(&accountType); err != nil {
		handleServiceError(h.respondError, w, err, "Failed to create account type")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Account type successfully created.",
		"data":    accountType,
	})
}

func (h *AccountTypeHandler) RenameAccountType(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.RenameAccountType(r.PathValue("id"), userID, req.Name); err != nil {
		handleServiceError(h.respondError, w, err, "Failed to update account type")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Account type successfully updated.",
	})
}

func (h *AccountTypeHandler) DeleteAccountType(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteAccountType(r.PathValue("id"), userID); err != nil {
		handleServiceError(h.respondError, w, err, "Failed to delete account type")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Account type successfully deleted.",
	})
}
