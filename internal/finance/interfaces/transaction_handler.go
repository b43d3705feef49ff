package interfaces

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/spendwise/spendwise/internal/finance/application"
	"github.com/spendwise/spendwise/internal/finance/domain"
	financeErrors "github.com/spendwise/spendwise/internal/finance/errors"
)

type TransactionServiceInterface interface {
	CreateTransaction(transaction *domain.Transaction) error
	GetUserTransactions(userID string) ([]domain.Transaction, error)
	GetBookmarkedTransactions(userID string) ([]domain.Transaction, error)
	UpdateTransaction(transaction domain.Transaction) error
	DeleteTransaction(transactionID, userID string) error
	ToggleBookmark(transactionID, userID string) (bool, error)
	GetMonthlyReport(userID string, month time.Month, year int, query string) (application.MonthlyReport, error)
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewTransactionHandler(service TransactionServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		log.Fatal("Service and response functions must not be nil")
		return nil
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type transactionRequest struct {
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Account     string  `json:"account"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Note        string  `json:"note"`
	Description string  `json:"description"`
}

func (req *transactionRequest) toTransaction(userID string) (domain.Transaction, error) {
	if req.Date == "" {
		return domain.Transaction{}, financeErrors.NewValidationError("Date is required")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.Transaction{}, financeErrors.NewValidationError("Invalid date format, expected YYYY-MM-DD")
	}
	return domain.Transaction{
		Type:        req.Type,
		Date:        date,
		Account:     req.Account,
		Category:    req.Category,
		Amount:      req.Amount,
		Note:        req.Note,
		Description: req.Description,
		UserID:      userID,
	}, nil
}

func (h *TransactionHandler) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactions, err := h.service.GetUserTransactions(userID)
	if err != nil {
		handleServiceError(h.respondError, w, err, "Failed to retrieve transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   transactions,
	})
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := req.toTransaction(userID)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.CreateTransaction(&transaction); err != nil {
		handleServiceError(h.respondError, w, err, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully created.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := req.toTransaction(userID)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	transaction.ID = r.PathValue("id")

	if err := h.service.UpdateTransaction(transaction); err != nil {
		handleServiceError(h.respondError, w, err, "Failed to update transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully updated.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteTransaction(r.PathValue("id"), userID); err != nil {
		handleServiceError(h.respondError, w, err, "Failed to delete transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully deleted.",
	})
}

func (h *TransactionHandler) GetBookmarkedTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactions, err := h.service.GetBookmarkedTransactions(userID)
	if err != nil {
		handleServiceError(h.respondError, w, err, "Failed to retrieve bookmarked transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   transactions,
	})
}

func (h *TransactionHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bookmarked, err := h.service.ToggleBookmark(r.PathValue("id"), userID)
	if err != nil {
		handleServiceError(h.respondError, w, err, "Failed to bookmark transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "success",
		"bookmarked": bookmarked,
	})
}

func (h *TransactionHandler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	month, year, err := monthYearFromQuery(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.service.GetMonthlyReport(userID, month, year, r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(h.respondError, w, err, "Failed to build transaction report")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   report,
	})
}
