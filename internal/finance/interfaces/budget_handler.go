package interfaces

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/spendwise/spendwise/internal/finance/application"
	"github.com/spendwise/spendwise/internal/finance/domain"
)

type BudgetServiceInterface interface {
	GetUserBudgets(userID string) ([]domain.Budget, error)
	CreateBudget(budget *domain.Budget) error
	UpdateBudget(budget domain.Budget) error
	DeleteBudget(budgetID, userID string) error
	GetMonthlyReport(userID string, month time.Month, year int) (application.BudgetReport, error)
}

type BudgetHandler struct {
	service      BudgetServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewBudgetHandler(service BudgetServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *BudgetHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		log.Fatal("Service and response functions must not be nil")
		return nil
	}
	return &BudgetHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *BudgetHandler) GetBudgets(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	budgets, err := h.service.GetUserBudgets(userID)
	if err != nil {
		handleServiceError(h.respondError, w, err, "Failed to retrieve budgets")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   budgets,
	})
}

func (h *BudgetHandler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var budget domain.Budget
	if err := json.NewDecoder(r.Body).Decode(&budget); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	budget.UserID = userID

	if err := h.service.CreateBudget(&budget); err != nil {
		handleServiceError(h.respondError, w, err, "Failed to create budget")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Budget successfully created.",
		"data":    budget,
	})
}

func (h *BudgetHandler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var budget domain.Budget
	if err := json.NewDecoder(r.Body).Decode(&budget); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	budget.ID = r.PathValue("id")
	budget.UserID = userID

	if err := h.service.UpdateBudget(budget); err != nil {
		handleServiceError(h.respondError, w, err, "Failed to update budget")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget successfully updated.",
		"data":    budget,
	})
}

func (h *BudgetHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteBudget(r.PathValue("id"), userID); err != nil {
		handleServiceError(h.respondError, w, err, "Failed to delete budget")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget successfully deleted.",
	})
}

func (h *BudgetHandler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
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

	report, err := h.service.GetMonthlyReport(userID, month, year)
	if err != nil {
		handleServiceError(h.respondError, w, err, "Failed to build budget report")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   report,
	})
}
