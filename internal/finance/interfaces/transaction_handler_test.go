package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spendwise/spendwise/internal/finance/domain"
	financeErrors "github.com/spendwise/spendwise/internal/finance/errors"
)

func TestCreateTransaction_Success(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]interface{}{
		"type":     "expense",
		"date":     "2024-01-05",
		"account":  "Card 💳",
		"category": "Food 🍔",
		"amount":   42.5,
	})
	req := authedRequest(http.MethodPost, "/api/protected/transactions", "user-1", body)
	w := httptest.NewRecorder()

	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Len(t, service.Transactions, 1)
	assert.Equal(t, "user-1", service.Transactions[0].UserID)
}

func TestCreateTransaction_InvalidDate(t *testing.T) {
	service := &MockTransactionService{}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]interface{}{
		"type":     "expense",
		"date":     "05-01-2024",
		"account":  "Card 💳",
		"category": "Food 🍔",
		"amount":   10,
	})
	req := authedRequest(http.MethodPost, "/api/protected/transactions", "user-1", body)
	w := httptest.NewRecorder()

	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Empty(t, service.Transactions)
}

func TestCreateTransaction_UnknownCategory(t *testing.T) {
	service := &MockTransactionService{CreateErr: financeErrors.ErrInvalidCategory}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]interface{}{
		"type":     "expense",
		"date":     "2024-01-05",
		"account":  "Card 💳",
		"category": "Nope",
		"amount":   10,
	})
	req := authedRequest(http.MethodPost, "/api/protected/transactions", "user-1", body)
	w := httptest.NewRecorder()

	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestCreateTransaction_MissingUserContext(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodPost, "/api/protected/transactions", nil)
	w := httptest.NewRecorder()

	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestToggleBookmark(t *testing.T) {
	service := &MockTransactionService{
		Transactions: []domain.Transaction{
			{ID: "t1", UserID: "user-1"},
		},
	}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authedRequest(http.MethodPatch, "/api/protected/transactions/t1/bookmark", "user-1", nil)
	req.SetPathValue("id", "t1")
	w := httptest.NewRecorder()

	handler.ToggleBookmark(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, true, response["bookmarked"])
}

func TestDeleteTransaction_WrongUserGets404(t *testing.T) {
	service := &MockTransactionService{
		Transactions: []domain.Transaction{
			{ID: "t1", UserID: "user-1"},
		},
	}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authedRequest(http.MethodDelete, "/api/protected/transactions/t1", "someone-else", nil)
	req.SetPathValue("id", "t1")
	w := httptest.NewRecorder()

	handler.DeleteTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Len(t, service.Transactions, 1)
}

func TestGetMonthlyReport_InvalidMonth(t *testing.T) {
	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)

	req := authedRequest(http.MethodGet, "/api/protected/transactions/report?month=13", "user-1", nil)
	w := httptest.NewRecorder()

	handler.GetMonthlyReport(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetMonthlyReport_FiltersBySearchQuery(t *testing.T) {
	service := &MockTransactionService{
		Transactions: []domain.Transaction{
			{ID: "t1", Type: "expense", Date: mustDate("2024-01-05"), Category: "Food 🍔", Amount: 200, UserID: "user-1"},
			{ID: "t2", Type: "income", Date: mustDate("2024-01-10"), Category: "Salary 💼", Amount: 500, UserID: "user-1"},
		},
	}
	handler := NewTransactionHandler(service, respondJSON, respondError)

	req := authedRequest(http.MethodGet, "/api/protected/transactions/report?month=1&year=2024&q=food", "user-1", nil)
	w := httptest.NewRecorder()

	handler.GetMonthlyReport(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Data struct {
			Totals struct {
				Income  float64 `json:"income"`
				Expense float64 `json:"expense"`
				Net     float64 `json:"net"`
			} `json:"totals"`
		} `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, 0.0, response.Data.Totals.Income)
	assert.Equal(t, 200.0, response.Data.Totals.Expense)
	assert.Equal(t, -200.0, response.Data.Totals.Net)
}
