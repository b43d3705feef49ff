package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spendwise/spendwise/internal/finance/application"
	"github.com/spendwise/spendwise/internal/finance/domain"
	financeErrors "github.com/spendwise/spendwise/internal/finance/errors"
)

func TestGetCategories(t *testing.T) {
	service := &MockCategoryService{
		Set: application.CategorySet{
			IncomeCategories:  []domain.Category{{ID: "c1", Name: "Salary 💼", Type: "income", UserID: "user-1"}},
			ExpenseCategories: []domain.Category{{ID: "c2", Name: "Food 🍔", Type: "expense", UserID: "user-1"}},
			AllCategories: []domain.Category{
				{ID: "c1", Name: "Salary 💼", Type: "income", UserID: "user-1"},
				{ID: "c2", Name: "Food 🍔", Type: "expense", UserID: "user-1"},
			},
		},
	}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	req := authedRequest(http.MethodGet, "/api/protected/categories", "user-1", nil)
	w := httptest.NewRecorder()

	handler.GetCategories(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Data application.CategorySet `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Len(t, response.Data.IncomeCategories, 1)
	assert.Len(t, response.Data.ExpenseCategories, 1)
	assert.Len(t, response.Data.AllCategories, 2)
}

func TestCreateCategory_Success(t *testing.T) {
	service := &MockCategoryService{}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]string{
		"name": "Hobbies 🎨",
		"type": "expense",
	})
	req := authedRequest(http.MethodPost, "/api/protected/categories", "user-1", body)
	w := httptest.NewRecorder()

	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response struct {
		Data domain.Category `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "user-1", response.Data.UserID)
	assert.NotEmpty(t, response.Data.ID)
}

func TestCreateCategory_ValidationError(t *testing.T) {
	service := &MockCategoryService{CreateErr: financeErrors.NewValidationError("Category name is required")}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]string{"type": "expense"})
	req := authedRequest(http.MethodPost, "/api/protected/categories", "user-1", body)
	w := httptest.NewRecorder()

	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Category name is required", response["message"])
}

func TestRenameCategory(t *testing.T) {
	service := &MockCategoryService{}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	body, _ := json.Marshal(map[string]string{"name": "Groceries 🛒"})
	req := authedRequest(http.MethodPatch, "/api/protected/categories/c1", "user-1", body)
	req.SetPathValue("id", "c1")
	w := httptest.NewRecorder()

	handler.RenameCategory(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Groceries 🛒", service.Renamed["c1"])
}

func TestDeleteCategory(t *testing.T) {
	service := &MockCategoryService{}
	handler := NewCategoryHandler(service, respondJSON, respondError)

	req := authedRequest(http.MethodDelete, "/api/protected/categories/c1", "user-1", nil)
	req.SetPathValue("id", "c1")
	w := httptest.NewRecorder()

	handler.DeleteCategory(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, []string{"c1"}, service.Deleted)
}
