package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spendwise/spendwise/internal/finance/domain"
	financeErrors "github.com/spendwise/spendwise/internal/finance/errors"
	"github.com/spendwise/spendwise/internal/finance/infrastructure"
)

func TestTransactionService_CreateTransaction(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	categories := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{
			{ID: "c1", Name: "Food 🍔", Type: domain.TypeExpense, UserID: "user-1"},
		},
	}
	service := NewTransactionService(repo, categories)

	transaction := domain.Transaction{
		Type:     domain.TypeExpense,
		Date:     day(2024, time.January, 5),
		Account:  "Card 💳",
		Category: "Food 🍔",
		Amount:   42.5,
		UserID:   "user-1",
	}
	err := service.CreateTransaction(&transaction)

	assert.NoError(t, err)
	assert.NotEmpty(t, transaction.ID)
	assert.Len(t, repo.Transactions, 1)
}

func TestTransactionService_CreateTransactionUnknownCategory(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	categories := &infrastructure.MockCategoryRepository{}
	service := NewTransactionService(repo, categories)

	transaction := domain.Transaction{
		Type:     domain.TypeExpense,
		Date:     day(2024, time.January, 5),
		Account:  "Card 💳",
		Category: "Nope",
		Amount:   10,
		UserID:   "user-1",
	}
	err := service.CreateTransaction(&transaction)

	assert.ErrorIs(t, err, financeErrors.ErrInvalidCategory)
	assert.Empty(t, repo.Transactions)
}

func TestTransactionService_CreateTransactionCategoryTypeMustMatch(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	categories := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{
			{ID: "c1", Name: "Salary 💼", Type: domain.TypeIncome, UserID: "user-1"},
		},
	}
	service := NewTransactionService(repo, categories)

	transaction := domain.Transaction{
		Type:     domain.TypeExpense,
		Date:     day(2024, time.January, 5),
		Account:  "Card 💳",
		Category: "Salary 💼",
		Amount:   10,
		UserID:   "user-1",
	}
	err := service.CreateTransaction(&transaction)

	assert.ErrorIs(t, err, financeErrors.ErrInvalidCategory)
}

func TestTransactionService_TransferAcceptsAnyOwnedCategory(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{}
	categories := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{
			{ID: "c1", Name: "Savings 🏦", Type: domain.TypeExpense, UserID: "user-1"},
		},
	}
	service := NewTransactionService(repo, categories)

	transaction := domain.Transaction{
		Type:     domain.TypeTransfer,
		Date:     day(2024, time.January, 5),
		Account:  "Bank Account 🏦",
		Category: "Savings 🏦",
		Amount:   300,
		UserID:   "user-1",
	}
	err := service.CreateTransaction(&transaction)

	assert.NoError(t, err)
	assert.Len(t, repo.Transactions, 1)
}

func TestTransactionService_ToggleBookmark(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", UserID: "user-1", Bookmarked: false},
		},
	}
	service := NewTransactionService(repo, &infrastructure.MockCategoryRepository{})

	bookmarked, err := service.ToggleBookmark("t1", "user-1")
	assert.NoError(t, err)
	assert.True(t, bookmarked)

	bookmarked, err = service.ToggleBookmark("t1", "user-1")
	assert.NoError(t, err)
	assert.False(t, bookmarked)
}

func TestTransactionService_ToggleBookmarkWrongUser(t *testing.T) {
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", UserID: "user-1"},
		},
	}
	service := NewTransactionService(repo, &infrastructure.MockCategoryRepository{})

	_, err := service.ToggleBookmark("t1", "someone-else")
	assert.ErrorIs(t, err, financeErrors.ErrNotFound)
	assert.False(t, repo.Transactions[0].Bookmarked)
}

func TestTransactionService_GetUserTransactionsEmpty(t *testing.T) {
	service := NewTransactionService(&infrastructure.MockTransactionRepository{}, &infrastructure.MockCategoryRepository{})

	transactions, err := service.GetUserTransactions("user-1")
	assert.NoError(t, err)
	assert.NotNil(t, transactions)
	assert.Empty(t, transactions)
}
