package interfaces

import (
	"time"

	"github.com/spendwise/spendwise/internal/finance/application"
	"github.com/spendwise/spendwise/internal/finance/domain"
	financeErrors "github.com/spendwise/spendwise/internal/finance/errors"
)

type MockTransactionService struct {
	Transactions []domain.Transaction
	CreateErr    error
}

func (m *MockTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	transaction.ID = "generated-id"
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionService) GetUserTransactions(userID string) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			transactions = append(transactions, transaction)
		}
	}
	return transactions, nil
}

func (m *MockTransactionService) GetBookmarkedTransactions(userID string) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID && transaction.Bookmarked {
			transactions = append(transactions, transaction)
		}
	}
	return transactions, nil
}

func (m *MockTransactionService) UpdateTransaction(transaction domain.Transaction) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transaction.ID && m.Transactions[i].UserID == transaction.UserID {
			m.Transactions[i] = transaction
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockTransactionService) DeleteTransaction(transactionID, userID string) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockTransactionService) ToggleBookmark(transactionID, userID string) (bool, error) {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			m.Transactions[i].Bookmarked = !m.Transactions[i].Bookmarked
			return m.Transactions[i].Bookmarked, nil
		}
	}
	return false, financeErrors.ErrNotFound
}

func (m *MockTransactionService) GetMonthlyReport(userID string, month time.Month, year int, query string) (application.MonthlyReport, error) {
	transactions, _ := m.GetUserTransactions(userID)
	return application.BuildMonthlyReport(transactions, month, year, query), nil
}

type MockCategoryService struct {
	Set       application.CategorySet
	CreateErr error
	Renamed   map[string]string
	Deleted   []string
}

func (m *MockCategoryService) GetUserCategories(userID string) (application.CategorySet, error) {
	return m.Set, nil
}

func (m *MockCategoryService) CreateCategory(category *domain.Category) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	category.ID = "generated-id"
	return nil
}

func (m *MockCategoryService) RenameCategory(categoryID, userID, name string) error {
	if m.Renamed == nil {
		m.Renamed = make(map[string]string)
	}
	m.Renamed[categoryID] = name
	return nil
}

func (m *MockCategoryService) DeleteCategory(categoryID, userID string) error {
	m.Deleted = append(m.Deleted, categoryID)
	return nil
}

type MockBudgetService struct {
	Budgets []domain.Budget
	Report  application.BudgetReport
}

func (m *MockBudgetService) GetUserBudgets(userID string) ([]domain.Budget, error) {
	return m.Budgets, nil
}

func (m *MockBudgetService) CreateBudget(budget *domain.Budget) error {
	if err := budget.Validate(); err != nil {
		return err
	}
	budget.ID = "generated-id"
	m.Budgets = append(m.Budgets, *budget)
	return nil
}

func (m *MockBudgetService) UpdateBudget(budget domain.Budget) error {
	for i := range m.Budgets {
		if m.Budgets[i].ID == budget.ID {
			m.Budgets[i] = budget
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockBudgetService) DeleteBudget(budgetID, userID string) error {
	for i := range m.Budgets {
		if m.Budgets[i].ID == budgetID {
			m.Budgets = append(m.Budgets[:i], m.Budgets[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockBudgetService) GetMonthlyReport(userID string, month time.Month, year int) (application.BudgetReport, error) {
	return m.Report, nil
}
