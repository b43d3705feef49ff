package infrastructure

import (
	"time"

	"github.com/spendwise/spendwise/internal/finance/domain"
	financeErrors "github.com/spendwise/spendwise/internal/finance/errors"
)

// In-memory repositories used by the application-layer tests.

type MockTransactionRepository struct {
	Transactions []domain.Transaction
	SaveErr      error
}

func (m *MockTransactionRepository) Save(transaction domain.Transaction) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Transactions = append(m.Transactions, transaction)
	return nil
}

func (m *MockTransactionRepository) FindByUser(userID string) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			transactions = append(transactions, transaction)
		}
	}
	return transactions, nil
}

func (m *MockTransactionRepository) FindBookmarked(userID string) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID && transaction.Bookmarked {
			transactions = append(transactions, transaction)
		}
	}
	return transactions, nil
}

func (m *MockTransactionRepository) FindByID(transactionID, userID string) (*domain.Transaction, error) {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			transaction := m.Transactions[i]
			return &transaction, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockTransactionRepository) Update(transaction domain.Transaction) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transaction.ID && m.Transactions[i].UserID == transaction.UserID {
			transaction.Bookmarked = m.Transactions[i].Bookmarked
			transaction.CreatedAt = m.Transactions[i].CreatedAt
			m.Transactions[i] = transaction
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockTransactionRepository) UpdateBookmarked(transactionID, userID string, bookmarked bool, updatedAt time.Time) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			m.Transactions[i].Bookmarked = bookmarked
			m.Transactions[i].UpdatedAt = updatedAt
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockTransactionRepository) Delete(transactionID, userID string) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID && m.Transactions[i].UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

type MockCategoryRepository struct {
	Categories []domain.Category
}

func (m *MockCategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	var categories []domain.Category
	for _, category := range m.Categories {
		if category.UserID == userID {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (m *MockCategoryRepository) FindByUserAndType(userID, categoryType string) ([]domain.Category, error) {
	var categories []domain.Category
	for _, category := range m.Categories {
		if category.UserID == userID && category.Type == categoryType {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (m *MockCategoryRepository) ExistsForUser(userID, name, categoryType string) (bool, error) {
	for _, category := range m.Categories {
		if category.UserID == userID && category.Name == name && category.Type == categoryType {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepository) CountByUserAndType(userID, categoryType string) (int, error) {
	count := 0
	for _, category := range m.Categories {
		if category.UserID == userID && category.Type == categoryType {
			count++
		}
	}
	return count, nil
}

func (m *MockCategoryRepository) SeedDefaults(userID, categoryType string, names []string) error {
	for _, name := range names {
		exists, _ := m.ExistsForUser(userID, name, categoryType)
		if exists {
			continue
		}
		m.Categories = append(m.Categories, domain.Category{
			ID:     name, // stable fake id, good enough for tests
			Name:   name,
			Type:   categoryType,
			UserID: userID,
		})
	}
	return nil
}

func (m *MockCategoryRepository) Save(category domain.Category) error {
	m.Categories = append(m.Categories, category)
	return nil
}

func (m *MockCategoryRepository) Rename(categoryID, userID, name string, updatedAt time.Time) error {
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID && m.Categories[i].UserID == userID {
			m.Categories[i].Name = name
			m.Categories[i].UpdatedAt = updatedAt
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockCategoryRepository) Delete(categoryID, userID string) error {
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID && m.Categories[i].UserID == userID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

type MockAccountTypeRepository struct {
	AccountTypes []domain.AccountType
}

func (m *MockAccountTypeRepository) FindByUser(userID string) ([]domain.AccountType, error) {
	var accountTypes []domain.AccountType
	for _, accountType := range m.AccountTypes {
		if accountType.UserID == userID {
			accountTypes = append(accountTypes, accountType)
		}
	}
	return accountTypes, nil
}

func (m *MockAccountTypeRepository) CountByUser(userID string) (int, error) {
	count := 0
	for _, accountType := range m.AccountTypes {
		if accountType.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *MockAccountTypeRepository) SeedDefaults(userID string, names []string) error {
	for _, name := range names {
		m.AccountTypes = append(m.AccountTypes, domain.AccountType{ID: name, Name: name, UserID: userID})
	}
	return nil
}

func (m *MockAccountTypeRepository) Save(accountType domain.AccountType) error {
	m.AccountTypes = append(m.AccountTypes, accountType)
	return nil
}

func (m *MockAccountTypeRepository) Rename(accountTypeID, userID, name string, updatedAt time.Time) error {
	for i := range m.AccountTypes {
		if m.AccountTypes[i].ID == accountTypeID && m.AccountTypes[i].UserID == userID {
			m.AccountTypes[i].Name = name
			m.AccountTypes[i].UpdatedAt = updatedAt
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockAccountTypeRepository) Delete(accountTypeID, userID string) error {
	for i := range m.AccountTypes {
		if m.AccountTypes[i].ID == accountTypeID && m.AccountTypes[i].UserID == userID {
			m.AccountTypes = append(m.AccountTypes[:i], m.AccountTypes[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

type MockBudgetRepository struct {
	Budgets []domain.Budget
}

func (m *MockBudgetRepository) FindByUser(userID string) ([]domain.Budget, error) {
	var budgets []domain.Budget
	for _, budget := range m.Budgets {
		if budget.UserID == userID {
			budgets = append(budgets, budget)
		}
	}
	return budgets, nil
}

func (m *MockBudgetRepository) Save(budget domain.Budget) error {
	m.Budgets = append(m.Budgets, budget)
	return nil
}

func (m *MockBudgetRepository) Update(budget domain.Budget) error {
	for i := range m.Budgets {
		if m.Budgets[i].ID == budget.ID && m.Budgets[i].UserID == budget.UserID {
			budget.CreatedAt = m.Budgets[i].CreatedAt
			m.Budgets[i] = budget
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockBudgetRepository) Delete(budgetID, userID string) error {
	for i := range m.Budgets {
		if m.Budgets[i].ID == budgetID && m.Budgets[i].UserID == userID {
			m.Budgets = append(m.Budgets[:i], m.Budgets[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

type MockNoteRepository struct {
	Notes []domain.Note
}

func (m *MockNoteRepository) FindByUser(userID string) ([]domain.Note, error) {
	var notes []domain.Note
	for _, note := range m.Notes {
		if note.UserID == userID {
			notes = append(notes, note)
		}
	}
	return notes, nil
}

func (m *MockNoteRepository) FindByID(noteID, userID string) (*domain.Note, error) {
	for i := range m.Notes {
		if m.Notes[i].ID == noteID && m.Notes[i].UserID == userID {
			note := m.Notes[i]
			return &note, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockNoteRepository) Save(note domain.Note) error {
	m.Notes = append(m.Notes, note)
	return nil
}

func (m *MockNoteRepository) Update(note domain.Note) error {
	for i := range m.Notes {
		if m.Notes[i].ID == note.ID && m.Notes[i].UserID == note.UserID {
			note.Liked = m.Notes[i].Liked
			note.Pinned = m.Notes[i].Pinned
			note.CreatedAt = m.Notes[i].CreatedAt
			m.Notes[i] = note
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockNoteRepository) UpdateLiked(noteID, userID string, liked bool, updatedAt time.Time) error {
	for i := range m.Notes {
		if m.Notes[i].ID == noteID && m.Notes[i].UserID == userID {
			m.Notes[i].Liked = liked
			m.Notes[i].UpdatedAt = updatedAt
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockNoteRepository) UpdatePinned(noteID, userID string, pinned bool, updatedAt time.Time) error {
	for i := range m.Notes {
		if m.Notes[i].ID == noteID && m.Notes[i].UserID == userID {
			m.Notes[i].Pinned = pinned
			m.Notes[i].UpdatedAt = updatedAt
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *MockNoteRepository) Delete(noteID, userID string) error {
	for i := range m.Notes {
		if m.Notes[i].ID == noteID && m.Notes[i].UserID == userID {
			m.Notes = append(m.Notes[:i], m.Notes[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

type MockUserDirectory struct {
	UserIDs []string
}

func (m *MockUserDirectory) UserExists(userID string) (bool, error) {
	for _, id := range m.UserIDs {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}
