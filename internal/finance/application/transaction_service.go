package application

import (
	"time"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/finance/domain"
	financeErrors "github.com/spendwise/spendwise/internal/finance/errors"
)

type CategoryServiceInterface interface {
	ExistsForUser(userID, name, categoryType string) (bool, error)
}

type TransactionService struct {
	repo            domain.TransactionRepository
	categoryService CategoryServiceInterface
}

func NewTransactionService(repo domain.TransactionRepository, categoryService CategoryServiceInterface) *TransactionService {
	return &TransactionService{repo: repo, categoryService: categoryService}
}

// CreateTransaction validates the transaction and checks that its category
// exists for the user with a matching type before anything is written. The
// category check runs only at creation; later renames of the category do
// not touch historical transactions.
func (s *TransactionService) CreateTransaction(transaction *domain.Transaction) error {
	transaction.ID = uuid.NewString()
	now := time.Now().UTC()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now
	if err := transaction.Validate(); err != nil {
		return err
	}

	exists, err := s.categoryExists(transaction.UserID, transaction.Category, transaction.Type)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.ErrInvalidCategory
	}

	return s.repo.Save(*transaction)
}

// categoryExists matches income and expense transactions against a category
// of the same type. Transfers have no category type of their own and accept
// any category the user owns.
func (s *TransactionService) categoryExists(userID, name, transactionType string) (bool, error) {
	if transactionType != domain.TypeTransfer {
		return s.categoryService.ExistsForUser(userID, name, transactionType)
	}
	exists, err := s.categoryService.ExistsForUser(userID, name, domain.TypeIncome)
	if err != nil || exists {
		return exists, err
	}
	return s.categoryService.ExistsForUser(userID, name, domain.TypeExpense)
}

func (s *TransactionService) GetUserTransactions(userID string) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) GetBookmarkedTransactions(userID string) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindBookmarked(userID)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) UpdateTransaction(transaction domain.Transaction) error {
	transaction.UpdatedAt = time.Now().UTC()
	if err := transaction.Validate(); err != nil {
		return err
	}
	return s.repo.Update(transaction)
}

func (s *TransactionService) DeleteTransaction(transactionID, userID string) error {
	return s.repo.Delete(transactionID, userID)
}

// ToggleBookmark flips the bookmarked flag and returns the new value.
func (s *TransactionService) ToggleBookmark(transactionID, userID string) (bool, error) {
	transaction, err := s.repo.FindByID(transactionID, userID)
	if err != nil {
		return false, err
	}
	bookmarked := !transaction.Bookmarked
	if err := s.repo.UpdateBookmarked(transactionID, userID, bookmarked, time.Now().UTC()); err != nil {
		return false, err
	}
	return bookmarked, nil
}

func (s *TransactionService) GetMonthlyReport(userID string, month time.Month, year int, query string) (MonthlyReport, error) {
	transactions, err := s.repo.FindByUser(userID)
	if err != nil {
		return MonthlyReport{}, err
	}
	return BuildMonthlyReport(transactions, month, year, query), nil
}
