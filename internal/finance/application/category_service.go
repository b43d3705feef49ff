package application

import (
	"time"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/finance/domain"
	financeErrors "github.com/spendwise/spendwise/internal/finance/errors"
)

type CategoryService struct {
	repo     domain.CategoryRepository
	defaults *DefaultsService
}

func NewCategoryService(repo domain.CategoryRepository, defaults *DefaultsService) *CategoryService {
	return &CategoryService{repo: repo, defaults: defaults}
}

type CategorySet struct {
	IncomeCategories  []domain.Category `json:"income_categories"`
	ExpenseCategories []domain.Category `json:"expense_categories"`
	AllCategories     []domain.Category `json:"all_categories"`
}

// GetUserCategories seeds the predefined sets on first access, then returns
// the user's categories split by type.
func (s *CategoryService) GetUserCategories(userID string) (CategorySet, error) {
	if err := s.defaults.EnsureCategories(userID); err != nil {
		return CategorySet{}, err
	}

	income, err := s.repo.FindByUserAndType(userID, domain.TypeIncome)
	if err != nil {
		return CategorySet{}, err
	}
	expense, err := s.repo.FindByUserAndType(userID, domain.TypeExpense)
	if err != nil {
		return CategorySet{}, err
	}

	set := CategorySet{
		IncomeCategories:  income,
		ExpenseCategories: expense,
		AllCategories:     make([]domain.Category, 0, len(income)+len(expense)),
	}
	set.AllCategories = append(set.AllCategories, income...)
	set.AllCategories = append(set.AllCategories, expense...)
	return set, nil
}

func (s *CategoryService) CreateCategory(category *domain.Category) error {
	if category.Name == "" {
		return financeErrors.NewValidationError("Category name is required")
	}
	if category.Type != domain.TypeIncome && category.Type != domain.TypeExpense {
		return financeErrors.NewValidationError("Category type must be 'income' or 'expense'")
	}
	category.ID = uuid.NewString()
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now
	return s.repo.Save(*category)
}

func (s *CategoryService) RenameCategory(categoryID, userID, name string) error {
	if name == "" {
		return financeErrors.NewValidationError("Category name is required")
	}
	return s.repo.Rename(categoryID, userID, name, time.Now().UTC())
}

func (s *CategoryService) DeleteCategory(categoryID, userID string) error {
	return s.repo.Delete(categoryID, userID)
}

func (s *CategoryService) ExistsForUser(userID, name, categoryType string) (bool, error) {
	return s.repo.ExistsForUser(userID, name, categoryType)
}
