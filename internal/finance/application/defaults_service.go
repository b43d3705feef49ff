package application

import "github.com/spendwise/spendwise/internal/finance/domain"

var predefinedAccountTypes = []string{
	"Card 💳",
	"UPI 💻",
	"Cash 💸",
	"Bank Account 🏦",
	"Digital Wallet 📈",
	"Other 💡",
	"Online Payment 💳",
}

var predefinedIncomeCategories = []string{
	"Allowance 💰",
	"Salary 💼",
	"Petty Cash 💵",
	"Bonus 🎉",
	"Investment 📈",
	"Freelance 🆓",
	"Gifts 🎁",
	"Rental Income 🏠",
	"Other 🔄",
}

var predefinedExpenseCategories = []string{
	"Food 🍔",
	"Transportation 🚗",
	"Health 🏥",
	"Education 📚",
	"Clothing & Needs 👕",
	"Entertainment 🎭",
	"Utilities 💡",
	"Housing 🏘️",
	"Debt Payments 💳",
	"Savings 🏦",
	"Personal Care 💆",
	"Travel ✈️",
	"Gifts & Donations 🎀",
	"Miscellaneous 🛒",
}

type UserDirectory interface {
	UserExists(userID string) (bool, error)
}

// DefaultsService populates a user's starter categories and account types
// on first access. Each predefined set is seeded independently and only when
// the user has zero rows of that set; a user who already created even one
// custom row of a set keeps it untouched.
type DefaultsService struct {
	users        UserDirectory
	categories   domain.CategoryRepository
	accountTypes domain.AccountTypeRepository
}

func NewDefaultsService(users UserDirectory, categories domain.CategoryRepository, accountTypes domain.AccountTypeRepository) *DefaultsService {
	return &DefaultsService{
		users:        users,
		categories:   categories,
		accountTypes: accountTypes,
	}
}

// EnsureCategories seeds the income and expense sets independently. A user
// id without a matching user row is an orphaned session; seeding is skipped
// without error.
func (s *DefaultsService) EnsureCategories(userID string) error {
	exists, err := s.users.UserExists(userID)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	count, err := s.categories.CountByUserAndType(userID, domain.TypeIncome)
	if err != nil {
		return err
	}
	if count == 0 {
		if err := s.categories.SeedDefaults(userID, domain.TypeIncome, predefinedIncomeCategories); err != nil {
			return err
		}
	}

	count, err = s.categories.CountByUserAndType(userID, domain.TypeExpense)
	if err != nil {
		return err
	}
	if count == 0 {
		if err := s.categories.SeedDefaults(userID, domain.TypeExpense, predefinedExpenseCategories); err != nil {
			return err
		}
	}
	return nil
}

func (s *DefaultsService) EnsureAccountTypes(userID string) error {
	exists, err := s.users.UserExists(userID)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	count, err := s.accountTypes.CountByUser(userID)
	if err != nil {
		return err
	}
	if count == 0 {
		return s.accountTypes.SeedDefaults(userID, predefinedAccountTypes)
	}
	return nil
}
