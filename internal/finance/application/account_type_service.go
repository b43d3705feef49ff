package application

import (
	"time"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/finance/domain"
	financeErrors "github.com/spendwise/spendwise/internal/finance/errors"
)

type AccountTypeService struct {
	repo     domain.AccountTypeRepository
	defaults *DefaultsService
}

func NewAccountTypeService(repo domain.AccountTypeRepository, defaults *DefaultsService) *AccountTypeService {
	return &AccountTypeService{repo: repo, defaults: defaults}
}

// GetUserAccountTypes seeds the predefined set on first access.
func (s *AccountTypeService) GetUserAccountTypes(userID string) ([]domain.AccountType, error) {
	if err := s.defaults.EnsureAccountTypes(userID); err != nil {
		return nil, err
	}
	accountTypes, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if accountTypes == nil {
		return []domain.AccountType{}, nil
	}
	return accountTypes, nil
}

func (s *AccountTypeService) CreateAccountType(accountType *domain.AccountType) error {
	if accountType.Name == "" {
		return financeErrors.NewValidationError("Account type name is required")
	}
	accountType.ID = uuid.NewString()
	now := time.Now().UTC()
	accountType.CreatedAt = now
	accountType.UpdatedAt = now
	return s.repo.Save(*accountType)
}

func (s *AccountTypeService) RenameAccountType(accountTypeID, userID, name string) error {
	if name == "" {
		return financeErrors.NewValidationError("Account type name is required")
	}
	return s.repo.Rename(accountTypeID, userID, name, time.Now().UTC())
}

func (s *AccountTypeService) DeleteAccountType(accountTypeID, userID string) error {
	return s.repo.Delete(accountTypeID, userID)
}
