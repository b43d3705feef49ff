package application

import (
	"time"

	"github.com/google/uuid"
	"github.com/spendwise/spendwise/internal/finance/domain"
)

type BudgetService struct {
	repo         domain.BudgetRepository
	transactions domain.TransactionRepository
}

func NewBudgetService(repo domain.BudgetRepository, transactions domain.TransactionRepository) *BudgetService {
	return &BudgetService{repo: repo, transactions: transactions}
}

func (s *BudgetService) GetUserBudgets(userID string) ([]domain.Budget, error) {
	budgets, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

func (s *BudgetService) CreateBudget(budget *domain.Budget) error {
	if err := budget.Validate(); err != nil {
		return err
	}
	budget.ID = uuid.NewString()
	now := time.Now().UTC()
	budget.CreatedAt = now
	budget.UpdatedAt = now
	return s.repo.Save(*budget)
}

func (s *BudgetService) UpdateBudget(budget domain.Budget) error {
	if err := budget.Validate(); err != nil {
		return err
	}
	budget.UpdatedAt = time.Now().UTC()
	return s.repo.Update(budget)
}

func (s *BudgetService) DeleteBudget(budgetID, userID string) error {
	return s.repo.Delete(budgetID, userID)
}

type BudgetStatus struct {
	Budget     domain.Budget `json:"budget"`
	Spent      float64       `json:"spent"`
	Percentage float64       `json:"percentage"`
	OverBudget bool          `json:"over_budget"`
}

type BudgetReport struct {
	Budgets     []BudgetStatus `json:"budgets"`
	TotalBudget float64        `json:"total_budget"`
	TotalSpent  float64        `json:"total_spent"`
	Percentage  float64        `json:"percentage"`
	OverBudget  bool           `json:"over_budget"`
}

// spendPercentage guards against zero or negative budget amounts; those
// report 0 instead of Inf/NaN and rely on the over-budget flag.
func spendPercentage(spent, amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	return spent / amount * 100
}

// GetMonthlyReport computes per-budget spend for the given month by matching
// transaction category names, plus an aggregate view that compares the sum
// of all budgets against the month's total transaction amount regardless of
// category.
func (s *BudgetService) GetMonthlyReport(userID string, month time.Month, year int) (BudgetReport, error) {
	budgets, err := s.repo.FindByUser(userID)
	if err != nil {
		return BudgetReport{}, err
	}
	transactions, err := s.transactions.FindByUser(userID)
	if err != nil {
		return BudgetReport{}, err
	}
	inMonth := FilterByMonth(transactions, month, year)

	report := BudgetReport{Budgets: make([]BudgetStatus, 0, len(budgets))}
	for _, budget := range budgets {
		var spent float64
		for _, transaction := range inMonth {
			if transaction.Category == budget.Category {
				spent += transaction.Amount
			}
		}
		report.Budgets = append(report.Budgets, BudgetStatus{
			Budget:     budget,
			Spent:      spent,
			Percentage: spendPercentage(spent, budget.Amount),
			OverBudget: spent > budget.Amount,
		})
		report.TotalBudget += budget.Amount
	}

	for _, transaction := range inMonth {
		report.TotalSpent += transaction.Amount
	}
	report.Percentage = spendPercentage(report.TotalSpent, report.TotalBudget)
	report.OverBudget = report.TotalSpent > report.TotalBudget
	return report, nil
}
