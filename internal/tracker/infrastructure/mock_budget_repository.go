package infrastructure

import (
	"github.com/finflow/tracker/internal/tracker/domain"
)

type MockBudgetRepository struct {
	Budgets []domain.Budget
	Err     error
}

func (m *MockBudgetRepository) FindActiveByUser(userID string) ([]domain.Budget, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var budgets []domain.Budget
	for _, budget := range m.Budgets {
		if budget.UserID == userID && budget.IsActive {
			budgets = append(budgets, budget)
		}
	}
	return budgets, nil
}
