package infrastructure

import (
	"database/sql"

	"github.com/finflow/tracker/internal/tracker/domain"
)

type PostgresBudgetRepository struct {
	db *sql.DB
}

func NewPostgresBudgetRepository(db *sql.DB) *PostgresBudgetRepository {
	return &PostgresBudgetRepository{db: db}
}

func (r *PostgresBudgetRepository) FindActiveByUser(userID string) ([]domain.Budget, error) {
	rows, err := r.db.Query(
		`SELECT b.id, b.user_id, b.category_id, c.name, b.limit_amount, b.period,
		        b.start_date, b.end_date, b.is_active
		 FROM budgets b
		 JOIN categories c ON c.id = b.category_id
		 WHERE b.user_id = $1 AND b.is_active`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		var budget domain.Budget
		if err := rows.Scan(&budget.ID, &budget.UserID, &budget.CategoryID, &budget.CategoryName,
			&budget.LimitAmount, &budget.Period, &budget.StartDate, &budget.EndDate, &budget.IsActive); err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}
