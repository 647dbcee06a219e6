package domain

import (
	"time"

	"github.com/finflow/tracker/internal/tracker/errors"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

type TransactionRepository interface {
	BulkInsert(transactions []Transaction) (int, error)
	FindByUser(userID string) ([]Transaction, error)
}

type Transaction struct {
	ID          string // UUID
	UserID      string // user UUID
	Type        TransactionType
	Amount      decimal.Decimal // non-negative magnitude, sign lives in Type
	CategoryID  *int            // set only for expenses
	Description string          // "" means no description
	Date        time.Time
}

func (t *Transaction) Validate() error {
	if t.Type != TypeIncome && t.Type != TypeExpense {
		return errors.NewValidationError("Type must be 'INCOME' or 'EXPENSE'")
	}
	if t.Amount.IsNegative() {
		return errors.NewValidationError("Amount must not be negative")
	}
	if t.Type == TypeExpense && t.CategoryID == nil {
		return errors.NewValidationError("Expense transactions must have a category")
	}
	if t.Type != TypeExpense && t.CategoryID != nil {
		return errors.NewValidationError("Only expense transactions can have a category")
	}
	return nil
}
