package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BudgetPeriod string

const (
	PeriodWeekly  BudgetPeriod = "WEEKLY"
	PeriodMonthly BudgetPeriod = "MONTHLY"
	PeriodYearly  BudgetPeriod = "YEARLY"
	PeriodCustom  BudgetPeriod = "CUSTOM"
)

type Budget struct {
	ID           int
	UserID       string // user UUID
	CategoryID   int
	CategoryName string
	LimitAmount  decimal.Decimal
	Period       BudgetPeriod
	StartDate    time.Time
	EndDate      time.Time
	IsActive     bool
}

type BudgetRepository interface {
	FindActiveByUser(userID string) ([]Budget, error)
}
