package application

import (
	"github.com/finflow/tracker/internal/tracker/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// DashboardService computes the per-user dashboard report. It is read-only:
// it never mutates transactions or budgets, and a write committed while the
// report is being computed may or may not be reflected.
type DashboardService struct {
	transactions domain.TransactionRepository
	budgets      domain.BudgetRepository
}

func NewDashboardService(transactions domain.TransactionRepository, budgets domain.BudgetRepository) *DashboardService {
	return &DashboardService{transactions: transactions, budgets: budgets}
}

// ComputeDashboard aggregates the user's full transaction set and active
// budgets into KPIs plus monthly and yearly breakdowns.
func (s *DashboardService) ComputeDashboard(userID string) (*domain.DashboardReport, error) {
	transactions, err := s.transactions.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		// A user with no history gets an all-zero report, budgets included.
		return emptyReport(), nil
	}

	budgets, err := s.budgets.FindActiveByUser(userID)
	if err != nil {
		return nil, err
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	monthlyExpenses := make(map[string]decimal.Decimal)
	monthlyIncome := make(map[string]decimal.Decimal)
	yearlyExpenses := make(map[string]decimal.Decimal)
	yearlyIncome := make(map[string]decimal.Decimal)

	for _, transaction := range transactions {
		month := transaction.Date.Format("Jan")
		year := transaction.Date.Format("2006")

		switch transaction.Type {
		case domain.TypeIncome:
			totalIncome = totalIncome.Add(transaction.Amount)
			monthlyIncome[month] = monthlyIncome[month].Add(transaction.Amount)
			yearlyIncome[year] = yearlyIncome[year].Add(transaction.Amount)
		case domain.TypeExpense:
			totalExpense = totalExpense.Add(transaction.Amount)
			monthlyExpenses[month] = monthlyExpenses[month].Add(transaction.Amount)
			yearlyExpenses[year] = yearlyExpenses[year].Add(transaction.Amount)
		}
	}

	return &domain.DashboardReport{
		KPIs: domain.KPIs{
			TotalIncome:          toFloat(totalIncome),
			TotalExpense:         toFloat(totalExpense),
			NetSavings:           toFloat(totalIncome.Sub(totalExpense)),
			BudgetUsedPercentage: budgetUsedPercentage(totalExpense, budgets),
		},
		Monthly: domain.PeriodBreakdown{
			Expenses: toFloatMap(monthlyExpenses),
			Income:   toFloatMap(monthlyIncome),
			Budget:   budgetEntries(budgets, domain.PeriodMonthly),
		},
		Yearly: domain.PeriodBreakdown{
			Expenses: toFloatMap(yearlyExpenses),
			Income:   toFloatMap(yearlyIncome),
			Budget:   budgetEntries(budgets, domain.PeriodYearly),
		},
	}, nil
}

// budgetUsedPercentage divides total expenses by the combined limit of all
// active budgets regardless of period, rounded to two decimal places. A user
// with no active budget limit gets 0, never a division error.
func budgetUsedPercentage(totalExpense decimal.Decimal, budgets []domain.Budget) float64 {
	totalLimit := decimal.Zero
	for _, budget := range budgets {
		totalLimit = totalLimit.Add(budget.LimitAmount)
	}
	if totalLimit.IsZero() {
		return 0
	}
	return toFloat(totalExpense.Div(totalLimit).Mul(oneHundred))
}

// budgetEntries lists the active budgets whose period matches the requested
// granularity. Weekly and custom budgets appear in neither breakdown.
func budgetEntries(budgets []domain.Budget, period domain.BudgetPeriod) []domain.BudgetEntry {
	entries := make([]domain.BudgetEntry, 0, len(budgets))
	for _, budget := range budgets {
		if budget.Period != period {
			continue
		}
		entries = append(entries, domain.BudgetEntry{
			Category:    budget.CategoryName,
			LimitAmount: toFloat(budget.LimitAmount),
		})
	}
	return entries
}

func emptyReport() *domain.DashboardReport {
	return &domain.DashboardReport{
		Monthly: domain.PeriodBreakdown{
			Expenses: map[string]float64{},
			Income:   map[string]float64{},
			Budget:   []domain.BudgetEntry{},
		},
		Yearly: domain.PeriodBreakdown{
			Expenses: map[string]float64{},
			Income:   map[string]float64{},
			Budget:   []domain.BudgetEntry{},
		},
	}
}

func toFloat(value decimal.Decimal) float64 {
	return value.Round(2).InexactFloat64()
}

func toFloatMap(values map[string]decimal.Decimal) map[string]float64 {
	result := make(map[string]float64, len(values))
	for key, value := range values {
		result[key] = toFloat(value)
	}
	return result
}
