package domain

// DashboardReport is recomputed per request and never persisted. Field names
// are part of the rendering contract with the caller.
type DashboardReport struct {
	KPIs    KPIs            `json:"kpis"`
	Monthly PeriodBreakdown `json:"monthly"`
	Yearly  PeriodBreakdown `json:"yearly"`
}

type KPIs struct {
	TotalIncome          float64 `json:"total_income"`
	TotalExpense         float64 `json:"total_expense"`
	NetSavings           float64 `json:"net_savings"`
	BudgetUsedPercentage float64 `json:"budget_used_percentage"`
}

type PeriodBreakdown struct {
	Expenses map[string]float64 `json:"expenses"`
	Income   map[string]float64 `json:"income"`
	Budget   []BudgetEntry      `json:"budget"`
}

type BudgetEntry struct {
	Category    string  `json:"category"`
	LimitAmount float64 `json:"limit_amount"`
}
