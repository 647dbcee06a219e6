package etl

import (
	"strings"
	"time"

	"github.com/finflow/tracker/internal/tracker/domain"
	"github.com/shopspring/decimal"
)

// NormalizedTransaction is a cleaned row ready for loading. Category is
// non-empty exactly when Type is EXPENSE; Amount is always a non-negative
// magnitude.
type NormalizedTransaction struct {
	Date        time.Time
	Amount      decimal.Decimal
	Type        domain.TransactionType
	Category    string
	Description string
}

// Layouts accepted for the date column, most specific first. Layouts without
// zone information are interpreted in the transformer's configured location.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// Transformer normalizes raw rows into transactions. The zero value is not
// usable; construct with NewTransformer.
type Transformer struct {
	location         *time.Location
	fallbackCategory string
}

// NewTransformer builds a transformer that attaches location to naive
// timestamps and assigns fallbackCategory to expenses without one. Nil or
// empty arguments fall back to time.Local and "Miscellaneous".
func NewTransformer(location *time.Location, fallbackCategory string) *Transformer {
	if location == nil {
		location = time.Local
	}
	if fallbackCategory == "" {
		fallbackCategory = domain.MiscellaneousCategory
	}
	return &Transformer{location: location, fallbackCategory: fallbackCategory}
}

// Transform normalizes rows in input order. Rows whose date or amount cannot
// be parsed are dropped rather than failing the batch; the dropped count is
// returned for logging. Re-running on identical input yields identical output.
func (t *Transformer) Transform(rows []RawRow) ([]NormalizedTransaction, int) {
	normalized := make([]NormalizedTransaction, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		transaction, ok := t.transformRow(row)
		if !ok {
			dropped++
			continue
		}
		normalized = append(normalized, transaction)
	}
	return normalized, dropped
}

func (t *Transformer) transformRow(row RawRow) (NormalizedTransaction, bool) {
	date, ok := t.normalizeDate(row[ColumnDate])
	if !ok {
		return NormalizedTransaction{}, false
	}
	amount, ok := normalizeAmount(row[ColumnAmount])
	if !ok {
		return NormalizedTransaction{}, false
	}

	transactionType := classify(amount)
	category := normalizeCategory(row[ColumnCategory])
	category = t.enforceCategoryRule(transactionType, category)

	return NormalizedTransaction{
		Date:        date,
		Amount:      amount.Abs(),
		Type:        transactionType,
		Category:    category,
		Description: normalizeDescription(row[ColumnDescription]),
	}, true
}

// normalizeDate parses the raw date text, attaching the configured location
// when the layout carries no zone of its own.
func (t *Transformer) normalizeDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		parsed, err := time.ParseInLocation(layout, raw, t.location)
		if err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func normalizeAmount(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}

// normalizeDescription treats the literal text "None" as no description; it
// is a placeholder artifact of upstream export tools, not a real note.
func normalizeDescription(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "None" {
		return ""
	}
	return raw
}

func normalizeCategory(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return domain.NormalizeCategoryName(raw)
}

// classify derives the transaction type from the amount's sign. The sign is
// the sole classification signal; no type column from the input is trusted.
func classify(amount decimal.Decimal) domain.TransactionType {
	if amount.IsNegative() {
		return domain.TypeExpense
	}
	return domain.TypeIncome
}

// enforceCategoryRule makes the category invariant hold: expenses always get
// a category (the fallback if normalization left it blank), income rows never
// carry one even when the upload supplied it.
func (t *Transformer) enforceCategoryRule(transactionType domain.TransactionType, category string) string {
	if transactionType == domain.TypeExpense {
		if category == "" {
			return t.fallbackCategory
		}
		return category
	}
	return ""
}
