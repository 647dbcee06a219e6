package etl

import (
	"github.com/finflow/tracker/internal/tracker/domain"
	trackerErrors "github.com/finflow/tracker/internal/tracker/errors"
	"github.com/google/uuid"
)

// Loader maps normalized rows to persisted transaction records. Category
// resolution happens before the insert batch; the insert itself is atomic.
type Loader struct {
	transactions domain.TransactionRepository
	categories   domain.CategoryRepository
}

func NewLoader(transactions domain.TransactionRepository, categories domain.CategoryRepository) *Loader {
	return &Loader{transactions: transactions, categories: categories}
}

// Load persists every row for the user as one atomic batch and returns the
// number of records written. Any failure aborts the whole batch.
func (l *Loader) Load(rows []NormalizedTransaction, userID string) (int, error) {
	// Resolved category IDs are memoized per run so a batch with two hundred
	// "Food" rows hits the repository once.
	categoryIDs := make(map[string]int)

	batch := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		transaction := domain.Transaction{
			ID:          uuid.NewString(),
			UserID:      userID,
			Type:        row.Type,
			Amount:      row.Amount,
			Description: row.Description,
			Date:        row.Date,
		}

		if row.Type == domain.TypeExpense {
			categoryID, ok := categoryIDs[row.Category]
			if !ok {
				category, err := l.categories.GetOrCreate(userID, row.Category)
				if err != nil {
					return 0, trackerErrors.NewLoadError(err)
				}
				categoryID = category.ID
				categoryIDs[row.Category] = categoryID
			}
			transaction.CategoryID = &categoryID
		}

		if err := transaction.Validate(); err != nil {
			return 0, trackerErrors.NewLoadError(err)
		}
		batch = append(batch, transaction)
	}

	count, err := l.transactions.BulkInsert(batch)
	if err != nil {
		return 0, trackerErrors.NewLoadError(err)
	}
	return count, nil
}
