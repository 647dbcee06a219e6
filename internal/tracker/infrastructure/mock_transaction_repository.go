package infrastructure

import (
	"github.com/finflow/tracker/internal/tracker/domain"
)

// MockTransactionRepository is an in-memory repository for service tests.
// Seed Transactions for reads; inserted batches are appended to it.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	InsertErr    error
	FindErr      error
}

func (m *MockTransactionRepository) BulkInsert(transactions []domain.Transaction) (int, error) {
	if m.InsertErr != nil {
		// Mirrors the atomic batch: on failure nothing is recorded.
		return 0, m.InsertErr
	}
	m.Transactions = append(m.Transactions, transactions...)
	return len(transactions), nil
}

func (m *MockTransactionRepository) FindByUser(userID string) ([]domain.Transaction, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var transactions []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			transactions = append(transactions, transaction)
		}
	}
	return transactions, nil
}
