package infrastructure

import (
	"database/sql"
	"log"

	"github.com/finflow/tracker/internal/tracker/domain"
)

type PostgresTransactionRepository struct {
	db *sql.DB
}

func NewPostgresTransactionRepository(db *sql.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

// BulkInsert writes the whole batch inside one database transaction: either
// every record commits or none do.
func (r *PostgresTransactionRepository) BulkInsert(transactions []domain.Transaction) (count int, err error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() {
		if p := recover(); p != nil {
			safeRollback(tx)
			panic(p)
		} else if err != nil {
			safeRollback(tx)
		} else {
			err = tx.Commit()
		}
	}()

	for _, transaction := range transactions {
		_, err = tx.Exec(
			`INSERT INTO transactions (id, user_id, type, amount, category_id, description, date)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			transaction.ID, transaction.UserID, transaction.Type, transaction.Amount,
			transaction.CategoryID, nullableDescription(transaction.Description), transaction.Date,
		)
		if err != nil {
			return 0, err
		}
	}
	return len(transactions), nil
}

func (r *PostgresTransactionRepository) FindByUser(userID string) ([]domain.Transaction, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, type, amount, category_id, COALESCE(description, ''), date
		 FROM transactions WHERE user_id = $1 ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(&transaction.ID, &transaction.UserID, &transaction.Type,
			&transaction.Amount, &transaction.CategoryID, &transaction.Description, &transaction.Date); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func nullableDescription(description string) sql.NullString {
	return sql.NullString{String: description, Valid: description != ""}
}

func safeRollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		log.Printf("Error during transaction rollback: %v", err)
	}
}
