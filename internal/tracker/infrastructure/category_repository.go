package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/finflow/tracker/internal/tracker/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type PostgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategoryRepository(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

// GetOrCreate resolves the user's category by normalized name, creating it on
// first reference. A unique-violation on insert means another writer created
// the same category concurrently, so it is fetched instead of failed.
func (r *PostgresCategoryRepository) GetOrCreate(userID, name string) (domain.Category, error) {
	name = domain.NormalizeCategoryName(name)

	category, err := r.findByName(userID, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, err
	}

	category = domain.Category{Name: name, UserID: userID}
	err = r.db.QueryRow(
		`INSERT INTO categories (user_id, name) VALUES ($1, $2) RETURNING id`,
		userID, name,
	).Scan(&category.ID)
	if err == nil {
		return category, nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return r.findByName(userID, name)
	}
	return domain.Category{}, err
}

func (r *PostgresCategoryRepository) findByName(userID, name string) (domain.Category, error) {
	category := domain.Category{Name: name, UserID: userID}
	err := r.db.QueryRow(
		`SELECT id FROM categories WHERE user_id = $1 AND name = $2`,
		userID, name,
	).Scan(&category.ID)
	if err != nil {
		return domain.Category{}, err
	}
	return category, nil
}
