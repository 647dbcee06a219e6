package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MiscellaneousCategory is the fallback expense category attached to rows
// that arrive without a usable category of their own.
const MiscellaneousCategory = "Miscellaneous"

type Category struct {
	ID     int
	Name   string
	UserID string // user UUID
}

type CategoryRepository interface {
	// GetOrCreate resolves the category with the given normalized name for the
	// user, creating it when absent. Concurrent creates of the same name are
	// resolved by the storage uniqueness constraint on (user_id, name).
	GetOrCreate(userID, name string) (Category, error)
}

// NormalizeCategoryName trims surrounding whitespace and title-cases every
// word, so "  food delivery " and "FOOD DELIVERY" resolve to the same record.
// A Caser is stateful and not safe to share across requests, so one is built
// per call.
func NormalizeCategoryName(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}
