package infrastructure

import (
	"github.com/finflow/tracker/internal/tracker/domain"
)

// MockCategoryRepository resolves categories in memory, assigning sequential
// IDs on first reference like the real get-or-create path.
type MockCategoryRepository struct {
	Categories map[string]domain.Category // keyed by userID + "/" + name
	Err        error

	nextID int
}

func (m *MockCategoryRepository) GetOrCreate(userID, name string) (domain.Category, error) {
	if m.Err != nil {
		return domain.Category{}, m.Err
	}
	name = domain.NormalizeCategoryName(name)
	if m.Categories == nil {
		m.Categories = make(map[string]domain.Category)
	}

	key := userID + "/" + name
	if category, ok := m.Categories[key]; ok {
		return category, nil
	}
	m.nextID++
	category := domain.Category{ID: m.nextID, Name: name, UserID: userID}
	m.Categories[key] = category
	return category, nil
}
