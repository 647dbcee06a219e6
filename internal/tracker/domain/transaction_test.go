package domain

import (
	"testing"

	"github.com/finflow/tracker/internal/tracker/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionValidate(t *testing.T) {
	categoryID := 1

	valid := Transaction{Type: TypeExpense, Amount: decimal.NewFromInt(10), CategoryID: &categoryID}
	assert.NoError(t, valid.Validate())

	expenseWithoutCategory := Transaction{Type: TypeExpense, Amount: decimal.NewFromInt(10)}
	assert.True(t, errors.IsValidationError(expenseWithoutCategory.Validate()))

	incomeWithCategory := Transaction{Type: TypeIncome, Amount: decimal.NewFromInt(10), CategoryID: &categoryID}
	assert.True(t, errors.IsValidationError(incomeWithCategory.Validate()))

	negativeAmount := Transaction{Type: TypeIncome, Amount: decimal.NewFromInt(-10)}
	assert.True(t, errors.IsValidationError(negativeAmount.Validate()))

	unknownType := Transaction{Type: "SAVINGS", Amount: decimal.NewFromInt(10)}
	assert.True(t, errors.IsValidationError(unknownType.Validate()))
}

func TestNormalizeCategoryName(t *testing.T) {
	assert.Equal(t, "Food", NormalizeCategoryName("  food "))
	assert.Equal(t, "Food Delivery", NormalizeCategoryName("food delivery"))
	assert.Equal(t, "Transportation", NormalizeCategoryName("TRANSPORTATION"))
	assert.Equal(t, "", NormalizeCategoryName("   "))
}
