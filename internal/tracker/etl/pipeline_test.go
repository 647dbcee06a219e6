package etl

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/finflow/tracker/internal/tracker/domain"
	trackerErrors "github.com/finflow/tracker/internal/tracker/errors"
	"github.com/finflow/tracker/internal/tracker/infrastructure"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = domain.User{ID: testUserID, Username: "uploaduser", Role: domain.RoleUser}

func newTestPipeline(transactionRepo *infrastructure.MockTransactionRepository, categoryRepo *infrastructure.MockCategoryRepository) *Pipeline {
	return NewPipeline(
		NewTransformer(time.UTC, ""),
		NewLoader(transactionRepo, categoryRepo),
		zerolog.New(io.Discard),
	)
}

func TestPipeline_ImportsCSV(t *testing.T) {
	transactionRepo := &infrastructure.MockTransactionRepository{}
	categoryRepo := &infrastructure.MockCategoryRepository{}
	pipeline := newTestPipeline(transactionRepo, categoryRepo)

	fileBytes := []byte("date,amount,category,description\n" +
		"2024-01-05 10:00:00,-50,food,Coffee\n" +
		"2024-01-06,500,,Salary\n")

	summary, err := pipeline.Run(fileBytes, "transactions.csv", testUser)
	require.NoError(t, err)
	assert.Equal(t, testUserID, summary.UserID)
	assert.Equal(t, 2, summary.Imported)
	assert.Len(t, transactionRepo.Transactions, 2)
	assert.Equal(t, domain.TypeExpense, transactionRepo.Transactions[0].Type)
}

func TestPipeline_UnsupportedFileShortCircuits(t *testing.T) {
	transactionRepo := &infrastructure.MockTransactionRepository{}
	pipeline := newTestPipeline(transactionRepo, &infrastructure.MockCategoryRepository{})

	_, err := pipeline.Run([]byte("whatever"), "upload.pdf", testUser)
	require.Error(t, err)
	assert.Equal(t, trackerErrors.StageExtract, trackerErrors.StageOf(err))
	assert.True(t, trackerErrors.IsUnsupportedFileKind(err), "cause survives wrapping")
	assert.Empty(t, transactionRepo.Transactions, "no load happens after an extract failure")
}

func TestPipeline_AllRowsDroppedImportsNothing(t *testing.T) {
	transactionRepo := &infrastructure.MockTransactionRepository{}
	pipeline := newTestPipeline(transactionRepo, &infrastructure.MockCategoryRepository{})

	fileBytes := []byte("date,amount,category,description\nnot-a-date,-50,Food,Coffee\n")

	summary, err := pipeline.Run(fileBytes, "transactions.csv", testUser)
	require.NoError(t, err, "dropped rows are not a pipeline failure")
	assert.Equal(t, 0, summary.Imported)
	assert.Empty(t, transactionRepo.Transactions)
}

func TestPipeline_LoadFailureTagged(t *testing.T) {
	transactionRepo := &infrastructure.MockTransactionRepository{InsertErr: errors.New("insert failed")}
	pipeline := newTestPipeline(transactionRepo, &infrastructure.MockCategoryRepository{})

	fileBytes := []byte("date,amount,category,description\n2024-01-05,-50,Food,Coffee\n")

	_, err := pipeline.Run(fileBytes, "transactions.csv", testUser)
	require.Error(t, err)
	assert.Equal(t, trackerErrors.StageLoad, trackerErrors.StageOf(err))
	assert.True(t, trackerErrors.IsLoadError(err))
}

func TestPipeline_RerunDuplicatesTransactionsButReusesCategories(t *testing.T) {
	transactionRepo := &infrastructure.MockTransactionRepository{}
	categoryRepo := &infrastructure.MockCategoryRepository{}
	pipeline := newTestPipeline(transactionRepo, categoryRepo)

	fileBytes := []byte("date,amount,category,description\n2024-01-05,-50,Food,Coffee\n")

	_, err := pipeline.Run(fileBytes, "transactions.csv", testUser)
	require.NoError(t, err)
	_, err = pipeline.Run(fileBytes, "transactions.csv", testUser)
	require.NoError(t, err)

	// Two runs, two transaction records, one category.
	assert.Len(t, transactionRepo.Transactions, 2)
	assert.NotEqual(t, transactionRepo.Transactions[0].ID, transactionRepo.Transactions[1].ID)
	assert.Len(t, categoryRepo.Categories, 1)
	assert.Equal(t, *transactionRepo.Transactions[0].CategoryID, *transactionRepo.Transactions[1].CategoryID)
}
