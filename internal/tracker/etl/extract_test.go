package etl

import (
	"bytes"
	"strings"
	"testing"

	trackerErrors "github.com/finflow/tracker/internal/tracker/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExtract_CSV(t *testing.T) {
	csvContent := "date,amount,category,description\n" +
		"2024-01-05 10:00:00,-50,Food,Coffee\n" +
		"2024-01-06,200,,Salary\n"

	rows, err := Extract(strings.NewReader(csvContent), "transactions.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2024-01-05 10:00:00", rows[0][ColumnDate])
	assert.Equal(t, "-50", rows[0][ColumnAmount])
	assert.Equal(t, "Food", rows[0][ColumnCategory])
	assert.Equal(t, "Coffee", rows[0][ColumnDescription])
	assert.Equal(t, "", rows[1][ColumnCategory])
}

func TestExtract_CSVHeaderOrderAndCaseIrrelevant(t *testing.T) {
	csvContent := "Description, Amount ,DATE,category\n" +
		"Coffee,-50,2024-01-05,Food\n"

	rows, err := Extract(strings.NewReader(csvContent), "upload.CSV")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-01-05", rows[0][ColumnDate])
	assert.Equal(t, "Food", rows[0][ColumnCategory])
}

func TestExtract_ShortRowLeavesFieldsAbsent(t *testing.T) {
	csvContent := "date,amount,category,description\n" +
		"2024-01-05,-50\n"

	rows, err := Extract(strings.NewReader(csvContent), "transactions.csv")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, present := rows[0].Field(ColumnCategory)
	assert.False(t, present)
	_, present = rows[0].Field(ColumnAmount)
	assert.True(t, present)
}

func TestExtract_UnsupportedFileKind(t *testing.T) {
	_, err := Extract(strings.NewReader("not a table"), "notes.txt")
	assert.True(t, trackerErrors.IsUnsupportedFileKind(err), "expected UnsupportedFileKind, got %v", err)
}

func TestExtract_MissingRequiredColumn(t *testing.T) {
	csvContent := "date,amount,description\n2024-01-05,-50,Coffee\n"

	_, err := Extract(strings.NewReader(csvContent), "transactions.csv")
	assert.True(t, trackerErrors.IsMalformedInput(err), "expected MalformedInput, got %v", err)
}

func TestExtract_CorruptCSV(t *testing.T) {
	csvContent := "date,amount,category,description\n\"unclosed,-50,Food,Coffee\n"

	_, err := Extract(strings.NewReader(csvContent), "transactions.csv")
	assert.True(t, trackerErrors.IsMalformedInput(err), "expected MalformedInput, got %v", err)
}

func TestExtract_EmptyCSV(t *testing.T) {
	_, err := Extract(strings.NewReader(""), "transactions.csv")
	assert.True(t, trackerErrors.IsMalformedInput(err))
}

func TestExtract_XLSX(t *testing.T) {
	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)
	require.NoError(t, workbook.SetSheetRow(sheet, "A1", &[]string{"date", "amount", "category", "description"}))
	require.NoError(t, workbook.SetSheetRow(sheet, "A2", &[]string{"2024-01-05", "-50", "Food", "Coffee"}))
	require.NoError(t, workbook.SetSheetRow(sheet, "A3", &[]string{"2024-01-06", "200", "", "Salary"}))

	var buffer bytes.Buffer
	require.NoError(t, workbook.Write(&buffer))

	rows, err := Extract(&buffer, "transactions.xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "-50", rows[0][ColumnAmount])
	assert.Equal(t, "Food", rows[0][ColumnCategory])
	assert.Equal(t, "Salary", rows[1][ColumnDescription])
}

func TestExtract_CorruptXLSX(t *testing.T) {
	_, err := Extract(bytes.NewReader([]byte("definitely not a zip archive")), "transactions.xlsx")
	assert.True(t, trackerErrors.IsMalformedInput(err), "expected MalformedInput, got %v", err)
}
