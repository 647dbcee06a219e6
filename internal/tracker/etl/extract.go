package etl

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	trackerErrors "github.com/finflow/tracker/internal/tracker/errors"
	"github.com/xuri/excelize/v2"
)

// Column names every upload must carry. Order within the file is irrelevant.
const (
	ColumnDate        = "date"
	ColumnAmount      = "amount"
	ColumnCategory    = "category"
	ColumnDescription = "description"
)

var requiredColumns = []string{ColumnDate, ColumnAmount, ColumnCategory, ColumnDescription}

// RawRow maps a normalized column name to the raw cell text. A missing key
// means the cell was absent from the row entirely.
type RawRow map[string]string

// Field returns the raw value of a column and whether it was present.
func (r RawRow) Field(column string) (string, bool) {
	value, ok := r[column]
	return value, ok
}

// Extract parses an uploaded byte stream into raw rows. The file kind is
// chosen from the declared filename's extension: ".csv" or ".xlsx".
func Extract(r io.Reader, filename string) ([]RawRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return extractCSV(r)
	case ".xlsx":
		return extractXLSX(r)
	default:
		return nil, &trackerErrors.UnsupportedFileKindError{Extension: filepath.Ext(filename)}
	}
}

func extractCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, trackerErrors.NewMalformedInputError("could not read CSV", err)
	}
	return tabulate(records)
}

func extractXLSX(r io.Reader) ([]RawRow, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, trackerErrors.NewMalformedInputError("could not open spreadsheet", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, trackerErrors.NewMalformedInputError("spreadsheet has no sheets", nil)
	}
	records, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, trackerErrors.NewMalformedInputError("could not read spreadsheet rows", err)
	}
	return tabulate(records)
}

// tabulate turns a header row plus data rows into RawRows keyed by
// normalized column name.
func tabulate(records [][]string) ([]RawRow, error) {
	if len(records) == 0 {
		return nil, trackerErrors.NewMalformedInputError("file has no header row", nil)
	}

	headers := make([]string, len(records[0]))
	for i, header := range records[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(header))
	}
	if err := checkRequiredColumns(headers); err != nil {
		return nil, err
	}

	rows := make([]RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(RawRow, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func checkRequiredColumns(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, header := range headers {
		present[header] = true
	}
	for _, column := range requiredColumns {
		if !present[column] {
			return trackerErrors.NewMalformedInputError("missing required column: "+column, nil)
		}
	}
	return nil
}
