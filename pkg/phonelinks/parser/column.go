package parser

import (
	"github.com/xuri/excelize/v2"
)

// ColumnValues extracts the text values of one column (1-based index)
// from a sheet, skipping the header row. Values come back as formatted
// text so leading zeros survive. Rows too short to reach the column are
// skipped; empty cells come back as empty strings and fall out later as
// no-match.
func ColumnValues(f *excelize.File, sheetName string, col int) ([]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var values []string
	for rowIdx, row := range rows {
		if rowIdx == 0 {
			continue // header row
		}
		if col-1 < len(row) {
			values = append(values, row[col-1])
		}
	}
	return values, nil
}

// HeaderRow returns the first row of a sheet, or nil for an empty sheet.
func HeaderRow(f *excelize.File, sheetName string) ([]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}
