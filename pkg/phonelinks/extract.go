package phonelinks

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/pkg/phonelinks/models"
	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/pkg/phonelinks/parser"
	"github.com/xuri/excelize/v2"
)

// Extract reads a workbook from r and builds the result table for the
// sheet and column selected by opts.
func Extract(r io.Reader, opts Options) (*models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return ExtractWorkbook(f, opts)
}

// ExtractFile is like Extract but opens the workbook at path.
func ExtractFile(path string, opts Options) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return ExtractWorkbook(f, opts)
}

// ExtractWorkbook builds the result table from an already-open workbook.
// The workbook is left open so the caller can re-extract with a different
// sheet or column.
func ExtractWorkbook(f *excelize.File, opts Options) (*models.Table, error) {
	sheet, err := ResolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	col, err := resolveColumn(f, sheet, opts.Column)
	if err != nil {
		return nil, err
	}

	values, err := parser.ColumnValues(f, sheet, col)
	if err != nil {
		return nil, err
	}

	return models.NewTable(parser.BuildTable(values)), nil
}

// ExtractText builds the result table from manually entered text, one
// value per non-blank line.
func ExtractText(text string) *models.Table {
	return models.NewTable(parser.BuildTable(parser.SplitLines(text)))
}

// SheetNames returns the workbook's sheet names in workbook order.
func SheetNames(f *excelize.File) []string {
	return f.GetSheetList()
}

// ColumnNames returns the header row of a sheet, for column selection.
func ColumnNames(f *excelize.File, sheet string) ([]string, error) {
	name, err := ResolveSheet(f, sheet)
	if err != nil {
		return nil, err
	}
	return parser.HeaderRow(f, name)
}

// ResolveSheet maps an Options.Sheet value to a concrete sheet name.
// Empty selects the first sheet.
func ResolveSheet(f *excelize.File, sheet string) (string, error) {
	list := f.GetSheetList()
	if len(list) == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
	}
	if sheet == "" {
		return list[0], nil
	}
	for _, name := range list {
		if name == sheet {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
}

// resolveColumn maps an Options.Column value to a 1-based column index.
func resolveColumn(f *excelize.File, sheet, column string) (int, error) {
	headers, err := parser.HeaderRow(f, sheet)
	if err != nil {
		return 0, err
	}

	if column == "" {
		if len(headers) < 2 {
			return 0, fmt.Errorf("%w: sheet %q has %d column(s), default selection is the second",
				ErrTooFewColumns, sheet, len(headers))
		}
		return 2, nil
	}

	if n, err := strconv.Atoi(column); err == nil {
		if n < 1 || n > len(headers) {
			return 0, fmt.Errorf("%w: index %d out of range for sheet %q", ErrColumnNotFound, n, sheet)
		}
		return n, nil
	}

	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(column)) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
}
