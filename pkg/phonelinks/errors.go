package phonelinks

import "errors"

// ErrInvalidFormat indicates the input could not be opened as a
// spreadsheet workbook.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// ErrSheetNotFound indicates the requested sheet does not exist in the
// workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrColumnNotFound indicates the requested column matches no header name
// or index in the sheet.
var ErrColumnNotFound = errors.New("column not found")

// ErrTooFewColumns indicates the sheet cannot satisfy the default
// second-column selection. Callers should prompt for an explicit column
// instead of failing the run.
var ErrTooFewColumns = errors.New("too few columns")
