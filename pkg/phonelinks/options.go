// Package phonelinks extracts Egyptian mobile numbers from spreadsheet
// columns or free-form text, normalizes them to the international
// digits-only form, and builds WhatsApp chat links from them.
package phonelinks

// Options selects which part of a workbook an extraction run reads.
type Options struct {
	// Sheet is the worksheet name. Empty selects the first sheet.
	Sheet string
	// Column names the column holding phone numbers, either by header
	// name (case-insensitive) or by 1-based index in decimal. Empty
	// selects the second column, the historical single-column convention.
	Column string
}

// DefaultOptions returns options selecting the first sheet and the second
// column.
func DefaultOptions() Options {
	return Options{}
}
