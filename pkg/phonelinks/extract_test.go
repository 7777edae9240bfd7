package phonelinks

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeFixture builds a two-sheet workbook: "Sheet1" with Name/Phone
// columns and "Notes" with a single free-text column.
func writeFixture(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "Name")
	f.SetCellValue(sheet, "B1", "Phone")
	f.SetCellValue(sheet, "A2", "Ahmed")
	f.SetCellValue(sheet, "B2", "01012345678")
	f.SetCellValue(sheet, "A3", "noise")
	f.SetCellValue(sheet, "B3", "not a phone")
	f.SetCellValue(sheet, "A4", "Sara")
	f.SetCellValue(sheet, "B4", "+201198765432")
	f.SetCellValue(sheet, "A5", "Ahmed again")
	f.SetCellValue(sheet, "B5", "01012345678")

	if _, err := f.NewSheet("Notes"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Notes", "A1", "Note")
	f.SetCellValue("Notes", "A2", "call me at 01511112222 thanks")

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save fixture: %v", err)
	}
	return path
}

func TestExtractFileDefaultColumn(t *testing.T) {
	table, err := ExtractFile(writeFixture(t), DefaultOptions())
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}

	records := table.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].PhoneNumber != "+201012345678" {
		t.Errorf("first record = %q", records[0].PhoneNumber)
	}
	if records[1].Link != "https://wa.me/201198765432" {
		t.Errorf("second link = %q", records[1].Link)
	}
}

func TestExtractFileColumnByName(t *testing.T) {
	table, err := ExtractFile(writeFixture(t), Options{Column: "phone"})
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("expected 2 records, got %d", table.Len())
	}
}

func TestExtractFileColumnByIndex(t *testing.T) {
	// Column 1 holds names, none of which is a phone number.
	table, err := ExtractFile(writeFixture(t), Options{Column: "1"})
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("expected empty table from name column, got %d records", table.Len())
	}
}

func TestExtractFileSheetSelection(t *testing.T) {
	path := writeFixture(t)

	// The Notes sheet has a single column, so the default selection needs
	// an explicit column.
	table, err := ExtractFile(path, Options{Sheet: "Notes", Column: "1"})
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}
	records := table.Records()
	if len(records) != 1 || records[0].PhoneNumber != "+201511112222" {
		t.Errorf("unexpected records: %+v", records)
	}

	if _, err := ExtractFile(path, Options{Sheet: "Missing"}); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("expected ErrSheetNotFound, got %v", err)
	}
}

func TestExtractFileColumnNotFound(t *testing.T) {
	path := writeFixture(t)

	if _, err := ExtractFile(path, Options{Column: "Email"}); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound for name, got %v", err)
	}
	if _, err := ExtractFile(path, Options{Column: "9"}); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound for out-of-range index, got %v", err)
	}
}

func TestExtractFileTooFewColumns(t *testing.T) {
	_, err := ExtractFile(writeFixture(t), Options{Sheet: "Notes"})
	if !errors.Is(err, ErrTooFewColumns) {
		t.Errorf("expected ErrTooFewColumns, got %v", err)
	}
}

func TestExtractFileInvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.xlsx")
	if err := os.WriteFile(path, []byte("this is not a workbook"), 0644); err != nil {
		t.Fatalf("failed to write bogus file: %v", err)
	}

	if _, err := ExtractFile(path, DefaultOptions()); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestExtractReader(t *testing.T) {
	data, err := os.ReadFile(writeFixture(t))
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	table, err := Extract(bytes.NewReader(data), DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("expected 2 records, got %d", table.Len())
	}
}

func TestExtractText(t *testing.T) {
	table := ExtractText("call me at 01511112222 thanks")
	records := table.Records()
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].PhoneNumber != "+201511112222" {
		t.Errorf("phone number = %q", records[0].PhoneNumber)
	}

	if ExtractText("nothing to see").Len() != 0 {
		t.Error("expected empty table for non-matching text")
	}
}

func TestSheetAndColumnNames(t *testing.T) {
	f, err := excelize.OpenFile(writeFixture(t))
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	defer f.Close()

	sheets := SheetNames(f)
	if len(sheets) != 2 || sheets[0] != "Sheet1" || sheets[1] != "Notes" {
		t.Errorf("unexpected sheets: %v", sheets)
	}

	columns, err := ColumnNames(f, "")
	if err != nil {
		t.Fatalf("ColumnNames failed: %v", err)
	}
	if len(columns) != 2 || columns[0] != "Name" || columns[1] != "Phone" {
		t.Errorf("unexpected columns: %v", columns)
	}
}
