// Package output writes result tables to spreadsheet workbooks.
package output

import (
	"bytes"
	"fmt"
	"os"

	"github.com/AbdullahEmadeldeen/Whatsapp-links-from-excel/pkg/phonelinks/models"
	"github.com/xuri/excelize/v2"
)

const (
	// SheetName is the single sheet of the exported workbook.
	SheetName = "WhatsApp"
	// linkLabel is the display text of clickable link formulas.
	linkLabel = "Open WhatsApp"
)

// WriteXLSX renders the two-column projection of t (Phone Number,
// WhatsApp Link) as an xlsx workbook, header row first, rows in table
// order. When clickable is true the link column holds a HYPERLINK formula
// labeled "Open WhatsApp" instead of the plain URL. The Completed flag is
// not exported.
func WriteXLSX(t *models.Table, clickable bool) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(SheetName, "A1", "Phone Number"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(SheetName, "B1", "WhatsApp Link"); err != nil {
		return nil, err
	}

	for i, rec := range t.Records() {
		rowNum := i + 2 // header row is 1
		phoneCell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return nil, err
		}
		linkCell, err := excelize.CoordinatesToCellName(2, rowNum)
		if err != nil {
			return nil, err
		}

		if err := f.SetCellValue(SheetName, phoneCell, rec.PhoneNumber); err != nil {
			return nil, err
		}
		if clickable {
			formula := fmt.Sprintf(`HYPERLINK("%s","%s")`, rec.Link, linkLabel)
			if err := f.SetCellFormula(SheetName, linkCell, formula); err != nil {
				return nil, err
			}
		} else if err := f.SetCellValue(SheetName, linkCell, rec.Link); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteXLSXFile writes the workbook produced by WriteXLSX to path.
func WriteXLSXFile(path string, t *models.Table, clickable bool) error {
	data, err := WriteXLSX(t, clickable)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
