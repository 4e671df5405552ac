// Package export serializes classified record sets into the canonical
// delimited and spreadsheet forms.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/taxbridge/taxbridge/dto"
)

func recordRow(rec dto.Transaction) []string {
	deductible := "0"
	if rec.Deductible {
		deductible = "1"
	}
	return []string{
		rec.Date,
		rec.Description,
		strconv.FormatFloat(rec.Amount, 'f', 2, 64),
		rec.Category,
		strconv.Itoa(rec.GSTRate),
		strconv.FormatFloat(rec.GSTInput, 'f', 2, 64),
		deductible,
	}
}

// WriteCSV writes the canonical delimited form.
func WriteCSV(w io.Writer, records []dto.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(dto.ExportColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(recordRow(rec)); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the canonical spreadsheet form.
func WriteXLSX(w io.Writer, records []dto.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, name := range dto.ExportColumns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, rec := range records {
		values := []any{
			rec.Date, rec.Description, rec.Amount, rec.Category,
			rec.GSTRate, rec.GSTInput, boolToInt(rec.Deductible),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
