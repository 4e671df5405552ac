package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/taxbridge/taxbridge/dto"
	"github.com/taxbridge/taxbridge/utils"
)

// blankRow reports whether every cell is empty after trimming.
func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// tableFromRows drops blank rows, promotes the first surviving row to the
// header, and returns the assembled table. Zero surviving rows means the
// source had no machine-readable table.
func tableFromRows(rows [][]string) (*utils.Table, error) {
	var kept [][]string
	for _, row := range rows {
		if !blankRow(row) {
			kept = append(kept, row)
		}
	}
	if len(kept) == 0 {
		return nil, &dto.NoTableFoundError{}
	}
	return &utils.Table{Columns: kept[0], Rows: kept[1:]}, nil
}

// ParseCSVTable reads a delimited tabular export into a raw table.
func ParseCSVTable(data []byte) (*utils.Table, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	return tableFromRows(rows)
}

// ParseXLSXTable reads the first sheet of a spreadsheet into a raw table.
func ParseXLSXTable(data []byte) (*utils.Table, error) {
	xl, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet: %w", err)
	}
	defer xl.Close()

	sheet := xl.GetSheetName(0)
	rows, err := xl.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return tableFromRows(rows)
}
