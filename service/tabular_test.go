package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/taxbridge/taxbridge/dto"
)

func TestParseCSVTable(t *testing.T) {
	data := []byte("Date,Narration,Withdrawal Amt,Deposit Amt\n" +
		"2024-01-03,UPI-SWIGGY,450.00,\n" +
		"2024-01-05,SALARY CREDIT,,50000.00\n")

	tbl, err := ParseCSVTable(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Narration", "Withdrawal Amt", "Deposit Amt"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "UPI-SWIGGY", tbl.Rows[0][1])
}

func TestParseCSVTableSkipsBlankRows(t *testing.T) {
	data := []byte("\n ,  ,\nDate,Narration\n\n2024-01-03,UPI-SWIGGY\n,\n")

	tbl, err := ParseCSVTable(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Narration"}, tbl.Columns)
	require.Len(t, tbl.Rows, 1)
}

func TestParseCSVTableEmpty(t *testing.T) {
	_, err := ParseCSVTable([]byte("\n\n"))

	var noTable *dto.NoTableFoundError
	assert.ErrorAs(t, err, &noTable)
}

func TestParseXLSXTable(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Txn Date", "Particulars", "Amt"},
		{"2024-02-01", "ZOMATO ORDER", 620.5},
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	tbl, err := ParseXLSXTable(buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, []string{"Txn Date", "Particulars", "Amt"}, tbl.Columns)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "ZOMATO ORDER", tbl.Rows[0][1])
}

func TestParseXLSXTableNotASpreadsheet(t *testing.T) {
	_, err := ParseXLSXTable([]byte("this is not a zip archive"))
	assert.Error(t, err)
}
