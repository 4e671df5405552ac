package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/taxbridge/taxbridge/dto"
)

var sampleRecords = []dto.Transaction{
	{Date: "2024-01-03", Description: "UPI-SWIGGY", Amount: 450.00, Category: "food", GSTRate: 5, GSTInput: 22.50},
	{Date: "2024-01-15", Description: "PRINTER INK", Amount: 2500.00, Category: "office", GSTRate: 12, GSTInput: 300.00, Deductible: true},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords))

	want := "date,description,amount,category,gst_rate,gst_input,deductible\n" +
		"2024-01-03,UPI-SWIGGY,450.00,food,5,22.50,0\n" +
		"2024-01-15,PRINTER INK,2500.00,office,12,300.00,1\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	assert.Equal(t, "date,description,amount,category,gst_rate,gst_input,deductible\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleRecords))

	xl, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer xl.Close()

	rows, err := xl.GetRows(xl.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, dto.ExportColumns, rows[0])
	assert.Equal(t, "UPI-SWIGGY", rows[1][1])
	assert.Equal(t, "450", rows[1][2])
	assert.Equal(t, "1", rows[2][6])
}
