package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/excelsync-go/pkg/excelsync/models"
)

func sampleWorkbook() *MemWorkbook {
	return &MemWorkbook{
		Name: "sample.xlsx",
		Sheets: []*MemSheet{
			{
				Name: "Sheet1",
				Rows: [][]any{
					{"ID", "Name", "Age", "Date"},
					{int64(1), "John Doe", int64(30), "2023-01-01"},
					{int64(2), "Jane Smith", int64(25), "2023-02-15"},
				},
				Merged: []string{"F1:G1", "A10:B10"},
			},
			{
				Name: "Sheet2",
				Rows: [][]any{
					{"Product", "Price", "Quantity"},
					{"Apple", 1.99, int64(100)},
				},
			},
		},
		Names: []DefinedName{
			{Name: "Ages", RefersTo: "Sheet1!$C$2:$C$3", Scope: "Workbook"},
			{Name: "Local", RefersTo: "Sheet2!$A$1", Scope: "Sheet2"},
			{Name: "_xlnm.Print_Area", RefersTo: "Sheet1!$A$1:$D$3"},
		},
	}
}

func header(t *testing.T, doc *models.Document, sheetName string, col int) *models.Header {
	t.Helper()
	sheet, ok := doc.Sheets.Get(sheetName)
	require.True(t, ok, "sheet %s", sheetName)
	h, ok := sheet.Headers.Get(col)
	require.True(t, ok, "column %d of %s", col, sheetName)
	return h
}

func TestExtractStructure(t *testing.T) {
	doc, err := ExtractStructure(sampleWorkbook(), 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"Sheet1", "Sheet2"}, doc.Sheets.Keys())
	assert.Equal(t, models.FileProperties{Filename: "sample.xlsx", SheetCount: 2, HeaderRow: 1}, doc.FileProperties)
	assert.Equal(t, map[string]string{"Ages": "Sheet1!$C$2:$C$3"}, doc.NamedRanges)

	sheet1, _ := doc.Sheets.Get("Sheet1")
	assert.Equal(t, 3, sheet1.Rows)
	assert.Equal(t, 4, sheet1.ColumnsCount)
	assert.Equal(t, []string{"F1:G1", "A10:B10"}, sheet1.MergedCells)
	assert.Equal(t, []int{1, 2, 3, 4}, sheet1.Headers.Columns())

	expected := []models.Header{
		{Name: "ID", ColumnLetter: "A", DataType: models.DataTypeInteger},
		{Name: "Name", ColumnLetter: "B", DataType: models.DataTypeString},
		{Name: "Age", ColumnLetter: "C", DataType: models.DataTypeInteger},
		{Name: "Date", ColumnLetter: "D", DataType: models.DataTypeDatetime},
	}
	for i, want := range expected {
		assert.Equal(t, want, *header(t, doc, "Sheet1", i+1))
	}

	assert.Equal(t, models.DataTypeNumber, header(t, doc, "Sheet2", 2).DataType)
	sheet2, _ := doc.Sheets.Get("Sheet2")
	assert.Equal(t, []string{}, sheet2.MergedCells)
}

func TestExtractStructureCustomHeaderRow(t *testing.T) {
	wb := &MemWorkbook{
		Name: "report.xlsx",
		Sheets: []*MemSheet{{
			Name: "CustomHeaderSheet",
			Rows: [][]any{
				{"Report Title"},
				{"Generated on: 2023-01-01"},
				{"ID", "Name", "Age", "Date"},
				{int64(1), "John Doe", int64(30), "2023-01-01"},
			},
		}},
	}

	doc, err := ExtractStructure(wb, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.FileProperties.HeaderRow)

	sheet, _ := doc.Sheets.Get("CustomHeaderSheet")
	assert.Equal(t, []int{1, 2, 3, 4}, sheet.Headers.Columns())
	assert.Equal(t, "ID", header(t, doc, "CustomHeaderSheet", 1).Name)
	assert.Equal(t, models.DataTypeInteger, header(t, doc, "CustomHeaderSheet", 1).DataType)
	assert.Equal(t, models.DataTypeString, header(t, doc, "CustomHeaderSheet", 2).DataType)
	assert.Equal(t, models.DataTypeInteger, header(t, doc, "CustomHeaderSheet", 3).DataType)

	doc, err = ExtractStructure(wb, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, mustSheet(t, doc, "CustomHeaderSheet").Headers.Columns())
	assert.Equal(t, models.DataTypeDatetime, header(t, doc, "CustomHeaderSheet", 1).DataType)
}

func mustSheet(t *testing.T, doc *models.Document, name string) *models.Sheet {
	t.Helper()
	sheet, ok := doc.Sheets.Get(name)
	require.True(t, ok)
	return sheet
}

func TestExtractStructureSparseAndFalsyHeaders(t *testing.T) {
	wb := &MemWorkbook{
		Name: "sparse.xlsx",
		Sheets: []*MemSheet{{
			Name: "Data",
			Rows: [][]any{
				{"A", nil, "", int64(0), false, "F"},
				{nil, "x", "y", int64(1), true, nil},
			},
		}},
	}

	doc, err := ExtractStructure(wb, 1)
	require.NoError(t, err)

	sheet := mustSheet(t, doc, "Data")
	assert.Equal(t, 6, sheet.ColumnsCount)
	assert.Equal(t, []int{1, 6}, sheet.Headers.Columns())
	assert.Equal(t, models.DataTypeNull, header(t, doc, "Data", 1).DataType)
	assert.Equal(t, "F", header(t, doc, "Data", 6).ColumnLetter)
}

func TestExtractStructureWithoutDataRow(t *testing.T) {
	wb := &MemWorkbook{
		Name:   "headers-only.xlsx",
		Sheets: []*MemSheet{{Name: "Only", Rows: [][]any{{"ID", "Name"}}}},
	}

	doc, err := ExtractStructure(wb, 1)
	require.NoError(t, err)

	h := header(t, doc, "Only", 2)
	assert.Equal(t, "Name", h.Name)
	assert.Empty(t, h.DataType)
}

func TestExtractStructureHeaderRowBeyondSheet(t *testing.T) {
	wb := &MemWorkbook{
		Name: "short.xlsx",
		Sheets: []*MemSheet{
			{Name: "Short", Rows: [][]any{{"ID"}, {int64(1)}}, Merged: []string{"A1:A2"}},
			{Name: "Empty"},
		},
	}

	doc, err := ExtractStructure(wb, 5)
	require.NoError(t, err)

	short := mustSheet(t, doc, "Short")
	assert.Nil(t, short.Headers)
	assert.Equal(t, 2, short.Rows)
	assert.Equal(t, 1, short.ColumnsCount)
	assert.Equal(t, []string{"A1:A2"}, short.MergedCells)

	empty := mustSheet(t, doc, "Empty")
	assert.Nil(t, empty.Headers)
	assert.Equal(t, 0, empty.Rows)
	assert.Equal(t, 0, empty.ColumnsCount)
	assert.Equal(t, 2, doc.FileProperties.SheetCount)
}

func TestExtractStructureColumnLetters(t *testing.T) {
	row := make([]any, 28)
	row[0] = "first"
	row[25] = "z"
	row[26] = "aa"
	row[27] = "ab"
	wb := &MemWorkbook{Name: "wide.xlsx", Sheets: []*MemSheet{{Name: "Wide", Rows: [][]any{row}}}}

	doc, err := ExtractStructure(wb, 1)
	require.NoError(t, err)

	assert.Equal(t, "A", header(t, doc, "Wide", 1).ColumnLetter)
	assert.Equal(t, "Z", header(t, doc, "Wide", 26).ColumnLetter)
	assert.Equal(t, "AA", header(t, doc, "Wide", 27).ColumnLetter)
	assert.Equal(t, "AB", header(t, doc, "Wide", 28).ColumnLetter)
}

func TestExtractStructureInvalidHeaderRow(t *testing.T) {
	_, err := ExtractStructure(sampleWorkbook(), 0)
	assert.ErrorIs(t, err, ErrInvalidHeaderRow)
}

func TestExtractStructureIsDeterministic(t *testing.T) {
	first, err := ExtractStructure(sampleWorkbook(), 1)
	require.NoError(t, err)
	second, err := ExtractStructure(sampleWorkbook(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
