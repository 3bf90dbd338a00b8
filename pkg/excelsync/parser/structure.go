package parser

import (
	"fmt"

	"github.com/ukaji3/excelsync-go/pkg/excelsync/models"
	"github.com/xuri/excelize/v2"
)

// ExtractStructure describes every sheet of wb using headerRow as the row of
// column names. Types are sampled from the single row below it.
func ExtractStructure(wb Workbook, headerRow int) (*models.Document, error) {
	if headerRow < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHeaderRow, headerRow)
	}

	doc := models.NewDocument(wb.BookName(), headerRow)
	doc.NamedRanges = NamedRanges(wb.DefinedNames())

	for _, name := range wb.SheetList() {
		ws := wb.Sheet(name)
		if ws == nil {
			return nil, fmt.Errorf("sheet %q listed but not loaded", name)
		}
		sheet, err := describeSheet(ws, headerRow)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		doc.AddSheet(name, sheet)
	}
	return doc, nil
}

func describeSheet(ws Worksheet, headerRow int) (*models.Sheet, error) {
	maxRow, maxCol := ws.MaxRow(), ws.MaxColumn()
	sheet := &models.Sheet{
		Rows:         maxRow,
		ColumnsCount: maxCol,
		MergedCells:  append([]string{}, ws.MergedCells()...),
	}
	if maxRow < headerRow || maxCol == 0 {
		return sheet, nil
	}

	headers := models.NewColumnMap()
	for _, hc := range headerColumns(ws, headerRow) {
		letter, err := excelize.ColumnNumberToName(hc.col)
		if err != nil {
			return nil, err
		}
		headers.Set(hc.col, &models.Header{Name: hc.name, ColumnLetter: letter})
	}

	dataRow := headerRow + 1
	if maxRow >= dataRow {
		for _, col := range headers.Columns() {
			h, _ := headers.Get(col)
			h.DataType = DetectDataType(ws.Cell(dataRow, col))
		}
	}
	sheet.Headers = headers
	return sheet, nil
}

type headerColumn struct {
	col  int
	name string
}

// headerColumns lists the columns whose header cell is truthy, left to right.
func headerColumns(ws Worksheet, headerRow int) []headerColumn {
	var cols []headerColumn
	for col := 1; col <= ws.MaxColumn(); col++ {
		v := ws.Cell(headerRow, col)
		if !Truthy(v) {
			continue
		}
		cols = append(cols, headerColumn{col: col, name: cellText(v)})
	}
	return cols
}
