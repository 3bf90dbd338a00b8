package parser

import (
	"fmt"

	"github.com/ukaji3/excelsync-go/pkg/excelsync/models"
)

// ExtractRecords reads every row below headerRow as a record keyed by header
// name. Empty cells are left out of a record and records with no values are
// dropped. Every sheet gets an entry, even when it has no records.
func ExtractRecords(wb Workbook, headerRow int) (models.SheetRecords, error) {
	var out models.SheetRecords
	if headerRow < 1 {
		return out, fmt.Errorf("%w: got %d", ErrInvalidHeaderRow, headerRow)
	}

	for _, name := range wb.SheetList() {
		ws := wb.Sheet(name)
		if ws == nil {
			return out, fmt.Errorf("sheet %q listed but not loaded", name)
		}
		out.Set(name, sheetRecords(ws, headerRow))
	}
	return out, nil
}

func sheetRecords(ws Worksheet, headerRow int) []models.Record {
	headers := headerColumns(ws, headerRow)
	records := []models.Record{}
	for row := headerRow + 1; row <= ws.MaxRow(); row++ {
		var rec models.Record
		for _, hc := range headers {
			if v := ws.Cell(row, hc.col); v != nil {
				rec.Set(hc.name, v)
			}
		}
		if len(rec) > 0 {
			records = append(records, rec)
		}
	}
	return records
}
