package schema

import "github.com/ukaji3/excelsync-go/pkg/excelsync/models"

// Template builds an example export for doc: one placeholder record per
// sheet that has headers, an empty list otherwise. Values are fixed per
// type and never read from a workbook.
func Template(doc *models.Document) *models.DataExport {
	out := &models.DataExport{Schema: doc}
	for _, name := range doc.Sheets.Keys() {
		sheet, _ := doc.Sheets.Get(name)
		records := []models.Record{}
		if sheet.HasHeaders() {
			var rec models.Record
			for _, col := range sheet.Headers.Columns() {
				h, _ := sheet.Headers.Get(col)
				rec.Set(h.Name, ExampleValue(h.DataType))
			}
			records = append(records, rec)
		}
		out.Data.Set(name, records)
	}
	return out
}

// ExampleValue returns the placeholder used for a column of type t.
func ExampleValue(t models.DataType) any {
	switch t {
	case models.DataTypeInteger:
		return 0
	case models.DataTypeNumber:
		return 0.0
	case models.DataTypeBoolean:
		return false
	case models.DataTypeDatetime:
		return "2023-01-01"
	case models.DataTypeNull:
		return nil
	}
	return "example"
}
