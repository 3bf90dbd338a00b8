package models

// Sheet describes the layout of a single worksheet.
type Sheet struct {
	// Rows is the highest populated row index.
	Rows int `json:"rows" yaml:"rows"`
	// ColumnsCount is the highest populated column index.
	ColumnsCount int `json:"columns_count" yaml:"columns_count"`
	// MergedCells lists merged ranges (e.g. "A1:B2") in workbook order.
	MergedCells []string `json:"merged_cells" yaml:"merged_cells"`
	// Headers maps 1-based column index to its header. Nil when the header
	// row lies outside the sheet.
	Headers *ColumnMap `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// Header describes one named column.
type Header struct {
	// Name is the header cell text.
	Name string `json:"name" yaml:"name"`
	// ColumnLetter is the spreadsheet column label (A, B, ..., AA).
	ColumnLetter string `json:"column_letter" yaml:"column_letter"`
	// DataType is inferred from the row below the header. Empty when the
	// sheet has no such row.
	DataType DataType `json:"data_type,omitempty" yaml:"data_type,omitempty"`
}

// HasHeaders reports whether the sheet carries at least one header.
func (s *Sheet) HasHeaders() bool {
	return s != nil && s.Headers.Len() > 0
}
