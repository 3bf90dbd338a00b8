package parser

// Workbook is a read-only, already materialised view of a spreadsheet file.
type Workbook interface {
	// BookName is the workbook file name (no path).
	BookName() string
	// SheetList returns sheet names in workbook order.
	SheetList() []string
	// Sheet returns the named worksheet, or nil if there is none.
	Sheet(name string) Worksheet
	// DefinedNames returns the workbook's defined names.
	DefinedNames() []DefinedName
}

// Worksheet is a grid of cached cell values addressed by 1-based row and
// column.
type Worksheet interface {
	MaxRow() int
	MaxColumn() int
	// Cell returns nil for empty cells and cells outside the grid.
	Cell(row, col int) any
	// MergedCells returns merged ranges such as "A1:B2".
	MergedCells() []string
}

// DefinedName is a named reference. Scope is "Workbook" (or empty) for
// workbook-level names and the sheet name otherwise.
type DefinedName struct {
	Name     string
	RefersTo string
	Scope    string
}

// MemWorkbook is an in-memory Workbook.
type MemWorkbook struct {
	Name   string
	Sheets []*MemSheet
	Names  []DefinedName
}

func (w *MemWorkbook) BookName() string { return w.Name }

func (w *MemWorkbook) SheetList() []string {
	names := make([]string, 0, len(w.Sheets))
	for _, s := range w.Sheets {
		names = append(names, s.Name)
	}
	return names
}

func (w *MemWorkbook) Sheet(name string) Worksheet {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func (w *MemWorkbook) DefinedNames() []DefinedName { return w.Names }

// MemSheet is an in-memory Worksheet. Rows holds values row-major from
// row 1; a nil entry is an empty cell.
type MemSheet struct {
	Name   string
	Rows   [][]any
	Merged []string
}

// MaxRow returns the last row holding a value.
func (s *MemSheet) MaxRow() int {
	maxRow, _ := s.bounds()
	return maxRow
}

// MaxColumn returns the last column holding a value in any row.
func (s *MemSheet) MaxColumn() int {
	_, maxCol := s.bounds()
	return maxCol
}

func (s *MemSheet) Cell(row, col int) any {
	if row < 1 || row > len(s.Rows) {
		return nil
	}
	r := s.Rows[row-1]
	if col < 1 || col > len(r) {
		return nil
	}
	return r[col-1]
}

func (s *MemSheet) MergedCells() []string { return s.Merged }

// bounds finds the bottom-right corner of the populated cells.
func (s *MemSheet) bounds() (maxRow, maxCol int) {
	for rowIdx, row := range s.Rows {
		for colIdx, v := range row {
			if v == nil {
				continue
			}
			if rowIdx+1 > maxRow {
				maxRow = rowIdx + 1
			}
			if colIdx+1 > maxCol {
				maxCol = colIdx + 1
			}
		}
	}
	return
}
