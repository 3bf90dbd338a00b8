// Package models defines the structural description of a workbook and the
// documents derived from it.
package models

// Document describes one workbook snapshot: its sheets, named ranges and the
// properties the snapshot was taken with.
type Document struct {
	// Sheets maps sheet name to its descriptor, in workbook order.
	Sheets SheetMap `json:"sheets" yaml:"sheets"`
	// NamedRanges maps workbook-level defined names to their reference text.
	NamedRanges map[string]string `json:"named_ranges" yaml:"named_ranges"`
	// FileProperties records where the snapshot came from.
	FileProperties FileProperties `json:"file_properties" yaml:"file_properties"`
}

// FileProperties holds workbook-level facts about a snapshot.
type FileProperties struct {
	// Filename is the workbook file name (no path).
	Filename string `json:"filename" yaml:"filename"`
	// SheetCount is the number of sheets in the workbook.
	SheetCount int `json:"sheet_count" yaml:"sheet_count"`
	// HeaderRow is the 1-based row the headers were read from.
	// Zero means the document does not say.
	HeaderRow int `json:"header_row,omitempty" yaml:"header_row,omitempty"`
}

// NewDocument returns an empty document for the named workbook.
func NewDocument(filename string, headerRow int) *Document {
	return &Document{
		NamedRanges: make(map[string]string),
		FileProperties: FileProperties{
			Filename:  filename,
			HeaderRow: headerRow,
		},
	}
}

// AddSheet appends a sheet and keeps FileProperties.SheetCount in step.
func (d *Document) AddSheet(name string, sheet *Sheet) {
	d.Sheets.Set(name, sheet)
	d.FileProperties.SheetCount = d.Sheets.Len()
}
