package excelsync

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/excelsync-go/pkg/excelsync/compare"
	"github.com/ukaji3/excelsync-go/pkg/excelsync/models"
	"github.com/ukaji3/excelsync-go/pkg/excelsync/output"
	"github.com/ukaji3/excelsync-go/pkg/excelsync/parser"
	"github.com/xuri/excelize/v2"
)

// Sync holds one loaded workbook together with the header row to read it
// with and, optionally, a previously captured structure.
type Sync struct {
	book      parser.Workbook
	headerRow int
	structure *models.Document
	log       *slog.Logger
}

// Open loads the workbook at path. Cell values are read as the results
// cached in the file; formulas are not evaluated.
func Open(path string, opts Options) (*Sync, error) {
	if err := checkExists(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	defer f.Close()

	return fromFile(f, filepath.Base(path), opts)
}

// OpenReader loads a workbook from r. name is recorded as the file name.
func OpenReader(r io.Reader, name string, opts Options) (*Sync, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	defer f.Close()

	return fromFile(f, name, opts)
}

// New wraps an already loaded workbook.
func New(book parser.Workbook, opts Options) *Sync {
	return &Sync{
		book:      book,
		headerRow: opts.EffectiveHeaderRow(),
		log:       opts.logger(),
	}
}

func fromFile(f *excelize.File, name string, opts Options) (*Sync, error) {
	book, err := LoadWorkbook(f, name)
	if err != nil {
		return nil, err
	}
	s := New(book, opts)
	s.log.Debug("workbook loaded", "file", name, "sheets", len(book.Sheets), "header_row", s.headerRow)
	return s, nil
}

// LoadWorkbook reads every sheet of f into memory.
func LoadWorkbook(f *excelize.File, name string) (*parser.MemWorkbook, error) {
	book := &parser.MemWorkbook{
		Name:  name,
		Names: parser.LoadDefinedNames(f),
	}
	for _, sheetName := range f.GetSheetList() {
		sheet, err := parser.LoadSheet(f, sheetName)
		if err != nil {
			return nil, NewExtractionError(sheetName, "cells", err)
		}
		book.Sheets = append(book.Sheets, sheet)
	}
	return book, nil
}

// HeaderRow returns the header row used when a call does not override it.
func (s *Sync) HeaderRow() int {
	return s.headerRow
}

// Workbook returns the loaded workbook.
func (s *Sync) Workbook() parser.Workbook {
	return s.book
}

// Structure returns the structure set by LoadStructure, or nil.
func (s *Sync) Structure() *models.Document {
	return s.structure
}

func (s *Sync) resolveHeaderRow(headerRow int) int {
	if headerRow > 0 {
		return headerRow
	}
	return s.headerRow
}

// ExtractStructure describes the workbook. A headerRow of zero or less uses
// the Sync's own header row.
func (s *Sync) ExtractStructure(headerRow int) (*models.Document, error) {
	doc, err := parser.ExtractStructure(s.book, s.resolveHeaderRow(headerRow))
	if err != nil {
		return nil, NewExtractionError("", "structure", err)
	}
	return doc, nil
}

// ExportStructure extracts the structure and writes it to path as JSON.
func (s *Sync) ExportStructure(path string, headerRow int) error {
	doc, err := s.ExtractStructure(headerRow)
	if err != nil {
		return err
	}
	if err := output.SaveStructure(doc, path); err != nil {
		return fmt.Errorf("write structure: %w", err)
	}
	s.log.Debug("structure written", "path", path, "sheets", doc.FileProperties.SheetCount)
	return nil
}

// ValidateStructure extracts the current structure and compares it with
// expected. A nil expected structure is always satisfied.
func (s *Sync) ValidateStructure(expected *models.Document, headerRow int) (bool, []string, error) {
	current, err := s.ExtractStructure(headerRow)
	if err != nil {
		return false, nil, err
	}
	ok, issues := compare.Documents(current, expected)
	if !ok {
		s.log.Warn("structure mismatch", "file", s.book.BookName(), "issues", len(issues))
	}
	return ok, issues, nil
}

// CompareStructure validates the workbook against the structure stored at
// path. It fails with ErrFileNotFound when there is no such file.
func (s *Sync) CompareStructure(path string, headerRow int) (bool, []string, error) {
	expected, err := LoadStructureFile(path)
	if err != nil {
		return false, nil, err
	}
	return s.ValidateStructure(expected, headerRow)
}

// ExportData pairs the extracted structure with every data row of every
// sheet.
func (s *Sync) ExportData(headerRow int) (*models.DataExport, error) {
	row := s.resolveHeaderRow(headerRow)
	doc, err := s.ExtractStructure(row)
	if err != nil {
		return nil, err
	}
	data, err := parser.ExtractRecords(s.book, row)
	if err != nil {
		return nil, NewExtractionError("", "records", err)
	}
	return &models.DataExport{Schema: doc, Data: data}, nil
}

// ExportYAML writes the data export to path as YAML.
func (s *Sync) ExportYAML(path string, headerRow int) error {
	export, err := s.ExportData(headerRow)
	if err != nil {
		return err
	}
	if err := output.SaveExport(export, path); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	s.log.Debug("data export written", "path", path)
	return nil
}

// LoadStructure reads a structure file and keeps it on the Sync. When the
// file records a header row, it becomes the Sync's header row.
func (s *Sync) LoadStructure(path string) error {
	doc, err := LoadStructureFile(path)
	if err != nil {
		return err
	}
	if doc.FileProperties.HeaderRow > 0 {
		s.headerRow = doc.FileProperties.HeaderRow
	}
	s.structure = doc
	s.log.Debug("structure loaded", "path", path, "header_row", s.headerRow)
	return nil
}

// LoadStructureFile reads a structure document, JSON or YAML by extension.
func LoadStructureFile(path string) (*models.Document, error) {
	if err := checkExists(path); err != nil {
		return nil, err
	}
	doc, err := output.ReadStructure(path)
	if err != nil {
		return nil, fmt.Errorf("read structure %s: %w", path, err)
	}
	return doc, nil
}

func checkExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return err
	}
	return nil
}
