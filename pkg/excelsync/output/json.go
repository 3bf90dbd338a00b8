// Package output serializes structure documents and data exports.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/excelsync-go/pkg/excelsync/models"
)

// ToJSON serializes a structure document. Pretty output is indented with
// two spaces.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	return marshalJSON(doc, pretty)
}

// SheetToJSON serializes a single sheet descriptor.
func SheetToJSON(sheet *models.Sheet, pretty bool) ([]byte, error) {
	return marshalJSON(sheet, pretty)
}

// ExportToJSON serializes a data export.
func ExportToJSON(export *models.DataExport, pretty bool) ([]byte, error) {
	return marshalJSON(export, pretty)
}

// SchemaToJSON serializes a JSON Schema document.
func SchemaToJSON(schema map[string]any, pretty bool) ([]byte, error) {
	return marshalJSON(schema, pretty)
}

func marshalJSON(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// SaveStructure writes doc to path as indented JSON.
func SaveStructure(doc *models.Document, path string) error {
	data, err := ToJSON(doc, true)
	if err != nil {
		return fmt.Errorf("encode structure: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// DecodeStructureJSON reads a structure document from r.
func DecodeStructureJSON(r io.Reader) (*models.Document, error) {
	var doc models.Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode structure: %w", err)
	}
	return &doc, nil
}

// ReadStructure loads a structure document from path. Files ending in .yaml
// or .yml are read as YAML, everything else as JSON.
func ReadStructure(path string) (*models.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeStructureYAML(f)
	default:
		return DecodeStructureJSON(f)
	}
}
