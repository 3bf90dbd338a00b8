package output

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/excelsync-go/pkg/excelsync/models"
	"gopkg.in/yaml.v3"
)

// ToYAML serializes v in block style with two-space indentation. Mapping
// keys of documents and records keep their declared order.
func ToYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeYAML(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeYAML writes v to w as a single YAML document.
func EncodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// SaveExport writes a data export to path as YAML.
func SaveExport(export *models.DataExport, path string) error {
	data, err := ToYAML(export)
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// DecodeStructureYAML reads a structure document from r. A data export is
// accepted too, in which case its schema section is used.
func DecodeStructureYAML(r io.Reader) (*models.Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode structure: %w", err)
	}
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if schema := mappingValue(node, "schema"); schema != nil {
		node = schema
	}

	var doc models.Document
	if err := node.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode structure: %w", err)
	}
	return &doc, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
