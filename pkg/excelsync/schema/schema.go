// Package schema projects structure documents onto JSON Schema and example
// data.
package schema

import (
	"fmt"

	"github.com/ukaji3/excelsync-go/pkg/excelsync/models"
)

// DraftURI identifies the JSON Schema dialect ToJSONSchema produces.
const DraftURI = "http://json-schema.org/draft-07/schema#"

// ToJSONSchema builds a schema for {"data": {sheet: [record, ...]}} documents.
// Each sheet is an array of closed objects whose properties are the sheet's
// header names.
func ToJSONSchema(doc *models.Document) map[string]any {
	filename := "unknown"
	if doc.FileProperties.Filename != "" {
		filename = doc.FileProperties.Filename
	}

	sheets := make(map[string]any, doc.Sheets.Len())
	for _, name := range doc.Sheets.Keys() {
		sheet, _ := doc.Sheets.Get(name)
		sheets[name] = sheetSchema(sheet)
	}

	return map[string]any{
		"$schema":     DraftURI,
		"title":       "Excel Data Schema",
		"description": fmt.Sprintf("Schema for Excel file %s", filename),
		"type":        "object",
		"properties": map[string]any{
			"data": map[string]any{
				"type":       "object",
				"properties": sheets,
			},
		},
	}
}

func sheetSchema(sheet *models.Sheet) map[string]any {
	properties := make(map[string]any)
	if sheet != nil {
		for _, col := range sheet.Headers.Columns() {
			h, _ := sheet.Headers.Get(col)
			properties[h.Name] = map[string]any{
				"type":        JSONType(h.DataType),
				"description": fmt.Sprintf("Column %s - %s", h.ColumnLetter, h.Name),
			}
		}
	}
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"properties":           properties,
			"additionalProperties": false,
		},
	}
}

// JSONType maps a column tag to a JSON Schema type. Null columns accept
// strings too; unknown and missing tags are treated as strings.
func JSONType(t models.DataType) any {
	switch t {
	case models.DataTypeInteger:
		return "integer"
	case models.DataTypeNumber:
		return "number"
	case models.DataTypeBoolean:
		return "boolean"
	case models.DataTypeNull:
		return []string{"null", "string"}
	case models.DataTypeString, models.DataTypeDatetime:
		return "string"
	}
	return "string"
}
