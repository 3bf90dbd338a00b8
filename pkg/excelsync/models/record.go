package models

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Field is one named value of a Record.
type Field struct {
	Name  string
	Value any
}

// Record is one exported row: header name to cell value, in header order.
type Record []Field

// Set assigns value to name. A repeated name keeps its first position and
// takes the latest value.
func (r *Record) Set(name string, value any) {
	for i := range *r {
		if (*r)[i].Name == name {
			(*r)[i].Value = value
			return
		}
	}
	*r = append(*r, Field{Name: name, Value: value})
}

// Get returns the value stored under name.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON writes the record as a JSON object in field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML emits the record as a block mapping in field order.
func (r Record) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r {
		val := &yaml.Node{}
		if err := val.Encode(f.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
			val,
		)
	}
	return node, nil
}

// DataExport pairs a structure document with sheet contents. It is the
// shape of both the YAML data export and generated templates.
type DataExport struct {
	// Schema is the structure the data was read with.
	Schema *Document `json:"schema" yaml:"schema"`
	// Data maps sheet name to its records.
	Data SheetRecords `json:"data" yaml:"data"`
}
