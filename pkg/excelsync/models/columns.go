package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ColumnMap is an integer-keyed map of headers that iterates in ascending
// column order.
//
// Serialized documents carry column keys as strings; UnmarshalJSON and
// UnmarshalYAML are the only places they are converted back to integers.
type ColumnMap struct {
	cols    []int
	headers map[int]*Header
}

// NewColumnMap returns an empty ColumnMap.
func NewColumnMap() *ColumnMap {
	return &ColumnMap{headers: make(map[int]*Header)}
}

// Set stores h under column col.
func (m *ColumnMap) Set(col int, h *Header) {
	if m.headers == nil {
		m.headers = make(map[int]*Header)
	}
	if _, ok := m.headers[col]; !ok {
		i := sort.SearchInts(m.cols, col)
		m.cols = append(m.cols, 0)
		copy(m.cols[i+1:], m.cols[i:])
		m.cols[i] = col
	}
	m.headers[col] = h
}

// Get returns the header stored under col.
func (m *ColumnMap) Get(col int) (*Header, bool) {
	if m == nil {
		return nil, false
	}
	h, ok := m.headers[col]
	return h, ok
}

// Len returns the number of headers. A nil map has none.
func (m *ColumnMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.cols)
}

// Columns returns the column indexes in ascending order.
func (m *ColumnMap) Columns() []int {
	if m == nil {
		return nil
	}
	out := make([]int, len(m.cols))
	copy(out, m.cols)
	return out
}

// MarshalJSON writes the map as a JSON object keyed by decimal column index.
func (m *ColumnMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range m.Columns() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(col)))
		buf.WriteByte(':')
		b, err := json.Marshal(m.headers[col])
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object whose keys are column indexes.
func (m *ColumnMap) UnmarshalJSON(data []byte) error {
	var raw map[string]*Header
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = ColumnMap{headers: make(map[int]*Header, len(raw))}
	for key, h := range raw {
		col, err := parseColumnKey(key)
		if err != nil {
			return err
		}
		m.Set(col, h)
	}
	return nil
}

// MarshalYAML emits the map as a block mapping with integer keys.
func (m *ColumnMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, col := range m.Columns() {
		val := &yaml.Node{}
		if err := val.Encode(m.headers[col]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(col)},
			val,
		)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping whose keys are column indexes, quoted or not.
func (m *ColumnMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("headers: expected a mapping, got %s", value.Tag)
	}
	*m = ColumnMap{headers: make(map[int]*Header, len(value.Content)/2)}
	for i := 0; i+1 < len(value.Content); i += 2 {
		col, err := parseColumnKey(value.Content[i].Value)
		if err != nil {
			return err
		}
		var h Header
		if err := value.Content[i+1].Decode(&h); err != nil {
			return err
		}
		m.Set(col, &h)
	}
	return nil
}

func parseColumnKey(key string) (int, error) {
	col, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("column key %q is not an integer", key)
	}
	return col, nil
}
