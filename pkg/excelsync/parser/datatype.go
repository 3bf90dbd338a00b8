package parser

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/excelsync-go/pkg/excelsync/models"
)

// datetimeHints are substrings that mark a text value as a date or time.
var datetimeHints = []string{"/", "-", "date", "time"}

// DetectDataType classifies a single sampled cell value. The checks run in
// a fixed order, so a bool is never reported as an integer.
func DetectDataType(v any) models.DataType {
	if v == nil {
		return models.DataTypeNull
	}
	if _, ok := v.(time.Time); ok {
		return models.DataTypeDatetime
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return models.DataTypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return models.DataTypeInteger
	case reflect.Float32, reflect.Float64:
		return models.DataTypeNumber
	case reflect.String:
		lower := strings.ToLower(rv.String())
		for _, hint := range datetimeHints {
			if strings.Contains(lower, hint) {
				return models.DataTypeDatetime
			}
		}
		return models.DataTypeString
	}
	return models.OtherDataType(typeName(rv.Type()))
}

func typeName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// Truthy decides whether a header cell names a column. Empty text, numeric
// zero and false count as no header, the same as an empty cell.
//
// Columns headed by 0 or FALSE are therefore dropped.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	}
	return true
}

// cellText renders a cell value as header text.
func cellText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.Format(time.DateTime)
	}
	return fmt.Sprint(v)
}
