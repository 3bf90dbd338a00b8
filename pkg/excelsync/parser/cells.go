package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// LoadSheet reads a worksheet into memory. Values are the cached results
// stored in the file: int64 or float64 for numbers, bool, time.Time for
// date cells, string for text and errors, nil for empty cells.
func LoadSheet(f *excelize.File, sheetName string) (*MemSheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	date1904 := uses1904Dates(f)
	sheet := &MemSheet{Name: sheetName, Rows: make([][]any, len(rows))}
	for rowIdx, row := range rows {
		values := make([]any, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			v, err := cellValue(f, sheetName, cellName, raw, date1904)
			if err != nil {
				return nil, err
			}
			values[colIdx] = v
		}
		sheet.Rows[rowIdx] = values
	}

	merged, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}
	sheet.Merged = make([]string, 0, len(merged))
	for _, mc := range merged {
		sheet.Merged = append(sheet.Merged, mc.GetStartAxis()+":"+mc.GetEndAxis())
	}
	return sheet, nil
}

// cellValue converts the raw text of a non-empty cell to a typed value.
func cellValue(f *excelize.File, sheetName, cellName, raw string, date1904 bool) (any, error) {
	typ, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return nil, err
	}

	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return raw, nil
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return t, nil
		}
		return raw, nil
	}

	v := parseValue(raw)
	serial, isFloat := toFloat(v)
	if !isFloat || !isDateCell(f, sheetName, cellName) {
		return v, nil
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return v, nil
	}
	return t, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseISODate(s string) (time.Time, bool) {
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func uses1904Dates(f *excelize.File) bool {
	props, err := f.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}

// isDateCell reports whether the cell's number format renders a date or time.
func isDateCell(f *excelize.File, sheetName, cellName string) bool {
	idx, err := f.GetCellStyle(sheetName, cellName)
	if err != nil || idx == 0 {
		return false
	}
	style, err := f.GetStyle(idx)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormat(*style.CustomNumFmt)
	}
	return isBuiltInDateFormat(style.NumFmt)
}

// isBuiltInDateFormat covers the built-in date and time format ids,
// including the East Asian ranges.
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormat looks for date or time tokens outside quoted literals and
// bracketed sections of a custom number format.
func isDateFormat(format string) bool {
	inQuote, inBracket := false, false
	for i := 0; i < len(format); i++ {
		c := format[i]
		switch {
		case c == '\\':
			i++
		case c == '"':
			inQuote = !inQuote
		case inQuote:
		case c == '[':
			inBracket = true
		case c == ']':
			inBracket = false
		case inBracket:
		default:
			switch c {
			case 'y', 'Y', 'd', 'D', 'h', 'H', 's', 'S':
				return true
			}
		}
	}
	return false
}
