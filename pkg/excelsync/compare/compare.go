// Package compare checks a structure document against a baseline.
package compare

import (
	"fmt"

	"github.com/ukaji3/excelsync-go/pkg/excelsync/models"
)

// Documents reports whether current satisfies expected and lists every
// discrepancy found. A nil expected document accepts anything.
//
// The check is one-directional: sheets and columns that only current has
// are not reported.
func Documents(current, expected *models.Document) (bool, []string) {
	if expected == nil {
		return true, nil
	}
	if current == nil {
		current = &models.Document{}
	}

	var issues []string
	issues = append(issues, headerRowIssues(current, expected)...)

	for _, name := range expected.Sheets.Keys() {
		cur, ok := current.Sheets.Get(name)
		if !ok {
			issues = append(issues, fmt.Sprintf("Missing sheet: %s", name))
			continue
		}
		exp, _ := expected.Sheets.Get(name)
		issues = append(issues, headerIssues(name, cur, exp)...)
	}

	return len(issues) == 0, issues
}

func headerRowIssues(current, expected *models.Document) []string {
	exp := expected.FileProperties.HeaderRow
	cur := current.FileProperties.HeaderRow
	if exp == 0 || cur == 0 || exp == cur {
		return nil
	}
	return []string{fmt.Sprintf("Header row mismatch: expected row %d, got row %d", exp, cur)}
}

func headerIssues(sheetName string, current, expected *models.Sheet) []string {
	if expected == nil {
		return nil
	}
	var curHeaders *models.ColumnMap
	if current != nil {
		curHeaders = current.Headers
	}

	var issues []string
	for _, col := range expected.Headers.Columns() {
		want, _ := expected.Headers.Get(col)
		got, ok := curHeaders.Get(col)
		switch {
		case !ok:
			issues = append(issues, fmt.Sprintf("Missing column %d in sheet %s", col, sheetName))
		case headerName(got) != headerName(want):
			issues = append(issues, fmt.Sprintf(
				"Header mismatch in sheet %s, column %d: expected '%s', got '%s'",
				sheetName, col, headerName(want), headerName(got)))
		}
	}
	return issues
}

func headerName(h *models.Header) string {
	if h == nil {
		return ""
	}
	return h.Name
}
