package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// builtInNamePrefix marks names Excel manages itself, such as print areas
// and autofilter ranges.
const builtInNamePrefix = "_xlnm."

// LoadDefinedNames returns every defined name in the workbook.
func LoadDefinedNames(f *excelize.File) []DefinedName {
	var names []DefinedName
	for _, dn := range f.GetDefinedName() {
		names = append(names, DefinedName{
			Name:     dn.Name,
			RefersTo: dn.RefersTo,
			Scope:    dn.Scope,
		})
	}
	return names
}

// NamedRanges collects workbook-level names and their reference text.
// Sheet-scoped and built-in names are left out.
func NamedRanges(names []DefinedName) map[string]string {
	result := make(map[string]string)
	for _, dn := range names {
		if !isWorkbookScope(dn.Scope) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(dn.Name), builtInNamePrefix) {
			continue
		}
		result[dn.Name] = dn.RefersTo
	}
	return result
}

func isWorkbookScope(scope string) bool {
	return scope == "" || strings.EqualFold(scope, "Workbook")
}
