package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, dir string, headers ...any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &headers))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{1, "Alice"}))

	path := filepath.Join(dir, "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// run executes the CLI with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(envHeaderRow, "")
	t.Setenv(envLogLevel, "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExtractAndValidate(t *testing.T) {
	dir := t.TempDir()
	book := writeWorkbook(t, dir, "ID", "Name")
	structure := filepath.Join(dir, "structure.json")

	_, err := run(t, "extract", book, "-o", structure)
	require.NoError(t, err)

	data, err := os.ReadFile(structure)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"column_letter": "B"`)

	out, err := run(t, "validate", book, "--against", structure)
	require.NoError(t, err)
	assert.Equal(t, "Structure is valid\n", out)

	changed := writeWorkbook(t, t.TempDir(), "ID", "FullName")
	out, err = run(t, "validate", changed, "--against", structure)
	require.Error(t, err)
	assert.Contains(t, out, "- Header mismatch in sheet Sheet1, column 2: expected 'Name', got 'FullName'")
}

func TestExtractSheetsDir(t *testing.T) {
	dir := t.TempDir()
	book := writeWorkbook(t, dir, "ID", "Name")
	sheets := filepath.Join(dir, "sheets")

	out, err := run(t, "extract", book, "--sheets-dir", sheets, "--pretty=false")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(filepath.Join(sheets, "Sheet1.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `{"rows":2,"columns_count":2`), string(data))
}

func TestExportFormats(t *testing.T) {
	book := writeWorkbook(t, t.TempDir(), "ID", "Name")

	out, err := run(t, "export", book)
	require.NoError(t, err)
	assert.Contains(t, out, "data:\n  Sheet1:\n    - ID: 1\n      Name: Alice\n")

	out, err = run(t, "export", book, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Name": "Alice"`)

	_, err = run(t, "export", book, "--format", "xml")
	assert.EqualError(t, err, "invalid format: xml (must be yaml, json or toon)")
}

func TestTemplateSchemaAndValidateData(t *testing.T) {
	dir := t.TempDir()
	book := writeWorkbook(t, dir, "ID", "Name")
	structure := filepath.Join(dir, "structure.json")
	_, err := run(t, "extract", book, "-o", structure)
	require.NoError(t, err)

	tmpl := filepath.Join(dir, "template.yaml")
	_, err = run(t, "template", structure, "-o", tmpl)
	require.NoError(t, err)

	out, err := run(t, "validate-data", structure, tmpl)
	require.NoError(t, err)
	assert.Equal(t, "Data is valid\n", out)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("Sheet1:\n  - ID: one\n"), 0644))
	out, err = run(t, "validate-data", structure, bad)
	require.Error(t, err)
	assert.Contains(t, out, "- /data/Sheet1/0/ID: ")

	out, err = run(t, "json-schema", structure, "--pretty=false")
	require.NoError(t, err)
	assert.Contains(t, out, `"title":"Excel Data Schema"`)
}

func TestHeaderRowFlag(t *testing.T) {
	book := writeWorkbook(t, t.TempDir(), "ID", "Name")

	_, err := run(t, "--header-row", "0", "extract", book)
	assert.EqualError(t, err, "invalid header row: 0 (must be 1 or greater)")

	out, err := run(t, "--header-row", "2", "extract", book)
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Alice"`)
	assert.Contains(t, out, `"header_row": 2`)
}

func TestInvalidLogLevel(t *testing.T) {
	book := writeWorkbook(t, t.TempDir(), "ID", "Name")
	_, err := run(t, "--log-level", "LOUD", "extract", book)
	assert.Error(t, err)
}

func TestMissingWorkbook(t *testing.T) {
	_, err := run(t, "extract", filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorContains(t, err, "file not found")
}
