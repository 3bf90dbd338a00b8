package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/excelsync-go/pkg/excelsync/models"
)

func TestExtractRecords(t *testing.T) {
	wb := &MemWorkbook{
		Name: "records.xlsx",
		Sheets: []*MemSheet{
			{
				Name: "People",
				Rows: [][]any{
					{"ID", nil, "Name", "Note"},
					{int64(1), "ignored", "Ann", nil},
					{nil, "ignored", nil, nil},
					{int64(3), nil, "Cy", "late"},
				},
			},
			{Name: "Blank", Rows: [][]any{{"Only"}}},
		},
	}

	data, err := ExtractRecords(wb, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"People", "Blank"}, data.Keys())

	people, _ := data.Get("People")
	require.Len(t, people, 2)
	assert.Equal(t, models.Record{{Name: "ID", Value: int64(1)}, {Name: "Name", Value: "Ann"}}, people[0])
	assert.Equal(t, models.Record{
		{Name: "ID", Value: int64(3)},
		{Name: "Name", Value: "Cy"},
		{Name: "Note", Value: "late"},
	}, people[1])

	blank, ok := data.Get("Blank")
	require.True(t, ok)
	assert.NotNil(t, blank)
	assert.Empty(t, blank)
}

func TestExtractRecordsCustomHeaderRow(t *testing.T) {
	wb := &MemWorkbook{
		Name: "report.xlsx",
		Sheets: []*MemSheet{{
			Name: "Report",
			Rows: [][]any{
				{"Title"},
				{"ID", "Name"},
				{int64(7), "Bo"},
			},
		}},
	}

	data, err := ExtractRecords(wb, 2)
	require.NoError(t, err)
	rows, _ := data.Get("Report")
	require.Len(t, rows, 1)
	v, ok := rows[0].Get("Name")
	require.True(t, ok)
	assert.Equal(t, "Bo", v)
}

func TestExtractRecordsInvalidHeaderRow(t *testing.T) {
	_, err := ExtractRecords(sampleWorkbook(), -1)
	assert.ErrorIs(t, err, ErrInvalidHeaderRow)
}

func TestNamedRanges(t *testing.T) {
	got := NamedRanges([]DefinedName{
		{Name: "Total", RefersTo: "Sheet1!$B$10"},
		{Name: "Rates", RefersTo: "Rates!$A$1:$A$5", Scope: "Workbook"},
		{Name: "Local", RefersTo: "Sheet1!$A$1", Scope: "Sheet1"},
		{Name: "_xlnm.Print_Titles", RefersTo: "Sheet1!$1:$1", Scope: "Workbook"},
	})
	assert.Equal(t, map[string]string{
		"Total": "Sheet1!$B$10",
		"Rates": "Rates!$A$1:$A$5",
	}, got)

	assert.Empty(t, NamedRanges(nil))
	assert.NotNil(t, NamedRanges(nil))
}
