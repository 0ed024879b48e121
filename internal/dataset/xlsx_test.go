package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Financials")
	require.NoError(t, err)

	for _, cells := range rows {
		row := sheet.AddRow()
		for _, v := range cells {
			row.AddCell().SetString(v)
		}
	}

	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestImportXLSX(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"period", "revenue", "cogs"},
		{"2020", "100", "40"},
		{"2021", "120", "50"},
	})

	s := NewSession()
	require.NoError(t, s.ImportXLSX(path))

	require.Equal(t, 2, s.Len())
	assert.Equal(t, "2020", s.Periods()[0].Period)
	assert.Equal(t, 50.0, s.Periods()[1].COGS)
}

func TestImportXLSXShortRows(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"period", "revenue", "cogs"},
		{"2020", "100"},
	})

	s := NewSession()
	require.NoError(t, s.ImportXLSX(path))

	require.Equal(t, 1, s.Len())
	assert.Zero(t, s.Periods()[0].COGS)
}

func TestImportXLSXMissingFile(t *testing.T) {
	s := NewSession()

	assert.Error(t, s.ImportXLSX(filepath.Join(t.TempDir(), "nope.xlsx")))
}

func TestLoadFileXLSX(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"period", "revenue"},
		{"2022", "7"},
	})

	s := NewSession()
	require.NoError(t, s.LoadFile(path))

	assert.Equal(t, "2022", s.Periods()[0].Period)
}
