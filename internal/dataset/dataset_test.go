package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/finboard-cli/internal/model"
)

func TestImportCSVReplacesDataset(t *testing.T) {
	s := NewSession()

	err := s.ImportCSV("period,revenue,cogs\n2020,100,40\n2021,120,50")

	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, 100.0, s.Periods()[0].Revenue)
}

func TestImportRotatesID(t *testing.T) {
	s := NewSession()
	first := s.ID()

	require.NoError(t, s.ImportCSV("period,revenue\n2020,100"))

	assert.NotEqual(t, first, s.ID())
}

func TestImportJSONArray(t *testing.T) {
	s := NewSession()

	err := s.ImportJSON([]byte(`[{"period":"2020","revenue":100,"cogs":40},{"period":"2021","revenue":120}]`))

	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, 40.0, s.Periods()[0].COGS)
	assert.Zero(t, s.Periods()[1].COGS)
}

func TestImportJSONAliasesResolved(t *testing.T) {
	s := NewSession()

	// JSON goes through the same normalizer as CSV, so alias headers work.
	err := s.ImportJSON([]byte(`[{"Year":"2020","Sales":500}]`))

	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "2020", s.Periods()[0].Period)
	assert.Equal(t, 500.0, s.Periods()[0].Revenue)
}

func TestImportJSONMalformedLeavesStateUnchanged(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.ImportCSV("period,revenue\n2020,100"))
	id := s.ID()

	err := s.ImportJSON([]byte(`{not json`))

	assert.Error(t, err)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, id, s.ID())
}

func TestImportJSONNonArrayRejected(t *testing.T) {
	s := NewSession()

	err := s.ImportJSON([]byte(`{"period":"2020"}`))

	assert.Error(t, err)
	assert.Zero(t, s.Len())
}

func TestLoadFileDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "data.csv")
	jsonPath := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(csvPath, []byte("period,revenue\n2020,100"), 0o644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"period":"2021","revenue":7}]`), 0o644))

	s := NewSession()

	require.NoError(t, s.LoadFile(csvPath))
	assert.Equal(t, "2020", s.Periods()[0].Period)

	require.NoError(t, s.LoadFile(jsonPath))
	assert.Equal(t, "2021", s.Periods()[0].Period)
}

func TestLoadFileMissing(t *testing.T) {
	s := NewSession()

	assert.Error(t, s.LoadFile(filepath.Join(t.TempDir(), "nope.csv")))
}

func TestLoadSample(t *testing.T) {
	s := NewSession()
	s.LoadSample()

	assert.Equal(t, len(model.Sample()), s.Len())
}

func TestExportJSONRoundTrip(t *testing.T) {
	s := NewSession()
	s.Replace(model.Sample())

	data, err := s.ExportJSON()
	require.NoError(t, err)

	var got []model.Period
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, model.Sample(), got)
}

func TestExportJSONEmptyDatasetIsEmptyArray(t *testing.T) {
	s := NewSession()

	data, err := s.ExportJSON()

	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestExportCSVRoundTrip(t *testing.T) {
	s := NewSession()
	s.Replace(model.Sample())

	out := s.ExportCSV()

	s2 := NewSession()
	require.NoError(t, s2.ImportCSV(out))
	require.Equal(t, s.Len(), s2.Len())
	for i, want := range s.Periods() {
		got := s2.Periods()[i]
		assert.Equal(t, want.Period, got.Period)
		for _, f := range model.NumericFields {
			assert.InDelta(t, want.Value(f), got.Value(f), 1e-9)
		}
	}
}

func TestStringifyValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "2020", "2020"},
		{"integral float", 100.0, "100"},
		{"fractional float", 0.5, "0.5"},
		{"bool true", true, "1"},
		{"bool false", false, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stringifyValue(tt.in))
		})
	}
}
