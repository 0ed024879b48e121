package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/finboard-cli/internal/model"
)

func TestParseBasic(t *testing.T) {
	rows := Parse("period,revenue,cogs\n2020,100,40\n2021,120,50")

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"period", "revenue", "cogs"}, rows[0].Headers)
	assert.Equal(t, "2020", rows[0].Get("period"))
	assert.Equal(t, "100", rows[0].Get("revenue"))
	assert.Equal(t, "50", rows[1].Get("cogs"))
}

func TestParseCRLF(t *testing.T) {
	rows := Parse("period,revenue\r\n2020,100\r\n2021,120\r\n")

	require.Len(t, rows, 2)
	assert.Equal(t, "120", rows[1].Get("revenue"))
}

func TestParseEmptyInput(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("\n\n"))
}

func TestParseHeaderOnly(t *testing.T) {
	rows := Parse("period,revenue")

	assert.Empty(t, rows)
}

func TestParseQuotedComma(t *testing.T) {
	rows := Parse("period,note\n\"Q1, 2020\",ok")

	require.Len(t, rows, 1)
	assert.Equal(t, "Q1, 2020", rows[0].Get("period"))
	assert.Equal(t, "ok", rows[0].Get("note"))
}

func TestParseShortRowFilledWithEmpty(t *testing.T) {
	rows := Parse("period,revenue,cogs\n2020,100")

	require.Len(t, rows, 1)
	assert.Equal(t, "100", rows[0].Get("revenue"))
	assert.Equal(t, "", rows[0].Get("cogs"))
}

func TestParseLongRowTruncated(t *testing.T) {
	rows := Parse("period,revenue\n2020,100,extra,cells")

	require.Len(t, rows, 1)
	assert.Equal(t, "100", rows[0].Get("revenue"))
	assert.Len(t, rows[0].Cells, 2)
}

func TestParseTrimsWhitespace(t *testing.T) {
	rows := Parse("period , revenue \n 2020 , 100 ")

	require.Len(t, rows, 1)
	assert.Equal(t, "2020", rows[0].Get("period"))
	assert.Equal(t, "100", rows[0].Get("revenue"))
}

func TestParseUnknownColumnMissing(t *testing.T) {
	rows := Parse("period,revenue\n2020,100")

	assert.Equal(t, "", rows[0].Get("cogs"))
}

// Doubled quotes are not unescaped: token-level stripping only removes one
// leading and one trailing quote. This pins the documented limitation.
func TestParseDoubledQuotesNotUnescaped(t *testing.T) {
	rows := Parse("period,note\n2020,\"\"x\"\"")

	require.Len(t, rows, 1)
	assert.Equal(t, `"x"`, rows[0].Get("note"))
}

func TestWriteCSVCanonicalOrder(t *testing.T) {
	out := WriteCSV(nil)

	assert.Equal(t, "period,revenue,cogs,opex,r_and_d,sga,interest_expense,tax_expense,net_income,operating_cash_flow,investing_cash_flow,financing_cash_flow,capex,total_assets,total_liabilities,shareholders_equity\n", out)
}

func TestWriteCSVQuotesLabelWithComma(t *testing.T) {
	rows := Parse(WriteCSV([]model.Period{{Period: "Q1, 2020", Revenue: 5}}))

	require.Len(t, rows, 1)
	assert.Equal(t, "Q1, 2020", rows[0].Get("period"))
	assert.Equal(t, "5", rows[0].Get("revenue"))
}
