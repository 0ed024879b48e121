// Package normalize maps arbitrary column names onto canonical Period
// fields. Each field carries an ordered alias list; the first alias that
// matches any header (case-insensitively) wins, and unmatched fields take
// their zero default.
package normalize

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/finboard/finboard-cli/internal/model"
	"github.com/finboard/finboard-cli/internal/tabular"
)

// fieldAliases pairs a canonical field with its accepted source-column
// names, highest priority first. The canonical name itself is always the
// first alias.
type fieldAliases struct {
	field   model.Field
	aliases []string
}

var numericAliases = []fieldAliases{
	{model.FieldRevenue, []string{"revenue", "sales", "total_revenue", "total revenue", "turnover"}},
	{model.FieldCOGS, []string{"cogs", "cost_of_goods_sold", "cost of goods sold", "cost_of_revenue", "cost of revenue"}},
	{model.FieldOpex, []string{"opex", "operating_expenses", "operating expenses", "total_opex"}},
	{model.FieldRAndD, []string{"r_and_d", "rd", "r&d", "research_and_development", "research and development"}},
	{model.FieldSGA, []string{"sga", "sg&a", "selling_general_admin", "selling general and administrative"}},
	{model.FieldInterestExpense, []string{"interest_expense", "interest expense", "interest"}},
	{model.FieldTaxExpense, []string{"tax_expense", "tax expense", "income_tax", "income tax", "taxes"}},
	{model.FieldNetIncome, []string{"net_income", "net income", "net_profit", "net profit", "earnings"}},
	{model.FieldOperatingCashFlow, []string{"operating_cash_flow", "operating cash flow", "cash_from_operations", "ocf", "cfo"}},
	{model.FieldInvestingCashFlow, []string{"investing_cash_flow", "investing cash flow", "cash_from_investing", "icf", "cfi"}},
	{model.FieldFinancingCashFlow, []string{"financing_cash_flow", "financing cash flow", "cash_from_financing", "fcf_financing", "cff"}},
	{model.FieldCapex, []string{"capex", "capital_expenditure", "capital expenditures", "capital expenditure"}},
	{model.FieldTotalAssets, []string{"total_assets", "total assets", "assets"}},
	{model.FieldTotalLiabilities, []string{"total_liabilities", "total liabilities", "liabilities"}},
	{model.FieldShareholdersEquity, []string{"shareholders_equity", "shareholders equity", "stockholders_equity", "total_equity", "equity"}},
}

var periodAliases = []string{"period", "year", "fiscal_year", "fiscal year", "quarter", "date", "label"}

// Normalize converts header-mapped rows into canonical Periods, one per
// input row, preserving order. Alias resolution happens once against the
// first row's headers; all rows of a batch share the same header line.
func Normalize(rows []tabular.Row) []model.Period {
	if len(rows) == 0 {
		return nil
	}

	idx := headerIndex(rows[0].Headers)
	periodCol := resolve(idx, periodAliases)

	type binding struct {
		field  model.Field
		header string
	}
	bindings := make([]binding, 0, len(numericAliases))
	for _, fa := range numericAliases {
		if h := resolve(idx, fa.aliases); h != "" {
			bindings = append(bindings, binding{fa.field, h})
		}
	}

	periods := make([]model.Period, 0, len(rows))
	for _, row := range rows {
		var p model.Period
		if periodCol != "" {
			p.Period = row.Get(periodCol)
		}
		for _, b := range bindings {
			p.SetValue(b.field, coerceNumber(row.Get(b.header), b.header))
		}
		periods = append(periods, p)
	}
	return periods
}

// headerIndex builds a case-folded header lookup once per batch, mapping the
// folded name to the header as written.
func headerIndex(headers []string) map[string]string {
	idx := make(map[string]string, len(headers))
	for _, h := range headers {
		key := strings.ToLower(h)
		if _, ok := idx[key]; !ok {
			idx[key] = h
		}
	}
	return idx
}

// resolve scans aliases in priority order and returns the first header name
// that matches, or "" when no alias is present.
func resolve(idx map[string]string, aliases []string) string {
	for _, a := range aliases {
		if h, ok := idx[strings.ToLower(a)]; ok {
			return h
		}
	}
	return ""
}

// coerceNumber parses a cell as a decimal number. Empty cells and
// unparsable text both coerce to 0; bad text is logged so a silently
// zeroed column is at least visible in the import log.
func coerceNumber(s, column string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		zap.L().Warn("normalize: unparsable numeric cell, coercing to 0",
			zap.String("column", column),
			zap.String("value", s),
		)
		return 0
	}
	return v
}
