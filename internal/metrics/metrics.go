// Package metrics derives ratios, KPIs, and chart series from a sequence of
// periods. Every function is pure and total: zero denominators yield 0
// rather than an error or an infinity.
package metrics

import (
	"strings"

	"github.com/finboard/finboard-cli/internal/model"
)

// KPI is one tracked metric: its value for the latest period and the
// year-over-year delta against the prior period.
type KPI struct {
	Value float64 `json:"value"`
	Delta float64 `json:"delta"`
}

// Bundle holds every tracked KPI for the latest period in a dataset.
type Bundle struct {
	Period          string `json:"period"`
	Revenue         KPI    `json:"revenue"`
	NetIncome       KPI    `json:"net_income"`
	GrossMargin     KPI    `json:"gross_margin"`
	OperatingMargin KPI    `json:"operating_margin"`
	NetMargin       KPI    `json:"net_margin"`
	FreeCashFlow    KPI    `json:"free_cash_flow"`
	DebtToEquity    KPI    `json:"debt_to_equity"`
	AssetTurnover   KPI    `json:"asset_turnover"`
}

// GrossMargin is (revenue - cogs) / revenue, 0 when revenue is 0.
func GrossMargin(p model.Period) float64 {
	return ratio(p.Revenue-p.COGS, p.Revenue)
}

// OperatingMargin is (revenue - cogs - opex) / revenue, 0 when revenue is 0.
func OperatingMargin(p model.Period) float64 {
	return ratio(p.Revenue-p.COGS-p.Opex, p.Revenue)
}

// NetMargin is net_income / revenue, 0 when revenue is 0. Net income is the
// reported figure, not re-derived from revenue minus expenses.
func NetMargin(p model.Period) float64 {
	return ratio(p.NetIncome, p.Revenue)
}

// DebtToEquity is total_liabilities / shareholders_equity, 0 when equity is 0.
func DebtToEquity(p model.Period) float64 {
	return ratio(p.TotalLiabilities, p.ShareholdersEquity)
}

// AssetTurnover is revenue / total_assets, 0 when assets are 0.
func AssetTurnover(p model.Period) float64 {
	return ratio(p.Revenue, p.TotalAssets)
}

// FreeCashFlow is operating cash flow minus capex.
func FreeCashFlow(p model.Period) float64 {
	return p.OperatingCashFlow - p.Capex
}

// ComputeKPIs builds the KPI bundle from an ordered period sequence. The
// last element is "latest" and the second-to-last is "prior"; with a single
// period, prior equals latest and every delta is 0. An empty sequence yields
// a zero bundle.
func ComputeKPIs(periods []model.Period) Bundle {
	if len(periods) == 0 {
		return Bundle{}
	}

	latest := periods[len(periods)-1]
	prior := latest
	if len(periods) >= 2 {
		prior = periods[len(periods)-2]
	}

	kpi := func(f func(model.Period) float64) KPI {
		return KPI{Value: f(latest), Delta: delta(f(latest), f(prior))}
	}

	return Bundle{
		Period:          latest.Period,
		Revenue:         kpi(func(p model.Period) float64 { return p.Revenue }),
		NetIncome:       kpi(func(p model.Period) float64 { return p.NetIncome }),
		GrossMargin:     kpi(GrossMargin),
		OperatingMargin: kpi(OperatingMargin),
		NetMargin:       kpi(NetMargin),
		FreeCashFlow:    kpi(FreeCashFlow),
		DebtToEquity:    kpi(DebtToEquity),
		AssetTurnover:   kpi(AssetTurnover),
	}
}

// CashFlowRow aggregates the three cash flow sections of one period.
type CashFlowRow struct {
	Period    string  `json:"period"`
	Operating float64 `json:"operating"`
	Investing float64 `json:"investing"`
	Financing float64 `json:"financing"`
	Net       float64 `json:"net"`
}

// CashFlowRows produces one aggregate row per period, in input order.
func CashFlowRows(periods []model.Period) []CashFlowRow {
	rows := make([]CashFlowRow, 0, len(periods))
	for _, p := range periods {
		rows = append(rows, CashFlowRow{
			Period:    p.Period,
			Operating: p.OperatingCashFlow,
			Investing: p.InvestingCashFlow,
			Financing: p.FinancingCashFlow,
			Net:       p.OperatingCashFlow + p.InvestingCashFlow + p.FinancingCashFlow,
		})
	}
	return rows
}

// CapitalStructure is the latest period's balance-sheet snapshot.
type CapitalStructure struct {
	Period      string  `json:"period"`
	Assets      float64 `json:"assets"`
	Liabilities float64 `json:"liabilities"`
	Equity      float64 `json:"equity"`
}

// LatestCapitalStructure returns the snapshot for the last period, or a zero
// value for an empty sequence.
func LatestCapitalStructure(periods []model.Period) CapitalStructure {
	if len(periods) == 0 {
		return CapitalStructure{}
	}
	latest := periods[len(periods)-1]
	return CapitalStructure{
		Period:      latest.Period,
		Assets:      latest.TotalAssets,
		Liabilities: latest.TotalLiabilities,
		Equity:      latest.ShareholdersEquity,
	}
}

// SeriesPoint is one label/value pair of a chartable series.
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series extracts the named numeric field across all periods, in order.
func Series(periods []model.Period, f model.Field) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(periods))
	for _, p := range periods {
		points = append(points, SeriesPoint{Label: p.Period, Value: p.Value(f)})
	}
	return points
}

// FilterRange selects the contiguous sub-sequence from the first label
// containing from through the last label containing to. Matching is
// substring containment, not chronological comparison. When either marker
// fails to match, or the matches are inverted, the full sequence is
// returned unchanged. Empty markers match everything.
func FilterRange(periods []model.Period, from, to string) []model.Period {
	if from == "" && to == "" {
		return periods
	}

	start := 0
	if from != "" {
		start = -1
		for i, p := range periods {
			if strings.Contains(p.Period, from) {
				start = i
				break
			}
		}
	}

	end := len(periods) - 1
	if to != "" {
		end = -1
		for i := len(periods) - 1; i >= 0; i-- {
			if strings.Contains(periods[i].Period, to) {
				end = i
				break
			}
		}
	}

	if start < 0 || end < 0 || end < start {
		return periods
	}
	return periods[start : end+1]
}

// ratio divides num by den with a zero-denominator guard.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// delta is the year-over-year fractional change, 0 when the prior value is 0.
func delta(latest, prior float64) float64 {
	if prior == 0 {
		return 0
	}
	return (latest - prior) / prior
}
