package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/finboard/finboard-cli/internal/metrics"
	"github.com/finboard/finboard-cli/internal/model"
	"github.com/finboard/finboard-cli/internal/scenario"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders a currency-sized number with thousands separators
// and two decimals.
func FormatAmount(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// FormatPercent renders a fraction as a signed percentage.
func FormatPercent(v float64) string {
	return printer.Sprintf("%+.1f%%", v*100)
}

// kpiRow pairs a display label with the KPI and how its value is formatted.
type kpiRow struct {
	label   string
	kpi     metrics.KPI
	percent bool
}

// KPITable renders the KPI bundle as a three-column table: metric, value,
// year-over-year delta.
func KPITable(b metrics.Bundle) TableData {
	rows := []kpiRow{
		{"Revenue", b.Revenue, false},
		{"Net income", b.NetIncome, false},
		{"Gross margin", b.GrossMargin, true},
		{"Operating margin", b.OperatingMargin, true},
		{"Net margin", b.NetMargin, true},
		{"Free cash flow", b.FreeCashFlow, false},
		{"Debt / equity", b.DebtToEquity, true},
		{"Asset turnover", b.AssetTurnover, true},
	}

	out := TableData{
		Title: fmt.Sprintf("KPIs — %s", b.Period),
		Columns: []Column{
			{Key: "metric", Label: "Metric", Align: "left"},
			{Key: "value", Label: "Value", Align: "right"},
			{Key: "delta", Label: "YoY", Align: "right"},
		},
	}
	for _, r := range rows {
		value := FormatAmount(r.kpi.Value)
		if r.percent {
			value = printer.Sprintf("%.2f", r.kpi.Value)
		}
		out.Rows = append(out.Rows, []string{r.label, value, FormatPercent(r.kpi.Delta)})
	}
	return out
}

// SeriesChart renders one numeric field across all periods as a line chart.
func SeriesChart(periods []model.Period, f model.Field) ChartConfig {
	points := metrics.Series(periods, f)
	data := make([]ChartPoint, 0, len(points))
	for _, p := range points {
		data = append(data, ChartPoint{Label: p.Label, Value: p.Value})
	}

	title := fieldTitle(f)
	return ChartConfig{
		ChartType:  "line",
		Title:      title,
		XAxis:      "Period",
		YAxis:      title,
		Series:     []ChartSeries{{Name: title, Data: data, Color: palette[0]}},
		Colors:     assignColors(1),
		ShowLegend: false,
		ShowGrid:   true,
	}
}

// CashFlowChart renders the three cash-flow sections plus net as a grouped
// bar chart, one group per period.
func CashFlowChart(periods []model.Period) ChartConfig {
	rows := metrics.CashFlowRows(periods)

	sections := []struct {
		name  string
		value func(metrics.CashFlowRow) float64
	}{
		{"Operating", func(r metrics.CashFlowRow) float64 { return r.Operating }},
		{"Investing", func(r metrics.CashFlowRow) float64 { return r.Investing }},
		{"Financing", func(r metrics.CashFlowRow) float64 { return r.Financing }},
		{"Net", func(r metrics.CashFlowRow) float64 { return r.Net }},
	}

	series := make([]ChartSeries, 0, len(sections))
	for i, sec := range sections {
		data := make([]ChartPoint, 0, len(rows))
		for _, r := range rows {
			data = append(data, ChartPoint{Label: r.Period, Value: sec.value(r)})
		}
		series = append(series, ChartSeries{Name: sec.name, Data: data, Color: palette[i%len(palette)]})
	}

	return ChartConfig{
		ChartType:  "bar",
		Title:      "Cash flow",
		XAxis:      "Period",
		YAxis:      "Amount",
		Series:     series,
		Colors:     assignColors(len(series)),
		ShowLegend: true,
		ShowGrid:   true,
	}
}

// CapitalStructureChart renders the latest balance-sheet snapshot as a pie.
func CapitalStructureChart(cs metrics.CapitalStructure) ChartConfig {
	return ChartConfig{
		ChartType: "pie",
		Title:     fmt.Sprintf("Capital structure — %s", cs.Period),
		Series: []ChartSeries{{
			Name: "Capital structure",
			Data: []ChartPoint{
				{Label: "Liabilities", Value: cs.Liabilities},
				{Label: "Equity", Value: cs.Equity},
			},
		}},
		Colors:     assignColors(2),
		ShowLegend: true,
	}
}

// CompareTable renders a scenario comparison block as a base/scenario table.
func CompareTable(title string, rows []scenario.CompareRow) TableData {
	out := TableData{
		Title: title,
		Columns: []Column{
			{Key: "item", Label: "Line item", Align: "left"},
			{Key: "base", Label: "Base", Align: "right"},
			{Key: "scenario", Label: "Scenario", Align: "right"},
		},
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, []string{r.Label, FormatAmount(r.Base), FormatAmount(r.Scenario)})
	}
	return out
}

// ScenarioTables renders all three comparison tables of a simulator result.
func ScenarioTables(r scenario.Result) []TableData {
	return []TableData{
		CompareTable(fmt.Sprintf("Income statement — base %s", r.BasePeriod), r.Income),
		CompareTable("Cash flow", r.CashFlow),
		CompareTable("Balance sheet", r.BalanceSheet),
	}
}

// fieldTitle turns "operating_cash_flow" into "Operating cash flow".
func fieldTitle(f model.Field) string {
	s := strings.ReplaceAll(string(f), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
