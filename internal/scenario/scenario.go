// Package scenario projects one pro-forma period forward from a base period
// under adjustable assumptions. The model is deliberately simplified: all
// liabilities collapse into a single debt figure, equity retains the full
// projected net income, and assets are derived as liabilities plus equity so
// the balance sheet identity holds by construction.
package scenario

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/finboard/finboard-cli/internal/model"
)

// ErrNoBasePeriod is returned when a projection is requested against an
// empty dataset. Callers present it as an inert "no data" state.
var ErrNoBasePeriod = eris.New("scenario: no base period")

// Assumptions are the scenario dials. Each is bounded; Clamp pins
// out-of-range values instead of rejecting them, so a slider or config file
// can never push the model outside its documented domain.
type Assumptions struct {
	RevenueGrowth      float64 `json:"revenue_growth" yaml:"revenue_growth"`                 // [-0.5, 0.5] fractional change to base revenue
	COGSMultiplier     float64 `json:"cogs_multiplier" yaml:"cogs_multiplier"`               // [0.5, 1.5] scales base COGS-to-revenue ratio
	OpexMultiplier     float64 `json:"opex_multiplier" yaml:"opex_multiplier"`               // [0.5, 1.5] scales base OPEX-to-revenue ratio
	CapexPctOfRevenue  float64 `json:"capex_pct_of_revenue" yaml:"capex_pct_of_revenue"`     // [0, 0.3] capex as fraction of projected revenue
	DeltaWCPctOfDeltaR float64 `json:"delta_wc_pct_of_delta_rev" yaml:"delta_wc_pct_of_delta_rev"` // [-0.5, 0.5] working capital use per unit of revenue change
	InterestRateOnDebt float64 `json:"interest_rate_on_debt" yaml:"interest_rate_on_debt"`   // [0, 0.3]
	TaxRate            float64 `json:"tax_rate" yaml:"tax_rate"`                             // [0, 0.5] applied to positive pre-tax income only
	FinancingDelta     float64 `json:"financing_delta" yaml:"financing_delta"`               // [-500, 500] absolute change to debt
}

// Neutral returns assumptions that reproduce the base period: no growth,
// unit multipliers, zero rates, no financing change.
func Neutral() Assumptions {
	return Assumptions{COGSMultiplier: 1, OpexMultiplier: 1}
}

// Clamp pins every dial into its documented range and returns the result.
func (a Assumptions) Clamp() Assumptions {
	a.RevenueGrowth = clamp(a.RevenueGrowth, -0.5, 0.5)
	a.COGSMultiplier = clamp(a.COGSMultiplier, 0.5, 1.5)
	a.OpexMultiplier = clamp(a.OpexMultiplier, 0.5, 1.5)
	a.CapexPctOfRevenue = clamp(a.CapexPctOfRevenue, 0, 0.3)
	a.DeltaWCPctOfDeltaR = clamp(a.DeltaWCPctOfDeltaR, -0.5, 0.5)
	a.InterestRateOnDebt = clamp(a.InterestRateOnDebt, 0, 0.3)
	a.TaxRate = clamp(a.TaxRate, 0, 0.5)
	a.FinancingDelta = clamp(a.FinancingDelta, -500, 500)
	return a
}

// Projection holds the projected single-period figures.
type Projection struct {
	Revenue      float64 `json:"revenue"`
	COGS         float64 `json:"cogs"`
	Opex         float64 `json:"opex"`
	EBIT         float64 `json:"ebit"`
	Interest     float64 `json:"interest"`
	EBT          float64 `json:"ebt"`
	Tax          float64 `json:"tax"`
	NetIncome    float64 `json:"net_income"`
	Capex        float64 `json:"capex"`
	DeltaWC      float64 `json:"delta_working_capital"`
	OperatingCF  float64 `json:"operating_cash_flow"`
	FreeCashFlow float64 `json:"free_cash_flow"`
	FinancingCF  float64 `json:"financing_cash_flow"`
	NetCash      float64 `json:"net_cash"`
	Assets       float64 `json:"assets"`
	Liabilities  float64 `json:"liabilities"`
	Equity       float64 `json:"equity"`
}

// CompareRow is one base-vs-scenario line item, ready for tabular or chart
// presentation.
type CompareRow struct {
	Label    string  `json:"label"`
	Base     float64 `json:"base"`
	Scenario float64 `json:"scenario"`
}

// Result is the full simulator output: the projected figures plus the three
// comparison tables the dashboard renders.
type Result struct {
	BasePeriod   string       `json:"base_period"`
	Assumptions  Assumptions  `json:"assumptions"`
	Projected    Projection   `json:"projected"`
	Income       []CompareRow `json:"income"`
	CashFlow     []CompareRow `json:"cash_flow"`
	BalanceSheet []CompareRow `json:"balance_sheet"`
}

// Project derives the pro-forma period from base under a. Assumptions are
// clamped first. The derivation is a single forward pass with no iteration.
func Project(base model.Period, a Assumptions) Result {
	a = a.Clamp()

	revenue := base.Revenue * (1 + a.RevenueGrowth)

	cogsRatio := 0.0
	opexRatio := 0.0
	if base.Revenue != 0 {
		cogsRatio = base.COGS / base.Revenue
		opexRatio = base.Opex / base.Revenue
	}
	cogs := revenue * cogsRatio * a.COGSMultiplier
	opex := revenue * opexRatio * a.OpexMultiplier

	ebit := revenue - cogs - opex

	debt := math.Max(0, base.TotalLiabilities+a.FinancingDelta)
	interest := debt * a.InterestRateOnDebt
	ebt := ebit - interest

	tax := math.Max(0, ebt) * a.TaxRate // no tax benefit on losses
	netIncome := ebt - tax

	capex := revenue * a.CapexPctOfRevenue
	deltaWC := a.DeltaWCPctOfDeltaR * (revenue - base.Revenue)

	// OCF is a simplified proxy, not a full indirect-method statement.
	ocf := netIncome - deltaWC
	fcf := ocf - capex
	financingCF := a.FinancingDelta
	netCash := fcf + financingCF

	equity := base.ShareholdersEquity + netIncome
	liabilities := debt
	assets := liabilities + equity

	proj := Projection{
		Revenue:      revenue,
		COGS:         cogs,
		Opex:         opex,
		EBIT:         ebit,
		Interest:     interest,
		EBT:          ebt,
		Tax:          tax,
		NetIncome:    netIncome,
		Capex:        capex,
		DeltaWC:      deltaWC,
		OperatingCF:  ocf,
		FreeCashFlow: fcf,
		FinancingCF:  financingCF,
		NetCash:      netCash,
		Assets:       assets,
		Liabilities:  liabilities,
		Equity:       equity,
	}

	return Result{
		BasePeriod:  base.Period,
		Assumptions: a,
		Projected:   proj,
		Income: []CompareRow{
			{Label: "Revenue", Base: base.Revenue, Scenario: revenue},
			{Label: "COGS", Base: base.COGS, Scenario: cogs},
			{Label: "Opex", Base: base.Opex, Scenario: opex},
			{Label: "EBIT", Base: base.Revenue - base.COGS - base.Opex, Scenario: ebit},
			{Label: "Interest", Base: base.InterestExpense, Scenario: interest},
			{Label: "Tax", Base: base.TaxExpense, Scenario: tax},
			{Label: "Net income", Base: base.NetIncome, Scenario: netIncome},
		},
		CashFlow: []CompareRow{
			{Label: "Operating cash flow", Base: base.OperatingCashFlow, Scenario: ocf},
			{Label: "Capex", Base: base.Capex, Scenario: capex},
			{Label: "Free cash flow", Base: base.OperatingCashFlow - base.Capex, Scenario: fcf},
			{Label: "Financing cash flow", Base: base.FinancingCashFlow, Scenario: financingCF},
			{Label: "Net cash", Base: base.OperatingCashFlow + base.InvestingCashFlow + base.FinancingCashFlow, Scenario: netCash},
		},
		BalanceSheet: []CompareRow{
			{Label: "Assets", Base: base.TotalAssets, Scenario: assets},
			{Label: "Liabilities", Base: base.TotalLiabilities, Scenario: liabilities},
			{Label: "Equity", Base: base.ShareholdersEquity, Scenario: equity},
		},
	}
}

// Simulate projects the last period of a dataset. An empty dataset returns
// ErrNoBasePeriod rather than a zero-value projection.
func Simulate(periods []model.Period, a Assumptions) (Result, error) {
	if len(periods) == 0 {
		return Result{}, ErrNoBasePeriod
	}
	return Project(periods[len(periods)-1], a), nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
