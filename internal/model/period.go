package model

// Period is one fiscal period's financial snapshot: income statement,
// cash flow sections, and balance sheet figures. Numeric fields default to
// zero when absent. No accounting identity is enforced on input; inconsistent
// data is carried through as-is and downstream ratios guard their own
// denominators.
type Period struct {
	Period             string  `json:"period"`
	Revenue            float64 `json:"revenue"`
	COGS               float64 `json:"cogs"`
	Opex               float64 `json:"opex"`
	RAndD              float64 `json:"r_and_d"`
	SGA                float64 `json:"sga"`
	InterestExpense    float64 `json:"interest_expense"`
	TaxExpense         float64 `json:"tax_expense"`
	NetIncome          float64 `json:"net_income"`
	OperatingCashFlow  float64 `json:"operating_cash_flow"`
	InvestingCashFlow  float64 `json:"investing_cash_flow"`
	FinancingCashFlow  float64 `json:"financing_cash_flow"`
	Capex              float64 `json:"capex"`
	TotalAssets        float64 `json:"total_assets"`
	TotalLiabilities   float64 `json:"total_liabilities"`
	ShareholdersEquity float64 `json:"shareholders_equity"`
}

// Field identifies one numeric Period field. The set of fields is enumerated
// statically so chart consumers can only select real numeric columns.
type Field string

const (
	FieldRevenue            Field = "revenue"
	FieldCOGS               Field = "cogs"
	FieldOpex               Field = "opex"
	FieldRAndD              Field = "r_and_d"
	FieldSGA                Field = "sga"
	FieldInterestExpense    Field = "interest_expense"
	FieldTaxExpense         Field = "tax_expense"
	FieldNetIncome          Field = "net_income"
	FieldOperatingCashFlow  Field = "operating_cash_flow"
	FieldInvestingCashFlow  Field = "investing_cash_flow"
	FieldFinancingCashFlow  Field = "financing_cash_flow"
	FieldCapex              Field = "capex"
	FieldTotalAssets        Field = "total_assets"
	FieldTotalLiabilities   Field = "total_liabilities"
	FieldShareholdersEquity Field = "shareholders_equity"
)

// NumericFields lists every plottable numeric field in canonical column order.
var NumericFields = []Field{
	FieldRevenue,
	FieldCOGS,
	FieldOpex,
	FieldRAndD,
	FieldSGA,
	FieldInterestExpense,
	FieldTaxExpense,
	FieldNetIncome,
	FieldOperatingCashFlow,
	FieldInvestingCashFlow,
	FieldFinancingCashFlow,
	FieldCapex,
	FieldTotalAssets,
	FieldTotalLiabilities,
	FieldShareholdersEquity,
}

// Columns is the canonical column order for tabular export: the period label
// followed by every numeric field.
var Columns = func() []string {
	cols := make([]string, 0, len(NumericFields)+1)
	cols = append(cols, "period")
	for _, f := range NumericFields {
		cols = append(cols, string(f))
	}
	return cols
}()

// ValidField reports whether name is one of the enumerated numeric fields.
func ValidField(name string) bool {
	for _, f := range NumericFields {
		if string(f) == name {
			return true
		}
	}
	return false
}

// Value returns the named numeric field, or 0 for an unknown field name.
func (p Period) Value(f Field) float64 {
	switch f {
	case FieldRevenue:
		return p.Revenue
	case FieldCOGS:
		return p.COGS
	case FieldOpex:
		return p.Opex
	case FieldRAndD:
		return p.RAndD
	case FieldSGA:
		return p.SGA
	case FieldInterestExpense:
		return p.InterestExpense
	case FieldTaxExpense:
		return p.TaxExpense
	case FieldNetIncome:
		return p.NetIncome
	case FieldOperatingCashFlow:
		return p.OperatingCashFlow
	case FieldInvestingCashFlow:
		return p.InvestingCashFlow
	case FieldFinancingCashFlow:
		return p.FinancingCashFlow
	case FieldCapex:
		return p.Capex
	case FieldTotalAssets:
		return p.TotalAssets
	case FieldTotalLiabilities:
		return p.TotalLiabilities
	case FieldShareholdersEquity:
		return p.ShareholdersEquity
	}
	return 0
}

// SetValue assigns the named numeric field. Unknown field names are ignored.
func (p *Period) SetValue(f Field, v float64) {
	switch f {
	case FieldRevenue:
		p.Revenue = v
	case FieldCOGS:
		p.COGS = v
	case FieldOpex:
		p.Opex = v
	case FieldRAndD:
		p.RAndD = v
	case FieldSGA:
		p.SGA = v
	case FieldInterestExpense:
		p.InterestExpense = v
	case FieldTaxExpense:
		p.TaxExpense = v
	case FieldNetIncome:
		p.NetIncome = v
	case FieldOperatingCashFlow:
		p.OperatingCashFlow = v
	case FieldInvestingCashFlow:
		p.InvestingCashFlow = v
	case FieldFinancingCashFlow:
		p.FinancingCashFlow = v
	case FieldCapex:
		p.Capex = v
	case FieldTotalAssets:
		p.TotalAssets = v
	case FieldTotalLiabilities:
		p.TotalLiabilities = v
	case FieldShareholdersEquity:
		p.ShareholdersEquity = v
	}
}
