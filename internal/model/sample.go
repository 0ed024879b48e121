package model

// Sample returns the built-in demo dataset: four fiscal years of a small
// manufacturer, internally consistent enough to exercise every chart and
// ratio without an input file.
func Sample() []Period {
	return []Period{
		{
			Period:             "2020",
			Revenue:            540,
			COGS:               260,
			Opex:               150,
			RAndD:              40,
			SGA:                80,
			InterestExpense:    14,
			TaxExpense:         22,
			NetIncome:          94,
			OperatingCashFlow:  130,
			InvestingCashFlow:  -55,
			FinancingCashFlow:  -20,
			Capex:              48,
			TotalAssets:        610,
			TotalLiabilities:   330,
			ShareholdersEquity: 280,
		},
		{
			Period:             "2021",
			Revenue:            600,
			COGS:               282,
			Opex:               160,
			RAndD:              45,
			SGA:                84,
			InterestExpense:    15,
			TaxExpense:         27,
			NetIncome:          116,
			OperatingCashFlow:  152,
			InvestingCashFlow:  -62,
			FinancingCashFlow:  -30,
			Capex:              54,
			TotalAssets:        668,
			TotalLiabilities:   348,
			ShareholdersEquity: 320,
		},
		{
			Period:             "2022",
			Revenue:            655,
			COGS:               301,
			Opex:               171,
			RAndD:              52,
			SGA:                88,
			InterestExpense:    17,
			TaxExpense:         31,
			NetIncome:          135,
			OperatingCashFlow:  171,
			InvestingCashFlow:  -70,
			FinancingCashFlow:  -35,
			Capex:              57,
			TotalAssets:        731,
			TotalLiabilities:   371,
			ShareholdersEquity: 360,
		},
		{
			Period:             "2023",
			Revenue:            720,
			COGS:               330,
			Opex:               180,
			RAndD:              58,
			SGA:                92,
			InterestExpense:    18,
			TaxExpense:         36,
			NetIncome:          140,
			OperatingCashFlow:  190,
			InvestingCashFlow:  -78,
			FinancingCashFlow:  -40,
			Capex:              60,
			TotalAssets:        860,
			TotalLiabilities:   410,
			ShareholdersEquity: 450,
		},
	}
}
