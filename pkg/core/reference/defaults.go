package reference

// NewDefaultTables builds the compiled-in reference set. Values mirror the
// assumptions the dashboard ships with; cmd/api can overlay a YAML file via
// LoadOverrides for per-deployment tuning.
func NewDefaultTables() *Tables {
	t := &Tables{
		Industries:      make(map[string]IndustryProfile),
		Benchmarks:      make(map[string][]BenchmarkRange),
		Countries:       make(map[string]CountryProfile),
		DefaultIndustry: "saas",
		DefaultCountry:  "india",
	}

	// -------------------------------------------------------------------------
	// Industry profiles
	// -------------------------------------------------------------------------
	industries := []IndustryProfile{
		{Name: "SaaS", GrossMargin: 0.75, VariableOpexRate: 0.30, RevenueMultiple: 8.0, EBITDAMultiple: 20.0, PEMultiple: 35.0, TypicalGrowth: 0.30, MonthlyChurn: 0.03, AvgRevenuePerUser: 1200},
		{Name: "E-commerce", GrossMargin: 0.40, VariableOpexRate: 0.25, RevenueMultiple: 2.5, EBITDAMultiple: 12.0, PEMultiple: 22.0, TypicalGrowth: 0.20, MonthlyChurn: 0.06, AvgRevenuePerUser: 350},
		{Name: "FinTech", GrossMargin: 0.65, VariableOpexRate: 0.28, RevenueMultiple: 6.0, EBITDAMultiple: 18.0, PEMultiple: 28.0, TypicalGrowth: 0.25, MonthlyChurn: 0.04, AvgRevenuePerUser: 900},
		{Name: "HealthTech", GrossMargin: 0.60, VariableOpexRate: 0.27, RevenueMultiple: 5.0, EBITDAMultiple: 16.0, PEMultiple: 26.0, TypicalGrowth: 0.22, MonthlyChurn: 0.025, AvgRevenuePerUser: 1500},
		{Name: "Manufacturing", GrossMargin: 0.30, VariableOpexRate: 0.18, RevenueMultiple: 1.5, EBITDAMultiple: 8.0, PEMultiple: 15.0, TypicalGrowth: 0.10, MonthlyChurn: 0.015, AvgRevenuePerUser: 5000},
	}
	for _, p := range industries {
		t.Industries[normalize(p.Name)] = p
	}

	// -------------------------------------------------------------------------
	// Benchmark bands (percentile ranges per industry, percentages)
	// -------------------------------------------------------------------------
	t.Benchmarks["saas"] = []BenchmarkRange{
		{Metric: "gross_margin", P25: 65, Median: 75, P75: 82},
		{Metric: "revenue_growth", P25: 15, Median: 30, P75: 60},
		{Metric: "ebitda_margin", P25: -20, Median: 0, P75: 15},
		{Metric: "opex_ratio", P25: 45, Median: 60, P75: 80},
	}
	t.Benchmarks["e-commerce"] = []BenchmarkRange{
		{Metric: "gross_margin", P25: 30, Median: 40, P75: 50},
		{Metric: "revenue_growth", P25: 10, Median: 20, P75: 40},
		{Metric: "ebitda_margin", P25: -10, Median: 2, P75: 10},
		{Metric: "opex_ratio", P25: 25, Median: 35, P75: 50},
	}
	t.Benchmarks["fintech"] = []BenchmarkRange{
		{Metric: "gross_margin", P25: 55, Median: 65, P75: 75},
		{Metric: "revenue_growth", P25: 12, Median: 25, P75: 50},
		{Metric: "ebitda_margin", P25: -15, Median: 0, P75: 12},
		{Metric: "opex_ratio", P25: 40, Median: 55, P75: 75},
	}
	t.Benchmarks["healthtech"] = []BenchmarkRange{
		{Metric: "gross_margin", P25: 50, Median: 60, P75: 70},
		{Metric: "revenue_growth", P25: 10, Median: 22, P75: 45},
		{Metric: "ebitda_margin", P25: -18, Median: -2, P75: 10},
		{Metric: "opex_ratio", P25: 40, Median: 55, P75: 72},
	}
	t.Benchmarks["manufacturing"] = []BenchmarkRange{
		{Metric: "gross_margin", P25: 22, Median: 30, P75: 38},
		{Metric: "revenue_growth", P25: 4, Median: 10, P75: 18},
		{Metric: "ebitda_margin", P25: 5, Median: 10, P75: 16},
		{Metric: "opex_ratio", P25: 12, Median: 18, P75: 26},
	}

	// -------------------------------------------------------------------------
	// Country tax/cost table
	// -------------------------------------------------------------------------
	countries := []CountryProfile{
		{Name: "United States", TaxRate: 0.21, CostMultiplier: 1.00, Currency: "USD", CurrencySymbol: "$"},
		{Name: "India", TaxRate: 0.25, CostMultiplier: 0.35, Currency: "INR", CurrencySymbol: "Rs"},
		{Name: "United Kingdom", TaxRate: 0.25, CostMultiplier: 0.90, Currency: "GBP", CurrencySymbol: "GBP"},
		{Name: "Germany", TaxRate: 0.30, CostMultiplier: 0.88, Currency: "EUR", CurrencySymbol: "EUR"},
		{Name: "France", TaxRate: 0.25, CostMultiplier: 0.85, Currency: "EUR", CurrencySymbol: "EUR"},
		{Name: "Canada", TaxRate: 0.26, CostMultiplier: 0.85, Currency: "CAD", CurrencySymbol: "C$"},
		{Name: "Australia", TaxRate: 0.30, CostMultiplier: 0.92, Currency: "AUD", CurrencySymbol: "A$"},
		{Name: "Singapore", TaxRate: 0.17, CostMultiplier: 0.95, Currency: "SGD", CurrencySymbol: "S$"},
		{Name: "Japan", TaxRate: 0.30, CostMultiplier: 0.95, Currency: "JPY", CurrencySymbol: "JPY"},
		{Name: "China", TaxRate: 0.25, CostMultiplier: 0.45, Currency: "CNY", CurrencySymbol: "CNY"},
		{Name: "Brazil", TaxRate: 0.34, CostMultiplier: 0.45, Currency: "BRL", CurrencySymbol: "R$"},
		{Name: "Mexico", TaxRate: 0.30, CostMultiplier: 0.40, Currency: "MXN", CurrencySymbol: "Mex$"},
		{Name: "Netherlands", TaxRate: 0.258, CostMultiplier: 0.88, Currency: "EUR", CurrencySymbol: "EUR"},
		{Name: "Sweden", TaxRate: 0.206, CostMultiplier: 0.90, Currency: "SEK", CurrencySymbol: "kr"},
		{Name: "Norway", TaxRate: 0.22, CostMultiplier: 1.05, Currency: "NOK", CurrencySymbol: "kr"},
		{Name: "Denmark", TaxRate: 0.22, CostMultiplier: 0.95, Currency: "DKK", CurrencySymbol: "kr"},
		{Name: "Finland", TaxRate: 0.20, CostMultiplier: 0.88, Currency: "EUR", CurrencySymbol: "EUR"},
		{Name: "Switzerland", TaxRate: 0.147, CostMultiplier: 1.20, Currency: "CHF", CurrencySymbol: "CHF"},
		{Name: "Ireland", TaxRate: 0.125, CostMultiplier: 0.90, Currency: "EUR", CurrencySymbol: "EUR"},
		{Name: "Spain", TaxRate: 0.25, CostMultiplier: 0.70, Currency: "EUR", CurrencySymbol: "EUR"},
		{Name: "Italy", TaxRate: 0.24, CostMultiplier: 0.75, Currency: "EUR", CurrencySymbol: "EUR"},
		{Name: "Portugal", TaxRate: 0.21, CostMultiplier: 0.62, Currency: "EUR", CurrencySymbol: "EUR"},
		{Name: "Poland", TaxRate: 0.19, CostMultiplier: 0.48, Currency: "PLN", CurrencySymbol: "zl"},
		{Name: "Czech Republic", TaxRate: 0.21, CostMultiplier: 0.50, Currency: "CZK", CurrencySymbol: "Kc"},
		{Name: "Austria", TaxRate: 0.23, CostMultiplier: 0.87, Currency: "EUR", CurrencySymbol: "EUR"},
		{Name: "Belgium", TaxRate: 0.25, CostMultiplier: 0.85, Currency: "EUR", CurrencySymbol: "EUR"},
		{Name: "Israel", TaxRate: 0.23, CostMultiplier: 0.85, Currency: "ILS", CurrencySymbol: "ILS"},
		{Name: "United Arab Emirates", TaxRate: 0.09, CostMultiplier: 0.80, Currency: "AED", CurrencySymbol: "AED"},
		{Name: "Saudi Arabia", TaxRate: 0.20, CostMultiplier: 0.70, Currency: "SAR", CurrencySymbol: "SAR"},
		{Name: "South Africa", TaxRate: 0.27, CostMultiplier: 0.40, Currency: "ZAR", CurrencySymbol: "R"},
		{Name: "Nigeria", TaxRate: 0.30, CostMultiplier: 0.30, Currency: "NGN", CurrencySymbol: "NGN"},
		{Name: "Kenya", TaxRate: 0.30, CostMultiplier: 0.30, Currency: "KES", CurrencySymbol: "KSh"},
		{Name: "Egypt", TaxRate: 0.225, CostMultiplier: 0.28, Currency: "EGP", CurrencySymbol: "EGP"},
		{Name: "Indonesia", TaxRate: 0.22, CostMultiplier: 0.32, Currency: "IDR", CurrencySymbol: "Rp"},
		{Name: "Vietnam", TaxRate: 0.20, CostMultiplier: 0.30, Currency: "VND", CurrencySymbol: "VND"},
		{Name: "Thailand", TaxRate: 0.20, CostMultiplier: 0.38, Currency: "THB", CurrencySymbol: "THB"},
		{Name: "Philippines", TaxRate: 0.25, CostMultiplier: 0.32, Currency: "PHP", CurrencySymbol: "PHP"},
		{Name: "Malaysia", TaxRate: 0.24, CostMultiplier: 0.40, Currency: "MYR", CurrencySymbol: "RM"},
		{Name: "South Korea", TaxRate: 0.24, CostMultiplier: 0.80, Currency: "KRW", CurrencySymbol: "KRW"},
		{Name: "Taiwan", TaxRate: 0.20, CostMultiplier: 0.65, Currency: "TWD", CurrencySymbol: "NT$"},
		{Name: "Hong Kong", TaxRate: 0.165, CostMultiplier: 1.00, Currency: "HKD", CurrencySymbol: "HK$"},
		{Name: "New Zealand", TaxRate: 0.28, CostMultiplier: 0.85, Currency: "NZD", CurrencySymbol: "NZ$"},
		{Name: "Argentina", TaxRate: 0.35, CostMultiplier: 0.40, Currency: "ARS", CurrencySymbol: "ARS"},
		{Name: "Chile", TaxRate: 0.27, CostMultiplier: 0.48, Currency: "CLP", CurrencySymbol: "CLP"},
		{Name: "Colombia", TaxRate: 0.35, CostMultiplier: 0.38, Currency: "COP", CurrencySymbol: "COP"},
		{Name: "Peru", TaxRate: 0.295, CostMultiplier: 0.36, Currency: "PEN", CurrencySymbol: "S/"},
		{Name: "Turkey", TaxRate: 0.25, CostMultiplier: 0.40, Currency: "TRY", CurrencySymbol: "TRY"},
		{Name: "Ukraine", TaxRate: 0.18, CostMultiplier: 0.32, Currency: "UAH", CurrencySymbol: "UAH"},
		{Name: "Pakistan", TaxRate: 0.29, CostMultiplier: 0.25, Currency: "PKR", CurrencySymbol: "PKR"},
		{Name: "Bangladesh", TaxRate: 0.275, CostMultiplier: 0.25, Currency: "BDT", CurrencySymbol: "BDT"},
	}
	for _, c := range countries {
		t.Countries[normalize(c.Name)] = c
	}

	return t
}
