package calc

import (
	"foundercast/pkg/models"
)

// =============================================================================
// RATIO ANALYSIS
// =============================================================================

// YearRatios holds the per-year margin and efficiency ratios (percentages).
type YearRatios struct {
	Year              int     `json:"year"`
	GrossMargin       float64 `json:"gross_margin"`
	EBITDAMargin      float64 `json:"ebitda_margin"`
	NetMargin         float64 `json:"net_margin"`
	OpexRatio         float64 `json:"opex_ratio"`          // OpEx / Revenue
	RevenuePerOpex    float64 `json:"revenue_per_opex"`    // Efficiency: revenue per OpEx unit
	RevenueGrowth     float64 `json:"revenue_growth"`      // vs prior year; 0 for year 1
	CashFlowCoverage  float64 `json:"cash_flow_coverage"`  // CashBalance / annualized OpEx
}

// RatioAnalysis is the full ratio snapshot for one scenario.
type RatioAnalysis struct {
	Scenario    string       `json:"scenario"`
	Kind        models.ScenarioKind `json:"kind"`
	Years       []YearRatios `json:"years"`
	RevenueCAGR float64      `json:"revenue_cagr"`
	RuleOf40    float64      `json:"rule_of_40"` // Final-year growth + EBITDA margin
}

// AnalyzeRatios computes profitability, growth, and efficiency ratios from a
// completed projection. Pure function: re-derived on every call.
func AnalyzeRatios(scenario models.ScenarioData) RatioAnalysis {
	analysis := RatioAnalysis{
		Scenario: scenario.Name,
		Kind:     scenario.Kind,
		Years:    make([]YearRatios, 0, len(scenario.Projections)),
	}

	var prior *models.FinancialYear
	for i := range scenario.Projections {
		fy := scenario.Projections[i]
		yr := YearRatios{
			Year:             fy.Year,
			GrossMargin:      Round2(SafeDiv(fy.GrossProfit, fy.Revenue) * 100),
			EBITDAMargin:     Round2(SafeDiv(fy.EBITDA, fy.Revenue) * 100),
			NetMargin:        Round2(SafeDiv(fy.NetIncome, fy.Revenue) * 100),
			OpexRatio:        Round2(SafeDiv(fy.OpEx, fy.Revenue) * 100),
			RevenuePerOpex:   Round2(SafeDiv(fy.Revenue, fy.OpEx)),
			CashFlowCoverage: Round2(SafeDiv(fy.CashBalance, fy.OpEx)),
		}
		if prior != nil {
			yr.RevenueGrowth = Round2(GrowthRate(fy.Revenue, prior.Revenue))
		}
		analysis.Years = append(analysis.Years, yr)
		prior = &scenario.Projections[i]
	}

	if n := len(scenario.Projections); n >= 2 {
		first := scenario.Projections[0]
		last := scenario.Projections[n-1]
		analysis.RevenueCAGR = Round2(CAGR(first.Revenue, last.Revenue, n-1))

		lastRatios := analysis.Years[n-1]
		analysis.RuleOf40 = Round2(lastRatios.RevenueGrowth + lastRatios.EBITDAMargin)
	}

	return analysis
}
