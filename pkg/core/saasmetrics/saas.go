// Package saasmetrics holds the stage-aware heuristic estimators: SaaS unit
// economics, AI-feature ROI modeling, and what-if founder decisions. These
// are deliberate approximations from industry priors, not measurements.
package saasmetrics

import (
	"foundercast/pkg/core/calc"
	"foundercast/pkg/core/reference"
	"foundercast/pkg/models"
)

// EarlyStageRevenueThreshold splits early-stage from growth-stage heuristics.
const EarlyStageRevenueThreshold = 1_000_000

// Metrics is the unit-economics snapshot.
type Metrics struct {
	Scenario          string  `json:"scenario"`
	Stage             string  `json:"stage"` // Early | Growth
	EstimatedCustomers float64 `json:"estimated_customers"`
	ARPU              float64 `json:"arpu"` // Annual revenue per user
	CAC               float64 `json:"cac"`
	LTV               float64 `json:"ltv"`
	LTVToCACRatio     float64 `json:"ltv_to_cac_ratio"`
	PaybackMonths     float64 `json:"payback_months"`
	MonthlyChurnRate  float64 `json:"monthly_churn_rate"`
	Health            string  `json:"health"` // Strong | Acceptable | Weak
}

// Calculate derives SaaS unit economics from the scenario's first year and
// the industry profile. Customer counts come from revenue / ARPU; CAC assumes
// the marketing share of OpEx acquires the implied new-customer cohort.
func Calculate(scenario models.ScenarioData, industry reference.IndustryProfile) Metrics {
	year1 := scenario.FirstYear()

	m := Metrics{Scenario: scenario.Name, ARPU: industry.AvgRevenuePerUser}
	m.Stage = "Growth"
	churn := industry.MonthlyChurn
	if year1.Revenue < EarlyStageRevenueThreshold {
		// Early-stage cohorts churn harder than the industry steady state.
		m.Stage = "Early"
		churn = churn * 1.5
	}
	m.MonthlyChurnRate = calc.Round2(churn * 100)

	m.EstimatedCustomers = calc.Round1(calc.SafeDiv(year1.Revenue, m.ARPU))

	// Marketing spend approximated as 40% of OpEx; the acquired cohort is the
	// churn replacement plus implied growth.
	marketingSpend := year1.OpEx * 0.4
	annualChurned := m.EstimatedCustomers * churn * 12
	var growthCustomers float64
	if len(scenario.Projections) >= 2 {
		growthCustomers = calc.SafeDiv(scenario.Projections[1].Revenue-year1.Revenue, m.ARPU)
		if growthCustomers < 0 {
			growthCustomers = 0
		}
	}
	acquired := annualChurned + growthCustomers
	m.CAC = calc.Round2(calc.SafeDiv(marketingSpend, acquired))

	grossMargin := calc.SafeDiv(year1.GrossProfit, year1.Revenue)
	if churn > 0 {
		m.LTV = calc.Round2(m.ARPU / 12 * grossMargin / churn)
	}
	m.LTVToCACRatio = calc.Round2(calc.SafeDiv(m.LTV, m.CAC))
	m.PaybackMonths = calc.Round1(calc.SafeDiv(m.CAC, m.ARPU/12*grossMargin))

	switch {
	case m.LTVToCACRatio >= 3:
		m.Health = "Strong"
	case m.LTVToCACRatio >= 1.5:
		m.Health = "Acceptable"
	default:
		m.Health = "Weak"
	}
	return m
}
