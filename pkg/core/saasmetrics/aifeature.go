package saasmetrics

import (
	"foundercast/pkg/core/calc"
	"foundercast/pkg/models"
)

// AIFeatureInput describes a proposed AI feature investment.
type AIFeatureInput struct {
	AnnualCost     float64 `json:"annual_cost"`
	AdoptionRate   float64 `json:"adoption_rate"`   // Share of customers using it, decimal
	RevenueUplift  float64 `json:"revenue_uplift"`  // Uplift on adopted revenue, decimal
	EfficiencyGain float64 `json:"efficiency_gain"` // OpEx reduction, decimal
}

// DefaultAIFeatureInput supplies the dashboard's stock assumptions for a
// mid-sized AI feature bet.
func DefaultAIFeatureInput() AIFeatureInput {
	return AIFeatureInput{
		AnnualCost:     50_000,
		AdoptionRate:   0.35,
		RevenueUplift:  0.08,
		EfficiencyGain: 0.05,
	}
}

// AIFeatureImpact is the projected effect of the investment per year.
type AIFeatureImpact struct {
	Scenario      string           `json:"scenario"`
	Input         AIFeatureInput   `json:"input"`
	YearlyImpacts []AIYearlyImpact `json:"yearly_impacts"`
	TotalROI      float64          `json:"total_roi"` // Percent over the horizon
	Verdict       string           `json:"verdict"`
}

// AIYearlyImpact is the per-year uplift breakdown.
type AIYearlyImpact struct {
	Year          int     `json:"year"`
	RevenueUplift float64 `json:"revenue_uplift"`
	CostSavings   float64 `json:"cost_savings"`
	NetBenefit    float64 `json:"net_benefit"`
}

// ModelAIFeature estimates the ROI of an AI feature against a projection.
// Adoption ramps linearly to the target rate over the horizon.
func ModelAIFeature(scenario models.ScenarioData, input AIFeatureInput) AIFeatureImpact {
	impact := AIFeatureImpact{Scenario: scenario.Name, Input: input}

	years := len(scenario.Projections)
	var totalBenefit, totalCost float64
	for i, fy := range scenario.Projections {
		ramp := float64(i+1) / float64(years)
		adoption := input.AdoptionRate * ramp

		uplift := fy.Revenue * adoption * input.RevenueUplift
		savings := fy.OpEx * adoption * input.EfficiencyGain
		net := uplift + savings - input.AnnualCost

		impact.YearlyImpacts = append(impact.YearlyImpacts, AIYearlyImpact{
			Year:          fy.Year,
			RevenueUplift: calc.Round2(uplift),
			CostSavings:   calc.Round2(savings),
			NetBenefit:    calc.Round2(net),
		})
		totalBenefit += uplift + savings
		totalCost += input.AnnualCost
	}

	impact.TotalROI = calc.Round1(calc.SafeDiv(totalBenefit-totalCost, totalCost) * 100)
	switch {
	case impact.TotalROI >= 100:
		impact.Verdict = "High-return investment at these adoption assumptions."
	case impact.TotalROI > 0:
		impact.Verdict = "Positive but modest return; validate adoption before committing."
	default:
		impact.Verdict = "Does not pay back at current scale; revisit after revenue grows."
	}
	return impact
}
