package saasmetrics

import (
	"fmt"

	"foundercast/pkg/core/calc"
	"foundercast/pkg/core/runway"
	"foundercast/pkg/models"
)

// Decision identifies a what-if founder move.
type Decision string

const (
	DecisionHire              Decision = "HIRE"               // Add headcount
	DecisionIncreaseMarketing Decision = "INCREASE_MARKETING" // Boost acquisition spend
	DecisionRaisePrices       Decision = "RAISE_PRICES"       // Price increase with churn drag
	DecisionCutCosts          Decision = "CUT_COSTS"          // Across-the-board OpEx cut
)

// WhatIf describes one simulated decision.
type WhatIf struct {
	Decision  Decision `json:"decision"`
	Magnitude float64  `json:"magnitude"` // Headcount for HIRE, decimal rate otherwise
}

// SimulationResult compares first-year outcomes before and after the move.
type SimulationResult struct {
	Scenario       string   `json:"scenario"`
	Decision       Decision `json:"decision"`
	BaseEBITDA     float64  `json:"base_ebitda"`
	AdjustedEBITDA float64  `json:"adjusted_ebitda"`
	BaseRunway     float64  `json:"base_runway"`
	AdjustedRunway float64  `json:"adjusted_runway"`
	Narrative      string   `json:"narrative"`
}

// Heuristic effect sizes for the simulator. Loaded cost per hire is a blended
// early-stage figure; marketing payoff assumes a 0.5 revenue elasticity.
const (
	loadedCostPerHire   = 90_000.0
	marketingElasticity = 0.5
	priceChurnDrag      = 0.3 // Revenue lost to churn per unit of price increase
)

// Simulate applies one decision to a scenario's first year and reports the
// EBITDA and runway deltas.
func Simulate(scenario models.ScenarioData, cash float64, whatIf WhatIf) SimulationResult {
	year1 := scenario.FirstYear()

	revenue := year1.Revenue
	opex := year1.OpEx
	cogs := year1.COGS

	switch whatIf.Decision {
	case DecisionHire:
		opex += whatIf.Magnitude * loadedCostPerHire
	case DecisionIncreaseMarketing:
		extraSpend := year1.OpEx * 0.4 * whatIf.Magnitude
		opex += extraSpend
		revenue += revenue * whatIf.Magnitude * marketingElasticity
		cogs = revenue * calc.SafeDiv(year1.COGS, year1.Revenue)
	case DecisionRaisePrices:
		effective := whatIf.Magnitude * (1 - priceChurnDrag)
		revenue += revenue * effective
	case DecisionCutCosts:
		opex -= opex * whatIf.Magnitude
	}

	adjustedEBITDA := (revenue - cogs) - opex

	baseRunway := runway.Calculate(cash, (year1.COGS+year1.OpEx)/12, year1.Revenue/12)
	adjustedRunway := runway.Calculate(cash, (cogs+opex)/12, revenue/12)

	result := SimulationResult{
		Scenario:       scenario.Name,
		Decision:       whatIf.Decision,
		BaseEBITDA:     calc.Round2(year1.EBITDA),
		AdjustedEBITDA: calc.Round2(adjustedEBITDA),
		BaseRunway:     baseRunway.Months,
		AdjustedRunway: adjustedRunway.Months,
	}

	delta := adjustedEBITDA - year1.EBITDA
	if delta >= 0 {
		result.Narrative = fmt.Sprintf("Improves first-year EBITDA by %.0f and shifts runway from %.1f to %.1f months.", delta, baseRunway.Months, adjustedRunway.Months)
	} else {
		result.Narrative = fmt.Sprintf("Costs %.0f of first-year EBITDA and shifts runway from %.1f to %.1f months.", -delta, baseRunway.Months, adjustedRunway.Months)
	}
	return result
}
