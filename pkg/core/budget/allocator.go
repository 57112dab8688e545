// Package budget splits a cash pool into spending buckets with
// policy-dependent weights and projects multi-year funding requirements.
package budget

import (
	"foundercast/pkg/core/calc"
	"foundercast/pkg/core/runway"
	"foundercast/pkg/models"
)

// RecommendedRunwayMonths is the adequacy bar for a budget allocation.
const RecommendedRunwayMonths = 12

// Weights are the bucket shares for one scenario kind. They sum to 1.
type Weights struct {
	Operations  float64
	Marketing   float64
	Development float64
	Reserves    float64
}

// WeightsFor returns the allocation policy for a scenario kind.
func WeightsFor(kind models.ScenarioKind) Weights {
	switch kind {
	case models.KindOptimistic:
		return Weights{Operations: 0.60, Marketing: 0.25, Development: 0.12, Reserves: 0.03}
	case models.KindPessimistic:
		return Weights{Operations: 0.75, Marketing: 0.10, Development: 0.05, Reserves: 0.10}
	default:
		return Weights{Operations: 0.70, Marketing: 0.15, Development: 0.10, Reserves: 0.05}
	}
}

// Breakdown is the allocated budget plus the adequacy assessment.
type Breakdown struct {
	Scenario     string  `json:"scenario"`
	TotalBudget  float64 `json:"total_budget"`
	Operations   float64 `json:"operations"`
	Marketing    float64 `json:"marketing"`
	Development  float64 `json:"development"`
	Reserves     float64 `json:"reserves"`
	RunwayMonths float64 `json:"runway_months"`
	Adequate     bool    `json:"adequate"`
	Assessment   string  `json:"assessment"`
}

// Allocate splits the cash pool per the scenario's policy weights and flags
// inadequacy when the projected runway falls short of the recommended floor.
func Allocate(scenario models.ScenarioData, cash float64) Breakdown {
	w := WeightsFor(scenario.Kind)
	year1 := scenario.FirstYear()

	monthlyBurn := (year1.COGS + year1.OpEx) / 12
	rw := runway.Calculate(cash, monthlyBurn, year1.Revenue/12)

	b := Breakdown{
		Scenario:     scenario.Name,
		TotalBudget:  cash,
		Operations:   calc.Round2(cash * w.Operations),
		Marketing:    calc.Round2(cash * w.Marketing),
		Development:  calc.Round2(cash * w.Development),
		Reserves:     calc.Round2(cash * w.Reserves),
		RunwayMonths: rw.Months,
		Adequate:     rw.Months >= RecommendedRunwayMonths,
	}

	if b.Adequate {
		b.Assessment = "Current cash funds the recommended 12+ month runway at this burn rate."
	} else {
		b.Assessment = "Current cash funds less than the recommended 12-month runway; reduce burn or raise capital."
	}
	return b
}
