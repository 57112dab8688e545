// Package breakeven computes break-even revenue, margin of safety, operating
// leverage, and a months-to-break-even estimate from a completed projection
// and the scenario's cost structure.
package breakeven

import (
	"foundercast/pkg/core/calc"
	"foundercast/pkg/core/runway"
	"foundercast/pkg/models"
)

// MonthsCap bounds the months-to-break-even estimate.
const MonthsCap = 36

// Options carries the optional unit-economics inputs.
type Options struct {
	PricePerUnit        float64 `json:"price_per_unit"`
	VariableCostPerUnit float64 `json:"variable_cost_per_unit"`
	CurrentCash         float64 `json:"current_cash"`
}

// Analysis is the break-even snapshot for one scenario.
type Analysis struct {
	Scenario                string  `json:"scenario"`
	ContributionMarginRatio float64 `json:"contribution_margin_ratio"`
	BreakEvenRevenue        float64 `json:"break_even_revenue"`
	BreakEvenUnits          float64 `json:"break_even_units"` // 0 when unit inputs absent
	MarginOfSafety          float64 `json:"margin_of_safety"` // Percent
	OperatingLeverage       float64 `json:"operating_leverage"`
	MonthsToBreakEven       float64 `json:"months_to_break_even"`

	// Probability is a deterministic heuristic scoring bucket (100/80/60/30),
	// not a calibrated statistical estimate.
	Probability  int     `json:"probability"`
	RunwayMonths float64 `json:"runway_months"`
}

// Analyze computes the break-even profile of a scenario's first year, using
// second-year revenue for the growth trajectory.
func Analyze(scenario models.ScenarioData, opts Options) Analysis {
	year1 := scenario.FirstYear()

	analysis := Analysis{Scenario: scenario.Name}

	cmr := 1 - calc.SafeDiv(year1.COGS, year1.Revenue)
	analysis.ContributionMarginRatio = calc.Round2(cmr)
	if cmr > 0 {
		analysis.BreakEvenRevenue = year1.OpEx / cmr
	}

	if opts.PricePerUnit > opts.VariableCostPerUnit && opts.PricePerUnit > 0 {
		analysis.BreakEvenUnits = year1.OpEx / (opts.PricePerUnit - opts.VariableCostPerUnit)
	}

	analysis.MarginOfSafety = calc.Round2(calc.SafeDiv(year1.Revenue-analysis.BreakEvenRevenue, year1.Revenue) * 100)
	analysis.OperatingLeverage = calc.Round2(calc.SafeDiv(year1.GrossProfit, year1.EBITDA))

	// Runway estimate from the scenario's own cost structure.
	monthlyBurn := (year1.COGS + year1.OpEx) / 12
	rw := runway.Calculate(opts.CurrentCash, monthlyBurn, year1.Revenue/12)
	analysis.RunwayMonths = rw.Months

	analysis.MonthsToBreakEven = monthsToBreakEven(scenario, analysis.BreakEvenRevenue, rw.Months)
	analysis.Probability = probabilityBucket(year1.Revenue, analysis.BreakEvenRevenue, analysis.MonthsToBreakEven, rw.Months)

	return analysis
}

// monthsToBreakEven interpolates the first-to-second year revenue ramp. Flat
// or declining trajectories fall back to the runway estimate; growth paths
// are capped at MonthsCap.
func monthsToBreakEven(scenario models.ScenarioData, breakEvenRevenue, runwayMonths float64) float64 {
	year1 := scenario.FirstYear()
	if year1.Revenue >= breakEvenRevenue {
		return 0
	}
	if len(scenario.Projections) < 2 {
		return runwayMonths
	}

	monthlyGrowth := (scenario.Projections[1].Revenue - year1.Revenue) / 12
	if monthlyGrowth <= 0 {
		return runwayMonths
	}

	months := (breakEvenRevenue - year1.Revenue) / monthlyGrowth
	if months > MonthsCap {
		months = MonthsCap
	}
	return calc.Round1(months)
}

func probabilityBucket(revenue, breakEvenRevenue, monthsToBE, runwayMonths float64) int {
	switch {
	case revenue >= breakEvenRevenue:
		return 100
	case monthsToBE <= runwayMonths && runwayMonths >= 18:
		return 80
	case monthsToBE <= runwayMonths:
		return 60
	default:
		return 30
	}
}
