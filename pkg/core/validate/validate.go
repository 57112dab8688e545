// Package validate checks a projection's internal arithmetic consistency and
// flags deviations from benchmark expectations. Hard errors mean the numbers
// do not add up; soft warnings mean they add up but look unusual for the
// declared scenario kind. Nothing here blocks rendering - the verdict is a
// data-quality signal.
package validate

import (
	"fmt"
	"math"

	"foundercast/pkg/core/calc"
	"foundercast/pkg/core/reference"
	"foundercast/pkg/models"
)

// Tolerance is the rounding slack for the arithmetic identities, in currency
// units.
const Tolerance = 1.0

// Result is the validation verdict for one scenario.
type Result struct {
	Scenario    string   `json:"scenario"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Reliability string   `json:"reliability"` // Low | Medium | High
}

// growthBand is the plausible annual growth range for a scenario kind,
// in percent.
type growthBand struct {
	lo, hi float64
}

func bandFor(kind models.ScenarioKind) growthBand {
	switch kind {
	case models.KindOptimistic:
		return growthBand{lo: 10, hi: 120}
	case models.KindPessimistic:
		return growthBand{lo: -40, hi: 15}
	default:
		return growthBand{lo: -5, hi: 60}
	}
}

// Validator carries the injected benchmark tables.
type Validator struct {
	Tables *reference.Tables
}

// NewValidator creates a validator bound to a reference table set.
func NewValidator(tables *reference.Tables) *Validator {
	return &Validator{Tables: tables}
}

// Check runs arithmetic-consistency checks (hard errors) and scenario-aware
// plausibility checks (soft warnings) over one scenario. Violations are
// reported, never silently corrected.
func (v *Validator) Check(scenario models.ScenarioData, industry string) Result {
	result := Result{Scenario: scenario.Name}

	// -------------------------------------------------------------------------
	// Structural checks
	// -------------------------------------------------------------------------
	if len(scenario.Projections) == 0 {
		result.Errors = append(result.Errors, "scenario has no projected years")
		result.Reliability = "Low"
		return result
	}
	for i, fy := range scenario.Projections {
		if fy.Year != i+1 {
			result.Errors = append(result.Errors, fmt.Sprintf("year sequence broken at index %d: got year %d, want %d", i, fy.Year, i+1))
		}
	}

	// -------------------------------------------------------------------------
	// Arithmetic identities (hard errors)
	// -------------------------------------------------------------------------
	for _, fy := range scenario.Projections {
		if diff := math.Abs(fy.GrossProfit - (fy.Revenue - fy.COGS)); diff > Tolerance {
			result.Errors = append(result.Errors, fmt.Sprintf("year %d: gross profit off by %.2f from revenue - COGS", fy.Year, diff))
		}
		if diff := math.Abs(fy.EBITDA - (fy.GrossProfit - fy.OpEx)); diff > Tolerance {
			result.Errors = append(result.Errors, fmt.Sprintf("year %d: EBITDA off by %.2f from gross profit - OpEx", fy.Year, diff))
		}
		if fy.CashBalance < 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("year %d: negative cash balance %.2f persisted", fy.Year, fy.CashBalance))
		}
	}

	// -------------------------------------------------------------------------
	// Plausibility checks (soft warnings), keyed off the scenario kind tag
	// -------------------------------------------------------------------------
	band := bandFor(scenario.Kind)
	for i := 1; i < len(scenario.Projections); i++ {
		growth := calc.GrowthRate(scenario.Projections[i].Revenue, scenario.Projections[i-1].Revenue)
		if growth < band.lo || growth > band.hi {
			result.Warnings = append(result.Warnings, fmt.Sprintf("year %d growth of %.1f%% is outside the expected %s band (%.0f%% to %.0f%%)", scenario.Projections[i].Year, growth, scenario.Kind, band.lo, band.hi))
		}
	}

	profile := v.Tables.Industry(industry)
	marginFloor := profile.GrossMargin * 0.6 * 100 // Well below baseline = suspicious
	for _, fy := range scenario.Projections {
		margin := calc.SafeDiv(fy.GrossProfit, fy.Revenue) * 100
		if fy.Revenue > 0 && margin < marginFloor {
			result.Warnings = append(result.Warnings, fmt.Sprintf("year %d gross margin of %.1f%% is below the adjusted %s floor of %.1f%%", fy.Year, margin, profile.Name, marginFloor))
		}
	}

	result.Reliability = verdict(len(result.Errors), len(result.Warnings))
	return result
}

// CheckAll validates every scenario in a set.
func (v *Validator) CheckAll(scenarios []models.ScenarioData, industry string) []Result {
	results := make([]Result, 0, len(scenarios))
	for _, s := range scenarios {
		results = append(results, v.Check(s, industry))
	}
	return results
}

func verdict(errors, warnings int) string {
	switch {
	case errors > 0:
		return "Low"
	case warnings > 2:
		return "Medium"
	default:
		return "High"
	}
}
