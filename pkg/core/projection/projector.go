package projection

import (
	"fmt"
	"math"

	"foundercast/pkg/core/reference"
	"foundercast/pkg/models"
)

// Years is the fixed projection horizon.
const Years = 3

// Projector derives scenario projections from base-year inputs. It carries no
// state beyond the injected reference tables; Project is a pure function of
// its arguments. Input validation (revenue > 0, cash >= 0) is the caller's
// job - the projector computes garbage-in/garbage-out and ModelValidator
// catches inconsistencies downstream.
type Projector struct {
	Tables *reference.Tables
}

// NewProjector creates a projector bound to a reference table set.
func NewProjector(tables *reference.Tables) *Projector {
	return &Projector{Tables: tables}
}

// ProjectAll produces the three standard scenarios in presentation order.
func (p *Projector) ProjectAll(input models.UserInput) []models.ScenarioData {
	scenarios := make([]models.ScenarioData, 0, len(models.AllKinds()))
	for _, kind := range models.AllKinds() {
		scenarios = append(scenarios, p.Project(input, kind))
	}
	return scenarios
}

// Project produces one scenario under the named policy.
//
// Year 1 revenue equals the caller's raw input exactly - no smoothing - and
// year 1 cash is startingCash + netIncome[1]. Subsequent years compound:
//
//	revenue[y] = revenue[1] * growth^(y-1)
//	margin[y]  = clamp(baseMargin + drift*(y-1), floor, cap)
//	opex[y]    = fixedOpex + revenue[y] * variableRate[y]
//
// Losses are not tax-shielded: netIncome = ebitda > 0 ? ebitda*(1-tax) : ebitda.
// Cash is clamped to >= 0 at the point of computation.
func (p *Projector) Project(input models.UserInput, kind models.ScenarioKind) models.ScenarioData {
	policy := PolicyFor(kind)
	industry := p.Tables.Industry(input.Industry)
	country := p.Tables.Country(input.Country)

	growth := policy.GrowthMultiplier
	if growth == 0 {
		growth = DefaultGrowthMultiplier
		if input.ObservedGrowth > 0 {
			growth = 1 + input.ObservedGrowth
		}
	}

	baseMargin := industry.GrossMargin
	baseVariableRate := industry.VariableOpexRate
	annualExpenses := input.CurrentExpenses * 12

	// Fixed OpEx is derived once from the founder's expense run rate net of
	// base-year COGS; it does not scale with revenue.
	baseCOGS := input.CurrentRevenue * (1 - baseMargin)
	fixedOpex := math.Max(0, annualExpenses-baseCOGS)

	projections := make([]models.FinancialYear, 0, Years)
	cash := input.CurrentCash

	for y := 1; y <= Years; y++ {
		revenue := input.CurrentRevenue * math.Pow(growth, float64(y-1))

		margin := baseMargin + policy.MarginDriftPerYear*float64(y-1)
		if margin > policy.MarginCap {
			margin = policy.MarginCap
		}
		if margin < policy.MarginFloor {
			margin = policy.MarginFloor
		}

		variableRate := baseVariableRate * math.Pow(1+policy.VariableOpexDriftPerYear, float64(y-1))

		cogs := revenue * (1 - margin)
		grossProfit := revenue - cogs
		opex := fixedOpex + revenue*variableRate
		ebitda := grossProfit - opex

		netIncome := ebitda
		if ebitda > 0 {
			netIncome = ebitda * (1 - country.TaxRate)
		}

		cash += netIncome
		if cash < 0 {
			cash = 0
		}

		projections = append(projections, models.FinancialYear{
			Year:        y,
			Revenue:     revenue,
			COGS:        cogs,
			GrossProfit: grossProfit,
			OpEx:        opex,
			EBITDA:      ebitda,
			NetIncome:   netIncome,
			CashBalance: cash,
		})
	}

	return models.ScenarioData{
		Name:        kind.DisplayName(),
		Kind:        kind,
		Description: policy.Description,
		Assumptions: buildAssumptions(policy, growth, baseMargin, country),
		Projections: projections,
	}
}

func buildAssumptions(policy Policy, growth, baseMargin float64, country reference.CountryProfile) []string {
	assumptions := []string{
		fmt.Sprintf("Annual revenue growth of %.1f%%", (growth-1)*100),
		fmt.Sprintf("Year-1 gross margin of %.0f%% (industry baseline)", baseMargin*100),
		fmt.Sprintf("Corporate tax rate of %.1f%% (%s); losses carry no tax shield", country.TaxRate*100, country.Name),
	}
	switch {
	case policy.MarginDriftPerYear > 0:
		assumptions = append(assumptions, fmt.Sprintf("Gross margin expands %.0f%% per year, capped at %.0f%%", policy.MarginDriftPerYear*100, policy.MarginCap*100))
	case policy.MarginDriftPerYear < 0:
		assumptions = append(assumptions, fmt.Sprintf("Gross margin compresses %.0f%% per year, floored at %.0f%%", -policy.MarginDriftPerYear*100, policy.MarginFloor*100))
	default:
		assumptions = append(assumptions, "Gross margin holds at the industry baseline")
	}
	if policy.VariableOpexDriftPerYear != 0 {
		assumptions = append(assumptions, fmt.Sprintf("Variable OpEx rate drifts %.0f%% per year", policy.VariableOpexDriftPerYear*100))
	}
	return assumptions
}
