package insight

import (
	"context"
	"fmt"
	"math"
	"strings"

	"foundercast/pkg/core/projection"
	"foundercast/pkg/core/utils"
	"foundercast/pkg/models"
)

const generatorSystemPrompt = "You are a startup financial modeler. Respond with strict JSON only, matching: " +
	`{"scenarios":[{"name":string,"kind":"BASE"|"OPTIMISTIC"|"PESSIMISTIC","description":string,` +
	`"assumptions":[string],"projections":[{"year":int,"revenue":number,"cogs":number,"gross_profit":number,` +
	`"opex":number,"ebitda":number,"net_income":number,"cash_balance":number}]}]}. ` +
	"Exactly 3 scenarios, 3 years each, years 1..3."

// scenarioWire is the advisory response schema for generated scenarios.
type scenarioWire struct {
	Scenarios []models.ScenarioData `json:"scenarios"`
}

// GenerateScenarios asks the LLM for a bespoke scenario set informed by the
// founder's business context. The response schema is advisory: the reply is
// fence-stripped, repaired, and structurally checked per scenario; any
// scenario that fails is replaced by the deterministic projector's scenario
// of the same kind, and a fully failed call falls back to the projector set.
func (c *Client) GenerateScenarios(ctx context.Context, input models.UserInput, projector *projection.Projector) []models.ScenarioData {
	deterministic := projector.ProjectAll(input)

	prompt := buildGeneratorPrompt(input)
	raw, err := c.agents.ExecutePrompt(ctx, "generator", prompt, generatorSystemPrompt, jsonOptions())
	if err != nil {
		fmt.Printf("[INSIGHT] Scenario generation LLM call failed, using projector: %v\n", err)
		return deterministic
	}

	var wire scenarioWire
	if err := utils.SmartParse(raw, &wire); err != nil {
		fmt.Printf("[INSIGHT] Generated scenarios unparseable, using projector: %v\n", err)
		return deterministic
	}

	kinds := models.AllKinds()
	result := make([]models.ScenarioData, len(kinds))
	for i, kind := range kinds {
		result[i] = deterministic[i]

		candidate, ok := pickScenario(wire.Scenarios, kind, i)
		if !ok {
			continue
		}
		candidate.Kind = kind
		if strings.TrimSpace(candidate.Name) == "" {
			candidate.Name = kind.DisplayName()
		}
		if !structurallySound(candidate, input) {
			fmt.Printf("[INSIGHT] Generated %s scenario failed structural checks, keeping projector version\n", kind)
			continue
		}
		result[i] = candidate
	}
	return result
}

// pickScenario matches a generated scenario to a kind, preferring the
// explicit tag and falling back to positional order.
func pickScenario(scenarios []models.ScenarioData, kind models.ScenarioKind, index int) (models.ScenarioData, bool) {
	for _, s := range scenarios {
		if s.Kind == kind {
			return s, true
		}
	}
	if index < len(scenarios) {
		return scenarios[index], true
	}
	return models.ScenarioData{}, false
}

// structurallySound enforces the hard invariants a generated scenario must
// satisfy before it can replace the deterministic one: 3 strictly increasing
// years, year-1 revenue equal to the founder's input, consistent arithmetic,
// and non-negative cash.
func structurallySound(s models.ScenarioData, input models.UserInput) bool {
	if len(s.Projections) != projection.Years {
		return false
	}
	for i, fy := range s.Projections {
		if fy.Year != i+1 {
			return false
		}
		if math.Abs(fy.GrossProfit-(fy.Revenue-fy.COGS)) > 1 {
			return false
		}
		if math.Abs(fy.EBITDA-(fy.GrossProfit-fy.OpEx)) > 1 {
			return false
		}
		if fy.CashBalance < 0 {
			return false
		}
	}
	// Year 1 must reflect the founder's actual revenue, not a hallucinated one.
	if math.Abs(s.Projections[0].Revenue-input.CurrentRevenue) > input.CurrentRevenue*0.01 {
		return false
	}
	return true
}

func buildGeneratorPrompt(input models.UserInput) string {
	return fmt.Sprintf(`Build 3-year financial scenarios for this company.

COMPANY: %s
Industry: %s, Country: %s
Current annual revenue: %.0f (year 1 revenue MUST equal this exactly)
Current monthly expenses: %.0f
Current cash: %.0f
Business context: %s

Produce base, optimistic, and pessimistic cases with assumptions reflecting the business context.`,
		input.CompanyName, input.Industry, input.Country,
		input.CurrentRevenue, input.CurrentExpenses, input.CurrentCash,
		input.BusinessContext)
}
