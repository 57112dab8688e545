// Package insight is the LLM-backed advisory layer: risk scoring, ratio
// narratives, founder chat, and AI scenario generation. Every call here is
// best-effort - external failures are recovered with deterministic fallbacks
// built from the same user inputs, never surfaced as hard errors.
package insight

import (
	"context"
	"fmt"
	"strings"

	"foundercast/pkg/core/calc"
	"foundercast/pkg/core/runway"
	"foundercast/pkg/core/utils"
	"foundercast/pkg/models"
)

// RiskScoring is the advisory risk snapshot. Scores are 0-100, higher = riskier.
type RiskScoring struct {
	OverallScore  float64 `json:"overall_score"`
	FinancialRisk float64 `json:"financial_risk"`
	MarketRisk    float64 `json:"market_risk"`
	ExecutionRisk float64 `json:"execution_risk"`
	Summary       string  `json:"summary"`
	Source        string  `json:"source"` // "llm" or "heuristic"
}

const riskSystemPrompt = "You are a startup financial risk analyst. Respond with strict JSON only: " +
	`{"overall_score": number 0-100, "financial_risk": number, "market_risk": number, "execution_risk": number, "summary": string}. ` +
	"Higher scores mean higher risk."

// ScoreRisk asks the LLM for a risk assessment and decodes it with the
// parse-or-default strategy. Any failure - transport, rate limit after
// retries, malformed JSON - yields the heuristic score computed from the
// same inputs.
func (c *Client) ScoreRisk(ctx context.Context, input models.UserInput, scenario models.ScenarioData) RiskScoring {
	fallback := heuristicRisk(input, scenario)

	prompt := buildRiskPrompt(input, scenario)
	raw, err := c.agents.ExecutePrompt(ctx, "risk", prompt, riskSystemPrompt, jsonOptions())
	if err != nil {
		fmt.Printf("[INSIGHT] Risk scoring LLM call failed, using heuristic: %v\n", err)
		return fallback
	}

	var parsed RiskScoring
	if err := utils.SmartParse(raw, &parsed); err != nil {
		fmt.Printf("[INSIGHT] Risk scoring response unparseable, using heuristic: %v\n", err)
		return fallback
	}

	// Field-level defaulting: the schema is advisory, so backfill anything
	// the model omitted or mangled from the heuristic.
	if parsed.OverallScore <= 0 || parsed.OverallScore > 100 {
		parsed.OverallScore = fallback.OverallScore
	}
	if parsed.FinancialRisk <= 0 || parsed.FinancialRisk > 100 {
		parsed.FinancialRisk = fallback.FinancialRisk
	}
	if parsed.MarketRisk <= 0 || parsed.MarketRisk > 100 {
		parsed.MarketRisk = fallback.MarketRisk
	}
	if parsed.ExecutionRisk <= 0 || parsed.ExecutionRisk > 100 {
		parsed.ExecutionRisk = fallback.ExecutionRisk
	}
	if strings.TrimSpace(parsed.Summary) == "" {
		parsed.Summary = fallback.Summary
	}
	parsed.Source = "llm"
	return parsed
}

func buildRiskPrompt(input models.UserInput, scenario models.ScenarioData) string {
	year1 := scenario.FirstYear()
	final := scenario.FinalYear()
	return fmt.Sprintf(`Assess the risk profile of this early-stage company.

COMPANY: %s (%s, %s)
Annual revenue: %.0f
Monthly expenses: %.0f
Cash on hand: %.0f
Projection (%s): year-1 EBITDA %.0f, year-%d revenue %.0f, year-%d cash %.0f
Context: %s`,
		input.CompanyName, input.Industry, input.Country,
		input.CurrentRevenue, input.CurrentExpenses, input.CurrentCash,
		scenario.Name, year1.EBITDA, final.Year, final.Revenue, final.Year, final.CashBalance,
		input.BusinessContext)
}

// heuristicRisk is the deterministic fallback: risk buckets derived from
// runway, margin, and trajectory - the same signals a reviewer would check
// first.
func heuristicRisk(input models.UserInput, scenario models.ScenarioData) RiskScoring {
	year1 := scenario.FirstYear()

	rw := runway.Calculate(input.CurrentCash, input.CurrentExpenses, input.MonthlyRevenue())

	// Financial risk from runway months (18+ months -> low).
	financial := calc.Clamp(100-rw.Months*5, 10, 95)

	// Market risk from EBITDA margin: deeply unprofitable = exposed.
	ebitdaMargin := calc.SafeDiv(year1.EBITDA, year1.Revenue) * 100
	market := calc.Clamp(50-ebitdaMargin, 10, 95)

	// Execution risk from the growth the plan depends on.
	execution := 40.0
	if len(scenario.Projections) >= 2 {
		growth := calc.GrowthRate(scenario.Projections[1].Revenue, year1.Revenue)
		execution = calc.Clamp(20+growth*0.8, 15, 90)
	}

	overall := calc.Round1(financial*0.4 + market*0.3 + execution*0.3)

	return RiskScoring{
		OverallScore:  overall,
		FinancialRisk: calc.Round1(financial),
		MarketRisk:    calc.Round1(market),
		ExecutionRisk: calc.Round1(execution),
		Summary: fmt.Sprintf("Heuristic assessment: %.1f months of runway (%s), %.1f%% EBITDA margin. Overall risk %.0f/100.",
			rw.Months, rw.RiskLevel, ebitdaMargin, overall),
		Source: "heuristic",
	}
}

func jsonOptions() map[string]interface{} {
	return map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	}
}
