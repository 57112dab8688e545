package insight

import (
	"context"
	"fmt"
	"strings"

	"foundercast/pkg/core/agent"
	"foundercast/pkg/core/calc"
	"foundercast/pkg/models"
)

// Client is the advisory-layer entry point. It owns no state beyond the
// agent manager; every method is a one-shot call with a local fallback.
type Client struct {
	agents *agent.Manager
}

// NewClient binds the insight layer to an agent manager.
func NewClient(agents *agent.Manager) *Client {
	return &Client{agents: agents}
}

const narrativeSystemPrompt = "You are a startup finance advisor. Write concise, plain-language commentary " +
	"for a founder dashboard. Use short paragraphs and markdown bullet points. No preamble."

// RatioNarrative produces commentary for a ratio analysis. Falls back to a
// deterministic summary built from the same numbers.
func (c *Client) RatioNarrative(ctx context.Context, analysis calc.RatioAnalysis) string {
	prompt := fmt.Sprintf(`Comment on these projected financial ratios for the "%s" scenario.

Revenue CAGR: %.1f%%
Rule of 40: %.1f
Final-year gross margin: %.1f%%, EBITDA margin: %.1f%%, OpEx ratio: %.1f%%

Cover profitability trajectory, efficiency, and what the founder should watch. 3-5 bullet points.`,
		analysis.Scenario, analysis.RevenueCAGR, analysis.RuleOf40,
		finalYear(analysis).GrossMargin, finalYear(analysis).EBITDAMargin, finalYear(analysis).OpexRatio)

	text, err := c.agents.ExecutePrompt(ctx, "narrative", prompt, narrativeSystemPrompt, nil)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			fmt.Printf("[INSIGHT] Narrative LLM call failed, using fallback: %v\n", err)
		}
		return fallbackNarrative(analysis)
	}
	return text
}

// Chat answers a free-form founder question grounded in the current scenario
// set. There is no fallback conversation - on failure the caller gets a
// static notice instead of an error page.
func (c *Client) Chat(ctx context.Context, question string, input models.UserInput, scenarios []models.ScenarioData) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "COMPANY: %s (%s, %s). Revenue %.0f/yr, expenses %.0f/mo, cash %.0f.\n",
		input.CompanyName, input.Industry, input.Country,
		input.CurrentRevenue, input.CurrentExpenses, input.CurrentCash)
	for _, s := range scenarios {
		final := s.FinalYear()
		fmt.Fprintf(&sb, "%s: year-%d revenue %.0f, EBITDA %.0f, cash %.0f.\n",
			s.Name, final.Year, final.Revenue, final.EBITDA, final.CashBalance)
	}
	fmt.Fprintf(&sb, "\nQUESTION: %s", question)

	text, err := c.agents.ExecutePrompt(ctx, "chat", sb.String(), narrativeSystemPrompt, nil)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			fmt.Printf("[INSIGHT] Chat LLM call failed: %v\n", err)
		}
		return "The advisory assistant is unavailable right now. Your projections and metrics above are computed locally and remain accurate."
	}
	return text
}

func finalYear(analysis calc.RatioAnalysis) calc.YearRatios {
	if len(analysis.Years) == 0 {
		return calc.YearRatios{}
	}
	return analysis.Years[len(analysis.Years)-1]
}

func fallbackNarrative(analysis calc.RatioAnalysis) string {
	last := finalYear(analysis)
	var sb strings.Builder
	fmt.Fprintf(&sb, "- Revenue compounds at %.1f%% annually across the projection.\n", analysis.RevenueCAGR)
	if last.EBITDAMargin >= 0 {
		fmt.Fprintf(&sb, "- The plan reaches a %.1f%% EBITDA margin by year %d.\n", last.EBITDAMargin, last.Year)
	} else {
		fmt.Fprintf(&sb, "- The plan remains EBITDA-negative (%.1f%%) through year %d; watch burn closely.\n", last.EBITDAMargin, last.Year)
	}
	fmt.Fprintf(&sb, "- Gross margin settles at %.1f%% with OpEx at %.1f%% of revenue.\n", last.GrossMargin, last.OpexRatio)
	if analysis.RuleOf40 >= 40 {
		fmt.Fprintf(&sb, "- Rule of 40 score of %.0f clears the healthy-growth bar.\n", analysis.RuleOf40)
	} else {
		fmt.Fprintf(&sb, "- Rule of 40 score of %.0f is below the 40-point bar; growth or margin needs to improve.\n", analysis.RuleOf40)
	}
	return sb.String()
}
