package export

import (
	"fmt"
	"strings"
	"time"

	"foundercast/pkg/core/report"
)

// Insights carries the optional LLM-written sections of the PDF. Empty fields
// are simply omitted from the rendered report.
type Insights struct {
	ExecutiveSummary string
	Narrative        string
	Recommendations  string
}

// BuildMarkdown renders the report bundle as a markdown document with a fixed
// section order. The PDF renderer consumes this directly; it is also useful
// on its own for debugging report content.
//
// Core PDF fonts are cp1252, so amounts are prefixed with the ISO currency
// code rather than a symbol.
func BuildMarkdown(rep *report.Report, currency string, insights Insights) string {
	var sb strings.Builder
	cur := func(v float64) string { return fmt.Sprintf("%s %.0f", currency, v) }

	// Cover
	fmt.Fprintf(&sb, "# %s - Financial Scenario Report\n\n", rep.Input.CompanyName)
	fmt.Fprintf(&sb, "Industry: %s | Country: %s | Generated: %s\n\n",
		rep.Input.Industry, rep.Input.Country, rep.GeneratedAt.Format(time.RFC1123))

	// Executive summary
	sb.WriteString("## Executive Summary\n\n")
	if insights.ExecutiveSummary != "" {
		sb.WriteString(insights.ExecutiveSummary + "\n\n")
	}
	fmt.Fprintf(&sb, "- Current annual revenue: %s\n", cur(rep.Input.CurrentRevenue))
	fmt.Fprintf(&sb, "- Monthly expenses: %s, cash on hand: %s\n", cur(rep.Input.CurrentExpenses), cur(rep.Input.CurrentCash))
	fmt.Fprintf(&sb, "- Runway: %.1f months (%s, risk %s)\n\n", rep.Runway.Months, rep.Runway.Status, rep.Runway.RiskLevel)

	// Projections
	sb.WriteString("## Three-Year Projections\n\n")
	sb.WriteString("| Scenario | Year | Revenue | EBITDA | Net Income | Cash |\n")
	sb.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, s := range rep.Scenarios {
		for _, fy := range s.Projections {
			fmt.Fprintf(&sb, "| %s | %d | %s | %s | %s | %s |\n",
				s.Name, fy.Year, cur(fy.Revenue), cur(fy.EBITDA), cur(fy.NetIncome), cur(fy.CashBalance))
		}
	}
	sb.WriteString("\n")

	// Benchmarks
	if len(rep.Benchmarks) > 0 {
		sb.WriteString("## Industry Benchmarks\n\n")
		base := rep.Benchmarks[0]
		fmt.Fprintf(&sb, "Base case vs %s peers (overall percentile %.0f):\n\n", base.Industry, base.OverallPercentile)
		sb.WriteString("| Metric | Value | Median | Percentile | Standing |\n")
		sb.WriteString("| --- | --- | --- | --- | --- |\n")
		for _, m := range base.Metrics {
			fmt.Fprintf(&sb, "| %s | %.1f | %.1f | %.0f | %s |\n", m.Metric, m.Value, m.Median, m.Percentile, m.Standing)
		}
		sb.WriteString("\n")
	}

	// Narrative insights
	if insights.Narrative != "" {
		sb.WriteString("## Analysis\n\n")
		sb.WriteString(insights.Narrative + "\n\n")
	}

	// Per-scenario detail
	for i, s := range rep.Scenarios {
		fmt.Fprintf(&sb, "## Scenario Detail: %s\n\n", s.Name)
		if s.Description != "" {
			sb.WriteString(s.Description + "\n\n")
		}
		for _, a := range s.Assumptions {
			fmt.Fprintf(&sb, "- %s\n", a)
		}
		sb.WriteString("\n")

		if i < len(rep.Ratios) {
			r := rep.Ratios[i]
			fmt.Fprintf(&sb, "Revenue CAGR %.1f%%, Rule of 40 score %.0f.\n\n", r.RevenueCAGR, r.RuleOf40)
		}
		if i < len(rep.BreakEven) {
			be := rep.BreakEven[i]
			fmt.Fprintf(&sb, "Break-even revenue %s, estimated %.0f months to break even (probability %d%%).\n\n",
				cur(be.BreakEvenRevenue), be.MonthsToBreakEven, be.Probability)
		}
	}

	// Valuation
	sb.WriteString("## Valuation\n\n")
	sb.WriteString("| Scenario | Enterprise Value | Method | DCF | Revenue Multiple |\n")
	sb.WriteString("| --- | --- | --- | --- | --- |\n")
	for i, v := range rep.Valuations {
		name := ""
		if i < len(rep.Scenarios) {
			name = rep.Scenarios[i].Name
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
			name, cur(v.EnterpriseValue), v.Method, cur(v.DCFValue), cur(v.RevenueMultipleValue))
	}
	sb.WriteString("\n")

	// Cost breakdown / budget
	sb.WriteString("## Budget Allocation\n\n")
	sb.WriteString("| Scenario | Operations | Marketing | Development | Reserves | Adequate |\n")
	sb.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, b := range rep.Budgets {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %t |\n",
			b.Scenario, cur(b.Operations), cur(b.Marketing), cur(b.Development), cur(b.Reserves), b.Adequate)
	}
	sb.WriteString("\n")

	// Cash flow and funding
	sb.WriteString("## Cash Flow and Funding\n\n")
	for _, f := range rep.Funding {
		fmt.Fprintf(&sb, "**%s**: %s\n\n", f.Scenario, f.Summary)
		for _, r := range f.Rounds {
			fmt.Fprintf(&sb, "- Year %d: %s round of %s (%.1f%% dilution)\n", r.Year, r.Stage, cur(r.Amount), r.Dilution)
		}
		if len(f.Rounds) > 0 {
			sb.WriteString("\n")
		}
	}

	// Sensitivity
	if len(rep.Sensitivity) > 0 {
		sb.WriteString("## Sensitivity Analysis\n\n")
		sb.WriteString("| Parameter | Change | EBITDA Impact |\n")
		sb.WriteString("| --- | --- | --- |\n")
		for _, t := range rep.Sensitivity {
			for _, v := range t.Variations {
				fmt.Fprintf(&sb, "| %s | %+.0f%% | %+.1f%% |\n", t.Parameter, v.ChangePercent, v.EBITDAImpact)
			}
		}
		sb.WriteString("\n")
	}

	// AI feature impact
	if len(rep.AIFeature) > 0 {
		sb.WriteString("## AI Feature Impact\n\n")
		in := rep.AIFeature[0].Input
		fmt.Fprintf(&sb, "Assumes %s annual cost, %.0f%% adoption at full ramp, %.0f%% revenue uplift on adopted accounts.\n\n",
			cur(in.AnnualCost), in.AdoptionRate*100, in.RevenueUplift*100)
		sb.WriteString("| Scenario | Total ROI | Verdict |\n")
		sb.WriteString("| --- | --- | --- |\n")
		for _, ai := range rep.AIFeature {
			fmt.Fprintf(&sb, "| %s | %.1f%% | %s |\n", ai.Scenario, ai.TotalROI, ai.Verdict)
		}
		sb.WriteString("\n")
	}

	// Recommendations
	if insights.Recommendations != "" {
		sb.WriteString("## Recommendations\n\n")
		sb.WriteString(insights.Recommendations + "\n\n")
	}

	// Methodology
	sb.WriteString("## Methodology\n\n")
	sb.WriteString("Projections compound year-1 actuals under scenario-specific growth, margin, and cost-drift drivers. ")
	sb.WriteString("Valuations combine a discounted cash flow proxy with industry multiples; early-stage companies report a haircut revenue multiple as the primary figure. ")
	sb.WriteString("Benchmarks, churn, and multiple tables are static industry references, not live market data. ")
	sb.WriteString("All figures are planning estimates, not accounting statements.\n")

	return sb.String()
}
