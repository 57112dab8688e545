// Package report assembles the full metrics bundle for a scenario set: every
// downstream calculator run once, collected into a single struct that the API
// and the exporters share.
package report

import (
	"time"

	"foundercast/pkg/core/benchmark"
	"foundercast/pkg/core/breakeven"
	"foundercast/pkg/core/budget"
	"foundercast/pkg/core/calc"
	"foundercast/pkg/core/reference"
	"foundercast/pkg/core/runway"
	"foundercast/pkg/core/saasmetrics"
	"foundercast/pkg/core/sensitivity"
	"foundercast/pkg/core/validate"
	"foundercast/pkg/core/valuation"
	"foundercast/pkg/models"
)

// Report is the complete derived-metrics bundle. Slices are parallel to
// Scenarios (same order, one entry per scenario) except Sensitivity, which is
// computed on the base case only.
type Report struct {
	Input     models.UserInput      `json:"input"`
	Scenarios []models.ScenarioData `json:"scenarios"`

	Ratios      []calc.RatioAnalysis          `json:"ratios"`
	Runway      runway.Result                 `json:"runway"`
	BreakEven   []breakeven.Analysis          `json:"break_even"`
	Valuations  []valuation.Metrics           `json:"valuations"`
	Sensitivity []sensitivity.ParameterTest   `json:"sensitivity"`
	Budgets     []budget.Breakdown            `json:"budgets"`
	Funding     []budget.Requirements         `json:"funding"`
	Benchmarks  []benchmark.Comparison        `json:"benchmarks"`
	SaaS        []saasmetrics.Metrics         `json:"saas_metrics"`
	AIFeature   []saasmetrics.AIFeatureImpact `json:"ai_feature"`
	Validation  []validate.Result             `json:"validation"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Build runs every calculator over the scenario set. Pure given its inputs;
// the timestamp is the only nondeterminism.
func Build(input models.UserInput, scenarios []models.ScenarioData, tables *reference.Tables, valCfg valuation.Config) *Report {
	rep := &Report{
		Input:       input,
		Scenarios:   scenarios,
		Runway:      runway.Calculate(input.CurrentCash, input.CurrentExpenses, input.MonthlyRevenue()),
		GeneratedAt: time.Now().UTC(),
	}

	industry := tables.Industry(input.Industry)
	validator := validate.NewValidator(tables)

	for _, s := range scenarios {
		rep.Ratios = append(rep.Ratios, calc.AnalyzeRatios(s))
		rep.BreakEven = append(rep.BreakEven, breakeven.Analyze(s, breakeven.Options{CurrentCash: input.CurrentCash}))

		val := valuation.Valuate(s, industry, valCfg)
		rep.Valuations = append(rep.Valuations, val)

		rep.Budgets = append(rep.Budgets, budget.Allocate(s, input.CurrentCash))
		rep.Funding = append(rep.Funding, budget.PlanFunding(s, input.CurrentCash, val.EnterpriseValue))
		rep.Benchmarks = append(rep.Benchmarks, benchmark.Compare(s, input.Industry, tables))
		rep.SaaS = append(rep.SaaS, saasmetrics.Calculate(s, industry))
		rep.AIFeature = append(rep.AIFeature, saasmetrics.ModelAIFeature(s, saasmetrics.DefaultAIFeatureInput()))

		if s.Kind == models.KindBase {
			rep.Sensitivity = sensitivity.Analyze(s)
		}
	}

	rep.Validation = validator.CheckAll(scenarios, input.Industry)
	return rep
}

// BaseScenario returns the base-case scenario, or the first one when no base
// tag is present.
func (r *Report) BaseScenario() models.ScenarioData {
	for _, s := range r.Scenarios {
		if s.Kind == models.KindBase {
			return s
		}
	}
	if len(r.Scenarios) > 0 {
		return r.Scenarios[0]
	}
	return models.ScenarioData{}
}
