// Package metrics exposes the full derived-metrics report for a scenario set.
package metrics

import (
	"encoding/json"
	"fmt"
	"net/http"

	"foundercast/pkg/api/scenario"
	"foundercast/pkg/core/projection"
	"foundercast/pkg/core/reference"
	"foundercast/pkg/core/report"
	"foundercast/pkg/core/saasmetrics"
	"foundercast/pkg/core/valuation"
	"foundercast/pkg/models"
)

var (
	tables    *reference.Tables
	projector *projection.Projector
	valConfig valuation.Config
)

// InitHandler wires the report endpoint to the shared reference tables and
// valuation assumptions.
func InitHandler(t *reference.Tables, cfg valuation.Config) {
	tables = t
	projector = projection.NewProjector(t)
	valConfig = cfg
}

// ReportRequest optionally carries client-side scenarios (for example an
// edited or AI-generated set). When absent, the deterministic projection is
// used.
type ReportRequest struct {
	Input     models.UserInput      `json:"input"`
	Scenarios []models.ScenarioData `json:"scenarios,omitempty"`
}

// HandleReport computes the complete metrics bundle: ratios, runway,
// break-even, valuation, sensitivity, budget, funding, benchmarks, SaaS
// metrics, and validation.
func HandleReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := scenario.ValidateInput(req.Input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	scenarios := req.Scenarios
	if len(scenarios) == 0 {
		scenarios = projector.ProjectAll(req.Input)
	}

	fmt.Printf("[METRICS] Building report for %s (%d scenarios)\n", req.Input.CompanyName, len(scenarios))
	rep := report.Build(req.Input, scenarios, tables, valConfig)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

// SimulateRequest carries one founder decision to test against a scenario set.
// As with ReportRequest, omitted scenarios mean the deterministic projection.
type SimulateRequest struct {
	Input     models.UserInput      `json:"input"`
	Scenarios []models.ScenarioData `json:"scenarios,omitempty"`
	WhatIf    saasmetrics.WhatIf    `json:"what_if"`
}

// SimulateResponse holds one simulation result per scenario, in scenario order.
type SimulateResponse struct {
	Input   models.UserInput               `json:"input"`
	Results []saasmetrics.SimulationResult `json:"results"`
}

// HandleSimulate applies a what-if decision (hire, marketing push, price
// raise, cost cut) to each scenario's first year and reports the EBITDA and
// runway deltas.
func HandleSimulate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := scenario.ValidateInput(req.Input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	switch req.WhatIf.Decision {
	case saasmetrics.DecisionHire, saasmetrics.DecisionIncreaseMarketing,
		saasmetrics.DecisionRaisePrices, saasmetrics.DecisionCutCosts:
	default:
		http.Error(w, fmt.Sprintf("unknown decision %q", req.WhatIf.Decision), http.StatusBadRequest)
		return
	}
	if req.WhatIf.Magnitude <= 0 {
		http.Error(w, "magnitude must be positive", http.StatusBadRequest)
		return
	}

	scenarios := req.Scenarios
	if len(scenarios) == 0 {
		scenarios = projector.ProjectAll(req.Input)
	}

	fmt.Printf("[METRICS] Simulating %s (magnitude %.2f) for %s\n",
		req.WhatIf.Decision, req.WhatIf.Magnitude, req.Input.CompanyName)

	resp := SimulateResponse{Input: req.Input}
	for _, s := range scenarios {
		resp.Results = append(resp.Results, saasmetrics.Simulate(s, req.Input.CurrentCash, req.WhatIf))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
