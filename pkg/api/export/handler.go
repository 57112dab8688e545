// Package export exposes the download endpoints: CSV, the JSON save
// envelope, and the PDF report.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"foundercast/pkg/api/scenario"
	coreexport "foundercast/pkg/core/export"
	"foundercast/pkg/core/insight"
	"foundercast/pkg/core/projection"
	"foundercast/pkg/core/reference"
	"foundercast/pkg/core/report"
	"foundercast/pkg/core/valuation"
	"foundercast/pkg/models"
)

var (
	tables        *reference.Tables
	projector     *projection.Projector
	valConfig     valuation.Config
	insightClient *insight.Client
)

// InitHandler wires the export endpoints.
func InitHandler(t *reference.Tables, cfg valuation.Config, client *insight.Client) {
	tables = t
	projector = projection.NewProjector(t)
	valConfig = cfg
	insightClient = client
}

// ExportRequest mirrors the metrics request: inputs plus an optional
// client-side scenario set.
type ExportRequest struct {
	Input     models.UserInput      `json:"input"`
	Scenarios []models.ScenarioData `json:"scenarios,omitempty"`
}

func decode(w http.ResponseWriter, r *http.Request) (ExportRequest, bool) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return ExportRequest{}, false
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return ExportRequest{}, false
	}

	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return ExportRequest{}, false
	}
	if err := scenario.ValidateInput(req.Input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return ExportRequest{}, false
	}
	if len(req.Scenarios) == 0 {
		req.Scenarios = projector.ProjectAll(req.Input)
	}
	return req, true
}

// HandleCSV streams the scenario table as a CSV download.
func HandleCSV(w http.ResponseWriter, r *http.Request) {
	req, ok := decode(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="scenarios.csv"`)
	if err := coreexport.WriteCSV(w, req.Scenarios); err != nil {
		fmt.Printf("[EXPORT] CSV write failed: %v\n", err)
	}
}

// HandleJSON returns the lossless save envelope.
func HandleJSON(w http.ResponseWriter, r *http.Request) {
	req, ok := decode(w, r)
	if !ok {
		return
	}

	data, err := coreexport.WriteJSON(req.Input, req.Scenarios)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="scenarios.json"`)
	w.Write(data)
}

// HandlePDF builds the full report bundle and renders the PDF. Narrative
// sections come from the LLM when available and are omitted otherwise.
func HandlePDF(w http.ResponseWriter, r *http.Request) {
	req, ok := decode(w, r)
	if !ok {
		return
	}

	fmt.Printf("[EXPORT] Rendering PDF report for %s\n", req.Input.CompanyName)
	rep := report.Build(req.Input, req.Scenarios, tables, valConfig)

	insights := buildInsights(r.Context(), rep)
	currency := tables.Country(req.Input.Country).Currency

	pdfBytes, err := coreexport.WritePDF(rep, currency, insights)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="financial_report.pdf"`)
	w.Write(pdfBytes)
}

// buildInsights asks the LLM for the narrative section. A single call keeps
// the PDF path to one model round trip; the remaining sections stay
// deterministic.
func buildInsights(ctx context.Context, rep *report.Report) coreexport.Insights {
	base := rep.BaseScenario()
	insights := coreexport.Insights{}
	for i, s := range rep.Scenarios {
		if s.Kind == base.Kind && i < len(rep.Ratios) {
			insights.Narrative = insightClient.RatioNarrative(ctx, rep.Ratios[i])
			break
		}
	}
	return insights
}
