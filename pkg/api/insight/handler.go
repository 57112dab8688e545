// Package insight exposes the advisory endpoints: risk scoring and founder
// chat. Both degrade to deterministic fallbacks when the LLM is unavailable,
// so they return 200 even with no provider configured.
package insight

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"foundercast/pkg/api/scenario"
	core "foundercast/pkg/core/insight"
	"foundercast/pkg/core/projection"
	"foundercast/pkg/core/reference"
	"foundercast/pkg/models"
)

var (
	client    *core.Client
	projector *projection.Projector
)

// InitHandler wires the advisory endpoints.
func InitHandler(c *core.Client, tables *reference.Tables) {
	client = c
	projector = projection.NewProjector(tables)
}

func cors(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return false
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// HandleRisk scores the company's risk profile on the base-case projection.
func HandleRisk(w http.ResponseWriter, r *http.Request) {
	if !cors(w, r) {
		return
	}

	var input models.UserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := scenario.ValidateInput(input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	base := projector.Project(input, models.KindBase)
	scoring := client.ScoreRisk(r.Context(), input, base)
	fmt.Printf("[INSIGHT] Risk score for %s: %.0f (%s)\n", input.CompanyName, scoring.OverallScore, scoring.Source)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scoring)
}

// ChatRequest is a founder question grounded in their current scenario set.
type ChatRequest struct {
	Question  string                `json:"question"`
	Input     models.UserInput      `json:"input"`
	Scenarios []models.ScenarioData `json:"scenarios,omitempty"`
}

// ChatResponse wraps the advisory answer.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// HandleChat answers a free-form question against the scenario set.
func HandleChat(w http.ResponseWriter, r *http.Request) {
	if !cors(w, r) {
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		http.Error(w, "question is required", http.StatusBadRequest)
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

	answer := client.Chat(r.Context(), req.Question, req.Input, scenarios)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ChatResponse{Answer: answer})
}
