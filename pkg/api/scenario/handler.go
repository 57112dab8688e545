// Package scenario exposes the projection endpoints: the deterministic
// three-case projection and the LLM-assisted generation variant.
package scenario

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"foundercast/pkg/core/insight"
	"foundercast/pkg/core/projection"
	"foundercast/pkg/core/reference"
	"foundercast/pkg/core/validate"
	"foundercast/pkg/models"
)

var (
	projector     *projection.Projector
	validator     *validate.Validator
	insightClient *insight.Client
)

// InitHandler wires the handlers to the shared reference tables and insight
// client.
func InitHandler(tables *reference.Tables, client *insight.Client) {
	projector = projection.NewProjector(tables)
	validator = validate.NewValidator(tables)
	insightClient = client
}

// ProjectionResponse is the payload for both projection endpoints. Validation
// is advisory data quality, never a rejection.
type ProjectionResponse struct {
	Input      models.UserInput      `json:"input"`
	Scenarios  []models.ScenarioData `json:"scenarios"`
	Validation []validate.Result     `json:"validation"`
}

// ValidateInput rejects inputs the calculation layer cannot model. Shared by
// every endpoint that accepts a UserInput body.
func ValidateInput(input models.UserInput) error {
	if strings.TrimSpace(input.CompanyName) == "" {
		return fmt.Errorf("company_name is required")
	}
	if input.CurrentRevenue <= 0 {
		return fmt.Errorf("current_revenue must be positive")
	}
	if input.CurrentExpenses <= 0 {
		return fmt.Errorf("current_expenses must be positive")
	}
	if input.CurrentCash < 0 {
		return fmt.Errorf("current_cash cannot be negative")
	}
	return nil
}

// DecodeInput applies CORS, decodes and validates the request body, and
// reports whether the caller should proceed.
func DecodeInput(w http.ResponseWriter, r *http.Request, input *models.UserInput) bool {
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

	if err := json.NewDecoder(r.Body).Decode(input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	if err := ValidateInput(*input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// HandleProject runs the deterministic projector over the founder's inputs.
func HandleProject(w http.ResponseWriter, r *http.Request) {
	var input models.UserInput
	if !DecodeInput(w, r, &input) {
		return
	}

	fmt.Printf("[SCENARIO] Projecting %s (%s/%s) revenue=%.0f\n",
		input.CompanyName, input.Industry, input.Country, input.CurrentRevenue)

	scenarios := projector.ProjectAll(input)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ProjectionResponse{
		Input:      input,
		Scenarios:  scenarios,
		Validation: validator.CheckAll(scenarios, input.Industry),
	})
}

// HandleGenerate runs the LLM-assisted generation path. The response shape is
// identical to HandleProject; on any LLM failure the deterministic set is
// returned, so this endpoint never errors on model trouble.
func HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var input models.UserInput
	if !DecodeInput(w, r, &input) {
		return
	}

	fmt.Printf("[SCENARIO] Generating AI scenarios for %s\n", input.CompanyName)

	scenarios := insightClient.GenerateScenarios(r.Context(), input, projector)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ProjectionResponse{
		Input:      input,
		Scenarios:  scenarios,
		Validation: validator.CheckAll(scenarios, input.Industry),
	})
}
