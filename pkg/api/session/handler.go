// Package session exposes save/load of modeling sessions. The endpoints
// return 503 when persistence is not configured rather than failing at
// startup - the rest of the API works without a database.
package session

import (
	"encoding/json"
	"fmt"
	"net/http"

	"foundercast/pkg/api/scenario"
	"foundercast/pkg/core/store"
	"foundercast/pkg/models"
)

var repo *store.SessionRepo

// InitHandler wires the session endpoints to the repository. A nil repo
// disables persistence.
func InitHandler(r *store.SessionRepo) {
	repo = r
}

// SaveRequest is a session to persist. ID is optional; omitted means a new
// session.
type SaveRequest struct {
	ID        string                `json:"id,omitempty"`
	Input     models.UserInput      `json:"input"`
	Scenarios []models.ScenarioData `json:"scenarios"`
}

// SaveResponse returns the assigned session ID.
type SaveResponse struct {
	ID string `json:"id"`
}

// HandleSave upserts a session.
func HandleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if repo == nil {
		http.Error(w, "session persistence not configured", http.StatusServiceUnavailable)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := scenario.ValidateInput(req.Input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Scenarios) == 0 {
		http.Error(w, "scenarios are required", http.StatusBadRequest)
		return
	}

	id, err := repo.Save(r.Context(), store.Session{
		ID:        req.ID,
		Input:     req.Input,
		Scenarios: req.Scenarios,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	fmt.Printf("[SESSION] Saved %s for %s\n", id, req.Input.CompanyName)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SaveResponse{ID: id})
}

// HandleLoad fetches a session by the id query parameter.
func HandleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if repo == nil {
		http.Error(w, "session persistence not configured", http.StatusServiceUnavailable)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id query parameter is required", http.StatusBadRequest)
		return
	}

	session, err := repo.Load(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}
