package export

import (
	"encoding/json"
	"fmt"
	"time"

	"foundercast/pkg/models"
)

// EnvelopeVersion tags the save format for forward compatibility.
const EnvelopeVersion = 1

// Envelope is the JSON save format: the raw inputs and the scenario set,
// round-trippable without loss. Derived metrics are intentionally excluded -
// they are recomputed on load.
type Envelope struct {
	Version    int                   `json:"version"`
	ExportedAt time.Time             `json:"exported_at"`
	Input      models.UserInput      `json:"input"`
	Scenarios  []models.ScenarioData `json:"scenarios"`
}

// WriteJSON serializes the envelope, indented for human inspection.
func WriteJSON(input models.UserInput, scenarios []models.ScenarioData) ([]byte, error) {
	env := Envelope{
		Version:    EnvelopeVersion,
		ExportedAt: time.Now().UTC(),
		Input:      input,
		Scenarios:  scenarios,
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export envelope: %w", err)
	}
	return data, nil
}

// ParseJSON decodes a previously exported envelope, rejecting versions newer
// than this build understands.
func ParseJSON(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("parse export envelope: %w", err)
	}
	if env.Version > EnvelopeVersion {
		return Envelope{}, fmt.Errorf("unsupported export version %d (max %d)", env.Version, EnvelopeVersion)
	}
	return env, nil
}
