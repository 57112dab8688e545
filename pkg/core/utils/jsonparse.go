// Package utils holds the defensive JSON handling for LLM output. The model
// contract is advisory only: responses arrive wrapped in markdown fences,
// with HTML entities, single quotes, trailing commas, or truncated arrays.
// Callers parse with SmartParse and substitute explicit fallbacks on failure.
package utils

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// StripCodeFences removes markdown code fences and HTML-entity artifacts
// from an LLM response, leaving the raw payload.
func StripCodeFences(raw string) string {
	s := strings.TrimSpace(html.UnescapeString(raw))

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// RepairJSON attempts to fix common JSON errors from LLM outputs: missing
// key quotes, single quotes, unclosed arrays/objects, trailing commas,
// comments, and stray markdown.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// SmartParse tries multiple parsing strategies to decode LLM output into
// schema. Order of attempts:
//  1. Standard JSON parse (after fence stripping)
//  2. JSON repair
//  3. Hjson (most lenient)
//
// On success the decoded schema is populated; on failure the caller must
// fall back to its own defaults.
func SmartParse(input string, schema interface{}) error {
	cleaned := StripCodeFences(input)

	if err := json.Unmarshal([]byte(cleaned), schema); err == nil {
		return nil
	}

	if repaired, err := RepairJSON(cleaned); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return nil
		}
	}

	var loose interface{}
	if err := hjson.Unmarshal([]byte(cleaned), &loose); err == nil {
		if data, err := json.Marshal(loose); err == nil {
			if err := json.Unmarshal(data, schema); err == nil {
				return nil
			}
		}
	}

	return fmt.Errorf("all parsing strategies failed for LLM output")
}
