// Package llm wraps the chat-completion providers behind a single interface.
// Every caller treats the response schema as advisory: providers return free
// text or best-effort JSON, and the insight layer owns parsing and fallback.
package llm

import (
	"context"
)

// Provider is the interface for all LLM providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}

// Disabled is the provider used when no API credential is configured. It
// always errors, which routes every insight call to its deterministic
// fallback.
type Disabled struct{}

func (Disabled) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	return "", ErrNotConfigured
}
