// Package agent selects an LLM provider per agent role from the YAML model
// config, so risk scoring, chat, and scenario generation can be pointed at
// different models without code changes.
package agent

import (
	"context"

	"foundercast/pkg/core/llm"
)

// Config is the decoded config/models.yaml.
type Config struct {
	ActiveProvider string                 `yaml:"active_provider"`
	Agents         map[string]AgentConfig `yaml:"agents"`
}

// AgentConfig is the per-role override block.
type AgentConfig struct {
	Provider    string `yaml:"provider"` // Optional override
	Model       string `yaml:"model"`    // Optional model override
	Description string `yaml:"description"`
}

// Manager resolves providers for agent roles.
type Manager struct {
	config    Config
	providers map[string]llm.Provider
}

// NewManager builds the provider table from config.
func NewManager(config Config) *Manager {
	return &Manager{
		config: config,
		providers: map[string]llm.Provider{
			"gemini":   &llm.GeminiProvider{},
			"disabled": llm.Disabled{},
		},
	}
}

// GetProvider resolves the provider for an agent role: role override first,
// then the global active provider, then disabled (which errors and routes
// callers to their deterministic fallbacks).
func (m *Manager) GetProvider(agentType string) llm.Provider {
	if agentConfig, ok := m.config.Agents[agentType]; ok && agentConfig.Provider != "" {
		if p, ok := m.providers[agentConfig.Provider]; ok {
			return p
		}
	}
	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p
	}
	return m.providers["disabled"]
}

// ExecutePrompt resolves the role's provider and runs the prompt, threading
// any per-role model override into the options.
func (m *Manager) ExecutePrompt(ctx context.Context, agentType string, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	provider := m.GetProvider(agentType)

	if agentConfig, ok := m.config.Agents[agentType]; ok && agentConfig.Model != "" {
		if options == nil {
			options = map[string]interface{}{}
		}
		if _, set := options["model"]; !set {
			options["model"] = agentConfig.Model
		}
	}

	return provider.GenerateResponse(ctx, prompt, systemPrompt, options)
}

// GetActiveProvider reports the configured global provider name.
func (m *Manager) GetActiveProvider() string {
	return m.config.ActiveProvider
}
