// Package reference holds the static lookup tables the calculation layer is
// parameterized with: industry margin profiles, country tax/cost multipliers,
// industry benchmark ranges, and currency symbols. Tables are built once at
// startup and injected read-only into each component, so tests can swap in
// their own sets deterministically.
package reference

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// =============================================================================
// INDUSTRY PROFILES
// =============================================================================

// IndustryProfile captures the baseline economics assumed for an industry.
type IndustryProfile struct {
	Name              string  `yaml:"name"`
	GrossMargin       float64 `yaml:"gross_margin"`        // Decimal, e.g. 0.75
	VariableOpexRate  float64 `yaml:"variable_opex_rate"`  // OpEx that scales with revenue, % of revenue
	RevenueMultiple   float64 `yaml:"revenue_multiple"`    // EV / Revenue
	EBITDAMultiple    float64 `yaml:"ebitda_multiple"`     // EV / EBITDA
	PEMultiple        float64 `yaml:"pe_multiple"`         // Price / Earnings
	TypicalGrowth     float64 `yaml:"typical_growth"`      // Expected annual growth, decimal
	MonthlyChurn      float64 `yaml:"monthly_churn"`       // Unit economics heuristics
	AvgRevenuePerUser float64 `yaml:"avg_revenue_per_user"`
}

// BenchmarkRange is a percentile band for one metric within an industry.
type BenchmarkRange struct {
	Metric string  `yaml:"metric"`
	P25    float64 `yaml:"p25"`
	Median float64 `yaml:"median"`
	P75    float64 `yaml:"p75"`
}

// CountryProfile drives tax rates and cost scaling via a static lookup.
type CountryProfile struct {
	Name           string  `yaml:"name"`
	TaxRate        float64 `yaml:"tax_rate"`        // Corporate tax, decimal
	CostMultiplier float64 `yaml:"cost_multiplier"` // Relative operating cost scale (US = 1.0)
	Currency       string  `yaml:"currency"`
	CurrencySymbol string  `yaml:"currency_symbol"`
}

// Tables bundles every static lookup the engine needs.
type Tables struct {
	Industries map[string]IndustryProfile  `yaml:"industries"`
	Benchmarks map[string][]BenchmarkRange `yaml:"benchmarks"` // Keyed by industry
	Countries  map[string]CountryProfile   `yaml:"countries"`

	DefaultIndustry string `yaml:"default_industry"`
	DefaultCountry  string `yaml:"default_country"`
}

// Industry resolves an industry profile, falling back to the default (SaaS).
func (t *Tables) Industry(name string) IndustryProfile {
	if p, ok := t.Industries[normalize(name)]; ok {
		return p
	}
	return t.Industries[normalize(t.DefaultIndustry)]
}

// Country resolves a country profile, falling back to the default (India).
func (t *Tables) Country(name string) CountryProfile {
	if p, ok := t.Countries[normalize(name)]; ok {
		return p
	}
	return t.Countries[normalize(t.DefaultCountry)]
}

// BenchmarksFor returns the benchmark bands for an industry, falling back to
// the default industry's bands.
func (t *Tables) BenchmarksFor(industry string) []BenchmarkRange {
	if b, ok := t.Benchmarks[normalize(industry)]; ok {
		return b
	}
	return t.Benchmarks[normalize(t.DefaultIndustry)]
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// LoadOverrides merges a YAML file over the compiled-in defaults. Missing
// file is not an error; the defaults stand.
func (t *Tables) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read reference overrides: %w", err)
	}

	var override Tables
	if err := yaml.Unmarshal(data, &override); err != nil {
		return fmt.Errorf("failed to parse reference overrides: %w", err)
	}

	for k, v := range override.Industries {
		t.Industries[normalize(k)] = v
	}
	for k, v := range override.Benchmarks {
		t.Benchmarks[normalize(k)] = v
	}
	for k, v := range override.Countries {
		t.Countries[normalize(k)] = v
	}
	if override.DefaultIndustry != "" {
		t.DefaultIndustry = override.DefaultIndustry
	}
	if override.DefaultCountry != "" {
		t.DefaultCountry = override.DefaultCountry
	}
	return nil
}
