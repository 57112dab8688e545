// Package models defines the shared domain records for the FounderCast
// scenario engine. Everything here is a plain value type: created once by the
// projection layer (or the LLM generation path) and read-only afterwards.
package models

// =============================================================================
// SCENARIO KIND
// =============================================================================

// ScenarioKind tags a scenario with its policy at creation time.
// Downstream components branch on this tag, never on the display name.
type ScenarioKind string

const (
	KindBase        ScenarioKind = "BASE"
	KindOptimistic  ScenarioKind = "OPTIMISTIC"
	KindPessimistic ScenarioKind = "PESSIMISTIC"
)

// DisplayName returns the human-facing scenario title, e.g. "Optimistic Case".
func (k ScenarioKind) DisplayName() string {
	switch k {
	case KindOptimistic:
		return "Optimistic Case"
	case KindPessimistic:
		return "Pessimistic Case"
	default:
		return "Base Case"
	}
}

// AllKinds lists the three policies in presentation order.
func AllKinds() []ScenarioKind {
	return []ScenarioKind{KindBase, KindOptimistic, KindPessimistic}
}

// =============================================================================
// PROJECTION RECORDS
// =============================================================================

// FinancialYear is one projected year. Invariants (checked by validate, not
// silently corrected): GrossProfit == Revenue - COGS and
// EBITDA == GrossProfit - OpEx, within a 1-unit rounding tolerance.
// CashBalance is clamped to >= 0 at the point of computation and carried
// forward as given by downstream consumers.
type FinancialYear struct {
	Year        int     `json:"year"`
	Revenue     float64 `json:"revenue"`
	COGS        float64 `json:"cogs"`
	GrossProfit float64 `json:"gross_profit"`
	OpEx        float64 `json:"opex"`
	EBITDA      float64 `json:"ebitda"`
	NetIncome   float64 `json:"net_income"`
	CashBalance float64 `json:"cash_balance"`
}

// ScenarioData is a complete named projection: exactly three years with the
// Year field strictly increasing from 1. Immutable after creation.
type ScenarioData struct {
	Name        string          `json:"name"`
	Kind        ScenarioKind    `json:"kind"`
	Description string          `json:"description"`
	Assumptions []string        `json:"assumptions"`
	Projections []FinancialYear `json:"projections"`
}

// FirstYear returns the first projected year, or a zero record if empty.
func (s *ScenarioData) FirstYear() FinancialYear {
	if len(s.Projections) == 0 {
		return FinancialYear{}
	}
	return s.Projections[0]
}

// FinalYear returns the last projected year, or a zero record if empty.
func (s *ScenarioData) FinalYear() FinancialYear {
	if len(s.Projections) == 0 {
		return FinancialYear{}
	}
	return s.Projections[len(s.Projections)-1]
}

// =============================================================================
// USER INPUT
// =============================================================================

// UserInput is the founder's raw form data. Supplied once by the caller,
// read-only thereafter. BusinessContext is free text passed only to LLM
// prompts, never to the arithmetic layer.
type UserInput struct {
	CompanyName     string  `json:"company_name"`
	Industry        string  `json:"industry"` // SaaS|E-commerce|FinTech|HealthTech|Manufacturing
	Country         string  `json:"country"`
	CurrentRevenue  float64 `json:"current_revenue"`  // Annual, must be > 0
	CurrentExpenses float64 `json:"current_expenses"` // Monthly, must be > 0
	CurrentCash     float64 `json:"current_cash"`     // Must be >= 0
	ObservedGrowth  float64 `json:"observed_growth"`  // Optional trend (decimal, e.g. 0.18); 0 = unknown
	BusinessContext string  `json:"business_context"`
}

// MonthlyRevenue returns the monthly revenue run rate.
func (u *UserInput) MonthlyRevenue() float64 {
	return u.CurrentRevenue / 12.0
}
