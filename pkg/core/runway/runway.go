// Package runway converts cash and burn into a bounded runway-months figure
// with a qualitative status tier. This is the most reused risk primitive:
// break-even, budget, and funding analysis all trace their risk levels back
// to a runway bucket.
package runway

import "math"

// Result holds the runway figure and its qualitative tiers.
type Result struct {
	Months    float64 `json:"months"`
	Status    string  `json:"status"`     // Exhausted | Critical | Caution | Healthy
	RiskLevel string  `json:"risk_level"` // Critical | High | Medium | Low
}

// Calculate derives runway months from cash and monthly burn, net of monthly
// revenue. Net burn is floored at 1 unit so the division is always defined.
// Months are rounded to one decimal and never negative.
func Calculate(cash, monthlyBurn, monthlyRevenue float64) Result {
	netBurn := monthlyBurn - monthlyRevenue
	if netBurn < 1 {
		netBurn = 1
	}

	months := cash / netBurn
	if months < 0 {
		months = 0
	}
	months = math.Round(months*10) / 10

	status, risk := classify(months)
	return Result{Months: months, Status: status, RiskLevel: risk}
}

// classify maps runway months onto status/risk tiers. Thresholds are
// exclusive of the prior tier.
func classify(months float64) (string, string) {
	switch {
	case months == 0:
		return "Exhausted", "Critical"
	case months < 3:
		return "Critical", "Critical"
	case months < 6:
		return "Critical", "High"
	case months < 12:
		return "Caution", "Medium"
	case months < 18:
		return "Caution", "Medium"
	default:
		return "Healthy", "Low"
	}
}
