// Package projection turns a founder's base-year inputs into three-year
// scenario projections. Core philosophy: "Fixed identities, policy drivers" -
// the accounting identities (GrossProfit = Revenue - COGS,
// EBITDA = GrossProfit - OpEx) are fixed by Go code; the growth, margin
// drift, and OpEx scaling drivers vary per scenario policy.
package projection

import (
	"foundercast/pkg/models"
)

// Policy defines the drivers for one scenario kind.
type Policy struct {
	Kind        models.ScenarioKind
	Description string

	// GrowthMultiplier is applied to revenue each year after year 1.
	// 0 means "use the founder's observed trend, or the flat default".
	GrowthMultiplier float64

	// MarginDriftPerYear shifts gross margin each year after year 1
	// (economies of pricing power, or compression under stress).
	MarginDriftPerYear float64
	MarginCap          float64
	MarginFloor        float64

	// VariableOpexDriftPerYear compounds the variable OpEx rate each year:
	// negative = economies of scale, positive = diseconomies.
	VariableOpexDriftPerYear float64
}

// DefaultGrowthMultiplier is the Base-case fallback when the founder supplies
// no observed trend: flat 10% annual growth.
const DefaultGrowthMultiplier = 1.10

// PolicyFor returns the built-in policy for a scenario kind.
func PolicyFor(kind models.ScenarioKind) Policy {
	switch kind {
	case models.KindOptimistic:
		return Policy{
			Kind:                     models.KindOptimistic,
			Description:              "Strong execution: accelerated growth with expanding margins and scale economies.",
			GrowthMultiplier:         1.25,
			MarginDriftPerYear:       0.02,
			MarginCap:                0.85,
			MarginFloor:              0.15,
			VariableOpexDriftPerYear: -0.05,
		}
	case models.KindPessimistic:
		return Policy{
			Kind:                     models.KindPessimistic,
			Description:              "Downside stress: revenue decline with compressing margins and rising unit costs.",
			GrowthMultiplier:         0.95,
			MarginDriftPerYear:       -0.01,
			MarginCap:                0.85,
			MarginFloor:              0.15,
			VariableOpexDriftPerYear: 0.05,
		}
	default:
		return Policy{
			Kind:        models.KindBase,
			Description: "Business plan: observed trajectory continues at the industry baseline margin.",
			// GrowthMultiplier 0 = observed trend or flat default
			MarginCap:   0.85,
			MarginFloor: 0.15,
		}
	}
}
