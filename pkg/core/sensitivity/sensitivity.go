// Package sensitivity perturbs growth rate, customer acquisition cost, and
// gross margin around base-year values and reports the first-order EBITDA
// impact of each variation.
package sensitivity

import (
	"math"

	"foundercast/pkg/core/calc"
	"foundercast/pkg/models"
)

// Variation is one perturbation and its impact on EBITDA (both percentages).
type Variation struct {
	ChangePercent float64 `json:"change_percent"`
	EBITDAImpact  float64 `json:"ebitda_impact"`
}

// ParameterTest is the named sweep for one driver.
type ParameterTest struct {
	Parameter  string      `json:"parameter"`
	Variations []Variation `json:"variations"`
}

// CACRevenueShare approximates the slice of revenue exposed to acquisition
// cost swings.
const CACRevenueShare = 0.4

var (
	growthVariations = []float64{-20, -10, 10, 20}
	cacVariations    = []float64{-20, -10, 10, 20}
	marginVariations = []float64{-10, -5, 5, 10}
)

// Analyze runs the three standard parameter tests against a scenario's first
// year. Impacts are linear first-order approximations scaled by |baseEBITDA|.
// When baseEBITDA is exactly 0 the impact degenerates to the raw percentage
// change - a known approximation that avoids the divide-by-zero at the cost
// of scale normalization; it never yields NaN or Inf.
func Analyze(scenario models.ScenarioData) []ParameterTest {
	year1 := scenario.FirstYear()
	baseEBITDA := year1.EBITDA
	flowThrough := calc.SafeDiv(year1.GrossProfit, year1.Revenue)

	growthImpact := func(pct float64) float64 {
		if baseEBITDA == 0 {
			return pct
		}
		deltaRevenue := year1.Revenue * pct / 100
		return deltaRevenue * flowThrough / math.Abs(baseEBITDA) * 100
	}
	cacImpact := func(pct float64) float64 {
		if baseEBITDA == 0 {
			return -pct
		}
		return -(year1.Revenue * CACRevenueShare * pct / 100) / math.Abs(baseEBITDA) * 100
	}
	marginImpact := func(pct float64) float64 {
		if baseEBITDA == 0 {
			return pct
		}
		return (year1.Revenue * pct / 100) / math.Abs(baseEBITDA) * 100
	}

	return []ParameterTest{
		buildTest("Revenue Growth Rate", growthVariations, growthImpact),
		buildTest("Customer Acquisition Cost", cacVariations, cacImpact),
		buildTest("Gross Margin", marginVariations, marginImpact),
	}
}

func buildTest(name string, changes []float64, impact func(float64) float64) ParameterTest {
	test := ParameterTest{Parameter: name, Variations: make([]Variation, 0, len(changes))}
	for _, pct := range changes {
		test.Variations = append(test.Variations, Variation{
			ChangePercent: pct,
			EBITDAImpact:  calc.Round2(impact(pct)),
		})
	}
	return test
}
