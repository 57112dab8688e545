// Package benchmark maps a projection's margins and growth against static
// industry benchmark bands to produce percentile rankings.
package benchmark

import (
	"foundercast/pkg/core/calc"
	"foundercast/pkg/core/reference"
	"foundercast/pkg/models"
)

// MetricComparison positions one company metric inside its industry band.
type MetricComparison struct {
	Metric     string  `json:"metric"`
	Value      float64 `json:"value"`
	P25        float64 `json:"p25"`
	Median     float64 `json:"median"`
	P75        float64 `json:"p75"`
	Percentile float64 `json:"percentile"` // 0-100, linear interpolation across the band
	Standing   string  `json:"standing"`   // Below Market | At Market | Above Market
}

// Comparison is the full benchmark snapshot for one scenario.
type Comparison struct {
	Scenario          string             `json:"scenario"`
	Industry          string             `json:"industry"`
	Metrics           []MetricComparison `json:"metrics"`
	OverallPercentile float64            `json:"overall_percentile"`
}

// Compare ranks a scenario's first-year margins and horizon growth against
// the industry's benchmark bands.
func Compare(scenario models.ScenarioData, industry string, tables *reference.Tables) Comparison {
	year1 := scenario.FirstYear()
	n := len(scenario.Projections)

	values := map[string]float64{
		"gross_margin":  calc.SafeDiv(year1.GrossProfit, year1.Revenue) * 100,
		"ebitda_margin": calc.SafeDiv(year1.EBITDA, year1.Revenue) * 100,
		"opex_ratio":    calc.SafeDiv(year1.OpEx, year1.Revenue) * 100,
	}
	if n >= 2 {
		values["revenue_growth"] = calc.CAGR(year1.Revenue, scenario.FinalYear().Revenue, n-1)
	}

	cmp := Comparison{Scenario: scenario.Name, Industry: industry}

	var sum float64
	for _, band := range tables.BenchmarksFor(industry) {
		value, ok := values[band.Metric]
		if !ok {
			continue
		}
		pct := percentileIn(band, value)
		cmp.Metrics = append(cmp.Metrics, MetricComparison{
			Metric:     band.Metric,
			Value:      calc.Round2(value),
			P25:        band.P25,
			Median:     band.Median,
			P75:        band.P75,
			Percentile: calc.Round1(pct),
			Standing:   standing(pct),
		})
		sum += pct
	}
	if len(cmp.Metrics) > 0 {
		cmp.OverallPercentile = calc.Round1(sum / float64(len(cmp.Metrics)))
	}
	return cmp
}

// percentileIn interpolates a value's position across the P25/median/P75
// band. Values outside the band saturate toward 5 and 95 rather than 0/100 -
// the static tables are coarse and an extreme claim would overstate them.
func percentileIn(band reference.BenchmarkRange, value float64) float64 {
	switch {
	case value <= band.P25:
		if band.Median == band.P25 {
			return 25
		}
		p := 25 - (band.P25-value)/(band.Median-band.P25)*25
		return calc.Clamp(p, 5, 25)
	case value <= band.Median:
		return 25 + (value-band.P25)/(band.Median-band.P25)*25
	case value <= band.P75:
		return 50 + (value-band.Median)/(band.P75-band.Median)*25
	default:
		if band.P75 == band.Median {
			return 75
		}
		p := 75 + (value-band.P75)/(band.P75-band.Median)*25
		return calc.Clamp(p, 75, 95)
	}
}

func standing(percentile float64) string {
	switch {
	case percentile < 40:
		return "Below Market"
	case percentile <= 60:
		return "At Market"
	default:
		return "Above Market"
	}
}
