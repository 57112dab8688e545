package budget

import (
	"fmt"

	"foundercast/pkg/core/calc"
	"foundercast/pkg/models"
)

// Funding event sizing: the buffer that triggers a raise and the runway each
// raise restores.
const (
	bufferMonths           = 3.0
	firstYearTargetMonths  = 18.0
	laterYearsTargetMonths = 12.0

	seedCeiling    = 2_000_000.0
	seriesACeiling = 8_000_000.0
)

// Round is one proposed funding event.
type Round struct {
	Year     int     `json:"year"`
	Stage    string  `json:"stage"` // Seed | Series A | Series B
	Amount   float64 `json:"amount"`
	Dilution float64 `json:"dilution"` // Percent of equity given up
}

// Requirements is the multi-year funding plan for one scenario.
type Requirements struct {
	Scenario      string  `json:"scenario"`
	TotalRequired float64 `json:"total_required"`
	Rounds        []Round `json:"rounds"`
	SelfFunded    bool    `json:"self_funded"`
	Summary       string  `json:"summary"`
}

// PlanFunding walks the projection year by year with a running cash balance.
// Whenever the balance dips below a minimum buffer (three months of gross
// burn), it books a funding event sized to restore an 18-month runway in
// year 1 or a 12-month runway in later years. Dilution per round is
// raise / (preMoneyValuation + raise).
func PlanFunding(scenario models.ScenarioData, startingCash, preMoneyValuation float64) Requirements {
	req := Requirements{Scenario: scenario.Name}

	cash := startingCash
	for _, fy := range scenario.Projections {
		cash += fy.NetIncome

		monthlyGrossBurn := (fy.COGS + fy.OpEx) / 12
		monthlyNetBurn := monthlyGrossBurn - fy.Revenue/12
		buffer := monthlyGrossBurn * bufferMonths

		if cash >= buffer || monthlyNetBurn <= 0 {
			continue
		}

		target := laterYearsTargetMonths
		if fy.Year == 1 {
			target = firstYearTargetMonths
		}

		raise := target*monthlyNetBurn - cash
		if raise <= 0 {
			continue
		}

		req.TotalRequired += raise
		req.Rounds = append(req.Rounds, Round{
			Year:     fy.Year,
			Stage:    stageFor(req.TotalRequired),
			Amount:   calc.Round2(raise),
			Dilution: calc.Round2(calc.SafeDiv(raise, preMoneyValuation+raise) * 100),
		})
		cash += raise
	}

	req.TotalRequired = calc.Round2(req.TotalRequired)
	req.SelfFunded = len(req.Rounds) == 0
	if req.SelfFunded {
		req.Summary = "Projected cash flow sustains operations without external funding."
	} else {
		req.Summary = fmt.Sprintf("%d funding round(s) totaling %.0f required over the projection horizon.", len(req.Rounds), req.TotalRequired)
	}
	return req
}

// stageFor classifies a round by the cumulative amount raised so far.
func stageFor(cumulative float64) string {
	switch {
	case cumulative <= seedCeiling:
		return "Seed"
	case cumulative <= seriesACeiling:
		return "Series A"
	default:
		return "Series B"
	}
}
