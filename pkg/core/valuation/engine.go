// Package valuation computes DCF and multiple-based valuations from a
// completed projection, switching methodology by company stage: established
// companies get the DCF as their primary figure, early-stage loss-makers get
// a haircut revenue multiple with the DCF demoted to a secondary figure.
package valuation

import (
	"math"

	"foundercast/pkg/core/reference"
	"foundercast/pkg/models"
)

// Config encapsulates the valuation inputs. The early-stage gate thresholds
// and haircut are deliberate heuristics kept configurable rather than
// hard-coded; DefaultConfig pins the production values.
type Config struct {
	WACC               float64 `json:"wacc"`
	TerminalGrowthRate float64 `json:"terminal_growth_rate"`
	SharesOutstanding  float64 `json:"shares_outstanding"`

	// Early-stage gate: revenue below the threshold AND negative EBITDA in
	// year 1 marks the company early-stage.
	EarlyStageRevenueThreshold float64 `json:"early_stage_revenue_threshold"`
	EarlyStageHaircut          float64 `json:"early_stage_haircut"`

	// FCF proxy rates applied to the projection.
	FCFTaxRate        float64 `json:"fcf_tax_rate"`
	CapexRate         float64 `json:"capex_rate"`          // % of revenue
	WorkingCapRate    float64 `json:"working_cap_rate"`    // % of revenue
	LossStageFCFRate  float64 `json:"loss_stage_fcf_rate"` // FCF proxy when EBITDA <= 0, % of revenue
	TerminalLossRate  float64 `json:"terminal_loss_rate"`  // Terminal FCF proxy when final year is loss-making
}

// DefaultConfig returns the standard assumption set.
func DefaultConfig() Config {
	return Config{
		WACC:                       0.15,
		TerminalGrowthRate:         0.025,
		SharesOutstanding:          1_000_000,
		EarlyStageRevenueThreshold: 1_000_000,
		EarlyStageHaircut:          0.6,
		FCFTaxRate:                 0.30,
		CapexRate:                  0.03,
		WorkingCapRate:             0.05,
		LossStageFCFRate:           0.10,
		TerminalLossRate:           0.15,
	}
}

// Metrics holds the valuation outputs. EnterpriseValue is the primary
// reported figure; Method names which approach produced it.
type Metrics struct {
	EnterpriseValue float64 `json:"enterprise_value"`
	Method          string  `json:"method"` // "DCF" or "Revenue Multiple"
	EarlyStage      bool    `json:"early_stage"`

	DCFValue             float64 `json:"dcf_value"`
	PVCashFlows          float64 `json:"pv_cash_flows"`
	PVTerminal           float64 `json:"pv_terminal"`
	RevenueMultipleValue float64 `json:"revenue_multiple_value"`
	EBITDAMultipleValue  float64 `json:"ebitda_multiple_value"` // 0 when EBITDA <= 0
	PEValue              float64 `json:"pe_value"`              // 0 when net income <= 0
	ValuePerShare        float64 `json:"value_per_share"`
}

// Valuate runs the full valuation over one scenario against the industry's
// multiple set.
func Valuate(scenario models.ScenarioData, industry reference.IndustryProfile, cfg Config) Metrics {
	m := Metrics{}
	if len(scenario.Projections) == 0 {
		return m
	}

	year1 := scenario.FirstYear()
	final := scenario.FinalYear()

	m.EarlyStage = year1.Revenue < cfg.EarlyStageRevenueThreshold && year1.EBITDA < 0

	haircut := 1.0
	if m.EarlyStage {
		haircut = cfg.EarlyStageHaircut
	}

	// -------------------------------------------------------------------------
	// DCF: discounted FCF proxy, summed over non-negative terms only
	// -------------------------------------------------------------------------
	var pvFCF float64
	for _, fy := range scenario.Projections {
		fcf := freeCashFlow(fy, cfg)
		if fcf < 0 {
			continue
		}
		pvFCF += fcf / math.Pow(1+cfg.WACC, float64(fy.Year))
	}

	// Terminal value: Gordon growth on the final year's FCF, with a revenue
	// proxy when the final year is still loss-making.
	terminalFCF := freeCashFlow(final, cfg)
	if final.EBITDA <= 0 {
		terminalFCF = final.Revenue * cfg.TerminalLossRate
	}
	terminalValue := 0.0
	if cfg.WACC > cfg.TerminalGrowthRate {
		terminalValue = terminalFCF * (1 + cfg.TerminalGrowthRate) / (cfg.WACC - cfg.TerminalGrowthRate)
	}
	pvTerminal := terminalValue / math.Pow(1+cfg.WACC, float64(final.Year))

	m.PVCashFlows = pvFCF * haircut
	m.PVTerminal = pvTerminal * haircut
	m.DCFValue = m.PVCashFlows + m.PVTerminal

	// -------------------------------------------------------------------------
	// Multiples: never report a negative multiple valuation
	// -------------------------------------------------------------------------
	m.RevenueMultipleValue = final.Revenue * (industry.RevenueMultiple * haircut)
	if final.EBITDA > 0 {
		m.EBITDAMultipleValue = final.EBITDA * industry.EBITDAMultiple * haircut
	}
	if final.NetIncome > 0 {
		m.PEValue = final.NetIncome * industry.PEMultiple * haircut
	}

	// -------------------------------------------------------------------------
	// Stage gate: early-stage companies report the adjusted revenue multiple
	// as primary; DCF stays as a secondary figure.
	// -------------------------------------------------------------------------
	if m.EarlyStage {
		m.EnterpriseValue = m.RevenueMultipleValue
		m.Method = "Revenue Multiple"
	} else {
		m.EnterpriseValue = m.DCFValue
		m.Method = "DCF"
	}

	if cfg.SharesOutstanding > 0 {
		m.ValuePerShare = m.EnterpriseValue / cfg.SharesOutstanding
	}

	return m
}

// freeCashFlow is the per-year FCF proxy: taxed EBITDA less capex and working
// capital drag when profitable, a flat revenue fraction when loss-making.
func freeCashFlow(fy models.FinancialYear, cfg Config) float64 {
	if fy.EBITDA > 0 {
		return fy.EBITDA*(1-cfg.FCFTaxRate) - fy.Revenue*cfg.CapexRate - fy.Revenue*cfg.WorkingCapRate
	}
	return fy.Revenue * cfg.LossStageFCFRate
}
