package valuation

import (
	"math"
	"testing"

	"foundercast/pkg/core/reference"
	"foundercast/pkg/models"
)

var saasProfile = reference.IndustryProfile{
	Name:            "SaaS",
	RevenueMultiple: 8.0,
	EBITDAMultiple:  20.0,
	PEMultiple:      35.0,
}

func earlyStageScenario() models.ScenarioData {
	return models.ScenarioData{
		Name: "Base Case",
		Kind: models.KindBase,
		Projections: []models.FinancialYear{
			{Year: 1, Revenue: 500_000, EBITDA: -50_000, NetIncome: -50_000},
			{Year: 2, Revenue: 650_000, EBITDA: -20_000, NetIncome: -20_000},
			{Year: 3, Revenue: 800_000, EBITDA: -5_000, NetIncome: -5_000},
		},
	}
}

func establishedScenario() models.ScenarioData {
	return models.ScenarioData{
		Name: "Base Case",
		Kind: models.KindBase,
		Projections: []models.FinancialYear{
			{Year: 1, Revenue: 5_000_000, EBITDA: 1_000_000, NetIncome: 700_000},
			{Year: 2, Revenue: 6_000_000, EBITDA: 1_300_000, NetIncome: 910_000},
			{Year: 3, Revenue: 7_200_000, EBITDA: 1_700_000, NetIncome: 1_190_000},
		},
	}
}

func TestEarlyStageGate(t *testing.T) {
	m := Valuate(earlyStageScenario(), saasProfile, DefaultConfig())

	if !m.EarlyStage {
		t.Fatal("expected early-stage classification for sub-1M loss-making company")
	}
	if m.Method != "Revenue Multiple" {
		t.Errorf("expected Revenue Multiple as primary method, got %s", m.Method)
	}

	// Haircut revenue multiple: 800000 * 8.0 * 0.6
	want := 800_000 * 8.0 * 0.6
	if math.Abs(m.RevenueMultipleValue-want) > 0.01 {
		t.Errorf("expected revenue multiple value %.0f, got %.2f", want, m.RevenueMultipleValue)
	}
	if m.EnterpriseValue != m.RevenueMultipleValue {
		t.Errorf("expected enterprise value %.2f to equal the revenue multiple value %.2f", m.EnterpriseValue, m.RevenueMultipleValue)
	}

	// Negative EBITDA and net income never produce multiple valuations.
	if m.EBITDAMultipleValue != 0 {
		t.Errorf("expected EBITDA multiple value 0 for loss-maker, got %.2f", m.EBITDAMultipleValue)
	}
	if m.PEValue != 0 {
		t.Errorf("expected PE value 0 for loss-maker, got %.2f", m.PEValue)
	}

	// The DCF stays available as a secondary figure.
	if m.DCFValue <= 0 {
		t.Errorf("expected a positive secondary DCF value, got %.2f", m.DCFValue)
	}
}

func TestEstablishedCompanyUsesDCF(t *testing.T) {
	m := Valuate(establishedScenario(), saasProfile, DefaultConfig())

	if m.EarlyStage {
		t.Fatal("expected growth-stage classification")
	}
	if m.Method != "DCF" {
		t.Errorf("expected DCF as primary method, got %s", m.Method)
	}
	if m.EnterpriseValue != m.DCFValue {
		t.Errorf("expected enterprise value to equal DCF, got %.2f vs %.2f", m.EnterpriseValue, m.DCFValue)
	}
	if m.DCFValue != m.PVCashFlows+m.PVTerminal {
		t.Errorf("DCF %.2f != PV cash flows %.2f + PV terminal %.2f", m.DCFValue, m.PVCashFlows, m.PVTerminal)
	}
	if m.EBITDAMultipleValue <= 0 || m.PEValue <= 0 {
		t.Errorf("expected positive multiple valuations, got EBITDA %.2f, PE %.2f", m.EBITDAMultipleValue, m.PEValue)
	}

	wantPerShare := m.EnterpriseValue / DefaultConfig().SharesOutstanding
	if math.Abs(m.ValuePerShare-wantPerShare) > 0.01 {
		t.Errorf("expected value per share %.4f, got %.4f", wantPerShare, m.ValuePerShare)
	}
}

func TestGateThresholdIsConfigurable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EarlyStageRevenueThreshold = 100_000 // Below the scenario's year-1 revenue

	m := Valuate(earlyStageScenario(), saasProfile, cfg)
	if m.EarlyStage {
		t.Error("expected gate to clear with a lowered revenue threshold")
	}
	if m.Method != "DCF" {
		t.Errorf("expected DCF once the gate clears, got %s", m.Method)
	}
}

func TestProfitableYearOneIsNotEarlyStage(t *testing.T) {
	s := earlyStageScenario()
	s.Projections[0].EBITDA = 10_000 // Small but positive

	m := Valuate(s, saasProfile, DefaultConfig())
	if m.EarlyStage {
		t.Error("positive year-1 EBITDA must not classify as early-stage")
	}
}

func TestEmptyScenario(t *testing.T) {
	m := Valuate(models.ScenarioData{}, saasProfile, DefaultConfig())
	if m.EnterpriseValue != 0 || m.Method != "" {
		t.Errorf("expected zero-value result for empty scenario, got %+v", m)
	}
}
