package validate

import (
	"testing"

	"foundercast/pkg/core/reference"
	"foundercast/pkg/models"
)

func consistentScenario(kind models.ScenarioKind) models.ScenarioData {
	years := make([]models.FinancialYear, 0, 3)
	revenue := 1_000_000.0
	cash := 200_000.0
	for y := 1; y <= 3; y++ {
		cogs := revenue * 0.25
		gp := revenue - cogs
		opex := revenue * 0.6
		ebitda := gp - opex
		cash += ebitda
		years = append(years, models.FinancialYear{
			Year: y, Revenue: revenue, COGS: cogs, GrossProfit: gp,
			OpEx: opex, EBITDA: ebitda, NetIncome: ebitda, CashBalance: cash,
		})
		revenue *= 1.2
	}
	return models.ScenarioData{Name: kind.DisplayName(), Kind: kind, Projections: years}
}

func newTestValidator() *Validator {
	return NewValidator(reference.NewDefaultTables())
}

func TestConsistentScenarioPasses(t *testing.T) {
	result := newTestValidator().Check(consistentScenario(models.KindBase), "saas")

	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", result.Warnings)
	}
	if result.Reliability != "High" {
		t.Errorf("expected High reliability, got %s", result.Reliability)
	}
}

func TestArithmeticErrorsAreHard(t *testing.T) {
	s := consistentScenario(models.KindBase)
	s.Projections[1].GrossProfit += 500 // Breaks the identity beyond tolerance

	result := newTestValidator().Check(s, "saas")
	if len(result.Errors) == 0 {
		t.Fatal("expected a gross-profit identity error")
	}
	if result.Reliability != "Low" {
		t.Errorf("expected Low reliability with errors present, got %s", result.Reliability)
	}
}

func TestToleranceAbsorbsRounding(t *testing.T) {
	s := consistentScenario(models.KindBase)
	s.Projections[1].GrossProfit += 0.5 // Within the 1-unit tolerance

	result := newTestValidator().Check(s, "saas")
	if len(result.Errors) != 0 {
		t.Errorf("expected rounding slack to pass, got %v", result.Errors)
	}
}

func TestNegativeCashIsAnError(t *testing.T) {
	s := consistentScenario(models.KindBase)
	s.Projections[2].CashBalance = -1_000

	result := newTestValidator().Check(s, "saas")
	if len(result.Errors) == 0 {
		t.Error("expected a negative-cash error")
	}
}

func TestGrowthBandKeyedByKind(t *testing.T) {
	v := newTestValidator()

	// 20% growth sits inside the base band but below the optimistic floor is
	// not triggered either; rebuild with 5% growth to trip the optimistic band.
	s := consistentScenario(models.KindOptimistic)
	for i := 1; i < len(s.Projections); i++ {
		s.Projections[i].Revenue = s.Projections[i-1].Revenue * 1.05
		s.Projections[i].COGS = s.Projections[i].Revenue * 0.25
		s.Projections[i].GrossProfit = s.Projections[i].Revenue - s.Projections[i].COGS
		s.Projections[i].OpEx = s.Projections[i].Revenue * 0.6
		s.Projections[i].EBITDA = s.Projections[i].GrossProfit - s.Projections[i].OpEx
		s.Projections[i].NetIncome = s.Projections[i].EBITDA
	}
	result := v.Check(s, "saas")
	if len(result.Warnings) == 0 {
		t.Error("expected growth warnings: 5% is below the optimistic band")
	}
	if len(result.Errors) != 0 {
		t.Errorf("growth plausibility must warn, not error: %v", result.Errors)
	}

	// The same trajectory tagged base is fine.
	s.Kind = models.KindBase
	result = v.Check(s, "saas")
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings for 5%% growth in the base band, got %v", result.Warnings)
	}
}

func TestLowMarginWarning(t *testing.T) {
	s := consistentScenario(models.KindBase)
	for i := range s.Projections {
		fy := &s.Projections[i]
		fy.COGS = fy.Revenue * 0.7 // 30% margin, below the 45% SaaS floor
		fy.GrossProfit = fy.Revenue - fy.COGS
		fy.EBITDA = fy.GrossProfit - fy.OpEx
		fy.NetIncome = fy.EBITDA
	}

	result := newTestValidator().Check(s, "saas")
	if len(result.Warnings) < 3 {
		t.Errorf("expected a margin warning per year, got %v", result.Warnings)
	}
	if result.Reliability != "Medium" {
		t.Errorf("expected Medium reliability with >2 warnings, got %s", result.Reliability)
	}
}

func TestEmptyScenario(t *testing.T) {
	result := newTestValidator().Check(models.ScenarioData{Name: "Empty"}, "saas")
	if len(result.Errors) == 0 || result.Reliability != "Low" {
		t.Errorf("expected hard failure for an empty scenario, got %+v", result)
	}
}

func TestCheckAll(t *testing.T) {
	scenarios := []models.ScenarioData{
		consistentScenario(models.KindBase),
		consistentScenario(models.KindOptimistic),
	}
	results := newTestValidator().CheckAll(scenarios, "saas")
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}
