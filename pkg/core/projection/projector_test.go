package projection

import (
	"math"
	"testing"

	"foundercast/pkg/core/reference"
	"foundercast/pkg/models"
)

func testInput() models.UserInput {
	return models.UserInput{
		CompanyName:     "Acme SaaS",
		Industry:        "saas",
		Country:         "india",
		CurrentRevenue:  500_000,
		CurrentExpenses: 35_000,
		CurrentCash:     120_000,
	}
}

func testProjector() *Projector {
	return NewProjector(reference.NewDefaultTables())
}

func TestYearOneMatchesInputs(t *testing.T) {
	p := testProjector()
	input := testInput()

	for _, kind := range models.AllKinds() {
		scenario := p.Project(input, kind)
		year1 := scenario.FirstYear()

		if year1.Revenue != input.CurrentRevenue {
			t.Errorf("%s: expected year-1 revenue %.0f, got %.0f", kind, input.CurrentRevenue, year1.Revenue)
		}

		// SaaS baseline: 75% margin, 30% variable OpEx; India: 25% tax.
		// COGS = 125000, fixed OpEx = 420000 - 125000 = 295000,
		// OpEx = 295000 + 150000 = 445000, EBITDA = 375000 - 445000 = -70000.
		if math.Abs(year1.COGS-125_000) > 0.01 {
			t.Errorf("%s: expected year-1 COGS 125000, got %.2f", kind, year1.COGS)
		}
		if math.Abs(year1.OpEx-445_000) > 0.01 {
			t.Errorf("%s: expected year-1 OpEx 445000, got %.2f", kind, year1.OpEx)
		}
		if math.Abs(year1.EBITDA-(-70_000)) > 0.01 {
			t.Errorf("%s: expected year-1 EBITDA -70000, got %.2f", kind, year1.EBITDA)
		}
		// Loss: no tax shield, net income equals EBITDA.
		if year1.NetIncome != year1.EBITDA {
			t.Errorf("%s: expected loss-year net income to equal EBITDA, got %.2f vs %.2f", kind, year1.NetIncome, year1.EBITDA)
		}
		if math.Abs(year1.CashBalance-50_000) > 0.01 {
			t.Errorf("%s: expected year-1 cash 50000, got %.2f", kind, year1.CashBalance)
		}
	}
}

func TestAccountingIdentitiesHold(t *testing.T) {
	p := testProjector()

	for _, scenario := range p.ProjectAll(testInput()) {
		if len(scenario.Projections) != Years {
			t.Fatalf("%s: expected %d years, got %d", scenario.Kind, Years, len(scenario.Projections))
		}
		for _, fy := range scenario.Projections {
			if math.Abs(fy.GrossProfit-(fy.Revenue-fy.COGS)) > 0.01 {
				t.Errorf("%s year %d: gross profit %.2f != revenue - COGS %.2f", scenario.Kind, fy.Year, fy.GrossProfit, fy.Revenue-fy.COGS)
			}
			if math.Abs(fy.EBITDA-(fy.GrossProfit-fy.OpEx)) > 0.01 {
				t.Errorf("%s year %d: EBITDA %.2f != gross profit - OpEx %.2f", scenario.Kind, fy.Year, fy.EBITDA, fy.GrossProfit-fy.OpEx)
			}
			if fy.CashBalance < 0 {
				t.Errorf("%s year %d: negative cash %.2f", scenario.Kind, fy.Year, fy.CashBalance)
			}
		}
	}
}

func TestScenarioOrdering(t *testing.T) {
	p := testProjector()
	input := testInput()

	baseScenario := p.Project(input, models.KindBase)
	optimisticScenario := p.Project(input, models.KindOptimistic)
	pessimisticScenario := p.Project(input, models.KindPessimistic)
	base := baseScenario.FinalYear()
	optimistic := optimisticScenario.FinalYear()
	pessimistic := pessimisticScenario.FinalYear()

	if !(optimistic.Revenue > base.Revenue && base.Revenue > pessimistic.Revenue) {
		t.Errorf("expected optimistic > base > pessimistic final revenue, got %.0f / %.0f / %.0f",
			optimistic.Revenue, base.Revenue, pessimistic.Revenue)
	}
}

func TestBaseGrowthUsesObservedTrend(t *testing.T) {
	p := testProjector()

	// Default: flat 10%.
	flat := p.Project(testInput(), models.KindBase)
	want := 500_000 * 1.10
	if math.Abs(flat.Projections[1].Revenue-want) > 0.01 {
		t.Errorf("expected default year-2 revenue %.0f, got %.2f", want, flat.Projections[1].Revenue)
	}

	// Observed trend overrides the default.
	input := testInput()
	input.ObservedGrowth = 0.40
	observed := p.Project(input, models.KindBase)
	want = 500_000 * 1.40
	if math.Abs(observed.Projections[1].Revenue-want) > 0.01 {
		t.Errorf("expected observed-trend year-2 revenue %.0f, got %.2f", want, observed.Projections[1].Revenue)
	}

	// The fixed optimistic/pessimistic multipliers ignore the observed trend.
	opt := p.Project(input, models.KindOptimistic)
	want = 500_000 * 1.25
	if math.Abs(opt.Projections[1].Revenue-want) > 0.01 {
		t.Errorf("expected optimistic year-2 revenue %.0f, got %.2f", want, opt.Projections[1].Revenue)
	}
}

func TestMarginDriftIsBounded(t *testing.T) {
	tables := reference.NewDefaultTables()
	p := NewProjector(tables)
	input := testInput()

	opt := p.Project(input, models.KindOptimistic)
	for _, fy := range opt.Projections {
		margin := fy.GrossProfit / fy.Revenue
		if margin > 0.85+1e-9 {
			t.Errorf("year %d: optimistic margin %.3f exceeds the 85%% cap", fy.Year, margin)
		}
	}

	pess := p.Project(input, models.KindPessimistic)
	for _, fy := range pess.Projections {
		margin := fy.GrossProfit / fy.Revenue
		if margin < 0.15-1e-9 {
			t.Errorf("year %d: pessimistic margin %.3f below the 15%% floor", fy.Year, margin)
		}
	}
}

func TestCashClampedAtZero(t *testing.T) {
	p := testProjector()
	input := testInput()
	input.CurrentCash = 10_000 // Burn exceeds cash in year 1

	pess := p.Project(input, models.KindPessimistic)
	for _, fy := range pess.Projections {
		if fy.CashBalance < 0 {
			t.Errorf("year %d: expected cash clamped at zero, got %.2f", fy.Year, fy.CashBalance)
		}
	}
	if pess.Projections[0].CashBalance != 0 {
		t.Errorf("expected year-1 cash exhausted to 0, got %.2f", pess.Projections[0].CashBalance)
	}
}

func TestUnknownIndustryFallsBack(t *testing.T) {
	p := testProjector()
	input := testInput()
	input.Industry = "underwater basket weaving"

	scenario := p.Project(input, models.KindBase)
	if len(scenario.Projections) != Years {
		t.Fatalf("expected a full projection for an unknown industry, got %d years", len(scenario.Projections))
	}
	// Default profile is SaaS, so the numbers match the known-industry run.
	known := p.Project(testInput(), models.KindBase)
	if scenario.Projections[0].EBITDA != known.Projections[0].EBITDA {
		t.Errorf("expected unknown industry to use the default profile, got EBITDA %.2f vs %.2f",
			scenario.Projections[0].EBITDA, known.Projections[0].EBITDA)
	}
}
