package budget

import (
	"math"
	"testing"

	"foundercast/pkg/models"
)

func burnScenario() models.ScenarioData {
	return models.ScenarioData{
		Name: "Base Case",
		Kind: models.KindBase,
		Projections: []models.FinancialYear{
			{Year: 1, Revenue: 500_000, COGS: 125_000, OpEx: 445_000, EBITDA: -70_000, NetIncome: -70_000},
			{Year: 2, Revenue: 550_000, COGS: 137_500, OpEx: 460_000, EBITDA: -47_500, NetIncome: -47_500},
			{Year: 3, Revenue: 605_000, COGS: 151_250, OpEx: 475_000, EBITDA: -21_250, NetIncome: -21_250},
		},
	}
}

func TestAllocateWeights(t *testing.T) {
	cases := []struct {
		kind models.ScenarioKind
		want Weights
	}{
		{models.KindBase, Weights{0.70, 0.15, 0.10, 0.05}},
		{models.KindOptimistic, Weights{0.60, 0.25, 0.12, 0.03}},
		{models.KindPessimistic, Weights{0.75, 0.10, 0.05, 0.10}},
	}
	for _, tc := range cases {
		got := WeightsFor(tc.kind)
		if got != tc.want {
			t.Errorf("%s: expected weights %+v, got %+v", tc.kind, tc.want, got)
		}
		sum := got.Operations + got.Marketing + got.Development + got.Reserves
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("%s: weights sum to %.4f, want 1", tc.kind, sum)
		}
	}
}

func TestAllocateBreakdown(t *testing.T) {
	b := Allocate(burnScenario(), 1_000_000)

	if b.Operations != 700_000 {
		t.Errorf("expected operations 700000, got %.2f", b.Operations)
	}
	if b.Marketing != 150_000 {
		t.Errorf("expected marketing 150000, got %.2f", b.Marketing)
	}
	total := b.Operations + b.Marketing + b.Development + b.Reserves
	if math.Abs(total-b.TotalBudget) > 0.01 {
		t.Errorf("buckets sum to %.2f, want %.2f", total, b.TotalBudget)
	}
	// 1M cash, ~5.8k net monthly burn -> comfortably over 12 months.
	if !b.Adequate {
		t.Errorf("expected adequate runway, got %.1f months", b.RunwayMonths)
	}
}

func TestAllocateInadequateRunway(t *testing.T) {
	b := Allocate(burnScenario(), 30_000)
	if b.Adequate {
		t.Errorf("expected inadequate runway at 30k cash, got %.1f months", b.RunwayMonths)
	}
	if b.Assessment == "" {
		t.Error("expected a non-empty assessment")
	}
}

func TestPlanFundingBurningCompany(t *testing.T) {
	// Starting cash low enough that year 1 dips below the three-month buffer.
	req := PlanFunding(burnScenario(), 50_000, 2_000_000)

	if req.SelfFunded {
		t.Fatal("expected funding rounds for a burning company with low cash")
	}
	if len(req.Rounds) == 0 {
		t.Fatal("expected at least one round")
	}

	first := req.Rounds[0]
	if first.Year != 1 {
		t.Errorf("expected first round in year 1, got year %d", first.Year)
	}
	if first.Stage != "Seed" {
		t.Errorf("expected Seed stage for a small first raise, got %s", first.Stage)
	}
	if first.Dilution <= 0 || first.Dilution >= 100 {
		t.Errorf("expected dilution in (0,100), got %.2f", first.Dilution)
	}

	// Dilution identity: raise / (preMoney + raise).
	wantDilution := first.Amount / (2_000_000 + first.Amount) * 100
	if math.Abs(first.Dilution-wantDilution) > 0.01 {
		t.Errorf("expected dilution %.2f, got %.2f", wantDilution, first.Dilution)
	}
}

func TestPlanFundingSelfFunded(t *testing.T) {
	profitable := models.ScenarioData{
		Name: "Optimistic Case",
		Kind: models.KindOptimistic,
		Projections: []models.FinancialYear{
			{Year: 1, Revenue: 2_000_000, COGS: 500_000, OpEx: 1_000_000, EBITDA: 500_000, NetIncome: 375_000},
			{Year: 2, Revenue: 2_500_000, COGS: 625_000, OpEx: 1_100_000, EBITDA: 775_000, NetIncome: 581_250},
			{Year: 3, Revenue: 3_125_000, COGS: 781_250, OpEx: 1_200_000, EBITDA: 1_143_750, NetIncome: 857_812},
		},
	}

	req := PlanFunding(profitable, 500_000, 10_000_000)
	if !req.SelfFunded {
		t.Errorf("expected self-funded plan, got %d rounds totaling %.0f", len(req.Rounds), req.TotalRequired)
	}
	if req.TotalRequired != 0 {
		t.Errorf("expected zero total required, got %.2f", req.TotalRequired)
	}
}

func TestStageLadder(t *testing.T) {
	cases := []struct {
		cumulative float64
		want       string
	}{
		{1_500_000, "Seed"},
		{2_000_000, "Seed"},
		{5_000_000, "Series A"},
		{8_000_000, "Series A"},
		{12_000_000, "Series B"},
	}
	for _, tc := range cases {
		if got := stageFor(tc.cumulative); got != tc.want {
			t.Errorf("stageFor(%.0f): expected %s, got %s", tc.cumulative, tc.want, got)
		}
	}
}
