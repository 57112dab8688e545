package insight

import (
	"context"
	"strings"
	"testing"

	"foundercast/pkg/core/agent"
	"foundercast/pkg/core/calc"
	"foundercast/pkg/core/projection"
	"foundercast/pkg/core/reference"
	"foundercast/pkg/models"
)

// offlineClient has no configured provider: every LLM call errors and the
// deterministic fallbacks must carry the result.
func offlineClient() *Client {
	return NewClient(agent.NewManager(agent.Config{ActiveProvider: "disabled"}))
}

func insightInput() models.UserInput {
	return models.UserInput{
		CompanyName:     "Acme SaaS",
		Industry:        "saas",
		Country:         "india",
		CurrentRevenue:  500_000,
		CurrentExpenses: 35_000,
		CurrentCash:     120_000,
	}
}

func TestScoreRiskFallsBackToHeuristic(t *testing.T) {
	input := insightInput()
	projector := projection.NewProjector(reference.NewDefaultTables())
	base := projector.Project(input, models.KindBase)

	scoring := offlineClient().ScoreRisk(context.Background(), input, base)

	if scoring.Source != "heuristic" {
		t.Errorf("expected heuristic source without a provider, got %s", scoring.Source)
	}
	for name, v := range map[string]float64{
		"overall":   scoring.OverallScore,
		"financial": scoring.FinancialRisk,
		"market":    scoring.MarketRisk,
		"execution": scoring.ExecutionRisk,
	} {
		if v < 0 || v > 100 {
			t.Errorf("%s risk out of range: %v", name, v)
		}
	}
	if scoring.Summary == "" {
		t.Error("expected a non-empty heuristic summary")
	}
}

func TestHeuristicRiskRespondsToRunway(t *testing.T) {
	projector := projection.NewProjector(reference.NewDefaultTables())

	tight := insightInput()
	tight.CurrentCash = 30_000
	comfortable := insightInput()
	comfortable.CurrentCash = 2_000_000

	tightScore := heuristicRisk(tight, projector.Project(tight, models.KindBase))
	comfortableScore := heuristicRisk(comfortable, projector.Project(comfortable, models.KindBase))

	if tightScore.FinancialRisk <= comfortableScore.FinancialRisk {
		t.Errorf("expected shorter runway to score riskier: %.0f vs %.0f",
			tightScore.FinancialRisk, comfortableScore.FinancialRisk)
	}
}

func TestGenerateScenariosFallsBackToProjector(t *testing.T) {
	input := insightInput()
	projector := projection.NewProjector(reference.NewDefaultTables())

	scenarios := offlineClient().GenerateScenarios(context.Background(), input, projector)

	deterministic := projector.ProjectAll(input)
	if len(scenarios) != len(deterministic) {
		t.Fatalf("expected %d scenarios, got %d", len(deterministic), len(scenarios))
	}
	for i, s := range scenarios {
		if s.Kind != deterministic[i].Kind {
			t.Errorf("scenario %d: expected kind %s, got %s", i, deterministic[i].Kind, s.Kind)
		}
		if s.FirstYear().Revenue != input.CurrentRevenue {
			t.Errorf("scenario %d: expected year-1 revenue %.0f, got %.0f", i, input.CurrentRevenue, s.FirstYear().Revenue)
		}
	}
}

func TestStructurallySoundRejectsHallucinations(t *testing.T) {
	input := insightInput()
	projector := projection.NewProjector(reference.NewDefaultTables())
	good := projector.Project(input, models.KindBase)

	if !structurallySound(good, input) {
		t.Fatal("projector output must pass the structural checks")
	}

	wrongRevenue := good
	wrongRevenue.Projections = append([]models.FinancialYear(nil), good.Projections...)
	wrongRevenue.Projections[0].Revenue = 9_999_999
	wrongRevenue.Projections[0].GrossProfit = wrongRevenue.Projections[0].Revenue - wrongRevenue.Projections[0].COGS
	wrongRevenue.Projections[0].EBITDA = wrongRevenue.Projections[0].GrossProfit - wrongRevenue.Projections[0].OpEx
	if structurallySound(wrongRevenue, input) {
		t.Error("hallucinated year-1 revenue must be rejected")
	}

	badMath := good
	badMath.Projections = append([]models.FinancialYear(nil), good.Projections...)
	badMath.Projections[1].GrossProfit += 10_000
	if structurallySound(badMath, input) {
		t.Error("broken gross-profit identity must be rejected")
	}

	truncated := good
	truncated.Projections = good.Projections[:2]
	if structurallySound(truncated, input) {
		t.Error("short projections must be rejected")
	}
}

func TestRatioNarrativeFallback(t *testing.T) {
	projector := projection.NewProjector(reference.NewDefaultTables())
	analysis := calc.AnalyzeRatios(projector.Project(insightInput(), models.KindBase))

	narrative := offlineClient().RatioNarrative(context.Background(), analysis)
	if narrative == "" {
		t.Fatal("expected a fallback narrative")
	}
	if !strings.Contains(narrative, "Rule of 40") {
		t.Errorf("expected the fallback to mention Rule of 40, got %q", narrative)
	}
}

func TestChatUnavailableNotice(t *testing.T) {
	input := insightInput()
	projector := projection.NewProjector(reference.NewDefaultTables())
	scenarios := projector.ProjectAll(input)

	answer := offlineClient().Chat(context.Background(), "How long is my runway?", input, scenarios)
	if !strings.Contains(answer, "unavailable") {
		t.Errorf("expected the static unavailable notice, got %q", answer)
	}
}
