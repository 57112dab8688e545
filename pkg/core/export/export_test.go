package export

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"

	"foundercast/pkg/core/projection"
	"foundercast/pkg/core/reference"
	"foundercast/pkg/core/report"
	"foundercast/pkg/core/valuation"
	"foundercast/pkg/models"
)

func exportFixture() (models.UserInput, []models.ScenarioData) {
	input := models.UserInput{
		CompanyName:     "Acme SaaS",
		Industry:        "saas",
		Country:         "india",
		CurrentRevenue:  500_000,
		CurrentExpenses: 35_000,
		CurrentCash:     120_000,
	}
	projector := projection.NewProjector(reference.NewDefaultTables())
	return input, projector.ProjectAll(input)
}

func TestWriteCSV(t *testing.T) {
	_, scenarios := exportFixture()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, scenarios); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	// Header + 3 scenarios x 3 years.
	if len(records) != 1+3*projection.Years {
		t.Fatalf("expected %d rows, got %d", 1+3*projection.Years, len(records))
	}
	if !reflect.DeepEqual(records[0], csvHeader) {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "Base Case" || records[1][1] != "1" {
		t.Errorf("expected first data row to be Base Case year 1, got %v", records[1])
	}
	if records[1][2] != "500000.00" {
		t.Errorf("expected year-1 revenue 500000.00, got %s", records[1][2])
	}
}

func TestJSONRoundTrip(t *testing.T) {
	input, scenarios := exportFixture()

	data, err := WriteJSON(input, scenarios)
	if err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	env, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if env.Version != EnvelopeVersion {
		t.Errorf("expected version %d, got %d", EnvelopeVersion, env.Version)
	}
	if !reflect.DeepEqual(env.Input, input) {
		t.Errorf("input did not round-trip: %+v vs %+v", env.Input, input)
	}
	if !reflect.DeepEqual(env.Scenarios, scenarios) {
		t.Error("scenarios did not round-trip")
	}
}

func TestParseRejectsNewerVersion(t *testing.T) {
	_, err := ParseJSON([]byte(`{"version": 99}`))
	if err == nil {
		t.Fatal("expected an error for a newer envelope version")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := ParseJSON([]byte("not json")); err == nil {
		t.Fatal("expected an error for malformed input")
	}
}

func buildTestReport() *report.Report {
	input, scenarios := exportFixture()
	return report.Build(input, scenarios, reference.NewDefaultTables(), valuation.DefaultConfig())
}

func TestBuildMarkdownSections(t *testing.T) {
	md := BuildMarkdown(buildTestReport(), "INR", Insights{Narrative: "Solid trajectory."})

	wantSections := []string{
		"# Acme SaaS - Financial Scenario Report",
		"## Executive Summary",
		"## Three-Year Projections",
		"## Industry Benchmarks",
		"## Analysis",
		"## Scenario Detail: Base Case",
		"## Scenario Detail: Optimistic Case",
		"## Scenario Detail: Pessimistic Case",
		"## Valuation",
		"## Budget Allocation",
		"## Cash Flow and Funding",
		"## Sensitivity Analysis",
		"## AI Feature Impact",
		"## Methodology",
	}
	for _, section := range wantSections {
		if !strings.Contains(md, section) {
			t.Errorf("markdown missing section %q", section)
		}
	}
	if !strings.Contains(md, "INR 500000") {
		t.Error("expected currency-prefixed revenue in the report")
	}
	if !strings.Contains(md, "Solid trajectory.") {
		t.Error("expected the narrative insight to be embedded")
	}

	// Empty recommendations are omitted entirely.
	if strings.Contains(md, "## Recommendations") {
		t.Error("empty recommendations section should be omitted")
	}
}

func TestWritePDF(t *testing.T) {
	data, err := WritePDF(buildTestReport(), "INR", Insights{})
	if err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header: %q", data[:8])
	}
	if len(data) < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", len(data))
	}
}

func TestFitCellTrimsByRune(t *testing.T) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 8.5)

	wide := strings.Repeat("Société Générale ", 10)
	got := fitCell(pdf, wide, 20)

	if !utf8.ValidString(got) {
		t.Errorf("truncation split a multi-byte sequence: %q", got)
	}
	if got == wide {
		t.Fatal("expected the cell to be truncated")
	}
	if pdf.GetStringWidth(got) > 20 {
		t.Errorf("truncated cell still too wide: %.1f", pdf.GetStringWidth(got))
	}
}
