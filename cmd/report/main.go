// Command report renders a financial report offline: it takes company inputs
// (flags or a previously exported JSON envelope), runs the full calculation
// pipeline, and writes CSV, JSON, and PDF files. LLM sections are skipped -
// the offline report is fully deterministic.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"foundercast/pkg/core/export"
	"foundercast/pkg/core/projection"
	"foundercast/pkg/core/reference"
	"foundercast/pkg/core/report"
	"foundercast/pkg/core/valuation"
	"foundercast/pkg/models"
)

func main() {
	var (
		inFile   = flag.String("in", "", "Path to a previously exported JSON envelope (overrides the input flags)")
		outDir   = flag.String("out", ".", "Output directory")
		company  = flag.String("company", "", "Company name")
		industry = flag.String("industry", "saas", "Industry")
		country  = flag.String("country", "india", "Country")
		revenue  = flag.Float64("revenue", 0, "Current annual revenue")
		expenses = flag.Float64("expenses", 0, "Current monthly expenses")
		cash     = flag.Float64("cash", 0, "Current cash on hand")
		growth   = flag.Float64("growth", 0, "Observed annual growth rate as a decimal (optional, e.g. 0.4 for 40%)")
	)
	flag.Parse()

	tables := reference.NewDefaultTables()
	projector := projection.NewProjector(tables)

	var input models.UserInput
	var scenarios []models.ScenarioData

	if *inFile != "" {
		data, err := os.ReadFile(*inFile)
		if err != nil {
			fatal("read input file: %v", err)
		}
		env, err := export.ParseJSON(data)
		if err != nil {
			fatal("parse input file: %v", err)
		}
		input = env.Input
		scenarios = env.Scenarios
		fmt.Printf("[REPORT] Loaded %d scenarios for %s from %s\n", len(scenarios), input.CompanyName, *inFile)
	} else {
		input = models.UserInput{
			CompanyName:     *company,
			Industry:        *industry,
			Country:         *country,
			CurrentRevenue:  *revenue,
			CurrentExpenses: *expenses,
			CurrentCash:     *cash,
			ObservedGrowth:  *growth,
		}
		if input.CompanyName == "" || input.CurrentRevenue <= 0 || input.CurrentExpenses <= 0 {
			flag.Usage()
			fatal("company, revenue, and expenses are required without -in")
		}
		scenarios = projector.ProjectAll(input)
		fmt.Printf("[REPORT] Projected %d scenarios for %s\n", len(scenarios), input.CompanyName)
	}

	rep := report.Build(input, scenarios, tables, valuation.DefaultConfig())
	currency := tables.Country(input.Country).Currency

	// CSV
	csvPath := filepath.Join(*outDir, "scenarios.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		fatal("create %s: %v", csvPath, err)
	}
	if err := export.WriteCSV(csvFile, scenarios); err != nil {
		fatal("write csv: %v", err)
	}
	csvFile.Close()
	fmt.Printf("[REPORT] Wrote %s\n", csvPath)

	// JSON envelope
	jsonData, err := export.WriteJSON(input, scenarios)
	if err != nil {
		fatal("build json: %v", err)
	}
	jsonPath := filepath.Join(*outDir, "scenarios.json")
	if err := os.WriteFile(jsonPath, jsonData, 0o644); err != nil {
		fatal("write %s: %v", jsonPath, err)
	}
	fmt.Printf("[REPORT] Wrote %s\n", jsonPath)

	// PDF
	pdfData, err := export.WritePDF(rep, currency, export.Insights{})
	if err != nil {
		fatal("build pdf: %v", err)
	}
	pdfPath := filepath.Join(*outDir, "financial_report.pdf")
	if err := os.WriteFile(pdfPath, pdfData, 0o644); err != nil {
		fatal("write %s: %v", pdfPath, err)
	}
	fmt.Printf("[REPORT] Wrote %s\n", pdfPath)
}

func fatal(format string, args ...interface{}) {
	fmt.Printf("[FATAL] "+format+"\n", args...)
	os.Exit(1)
}
