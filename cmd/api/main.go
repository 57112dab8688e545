package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	apiexport "foundercast/pkg/api/export"
	apiinsight "foundercast/pkg/api/insight"
	"foundercast/pkg/api/metrics"
	"foundercast/pkg/api/scenario"
	"foundercast/pkg/api/session"
	"foundercast/pkg/core/agent"
	"foundercast/pkg/core/insight"
	"foundercast/pkg/core/reference"
	"foundercast/pkg/core/store"
	"foundercast/pkg/core/valuation"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Agent manager from config; without it every LLM feature falls back to
	// its deterministic path
	agentCfg, err := agent.LoadConfig("config/models.yaml")
	if err != nil {
		fmt.Printf("[WARNING] No LLM config loaded, model features fall back: %v\n", err)
	}
	agentMgr := agent.NewManager(agentCfg)
	fmt.Printf("[CONFIG] Active LLM provider: %s\n", agentMgr.GetActiveProvider())

	// Reference tables, with optional local overrides
	tables := reference.NewDefaultTables()
	if err := tables.LoadOverrides("config/reference.yaml"); err != nil {
		fmt.Printf("[WARNING] Failed to load reference overrides: %v\n", err)
	}

	valCfg := valuation.DefaultConfig()
	insightClient := insight.NewClient(agentMgr)

	// Projection + generation endpoints
	scenario.InitHandler(tables, insightClient)
	http.HandleFunc("/api/scenario/project", scenario.HandleProject)
	http.HandleFunc("/api/scenario/generate", scenario.HandleGenerate)

	// Metrics report + what-if simulation endpoints
	metrics.InitHandler(tables, valCfg)
	http.HandleFunc("/api/metrics/report", metrics.HandleReport)
	http.HandleFunc("/api/metrics/simulate", metrics.HandleSimulate)

	// Advisory endpoints
	apiinsight.InitHandler(insightClient, tables)
	http.HandleFunc("/api/insight/risk", apiinsight.HandleRisk)
	http.HandleFunc("/api/insight/chat", apiinsight.HandleChat)

	// Export endpoints
	apiexport.InitHandler(tables, valCfg, insightClient)
	http.HandleFunc("/api/export/csv", apiexport.HandleCSV)
	http.HandleFunc("/api/export/json", apiexport.HandleJSON)
	http.HandleFunc("/api/export/pdf", apiexport.HandlePDF)

	// Session persistence is optional: no DATABASE_URL, no save/load
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] Database init failed, sessions disabled: %v\n", err)
			session.InitHandler(nil)
		} else {
			defer store.Close()
			session.InitHandler(store.NewSessionRepo())
			fmt.Println("[STORE] Session persistence enabled")
		}
	} else {
		session.InitHandler(nil)
	}
	http.HandleFunc("/api/session/save", session.HandleSave)
	http.HandleFunc("/api/session/load", session.HandleLoad)

	fmt.Println("API server starting on :8080...")
	fmt.Println("  - POST /api/scenario/project")
	fmt.Println("  - POST /api/scenario/generate")
	fmt.Println("  - POST /api/metrics/report")
	fmt.Println("  - POST /api/metrics/simulate")
	fmt.Println("  - POST /api/insight/risk")
	fmt.Println("  - POST /api/insight/chat")
	fmt.Println("  - POST /api/export/csv")
	fmt.Println("  - POST /api/export/json")
	fmt.Println("  - POST /api/export/pdf")
	fmt.Println("  - POST /api/session/save")
	fmt.Println("  - GET  /api/session/load")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
