// Package export renders a scenario set into the three download formats:
// CSV for spreadsheets, a JSON envelope for lossless save/restore, and a
// narrative PDF report.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"foundercast/pkg/models"
)

var csvHeader = []string{
	"scenario", "year", "revenue", "cogs", "gross_profit",
	"opex", "ebitda", "net_income", "cash_balance",
}

// WriteCSV streams the scenario set as one flat table, one row per scenario
// per year, values at two decimals.
func WriteCSV(w io.Writer, scenarios []models.ScenarioData) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for _, s := range scenarios {
		for _, fy := range s.Projections {
			row := []string{
				s.Name,
				fmt.Sprintf("%d", fy.Year),
				money(fy.Revenue),
				money(fy.COGS),
				money(fy.GrossProfit),
				money(fy.OpEx),
				money(fy.EBITDA),
				money(fy.NetIncome),
				money(fy.CashBalance),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("csv row for %s year %d: %w", s.Name, fy.Year, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
