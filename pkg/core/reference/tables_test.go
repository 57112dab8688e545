package reference

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookupFallbacks(t *testing.T) {
	tables := NewDefaultTables()

	saas := tables.Industry("saas")
	if saas.Name != "SaaS" || saas.GrossMargin != 0.75 {
		t.Errorf("unexpected saas profile: %+v", saas)
	}

	// Case and whitespace are normalized.
	if got := tables.Industry("  SaaS "); got.Name != "SaaS" {
		t.Errorf("expected normalized lookup to hit SaaS, got %s", got.Name)
	}

	// Unknown industries fall back to the default profile.
	if got := tables.Industry("quantum llamas"); got.Name != saas.Name {
		t.Errorf("expected fallback to %s, got %s", saas.Name, got.Name)
	}

	india := tables.Country("india")
	if india.TaxRate != 0.25 || india.Currency != "INR" {
		t.Errorf("unexpected india profile: %+v", india)
	}
	if got := tables.Country("atlantis"); got.Name != india.Name {
		t.Errorf("expected country fallback to %s, got %s", india.Name, got.Name)
	}
}

func TestBenchmarksForFallsBack(t *testing.T) {
	tables := NewDefaultTables()

	saasBands := tables.BenchmarksFor("saas")
	if len(saasBands) == 0 {
		t.Fatal("expected saas benchmark bands")
	}
	unknown := tables.BenchmarksFor("unknown")
	if len(unknown) != len(saasBands) {
		t.Errorf("expected fallback bands, got %d vs %d", len(unknown), len(saasBands))
	}
	for _, band := range saasBands {
		if !(band.P25 <= band.Median && band.Median <= band.P75) {
			t.Errorf("%s: band out of order: %+v", band.Metric, band)
		}
	}
}

func TestLoadOverrides(t *testing.T) {
	tables := NewDefaultTables()

	override := `
industries:
  saas:
    name: SaaS
    gross_margin: 0.80
    variable_opex_rate: 0.25
    revenue_multiple: 10.0
`
	path := filepath.Join(t.TempDir(), "reference.yaml")
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := tables.LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides failed: %v", err)
	}
	saas := tables.Industry("saas")
	if saas.GrossMargin != 0.80 || saas.RevenueMultiple != 10.0 {
		t.Errorf("override not applied: %+v", saas)
	}

	// Untouched entries survive the merge.
	if tables.Country("india").TaxRate != 0.25 {
		t.Error("override clobbered unrelated tables")
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	tables := NewDefaultTables()
	if err := tables.LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Errorf("a missing overrides file must not error, got %v", err)
	}
}
