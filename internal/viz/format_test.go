package viz

import (
	"strings"
	"testing"

	"compoundlab/internal/growth"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in  float64
		out string
	}{
		{0, "$0.00"},
		{1234567.891, "$1,234,567.89"},
		{999.999, "$1,000.00"},
		{-2500, "-$2,500.00"},
		{12.3, "$12.30"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.out {
			t.Errorf("FormatCurrency(%f) = %s, expected %s", tt.in, got, tt.out)
		}
	}
}

func TestSummaryPanel(t *testing.T) {
	result, err := growth.Simulate(growth.Params{
		Principal:         1000,
		AnnualRatePercent: 12,
		Interval:          growth.Monthly,
		Deposit:           100,
		Years:             1,
	})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	panel := SummaryPanel(result.Summary)
	if !strings.Contains(panel, "$2,200.00") {
		t.Errorf("expected invested amount in panel:\n%s", panel)
	}
	if !strings.Contains(panel, "Return on investment") {
		t.Error("expected ROI row in panel")
	}
}

func TestSparkline(t *testing.T) {
	s := Sparkline([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 8)
	if len([]rune(s)) != 8 {
		t.Errorf("expected 8 runes, got %d", len([]rune(s)))
	}

	if got := Sparkline(nil, 10); got != "" {
		t.Errorf("expected empty sparkline, got %q", got)
	}

	// Flat series should not panic on zero range.
	flat := Sparkline([]float64{5, 5, 5}, 3)
	if len([]rune(flat)) != 3 {
		t.Errorf("expected 3 runes for flat series, got %d", len([]rune(flat)))
	}
}

func TestGrowthPlots(t *testing.T) {
	result, err := growth.Simulate(growth.Params{
		Principal:         1000,
		AnnualRatePercent: 5,
		Interval:          growth.Monthly,
		Deposit:           100,
		Years:             5,
	})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	out := GrowthPlots(result.Yearly(), 60, 8)
	for _, caption := range []string{"total amount", "total invested", "interest earned"} {
		if !strings.Contains(out, caption) {
			t.Errorf("expected caption %q in plot output", caption)
		}
	}

	if got := GrowthPlots(nil, 60, 8); got != "" {
		t.Error("expected empty output for empty schedule")
	}
}
