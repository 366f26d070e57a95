package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"compoundlab/internal/growth"
)

func testResult(t *testing.T) *growth.Result {
	t.Helper()
	result, err := growth.Simulate(growth.Params{
		Principal:         1000,
		AnnualRatePercent: 12,
		Interval:          growth.Monthly,
		Deposit:           100,
		Years:             3,
	})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	return result
}

func TestWriteCSV(t *testing.T) {
	result := testResult(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, result.Schedule); err != nil {
		t.Fatalf("write csv failed: %v", err)
	}

	r := csv.NewReader(&buf)
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}

	if len(records) != len(result.Schedule)+1 {
		t.Fatalf("expected %d rows, got %d", len(result.Schedule)+1, len(records))
	}
	if records[0][0] != "period" || records[0][2] != "balance" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "1" {
		t.Errorf("expected first period 1, got %s", records[1][0])
	}
}

func TestWriteJSON(t *testing.T) {
	result := testResult(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, result); err != nil {
		t.Fatalf("write json failed: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if doc.Interval != "monthly" {
		t.Errorf("expected interval monthly, got %s", doc.Interval)
	}
	if doc.Periods != 36 {
		t.Errorf("expected 36 periods, got %d", doc.Periods)
	}
	if len(doc.Schedule) != 36 {
		t.Errorf("expected 36 schedule rows, got %d", len(doc.Schedule))
	}
	if len(doc.Yearly) != 3 {
		t.Errorf("expected 3 yearly rows, got %d", len(doc.Yearly))
	}
	if doc.Yearly[2].Period != 36 {
		t.Errorf("expected last yearly period 36, got %d", doc.Yearly[2].Period)
	}
}

func TestWriteXLSX(t *testing.T) {
	result := testResult(t)
	path := filepath.Join(t.TempDir(), "plan.xlsx")

	if err := WriteXLSX(path, result); err != nil {
		t.Fatalf("write xlsx failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open back failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Schedule")
	if err != nil {
		t.Fatalf("get rows failed: %v", err)
	}
	if len(rows) != 37 {
		t.Errorf("expected 37 schedule rows, got %d", len(rows))
	}

	yearly, err := f.GetRows("Yearly")
	if err != nil {
		t.Fatalf("get yearly rows failed: %v", err)
	}
	if len(yearly) != 4 {
		t.Errorf("expected 4 yearly rows, got %d", len(yearly))
	}
	if yearly[0][0] != "Year" {
		t.Errorf("unexpected yearly header: %v", yearly[0])
	}
}

func TestLineChartSVG(t *testing.T) {
	result := testResult(t)

	svg := LineChartSVG(result.Yearly(), 800, 400)
	if !strings.Contains(svg, "<svg") {
		t.Fatal("expected svg output")
	}
	for _, color := range []string{ColorTotal, ColorInvested, ColorInterest} {
		if strings.Count(svg, color) == 0 {
			t.Errorf("expected series with color %s", color)
		}
	}
}

func TestLineChartSVGEmpty(t *testing.T) {
	if svg := LineChartSVG(nil, 800, 400); svg != "" {
		t.Error("expected empty output for empty schedule")
	}
}

func TestPieChartSVG(t *testing.T) {
	svg := PieChartSVG(2200, 268, 400)
	if strings.Count(svg, "<path") != 2 {
		t.Errorf("expected 2 slices, got %d", strings.Count(svg, "<path"))
	}

	// Zero interest collapses to a single full circle.
	svg = PieChartSVG(2200, 0, 400)
	if !strings.Contains(svg, "<circle") {
		t.Error("expected full circle for zero interest")
	}
}

func TestStackedBarSVG(t *testing.T) {
	result := testResult(t)

	svg := StackedBarSVG(result.Yearly(), 800, 400)
	// Two rects per year plus the background.
	if strings.Count(svg, "<rect") != 2*3+1 {
		t.Errorf("expected 7 rects, got %d", strings.Count(svg, "<rect"))
	}
}

func TestWriteCharts(t *testing.T) {
	result := testResult(t)
	dir := t.TempDir()

	if err := WriteCharts(dir, result); err != nil {
		t.Fatalf("write charts failed: %v", err)
	}

	for _, name := range []string{"growth_line.svg", "breakdown_pie.svg", "yearly_stacked.svg"} {
		path := filepath.Join(dir, "graphs", name)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("%s not created: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}
