package viz

import (
	"strings"

	"github.com/guptarohit/asciigraph"

	"compoundlab/internal/growth"
)

// GrowthPlots renders the yearly balance, invested and interest series as
// stacked ascii charts.
func GrowthPlots(yearly []growth.PeriodRecord, width, height int) string {
	if len(yearly) == 0 {
		return ""
	}

	series := []struct {
		caption string
		value   func(growth.PeriodRecord) float64
	}{
		{"total amount", func(r growth.PeriodRecord) float64 { return r.Balance }},
		{"total invested", func(r growth.PeriodRecord) float64 { return r.Invested }},
		{"interest earned", func(r growth.PeriodRecord) float64 { return r.Interest }},
	}

	var b strings.Builder
	for i, s := range series {
		data := make([]float64, len(yearly))
		for j, rec := range yearly {
			data[j] = s.value(rec)
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(s.caption),
		)
		b.WriteString(graph)
		b.WriteString("\n")
		if i < len(series)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
