package export

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"compoundlab/internal/growth"
)

// Chart palette, shared with the terminal front-end.
const (
	ColorInvested = "#e09f3e"
	ColorInterest = "#55a630"
	ColorTotal    = "#0096c7"
	colorBg       = "#ffffff"
	colorAxis     = "#888888"
)

// WriteCharts renders the three standard charts into dir/graphs:
// growth line chart, final-breakdown pie chart, yearly stacked bars.
func WriteCharts(dir string, result *growth.Result) error {
	graphsDir := filepath.Join(dir, "graphs")
	if err := os.MkdirAll(graphsDir, 0755); err != nil {
		return err
	}

	yearly := result.Yearly()
	final := result.Final()

	charts := map[string]string{
		"growth_line.svg":    LineChartSVG(yearly, 800, 400),
		"breakdown_pie.svg":  PieChartSVG(final.Invested, final.Interest, 400),
		"yearly_stacked.svg": StackedBarSVG(yearly, 800, 400),
	}

	for name, svg := range charts {
		if err := os.WriteFile(filepath.Join(graphsDir, name), []byte(svg), 0644); err != nil {
			return err
		}
	}

	return nil
}

// LineChartSVG draws balance, invested and interest as polylines over the
// yearly view.
func LineChartSVG(yearly []growth.PeriodRecord, width, height int) string {
	if len(yearly) == 0 {
		return ""
	}

	maxVal := 0.0
	minVal := 0.0
	for _, rec := range yearly {
		maxVal = math.Max(maxVal, rec.Balance)
		minVal = math.Min(minVal, rec.Interest)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	var sb strings.Builder
	svgHeader(&sb, width, height)

	series := []struct {
		color string
		value func(growth.PeriodRecord) float64
	}{
		{ColorTotal, func(r growth.PeriodRecord) float64 { return r.Balance }},
		{ColorInvested, func(r growth.PeriodRecord) float64 { return r.Invested }},
		{ColorInterest, func(r growth.PeriodRecord) float64 { return r.Interest }},
	}

	for _, s := range series {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="2" d="M`, s.color))
		for i, rec := range yearly {
			x := chartX(i, len(yearly), width)
			y := chartY(s.value(rec), minVal, maxVal, height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	axis(&sb, minVal, maxVal, width, height)
	sb.WriteString("</svg>")
	return sb.String()
}

// PieChartSVG draws the final amount split into invested and interest
// slices. Non-positive interest collapses to a full invested circle.
func PieChartSVG(invested, interest float64, size int) string {
	var sb strings.Builder
	svgHeader(&sb, size, size)

	cx := float64(size) / 2
	cy := float64(size) / 2
	r := float64(size)*0.5 - 20

	total := invested + interest
	if interest <= 0 || total <= 0 {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
			cx, cy, r, ColorInvested))
		sb.WriteString("</svg>")
		return sb.String()
	}

	// Invested slice starts at twelve o'clock, interest takes the rest.
	frac := invested / total
	angle := frac * 2 * math.Pi
	startX, startY := cx, cy-r
	endX := cx + r*math.Sin(angle)
	endY := cy - r*math.Cos(angle)

	largeArc := 0
	if frac > 0.5 {
		largeArc = 1
	}

	sb.WriteString(fmt.Sprintf(`<path fill="%s" d="M%.1f,%.1f L%.1f,%.1f A%.1f,%.1f 0 %d 1 %.1f,%.1f Z"/>`+"\n",
		ColorInvested, cx, cy, startX, startY, r, r, largeArc, endX, endY))
	sb.WriteString(fmt.Sprintf(`<path fill="%s" d="M%.1f,%.1f L%.1f,%.1f A%.1f,%.1f 0 %d 1 %.1f,%.1f Z"/>`+"\n",
		ColorInterest, cx, cy, endX, endY, r, r, 1-largeArc, startX, startY))

	sb.WriteString("</svg>")
	return sb.String()
}

// StackedBarSVG draws one bar per year, invested below, interest stacked
// on top. Negative interest is clamped to the invested level.
func StackedBarSVG(yearly []growth.PeriodRecord, width, height int) string {
	if len(yearly) == 0 {
		return ""
	}

	maxVal := 0.0
	for _, rec := range yearly {
		maxVal = math.Max(maxVal, rec.Invested+math.Max(rec.Interest, 0))
	}
	if maxVal == 0 {
		maxVal = 1
	}

	var sb strings.Builder
	svgHeader(&sb, width, height)

	pad := 40.0
	plotW := float64(width) - 2*pad
	plotH := float64(height) - 2*pad
	barW := plotW / float64(len(yearly)) * 0.8
	gap := plotW / float64(len(yearly)) * 0.2

	for i, rec := range yearly {
		x := pad + float64(i)*(barW+gap)

		invH := rec.Invested / maxVal * plotH
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			x, pad+plotH-invH, barW, invH, ColorInvested))

		if rec.Interest > 0 {
			intH := rec.Interest / maxVal * plotH
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
				x, pad+plotH-invH-intH, barW, intH, ColorInterest))
		}
	}

	axis(&sb, 0, maxVal, width, height)
	sb.WriteString("</svg>")
	return sb.String()
}

func svgHeader(sb *strings.Builder, width, height int) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, colorBg))
}

func chartX(i, n, width int) float64 {
	pad := 40.0
	if n == 1 {
		return pad
	}
	return pad + float64(i)/float64(n-1)*(float64(width)-2*pad)
}

func chartY(v, minVal, maxVal float64, height int) float64 {
	pad := 40.0
	plotH := float64(height) - 2*pad
	return pad + plotH - (v-minVal)/(maxVal-minVal)*plotH
}

func axis(sb *strings.Builder, minVal, maxVal float64, width, height int) {
	pad := 40.0
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`+"\n",
		pad, pad, pad, float64(height)-pad, colorAxis))
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`+"\n",
		pad, float64(height)-pad, float64(width)-pad, float64(height)-pad, colorAxis))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="12" fill="%s">%.0f</text>`+"\n",
		4.0, pad, colorAxis, maxVal))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="12" fill="%s">%.0f</text>`+"\n",
		4.0, float64(height)-pad, colorAxis, minVal))
}
