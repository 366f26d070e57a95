package viz

import (
	"fmt"
	"strings"

	"compoundlab/internal/growth"
)

// FormatCurrency renders a value as dollars with thousands separators,
// e.g. 1234567.891 -> "$1,234,567.89".
func FormatCurrency(v float64) string {
	v = growth.RoundCents(v)

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	s := fmt.Sprintf("%.2f", v)
	intPart := s[:len(s)-3]
	frac := s[len(s)-3:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return sign + "$" + strings.Join(groups, ",") + frac
}

// SummaryPanel renders the investment results block shown after a run.
func SummaryPanel(s growth.Summary) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Investment Results") + "\n")

	rows := []struct {
		label string
		value string
	}{
		{"Total invested", FormatCurrency(s.Invested)},
		{"Interest earned", FormatCurrency(s.Interest)},
		{"Final amount", FormatCurrency(s.Balance)},
		{"Return on investment", fmt.Sprintf("%.2f%%", s.ROIPercent)},
		{"Compound annual growth", fmt.Sprintf("%.2f%%", s.CAGRPercent)},
		{"Interest per $1 invested", fmt.Sprintf("$%.2f", s.InterestPerDollar)},
	}

	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-26s", row.label)),
			valueStyle.Render(row.value)))
	}

	return b.String()
}
