// Package export contains read-only consumers of a simulation result:
// tabular exports (CSV, JSON, XLSX) and SVG chart renderers. None of them
// mutate the result; each can be used independently or skipped.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"compoundlab/internal/growth"
)

// WriteCSV writes the schedule as a four-column table, values rounded to
// cents.
func WriteCSV(w io.Writer, schedule []growth.PeriodRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"period", "invested", "balance", "interest"}); err != nil {
		return err
	}

	for _, rec := range schedule {
		row := []string{
			strconv.Itoa(rec.Period),
			strconv.FormatFloat(growth.RoundCents(rec.Invested), 'f', 2, 64),
			strconv.FormatFloat(growth.RoundCents(rec.Balance), 'f', 2, 64),
			strconv.FormatFloat(growth.RoundCents(rec.Interest), 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
