package export

import (
	"encoding/json"
	"io"
	"os"

	"compoundlab/internal/growth"
)

type Document struct {
	Principal float64        `json:"principal"`
	Rate      float64        `json:"rate"`
	Interval  string         `json:"interval"`
	Deposit   float64        `json:"deposit"`
	Years     int            `json:"years"`
	Periods   int            `json:"periods"`
	Summary   growth.Summary `json:"summary"`
	Schedule  []Row          `json:"schedule"`
	Yearly    []Row          `json:"yearly"`
}

type Row struct {
	Period   int     `json:"period"`
	Invested float64 `json:"invested"`
	Balance  float64 `json:"balance"`
	Interest float64 `json:"interest"`
}

func rows(schedule []growth.PeriodRecord) []Row {
	out := make([]Row, len(schedule))
	for i, rec := range schedule {
		out[i] = Row{
			Period:   rec.Period,
			Invested: growth.RoundCents(rec.Invested),
			Balance:  growth.RoundCents(rec.Balance),
			Interest: growth.RoundCents(rec.Interest),
		}
	}
	return out
}

// NewDocument snapshots a result into its serializable form, values
// rounded to cents.
func NewDocument(result *growth.Result) Document {
	p := result.Params
	return Document{
		Principal: p.Principal,
		Rate:      p.AnnualRatePercent,
		Interval:  p.Interval.String(),
		Deposit:   p.Deposit,
		Years:     p.Years,
		Periods:   len(result.Schedule),
		Summary:   result.Summary,
		Schedule:  rows(result.Schedule),
		Yearly:    rows(result.Yearly()),
	}
}

func WriteJSON(w io.Writer, result *growth.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(result))
}

func WriteJSONFile(path string, result *growth.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, result)
}
