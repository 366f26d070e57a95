package growth

import (
	"fmt"
	"strings"
)

// Interval is the cadence at which deposits land and interest compounds.
type Interval int

const (
	Daily Interval = iota
	Weekly
	Monthly
	Yearly
)

var intervalNames = map[Interval]string{
	Daily:   "daily",
	Weekly:  "weekly",
	Monthly: "monthly",
	Yearly:  "yearly",
}

var intervalPeriods = map[Interval]int{
	Daily:   365,
	Weekly:  52,
	Monthly: 12,
	Yearly:  1,
}

// Intervals lists all supported intervals in menu order.
func Intervals() []Interval {
	return []Interval{Daily, Weekly, Monthly, Yearly}
}

func (iv Interval) String() string {
	if name, ok := intervalNames[iv]; ok {
		return name
	}
	return fmt.Sprintf("interval(%d)", int(iv))
}

// PeriodsPerYear returns the number of compounding periods in one year,
// or 0 for an unrecognized interval.
func (iv Interval) PeriodsPerYear() int {
	return intervalPeriods[iv]
}

// ParseInterval accepts the full interval name or its single-letter code
// (d/w/m/y), case-insensitively.
func ParseInterval(s string) (Interval, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "d":
		return Daily, nil
	case "weekly", "w":
		return Weekly, nil
	case "monthly", "m":
		return Monthly, nil
	case "yearly", "y":
		return Yearly, nil
	}
	return 0, &ParamError{Field: "interval", Message: fmt.Sprintf("unknown interval %q", s)}
}

// Params is the immutable input to a single simulation run.
type Params struct {
	Principal         float64
	AnnualRatePercent float64
	Interval          Interval
	Deposit           float64
	Years             int
}

// PeriodicRate is the per-period rate implied by the annual rate and the
// interval, as a fraction (12%/monthly -> 0.01).
func (p Params) PeriodicRate() float64 {
	return p.AnnualRatePercent / 100 / float64(p.Interval.PeriodsPerYear())
}

// TotalPeriods is the full length of the schedule.
func (p Params) TotalPeriods() int {
	return p.Years * p.Interval.PeriodsPerYear()
}

func (p Params) String() string {
	return fmt.Sprintf("principal=%.2f rate=%.2f%% interval=%s deposit=%.2f years=%d",
		p.Principal, p.AnnualRatePercent, p.Interval, p.Deposit, p.Years)
}

// PeriodRecord is the state at the end of one compounding period, after
// interest has accrued and the period's deposit has landed.
type PeriodRecord struct {
	Period   int     // 1-based
	Invested float64 // principal + all deposits to date
	Balance  float64
	Interest float64 // Balance - Invested
}

// Summary holds the derived statistics of a finished run.
type Summary struct {
	Invested    float64
	Balance     float64
	Interest    float64
	ROIPercent  float64
	CAGRPercent float64
	// InterestPerDollar is interest earned per dollar invested.
	InterestPerDollar float64
}

// Result is the complete output of one simulation run. It is owned by the
// caller; the simulator retains nothing.
type Result struct {
	Params   Params
	Schedule []PeriodRecord
	Summary  Summary
}

// Final returns the last record of the schedule.
func (r *Result) Final() PeriodRecord {
	return r.Schedule[len(r.Schedule)-1]
}

// Yearly returns the schedule sampled at exact year boundaries: the
// records whose period index is a multiple of the periods-per-year count.
// The records are shared with Schedule, not recomputed, so both views
// agree exactly.
func (r *Result) Yearly() []PeriodRecord {
	perYear := r.Params.Interval.PeriodsPerYear()
	out := make([]PeriodRecord, 0, r.Params.Years)
	for i := perYear - 1; i < len(r.Schedule); i += perYear {
		out = append(out, r.Schedule[i])
	}
	return out
}
