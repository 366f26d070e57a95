package growth

import "fmt"

// Simulate runs the compounding recurrence for the given parameters and
// returns the full schedule plus its summary. It either returns a complete
// result or an error wrapping [ErrInvalidParam]; no partial schedules.
func Simulate(p Params) (*Result, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	rate := p.PeriodicRate()
	total := p.TotalPeriods()

	balance := p.Principal
	invested := p.Principal
	schedule := make([]PeriodRecord, 0, total)

	for period := 1; period <= total; period++ {
		// Interest accrues on the balance held during the period,
		// then the deposit lands. Order matters.
		balance *= 1 + rate
		balance += p.Deposit
		invested += p.Deposit

		schedule = append(schedule, PeriodRecord{
			Period:   period,
			Invested: invested,
			Balance:  balance,
			Interest: balance - invested,
		})
	}

	return &Result{
		Params:   p,
		Schedule: schedule,
		Summary:  summarize(p, schedule),
	}, nil
}

func validate(p Params) error {
	if p.Principal < 0 {
		return &ParamError{Field: "principal", Message: fmt.Sprintf("must be non-negative, got %.2f", p.Principal)}
	}
	if p.Deposit < 0 {
		return &ParamError{Field: "deposit", Message: fmt.Sprintf("must be non-negative, got %.2f", p.Deposit)}
	}
	if p.Years < 1 {
		return &ParamError{Field: "years", Message: fmt.Sprintf("must be at least 1, got %d", p.Years)}
	}
	if p.Interval.PeriodsPerYear() == 0 {
		return &ParamError{Field: "interval", Message: fmt.Sprintf("unknown interval %d", int(p.Interval))}
	}
	return nil
}
