package growth

import "math"

// summarize derives the headline statistics from a finished schedule.
// Degenerate zero-invested runs (no principal, no deposits) report zero
// ratios instead of NaN.
func summarize(p Params, schedule []PeriodRecord) Summary {
	final := schedule[len(schedule)-1]

	s := Summary{
		Invested: final.Invested,
		Balance:  final.Balance,
		Interest: final.Interest,
	}

	if final.Invested != 0 {
		s.ROIPercent = final.Interest / final.Invested * 100
		s.CAGRPercent = (math.Pow(final.Balance/final.Invested, 1/float64(p.Years)) - 1) * 100
		s.InterestPerDollar = final.Interest / final.Invested
	}

	return s
}

// RoundCents rounds a monetary value to two decimals for presentation and
// serialization. The schedule itself stays at full float64 precision.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
