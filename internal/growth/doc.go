// Package growth implements the compounding simulator: a deterministic,
// periodized model of an investment receiving regular deposits and
// accruing fixed-rate compound interest.
//
// The package exposes a single entry point:
//
//	result, err := growth.Simulate(growth.Params{
//	    Principal:         1000,
//	    AnnualRatePercent: 12,
//	    Interval:          growth.Monthly,
//	    Deposit:           100,
//	    Years:             10,
//	})
//
// [Simulate] is a pure function. It holds no state between calls and may
// be invoked concurrently from independent callers.
//
// # Compounding convention
//
// Each period applies interest to the balance held during the period and
// then adds the deposit (interest-then-deposit). The alternative ordering
// compounds differently, so the convention is fixed and regression-tested.
//
// # Precision
//
// All arithmetic is float64. Values are kept at full precision in the
// schedule; rounding to cents is left to presentation and serialization.
package growth
