package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// SAVINGS RATE RULE:
//
// Above the benchmark threshold the savings account pays a fixed 0.5% a month
// plus the reference rate; at or below it, 70% of the benchmark plus the
// reference rate. Both regimes are annual percentages.

var (
	// SavingsThreshold is the benchmark annual rate (%) above which the fixed regime applies.
	SavingsThreshold = decimal.NewFromFloat(8.5)
	// SavingsFixedMonthly is the fixed monthly rate of the high regime.
	SavingsFixedMonthly = decimal.NewFromFloat(0.005)
	// SavingsBenchmarkShare is the benchmark share paid in the low regime.
	SavingsBenchmarkShare = decimal.NewFromFloat(0.7)

	totalLoss = decimal.NewFromInt(-1)
	hundred   = decimal.NewFromInt(100)
	twelve    = decimal.NewFromInt(12)
)

// AnnualToMonthly converts an annual percentage into the equivalent monthly
// compounding rate, as a fraction: (1+annual/100)^(1/12) - 1.
// Negative rates are accepted; -100% a year or less is a total loss and maps
// to -1.
func AnnualToMonthly(annualPercent decimal.Decimal) decimal.Decimal {
	base := 1 + annualPercent.InexactFloat64()/100
	if !(base > 0) {
		return totalLoss
	}
	if math.IsInf(base, 1) {
		base = math.MaxFloat64
	}
	return decimal.NewFromFloat(math.Pow(base, 1.0/12) - 1)
}

// MonthlyToAnnual converts a monthly fraction into an annual percentage:
// ((1+monthly)^12 - 1) * 100.
func MonthlyToAnnual(monthly decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(monthly).Pow(twelve).Sub(decimal.NewFromInt(1)).Mul(hundred)
}

// DerivedSavingsRate returns the savings account annual rate (%) for the given
// benchmark and reference annual rates (%). The threshold itself belongs to
// the proportional regime.
func DerivedSavingsRate(benchmarkAnnual, referenceAnnual decimal.Decimal) decimal.Decimal {
	if benchmarkAnnual.GreaterThan(SavingsThreshold) {
		return MonthlyToAnnual(SavingsFixedMonthly).Add(referenceAnnual)
	}
	return SavingsBenchmarkShare.Mul(benchmarkAnnual).Add(referenceAnnual)
}
