package calculation

import (
	"github.com/rpgo/growth-calculator/pkg/dateutil"
	moneydec "github.com/rpgo/growth-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Regressive withholding on interest from fixed-income investments,
//    selected only by the holding period in days.
// 2. Holding periods use a fixed 30-day month (see dateutil.ElapsedDays).
// 3. The savings account is exempt; only the benchmark series is taxed.
// 4. Per-month net values clamp gross interest at zero so negative rates
//    never produce a tax credit.

// TaxBracket is a half-open holding-period interval (MinDays, MaxDays] with
// its withholding rate. MaxDays == 0 marks the open-ended top bracket.
type TaxBracket struct {
	MinDays int
	MaxDays int
	Rate    decimal.Decimal
	Label   string
}

// Contains reports whether days falls inside the bracket.
func (b TaxBracket) Contains(days int) bool {
	if days <= b.MinDays {
		return false
	}
	return b.MaxDays == 0 || days <= b.MaxDays
}

// DefaultBrackets is the regressive table, ordered by holding period.
var DefaultBrackets = []TaxBracket{
	{MinDays: 0, MaxDays: 180, Rate: decimal.NewFromFloat(0.225), Label: "0–180 dias (22,5%)"},
	{MinDays: 180, MaxDays: 360, Rate: decimal.NewFromFloat(0.20), Label: "181–360 dias (20%)"},
	{MinDays: 360, MaxDays: 720, Rate: decimal.NewFromFloat(0.175), Label: "361–720 dias (17,5%)"},
	{MinDays: 720, MaxDays: 0, Rate: decimal.NewFromFloat(0.15), Label: ">720 dias (15%)"},
}

// BracketFor returns the bracket for a holding period. Periods of zero days or
// less fall into the first bracket.
func BracketFor(days int) TaxBracket {
	for _, b := range DefaultBrackets {
		if b.Contains(days) {
			return b
		}
	}
	return DefaultBrackets[0]
}

// BracketRate returns the withholding rate for a holding period in days.
func BracketRate(days int) decimal.Decimal {
	return BracketFor(days).Rate
}

// BracketLabelForMonths returns the display label of the bracket reached after months.
func BracketLabelForMonths(months int) string {
	return BracketFor(dateutil.ElapsedDays(months)).Label
}

// ApplyFinal returns the interest left after withholding on a final total.
func ApplyFinal(totalInterest decimal.Decimal, days int, enabled bool) decimal.Decimal {
	if !enabled {
		return totalInterest
	}
	return moneydec.NewMoneyFromDecimal(totalInterest).ApplyTaxRate(BracketRate(days)).Decimal
}

// ApplyToSeries turns a gross balance series into a net-of-tax series.
// For each month idx > 0 the holding period is idx*30 days, contributions so
// far are principal + contribution*idx, and gross interest is the excess of
// the balance over them (never below zero). Index 0 passes through.
func ApplyToSeries(series []decimal.Decimal, principal, contribution decimal.Decimal, enabled bool) []decimal.Decimal {
	out := make([]decimal.Decimal, len(series))
	for idx, balance := range series {
		if idx == 0 {
			out[idx] = balance
			continue
		}
		contributed := principal.Add(contribution.Mul(decimal.NewFromInt(int64(idx))))
		gross := decimal.Max(decimal.Zero, balance.Sub(contributed))
		rate := decimal.Zero
		if enabled {
			rate = BracketRate(dateutil.ElapsedDays(idx))
		}
		out[idx] = contributed.Add(gross.Mul(decimal.NewFromInt(1).Sub(rate)))
	}
	return out
}
