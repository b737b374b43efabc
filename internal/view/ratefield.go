package view

import (
	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/shopspring/decimal"
)

// RateMode is the mode of a derived-then-editable rate field.
type RateMode int

const (
	// RateAuto shows the value derived from other inputs.
	RateAuto RateMode = iota
	// RateManual shows a value typed by the user.
	RateManual
)

// resetTolerance is the smallest difference that counts as a change on reset.
var resetTolerance = decimal.NewFromFloat(1e-4)

// SavingsRateField is the savings annual rate input: Auto follows the
// benchmark and reference rates, Manual keeps what the user typed until Reset.
type SavingsRateField struct {
	mode   RateMode
	manual decimal.Decimal
}

// Mode returns the current mode.
func (f *SavingsRateField) Mode() RateMode { return f.mode }

// Auto reports whether the field follows the derived rate.
func (f *SavingsRateField) Auto() bool { return f.mode == RateAuto }

// Value returns the rate in effect: the derived rate rounded to two places in
// Auto mode, the typed value in Manual mode.
func (f *SavingsRateField) Value(benchmark, reference decimal.Decimal) decimal.Decimal {
	if f.mode == RateManual {
		return f.manual
	}
	return config.AutoSavingsRate(benchmark, reference)
}

// Edit switches to Manual with the given value.
func (f *SavingsRateField) Edit(v decimal.Decimal) {
	f.mode = RateManual
	f.manual = v
}

// Reset switches back to Auto and reports whether the effective value moved.
func (f *SavingsRateField) Reset(benchmark, reference decimal.Decimal) (changed bool) {
	if f.mode == RateAuto {
		return false
	}
	before := f.manual
	f.mode = RateAuto
	f.manual = decimal.Zero
	after := f.Value(benchmark, reference)
	return before.Sub(after).Abs().GreaterThan(resetTolerance)
}
