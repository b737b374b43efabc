package decimal

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CurrencyCode is the only currency the calculators deal with.
const CurrencyCode = money.BRL

// brl mirrors the pt-BR locale: "R$ 1.234,56", "-R$ 0,50".
var brl = newBRLFormatter()

func newBRLFormatter() *money.Formatter {
	cur := money.GetCurrency(CurrencyCode)
	return money.NewFormatter(cur.Fraction, cur.Decimal, cur.Thousand, cur.Grapheme, "$ 1")
}

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents (half away from zero)
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// ApplyTaxRate returns the amount left after withholding rate.
func (m Money) ApplyTaxRate(rate decimal.Decimal) Money {
	tax := m.Decimal.Mul(rate)
	return Money{m.Decimal.Sub(tax)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// maxFormattable bounds the amounts whose cents fit in an int64 for go-money.
var maxFormattable = decimal.New(1, 16)

// Cents returns the amount in minor units, rounded. Amounts of 1e16 or more
// overflow int64.
func (m Money) Cents() int64 {
	return m.Decimal.Round(2).Shift(2).IntPart()
}

// String returns the plain amount with two decimals ("1234.50").
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as pt-BR currency, e.g. "R$ 1.234,50".
func (m Money) Format() string {
	if m.Decimal.Abs().LessThan(maxFormattable) {
		return brl.Format(m.Cents())
	}
	return formatLarge(m.Decimal)
}

// formatLarge groups the digits of d itself in the pt-BR layout used by brl.
func formatLarge(d decimal.Decimal) string {
	digits, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString("R$ ")
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

// FormatPercent renders a percentage value with a decimal comma: 12.345 -> "12,35%".
func FormatPercent(pct decimal.Decimal) string {
	return strings.Replace(pct.StringFixed(2), ".", ",", 1) + "%"
}
