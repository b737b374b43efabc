package output

import (
	"strconv"

	moneydec "github.com/rpgo/growth-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as pt-BR currency ("R$ 1.234,56").
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return moneydec.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a percentage value with 2 decimals and a decimal comma.
func FormatPercentage(amount decimal.Decimal) string { return moneydec.FormatPercent(amount) }

func intToString(i int) string { return strconv.Itoa(i) }
