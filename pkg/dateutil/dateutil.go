package dateutil

import (
	"fmt"
	"strings"
)

// DaysPerMonth is the fixed month length used for holding-period tax rules.
// It is a convention, not a calendar computation.
const DaysPerMonth = 30

// MaxMonths is the longest horizon the calculators simulate (100 years).
const MaxMonths = 1200

// ElapsedDays returns the holding period in days after the given number of months.
func ElapsedDays(months int) int {
	return months * DaysPerMonth
}

// HorizonUnit selects how a horizon value is interpreted.
type HorizonUnit string

const (
	UnitMonths HorizonUnit = "meses"
	UnitYears  HorizonUnit = "anos"
)

// ParseHorizonUnit maps user input to a unit. Anything unknown is months.
func ParseHorizonUnit(s string) HorizonUnit {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "anos", "ano", "years", "year", "y", "a":
		return UnitYears
	default:
		return UnitMonths
	}
}

// MonthsFromHorizon converts a horizon in the given unit to whole months,
// between one and MaxMonths. Non-positive periods count as one unit.
func MonthsFromHorizon(period float64, unit HorizonUnit) int {
	if !(period > 0) {
		period = 1
	}
	months := period
	if unit == UnitYears {
		months = period * 12
	}
	if months > MaxMonths {
		return MaxMonths
	}
	m := int(months)
	if m < 1 {
		return 1
	}
	return m
}

// PeriodLabel renders a month count as "X anos • Y meses", omitting empty parts.
// Zero months renders as "—".
func PeriodLabel(months int) string {
	years, rest := months/12, months%12
	var parts []string
	if years > 0 {
		unit := "ano"
		if years > 1 {
			unit = "anos"
		}
		parts = append(parts, fmt.Sprintf("%d %s", years, unit))
	}
	if rest > 0 {
		unit := "mês"
		if rest > 1 {
			unit = "meses"
		}
		parts = append(parts, fmt.Sprintf("%d %s", rest, unit))
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, " • ")
}

// MonthLabels returns the chart labels M0..Mn for a horizon of n months.
func MonthLabels(months int) []string {
	if months < 0 {
		months = 0
	}
	labels := make([]string, months+1)
	for i := range labels {
		labels[i] = fmt.Sprintf("M%d", i)
	}
	return labels
}
