package output

import (
	"fmt"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists the modelling conventions shared by both calculators.
var DefaultAssumptions = []string{
	"Capitalização mensal; aportes no fim de cada mês",
	fmt.Sprintf("Mês comercial de %d dias para contagem do prazo do IR", dateutil.DaysPerMonth),
	"Poupança isenta de IR",
}

// CompoundAssumptions lists the inputs behind a compound simulation.
func CompoundAssumptions(p domain.SimulationParams) []string {
	return append([]string{
		fmt.Sprintf("Taxa mensal: %s (%s a.a.)",
			FormatPercentage(p.MonthlyRate.Mul(decimalHundred)),
			FormatPercentage(calculation.MonthlyToAnnual(p.MonthlyRate))),
		fmt.Sprintf("Prazo: %s", dateutil.PeriodLabel(domain.ClampMonths(p.Months))),
	}, DefaultAssumptions...)
}

// ComparisonAssumptions lists the rates and tax rule behind a comparison.
func ComparisonAssumptions(p domain.ComparisonParams) []string {
	months := domain.ClampMonths(p.Months)
	taxLine := "IR desativado"
	if p.TaxEnabled {
		taxLine = fmt.Sprintf("IR regressivo sobre os juros da Selic: %s", calculation.BracketLabelForMonths(months))
	}
	return append([]string{
		fmt.Sprintf("Selic: %s a.a. (%s a.m.)", FormatPercentage(p.BenchmarkAnnual),
			FormatPercentage(calculation.AnnualToMonthly(p.BenchmarkAnnual).Mul(decimalHundred))),
		fmt.Sprintf("Poupança: %s a.a.; TR: %s a.a.", FormatPercentage(p.SavingsAnnual), FormatPercentage(p.ReferenceAnnual)),
		taxLine,
		fmt.Sprintf("Prazo: %s", dateutil.PeriodLabel(months)),
	}, DefaultAssumptions...)
}

var decimalHundred = decimal.NewFromInt(100)
