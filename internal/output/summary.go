package output

import (
	"github.com/rpgo/growth-calculator/internal/domain"
)

// Summarize reads the headline KPIs of a simulation.
func Summarize(result *domain.SimulationResult) domain.Summary {
	if result == nil {
		return domain.Summary{}
	}
	return domain.Summary{
		FinalBalance:     result.FinalBalance,
		TotalContributed: result.TotalContributed,
		AccruedInterest:  result.AccruedInterest,
	}
}

// KPI is a labelled, already formatted headline figure.
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CompoundKPIs returns the compound calculator headline cards.
func CompoundKPIs(s domain.Summary) []KPI {
	return []KPI{
		{Label: "Montante", Value: FormatCurrency(s.FinalBalance)},
		{Label: "Total Aportado", Value: FormatCurrency(s.TotalContributed)},
		{Label: "Juros Acumulados", Value: FormatCurrency(s.AccruedInterest)},
	}
}

// ComparisonKPIs returns the comparison calculator headline cards.
func ComparisonKPIs(f domain.ComparisonFinals) []KPI {
	return []KPI{
		{Label: "Montante Poupança", Value: FormatCurrency(f.Savings)},
		{Label: "Montante Selic (bruta)", Value: FormatCurrency(f.BenchmarkGross)},
		{Label: "Montante Selic (líquida)", Value: FormatCurrency(f.BenchmarkNet)},
		{Label: "Diferença", Value: FormatCurrency(f.Difference)},
	}
}
