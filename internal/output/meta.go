package output

import (
	"strings"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// TaxChip is the tax status shown next to the comparison table title.
func TaxChip(taxEnabled bool, months int) string {
	if !taxEnabled {
		return "IR desativado"
	}
	return "IR regressivo — " + calculation.BracketLabelForMonths(months)
}

// TaxBadge is the bracket badge shown under the form. It is hidden (empty)
// while tax is off.
func TaxBadge(taxEnabled bool, months int) string {
	if !taxEnabled {
		return ""
	}
	return "Faixa de IR: " + calculation.BracketLabelForMonths(months)
}

// RatesLine renders the annual rates in use: "Selic 13,75%  •  Poup 6,17%  •  TR 0,10%".
func RatesLine(benchmark, savings, reference decimal.Decimal) string {
	return "Selic " + FormatPercentage(benchmark) +
		"  •  Poup " + FormatPercentage(savings) +
		"  •  TR " + FormatPercentage(reference)
}

// DifferenceStat renders the net benchmark minus savings.
func DifferenceStat(result *domain.ComparisonResult) string {
	if result == nil {
		return PlaceholderCell
	}
	return "Diferença: " + FormatCurrency(result.Finals.Difference)
}

// TableHeader returns the comparison table column titles. The benchmark
// column follows the series actually displayed.
func TableHeader(taxEnabled bool) []string {
	if taxEnabled {
		return []string{"Mês", "Poupança", "Selic (líquida)"}
	}
	return []string{"Mês", "Poupança", "Selic (bruta)"}
}

// TableMeta groups the comparison table header texts.
type TableMeta struct {
	Chip       string `json:"chip"`
	Period     string `json:"period"`
	Rates      string `json:"rates"`
	Difference string `json:"difference"`
}

// ComparisonMeta builds the header texts for the given inputs and (possibly
// nil) last result.
func ComparisonMeta(p domain.ComparisonParams, result *domain.ComparisonResult) TableMeta {
	months := domain.ClampMonths(p.Months)
	return TableMeta{
		Chip:       TaxChip(p.TaxEnabled, months),
		Period:     dateutil.PeriodLabel(months),
		Rates:      RatesLine(p.BenchmarkAnnual, p.SavingsAnnual, p.ReferenceAnnual),
		Difference: DifferenceStat(result),
	}
}

// CopySummary is the plain text put on the clipboard by "Copiar resumo".
// The amounts line is left out until a result exists.
func CopySummary(p domain.ComparisonParams, result *domain.ComparisonResult) string {
	months := domain.ClampMonths(p.Months)
	if result != nil {
		months = result.Months()
	}
	lines := []string{
		"Detalhe mensal",
		TaxChip(p.TaxEnabled, months),
		"Período: " + dateutil.PeriodLabel(months),
		"Taxas — Selic " + p.BenchmarkAnnual.StringFixed(2) + "% • Poup " +
			p.SavingsAnnual.StringFixed(2) + "% • TR " + p.ReferenceAnnual.StringFixed(2) + "%",
	}
	if result != nil {
		lines = append(lines, "Montantes — Poup: "+FormatCurrency(result.Finals.Savings)+
			" • Selic (líq.): "+FormatCurrency(result.Finals.BenchmarkNet)+
			" • Dif: "+FormatCurrency(result.Finals.Difference))
	}
	return strings.Join(lines, "\n")
}

// ScenarioLine describes a saved compound scenario in the list:
// "Inicial R$ 1.000,00 • Aporte R$ 100,00 • Taxa 1,000% a.m. • 12 meses".
func ScenarioLine(s domain.Scenario) string {
	pct := s.MonthlyRate.Mul(decimal.NewFromInt(100)).StringFixed(3)
	return "Inicial " + FormatCurrency(s.Principal) +
		" • Aporte " + FormatCurrency(s.Contribution) +
		" • Taxa " + strings.Replace(pct, ".", ",", 1) + "% a.m." +
		" • " + intToString(domain.ClampMonths(s.Months)) + " meses"
}
