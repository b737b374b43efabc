package output

import (
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation names the better of the two investments in a comparison.
type Recommendation struct {
	Winner           string          `json:"winner"`
	WinnerFinal      decimal.Decimal `json:"winner_final"`
	Difference       decimal.Decimal `json:"difference"`
	PercentageChange decimal.Decimal `json:"percentage_change"`
}

// AnalyzeComparison picks the investment with the larger final amount, using
// the displayed benchmark (net when tax is on). A tie favours the savings
// account, which carries no tax or custody risk in this model.
func AnalyzeComparison(result *domain.ComparisonResult) Recommendation {
	if result == nil {
		return Recommendation{}
	}
	savings := result.Finals.Savings
	benchmark := result.Finals.BenchmarkGross
	label := "Selic (bruta)"
	if result.Params.TaxEnabled {
		benchmark = result.Finals.BenchmarkNet
		label = "Selic (líquida)"
	}

	rec := Recommendation{Winner: "Poupança", WinnerFinal: savings, Difference: benchmark.Sub(savings)}
	if benchmark.GreaterThan(savings) {
		rec.Winner = label
		rec.WinnerFinal = benchmark
	}
	if !savings.IsZero() {
		rec.PercentageChange = rec.Difference.Div(savings).Mul(decimalHundred)
	}
	return rec
}
