package output

import (
	"testing"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeComparisonBenchmarkWins(t *testing.T) {
	result := sampleComparison(t, 24, true)
	rec := AnalyzeComparison(result)
	assert.Equal(t, "Selic (líquida)", rec.Winner)
	assert.True(t, rec.WinnerFinal.Equal(result.Finals.BenchmarkNet))
	assert.True(t, rec.Difference.Equal(result.Finals.Difference))
	assert.True(t, rec.PercentageChange.IsPositive())

	gross := AnalyzeComparison(sampleComparison(t, 24, false))
	assert.Equal(t, "Selic (bruta)", gross.Winner)
}

func TestAnalyzeComparisonTieFavoursSavings(t *testing.T) {
	r := calculation.Compare(domain.ComparisonParams{
		Principal:    decimal.NewFromInt(100),
		Contribution: decimal.NewFromInt(10),
		Months:       6,
	})
	rec := AnalyzeComparison(&r)
	assert.Equal(t, "Poupança", rec.Winner)
	assert.True(t, rec.Difference.IsZero())
	assert.True(t, rec.PercentageChange.IsZero())

	assert.Equal(t, Recommendation{}, AnalyzeComparison(nil))
}

func TestAssumptions(t *testing.T) {
	cmp := ComparisonAssumptions(sampleComparison(t, 12, true).Params)
	assert.Contains(t, cmp, "IR regressivo sobre os juros da Selic: 181–360 dias (20%)")
	assert.Contains(t, cmp, "Poupança: 6,17% a.a.; TR: 0,10% a.a.")
	assert.Contains(t, cmp, "Prazo: 1 ano")

	compound := CompoundAssumptions(sampleSimulation(t).Params)
	assert.Equal(t, "Taxa mensal: 1,00% (12,68% a.a.)", compound[0])
	assert.Equal(t, "Prazo: 3 meses", compound[1])
}
