package calculation

import (
	"testing"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comparisonParams(months int, tax bool) domain.ComparisonParams {
	benchmark := decimal.NewFromFloat(13.75)
	reference := decimal.NewFromFloat(0.1)
	return domain.ComparisonParams{
		Principal:       decimal.NewFromInt(10000),
		Contribution:    decimal.NewFromInt(500),
		BenchmarkAnnual: benchmark,
		SavingsAnnual:   DerivedSavingsRate(benchmark, reference),
		ReferenceAnnual: reference,
		Months:          months,
		TaxEnabled:      tax,
	}
}

func TestCompare_SeriesShape(t *testing.T) {
	res := Compare(comparisonParams(24, true))

	require.Len(t, res.Labels, 25)
	assert.Equal(t, "M0", res.Labels[0])
	assert.Equal(t, "M24", res.Labels[24])
	assert.Len(t, res.Savings, 25)
	assert.Len(t, res.BenchmarkGross, 25)
	assert.Len(t, res.BenchmarkNet, 25)
	assert.Equal(t, 24, res.Months())

	for _, s := range [][]decimal.Decimal{res.Savings, res.BenchmarkGross, res.BenchmarkNet} {
		assert.True(t, s[0].Equal(decimal.NewFromInt(10000)))
	}
}

func TestCompare_Finals(t *testing.T) {
	p := comparisonParams(24, true)
	res := Compare(p)

	gross := Simulate(domain.SimulationParams{
		Principal:    p.Principal,
		Contribution: p.Contribution,
		MonthlyRate:  AnnualToMonthly(p.BenchmarkAnnual),
		Months:       24,
	})

	assert.True(t, res.Finals.BenchmarkGross.Equal(gross.FinalBalance))
	// 24 months = 720 days -> 17.5%
	assert.True(t, res.TaxRate.Equal(decimal.NewFromFloat(0.175)))
	wantNet := gross.TotalContributed.Add(gross.AccruedInterest.Mul(decimal.NewFromFloat(0.825)))
	assert.True(t, res.Finals.BenchmarkNet.Equal(wantNet), "net %s want %s", res.Finals.BenchmarkNet, wantNet)
	assert.True(t, res.Finals.Difference.Equal(res.Finals.BenchmarkNet.Sub(res.Finals.Savings)))

	// with positive interest the series end matches the final
	assert.True(t, res.BenchmarkNet[24].Equal(res.Finals.BenchmarkNet))
	assert.True(t, res.Finals.BenchmarkNet.LessThan(res.Finals.BenchmarkGross))
}

func TestCompare_TaxDisabled(t *testing.T) {
	res := Compare(comparisonParams(12, false))

	assert.True(t, res.TaxRate.IsZero())
	assert.True(t, res.Finals.BenchmarkNet.Equal(res.Finals.BenchmarkGross))
	for i := range res.BenchmarkGross {
		assert.True(t, res.BenchmarkNet[i].Equal(res.BenchmarkGross[i]), "index %d", i)
	}
	assert.Equal(t, res.BenchmarkGross, res.DisplayedBenchmark())
}

func TestCompare_DisplayedBenchmarkFollowsTax(t *testing.T) {
	res := Compare(comparisonParams(12, true))
	assert.Equal(t, res.BenchmarkNet, res.DisplayedBenchmark())
}

func TestCompare_NegativeRateFinalNotClamped(t *testing.T) {
	p := comparisonParams(6, true)
	p.BenchmarkAnnual = decimal.NewFromInt(-10)
	res := Compare(p)

	// series clamps negative interest to zero, the final figure does not
	assert.True(t, res.BenchmarkNet[6].GreaterThan(res.Finals.BenchmarkNet))
	contributed := p.Principal.Add(p.Contribution.Mul(decimal.NewFromInt(6)))
	assert.True(t, res.BenchmarkNet[6].Equal(contributed))
}

func TestCompare_BenchmarkTotalLoss(t *testing.T) {
	p := comparisonParams(12, true)
	p.BenchmarkAnnual = decimal.NewFromInt(-200)

	var res domain.ComparisonResult
	require.NotPanics(t, func() { res = Compare(p) })

	// everything held is lost each month, only the new contribution remains
	assert.True(t, res.BenchmarkMonthly.Equal(decimal.NewFromInt(-1)))
	assert.True(t, res.Finals.BenchmarkGross.Equal(decimal.NewFromInt(500)), res.Finals.BenchmarkGross.String())
	assert.True(t, res.Finals.Difference.IsNegative())
	assert.True(t, res.Finals.Savings.GreaterThan(p.Principal))
}

func TestCompare_ClampsMonths(t *testing.T) {
	res := Compare(comparisonParams(0, true))
	assert.Equal(t, 1, res.Months())
	assert.Equal(t, 1, res.Params.Months)
}
