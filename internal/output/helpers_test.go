package output

import (
	"testing"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// sampleSimulation is 1000 + 100/month at 1% for 3 months:
// balances 1000, 1110, 1221.1, 1333.311.
func sampleSimulation(t *testing.T) *domain.SimulationResult {
	t.Helper()
	r := calculation.Simulate(domain.SimulationParams{
		Principal:    decimal.NewFromInt(1000),
		Contribution: decimal.NewFromInt(100),
		MonthlyRate:  decimal.NewFromFloat(0.01),
		Months:       3,
	})
	return &r
}

func sampleComparison(t *testing.T, months int, tax bool) *domain.ComparisonResult {
	t.Helper()
	r := calculation.Compare(domain.ComparisonParams{
		Principal:       decimal.NewFromInt(10000),
		Contribution:    decimal.NewFromInt(500),
		BenchmarkAnnual: decimal.NewFromFloat(13.75),
		SavingsAnnual:   decimal.NewFromFloat(6.17),
		ReferenceAnnual: decimal.NewFromFloat(0.1),
		Months:          months,
		TaxEnabled:      tax,
	})
	return &r
}
