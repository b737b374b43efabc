package calculation

import (
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Compare runs the savings account and the benchmark side by side over the
// same contributions. The savings series is tax exempt; the benchmark is
// reported gross and net of the regressive withholding.
func Compare(p domain.ComparisonParams) domain.ComparisonResult {
	months := domain.ClampMonths(p.Months)
	p.Months = months

	savingsMonthly := AnnualToMonthly(p.SavingsAnnual)
	benchmarkMonthly := AnnualToMonthly(p.BenchmarkAnnual)

	savings := Simulate(domain.SimulationParams{
		Principal:    p.Principal,
		Contribution: p.Contribution,
		MonthlyRate:  savingsMonthly,
		Months:       months,
	})
	benchmark := Simulate(domain.SimulationParams{
		Principal:    p.Principal,
		Contribution: p.Contribution,
		MonthlyRate:  benchmarkMonthly,
		Months:       months,
	})

	days := dateutil.ElapsedDays(months)
	taxRate := decimal.Zero
	if p.TaxEnabled {
		taxRate = BracketRate(days)
	}
	// The final net figure taxes the accrued interest as is; only the
	// per-month series clamps negative interest.
	netFinal := benchmark.TotalContributed.Add(ApplyFinal(benchmark.AccruedInterest, days, p.TaxEnabled))

	gross := benchmark.Balances()
	return domain.ComparisonResult{
		Params:         p,
		Labels:         dateutil.MonthLabels(months),
		Savings:        savings.Balances(),
		BenchmarkGross: gross,
		BenchmarkNet:   ApplyToSeries(gross, p.Principal, p.Contribution, p.TaxEnabled),
		Finals: domain.ComparisonFinals{
			Savings:        savings.FinalBalance,
			BenchmarkGross: benchmark.FinalBalance,
			BenchmarkNet:   netFinal,
			Difference:     netFinal.Sub(savings.FinalBalance),
		},
		TaxRate:          taxRate,
		SavingsMonthly:   savingsMonthly,
		BenchmarkMonthly: benchmarkMonthly,
	}
}
