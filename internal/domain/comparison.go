package domain

import (
	"github.com/shopspring/decimal"
)

// ComparisonParams holds the inputs of the savings vs. benchmark calculator.
// All annual rates are percentages (13.75 = 13.75% a year).
type ComparisonParams struct {
	Principal       decimal.Decimal `yaml:"principal" json:"principal"`
	Contribution    decimal.Decimal `yaml:"contribution" json:"contribution"`
	BenchmarkAnnual decimal.Decimal `yaml:"benchmark_annual" json:"benchmark_annual"`
	SavingsAnnual   decimal.Decimal `yaml:"savings_annual" json:"savings_annual"`
	ReferenceAnnual decimal.Decimal `yaml:"reference_annual" json:"reference_annual"`
	Months          int             `yaml:"months" json:"months"`
	TaxEnabled      bool            `yaml:"tax_enabled" json:"tax_enabled"`
}

// ComparisonFinals are the end-of-horizon amounts for each series.
type ComparisonFinals struct {
	Savings        decimal.Decimal `json:"savings"`
	BenchmarkGross decimal.Decimal `json:"benchmark_gross"`
	BenchmarkNet   decimal.Decimal `json:"benchmark_net"`
	Difference     decimal.Decimal `json:"difference"`
}

// ComparisonResult contains the three parallel series plus their finals.
// Every series is aligned with Labels (M0..Mn).
type ComparisonResult struct {
	Params           ComparisonParams  `json:"params"`
	Labels           []string          `json:"labels"`
	Savings          []decimal.Decimal `json:"savings"`
	BenchmarkGross   []decimal.Decimal `json:"benchmark_gross"`
	BenchmarkNet     []decimal.Decimal `json:"benchmark_net"`
	Finals           ComparisonFinals  `json:"finals"`
	TaxRate          decimal.Decimal   `json:"tax_rate"`
	SavingsMonthly   decimal.Decimal   `json:"savings_monthly"`
	BenchmarkMonthly decimal.Decimal   `json:"benchmark_monthly"`
}

// Months returns the simulated horizon.
func (r *ComparisonResult) Months() int {
	if len(r.Labels) == 0 {
		return 0
	}
	return len(r.Labels) - 1
}

// DisplayedBenchmark returns the benchmark series shown in tables:
// net when tax is enabled, gross otherwise.
func (r *ComparisonResult) DisplayedBenchmark() []decimal.Decimal {
	if r.Params.TaxEnabled {
		return r.BenchmarkNet
	}
	return r.BenchmarkGross
}
