package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/growth-calculator/internal/domain"
	moneydec "github.com/rpgo/growth-calculator/pkg/decimal"
)

// CalculationEngine orchestrates the calculator runs and logs their breakdown.
type CalculationEngine struct {
	Debug  bool // Enable debug output for detailed calculations
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunSimulation runs a compound-growth projection.
func (ce *CalculationEngine) RunSimulation(ctx context.Context, params domain.SimulationParams) (*domain.SimulationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("simulation aborted: %w", err)
	}
	if params.Months < 1 {
		ce.Logger.Debugf("horizon %d clamped to 1 month", params.Months)
	}

	result := Simulate(params)

	if ce.Debug {
		ce.Logger.Debugf("COMPOUND GROWTH BREAKDOWN:")
		ce.Logger.Debugf("=========================")
		ce.Logger.Debugf("Principal:          %s", moneydec.NewMoneyFromDecimal(result.Params.Principal).Format())
		ce.Logger.Debugf("Monthly contrib.:   %s", moneydec.NewMoneyFromDecimal(result.Params.Contribution).Format())
		ce.Logger.Debugf("Monthly rate:       %s", result.Params.MonthlyRate.String())
		ce.Logger.Debugf("Months:             %d", result.Months())
		ce.Logger.Debugf("Final balance:      %s", moneydec.NewMoneyFromDecimal(result.FinalBalance).Format())
		ce.Logger.Debugf("Total contributed:  %s", moneydec.NewMoneyFromDecimal(result.TotalContributed).Format())
		ce.Logger.Debugf("Accrued interest:   %s", moneydec.NewMoneyFromDecimal(result.AccruedInterest).Format())
	}
	return &result, nil
}

// RunComparison runs the savings vs. benchmark comparison.
func (ce *CalculationEngine) RunComparison(ctx context.Context, params domain.ComparisonParams) (*domain.ComparisonResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("comparison aborted: %w", err)
	}

	result := Compare(params)

	if ce.Debug {
		ce.Logger.Debugf("SAVINGS VS BENCHMARK BREAKDOWN:")
		ce.Logger.Debugf("===============================")
		ce.Logger.Debugf("Savings annual:     %s", moneydec.FormatPercent(params.SavingsAnnual))
		ce.Logger.Debugf("Benchmark annual:   %s", moneydec.FormatPercent(params.BenchmarkAnnual))
		ce.Logger.Debugf("Months:             %d", result.Months())
		ce.Logger.Debugf("Tax enabled:        %t (rate %s)", params.TaxEnabled, result.TaxRate.String())
		ce.Logger.Debugf("Savings final:      %s", moneydec.NewMoneyFromDecimal(result.Finals.Savings).Format())
		ce.Logger.Debugf("Benchmark gross:    %s", moneydec.NewMoneyFromDecimal(result.Finals.BenchmarkGross).Format())
		ce.Logger.Debugf("Benchmark net:      %s", moneydec.NewMoneyFromDecimal(result.Finals.BenchmarkNet).Format())
		ce.Logger.Debugf("Difference:         %s", moneydec.NewMoneyFromDecimal(result.Finals.Difference).Format())
	}
	return &result, nil
}
