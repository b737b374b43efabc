package domain

import (
	"github.com/rpgo/growth-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// SimulationParams holds the inputs of a single compounding run.
// MonthlyRate is a fraction (0.01 = 1% per month), not a percentage.
type SimulationParams struct {
	Principal    decimal.Decimal `yaml:"principal" json:"principal"`
	Contribution decimal.Decimal `yaml:"contribution" json:"contribution"`
	MonthlyRate  decimal.Decimal `yaml:"monthly_rate" json:"monthly_rate"`
	Months       int             `yaml:"months" json:"months"`
}

// ClampMonths forces months into [1, dateutil.MaxMonths].
func ClampMonths(months int) int {
	if months < 1 {
		return 1
	}
	if months > dateutil.MaxMonths {
		return dateutil.MaxMonths
	}
	return months
}

// MonthRow is one step of a simulated time series. Row 0 carries the
// principal as balance and zero contribution/interest.
type MonthRow struct {
	Month        int             `json:"month"`
	Contribution decimal.Decimal `json:"contribution"`
	Interest     decimal.Decimal `json:"interest"`
	Balance      decimal.Decimal `json:"balance"`
}

// SimulationResult is the full output of a compounding run, rows 0..Months.
type SimulationResult struct {
	Params           SimulationParams `json:"params"`
	Rows             []MonthRow       `json:"rows"`
	FinalBalance     decimal.Decimal  `json:"final_balance"`
	TotalContributed decimal.Decimal  `json:"total_contributed"`
	AccruedInterest  decimal.Decimal  `json:"accrued_interest"`
}

// Months returns the simulated horizon (number of rows after row 0).
func (r *SimulationResult) Months() int {
	if len(r.Rows) == 0 {
		return 0
	}
	return len(r.Rows) - 1
}

// Balances returns the balance series aligned to months 0..N.
func (r *SimulationResult) Balances() []decimal.Decimal {
	out := make([]decimal.Decimal, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Balance
	}
	return out
}

// CumulativeContributions returns principal plus contributions made up to each month.
func (r *SimulationResult) CumulativeContributions() []decimal.Decimal {
	out := make([]decimal.Decimal, len(r.Rows))
	acc := r.Params.Principal
	for i, row := range r.Rows {
		acc = acc.Add(row.Contribution)
		out[i] = acc
	}
	return out
}

// CumulativeInterest returns the running sum of interest per month.
func (r *SimulationResult) CumulativeInterest() []decimal.Decimal {
	out := make([]decimal.Decimal, len(r.Rows))
	acc := decimal.Zero
	for i, row := range r.Rows {
		acc = acc.Add(row.Interest)
		out[i] = acc
	}
	return out
}

// Summary holds the headline KPIs of a simulation.
type Summary struct {
	FinalBalance     decimal.Decimal `json:"final_balance"`
	TotalContributed decimal.Decimal `json:"total_contributed"`
	AccruedInterest  decimal.Decimal `json:"accrued_interest"`
}
